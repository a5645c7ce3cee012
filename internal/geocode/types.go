package geocode

// Location is the resolved coordinate for a region query.
type Location struct {
	Latitude  float64
	Longitude float64
	// Formatted is the provider's formatted place name for the match.
	Formatted string
	// Confidence is the provider's 0-10 match confidence (10 best).
	Confidence int
}

// opencageResponse mirrors the relevant parts of the OpenCage JSON payload.
type opencageResponse struct {
	Results []opencageResult `json:"results"`
	Status  opencageStatus   `json:"status"`
	Total   int              `json:"total_results"`
}

type opencageResult struct {
	Formatted  string           `json:"formatted"`
	Geometry   opencageGeometry `json:"geometry"`
	Confidence int              `json:"confidence"`
}

type opencageGeometry struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type opencageStatus struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
