// Package lookup runs the number lookup pipeline and owns its result type.
// The pipeline is strictly linear: parse/validate, offline carrier and
// region resolution, then one geocoding call. Validation failure aborts;
// geocoding failure degrades the result instead.
package lookup

import (
	"context"
	"time"

	"phonetrace/internal/geocode"
	"phonetrace/internal/phone"
	"phonetrace/platform/apperr"
	"phonetrace/platform/logger"
)

// Coordinates is a resolved latitude/longitude pair in degrees.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Result is the in-memory record produced by one invocation. It is never
// persisted; the map artifact and terminal report are both rendered from it.
type Result struct {
	RawInput  string
	PlusAdded bool
	IsValid   bool

	CountryCode    int
	NationalNumber string
	E164           string
	NumberType     phone.NumberType

	// CarrierName is empty when no carrier mapping exists for the prefix.
	CarrierName string
	// RegionDescription is the coarse registration region, refined with
	// the geocoder's formatted address when geocoding succeeded.
	RegionDescription string

	// Coordinates is set only when the region geocoded successfully.
	Coordinates *Coordinates
	// GeocodeFailure holds the recoverable geocoder error, if any, so the
	// presenter can surface it as a warning.
	GeocodeFailure *apperr.Error

	Timestamp time.Time
}

// Geocoder resolves a free-text region description to a coordinate.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (*geocode.Location, error)
}

// Pipeline wires the lookup stages together.
type Pipeline struct {
	geocoder Geocoder
	log      *logger.Logger
	now      func() time.Time
}

// New builds a pipeline around the given geocoder.
func New(geocoder Geocoder, log *logger.Logger) *Pipeline {
	return &Pipeline{
		geocoder: geocoder,
		log:      log,
		now:      time.Now,
	}
}

// Run executes one lookup. A parse or validation failure returns an error
// and nothing else happens, in particular no network call is made.
// Geocoder failures are recorded on the result and do not fail the run.
func (p *Pipeline) Run(ctx context.Context, rawNumber string) (*Result, error) {
	info, err := phone.Parse(rawNumber)
	if err != nil {
		p.log.StageError("validate", err)
		return nil, err
	}

	res := &Result{
		RawInput:          rawNumber,
		PlusAdded:         info.PlusAdded,
		IsValid:           true,
		CountryCode:       info.CountryCode,
		NationalNumber:    info.NationalNumber,
		E164:              info.E164,
		NumberType:        info.Type,
		CarrierName:       info.Carrier(),
		RegionDescription: info.Region(),
		Timestamp:         p.now(),
	}

	loc, err := p.geocoder.Geocode(ctx, res.RegionDescription)
	if err != nil {
		p.log.StageError("geocode", err)
		if ae, ok := err.(*apperr.Error); ok && ae.Recoverable() {
			res.GeocodeFailure = ae
			return res, nil
		}
		return res, err
	}

	res.Coordinates = &Coordinates{
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
	}
	if loc.Formatted != "" {
		res.RegionDescription = loc.Formatted
	}

	return res, nil
}
