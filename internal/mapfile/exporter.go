// Package mapfile renders the lookup result as a self-contained HTML map
// document with a marker, popup and accuracy circle.
package mapfile

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"phonetrace/internal/lookup"
	"phonetrace/platform/apperr"
	"phonetrace/platform/logger"
)

//go:embed templates/map.html
var templateFS embed.FS

// accuracyRadiusMeters is the radius of the approximate-area circle. The
// registration region is city-level at best, so the circle is generous.
const accuracyRadiusMeters = 5000

// Exporter writes timestamped map HTML files into a directory.
type Exporter struct {
	outputDir string
	log       *logger.Logger
}

// NewExporter builds an exporter targeting the given directory.
func NewExporter(outputDir string, log *logger.Logger) *Exporter {
	return &Exporter{outputDir: outputDir, log: log}
}

type mapData struct {
	Latitude  float64
	Longitude float64
	Radius    int
	Number    string
	Region    string
	Carrier   string
	Type      string
	Timestamp string
}

// Export renders the map for a result with coordinates and writes it to
// phone_map_<YYYYMMDD>_<HHMMSS>.html. The document is written to a
// temporary file and renamed so an interrupted run never leaves a
// partial HTML file behind. Returns the written path.
func (e *Exporter) Export(res *lookup.Result) (string, error) {
	if res.Coordinates == nil {
		return "", apperr.Internal("map export requires coordinates")
	}

	carrier := res.CarrierName
	if carrier == "" {
		carrier = "unknown"
	}

	html, err := render(mapData{
		Latitude:  res.Coordinates.Latitude,
		Longitude: res.Coordinates.Longitude,
		Radius:    accuracyRadiusMeters,
		Number:    res.E164,
		Region:    res.RegionDescription,
		Carrier:   carrier,
		Type:      string(res.NumberType),
		Timestamp: res.Timestamp.Format("2006-01-02 15:04:05"),
	})
	if err != nil {
		return "", apperr.Wrap(apperr.KindMapWrite, "render map document", err)
	}

	name := fmt.Sprintf("phone_map_%s.html", res.Timestamp.Format("20060102_150405"))
	path := filepath.Join(e.outputDir, name)

	if err := writeAtomic(path, html); err != nil {
		return "", apperr.Wrap(apperr.KindMapWrite, fmt.Sprintf("write map file %s", name), err).
			WithRemedy("check that the current directory is writable")
	}

	e.log.ArtifactWritten("map", path)
	return path, nil
}

func render(data mapData) ([]byte, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/map.html")
	if err != nil {
		return nil, fmt.Errorf("parse map template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute map template: %w", err)
	}
	return buf.Bytes(), nil
}

func writeAtomic(path string, content []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".phone_map_*.html")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}
