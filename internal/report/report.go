// Package report renders lookup results, warnings and errors for the
// terminal. Pure formatting: the only side effect is writing to the
// configured writers.
package report

import (
	"fmt"
	"io"
	"strings"

	"phonetrace/internal/lookup"
	"phonetrace/platform/apperr"

	"github.com/fatih/color"
)

const (
	markerUnknown     = "unknown"
	markerUnavailable = "unavailable"
)

// Presenter formats pipeline output for a terminal.
type Presenter struct {
	out     io.Writer
	errOut  io.Writer
	quiet   bool
	noColor bool

	header *color.Color
	label  *color.Color
	value  *color.Color
	dim    *color.Color
	warn   *color.Color
	fail   *color.Color
}

// New builds a presenter. quiet suppresses the banner only; noColor
// disables ANSI styling entirely.
func New(out, errOut io.Writer, quiet, noColor bool) *Presenter {
	return &Presenter{
		out:     out,
		errOut:  errOut,
		quiet:   quiet,
		noColor: noColor,
		header:  color.New(color.FgCyan, color.Bold),
		label:   color.New(color.FgCyan),
		value:   color.New(color.FgGreen),
		dim:     color.New(color.FgYellow),
		warn:    color.New(color.FgYellow, color.Bold),
		fail:    color.New(color.FgRed, color.Bold),
	}
}

// Banner prints the startup banner unless quiet mode is on.
func (p *Presenter) Banner() {
	if p.quiet {
		return
	}
	line := strings.Repeat("═", 60)
	fmt.Fprintln(p.out, p.paint(p.header, line))
	fmt.Fprintln(p.out, p.paint(p.header, "  PHONETRACE — phone number region lookup"))
	fmt.Fprintln(p.out, p.paint(p.dim, "  Location is the carrier registration area, not live GPS."))
	fmt.Fprintln(p.out, p.paint(p.header, line))
}

// Result prints the full lookup report. Every optional field renders an
// explicit marker when absent instead of being dropped.
func (p *Presenter) Result(res *lookup.Result, mapPath string) {
	line := strings.Repeat("─", 60)

	fmt.Fprintln(p.out, p.paint(p.header, line))
	fmt.Fprintln(p.out, p.paint(p.header, "  LOOKUP RESULT"))
	fmt.Fprintln(p.out, p.paint(p.header, line))

	number := res.E164
	if res.PlusAdded {
		number += "  (+ prefix added)"
	}
	p.field("Number", number)
	p.field("Country code", fmt.Sprintf("+%d", res.CountryCode))
	p.field("National number", res.NationalNumber)
	p.field("Type", string(res.NumberType))

	if res.CarrierName != "" {
		p.field("Carrier", res.CarrierName)
	} else {
		p.absent("Carrier", markerUnknown)
	}

	if res.RegionDescription != "" {
		p.field("Region", res.RegionDescription)
	} else {
		p.absent("Region", markerUnknown)
	}

	if res.Coordinates != nil {
		p.field("Coordinates", fmt.Sprintf("%.6f, %.6f", res.Coordinates.Latitude, res.Coordinates.Longitude))
	} else {
		p.absent("Coordinates", markerUnavailable)
	}

	if mapPath != "" {
		p.field("Map file", mapPath)
	} else {
		p.absent("Map file", "not generated")
	}

	p.field("Timestamp", res.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(p.out, p.paint(p.header, line))
}

// Warning surfaces a recoverable failure, naming the remedy when known.
func (p *Presenter) Warning(err *apperr.Error) {
	msg := fmt.Sprintf("warning: %s", err.Message)
	fmt.Fprintln(p.errOut, p.paint(p.warn, msg))
	if err.Remedy != "" {
		fmt.Fprintln(p.errOut, p.paint(p.dim, "  hint: "+err.Remedy))
	}
}

// Warningf surfaces a free-form warning line.
func (p *Presenter) Warningf(format string, args ...any) {
	fmt.Fprintln(p.errOut, p.paint(p.warn, "warning: "+fmt.Sprintf(format, args...)))
}

// Error surfaces a fatal failure with its remedy hint.
func (p *Presenter) Error(err error) {
	if ae, ok := err.(*apperr.Error); ok {
		fmt.Fprintln(p.errOut, p.paint(p.fail, "error: "+ae.Error()))
		if ae.Remedy != "" {
			fmt.Fprintln(p.errOut, p.paint(p.dim, "  hint: "+ae.Remedy))
		}
		return
	}
	fmt.Fprintln(p.errOut, p.paint(p.fail, "error: "+err.Error()))
}

func (p *Presenter) field(name, value string) {
	fmt.Fprintf(p.out, "  %s: %s\n", p.paint(p.label, pad(name)), p.paint(p.value, value))
}

func (p *Presenter) absent(name, marker string) {
	fmt.Fprintf(p.out, "  %s: %s\n", p.paint(p.label, pad(name)), p.paint(p.dim, marker))
}

func (p *Presenter) paint(c *color.Color, s string) string {
	if p.noColor {
		return s
	}
	return c.Sprint(s)
}

func pad(name string) string {
	return fmt.Sprintf("%-16s", name)
}
