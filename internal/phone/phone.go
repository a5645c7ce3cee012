// Package phone wraps phone number parsing, validation, classification
// and the offline carrier/region lookup tables.
package phone

import (
	"strings"

	"phonetrace/platform/apperr"

	"github.com/nyaruka/phonenumbers"
)

// lookupLang is the language used for carrier and region descriptions.
const lookupLang = "en"

// NumberType classifies a validated number.
type NumberType string

const (
	TypeMobile    NumberType = "mobile"
	TypeFixedLine NumberType = "fixed_line"
	TypeVoIP      NumberType = "voip"
	TypeUnknown   NumberType = "unknown"
)

// Info holds the parsed and validated facts about one number.
type Info struct {
	// Input is the number as given, after whitespace trimming and,
	// when needed, prepending the international prefix.
	Input string
	// PlusAdded records that the leading + was missing and was added.
	PlusAdded bool

	CountryCode    int
	NationalNumber string
	E164           string
	Type           NumberType

	parsed *phonenumbers.PhoneNumber
}

// Parse validates a raw phone number string. The number must be in
// international format; a missing leading + is tolerated and prepended.
// Unparseable or invalid numbers return a KindInvalidNumber error.
func Parse(raw string) (*Info, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, apperr.InvalidNumber("empty phone number").
			WithRemedy("pass a number in international format, e.g. +254712345678")
	}

	plusAdded := false
	if !strings.HasPrefix(trimmed, "+") {
		trimmed = "+" + trimmed
		plusAdded = true
	}

	number, err := phonenumbers.Parse(trimmed, "")
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInvalidNumber, "could not parse phone number", err).
			WithRemedy("use international format with country code, e.g. +254712345678")
	}

	if !phonenumbers.IsValidNumber(number) {
		return nil, apperr.InvalidNumber("number is not valid for its country").
			WithRemedy("check the country code and number length")
	}

	return &Info{
		Input:          trimmed,
		PlusAdded:      plusAdded,
		CountryCode:    int(number.GetCountryCode()),
		NationalNumber: phonenumbers.GetNationalSignificantNumber(number),
		E164:           phonenumbers.Format(number, phonenumbers.E164),
		Type:           classify(number),
		parsed:         number,
	}, nil
}

// Carrier returns the carrier name registered for the number's prefix
// block, or empty when no carrier mapping exists. Best effort.
func (i *Info) Carrier() string {
	name, err := phonenumbers.GetCarrierForNumber(i.parsed, lookupLang)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(name)
}

// Region returns a coarse textual registration region for the number.
// Granularity depends on the prefix tables: a city/area description when
// one exists, otherwise the country-level description, otherwise the ISO
// region code. Best effort, never fails.
func (i *Info) Region() string {
	desc, err := phonenumbers.GetGeocodingForNumber(i.parsed, lookupLang)
	if err == nil {
		desc = strings.TrimSpace(desc)
		if desc != "" {
			return desc
		}
	}
	return phonenumbers.GetRegionCodeForNumber(i.parsed)
}

func classify(number *phonenumbers.PhoneNumber) NumberType {
	switch phonenumbers.GetNumberType(number) {
	case phonenumbers.MOBILE, phonenumbers.FIXED_LINE_OR_MOBILE:
		return TypeMobile
	case phonenumbers.FIXED_LINE:
		return TypeFixedLine
	case phonenumbers.VOIP:
		return TypeVoIP
	default:
		return TypeUnknown
	}
}
