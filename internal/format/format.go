// Package format provides the pure formatting utilities every template must use
// for dates, addresses, and links. Centralizing them here is the linchpin
// invariant of the rendering core: visual variety between templates is allowed,
// semantic drift in formatting is not. No renderer may hand-roll its own date math.
package format

import (
	"strings"
	"time"

	"github.com/jonathan/resume-renderer/internal/types"
)

// Present is the standardized display value for an absent, null, or
// unparseable end date, denoting an ongoing period.
const Present = "Present"

// MonthStyle selects between abbreviated and full month names.
type MonthStyle string

const (
	// StyleShort renders three-letter month abbreviations ("May 2021", "Jan 2020").
	StyleShort MonthStyle = "short"
	// StyleLong renders full month names ("May 2021", "January 2020").
	StyleLong MonthStyle = "long"
)

// isoLayouts are the accepted ISO-8601 date shapes, most specific first.
var isoLayouts = []string{"2006-01-02", time.RFC3339, "2006-01"}

// parseISO attempts to parse an ISO-8601 date string. The bool reports success;
// a false result is never an error condition for callers, it is the "ongoing"
// case by the uniform soft-fail policy.
func parseISO(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Year returns the 4-digit year of an ISO date, or Present for a nil, empty,
// or unparseable value. It never fails.
func Year(date *string) string {
	if date == nil {
		return Present
	}
	t, ok := parseISO(*date)
	if !ok {
		return Present
	}
	return t.Format("2006")
}

// MonthYear returns the month name and 4-digit year of an ISO date, or Present
// under the same sentinel rule as Year. Month names are English and locale
// independent.
func MonthYear(date *string, style MonthStyle) string {
	if date == nil {
		return Present
	}
	t, ok := parseISO(*date)
	if !ok {
		return Present
	}
	if style == StyleLong {
		return t.Format("January 2006")
	}
	return t.Format("Jan 2006")
}

// Range joins the formatted start and end of a period with an en dash.
// The formatter is one of Year or a MonthYear closure, so the Present
// sentinel applies to the end date automatically.
func Range(start, end *string, formatDate func(*string) string) string {
	return formatDate(start) + " – " + formatDate(end)
}

// AddressPart names one joinable component of an address.
type AddressPart int

// Address parts in their canonical join order.
const (
	PartStreet AddressPart = iota
	PartCity
	PartState
	PartPostalCode
	PartCountry
)

// Address joins the requested present-only parts of an address with ", ".
// It returns nil (not an empty string) when the address itself is nil or no
// requested part is present, so templates can use the result in conditional
// rendering. With no explicit parts it joins city and state.
func Address(a *types.Address, parts ...AddressPart) *string {
	if a == nil {
		return nil
	}
	if len(parts) == 0 {
		parts = []AddressPart{PartCity, PartState}
	}
	var present []string
	for _, part := range parts {
		var v string
		switch part {
		case PartStreet:
			v = a.Street
		case PartCity:
			v = a.City
		case PartState:
			v = a.State
		case PartPostalCode:
			v = a.PostalCode
		case PartCountry:
			v = a.Country
		}
		if v = strings.TrimSpace(v); v != "" {
			present = append(present, v)
		}
	}
	if len(present) == 0 {
		return nil
	}
	joined := strings.Join(present, ", ")
	return &joined
}

// Place joins a bare city/country pair the way collection entries
// (work, education) carry location, with the same nil-when-empty rule.
func Place(city, country string) *string {
	return Address(&types.Address{City: city, Country: country}, PartCity, PartCountry)
}

// StripProtocol removes a leading http:// or https:// for compact link
// display. Values without a matching prefix are returned unchanged.
func StripProtocol(url string) string {
	if rest, ok := strings.CutPrefix(url, "https://"); ok {
		return rest
	}
	if rest, ok := strings.CutPrefix(url, "http://"); ok {
		return rest
	}
	return url
}
