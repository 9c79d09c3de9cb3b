package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-renderer/internal/types"
)

func strPtr(s string) *string { return &s }

func TestYear_NilDate(t *testing.T) {
	assert.Equal(t, "Present", Year(nil))
}

func TestYear_EmptyString(t *testing.T) {
	assert.Equal(t, "Present", Year(strPtr("")))
}

func TestYear_ValidDate(t *testing.T) {
	assert.Equal(t, "2021", Year(strPtr("2021-05-01")))
}

func TestYear_YearMonthOnly(t *testing.T) {
	assert.Equal(t, "2019", Year(strPtr("2019-11")))
}

func TestYear_MalformedDate(t *testing.T) {
	// Uniform soft-fail policy: a present but unparseable date displays as
	// the ongoing sentinel rather than aborting the render.
	assert.Equal(t, "Present", Year(strPtr("not-a-date")))
	assert.Equal(t, "Present", Year(strPtr("13/31/2020")))
}

func TestMonthYear_NilDate(t *testing.T) {
	assert.Equal(t, "Present", MonthYear(nil, StyleShort))
	assert.Equal(t, "Present", MonthYear(nil, StyleLong))
}

func TestMonthYear_ShortStyle(t *testing.T) {
	assert.Equal(t, "May 2021", MonthYear(strPtr("2021-05-01"), StyleShort))
	assert.Equal(t, "Jan 2020", MonthYear(strPtr("2020-01-15"), StyleShort))
}

func TestMonthYear_LongStyle(t *testing.T) {
	assert.Equal(t, "May 2021", MonthYear(strPtr("2021-05-01"), StyleLong))
	assert.Equal(t, "January 2020", MonthYear(strPtr("2020-01-15"), StyleLong))
}

func TestMonthYear_MalformedDate(t *testing.T) {
	assert.Equal(t, "Present", MonthYear(strPtr("2020-13-99"), StyleShort))
}

func TestRange_OngoingPosition(t *testing.T) {
	got := Range(strPtr("2020-01-01"), nil, Year)
	assert.Equal(t, "2020 – Present", got)
}

func TestRange_ClosedPeriod(t *testing.T) {
	monthYearShort := func(d *string) string { return MonthYear(d, StyleShort) }
	got := Range(strPtr("2018-03-01"), strPtr("2019-09-30"), monthYearShort)
	assert.Equal(t, "Mar 2018 – Sep 2019", got)
}

func TestAddress_NilAddress(t *testing.T) {
	assert.Nil(t, Address(nil))
}

func TestAddress_AllPartsAbsent(t *testing.T) {
	assert.Nil(t, Address(&types.Address{}))
}

func TestAddress_CityOnly(t *testing.T) {
	got := Address(&types.Address{City: "X"})
	if assert.NotNil(t, got) {
		assert.Equal(t, "X", *got)
	}
}

func TestAddress_CityAndState(t *testing.T) {
	got := Address(&types.Address{City: "X", State: "Y"})
	if assert.NotNil(t, got) {
		assert.Equal(t, "X, Y", *got)
	}
}

func TestAddress_ExplicitParts(t *testing.T) {
	a := &types.Address{City: "Turin", State: "TO", Country: "Italy"}
	got := Address(a, PartCity, PartState, PartCountry)
	if assert.NotNil(t, got) {
		assert.Equal(t, "Turin, TO, Italy", *got)
	}
}

func TestAddress_SkipsAbsentRequestedParts(t *testing.T) {
	a := &types.Address{City: "Berlin", Country: "Germany"}
	got := Address(a, PartCity, PartState, PartCountry)
	if assert.NotNil(t, got) {
		assert.Equal(t, "Berlin, Germany", *got)
	}
}

func TestPlace_BothPresent(t *testing.T) {
	got := Place("Oslo", "Norway")
	if assert.NotNil(t, got) {
		assert.Equal(t, "Oslo, Norway", *got)
	}
}

func TestPlace_BothAbsent(t *testing.T) {
	assert.Nil(t, Place("", ""))
}

func TestStripProtocol_HTTPS(t *testing.T) {
	assert.Equal(t, "example.com/me", StripProtocol("https://example.com/me"))
}

func TestStripProtocol_HTTP(t *testing.T) {
	assert.Equal(t, "example.com", StripProtocol("http://example.com"))
}

func TestStripProtocol_NoMatch(t *testing.T) {
	assert.Equal(t, "example.com", StripProtocol("example.com"))
	assert.Equal(t, "ftp://example.com", StripProtocol("ftp://example.com"))
}
