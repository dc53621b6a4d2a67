package request

import (
	"testing"
	"time"

	"github.com/icodeforyou/genability-go/isotime"
	"github.com/icodeforyou/genability-go/types"
	"github.com/icodeforyou/genability-go/types/maybe"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSkipsUnset(t *testing.T) {
	var p Params
	p = Add(p, "a", maybe.None[string]())
	p = Add(p, "b", maybe.Some(""))
	p = Add(p, "c", maybe.None[bool]())

	assert.Equal(t, Params{{Name: "b", Value: ""}}, p)
}

func TestAddFormatsValues(t *testing.T) {
	at := time.Date(2025, time.March, 4, 5, 6, 7, 0, time.FixedZone("PST", -8*3600))

	tests := []struct {
		name     string
		params   Params
		expected string
	}{
		{"bool true", Add(nil, "x", maybe.Some(true)), "true"},
		{"bool false", Add(nil, "x", maybe.Some(false)), "false"},
		{"int", Add(nil, "x", maybe.Some(25)), "25"},
		{"int64", Add(nil, "x", maybe.Some(int64(3538))), "3538"},
		{"float", Add(nil, "x", maybe.Some(1.5)), "1.5"},
		{"decimal", Add(nil, "x", maybe.Some(decimal.RequireFromString("120.50"))), "120.5"},
		{"time", Add(nil, "x", maybe.Some(at)), "2025-03-04T05:06:07.000-08:00"},
		{"date", Add(nil, "x", maybe.Some(isotime.NewDate(2012, time.February, 1))), "2012-02-01"},
		{"list", Add(nil, "x", maybe.Some([]string{"ELECTRICITY", "SOLAR_PV"})), "ELECTRICITY,SOLAR_PV"},
		{"enum", Add(nil, "x", maybe.Some(types.GroupByMonth)), "MONTH"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := tt.params.Get("x")
			require.True(t, ok)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestEncodeKeepsOrder(t *testing.T) {
	p := Params{
		{Name: "toDateTime", Value: "2025-01-02T00:00:00.000+01:00"},
		{Name: "fromDateTime", Value: "2025-01-01T00:00:00.000+01:00"},
		{Name: "search", Value: "a b&c"},
	}
	assert.Equal(t,
		"toDateTime=2025-01-02T00%3A00%3A00.000%2B01%3A00&fromDateTime=2025-01-01T00%3A00%3A00.000%2B01%3A00&search=a+b%26c",
		p.Encode())
	assert.Equal(t, "", Params(nil).Encode())
}

func TestBaseFieldOrder(t *testing.T) {
	b := Base{
		SortOrder:  maybe.Some([]string{"DESC"}),
		SortOn:     maybe.Some([]string{"createdDate"}),
		IsRegex:    maybe.Some(false),
		EndsWith:   maybe.Some(false),
		StartsWith: maybe.Some(true),
		SearchOn:   maybe.Some([]string{"accountName", "owner"}),
		Search:     maybe.Some("Test"),
		PageCount:  maybe.Some(25),
		PageStart:  maybe.Some(0),
		Fields:     maybe.Some("ext"),
	}

	assert.Equal(t,
		[]string{"fields", "pageStart", "pageCount", "search", "searchOn", "startsWith", "endsWith", "isRegex", "sortOn", "sortOrder"},
		b.QueryParams().Names())
	assert.Empty(t, Base{}.QueryParams())
}
