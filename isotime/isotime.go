// Package isotime formats and parses the ISO-8601 date-times exchanged with
// the Genability API.
package isotime

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	// Millisecond precision with a numeric offset, or Z for UTC.
	DateTimeLayout = "2006-01-02T15:04:05.000Z07:00"
)

// Layouts accepted when reading, most specific first.
var parseLayouts = []string{
	DateTimeLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000Z0700",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	DateLayout,
}

func Format(t time.Time) string {
	return t.Format(DateTimeLayout)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Parse accepts full date-times with or without fraction and offset as well
// as bare dates. Values without an offset are read as UTC.
func Parse(str string) (time.Time, error) {
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, str); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date-time %q", str)
}

// DateTime is a time.Time that travels as an ISO-8601 string.
type DateTime struct {
	time.Time
}

func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t}
}

func (d DateTime) String() string {
	return Format(d.Time)
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(Format(d.Time))
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = DateTime{}
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("date-time must be a string: %w", err)
	}
	if str == "" {
		*d = DateTime{}
		return nil
	}
	t, err := Parse(str)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Date is a calendar day, e.g. a tariff's effectiveOn.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return FormatDate(d.Time)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(FormatDate(d.Time))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var dt DateTime
	if err := dt.UnmarshalJSON(data); err != nil {
		return err
	}
	d.Time = dt.Time
	return nil
}
