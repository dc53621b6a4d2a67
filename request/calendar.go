package request

import (
	"strconv"
	"time"

	"github.com/icodeforyou/genability-go/types/maybe"
)

type GetCalendarRequest struct {
	Base
	CalendarID int64
}

func (r *GetCalendarRequest) Path() string {
	return "public/calendars/" + strconv.FormatInt(r.CalendarID, 10)
}

func (r *GetCalendarRequest) QueryParams() Params {
	return r.Base.QueryParams()
}

type GetCalendarsRequest struct {
	Base
	LseID        maybe.Maybe[int64]
	CalendarType maybe.Maybe[string] // HOLIDAY, BILLING or PRICING_PERIOD
}

func (r *GetCalendarsRequest) QueryParams() Params {
	p := r.Base.QueryParams()
	p = Add(p, "lseId", r.LseID)
	p = Add(p, "calendarType", r.CalendarType)
	return p
}

type GetCalendarDatesRequest struct {
	Base
	CalendarID   int64
	FromDateTime maybe.Maybe[time.Time]
	ToDateTime   maybe.Maybe[time.Time]
	LseID        maybe.Maybe[int64]
}

func (r *GetCalendarDatesRequest) Path() string {
	return "public/calendars/" + strconv.FormatInt(r.CalendarID, 10) + "/dates"
}

func (r *GetCalendarDatesRequest) QueryParams() Params {
	p := r.Base.QueryParams()
	p = Add(p, "fromDateTime", r.FromDateTime)
	p = Add(p, "toDateTime", r.ToDateTime)
	p = Add(p, "lseId", r.LseID)
	return p
}
