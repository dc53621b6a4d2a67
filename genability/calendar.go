package genability

import (
	"context"

	"github.com/icodeforyou/genability-go/request"
	"github.com/icodeforyou/genability-go/types"
)

type CalendarService struct {
	client *Client
}

func (s *CalendarService) GetCalendar(ctx context.Context, r *request.GetCalendarRequest) (*types.Response[types.Calendar], error) {
	r = orEmpty(r)
	return do[types.Calendar](ctx, s.client, getCall(r.Path(), r))
}

func (s *CalendarService) GetCalendars(ctx context.Context, r *request.GetCalendarsRequest) (*types.Response[types.Calendar], error) {
	r = orEmpty(r)
	return do[types.Calendar](ctx, s.client, getCall("public/calendars", r))
}

func (s *CalendarService) GetCalendarDates(ctx context.Context, r *request.GetCalendarDatesRequest) (*types.Response[types.CalendarEventDate], error) {
	r = orEmpty(r)
	return do[types.CalendarEventDate](ctx, s.client, getCall(r.Path(), r))
}
