package types

import "github.com/icodeforyou/genability-go/isotime"

const (
	CalendarRestType          = "Calendar"
	CalendarEventDateRestType = "CalendarEventDate"
)

type Calendar struct {
	CalendarID   int64           `json:"calendarId"`
	CalendarName string          `json:"calendarName"`
	CalendarType string          `json:"calendarType,omitempty"`
	LseID        int64           `json:"lseId,omitempty"`
	Events       []CalendarEvent `json:"events,omitempty"`
}

type CalendarEvent struct {
	CalendarEventID   int64  `json:"calendarEventId"`
	CalendarEventName string `json:"calendarEventName"`
	CalendarEventType string `json:"calendarEventType,omitempty"`
	LseID             int64  `json:"lseId,omitempty"`
}

type CalendarEventDate struct {
	EventDateID     int64            `json:"eventDateId"`
	SubKey          string           `json:"subKey,omitempty"`
	StartDateTime   isotime.DateTime `json:"startDateTime"`
	EndDateTime     isotime.DateTime `json:"endDateTime"`
	EventName       string           `json:"eventName"`
	LseID           int64            `json:"lseId,omitempty"`
	CalendarEventID int64            `json:"calendarEventId,omitempty"`
}
