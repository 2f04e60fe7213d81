package service

import (
	"fmt"
	"net/url"
	"time"
)

const (
	calendarEditURL         = "https://calendar.google.com/calendar/u/0/r/eventedit"
	DefaultInterviewMinutes = 30
)

// GoogleCalendarAddURL builds a quick-add link the user opens to save the event.
// It returns "" when start is not an RFC3339 or date-time string.
func GoogleCalendarAddURL(title, details, location, start string) string {
	begin, err := parseScheduledAt(start)
	if err != nil {
		return ""
	}
	end := begin.Add(DefaultInterviewMinutes * time.Minute)
	if location == "" {
		location = "Online"
	}
	return fmt.Sprintf("%s?text=%s&dates=%s/%s&details=%s&location=%s",
		calendarEditURL,
		url.QueryEscape(title),
		calendarStamp(begin),
		calendarStamp(end),
		url.QueryEscape(details),
		url.QueryEscape(location),
	)
}

func calendarStamp(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

func parseScheduledAt(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02 15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised datetime %q", s)
}
