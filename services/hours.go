package services

import (
	"fmt"
	"strings"
	"time"
)

// OpeningSpan is one open interval on a weekday, minutes since midnight.
// Spans crossing midnight (To < From) count up to the next day.
type OpeningSpan struct {
	From int
	To   int
}

// openingHours maps each weekday to its open spans. Monday is the rest day.
var openingHours = map[time.Weekday][]OpeningSpan{
	time.Tuesday:   {{11 * 60, 14 * 60}, {17 * 60, 22 * 60}},
	time.Wednesday: {{11 * 60, 14 * 60}, {17 * 60, 22 * 60}},
	time.Thursday:  {{11 * 60, 14 * 60}, {17 * 60, 22 * 60}},
	time.Friday:    {{11 * 60, 14 * 60}, {17 * 60, 23 * 60}},
	time.Saturday:  {{17 * 60, 23 * 60}},
	time.Sunday:    {{17 * 60, 22 * 60}},
}

// IsOpenAt reports whether orders are accepted at t.
func IsOpenAt(t time.Time) bool {
	minutes := t.Hour()*60 + t.Minute()
	for _, span := range openingHours[t.Weekday()] {
		if span.To >= span.From {
			if minutes >= span.From && minutes < span.To {
				return true
			}
			continue
		}
		if minutes >= span.From {
			return true
		}
	}
	// Tail of a span that started yesterday and crossed midnight.
	for _, span := range openingHours[t.AddDate(0, 0, -1).Weekday()] {
		if span.To < span.From && minutes < span.To {
			return true
		}
	}
	return false
}

// OpeningHoursText renders the weekly schedule for display.
func OpeningHoursText() string {
	dayNames := map[time.Weekday]string{
		time.Monday:    "Montag",
		time.Tuesday:   "Dienstag",
		time.Wednesday: "Mittwoch",
		time.Thursday:  "Donnerstag",
		time.Friday:    "Freitag",
		time.Saturday:  "Samstag",
		time.Sunday:    "Sonntag",
	}
	var b strings.Builder
	b.WriteString("🕒 Öffnungszeiten\n")
	for d := time.Monday; d <= time.Saturday; d++ {
		writeDay(&b, dayNames[d], openingHours[d])
	}
	writeDay(&b, dayNames[time.Sunday], openingHours[time.Sunday])
	return b.String()
}

func writeDay(b *strings.Builder, name string, spans []OpeningSpan) {
	if len(spans) == 0 {
		fmt.Fprintf(b, "%s: Ruhetag\n", name)
		return
	}
	var parts []string
	for _, span := range spans {
		parts = append(parts, fmt.Sprintf("%02d:%02d–%02d:%02d",
			span.From/60, span.From%60, span.To/60, span.To%60))
	}
	fmt.Fprintf(b, "%s: %s\n", name, strings.Join(parts, " und "))
}
