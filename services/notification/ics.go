package notification

import (
	"fmt"
	"strings"
	"time"

	"portfolio/models"
)

const icsTimeLayout = "20060102T150405Z"

// BuildInvite renders an iCalendar invite for the booking. Times are resolved
// in the booking's timezone and written as UTC; lines use CRLF endings as the
// format requires.
func BuildInvite(b *models.Booking, meetingLink string) string {
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		loc = time.UTC
	}

	start, err := time.ParseInLocation("2006-01-02 15:04", b.Date+" "+b.Time, loc)
	if err != nil {
		start = time.Now()
	}
	end := start.Add(time.Duration(b.DurationMinutes) * time.Minute)

	who := b.Name
	if who == "" {
		who = b.Email
	}

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//portfolio//discovery-call//EN",
		"METHOD:REQUEST",
		"BEGIN:VEVENT",
		fmt.Sprintf("UID:%s@portfolio", b.ID),
		fmt.Sprintf("DTSTAMP:%s", time.Now().UTC().Format(icsTimeLayout)),
		fmt.Sprintf("DTSTART:%s", start.UTC().Format(icsTimeLayout)),
		fmt.Sprintf("DTEND:%s", end.UTC().Format(icsTimeLayout)),
		"SUMMARY:Discovery Call",
		fmt.Sprintf("DESCRIPTION:Join link: %s\\nBooked for %s", meetingLink, who),
		fmt.Sprintf("ATTENDEE;CN=%s:MAILTO:%s", who, b.Email),
		"END:VEVENT",
		"END:VCALENDAR",
	}
	return strings.Join(lines, "\r\n")
}
