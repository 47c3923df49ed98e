package notification

import (
	"strings"
	"testing"
	"time"

	"portfolio/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBooking() *models.Booking {
	return &models.Booking{
		ID:              "2024-06-10-10:00",
		Name:            "Ada",
		Email:           "ada@example.com",
		Date:            "2024-06-10",
		Time:            "10:00",
		DurationMinutes: 20,
		Timezone:        "UTC",
		Status:          models.BookingStatusConfirmed,
		CreatedAt:       time.Now(),
	}
}

func TestBuildInviteStructure(t *testing.T) {
	ics := BuildInvite(sampleBooking(), "https://meet.google.com/abc")
	lines := strings.Split(ics, "\r\n")

	assert.Equal(t, "BEGIN:VCALENDAR", lines[0])
	assert.Equal(t, "END:VCALENDAR", lines[len(lines)-1])
	assert.Contains(t, lines, "METHOD:REQUEST")
	assert.Contains(t, lines, "SUMMARY:Discovery Call")
	assert.Contains(t, lines, "UID:2024-06-10-10:00@portfolio")
	assert.Contains(t, lines, "ATTENDEE;CN=Ada:MAILTO:ada@example.com")
}

func TestBuildInviteTimesInUTCBasicFormat(t *testing.T) {
	ics := BuildInvite(sampleBooking(), "https://meet.google.com/abc")

	assert.Contains(t, ics, "DTSTART:20240610T100000Z")
	assert.Contains(t, ics, "DTEND:20240610T102000Z")
}

func TestBuildInviteConvertsTimezone(t *testing.T) {
	b := sampleBooking()
	b.Timezone = "Asia/Kolkata" // UTC+05:30

	ics := BuildInvite(b, "https://meet.google.com/abc")
	assert.Contains(t, ics, "DTSTART:20240610T043000Z")
}

func TestBuildInviteFallsBackToEmailForName(t *testing.T) {
	b := sampleBooking()
	b.Name = ""

	ics := BuildInvite(b, "https://meet.google.com/abc")
	assert.Contains(t, ics, "ATTENDEE;CN=ada@example.com:MAILTO:ada@example.com")
	assert.Contains(t, ics, "Booked for ada@example.com")
}

func TestBuildInviteIncludesJoinLink(t *testing.T) {
	ics := BuildInvite(sampleBooking(), "https://meet.google.com/xyz")
	require.Contains(t, ics, "DESCRIPTION:Join link: https://meet.google.com/xyz\\nBooked for Ada")
}

func TestBuildInviteUsesCRLF(t *testing.T) {
	ics := BuildInvite(sampleBooking(), "https://meet.google.com/abc")

	assert.True(t, strings.Contains(ics, "\r\n"))
	// No bare LF line endings.
	assert.NotContains(t, strings.ReplaceAll(ics, "\r\n", ""), "\n")
}
