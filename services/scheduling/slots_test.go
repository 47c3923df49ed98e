package scheduling

import (
	"fmt"
	"testing"

	"portfolio/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultWindow() config.SchedulingWindow {
	return config.SchedulingWindow{
		SlotMinutes: 20,
		StartHour:   10,
		EndHour:     17,
		Timezone:    "Asia/Kolkata",
	}
}

func TestGenerateSlotsDefaultWindow(t *testing.T) {
	slots := GenerateSlots("2024-06-10", defaultWindow())

	require.Len(t, slots, 21)
	assert.Equal(t, "10:00", slots[0])
	assert.Equal(t, "16:40", slots[len(slots)-1])
}

func TestGenerateSlotsAscendingAndEvenlySpaced(t *testing.T) {
	w := defaultWindow()
	slots := GenerateSlots("2024-06-10", w)
	require.NotEmpty(t, slots)

	prev := -1
	for _, s := range slots {
		var h, m int
		_, err := fmt.Sscanf(s, "%d:%d", &h, &m)
		require.NoError(t, err)

		minute := h*60 + m
		if prev >= 0 {
			assert.Equal(t, w.SlotMinutes, minute-prev, "slots must step by SlotMinutes")
		}
		assert.LessOrEqual(t, minute+w.SlotMinutes, w.EndHour*60, "slot end must not pass the window end")
		prev = minute
	}
}

func TestGenerateSlotsDropsPartialTrailingSlot(t *testing.T) {
	w := config.SchedulingWindow{SlotMinutes: 25, StartHour: 10, EndHour: 11}
	slots := GenerateSlots("2024-06-10", w)

	// 10:00 and 10:25 fit; a 10:50 slot would end at 11:15.
	assert.Equal(t, []string{"10:00", "10:25"}, slots)
}

func TestGenerateSlotsInvalidDates(t *testing.T) {
	w := defaultWindow()

	for _, date := range []string{"", "not-a-date", "2024-13-01", "2024-02-30", "2024-6-10", "10-06-2024"} {
		assert.Empty(t, GenerateSlots(date, w), "date %q should yield no slots", date)
	}
}

func TestGenerateSlotsInvalidWindow(t *testing.T) {
	assert.Empty(t, GenerateSlots("2024-06-10", config.SchedulingWindow{SlotMinutes: 0, StartHour: 10, EndHour: 17}))
	assert.Empty(t, GenerateSlots("2024-06-10", config.SchedulingWindow{SlotMinutes: 20, StartHour: 17, EndHour: 10}))
	assert.Empty(t, GenerateSlots("2024-06-10", config.SchedulingWindow{SlotMinutes: 20, StartHour: 10, EndHour: 10}))
}

func TestGenerateSlotsDeterministic(t *testing.T) {
	w := defaultWindow()
	assert.Equal(t, GenerateSlots("2024-06-10", w), GenerateSlots("2024-06-10", w))
}

func TestAvailableSlotsSubtractsBookedTimes(t *testing.T) {
	all := GenerateSlots("2024-06-10", defaultWindow())
	free := AvailableSlots(all, []string{"10:00"})

	require.Len(t, free, len(all)-1)
	assert.NotContains(t, free, "10:00")
	for _, s := range free {
		assert.Contains(t, all, s)
	}
}

func TestAvailableSlotsPreservesOrder(t *testing.T) {
	all := []string{"10:00", "10:20", "10:40", "11:00"}
	free := AvailableSlots(all, []string{"10:20"})
	assert.Equal(t, []string{"10:00", "10:40", "11:00"}, free)
}

func TestAvailableSlotsNoBookings(t *testing.T) {
	all := GenerateSlots("2024-06-10", defaultWindow())
	assert.Equal(t, all, AvailableSlots(all, nil))
}

func TestAvailableSlotsIgnoresUnknownBookedTimes(t *testing.T) {
	all := []string{"10:00", "10:20"}
	assert.Equal(t, all, AvailableSlots(all, []string{"09:00"}))
}
