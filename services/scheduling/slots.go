// Package scheduling holds the pure slot arithmetic for the discovery-call
// booking system: generating the daily slot grid and subtracting reserved
// slots from it. Nothing here touches storage or the clock.
package scheduling

import (
	"fmt"
	"time"

	"portfolio/config"
)

// GenerateSlots returns the ordered slot start times ("HH:MM") for the given
// calendar date under the scheduling window. A malformed or semantically
// invalid date yields an empty result rather than an error; callers that need
// to distinguish "bad date" from "no slots" must validate the date first.
//
// Slots start at StartHour:00 and step by SlotMinutes; a slot whose end would
// pass EndHour:00 is dropped. The result is deterministic for a given input.
func GenerateSlots(date string, w config.SchedulingWindow) []string {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil
	}
	if w.SlotMinutes <= 0 || w.StartHour >= w.EndHour {
		return nil
	}

	var slots []string
	end := w.EndHour * 60
	for m := w.StartHour * 60; m+w.SlotMinutes <= end; m += w.SlotMinutes {
		slots = append(slots, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return slots
}

// AvailableSlots removes every slot present in booked from all, preserving
// order. It is the availability resolver: all comes from GenerateSlots,
// booked from the store's confirmed bookings for the same date.
func AvailableSlots(all []string, booked []string) []string {
	if len(booked) == 0 {
		return all
	}

	taken := make(map[string]struct{}, len(booked))
	for _, t := range booked {
		taken[t] = struct{}{}
	}

	free := make([]string, 0, len(all))
	for _, s := range all {
		if _, ok := taken[s]; !ok {
			free = append(free, s)
		}
	}
	return free
}
