package appointment

import "time"

// ===============================
// Slot conflict detection
// ===============================

// Slots are half-open intervals [start, start+duration). Two slots conflict
// iff the intervals intersect; a slot ending exactly where another begins
// does not conflict.

func Overlaps(aStart, bStart time.Time, duration time.Duration) bool {
	aEnd := aStart.Add(duration)
	bEnd := bStart.Add(duration)
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// IsBookable decides whether a candidate slot can be booked against the
// start times of the existing booked slots for the same doctor and day.
// Pure: no clock, no store.
func IsBookable(candidateStart time.Time, existingStarts []time.Time, duration time.Duration) bool {
	for _, s := range existingStarts {
		if Overlaps(candidateStart, s, duration) {
			return false
		}
	}
	return true
}

// DayBounds returns the local midnight-to-midnight window containing t.
// The end bound is the next calendar midnight, not start+24h, so the window
// stays correct on 23- and 25-hour DST transition days.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := time.Date(t.Year(), t.Month(), t.Day()+1, 0, 0, 0, 0, t.Location())
	return start, end
}
