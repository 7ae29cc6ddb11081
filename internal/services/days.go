package services

import "time"

const dayLayout = "2006-01-02"

// DayKey collapses a timestamp to its calendar-day identity in the
// timestamp's own location. Two timestamps on the same local day map
// to the same key regardless of time of day.
func DayKey(value time.Time) string {
	return value.Format(dayLayout)
}

func SameDay(a, b time.Time) bool {
	return DayKey(a) == DayKey(b)
}

// DateOnly drops the time-of-day component, keeping the location.
func DateOnly(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, value.Location())
}

// DaysBetween counts whole calendar days from a to b. Both dates are
// rebased to UTC first, so the count is unaffected by zone offset
// changes between them (a 23-hour local day still counts as one day).
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	start := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	end := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}
