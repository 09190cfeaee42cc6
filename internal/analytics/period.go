package analytics

import "time"

// Time period tokens accepted by the analytics read operations.
const (
	PeriodAll    = "all"
	PeriodLast7  = "last_7"
	PeriodLast14 = "last_14"
	PeriodLast30 = "last_30"
	PeriodLast90 = "last_90"
)

var periodDays = map[string]int{
	PeriodLast7:  7,
	PeriodLast14: 14,
	PeriodLast30: 30,
	PeriodLast90: 90,
}

// ResolvePeriod maps a period token to an inclusive lower-bound date relative
// to now, at day granularity. "all" and any unrecognized token resolve to no
// bound (nil), never to an error.
func ResolvePeriod(now time.Time, periodToken string) *time.Time {
	days, ok := periodDays[periodToken]
	if !ok {
		return nil
	}
	from := now.UTC().AddDate(0, 0, -days)
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	return &from
}
