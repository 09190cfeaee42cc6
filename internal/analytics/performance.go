package analytics

import (
	"sort"
	"time"

	"github.com/2beens/repstats/internal/workoutlog"
)

// PerformanceRecord is one training session of one exercise, with its KPIs
// and the percentage change vs the previous session. The two pct change
// fields are nil for the first session and whenever the previous value
// is zero.
type PerformanceRecord struct {
	ExerciseName          string    `json:"exerciseName"`
	SessionDate           time.Time `json:"sessionDate"`
	SessionIndex          int       `json:"sessionIndex"`
	MaxLoad               float64   `json:"maxLoad"`
	TotalVolume           float64   `json:"totalVolume"`
	EstimatedMax          float64   `json:"estimatedMax"`
	PctChangeEstimatedMax *float64  `json:"pctChangeEstimatedMax,omitempty"`
	PctChangeVolume       *float64  `json:"pctChangeVolume,omitempty"`
}

// brzyckiEstimate projects the one-rep max from a (load, reps) set. The
// formula is valid for 1 to 35 reps only; the divisor passes through zero
// at 37 reps and the estimate is meaningless long before that.
func brzyckiEstimate(load float64, reps int) (float64, bool) {
	if reps < 1 || reps > 35 {
		return 0, false
	}
	return load * 36 / float64(37-reps), true
}

// PerformanceSeries groups the given entries of one exercise into sessions
// by calendar date and computes per-session max load, total volume
// (load times reps, summed over the session's entries) and the estimated
// one-rep max (best Brzycki estimate across the session's qualifying
// entries, falling back to the session max load when none qualifies).
// Sessions are ordered ascending by date and indexed starting at 1.
func PerformanceSeries(exerciseName string, entries []workoutlog.Entry) []PerformanceRecord {
	sessions := make(map[time.Time][]workoutlog.Entry)
	for _, entry := range entries {
		day := entry.Day()
		sessions[day] = append(sessions[day], entry)
	}

	sessionDates := make([]time.Time, 0, len(sessions))
	for date := range sessions {
		sessionDates = append(sessionDates, date)
	}
	sort.Slice(sessionDates, func(i, j int) bool {
		return sessionDates[i].Before(sessionDates[j])
	})

	records := make([]PerformanceRecord, 0, len(sessionDates))
	for i, date := range sessionDates {
		record := PerformanceRecord{
			ExerciseName: exerciseName,
			SessionDate:  date,
			SessionIndex: i + 1,
		}

		estimatedMaxSet := false
		for _, entry := range sessions[date] {
			if entry.Kilos > record.MaxLoad {
				record.MaxLoad = entry.Kilos
			}
			record.TotalVolume += entry.Kilos * float64(entry.Reps)

			if estimate, ok := brzyckiEstimate(entry.Kilos, entry.Reps); ok {
				if !estimatedMaxSet || estimate > record.EstimatedMax {
					record.EstimatedMax = estimate
					estimatedMaxSet = true
				}
			}
		}
		if !estimatedMaxSet {
			record.EstimatedMax = record.MaxLoad
		}

		if i > 0 {
			previous := records[i-1]
			record.PctChangeEstimatedMax = pctChange(previous.EstimatedMax, record.EstimatedMax)
			record.PctChangeVolume = pctChange(previous.TotalVolume, record.TotalVolume)
		}

		records = append(records, record)
	}

	return records
}

// pctChange returns nil when the previous value is zero, never a division
// by zero or an infinite value.
func pctChange(previous, current float64) *float64 {
	if previous == 0 {
		return nil
	}
	change := 100 * (current - previous) / previous
	return &change
}
