package analytics_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/repstats/internal/analytics"
	"github.com/2beens/repstats/internal/workoutlog"
)

func squatEntry(day time.Time, kilos float64, reps int) workoutlog.Entry {
	return workoutlog.Entry{
		Date:                 day,
		ExerciseName:         "Squat",
		MuscleGroupPrimary:   "quads",
		MuscleGroupSecondary: "glutes",
		Kilos:                kilos,
		Reps:                 reps,
		Sets:                 3,
	}
}

func TestPerformanceSeries_brzyckiAndSessionIndex(t *testing.T) {
	// 100kg x 5 -> 100 * 36 / 32 = 112.5
	entries := []workoutlog.Entry{
		squatEntry(day(2025, 1, 1), 100, 5),
		squatEntry(day(2025, 1, 8), 100, 5),
	}

	records := analytics.PerformanceSeries("Squat", entries)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "Squat", first.ExerciseName)
	assert.Equal(t, 1, first.SessionIndex)
	assert.Equal(t, day(2025, 1, 1), first.SessionDate)
	assert.Equal(t, 100.0, first.MaxLoad)
	assert.Equal(t, 500.0, first.TotalVolume)
	assert.Equal(t, 112.5, first.EstimatedMax)
	assert.Nil(t, first.PctChangeEstimatedMax)
	assert.Nil(t, first.PctChangeVolume)

	second := records[1]
	assert.Equal(t, 2, second.SessionIndex)
	assert.Equal(t, 112.5, second.EstimatedMax)
	require.NotNil(t, second.PctChangeEstimatedMax)
	assert.Equal(t, 0.0, *second.PctChangeEstimatedMax)
	require.NotNil(t, second.PctChangeVolume)
	assert.Equal(t, 0.0, *second.PctChangeVolume)
}

func TestPerformanceSeries_estimateFallbackAboveValidityRange(t *testing.T) {
	entries := []workoutlog.Entry{
		squatEntry(day(2025, 1, 1), 80, 40),
	}

	records := analytics.PerformanceSeries("Squat", entries)
	require.Len(t, records, 1)
	// 40 reps is outside the formula's validity range, never evaluated
	assert.Equal(t, 80.0, records[0].EstimatedMax)
	assert.Equal(t, 80.0, records[0].MaxLoad)
	assert.Equal(t, 3200.0, records[0].TotalVolume)
}

func TestPerformanceSeries_bestEstimateAcrossSessionEntries(t *testing.T) {
	entries := []workoutlog.Entry{
		squatEntry(day(2025, 1, 1), 100, 5),  // 112.5
		squatEntry(day(2025, 1, 1), 110, 2),  // 110 * 36 / 35 ~= 113.14
		squatEntry(day(2025, 1, 1), 120, 40), // not qualifying
	}

	records := analytics.PerformanceSeries("Squat", entries)
	require.Len(t, records, 1)

	session := records[0]
	assert.Equal(t, 120.0, session.MaxLoad)
	assert.InDelta(t, 110*36.0/35.0, session.EstimatedMax, 0.0001)
	// volume is load times reps per entry, summed, no sets multiplier
	assert.Equal(t, 100.0*5+110*2+120*40, session.TotalVolume)
}

func TestPerformanceSeries_sameDayEntriesFormOneSession(t *testing.T) {
	entries := []workoutlog.Entry{
		squatEntry(day(2025, 1, 1), 100, 5),
		squatEntry(day(2025, 1, 1), 105, 3),
		squatEntry(day(2025, 1, 3), 100, 5),
		squatEntry(day(2025, 1, 10), 102.5, 5),
	}

	records := analytics.PerformanceSeries("Squat", entries)
	require.Len(t, records, 3)
	for i, record := range records {
		assert.Equal(t, i+1, record.SessionIndex)
	}
	assert.Equal(t, day(2025, 1, 1), records[0].SessionDate)
	assert.Equal(t, day(2025, 1, 3), records[1].SessionDate)
	assert.Equal(t, day(2025, 1, 10), records[2].SessionDate)
}

func TestPerformanceSeries_pctChange(t *testing.T) {
	entries := []workoutlog.Entry{
		squatEntry(day(2025, 1, 1), 100, 5),
		squatEntry(day(2025, 1, 8), 110, 5),
	}

	records := analytics.PerformanceSeries("Squat", entries)
	require.Len(t, records, 2)

	require.NotNil(t, records[1].PctChangeEstimatedMax)
	assert.InDelta(t, 10.0, *records[1].PctChangeEstimatedMax, 0.0001)
	require.NotNil(t, records[1].PctChangeVolume)
	assert.InDelta(t, 10.0, *records[1].PctChangeVolume, 0.0001)
}

func TestPerformanceSeries_zeroPreviousValueMeansNoPctChange(t *testing.T) {
	// bodyweight session logged with zero load
	entries := []workoutlog.Entry{
		squatEntry(day(2025, 1, 1), 0, 10),
		squatEntry(day(2025, 1, 8), 100, 5),
	}

	records := analytics.PerformanceSeries("Squat", entries)
	require.Len(t, records, 2)

	assert.Equal(t, 0.0, records[0].TotalVolume)
	assert.Equal(t, 0.0, records[0].EstimatedMax)
	assert.Nil(t, records[1].PctChangeEstimatedMax)
	assert.Nil(t, records[1].PctChangeVolume)
}

func TestPerformanceSeries_emptyInput(t *testing.T) {
	records := analytics.PerformanceSeries("Squat", nil)
	assert.Empty(t, records)
	assert.NotNil(t, records)
}

func TestPerformanceSeries_idempotent(t *testing.T) {
	entries := []workoutlog.Entry{
		squatEntry(day(2025, 1, 1), 100, 5),
		squatEntry(day(2025, 1, 1), 105, 3),
		squatEntry(day(2025, 1, 8), 102.5, 5),
		squatEntry(day(2025, 1, 15), 80, 40),
	}

	firstRun, err := json.Marshal(analytics.PerformanceSeries("Squat", entries))
	require.NoError(t, err)
	secondRun, err := json.Marshal(analytics.PerformanceSeries("Squat", entries))
	require.NoError(t, err)
	assert.Equal(t, firstRun, secondRun)
}
