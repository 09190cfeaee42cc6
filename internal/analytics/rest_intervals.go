package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/2beens/repstats/internal/workoutlog"
)

type CategoryType string

const (
	CategoryByMuscleGroup CategoryType = "by_muscle_group"
	CategoryByExercise    CategoryType = "by_exercise"
)

func ParseCategoryType(value string) (CategoryType, error) {
	switch CategoryType(value) {
	case CategoryByMuscleGroup:
		return CategoryByMuscleGroup, nil
	case CategoryByExercise:
		return CategoryByExercise, nil
	default:
		return "", fmt.Errorf("unknown category type: %q", value)
	}
}

// RestIntervalMetric holds the rest statistics for one training category.
// The three rest-day fields are nil when the category has fewer than two
// distinct training dates.
type RestIntervalMetric struct {
	Category         string     `json:"category"`
	TotalOccurrences int        `json:"totalOccurrences"`
	FirstDate        time.Time  `json:"firstDate"`
	LastDate         time.Time  `json:"lastDate"`
	AvgRestDays      *float64   `json:"avgRestDays,omitempty"`
	MinRestDays      *int       `json:"minRestDays,omitempty"`
	MaxRestDays      *int       `json:"maxRestDays,omitempty"`
}

// RestIntervals groups the given entries by category and computes rest
// statistics from the whole-day gaps between consecutive distinct training
// dates. Same-day entries for a category collapse to one occurrence.
// Categories absent from the entry set are omitted. The result is ordered
// by ascending average rest days, categories without one last.
func RestIntervals(entries []workoutlog.Entry, categoryType CategoryType) []RestIntervalMetric {
	occurrences := make(map[string]map[time.Time]struct{})
	for _, entry := range entries {
		category := entryCategory(entry, categoryType)
		if occurrences[category] == nil {
			occurrences[category] = make(map[time.Time]struct{})
		}
		occurrences[category][entry.Day()] = struct{}{}
	}

	metrics := make([]RestIntervalMetric, 0, len(occurrences))
	for category, dateSet := range occurrences {
		dates := make([]time.Time, 0, len(dateSet))
		for date := range dateSet {
			dates = append(dates, date)
		}
		sort.Slice(dates, func(i, j int) bool {
			return dates[i].Before(dates[j])
		})

		metric := RestIntervalMetric{
			Category:         category,
			TotalOccurrences: len(dates),
			FirstDate:        dates[0],
			LastDate:         dates[len(dates)-1],
		}

		gaps := make([]int, 0, len(dates)-1)
		for i := 1; i < len(dates); i++ {
			gap := wholeDaysBetween(dates[i-1], dates[i])
			if gap <= 0 {
				continue
			}
			gaps = append(gaps, gap)
		}

		if len(gaps) > 0 {
			minGap, maxGap, gapsSum := gaps[0], gaps[0], 0
			for _, gap := range gaps {
				if gap < minGap {
					minGap = gap
				}
				if gap > maxGap {
					maxGap = gap
				}
				gapsSum += gap
			}
			avg := float64(gapsSum) / float64(len(gaps))
			metric.AvgRestDays = &avg
			metric.MinRestDays = &minGap
			metric.MaxRestDays = &maxGap
		}

		metrics = append(metrics, metric)
	}

	sort.Slice(metrics, func(i, j int) bool {
		mi, mj := metrics[i], metrics[j]
		switch {
		case mi.AvgRestDays == nil && mj.AvgRestDays == nil:
			return mi.Category < mj.Category
		case mi.AvgRestDays == nil:
			return false
		case mj.AvgRestDays == nil:
			return true
		case *mi.AvgRestDays != *mj.AvgRestDays:
			return *mi.AvgRestDays < *mj.AvgRestDays
		default:
			return mi.Category < mj.Category
		}
	})

	return metrics
}

// entryCategory picks the grouping key: the primary/secondary muscle group
// pair, or the exercise name.
func entryCategory(entry workoutlog.Entry, categoryType CategoryType) string {
	if categoryType == CategoryByExercise {
		return entry.ExerciseName
	}
	if entry.MuscleGroupSecondary == "" || entry.MuscleGroupSecondary == workoutlog.UnknownMuscleGroup {
		return entry.MuscleGroupPrimary
	}
	return entry.MuscleGroupPrimary + "/" + entry.MuscleGroupSecondary
}

func wholeDaysBetween(earlier, later time.Time) int {
	return int(later.Sub(earlier).Hours() / 24)
}
