package workoutlog

import "time"

// UnknownMuscleGroup is the sentinel used for entries whose exercise name
// has no configured muscle group mapping.
const UnknownMuscleGroup = "unknown"

// Entry is one logged set of an exercise: what was lifted, how many times,
// and on which day. Multiple entries may share a date (same-day sets).
type Entry struct {
	ID                   int       `json:"id"`
	Date                 time.Time `json:"date"`
	WorkoutName          string    `json:"workoutName,omitempty"`
	ExerciseName         string    `json:"exerciseName"`
	MuscleGroupPrimary   string    `json:"muscleGroupPrimary"`
	MuscleGroupSecondary string    `json:"muscleGroupSecondary"`
	Kilos                float64   `json:"kilos"`
	Reps                 int       `json:"reps"`
	Sets                 int       `json:"sets,omitempty"`
	CreatedAt            time.Time `json:"createdAt"`
}

// Day returns the calendar day of the entry, midnight UTC.
func (e Entry) Day() time.Time {
	year, month, day := e.Date.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
