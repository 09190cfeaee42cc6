package workoutlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// CSV column names of the workout export format.
const (
	columnDate         = "date"
	columnWorkoutName  = "workout_name"
	columnExerciseName = "exercise_name"
	columnWeightKg     = "weight_kg"
	columnReps         = "reps"
	columnSets         = "sets"
)

var csvDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02/01/2006",
}

// RowError describes a single CSV row that could not be parsed.
// Invalid rows are reported but do not fail the whole import.
type RowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

type ParseResult struct {
	Entries []Entry    `json:"entries"`
	Skipped []RowError `json:"skipped,omitempty"`
}

// ParseCSV reads workout entries from the given CSV stream. Required
// columns: date, exercise_name, weight_kg, reps; optional: workout_name,
// sets. Column order is taken from the header row.
func ParseCSV(reader io.Reader) (*ParseResult, error) {
	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true

	header, err := csvReader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty csv file")
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	columnIndex := make(map[string]int, len(header))
	for i, col := range header {
		columnIndex[strings.ToLower(strings.TrimSpace(col))] = i
	}

	for _, required := range []string{columnDate, columnExerciseName, columnWeightKg, columnReps} {
		if _, ok := columnIndex[required]; !ok {
			return nil, fmt.Errorf("missing required csv column: %s", required)
		}
	}

	result := &ParseResult{
		Entries: make([]Entry, 0),
	}

	line := 1 // header was line 1
	for {
		record, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			result.Skipped = append(result.Skipped, RowError{
				Line:   line,
				Reason: err.Error(),
			})
			continue
		}

		entry, err := record2entry(record, columnIndex)
		if err != nil {
			result.Skipped = append(result.Skipped, RowError{
				Line:   line,
				Reason: err.Error(),
			})
			continue
		}

		result.Entries = append(result.Entries, *entry)
	}

	return result, nil
}

func record2entry(record []string, columnIndex map[string]int) (*Entry, error) {
	field := func(column string) string {
		i, ok := columnIndex[column]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	date, err := parseEntryDate(field(columnDate))
	if err != nil {
		return nil, err
	}

	exerciseName := field(columnExerciseName)
	if exerciseName == "" {
		return nil, errors.New("empty exercise name")
	}

	kilos, err := strconv.ParseFloat(field(columnWeightKg), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid weight: %q", field(columnWeightKg))
	}
	if kilos < 0 {
		return nil, fmt.Errorf("negative weight: %v", kilos)
	}

	reps, err := strconv.Atoi(field(columnReps))
	if err != nil {
		return nil, fmt.Errorf("invalid reps: %q", field(columnReps))
	}
	if reps <= 0 {
		return nil, fmt.Errorf("non-positive reps: %d", reps)
	}

	sets := 1
	if setsStr := field(columnSets); setsStr != "" {
		sets, err = strconv.Atoi(setsStr)
		if err != nil || sets < 1 {
			return nil, fmt.Errorf("invalid sets: %q", setsStr)
		}
	}

	return &Entry{
		Date:         date,
		WorkoutName:  field(columnWorkoutName),
		ExerciseName: exerciseName,
		Kilos:        kilos,
		Reps:         reps,
		Sets:         sets,
	}, nil
}

func parseEntryDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty date")
	}
	for _, layout := range csvDateLayouts {
		if date, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return date, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date: %q", value)
}
