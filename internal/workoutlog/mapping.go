package workoutlog

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// MuscleGroups is a resolved primary/secondary muscle group pair.
type MuscleGroups struct {
	Primary   string
	Secondary string
}

// ExerciseMapping maps a list of exercise names to one muscle group pair.
type ExerciseMapping struct {
	Primary   string   `toml:"primary"`
	Secondary string   `toml:"secondary"`
	Names     []string `toml:"names"`
}

// KeywordRule maps any exercise name containing the keyword to a muscle
// group pair, unless one of the exclude terms is also present.
type KeywordRule struct {
	Keyword   string   `toml:"keyword"`
	Primary   string   `toml:"primary"`
	Secondary string   `toml:"secondary"`
	Exclude   []string `toml:"exclude"`
}

// Mapping is the declarative exercise name -> muscle group configuration.
// It is loaded once at startup and handed to the Enricher as a resolved,
// strongly typed lookup table.
type Mapping struct {
	DefaultPrimary   string            `toml:"default_primary"`
	DefaultSecondary string            `toml:"default_secondary"`
	Exercises        []ExerciseMapping `toml:"exercise"`
	Rules            []KeywordRule     `toml:"rule"`
}

func LoadMapping(path string) (*Mapping, error) {
	var mapping Mapping
	if _, err := toml.DecodeFile(path, &mapping); err != nil {
		return nil, fmt.Errorf("decode exercise mapping %s: %w", path, err)
	}

	if mapping.DefaultPrimary == "" {
		mapping.DefaultPrimary = UnknownMuscleGroup
	}
	if mapping.DefaultSecondary == "" {
		mapping.DefaultSecondary = UnknownMuscleGroup
	}

	return &mapping, nil
}
