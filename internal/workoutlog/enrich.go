package workoutlog

import "strings"

// Enricher resolves exercise names to muscle group pairs:
// exact match first, then keyword rules, then the configured default.
// Entries reaching the analytics engine always carry resolved muscle
// groups, or the "unknown" sentinel.
type Enricher struct {
	lookup   map[string]MuscleGroups
	rules    []KeywordRule
	defaults MuscleGroups
}

func NewEnricher(mapping *Mapping) *Enricher {
	lookup := make(map[string]MuscleGroups)
	for _, em := range mapping.Exercises {
		for _, name := range em.Names {
			lookup[NormalizeExerciseName(name)] = MuscleGroups{
				Primary:   em.Primary,
				Secondary: em.Secondary,
			}
		}
	}

	return &Enricher{
		lookup: lookup,
		rules:  mapping.Rules,
		defaults: MuscleGroups{
			Primary:   mapping.DefaultPrimary,
			Secondary: mapping.DefaultSecondary,
		},
	}
}

// NormalizeExerciseName lowercases, trims and collapses inner whitespace.
func NormalizeExerciseName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// Resolve returns the muscle groups for the given exercise name, and whether
// the name was actually mapped (false means the default was applied).
func (e *Enricher) Resolve(exerciseName string) (MuscleGroups, bool) {
	if exerciseName == "" {
		return MuscleGroups{
			Primary:   UnknownMuscleGroup,
			Secondary: UnknownMuscleGroup,
		}, false
	}

	normalized := NormalizeExerciseName(exerciseName)

	if groups, ok := e.lookup[normalized]; ok {
		return groups, true
	}

	if groups, ok := e.keywordMatch(normalized); ok {
		return groups, true
	}

	return e.defaults, false
}

func (e *Enricher) keywordMatch(normalized string) (MuscleGroups, bool) {
	for _, rule := range e.rules {
		if !strings.Contains(normalized, strings.ToLower(rule.Keyword)) {
			continue
		}

		excluded := false
		for _, excludeTerm := range rule.Exclude {
			if strings.Contains(normalized, strings.ToLower(excludeTerm)) {
				excluded = true
				break
			}
		}
		if excluded {
			continue
		}

		return MuscleGroups{
			Primary:   rule.Primary,
			Secondary: rule.Secondary,
		}, true
	}

	return MuscleGroups{}, false
}

// EnrichAll fills in muscle groups for all entries that have none set yet,
// and returns the distinct exercise names that fell back to the default.
func (e *Enricher) EnrichAll(entries []Entry) (unmapped []string) {
	seenUnmapped := make(map[string]struct{})
	for i := range entries {
		if entries[i].MuscleGroupPrimary != "" {
			continue
		}

		groups, mapped := e.Resolve(entries[i].ExerciseName)
		entries[i].MuscleGroupPrimary = groups.Primary
		entries[i].MuscleGroupSecondary = groups.Secondary

		if !mapped {
			if _, seen := seenUnmapped[entries[i].ExerciseName]; !seen {
				seenUnmapped[entries[i].ExerciseName] = struct{}{}
				unmapped = append(unmapped, entries[i].ExerciseName)
			}
		}
	}
	return unmapped
}
