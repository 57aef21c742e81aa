// Copyright 2026 The Hearth Authors
// SPDX-License-Identifier: Apache-2.0

package layout

// Story is one unit of work inside a sprint.
type Story struct {
	Name       string
	Percentage float64
}

// Sprint is a named iteration with its own completion percentage and
// child stories.
type Sprint struct {
	Name       string
	Index      int
	Percentage float64
	Stories    []Story
}

// Project is the top of the hierarchy, as shown by the single layout.
// Percentage is the aggregate handed in by the client; the counters
// feed the "Sprint: N" and "US: X/Y" lines.
type Project struct {
	Name             string
	Percentage       float64
	CurrentSprint    int
	TotalSprints     int
	CompletedStories int
	TotalStories     int
	Sprints          []Sprint
}

// clamp bounds a percentage to [0,100].
func clamp(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// storyPercentages extracts clamped percentages in story order.
func storyPercentages(stories []Story) []float64 {
	percentages := make([]float64, len(stories))
	for i, story := range stories {
		percentages[i] = clamp(story.Percentage)
	}
	return percentages
}

// sprintPercentages extracts clamped percentages in sprint order.
func sprintPercentages(sprints []Sprint) []float64 {
	percentages := make([]float64, len(sprints))
	for i, sprint := range sprints {
		percentages[i] = clamp(sprint.Percentage)
	}
	return percentages
}

// mean averages percentages; zero for an empty slice.
func mean(percentages []float64) float64 {
	if len(percentages) == 0 {
		return 0
	}
	total := 0.0
	for _, pct := range percentages {
		total += pct
	}
	return total / float64(len(percentages))
}
