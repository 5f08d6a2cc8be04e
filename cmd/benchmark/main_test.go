package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToRecord(t *testing.T) {
	result := BenchmarkResult{
		Engine: cbc,
		Scenario: ScenarioMetadata{
			Name:        "schedule_c20_r8",
			Courses:     20,
			Classrooms:  8,
			Periods:     30,
			Variables:   4800,
			Constraints: 5000,
		},
		Duration:  1512 * time.Millisecond,
		Outcome:   solved,
		Objective: 2041.5,
	}

	record := toRecord(result)

	assert.Equal(t, []string{"cbc", "schedule_c20_r8", "20", "8", "30", "4800", "5000", "1512", "solved", "2041.5"}, record)
}

func TestScheduleOutcomeNames(t *testing.T) {
	assert.Equal(t, "solved", outcomeTypes[solved])
	assert.Equal(t, "infeasible", outcomeTypes[infeasible])
	assert.Equal(t, "timeout", outcomeTypes[timeout])
}

func TestScenarioSizesAreValid(t *testing.T) {
	for _, controls := range scheduleScenarios() {
		assert.GreaterOrEqual(t, controls.Professors, 1)
		assert.LessOrEqual(t, controls.MinSessions, controls.MaxSessions)
	}
}
