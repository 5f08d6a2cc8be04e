package schedule

import (
	"slices"

	"scheduleopt/internal/mip"
)

// binaryThreshold guards against floating rounding of binary engine output.
const binaryThreshold = 0.5

type Outcome int

const (
	// OutcomeScheduled means the engine produced an assignment (optimal or
	// best-found under a time limit).
	OutcomeScheduled Outcome = iota
	// OutcomeInfeasible means the hard constraints admit no assignment. This
	// is distinct from a feasible run with zero assignments.
	OutcomeInfeasible
)

// Assignment is one scheduled session.
type Assignment struct {
	Course     int
	Room       int
	Day        int
	Slot       int
	Enrollment int
	Capacity   int
	RoomType   RoomType
	// Professor is the lowest professor id assigned to the course, or -1
	// when no professor teaches it.
	Professor int
}

func (a Assignment) Period() Period {
	return Period{Day: a.Day, Slot: a.Slot}
}

// Result is the projected outcome of one optimization run.
type Result struct {
	Outcome     Outcome
	Optimal     bool
	Objective   float64
	Assignments []Assignment

	days          int
	slots         int
	preferredHits int
	enrollmentSum int
	capacitySum   int
}

// TotalSessions is the number of scheduled records.
func (r *Result) TotalSessions() int {
	return len(r.Assignments)
}

// PreferredRate is the share of sessions landing on a preferred period of
// their course. ok is false when there are no sessions to rate.
func (r *Result) PreferredRate() (rate float64, ok bool) {
	if len(r.Assignments) == 0 {
		return 0, false
	}
	return float64(r.preferredHits) / float64(len(r.Assignments)), true
}

// Utilization is total enrollment over total capacity of the occupied rooms.
// ok is false when there are no sessions.
func (r *Result) Utilization() (utilization float64, ok bool) {
	if len(r.Assignments) == 0 {
		return 0, false
	}
	return float64(r.enrollmentSum) / float64(r.capacitySum), true
}

// RoomTimetable returns the day-by-slot grid of a classroom; empty cells are
// nil.
func (r *Result) RoomTimetable(room int) [][]*Assignment {
	grid := make([][]*Assignment, r.days)
	for day := range grid {
		grid[day] = make([]*Assignment, r.slots)
	}
	for i, assignment := range r.Assignments {
		if assignment.Room == room {
			grid[assignment.Day][assignment.Slot] = &r.Assignments[i]
		}
	}
	return grid
}

// CourseSessions returns the sessions of a course ordered by day then slot.
func (r *Result) CourseSessions(course int) []Assignment {
	sessions := make([]Assignment, 0)
	for _, assignment := range r.Assignments {
		if assignment.Course == course {
			sessions = append(sessions, assignment)
		}
	}
	slices.SortFunc(sessions, func(a, b Assignment) int {
		if a.Day != b.Day {
			return a.Day - b.Day
		}
		return a.Slot - b.Slot
	})
	return sessions
}

// project converts raw variable values into assignment records and derived
// metrics. The caller has already ruled out infeasible and valueless
// solutions.
func project(params *ParameterSet, indexer Indexer, solution mip.Solution) *Result {
	result := &Result{
		Outcome:     OutcomeScheduled,
		Optimal:     solution.Status == mip.StatusOptimal,
		Objective:   solution.Objective,
		Assignments: make([]Assignment, 0),
		days:        params.Days,
		slots:       params.Slots,
	}

	teacherOf := make(map[int]int, len(params.Courses))
	for _, professor := range params.Professors {
		for _, course := range professor.Courses {
			if current, ok := teacherOf[course]; !ok || professor.ID < current {
				teacherOf[course] = professor.ID
			}
		}
	}

	for index, value := range solution.Values {
		if value < binaryThreshold {
			continue
		}
		course, room, day, slot := indexer.Attributes(index)

		professor := -1
		if id, ok := teacherOf[course]; ok {
			professor = id
		}

		assignment := Assignment{
			Course:     course,
			Room:       room,
			Day:        day,
			Slot:       slot,
			Enrollment: params.Courses[course].Enrollment,
			Capacity:   params.Classrooms[room].Capacity,
			RoomType:   params.Classrooms[room].Type,
			Professor:  professor,
		}
		result.Assignments = append(result.Assignments, assignment)

		if params.Courses[course].Preferred[assignment.Period()] {
			result.preferredHits++
		}
		result.enrollmentSum += assignment.Enrollment
		result.capacitySum += assignment.Capacity
	}

	return result
}

// infeasibleResult reports the distinct no-assignment outcome.
func infeasibleResult(params *ParameterSet) *Result {
	return &Result{
		Outcome: OutcomeInfeasible,
		days:    params.Days,
		slots:   params.Slots,
	}
}
