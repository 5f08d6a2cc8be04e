package schedule

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"scheduleopt/internal/mip"
)

// Scheduler runs one Parameter Set through build, solve and projection. It
// holds no state across calls; concurrent invocations each get their own
// model and variable grid.
type Scheduler struct {
	solver mip.Solver
	logger *zap.Logger
}

func NewScheduler(solver mip.Solver, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{solver: solver, logger: logger}
}

// Schedule validates the Parameter Set, assembles the model, invokes the
// solving engine and projects the outcome. Infeasibility is reported through
// Result.Outcome, never as an error; an error means invalid input or an
// engine failure.
func (s *Scheduler) Schedule(params *ParameterSet) (*Result, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	if len(params.Courses) == 0 {
		// Nothing to place: trivially optimal, no engine round trip.
		s.logger.Info("empty course universe, returning trivial schedule")
		return &Result{
			Outcome:     OutcomeScheduled,
			Optimal:     true,
			Assignments: make([]Assignment, 0),
			days:        params.Days,
			slots:       params.Slots,
		}, nil
	}

	model, indexer := BuildModel(params)
	s.logger.Info("model built",
		zap.Int("variables", len(model.Variables)),
		zap.Int("constraints", len(model.Constraints)),
		zap.Int("courses", len(params.Courses)),
		zap.Int("classrooms", len(params.Classrooms)),
		zap.Int("periods", params.Days*params.Slots),
	)

	start := time.Now()
	solution, err := s.solver.Solve(model)
	if err != nil {
		return nil, fmt.Errorf("solving engine failed: %w", err)
	}
	s.logger.Info("solve finished",
		zap.Stringer("status", solution.Status),
		zap.Float64("objective", solution.Objective),
		zap.Duration("duration", time.Since(start)),
	)

	switch {
	case solution.Status == mip.StatusInfeasible:
		return infeasibleResult(params), nil
	case solution.HasValues():
		return project(params, indexer, solution), nil
	default:
		return nil, fmt.Errorf("engine terminated with status %v and no assignment", solution.Status)
	}
}

// Verify replays every hard invariant over a projected result, tracking
// occupancy per course, room and professor and recounting sessions.
func Verify(params *ParameterSet, result *Result) bool {
	if result.Outcome == OutcomeInfeasible {
		return len(result.Assignments) == 0
	}

	sessionCounts := make(map[int]int, len(params.Courses))
	courseBusy := make(map[int]map[Period]bool, len(params.Courses))
	roomBusy := make(map[int]map[Period]bool, len(params.Classrooms))
	professorBusy := make(map[int]map[Period]bool, len(params.Professors))

	for _, assignment := range result.Assignments {
		period := assignment.Period()
		course := params.Courses[assignment.Course]
		room := params.Classrooms[assignment.Room]

		// Structural legality of the single record.
		if !params.Compatible(course.ID, room.ID) || course.Enrollment > room.Capacity {
			return false
		}

		// A course occupies one room per period, a room hosts one course.
		if courseBusy[course.ID] == nil {
			courseBusy[course.ID] = make(map[Period]bool)
		}
		if roomBusy[room.ID] == nil {
			roomBusy[room.ID] = make(map[Period]bool)
		}
		if courseBusy[course.ID][period] || roomBusy[room.ID][period] {
			return false
		}
		courseBusy[course.ID][period] = true
		roomBusy[room.ID][period] = true

		// Every professor assigned to the course must be available and free.
		for _, professor := range params.Professors {
			if !professor.Teaches(course.ID) {
				continue
			}
			if !professor.Availability[period] {
				return false
			}
			if professorBusy[professor.ID] == nil {
				professorBusy[professor.ID] = make(map[Period]bool)
			}
			if professorBusy[professor.ID][period] {
				return false
			}
			professorBusy[professor.ID][period] = true
		}

		sessionCounts[course.ID]++
	}

	// Session counts match the requirement exactly, not at-most.
	for _, course := range params.Courses {
		if sessionCounts[course.ID] != course.Sessions {
			return false
		}
	}

	return true
}
