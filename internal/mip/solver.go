package mip

import "time"

type Status int

const (
	// StatusOptimal means the engine proved optimality of the returned values.
	StatusOptimal Status = iota
	// StatusInfeasible means no assignment satisfies the constraints.
	StatusInfeasible
	// StatusTimeLimit means the engine hit its time limit without an
	// optimality proof. Values hold the best assignment found, if any.
	StatusTimeLimit
	// StatusUnknown means the engine terminated without a conclusive status.
	StatusUnknown
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusTimeLimit:
		return "time-limit"
	default:
		return "unknown"
	}
}

// Solution carries the engine outcome for one solve. Values is indexed by
// variable index and is nil when the engine produced no assignment.
type Solution struct {
	Status    Status
	Objective float64
	Values    []float64
}

// HasValues reports whether the solution carries a usable assignment.
func (s Solution) HasValues() bool {
	return (s.Status == StatusOptimal || s.Status == StatusTimeLimit) && s.Values != nil
}

// Solver is an external mixed-integer programming engine. A non-nil error
// means the engine itself failed to run; infeasibility and time limits are
// reported through Solution.Status. Implementations must never report
// StatusOptimal for a run that stopped on its time limit.
type Solver interface {
	Solve(model *Model) (Solution, error)
}

// Options configures a solver adapter. A zero TimeLimit lets the engine run
// unbounded; the limit is enforced by the engine, not locally.
type Options struct {
	TimeLimit time.Duration
}
