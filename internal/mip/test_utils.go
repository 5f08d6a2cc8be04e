package mip

import "fmt"

const enumerateVarLimit = 20

// EnumerateSolver solves small all-binary models by full enumeration. It
// exists so package tests stay hermetic when no engine binary is installed;
// it refuses anything beyond enumerateVarLimit variables and is not part of
// the supported solving path.
type EnumerateSolver struct{}

func NewEnumerateSolver() Solver {
	return &EnumerateSolver{}
}

func (solver *EnumerateSolver) Solve(model *Model) (Solution, error) {
	count := len(model.Variables)
	if count > enumerateVarLimit {
		return Solution{}, fmt.Errorf("enumerate solver supports at most %d variables, got %d", enumerateVarLimit, count)
	}
	for _, variable := range model.Variables {
		if variable.Type != Binary {
			return Solution{}, fmt.Errorf("enumerate solver supports binary variables only")
		}
	}

	var best []float64
	var bestObjective float64
	values := make([]float64, count)

	for mask := 0; mask < 1<<count; mask++ {
		for i := range values {
			values[i] = float64((mask >> i) & 1)
		}
		if !AssertFeasible(model, values) {
			continue
		}
		objective := Evaluate(model, values)
		if best == nil ||
			(model.Maximize && objective > bestObjective) ||
			(!model.Maximize && objective < bestObjective) {
			best = append([]float64(nil), values...)
			bestObjective = objective
		}
	}

	if best == nil {
		return Solution{Status: StatusInfeasible}, nil
	}
	return Solution{
		Status:    StatusOptimal,
		Objective: bestObjective,
		Values:    best,
	}, nil
}

// AssertFeasible reports whether the assignment satisfies every constraint.
func AssertFeasible(model *Model, values []float64) bool {
	const epsilon = 1e-9
	for _, constraint := range model.Constraints {
		total := 0.0
		for _, term := range constraint.Terms {
			total += term.Coef * values[term.Var]
		}
		switch constraint.Sense {
		case LessEq:
			if total > constraint.RHS+epsilon {
				return false
			}
		case GreaterEq:
			if total < constraint.RHS-epsilon {
				return false
			}
		case Equal:
			if total > constraint.RHS+epsilon || total < constraint.RHS-epsilon {
				return false
			}
		}
	}
	return true
}

// Evaluate computes the objective value of an assignment, offset included.
func Evaluate(model *Model, values []float64) float64 {
	total := model.Offset
	for _, term := range model.Objective {
		total += term.Coef * values[term.Var]
	}
	return total
}
