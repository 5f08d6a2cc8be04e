package facility

import (
	"fmt"

	"go.uber.org/zap"

	"scheduleopt/internal/mip"
)

const openThreshold = 0.5

type Outcome int

const (
	OutcomePlanned Outcome = iota
	OutcomeInfeasible
)

type Allocation struct {
	Customer int
	Facility int
	Fraction float64
}

type Plan struct {
	Outcome     Outcome
	Optimal     bool
	TotalCost   float64
	Opened      []int
	Allocations []Allocation
}

// Planner mirrors the scheduling core's orchestration for the location
// model: validate, build, solve, project.
type Planner struct {
	solver mip.Solver
	logger *zap.Logger
}

func NewPlanner(solver mip.Solver, logger *zap.Logger) *Planner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Planner{solver: solver, logger: logger}
}

func (p *Planner) Plan(params *ParameterSet) (*Plan, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if len(params.Customers) == 0 {
		return &Plan{Outcome: OutcomePlanned, Optimal: true}, nil
	}

	model, index := BuildModel(params)
	p.logger.Info("location model built",
		zap.Int("variables", len(model.Variables)),
		zap.Int("constraints", len(model.Constraints)),
	)

	solution, err := p.solver.Solve(model)
	if err != nil {
		return nil, fmt.Errorf("solving engine failed: %w", err)
	}

	switch {
	case solution.Status == mip.StatusInfeasible:
		return &Plan{Outcome: OutcomeInfeasible}, nil
	case solution.HasValues():
		return projectPlan(params, index, solution), nil
	default:
		return nil, fmt.Errorf("engine terminated with status %v and no assignment", solution.Status)
	}
}

func projectPlan(params *ParameterSet, index varIndex, solution mip.Solution) *Plan {
	plan := &Plan{
		Outcome:     OutcomePlanned,
		Optimal:     solution.Status == mip.StatusOptimal,
		TotalCost:   solution.Objective,
		Opened:      make([]int, 0),
		Allocations: make([]Allocation, 0),
	}

	for _, facility := range params.Facilities {
		if solution.Values[index.open(facility.ID)] >= openThreshold {
			plan.Opened = append(plan.Opened, facility.ID)
		}
	}
	for _, customer := range params.Customers {
		for _, facility := range params.Facilities {
			fraction := solution.Values[index.allocation(customer.ID, facility.ID)]
			if fraction > 0 {
				plan.Allocations = append(plan.Allocations, Allocation{
					Customer: customer.ID,
					Facility: facility.ID,
					Fraction: fraction,
				})
			}
		}
	}
	return plan
}
