package facility

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scheduleopt/internal/mip"
)

func sampleParams() *ParameterSet {
	return &ParameterSet{
		Customers: []Customer{
			{ID: 0, Demand: 40},
			{ID: 1, Demand: 60},
		},
		Facilities: []Facility{
			{ID: 0, FixedCost: 500, Capacity: 100},
			{ID: 1, FixedCost: 800, Capacity: 200},
		},
		TransportCost: map[CustomerFacility]int{
			{Customer: 0, Facility: 0}: 10,
			{Customer: 0, Facility: 1}: 30,
			{Customer: 1, Facility: 0}: 20,
			{Customer: 1, Facility: 1}: 40,
		},
	}
}

func TestBuildModelShape(t *testing.T) {
	params := sampleParams()

	model, index := BuildModel(params)

	// Two binary open indicators plus four continuous allocation fractions.
	require.Len(t, model.Variables, 6)
	assert.Equal(t, mip.Binary, model.Variables[index.open(1)].Type)
	assert.Equal(t, mip.Continuous, model.Variables[index.allocation(1, 1)].Type)
	assert.False(t, model.Maximize)

	assert.Len(t, model.Constraints, len(params.Customers)+len(params.Facilities))
	demand := model.Constraints[0]
	assert.Equal(t, "demand_i0", demand.Name)
	assert.Equal(t, mip.Equal, demand.Sense)
	assert.Equal(t, 1.0, demand.RHS)

	capacity := model.Constraints[2]
	assert.Equal(t, "capacity_j0", capacity.Name)
	assert.Equal(t, mip.LessEq, capacity.Sense)
	assert.Equal(t, 0.0, capacity.RHS)
	// The open indicator enters the load with negative capacity.
	assert.Equal(t, -100.0, capacity.Terms[len(capacity.Terms)-1].Coef)
}

func TestPlanProjection(t *testing.T) {
	// Arrange: facility 0 serves both customers; the engine reports the
	// corresponding assignment.
	params := sampleParams()
	_, index := BuildModel(params)

	values := make([]float64, 6)
	values[index.open(0)] = 1
	values[index.allocation(0, 0)] = 1
	values[index.allocation(1, 0)] = 1
	solver := &stubSolver{solution: mip.Solution{
		Status:    mip.StatusOptimal,
		Objective: 530,
		Values:    values,
	}}

	// Act
	plan, err := NewPlanner(solver, nil).Plan(params)

	// Assert
	require.Nil(t, err)
	assert.Equal(t, OutcomePlanned, plan.Outcome)
	assert.True(t, plan.Optimal)
	assert.Equal(t, 530.0, plan.TotalCost)
	assert.Equal(t, []int{0}, plan.Opened)
	require.Len(t, plan.Allocations, 2)
	assert.Equal(t, Allocation{Customer: 0, Facility: 0, Fraction: 1}, plan.Allocations[0])
	assert.Equal(t, Allocation{Customer: 1, Facility: 0, Fraction: 1}, plan.Allocations[1])
}

func TestPlanInfeasible(t *testing.T) {
	solver := &stubSolver{solution: mip.Solution{Status: mip.StatusInfeasible}}

	plan, err := NewPlanner(solver, nil).Plan(sampleParams())

	require.Nil(t, err)
	assert.Equal(t, OutcomeInfeasible, plan.Outcome)
	assert.Empty(t, plan.Opened)
}

func TestPlanEngineError(t *testing.T) {
	solver := &stubSolver{err: errors.New("engine crashed")}

	_, err := NewPlanner(solver, nil).Plan(sampleParams())

	assert.NotNil(t, err)
}

func TestPlanRejectsInvalidParams(t *testing.T) {
	params := sampleParams()
	params.Customers[0].Demand = 0

	_, err := NewPlanner(&stubSolver{}, nil).Plan(params)

	assert.NotNil(t, err)
}

func TestGenerateScenario(t *testing.T) {
	params, err := Generate(Controls{Customers: 10, Facilities: 5, Seed: 42})

	require.Nil(t, err)
	assert.Nil(t, params.Validate())
	assert.Len(t, params.Customers, 10)
	assert.Len(t, params.Facilities, 5)
	assert.Len(t, params.TransportCost, 50)

	again, err := Generate(Controls{Customers: 10, Facilities: 5, Seed: 42})
	require.Nil(t, err)
	assert.Equal(t, params, again)
}

type stubSolver struct {
	solution mip.Solution
	err      error
}

func (s *stubSolver) Solve(*mip.Model) (mip.Solution, error) {
	return s.solution, s.err
}
