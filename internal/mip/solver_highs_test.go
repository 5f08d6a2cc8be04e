package mip

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// maximize 2a + 3b + 2c subject to a + b <= 1 and b + c <= 1; the optimum
// takes a and c for an objective of 4.
func sampleModel() *Model {
	model := &Model{Name: "sample", Maximize: true}
	a := model.AddBinary()
	b := model.AddBinary()
	c := model.AddBinary()
	model.SetObjective([]Term{{Var: a, Coef: 2}, {Var: b, Coef: 3}, {Var: c, Coef: 2}}, true)
	model.AddConstraint(Constraint{Terms: []Term{{Var: a, Coef: 1}, {Var: b, Coef: 1}}, Sense: LessEq, RHS: 1})
	model.AddConstraint(Constraint{Terms: []Term{{Var: b, Coef: 1}, {Var: c, Coef: 1}}, Sense: LessEq, RHS: 1})
	return model
}

func TestParseHiGHSSolutionOptimal(t *testing.T) {
	model := sampleModel()
	output := `Model status
Optimal

# Primal solution values
Feasible
Objective 4
# Columns 3
x0 1
x1 0
x2 1
# Rows 2
c0 1
c1 1

# Dual solution values
None
`

	solution, err := parseHiGHSSolution(model, output)

	require.Nil(t, err)
	assert.Equal(t, StatusOptimal, solution.Status)
	assert.Equal(t, 4.0, solution.Objective)
	assert.Equal(t, []float64{1, 0, 1}, solution.Values)
}

func TestParseHiGHSSolutionInfeasible(t *testing.T) {
	output := `Model status
Infeasible

# Primal solution values
None
`

	solution, err := parseHiGHSSolution(sampleModel(), output)

	require.Nil(t, err)
	assert.Equal(t, StatusInfeasible, solution.Status)
	assert.Nil(t, solution.Values)
}

func TestParseHiGHSSolutionTimeLimit(t *testing.T) {
	output := `Model status
Time limit reached

# Primal solution values
Feasible
Objective 2
# Columns 3
x0 1
x1 0
x2 0
`

	solution, err := parseHiGHSSolution(sampleModel(), output)

	require.Nil(t, err)
	assert.Equal(t, StatusTimeLimit, solution.Status)
	assert.True(t, solution.HasValues())
}

func TestParseHiGHSSolutionGarbage(t *testing.T) {
	_, err := parseHiGHSSolution(sampleModel(), "no status here")
	assert.NotNil(t, err)
}

func TestHiGHSSolveSample(t *testing.T) {
	if _, err := exec.LookPath(binaryPath("highs")); err != nil {
		t.Skip("highs binary not installed")
	}

	model := sampleModel()
	solution, err := NewHiGHSSolver(Options{}).Solve(model)

	require.Nil(t, err)
	assert.Equal(t, StatusOptimal, solution.Status)
	assert.Equal(t, 4.0, solution.Objective)
	assert.True(t, AssertFeasible(model, solution.Values))
}
