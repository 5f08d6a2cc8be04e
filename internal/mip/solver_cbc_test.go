package mip

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCBCSolutionOptimal(t *testing.T) {
	model := sampleModel()
	// CBC omits zero-valued columns.
	output := `Optimal - objective value 4.00000000
      0 x0                      1                       2
      2 x2                      1                       2
`

	solution, err := parseCBCSolution(model, output)

	require.Nil(t, err)
	assert.Equal(t, StatusOptimal, solution.Status)
	assert.Equal(t, 4.0, solution.Objective)
	assert.Equal(t, []float64{1, 0, 1}, solution.Values)
}

func TestParseCBCSolutionInfeasible(t *testing.T) {
	solution, err := parseCBCSolution(sampleModel(), "Infeasible - objective value 0.00000000\n")

	require.Nil(t, err)
	assert.Equal(t, StatusInfeasible, solution.Status)
	assert.Nil(t, solution.Values)
}

func TestParseCBCSolutionTimeLimit(t *testing.T) {
	output := `Stopped on time limit - objective value 2.00000000
      0 x0                      1                       2
`

	solution, err := parseCBCSolution(sampleModel(), output)

	require.Nil(t, err)
	assert.Equal(t, StatusTimeLimit, solution.Status)
	assert.Equal(t, 2.0, solution.Objective)
}

func TestParseCBCSolutionEmpty(t *testing.T) {
	_, err := parseCBCSolution(sampleModel(), "")
	assert.NotNil(t, err)
}

func TestCBCSolveSample(t *testing.T) {
	if _, err := exec.LookPath(binaryPath("cbc")); err != nil {
		t.Skip("cbc binary not installed")
	}

	model := sampleModel()
	solution, err := NewCBCSolver(Options{}).Solve(model)

	require.Nil(t, err)
	assert.Equal(t, StatusOptimal, solution.Status)
	assert.True(t, AssertFeasible(model, solution.Values))
}
