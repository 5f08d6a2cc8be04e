package mip

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteLP(t *testing.T) {
	// Arrange
	model := &Model{Name: "sample", Maximize: true}
	x0 := model.AddBinary()
	x1 := model.AddBinary()
	x2 := model.AddContinuous(0, 10)
	model.SetObjective([]Term{{Var: x0, Coef: 2}, {Var: x1, Coef: 1}, {Var: x2, Coef: -0.5}}, true)
	model.AddConstraint(Constraint{
		Name:  "cap",
		Terms: []Term{{Var: x0, Coef: 30}},
		Sense: LessEq,
		RHS:   50,
	})
	model.AddConstraint(Constraint{
		Terms: []Term{{Var: x0, Coef: 1}, {Var: x1, Coef: 1}},
		Sense: Equal,
		RHS:   1,
	})

	// Act
	var builder strings.Builder
	err := model.WriteLP(&builder)
	output := builder.String()

	// Assert
	require.Nil(t, err)
	assert.Contains(t, output, "Maximize\n")
	assert.Contains(t, output, "obj: 2 x0 + 1 x1 - 0.5 x2")
	assert.Contains(t, output, "cap: 30 x0 <= 50")
	assert.Contains(t, output, "c1: 1 x0 + 1 x1 = 1")
	assert.Contains(t, output, "Bounds\n 0 <= x2 <= 10")
	assert.Contains(t, output, "Binary\n x0\n x1\n")
	assert.True(t, strings.HasSuffix(output, "End\n"))
}

func TestWriteLPDefaultBoundsOmitted(t *testing.T) {
	model := &Model{}
	model.AddContinuous(0, math.Inf(1))
	model.AddConstraint(Constraint{Terms: []Term{{Var: 0, Coef: 1}}, Sense: GreaterEq, RHS: 1})

	var builder strings.Builder
	require.Nil(t, model.WriteLP(&builder))

	output := builder.String()
	assert.NotContains(t, output, "Bounds")
	assert.NotContains(t, output, "Binary")
	assert.Contains(t, output, "Minimize")
	// An empty objective still anchors the row on a variable.
	assert.Contains(t, output, "obj: 0 x0")
}

func TestWriteLPNegativeLeadingCoefficient(t *testing.T) {
	model := &Model{}
	x0 := model.AddBinary()
	model.SetObjective([]Term{{Var: x0, Coef: -3}}, false)

	var builder strings.Builder
	require.Nil(t, model.WriteLP(&builder))
	assert.Contains(t, builder.String(), "obj: -3 x0")
}
