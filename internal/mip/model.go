package mip

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

type VarType int

const (
	Binary VarType = iota
	Continuous
)

type Variable struct {
	Name  string
	Type  VarType
	Lower float64
	Upper float64
}

type Sense int

const (
	LessEq Sense = iota
	GreaterEq
	Equal
)

func (s Sense) String() string {
	switch s {
	case GreaterEq:
		return ">="
	case Equal:
		return "="
	default:
		return "<="
	}
}

type Term struct {
	Var  int
	Coef float64
}

type Constraint struct {
	Name  string
	Terms []Term
	Sense Sense
	RHS   float64
}

// Model is a mixed-integer linear program. Offset is a constant objective
// term that the LP file format cannot carry; solver adapters add it to the
// objective value reported by the engine.
type Model struct {
	Name        string
	Maximize    bool
	Objective   []Term
	Offset      float64
	Variables   []Variable
	Constraints []Constraint
}

// AddBinary appends a binary variable and returns its index.
func (m *Model) AddBinary() int {
	index := len(m.Variables)
	m.Variables = append(m.Variables, Variable{
		Name:  fmt.Sprintf("x%d", index),
		Type:  Binary,
		Lower: 0,
		Upper: 1,
	})
	return index
}

// AddContinuous appends a continuous variable with the given bounds and
// returns its index. Use math.Inf(1) for an unbounded upper limit.
func (m *Model) AddContinuous(lower, upper float64) int {
	index := len(m.Variables)
	m.Variables = append(m.Variables, Variable{
		Name:  fmt.Sprintf("x%d", index),
		Type:  Continuous,
		Lower: lower,
		Upper: upper,
	})
	return index
}

func (m *Model) AddConstraint(constraint Constraint) {
	if constraint.Name == "" {
		constraint.Name = fmt.Sprintf("c%d", len(m.Constraints))
	}
	m.Constraints = append(m.Constraints, constraint)
}

func (m *Model) SetObjective(terms []Term, maximize bool) {
	m.Objective = terms
	m.Maximize = maximize
}

// WriteLP writes the model in CPLEX LP text format, which HiGHS, CBC and
// glpsol all read.
func (m *Model) WriteLP(w io.Writer) error {
	var builder strings.Builder

	if m.Name != "" {
		fmt.Fprintf(&builder, "\\ %s\n", m.Name)
	}

	if m.Maximize {
		builder.WriteString("Maximize\n")
	} else {
		builder.WriteString("Minimize\n")
	}
	builder.WriteString(" obj:")
	if len(m.Objective) == 0 && len(m.Variables) > 0 {
		// Engines reject an empty objective row, anchor it on the first variable.
		fmt.Fprintf(&builder, " 0 %s", m.Variables[0].Name)
	} else {
		writeTerms(&builder, m.Variables, m.Objective)
	}
	builder.WriteString("\n")

	builder.WriteString("Subject To\n")
	for _, constraint := range m.Constraints {
		fmt.Fprintf(&builder, " %s:", constraint.Name)
		writeTerms(&builder, m.Variables, constraint.Terms)
		fmt.Fprintf(&builder, " %s %s\n", constraint.Sense, formatCoef(constraint.RHS))
	}

	bounds := make([]string, 0)
	for _, variable := range m.Variables {
		if variable.Type != Continuous {
			continue
		}
		if variable.Lower == 0 && math.IsInf(variable.Upper, 1) {
			continue // LP default bounds
		}
		if math.IsInf(variable.Upper, 1) {
			bounds = append(bounds, fmt.Sprintf(" %s >= %s", variable.Name, formatCoef(variable.Lower)))
		} else {
			bounds = append(bounds, fmt.Sprintf(" %s <= %s <= %s", formatCoef(variable.Lower), variable.Name, formatCoef(variable.Upper)))
		}
	}
	if len(bounds) > 0 {
		builder.WriteString("Bounds\n")
		for _, bound := range bounds {
			builder.WriteString(bound)
			builder.WriteString("\n")
		}
	}

	binaries := make([]string, 0, len(m.Variables))
	for _, variable := range m.Variables {
		if variable.Type == Binary {
			binaries = append(binaries, variable.Name)
		}
	}
	if len(binaries) > 0 {
		builder.WriteString("Binary\n")
		for _, name := range binaries {
			builder.WriteString(" ")
			builder.WriteString(name)
			builder.WriteString("\n")
		}
	}

	builder.WriteString("End\n")

	_, err := io.WriteString(w, builder.String())
	return err
}

func writeTerms(builder *strings.Builder, variables []Variable, terms []Term) {
	for i, term := range terms {
		coef := term.Coef
		if i == 0 {
			if coef < 0 {
				builder.WriteString(" -")
				coef = -coef
			} else {
				builder.WriteString(" ")
			}
		} else if coef < 0 {
			builder.WriteString(" - ")
			coef = -coef
		} else {
			builder.WriteString(" + ")
		}
		fmt.Fprintf(builder, "%s %s", formatCoef(coef), variables[term.Var].Name)
	}
}

func formatCoef(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}
