package mip

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type cbcSolver struct {
	options Options
}

func NewCBCSolver(options Options) Solver {
	return &cbcSolver{options: options}
}

func (solver *cbcSolver) Solve(model *Model) (Solution, error) {
	modelPath, cleanupModel, err := writeModelFile(model)
	if err != nil {
		return Solution{}, err
	}
	defer cleanupModel()

	solutionPath, cleanupSolution, err := solutionFile()
	if err != nil {
		return Solution{}, err
	}
	defer cleanupSolution()

	args := []string{modelPath}
	if solver.options.TimeLimit > 0 {
		args = append(args, "sec", strconv.FormatFloat(solver.options.TimeLimit.Seconds(), 'f', -1, 64))
	}
	args = append(args, "solve", "solu", solutionPath)

	if _, err := runEngine(binaryPath("cbc"), args...); err != nil {
		return Solution{}, err
	}

	output, err := os.ReadFile(solutionPath)
	if err != nil {
		return Solution{}, fmt.Errorf("cannot read cbc solution file: %w", err)
	}

	solution, err := parseCBCSolution(model, string(output))
	if err != nil {
		return Solution{}, err
	}
	if solution.Status != StatusInfeasible {
		solution.Objective += model.Offset
	}
	return solution, nil
}

// parseCBCSolution reads CBC's "solu" file: a status line carrying the
// objective value, then one row per nonzero column (index, name, value,
// reduced cost). Missing columns are zero.
func parseCBCSolution(model *Model, output string) (Solution, error) {
	lines := strings.Split(output, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return Solution{}, fmt.Errorf("cbc solution file is empty")
	}

	header := strings.TrimSpace(lines[0])
	solution := Solution{Status: StatusUnknown}
	switch {
	case strings.HasPrefix(header, "Optimal"):
		solution.Status = StatusOptimal
	case strings.HasPrefix(header, "Infeasible"):
		return Solution{Status: StatusInfeasible}, nil
	case strings.Contains(header, "time limit"):
		solution.Status = StatusTimeLimit
	case strings.HasPrefix(header, "Unbounded"):
		return Solution{}, fmt.Errorf("cbc reported an unbounded model")
	}

	if fields := strings.Fields(header); len(fields) > 0 {
		if value, ok := parseValue(fields[len(fields)-1]); ok {
			solution.Objective = value
		}
	}

	index := variableIndex(model)
	solution.Values = make([]float64, len(model.Variables))
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		variable, ok := index[fields[1]]
		if !ok {
			continue
		}
		if value, ok := parseValue(fields[2]); ok {
			solution.Values[variable] = value
		}
	}

	return solution, nil
}
