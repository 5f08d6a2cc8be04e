package mip

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// highsSolver drives the HiGHS command-line binary, the same engine the
// scheduling model was originally tuned against.
type highsSolver struct {
	options Options
}

func NewHiGHSSolver(options Options) Solver {
	return &highsSolver{options: options}
}

func (solver *highsSolver) Solve(model *Model) (Solution, error) {
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

	args := []string{"--solution_file", solutionPath}
	if solver.options.TimeLimit > 0 {
		args = append(args, "--time_limit", strconv.FormatFloat(solver.options.TimeLimit.Seconds(), 'f', -1, 64))
	}
	args = append(args, modelPath)

	if _, err := runEngine(binaryPath("highs"), args...); err != nil {
		return Solution{}, err
	}

	output, err := os.ReadFile(solutionPath)
	if err != nil {
		return Solution{}, fmt.Errorf("cannot read highs solution file: %w", err)
	}

	solution, err := parseHiGHSSolution(model, string(output))
	if err != nil {
		return Solution{}, err
	}
	solution.Objective += model.Offset
	return solution, nil
}

// parseHiGHSSolution reads the HiGHS solution-file layout: a "Model status"
// header, a primal section with the objective, then "# Columns N" followed by
// one "name value" line per column.
func parseHiGHSSolution(model *Model, output string) (Solution, error) {
	lines := strings.Split(output, "\n")

	status := StatusUnknown
	statusLine := ""
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "Model status") {
			for _, next := range lines[i+1:] {
				if trimmed := strings.TrimSpace(next); trimmed != "" {
					statusLine = trimmed
					break
				}
			}
			break
		}
	}
	switch {
	case statusLine == "Optimal":
		status = StatusOptimal
	case statusLine == "Infeasible":
		return Solution{Status: StatusInfeasible}, nil
	case strings.Contains(statusLine, "Time limit"):
		status = StatusTimeLimit
	case statusLine == "":
		return Solution{}, fmt.Errorf("highs output carries no model status")
	}

	solution := Solution{Status: status}

	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "Objective") {
			fields := strings.Fields(line)
			if value, ok := parseValue(fields[len(fields)-1]); ok {
				solution.Objective = value
			}
			break
		}
	}

	index := variableIndex(model)
	inColumns := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# Columns") {
			inColumns = true
			solution.Values = make([]float64, len(model.Variables))
			continue
		}
		if !inColumns {
			continue
		}
		if strings.HasPrefix(trimmed, "#") || trimmed == "" {
			break
		}
		fields := strings.Fields(trimmed)
		if len(fields) != 2 {
			continue
		}
		variable, ok := index[fields[0]]
		if !ok {
			continue
		}
		if value, ok := parseValue(fields[1]); ok {
			solution.Values[variable] = value
		}
	}

	if solution.Values == nil && status == StatusOptimal {
		return Solution{}, fmt.Errorf("highs reported optimal without column values")
	}
	return solution, nil
}
