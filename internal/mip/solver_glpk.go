package mip

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type glpkSolver struct {
	options Options
}

func NewGLPKSolver(options Options) Solver {
	return &glpkSolver{options: options}
}

func (solver *glpkSolver) Solve(model *Model) (Solution, error) {
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

	args := []string{"--lp", modelPath, "-o", solutionPath}
	if solver.options.TimeLimit > 0 {
		args = append(args, "--tmlim", strconv.Itoa(int(solver.options.TimeLimit.Seconds())))
	}

	if _, err := runEngine(binaryPath("glpk"), args...); err != nil {
		return Solution{}, err
	}

	output, err := os.ReadFile(solutionPath)
	if err != nil {
		return Solution{}, fmt.Errorf("cannot read glpsol solution file: %w", err)
	}

	solution, err := parseGLPKSolution(model, string(output))
	if err != nil {
		return Solution{}, err
	}
	if solution.Status != StatusInfeasible {
		solution.Objective += model.Offset
	}
	return solution, nil
}

// parseGLPKSolution reads glpsol's printable output (-o): a "Status:" line,
// an "Objective:" line and a fixed-width column table whose Activity field
// optionally follows a "*" marker.
func parseGLPKSolution(model *Model, output string) (Solution, error) {
	lines := strings.Split(output, "\n")

	solution := Solution{Status: StatusUnknown}
	statusSeen := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "Status:") {
			statusSeen = true
			switch {
			case strings.Contains(trimmed, "EMPTY"), strings.Contains(trimmed, "INFEASIBLE"):
				return Solution{Status: StatusInfeasible}, nil
			case strings.Contains(trimmed, "NON-OPTIMAL"), strings.Contains(trimmed, "UNDEFINED"):
				solution.Status = StatusTimeLimit
			case strings.Contains(trimmed, "OPTIMAL"):
				solution.Status = StatusOptimal
			}
		}
		if strings.HasPrefix(trimmed, "Objective:") {
			if equal := strings.Index(trimmed, "="); equal >= 0 {
				fields := strings.Fields(trimmed[equal+1:])
				if len(fields) > 0 {
					if value, ok := parseValue(fields[0]); ok {
						solution.Objective = value
					}
				}
			}
		}
	}
	if !statusSeen {
		return Solution{}, fmt.Errorf("glpsol output carries no status")
	}
	if solution.Status == StatusTimeLimit || solution.Status == StatusUnknown {
		// glpsol prints UNDEFINED columns when it stopped before any incumbent.
		if !strings.Contains(output, "Objective:") {
			return solution, nil
		}
	}

	index := variableIndex(model)
	solution.Values = make([]float64, len(model.Variables))
	inColumns := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "No.") && strings.Contains(trimmed, "Column name") {
			inColumns = true
			continue
		}
		if !inColumns {
			continue
		}
		if strings.HasPrefix(trimmed, "---") {
			continue
		}
		if trimmed == "" {
			break
		}
		fields := strings.Fields(trimmed)
		if len(fields) < 3 {
			continue
		}
		variable, ok := index[fields[1]]
		if !ok {
			continue
		}
		activity := fields[2]
		if activity == "*" && len(fields) > 3 {
			activity = fields[3]
		}
		if value, ok := parseValue(activity); ok {
			solution.Values[variable] = value
		}
	}

	return solution, nil
}
