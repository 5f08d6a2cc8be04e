package mip

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// writeModelFile dumps the model in LP format to a temporary file and returns
// its path together with a cleanup function.
func writeModelFile(model *Model) (string, func(), error) {
	file, err := os.CreateTemp("", "scheduleopt-*.lp")
	if err != nil {
		return "", nil, fmt.Errorf("cannot create model file: %w", err)
	}
	cleanup := func() {
		os.Remove(file.Name())
	}

	if err := model.WriteLP(file); err != nil {
		file.Close()
		cleanup()
		return "", nil, fmt.Errorf("cannot write model file: %w", err)
	}
	if err := file.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("cannot close model file: %w", err)
	}
	return file.Name(), cleanup, nil
}

// solutionFile reserves a temporary path for the engine to write into.
func solutionFile() (string, func(), error) {
	file, err := os.CreateTemp("", "scheduleopt-*.sol")
	if err != nil {
		return "", nil, fmt.Errorf("cannot create solution file: %w", err)
	}
	file.Close()
	return file.Name(), func() { os.Remove(file.Name()) }, nil
}

func runEngine(path string, args ...string) (string, error) {
	cmd := exec.Command(path, args...)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%v execution failed: %v : %v", path, err, stderr.String())
	}
	return stdout.String(), nil
}

// variableIndex maps LP variable names back to model indices.
func variableIndex(model *Model) map[string]int {
	index := make(map[string]int, len(model.Variables))
	for i, variable := range model.Variables {
		index[variable.Name] = i
	}
	return index
}

func parseValue(field string) (float64, bool) {
	value, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
