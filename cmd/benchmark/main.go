package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"scheduleopt/internal/facility"
	"scheduleopt/internal/logging"
	"scheduleopt/internal/mip"
	"scheduleopt/internal/schedule"
)

type EngineType int

const (
	highs EngineType = iota
	cbc
	glpk
)

type OutcomeType int

const (
	solved OutcomeType = iota
	infeasible
	timeout
)

var (
	engineTypes = map[EngineType]string{
		highs: "highs",
		cbc:   "cbc",
		glpk:  "glpk",
	}
	engineBinaries = map[EngineType]string{
		highs: "highs",
		cbc:   "cbc",
		glpk:  "glpsol",
	}
	engineFactories = map[EngineType]func(mip.Options) mip.Solver{
		highs: mip.NewHiGHSSolver,
		cbc:   mip.NewCBCSolver,
		glpk:  mip.NewGLPKSolver,
	}
	outcomeTypes = map[OutcomeType]string{
		solved:     "solved",
		infeasible: "infeasible",
		timeout:    "timeout",
	}
)

type ScenarioMetadata struct {
	Name        string
	Courses     int
	Classrooms  int
	Periods     int
	Variables   int
	Constraints int
}

type BenchmarkResult struct {
	Engine    EngineType
	Scenario  ScenarioMetadata
	Duration  time.Duration
	Outcome   OutcomeType
	Objective float64
}

func main() {
	timeLimitPtr := flag.Duration("timelimit", 2*time.Minute, "Per-solve time limit; 0 means no limit")
	outFilePtr := flag.String("out", "benchmark_results.csv", "Path of the CSV report")
	flag.Parse()

	logger, err := logging.New(logging.Options{})
	if err != nil {
		log.Fatalf("cannot build logger: %v", err)
	}
	defer logger.Sync()

	engines := availableEngines()
	if len(engines) == 0 {
		log.Fatal("no MIP engine found on PATH")
	}

	scenarios := scheduleScenarios()
	results := make([]BenchmarkResult, 0, len(engines)*(len(scenarios)+len(facilityScenarios())))

	for _, engine := range engines {
		solver := engineFactories[engine](mip.Options{TimeLimit: *timeLimitPtr})

		for _, controls := range scenarios {
			fmt.Printf("Benchmarking %v courses x %v classrooms with engine \"%v\"\n",
				controls.Courses, controls.Classrooms, engineTypes[engine])
			results = append(results, measureSchedule(engine, solver, logger, controls))
		}
		for _, controls := range facilityScenarios() {
			fmt.Printf("Benchmarking %v customers x %v facilities with engine \"%v\"\n",
				controls.Customers, controls.Facilities, engineTypes[engine])
			results = append(results, measureFacility(engine, solver, logger, controls))
		}
	}

	toCsv(results, *outFilePtr)
}

func availableEngines() []EngineType {
	return lo.Filter([]EngineType{highs, cbc, glpk}, func(engine EngineType, _ int) bool {
		_, err := exec.LookPath(engineBinaries[engine])
		return err == nil
	})
}

func scheduleScenarios() []schedule.Controls {
	sizes := [][2]int{{10, 5}, {20, 8}, {40, 12}, {80, 20}}
	return lo.Map(sizes, func(size [2]int, _ int) schedule.Controls {
		return schedule.Controls{
			Courses:        size[0],
			Classrooms:     size[1],
			Days:           5,
			Slots:          6,
			Professors:     size[0] / 2,
			MinSessions:    1,
			MaxSessions:    3,
			AvgClassSize:   30,
			Specialization: 50,
			Seed:           1,
		}
	})
}

func facilityScenarios() []facility.Controls {
	sizes := [][2]int{{20, 5}, {50, 10}, {100, 20}}
	return lo.Map(sizes, func(size [2]int, _ int) facility.Controls {
		return facility.Controls{Customers: size[0], Facilities: size[1], Seed: 1}
	})
}

func measureSchedule(engine EngineType, solver mip.Solver, logger *zap.Logger, controls schedule.Controls) BenchmarkResult {
	params := lo.Must(schedule.Generate(controls))
	model, _ := schedule.BuildModel(params)

	start := time.Now()
	result, err := schedule.NewScheduler(solver, logger).Schedule(params)
	if err != nil {
		log.Fatalf("an error occurred while scheduling with engine \"%v\": %v", engineTypes[engine], err)
	}

	return BenchmarkResult{
		Engine: engine,
		Scenario: ScenarioMetadata{
			Name:        fmt.Sprintf("schedule_c%d_r%d", controls.Courses, controls.Classrooms),
			Courses:     controls.Courses,
			Classrooms:  controls.Classrooms,
			Periods:     controls.Days * controls.Slots,
			Variables:   len(model.Variables),
			Constraints: len(model.Constraints),
		},
		Duration:  time.Since(start),
		Outcome:   scheduleOutcome(result),
		Objective: result.Objective,
	}
}

func measureFacility(engine EngineType, solver mip.Solver, logger *zap.Logger, controls facility.Controls) BenchmarkResult {
	params := lo.Must(facility.Generate(controls))
	model, _ := facility.BuildModel(params)

	start := time.Now()
	plan, err := facility.NewPlanner(solver, logger).Plan(params)
	if err != nil {
		log.Fatalf("an error occurred while planning with engine \"%v\": %v", engineTypes[engine], err)
	}

	return BenchmarkResult{
		Engine: engine,
		Scenario: ScenarioMetadata{
			Name:        fmt.Sprintf("facility_i%d_j%d", controls.Customers, controls.Facilities),
			Variables:   len(model.Variables),
			Constraints: len(model.Constraints),
		},
		Duration:  time.Since(start),
		Outcome:   planOutcome(plan),
		Objective: plan.TotalCost,
	}
}

func scheduleOutcome(result *schedule.Result) OutcomeType {
	if result.Outcome == schedule.OutcomeInfeasible {
		return infeasible
	} else if !result.Optimal {
		return timeout
	}
	return solved
}

func planOutcome(plan *facility.Plan) OutcomeType {
	if plan.Outcome == facility.OutcomeInfeasible {
		return infeasible
	} else if !plan.Optimal {
		return timeout
	}
	return solved
}

func toCsv(results []BenchmarkResult, path string) {
	file, err := os.Create(path)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Engine", "Scenario", "Courses", "Classrooms", "Periods", "Variables", "Constraints", "Duration(ms)", "Outcome", "Objective"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, result := range results {
		if err := writer.Write(toRecord(result)); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}

func toRecord(result BenchmarkResult) []string {
	return []string{
		engineTypes[result.Engine],
		result.Scenario.Name,
		fmt.Sprintf("%d", result.Scenario.Courses),
		fmt.Sprintf("%d", result.Scenario.Classrooms),
		fmt.Sprintf("%d", result.Scenario.Periods),
		fmt.Sprintf("%d", result.Scenario.Variables),
		fmt.Sprintf("%d", result.Scenario.Constraints),
		fmt.Sprintf("%d", result.Duration.Milliseconds()),
		outcomeTypes[result.Outcome],
		fmt.Sprintf("%.1f", result.Objective),
	}
}
