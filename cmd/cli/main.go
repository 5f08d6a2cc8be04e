package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"scheduleopt/internal/logging"
	"scheduleopt/internal/mip"
	"scheduleopt/internal/schedule"
)

var (
	validEngines = []string{"highs", "cbc", "glpk"}
	engines      = map[string]func(mip.Options) mip.Solver{
		"highs": mip.NewHiGHSSolver,
		"cbc":   mip.NewCBCSolver,
		"glpk":  mip.NewGLPKSolver,
	}
)

func main() {
	// Define arguments
	enginePtr := flag.String("solver", "highs", "MIP engine to use. Allowed values are: \"highs\", \"cbc\", \"glpk\", where \"highs\" is the default")
	timeLimitPtr := flag.Duration("timelimit", 0, "Time limit passed to the engine; 0 means no limit")
	filePathPtr := flag.String("file", "", "Path to a JSON parameter file; when empty a random scenario is generated from the generator flags")
	outFilePathPtr := flag.String("out", "", "Path to the file where the assignment JSON will be written; if empty, it'll be written into the Standard Output")
	verbosePtr := flag.Bool("verbose", false, "Log with the development config at debug level")

	coursesPtr := flag.Int("courses", 20, "Number of generated courses")
	classroomsPtr := flag.Int("classrooms", 8, "Number of generated classrooms")
	daysPtr := flag.Int("days", 5, "Number of teaching days")
	slotsPtr := flag.Int("slots", 6, "Number of slots per day")
	professorsPtr := flag.Int("professors", 10, "Number of generated professors")
	minSessionsPtr := flag.Int("min-sessions", 1, "Lower bound on weekly sessions per course")
	maxSessionsPtr := flag.Int("max-sessions", 3, "Upper bound on weekly sessions per course")
	classSizePtr := flag.Int("class-size", 30, "Average course enrollment")
	specializationPtr := flag.Int("specialization", 50, "Room compatibility strictness between 0 and 100")
	seedPtr := flag.Uint64("seed", 1, "Generator seed")
	flag.Parse()

	engineName := strings.ToLower(*enginePtr)

	// Validate arguments
	if !slices.Contains(validEngines, engineName) {
		log.Fatalf("%v is not a valid solver", engineName)
	} else if *timeLimitPtr < 0 {
		log.Fatalf("time limit must not be negative: %v", *timeLimitPtr)
	}

	level := "info"
	if *verbosePtr {
		level = "debug"
	}
	logger, err := logging.New(logging.Options{Development: *verbosePtr, Level: level})
	if err != nil {
		log.Fatalf("cannot build logger: %v", err)
	}
	defer logger.Sync()

	// Extract or generate the parameter set
	var params *schedule.ParameterSet
	if *filePathPtr != "" {
		params, err = schedule.ParamsFromJSON(*filePathPtr)
		if err != nil {
			log.Fatalf("cannot parse input file: %v", err)
		}
	} else {
		params, err = schedule.Generate(schedule.Controls{
			Courses:        *coursesPtr,
			Classrooms:     *classroomsPtr,
			Days:           *daysPtr,
			Slots:          *slotsPtr,
			Professors:     *professorsPtr,
			MinSessions:    *minSessionsPtr,
			MaxSessions:    *maxSessionsPtr,
			AvgClassSize:   *classSizePtr,
			Specialization: *specializationPtr,
			Seed:           *seedPtr,
		})
		if err != nil {
			log.Fatalf("cannot generate scenario: %v", err)
		}
	}

	// Initialize the engine and schedule
	solver := engines[engineName](mip.Options{TimeLimit: *timeLimitPtr})
	scheduler := schedule.NewScheduler(solver, logger)

	start := time.Now()
	result, err := scheduler.Schedule(params)
	if err != nil {
		log.Fatalf("an error occurred during scheduling: %v", err)
	}
	logger.Info("scheduling finished",
		zap.String("engine", engineName),
		zap.Duration("elapsed", time.Since(start)),
		zap.Bool("optimal", result.Optimal),
	)

	if result.Outcome == schedule.OutcomeInfeasible {
		fmt.Println("No feasible timetable exists for this parameter set")
		os.Exit(20)
	}

	// Verify assignment correctness before reporting it
	if !schedule.Verify(params, result) {
		log.Fatal("assignment failed verification")
	}

	printMetrics(result)
	for _, room := range params.Classrooms {
		printRoomTimetable(params, result, room.ID)
	}

	assignmentJSON, err := json.MarshalIndent(result.Assignments, "", "  ")
	if err != nil {
		log.Fatalf("an error occurred while building output json: %v", err)
	}
	if *outFilePathPtr == "" {
		fmt.Println(string(assignmentJSON))
	} else if err := os.WriteFile(*outFilePathPtr, assignmentJSON, 0666); err != nil {
		log.Fatalf("an error occurred while writing to the output file: %v", err)
	}

	os.Exit(10)
}

func printMetrics(result *schedule.Result) {
	fmt.Printf("Objective: %v\n", result.Objective)
	fmt.Printf("Sessions scheduled: %v\n", result.TotalSessions())
	if rate, ok := result.PreferredRate(); ok {
		fmt.Printf("Preferred-period rate: %.2f\n", rate)
	}
	if utilization, ok := result.Utilization(); ok {
		fmt.Printf("Seat utilization: %.2f\n", utilization)
	}
}

func printRoomTimetable(params *schedule.ParameterSet, result *schedule.Result, room int) {
	grid := result.RoomTimetable(room)

	fmt.Printf("\nRoom %v (%v, %v seats)\n", room, params.Classrooms[room].Type, params.Classrooms[room].Capacity)
	for day, row := range grid {
		cells := make([]string, 0, len(row))
		for _, assignment := range row {
			if assignment == nil {
				cells = append(cells, "-")
			} else {
				cells = append(cells, fmt.Sprintf("c%d", assignment.Course))
			}
		}
		fmt.Printf("  day %d: %v\n", day, strings.Join(cells, " "))
	}
}
