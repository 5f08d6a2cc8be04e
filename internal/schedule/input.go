package schedule

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

// paramsWire is the JSON shape of a Parameter Set. Entities are positional
// (ids follow array order), availability is a [day][slot] grid and preferred
// periods are [day, slot] pairs. Compatibility is not part of the file; it is
// derived once, here, from the declared specialization level.
type paramsWire struct {
	Days           int
	Slots          int
	Specialization int
	Courses        []courseWire
	Classrooms     []classroomWire
	Professors     []professorWire
}

type courseWire struct {
	Sessions   int
	Enrollment int
	RoomType   int `mapstructure:"roomType"`
	Preferred  [][]int
}

type classroomWire struct {
	Capacity int
	Type     int
}

type professorWire struct {
	Courses      []int
	Availability [][]bool
}

// ParamsFromJSON loads a Parameter Set from a JSON file.
func ParamsFromJSON(file string) (*ParameterSet, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("cannot read parameter file: %w", err)
	}

	var inputJSON map[string]any
	if err := json.Unmarshal(bytes, &inputJSON); err != nil {
		return nil, fmt.Errorf("cannot parse parameter file: %w", err)
	}

	var wire paramsWire
	if err := mapstructure.Decode(inputJSON, &wire); err != nil {
		return nil, fmt.Errorf("cannot decode parameter file: %w", err)
	}

	return paramsFromWire(wire)
}

func paramsFromWire(wire paramsWire) (*ParameterSet, error) {
	params := &ParameterSet{
		Days:          wire.Days,
		Slots:         wire.Slots,
		Courses:       make([]Course, 0, len(wire.Courses)),
		Classrooms:    make([]Classroom, 0, len(wire.Classrooms)),
		Professors:    make([]Professor, 0, len(wire.Professors)),
		Compatibility: make(map[CourseRoom]bool, len(wire.Courses)*len(wire.Classrooms)),
	}

	for i, course := range wire.Courses {
		preferred := make(map[Period]bool, len(course.Preferred))
		for _, pair := range course.Preferred {
			if len(pair) != 2 {
				return nil, configErrorf("course %d has a preferred period with %d components, want 2", i, len(pair))
			}
			preferred[Period{Day: pair[0], Slot: pair[1]}] = true
		}
		params.Courses = append(params.Courses, Course{
			ID:         i,
			Sessions:   course.Sessions,
			Enrollment: course.Enrollment,
			RoomType:   RoomType(course.RoomType),
			Preferred:  preferred,
		})
	}

	for i, room := range wire.Classrooms {
		params.Classrooms = append(params.Classrooms, Classroom{
			ID:       i,
			Capacity: room.Capacity,
			Type:     RoomType(room.Type),
		})
	}

	for i, professor := range wire.Professors {
		availability := make(map[Period]bool, wire.Days*wire.Slots)
		for day, slots := range professor.Availability {
			for slot, available := range slots {
				availability[Period{Day: day, Slot: slot}] = available
			}
		}
		params.Professors = append(params.Professors, Professor{
			ID:           i,
			Courses:      professor.Courses,
			Availability: availability,
		})
	}

	for course := range params.Courses {
		for room := range params.Classrooms {
			params.Compatibility[CourseRoom{Course: course, Room: room}] =
				CompatibleTypes(wire.Specialization, params.Courses[course].RoomType, params.Classrooms[room].Type)
		}
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}
	return params, nil
}
