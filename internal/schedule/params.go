package schedule

import "fmt"

type RoomType int

const (
	Standard RoomType = iota
	ComputerLab
	ScienceLab
	SeminarRoom
)

const roomTypeCount = 4

func (t RoomType) String() string {
	switch t {
	case ComputerLab:
		return "Computer Lab"
	case ScienceLab:
		return "Science Lab"
	case SeminarRoom:
		return "Seminar Room"
	default:
		return "Standard"
	}
}

// Period is the atomic scheduling unit, one time slot on one day.
type Period struct {
	Day  int
	Slot int
}

// CourseRoom keys the compatibility relation.
type CourseRoom struct {
	Course int
	Room   int
}

type Course struct {
	ID         int
	Sessions   int // required session count, scheduled exactly
	Enrollment int
	RoomType   RoomType
	Preferred  map[Period]bool
}

type Classroom struct {
	ID       int
	Capacity int
	Type     RoomType
}

type Professor struct {
	ID           int
	Courses      []int
	Availability map[Period]bool
}

// Teaches reports whether the professor is assigned to the course.
func (p Professor) Teaches(course int) bool {
	for _, c := range p.Courses {
		if c == course {
			return true
		}
	}
	return false
}

// ParameterSet is the immutable input of one optimization run. The
// compatibility matrix is fixed at construction time; the builder never
// re-derives it.
type ParameterSet struct {
	Days          int
	Slots         int
	Courses       []Course
	Classrooms    []Classroom
	Professors    []Professor
	Compatibility map[CourseRoom]bool
}

// Periods returns the full Day x Slot universe in day-major order.
func (params *ParameterSet) Periods() []Period {
	periods := make([]Period, 0, params.Days*params.Slots)
	for day := range params.Days {
		for slot := range params.Slots {
			periods = append(periods, Period{Day: day, Slot: slot})
		}
	}
	return periods
}

func (params *ParameterSet) Compatible(course, room int) bool {
	return params.Compatibility[CourseRoom{Course: course, Room: room}]
}

// CompatibleTypes applies the specialization tiers: at low levels every pair
// is compatible, at medium levels the standard type acts as a wildcard, at
// high levels only exact type matches pass.
func CompatibleTypes(level int, courseType, roomType RoomType) bool {
	switch {
	case level <= 20:
		return true
	case level <= 60:
		return courseType == Standard || roomType == Standard || courseType == roomType
	default:
		return courseType == roomType
	}
}

// ConfigurationError marks a Parameter Set that references undefined entities
// or violates a generator guarantee. It is fatal and surfaced before model
// assembly.
type ConfigurationError struct {
	Reason string
}

func (err *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid parameter set: %s", err.Reason)
}

func configErrorf(format string, args ...any) error {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// Validate checks the Parameter Set against the guarantees the model builder
// relies on. A nil result means model assembly cannot fail.
func (params *ParameterSet) Validate() error {
	if params.Days < 0 || params.Slots < 0 {
		return configErrorf("negative day or slot count")
	}

	inUniverse := func(period Period) bool {
		return period.Day >= 0 && period.Day < params.Days && period.Slot >= 0 && period.Slot < params.Slots
	}

	for i, course := range params.Courses {
		if course.ID != i {
			return configErrorf("course %d is stored at position %d", course.ID, i)
		}
		if course.Sessions < 1 {
			return configErrorf("course %d requires %d sessions, want at least 1", course.ID, course.Sessions)
		}
		if course.Enrollment <= 0 {
			return configErrorf("course %d has non-positive enrollment %d", course.ID, course.Enrollment)
		}
		for period := range course.Preferred {
			if !inUniverse(period) {
				return configErrorf("course %d prefers period (%d,%d) outside the universe", course.ID, period.Day, period.Slot)
			}
		}
	}

	for i, room := range params.Classrooms {
		if room.ID != i {
			return configErrorf("classroom %d is stored at position %d", room.ID, i)
		}
		if room.Capacity <= 0 {
			return configErrorf("classroom %d has non-positive capacity %d", room.ID, room.Capacity)
		}
	}

	for i, professor := range params.Professors {
		if professor.ID != i {
			return configErrorf("professor %d is stored at position %d", professor.ID, i)
		}
		for _, course := range professor.Courses {
			if course < 0 || course >= len(params.Courses) {
				return configErrorf("professor %d teaches undefined course %d", professor.ID, course)
			}
		}
		for period := range professor.Availability {
			if !inUniverse(period) {
				return configErrorf("professor %d has availability for period (%d,%d) outside the universe", professor.ID, period.Day, period.Slot)
			}
		}
	}

	for course := range params.Courses {
		for room := range params.Classrooms {
			if _, ok := params.Compatibility[CourseRoom{Course: course, Room: room}]; !ok {
				return configErrorf("compatibility of course %d and classroom %d is undefined", course, room)
			}
		}
	}

	return nil
}
