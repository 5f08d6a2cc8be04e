package schedule

import (
	"math/rand/v2"
	"sync"
)

// Controls are the scalar knobs a synthetic Parameter Set is generated from.
// Two identical Controls values always generate identical Parameter Sets.
type Controls struct {
	Courses        int
	Classrooms     int
	Days           int
	Slots          int
	Professors     int
	MinSessions    int
	MaxSessions    int
	AvgClassSize   int
	Specialization int // 0..100 compatibility strictness
	Seed           uint64
}

const (
	preferredShare      = 0.2
	availabilityDensity = 0.8
	coursesPerProfessor = 3
	minRoomCapacity     = 20
	maxRoomCapacity     = 100
)

// Generate builds a random Parameter Set from the controls. Compatibility
// tiering happens here, once, so the model builder only ever consumes the
// finished matrix.
func Generate(controls Controls) (*ParameterSet, error) {
	if controls.Courses < 0 || controls.Classrooms < 0 || controls.Days < 0 ||
		controls.Slots < 0 || controls.Professors < 0 {
		return nil, configErrorf("negative entity count in generator controls")
	}
	if controls.MinSessions < 1 || controls.MaxSessions < controls.MinSessions {
		return nil, configErrorf("session bounds [%d,%d] are invalid", controls.MinSessions, controls.MaxSessions)
	}
	if controls.AvgClassSize < 2 {
		return nil, configErrorf("average class size %d is too small", controls.AvgClassSize)
	}
	if controls.Specialization < 0 || controls.Specialization > 100 {
		return nil, configErrorf("specialization %d is outside 0..100", controls.Specialization)
	}

	rng := rand.New(rand.NewPCG(controls.Seed, controls.Seed))

	params := &ParameterSet{
		Days:          controls.Days,
		Slots:         controls.Slots,
		Courses:       make([]Course, 0, controls.Courses),
		Classrooms:    make([]Classroom, 0, controls.Classrooms),
		Professors:    make([]Professor, 0, controls.Professors),
		Compatibility: make(map[CourseRoom]bool, controls.Courses*controls.Classrooms),
	}
	periods := params.Periods()

	courseTypes := make([]RoomType, controls.Courses)
	for i := range controls.Courses {
		sessions := controls.MinSessions + rng.IntN(controls.MaxSessions-controls.MinSessions+1)
		lower := controls.AvgClassSize / 2
		upper := controls.AvgClassSize + controls.AvgClassSize/2
		enrollment := lower + rng.IntN(upper-lower)
		courseTypes[i] = RoomType(rng.IntN(roomTypeCount))

		preferred := make(map[Period]bool, int(preferredShare*float64(len(periods))))
		for _, index := range rng.Perm(len(periods))[:int(preferredShare*float64(len(periods)))] {
			preferred[periods[index]] = true
		}

		params.Courses = append(params.Courses, Course{
			ID:         i,
			Sessions:   sessions,
			Enrollment: enrollment,
			RoomType:   courseTypes[i],
			Preferred:  preferred,
		})
	}

	for i := range controls.Classrooms {
		params.Classrooms = append(params.Classrooms, Classroom{
			ID:       i,
			Capacity: minRoomCapacity + rng.IntN(maxRoomCapacity-minRoomCapacity),
			Type:     RoomType(rng.IntN(roomTypeCount)),
		})
	}

	for course := range controls.Courses {
		for room := range controls.Classrooms {
			params.Compatibility[CourseRoom{Course: course, Room: room}] =
				CompatibleTypes(controls.Specialization, courseTypes[course], params.Classrooms[room].Type)
		}
	}

	for i := range controls.Professors {
		count := coursesPerProfessor
		if controls.Courses < count {
			count = controls.Courses
		}
		courses := rng.Perm(controls.Courses)[:count]

		availability := make(map[Period]bool, len(periods))
		for _, period := range periods {
			availability[period] = rng.Float64() < availabilityDensity
		}

		params.Professors = append(params.Professors, Professor{
			ID:           i,
			Courses:      courses,
			Availability: availability,
		})
	}

	return params, nil
}

// Generator memoizes generated Parameter Sets per Controls value, replacing
// regeneration on repeated runs with a lookup. Generated sets are immutable,
// so sharing the cached instance across callers is safe.
type Generator struct {
	mu    sync.Mutex
	cache map[Controls]*ParameterSet
}

func NewGenerator() *Generator {
	return &Generator{cache: make(map[Controls]*ParameterSet)}
}

func (g *Generator) Generate(controls Controls) (*ParameterSet, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if params, ok := g.cache[controls]; ok {
		return params, nil
	}
	params, err := Generate(controls)
	if err != nil {
		return nil, err
	}
	g.cache[controls] = params
	return params, nil
}
