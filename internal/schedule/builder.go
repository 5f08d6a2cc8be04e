package schedule

import (
	"fmt"

	"scheduleopt/internal/mip"
)

// sessionsMetBonus is the flat objective bonus per fully scheduled course.
// The exact session-count constraint makes it constant over feasible
// solutions; it is kept so objective values stay scale-compatible with
// consumers of the original scoring.
const sessionsMetBonus = 100

// BuildModel assembles the full optimization model of a Parameter Set: one
// binary variable per (course, room, day, slot), the seven hard constraint
// families and the preference/compatibility objective. It is a pure function
// of its input; the Parameter Set must have passed Validate.
func BuildModel(params *ParameterSet) (*mip.Model, Indexer) {
	builder := &modelBuilder{
		params:  params,
		indexer: NewIndexer(len(params.Courses), len(params.Classrooms), params.Days, params.Slots),
	}
	return builder.build(), builder.indexer
}

type modelBuilder struct {
	params  *ParameterSet
	indexer Indexer
}

func (b *modelBuilder) build() *mip.Model {
	model := &mip.Model{
		Name:     "classroom-scheduling",
		Maximize: true,
		Offset:   float64(sessionsMetBonus * len(b.params.Courses)),
	}
	for range b.indexer.Size() {
		model.AddBinary()
	}
	model.Objective = b.objective()

	for _, family := range [][]mip.Constraint{
		b.courseClashConstraints(),
		b.roomClashConstraints(),
		b.sessionCountConstraints(),
		b.capacityConstraints(),
		b.professorClashConstraints(),
		b.professorAvailabilityConstraints(),
		b.compatibilityConstraints(),
	} {
		for _, constraint := range family {
			model.AddConstraint(constraint)
		}
	}

	return model
}

// objective rewards every assignment once for landing on a preferred period
// and once for a compatible room. Zero-weight columns are left out.
func (b *modelBuilder) objective() []mip.Term {
	terms := make([]mip.Term, 0, b.indexer.Size())
	for _, course := range b.params.Courses {
		for _, room := range b.params.Classrooms {
			for day := range b.params.Days {
				for slot := range b.params.Slots {
					coef := 0.0
					if course.Preferred[Period{Day: day, Slot: slot}] {
						coef++
					}
					if b.params.Compatible(course.ID, room.ID) {
						coef++
					}
					if coef > 0 {
						terms = append(terms, mip.Term{
							Var:  b.indexer.Index(course.ID, room.ID, day, slot),
							Coef: coef,
						})
					}
				}
			}
		}
	}
	return terms
}

// A course occupies at most one room per period.
func (b *modelBuilder) courseClashConstraints() []mip.Constraint {
	constraints := make([]mip.Constraint, 0, len(b.params.Courses)*b.params.Days*b.params.Slots)
	for _, course := range b.params.Courses {
		for day := range b.params.Days {
			for slot := range b.params.Slots {
				terms := make([]mip.Term, 0, len(b.params.Classrooms))
				for _, room := range b.params.Classrooms {
					terms = append(terms, mip.Term{Var: b.indexer.Index(course.ID, room.ID, day, slot), Coef: 1})
				}
				constraints = append(constraints, mip.Constraint{
					Name:  fmt.Sprintf("course_once_c%d_d%d_t%d", course.ID, day, slot),
					Terms: terms,
					Sense: mip.LessEq,
					RHS:   1,
				})
			}
		}
	}
	return constraints
}

// A room hosts at most one course per period.
func (b *modelBuilder) roomClashConstraints() []mip.Constraint {
	constraints := make([]mip.Constraint, 0, len(b.params.Classrooms)*b.params.Days*b.params.Slots)
	for _, room := range b.params.Classrooms {
		for day := range b.params.Days {
			for slot := range b.params.Slots {
				terms := make([]mip.Term, 0, len(b.params.Courses))
				for _, course := range b.params.Courses {
					terms = append(terms, mip.Term{Var: b.indexer.Index(course.ID, room.ID, day, slot), Coef: 1})
				}
				constraints = append(constraints, mip.Constraint{
					Name:  fmt.Sprintf("room_once_r%d_d%d_t%d", room.ID, day, slot),
					Terms: terms,
					Sense: mip.LessEq,
					RHS:   1,
				})
			}
		}
	}
	return constraints
}

// Every course is scheduled for exactly its required session count.
func (b *modelBuilder) sessionCountConstraints() []mip.Constraint {
	constraints := make([]mip.Constraint, 0, len(b.params.Courses))
	for _, course := range b.params.Courses {
		terms := make([]mip.Term, 0, len(b.params.Classrooms)*b.params.Days*b.params.Slots)
		for _, room := range b.params.Classrooms {
			for day := range b.params.Days {
				for slot := range b.params.Slots {
					terms = append(terms, mip.Term{Var: b.indexer.Index(course.ID, room.ID, day, slot), Coef: 1})
				}
			}
		}
		constraints = append(constraints, mip.Constraint{
			Name:  fmt.Sprintf("sessions_c%d", course.ID),
			Terms: terms,
			Sense: mip.Equal,
			RHS:   float64(course.Sessions),
		})
	}
	return constraints
}

// Enrollment may not exceed the capacity of an occupied room. An oversized
// pairing forces the variable to zero.
func (b *modelBuilder) capacityConstraints() []mip.Constraint {
	constraints := make([]mip.Constraint, 0, b.indexer.Size())
	for _, course := range b.params.Courses {
		for _, room := range b.params.Classrooms {
			for day := range b.params.Days {
				for slot := range b.params.Slots {
					constraints = append(constraints, mip.Constraint{
						Name: fmt.Sprintf("capacity_c%d_r%d_d%d_t%d", course.ID, room.ID, day, slot),
						Terms: []mip.Term{{
							Var:  b.indexer.Index(course.ID, room.ID, day, slot),
							Coef: float64(course.Enrollment),
						}},
						Sense: mip.LessEq,
						RHS:   float64(room.Capacity),
					})
				}
			}
		}
	}
	return constraints
}

// A professor teaches at most one of their courses per period.
func (b *modelBuilder) professorClashConstraints() []mip.Constraint {
	constraints := make([]mip.Constraint, 0, len(b.params.Professors)*b.params.Days*b.params.Slots)
	for _, professor := range b.params.Professors {
		for day := range b.params.Days {
			for slot := range b.params.Slots {
				terms := make([]mip.Term, 0, len(professor.Courses)*len(b.params.Classrooms))
				for _, course := range professor.Courses {
					for _, room := range b.params.Classrooms {
						terms = append(terms, mip.Term{Var: b.indexer.Index(course, room.ID, day, slot), Coef: 1})
					}
				}
				constraints = append(constraints, mip.Constraint{
					Name:  fmt.Sprintf("prof_once_p%d_d%d_t%d", professor.ID, day, slot),
					Terms: terms,
					Sense: mip.LessEq,
					RHS:   1,
				})
			}
		}
	}
	return constraints
}

// A course is only scheduled in periods its professor is available for. Pairs
// without an assignment relation impose nothing.
func (b *modelBuilder) professorAvailabilityConstraints() []mip.Constraint {
	constraints := make([]mip.Constraint, 0)
	for _, professor := range b.params.Professors {
		for _, course := range professor.Courses {
			for day := range b.params.Days {
				for slot := range b.params.Slots {
					available := 0.0
					if professor.Availability[Period{Day: day, Slot: slot}] {
						available = 1
					}
					terms := make([]mip.Term, 0, len(b.params.Classrooms))
					for _, room := range b.params.Classrooms {
						terms = append(terms, mip.Term{Var: b.indexer.Index(course, room.ID, day, slot), Coef: 1})
					}
					constraints = append(constraints, mip.Constraint{
						Name:  fmt.Sprintf("prof_avail_p%d_c%d_d%d_t%d", professor.ID, course, day, slot),
						Terms: terms,
						Sense: mip.LessEq,
						RHS:   available,
					})
				}
			}
		}
	}
	return constraints
}

// Incompatible (course, room) pairs are structurally forced to zero.
func (b *modelBuilder) compatibilityConstraints() []mip.Constraint {
	constraints := make([]mip.Constraint, 0, b.indexer.Size())
	for _, course := range b.params.Courses {
		for _, room := range b.params.Classrooms {
			compatible := 0.0
			if b.params.Compatible(course.ID, room.ID) {
				compatible = 1
			}
			for day := range b.params.Days {
				for slot := range b.params.Slots {
					constraints = append(constraints, mip.Constraint{
						Name: fmt.Sprintf("compat_c%d_r%d_d%d_t%d", course.ID, room.ID, day, slot),
						Terms: []mip.Term{{
							Var:  b.indexer.Index(course.ID, room.ID, day, slot),
							Coef: 1,
						}},
						Sense: mip.LessEq,
						RHS:   compatible,
					})
				}
			}
		}
	}
	return constraints
}
