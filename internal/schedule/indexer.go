package schedule

// Indexer gives a unique flat index to a combination of decision-variable
// attributes and back. Variable columns in the optimization model are laid
// out in this order.
type Indexer interface {
	// Index returns the variable column of a (course, room, day, slot) tuple.
	Index(course, room, day, slot int) int
	// Attributes recovers the (course, room, day, slot) tuple of a column.
	Attributes(index int) (course, room, day, slot int)
	// Size is the total number of decision variables.
	Size() int
}

func NewIndexer(courses, rooms, days, slots int) Indexer {
	return &gridIndexer{
		courses: courses,
		rooms:   rooms,
		days:    days,
		slots:   slots,
	}
}

type gridIndexer struct {
	courses int
	rooms   int
	days    int
	slots   int
}

func (i *gridIndexer) Index(course, room, day, slot int) int {
	return slot + i.slots*(day) + i.slots*i.days*(room) + i.slots*i.days*i.rooms*(course)
}

func (i *gridIndexer) Attributes(index int) (course, room, day, slot int) {
	slot = index % i.slots
	index = index / i.slots

	day = index % i.days
	index = index / i.days

	room = index % i.rooms
	index = index / i.rooms

	course = index % i.courses

	return course, room, day, slot
}

func (i *gridIndexer) Size() int {
	return i.courses * i.rooms * i.days * i.slots
}
