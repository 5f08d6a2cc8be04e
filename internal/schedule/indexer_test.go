package schedule

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexAndAttributesRoundTrip(t *testing.T) {
	for range 10 {
		// Arrange
		courses := rand.Intn(20) + 1
		rooms := rand.Intn(10) + 1
		days := rand.Intn(7) + 1
		slots := rand.Intn(12) + 1

		indexer := NewIndexer(courses, rooms, days, slots)

		// Act and assert
		seen := make(map[int]bool, indexer.Size())
		for course := range courses {
			for room := range rooms {
				for day := range days {
					for slot := range slots {
						index := indexer.Index(course, room, day, slot)

						assert.False(t, seen[index])
						assert.GreaterOrEqual(t, index, 0)
						assert.Less(t, index, indexer.Size())
						seen[index] = true

						gotCourse, gotRoom, gotDay, gotSlot := indexer.Attributes(index)
						assert.Equal(t, course, gotCourse)
						assert.Equal(t, room, gotRoom)
						assert.Equal(t, day, gotDay)
						assert.Equal(t, slot, gotSlot)
					}
				}
			}
		}
		assert.Equal(t, indexer.Size(), len(seen))
	}
}

func TestIndexerSize(t *testing.T) {
	assert.Equal(t, 2*3*4*5, NewIndexer(2, 3, 4, 5).Size())
	assert.Equal(t, 0, NewIndexer(0, 3, 4, 5).Size())
}
