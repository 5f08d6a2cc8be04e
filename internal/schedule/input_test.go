package schedule

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleParamsJSON = `{
	"days": 1,
	"slots": 2,
	"specialization": 70,
	"courses": [
		{"sessions": 1, "enrollment": 30, "roomType": 1, "preferred": [[0, 0]]},
		{"sessions": 2, "enrollment": 20, "roomType": 0, "preferred": []}
	],
	"classrooms": [
		{"capacity": 50, "type": 1},
		{"capacity": 25, "type": 0}
	],
	"professors": [
		{"courses": [0, 1], "availability": [[true, false]]}
	]
}`

func writeParamsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "params.json")
	require.Nil(t, os.WriteFile(path, []byte(content), 0666))
	return path
}

func TestParamsFromJSON(t *testing.T) {
	// Act
	params, err := ParamsFromJSON(writeParamsFile(t, sampleParamsJSON))

	// Assert
	require.Nil(t, err)
	assert.Equal(t, 1, params.Days)
	assert.Equal(t, 2, params.Slots)

	require.Len(t, params.Courses, 2)
	assert.Equal(t, 1, params.Courses[0].Sessions)
	assert.Equal(t, ComputerLab, params.Courses[0].RoomType)
	assert.True(t, params.Courses[0].Preferred[Period{Day: 0, Slot: 0}])
	assert.Empty(t, params.Courses[1].Preferred)

	require.Len(t, params.Classrooms, 2)
	assert.Equal(t, 50, params.Classrooms[0].Capacity)

	require.Len(t, params.Professors, 1)
	assert.True(t, params.Professors[0].Availability[Period{Day: 0, Slot: 0}])
	assert.False(t, params.Professors[0].Availability[Period{Day: 0, Slot: 1}])

	// Specialization 70 demands exact type matches.
	assert.True(t, params.Compatible(0, 0))
	assert.False(t, params.Compatible(0, 1))
	assert.False(t, params.Compatible(1, 0))
	assert.True(t, params.Compatible(1, 1))
}

func TestParamsFromJSONMissingFile(t *testing.T) {
	_, err := ParamsFromJSON(filepath.Join(t.TempDir(), "absent.json"))
	assert.NotNil(t, err)
}

func TestParamsFromJSONMalformed(t *testing.T) {
	_, err := ParamsFromJSON(writeParamsFile(t, "{not json"))
	assert.NotNil(t, err)
}

func TestParamsFromJSONInvalidParameterSet(t *testing.T) {
	// Sessions of 0 violate the generator guarantee.
	content := `{
		"days": 1, "slots": 1, "specialization": 0,
		"courses": [{"sessions": 0, "enrollment": 10, "roomType": 0, "preferred": []}],
		"classrooms": [{"capacity": 20, "type": 0}],
		"professors": []
	}`

	_, err := ParamsFromJSON(writeParamsFile(t, content))
	assert.NotNil(t, err)
}

func TestParamsFromJSONBadPreferredPair(t *testing.T) {
	content := `{
		"days": 1, "slots": 1, "specialization": 0,
		"courses": [{"sessions": 1, "enrollment": 10, "roomType": 0, "preferred": [[0]]}],
		"classrooms": [{"capacity": 20, "type": 0}],
		"professors": []
	}`

	_, err := ParamsFromJSON(writeParamsFile(t, content))
	assert.NotNil(t, err)
}
