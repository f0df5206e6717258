package seatable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstReturnsOnlyPopulatedCandidate(t *testing.T) {
	row := Row{"s9S4": "partner@example.com"}

	v, ok := row.First("email", "s9S4")
	assert.True(t, ok)
	assert.Equal(t, "partner@example.com", v)
}

func TestFirstPrecedenceIsFirstMatchWins(t *testing.T) {
	row := Row{
		"email": "current@example.com",
		"s9S4":  "legacy@example.com",
	}

	v, ok := row.First("email", "s9S4")
	assert.True(t, ok)
	assert.Equal(t, "current@example.com", v)
}

func TestFirstSkipsEmptyStringAndNil(t *testing.T) {
	row := Row{
		"email": "",
		"s9S4":  nil,
		"old":   "kept@example.com",
	}

	v, ok := row.First("email", "s9S4", "old")
	assert.True(t, ok)
	assert.Equal(t, "kept@example.com", v)
}

func TestFirstMissesWhenNoCandidatePopulated(t *testing.T) {
	row := Row{"_id": "abc", "unrelated": "x"}

	_, ok := row.First("email", "s9S4")
	assert.False(t, ok)
}

func TestStrFallsBackToDefault(t *testing.T) {
	row := Row{"774a": 1.25}

	assert.Equal(t, "white_label", row.Str("white_label", "type"))
	// non-string scalar does not satisfy a string resolution
	assert.Equal(t, "", row.Str("", "774a"))
}

func TestFloatResolvesJSONNumbers(t *testing.T) {
	row := Row{"774a": 1.25}

	assert.Equal(t, 1.25, row.Float(0.95, "message_price", "774a"))
	assert.Equal(t, 0.95, row.Float(0.95, "missing"))
}

func TestID(t *testing.T) {
	assert.Equal(t, "Rw8f3k", Row{"_id": "Rw8f3k"}.ID())
	assert.Equal(t, "", Row{}.ID())
}

func TestCoerceBool(t *testing.T) {
	assert.True(t, CoerceBool(true))
	assert.True(t, CoerceBool("True"))

	assert.False(t, CoerceBool(false))
	assert.False(t, CoerceBool("true"))
	assert.False(t, CoerceBool("yes"))
	assert.False(t, CoerceBool(1.0))
	assert.False(t, CoerceBool(nil))
}

func TestFlag(t *testing.T) {
	assert.True(t, Row{"37u2": true}.Flag("37u2", "extended"))
	assert.True(t, Row{"extended": "True"}.Flag("37u2", "extended"))
	assert.False(t, Row{}.Flag("37u2", "extended"))
}
