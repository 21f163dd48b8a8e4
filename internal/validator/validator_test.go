package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheck(t *testing.T) {
	v := New()
	assert.True(t, v.Valid())

	v.Check(true, "title", "must be provided")
	assert.True(t, v.Valid())

	v.Check(false, "title", "must be provided")
	assert.False(t, v.Valid())
	assert.Equal(t, "must be provided", v.Errors["title"])
}

func TestAddErrorKeepsFirstMessage(t *testing.T) {
	v := New()
	v.AddError("year", "must be at least 1000")
	v.AddError("year", "must not be in the future")
	assert.Equal(t, "must be at least 1000", v.Errors["year"])
}

func TestPermittedValue(t *testing.T) {
	assert.True(t, PermittedValue("title", "everywhere", "title", "author"))
	assert.False(t, PermittedValue("publisher", "everywhere", "title", "author"))
}

func TestMatches(t *testing.T) {
	assert.True(t, Matches("9780441013593", DigitsRX))
	assert.False(t, Matches("97804410135-3", DigitsRX))
}

func TestUnique(t *testing.T) {
	assert.True(t, Unique([]string{"en", "pl", "de"}))
	assert.False(t, Unique([]string{"en", "en"}))
}
