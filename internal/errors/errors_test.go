package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserError(t *testing.T) {
	e := NewUserError("Name cannot be empty", "Provide a name")
	assert.Equal(t, "Name cannot be empty", e.Error())
	assert.Equal(t, "Provide a name", e.Suggestion)

	withField := NewUserErrorWithField("duration", "-5", "Invalid duration", "Use minutes")
	assert.Equal(t, "Invalid duration: '-5'", withField.Error())
}

func TestSystemError(t *testing.T) {
	cause := stderrors.New("disk full")

	e := NewSystemError("snapshot write failed", cause)
	assert.Equal(t, "snapshot write failed", e.Error())
	assert.ErrorIs(t, e, cause)

	withOp := NewSystemErrorWithOp("save", "write failed", cause)
	assert.Equal(t, "write failed during save", withOp.Error())
}

func TestErrorClassification(t *testing.T) {
	ue := NewUserError("bad input", "fix it")
	se := NewSystemError("broken", nil)

	assert.True(t, IsUserError(ue))
	assert.False(t, IsUserError(se))
	assert.True(t, IsSystemError(se))
	assert.False(t, IsSystemError(ue))

	// Classification survives wrapping.
	wrapped := Wrap(ue, "while logging workout")
	assert.True(t, IsUserError(wrapped))

	got, ok := AsUserError(wrapped)
	require.True(t, ok)
	assert.Equal(t, "fix it", got.Suggestion)
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))

	err := Wrapf(ErrInvalidMetric, "'%s'", "steps")
	assert.ErrorIs(t, err, ErrInvalidMetric)
	assert.Contains(t, err.Error(), "steps")
}

func TestGetSuggestion(t *testing.T) {
	// Sentinel errors resolve through the suggestions table, even wrapped.
	s := GetSuggestion(Wrap(ErrInvalidWorkoutType, "context"))
	assert.NotEmpty(t, s)

	// UserError carries its own suggestion.
	s = GetSuggestion(NewUserError("bad", "do this instead"))
	assert.Equal(t, "do this instead", s)

	assert.Empty(t, GetSuggestion(stderrors.New("mystery")))
}

func TestFormatError(t *testing.T) {
	out := FormatError(NewUserError("Name cannot be empty", "Provide a name"))
	assert.Contains(t, out, "Name cannot be empty")
	assert.Contains(t, out, "Hint: Provide a name")

	plain := FormatError(stderrors.New("mystery"))
	assert.Equal(t, "mystery", plain)
}
