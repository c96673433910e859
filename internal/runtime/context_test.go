package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fittrack/internal/model"
	"fittrack/internal/output"
	"fittrack/internal/store"
)

func newTestContext(t *testing.T) *Context {
	t.Helper()
	opts := DefaultOptions()
	opts.InMemory = true
	ctx, err := New(opts)
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, ctx.Close())
	})
	return ctx
}

func TestNewStartsEmpty(t *testing.T) {
	ctx := newTestContext(t)

	state := ctx.Store.State()
	assert.Empty(t, state.Workouts)
	assert.Empty(t, state.Goals)
	assert.Equal(t, model.ThemeLight, state.Theme)
}

func TestTransitionsArePersisted(t *testing.T) {
	ctx := newTestContext(t)

	ctx.Store.Dispatch(store.AddWorkout{Workout: model.Workout{Name: "Run"}})

	// Every dispatch lands in the snapshot immediately.
	saved, ok := ctx.SnapshotRepo.Load()
	require.True(t, ok)
	assert.Len(t, saved.Workouts, 1)
	assert.Equal(t, "Run", saved.Workouts[0].Name)
	assert.NotEmpty(t, saved.Workouts[0].ID)
}

func TestFormatterSelection(t *testing.T) {
	ctx := newTestContext(t)

	assert.False(t, ctx.IsJSON())
	assert.NotNil(t, ctx.CLIFormatter())

	ctx.Formatter.Format = output.FormatJSON
	assert.True(t, ctx.IsJSON())
	assert.NotNil(t, ctx.JSONFormatter())
}
