package storage

import (
	"encoding/json"
	"errors"

	"fittrack/internal/logging"
	"fittrack/internal/model"
)

// SnapshotRepo persists the whole application state as a single JSON blob
// under one key. It is the only write path for workouts and goals; the
// store hands it every new state after a transition.
type SnapshotRepo struct {
	db *DB
}

// NewSnapshotRepo creates a new snapshot repository.
func NewSnapshotRepo(db *DB) *SnapshotRepo {
	return &SnapshotRepo{db: db}
}

// Save writes the state snapshot. Failures are logged and swallowed:
// a full disk or marshal error must never block a state transition,
// the in-memory state keeps working either way.
func (r *SnapshotRepo) Save(state model.AppState) {
	data, err := json.Marshal(state)
	if err != nil {
		logging.Error("snapshot marshal failed", logging.KeyError, err)
		return
	}
	if err := r.db.SetBytes(model.KeyAppState, data); err != nil {
		logging.Error("snapshot write failed", logging.KeyError, err)
	}
}

// Load reads the state snapshot. A missing key or an unparseable payload
// both report no prior data; corruption is not fatal, the caller falls
// back to defaults.
func (r *SnapshotRepo) Load() (model.AppState, bool) {
	data, err := r.db.GetBytes(model.KeyAppState)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			logging.Warn("snapshot read failed", logging.KeyError, err)
		}
		return model.AppState{}, false
	}

	var state model.AppState
	if err := json.Unmarshal(data, &state); err != nil {
		logging.Warn("snapshot corrupt, starting fresh", logging.KeyError, err)
		return model.AppState{}, false
	}
	return state, true
}

// Listener returns a store listener that saves every new state.
func (r *SnapshotRepo) Listener() func(model.AppState) {
	return func(state model.AppState) {
		r.Save(state)
	}
}
