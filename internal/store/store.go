// Package store holds the canonical application state and applies
// well-defined transitions to it. State changes flow through Dispatch,
// which runs a pure reducer and then notifies subscribers (persistence
// being one of them) with the new state.
package store

import (
	"github.com/google/uuid"

	"fittrack/internal/logging"
	"fittrack/internal/model"
)

// Listener receives every new state after a transition.
type Listener func(model.AppState)

// Store owns the application state. It is not safe for concurrent use;
// the CLI drives it from a single goroutine.
type Store struct {
	state     model.AppState
	listeners []Listener
	newID     func() string
}

// Option configures a Store.
type Option func(*Store)

// WithIDFunc overrides record id generation, mainly for tests.
func WithIDFunc(f func() string) Option {
	return func(s *Store) { s.newID = f }
}

// New creates a store seeded with the given initial state.
func New(initial model.AppState, opts ...Option) *Store {
	s := &Store{
		state: initial,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a copy of the current state.
func (s *Store) State() model.AppState {
	return s.state.Clone()
}

// Subscribe registers a listener called after every transition.
func (s *Store) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

// Dispatch applies an action and notifies all subscribers with the new
// state. Unknown actions leave the state unchanged but still notify, so
// the call is never an error.
func (s *Store) Dispatch(action Action) model.AppState {
	// Fresh ids are assigned here, outside the reducer, so the reducer
	// stays a pure function of (state, action).
	switch a := action.(type) {
	case AddWorkout:
		if a.ID == "" {
			a.ID = s.newID()
		}
		action = a
	case AddGoal:
		if a.ID == "" {
			a.ID = s.newID()
		}
		action = a
	}

	next := Reduce(s.state, action)
	s.state = next
	logging.Logger().Debug("state transition",
		"action", action.Kind(),
		"workouts", len(next.Workouts),
		"goals", len(next.Goals))

	snapshot := next.Clone()
	for _, l := range s.listeners {
		l(snapshot)
	}
	return snapshot
}
