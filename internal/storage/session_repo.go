package storage

import (
	"fittrack/internal/model"
)

// SessionRepo stores the local demo login session.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo creates a new session repository.
func NewSessionRepo(db *DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// Get returns the current session, or false when nobody is logged in.
func (r *SessionRepo) Get() (model.Session, bool) {
	var s model.Session
	if err := r.db.GetJSON(model.KeySession, &s); err != nil {
		return model.Session{}, false
	}
	return s, true
}

// Set records a login session.
func (r *SessionRepo) Set(s model.Session) error {
	return r.db.SetJSON(model.KeySession, s)
}

// Clear removes the session.
func (r *SessionRepo) Clear() error {
	return r.db.Delete(model.KeySession)
}
