package storage

import (
	"errors"

	"fittrack/internal/logging"
	"fittrack/internal/model"
)

// WeightRepo stores the body-weight log under its own key, separate from
// the state snapshot. The replace-same-date rule lives on model.WeightLog;
// this repo only loads and saves the collection.
type WeightRepo struct {
	db *DB
}

// NewWeightRepo creates a new weight repository.
func NewWeightRepo(db *DB) *WeightRepo {
	return &WeightRepo{db: db}
}

// Load reads the weight log, returning an empty log when none exists or
// the stored payload is unreadable.
func (r *WeightRepo) Load() model.WeightLog {
	var log model.WeightLog
	if err := r.db.GetJSON(model.KeyWeightLog, &log); err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			logging.Warn("weight log unreadable, starting fresh", logging.KeyError, err)
		}
		return model.WeightLog{}
	}
	return log
}

// Save writes the weight log.
func (r *WeightRepo) Save(log model.WeightLog) error {
	return r.db.SetJSON(model.KeyWeightLog, log)
}

// Record applies the upsert rule and persists the result.
func (r *WeightRepo) Record(entry model.WeightEntry) (model.WeightLog, error) {
	log := r.Load()
	log.Upsert(entry)
	if err := r.Save(log); err != nil {
		return model.WeightLog{}, err
	}
	return log, nil
}
