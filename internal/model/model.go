// Package model defines the domain models for Fittrack.
package model

// Storage keys. The whole application state is persisted as a single
// snapshot blob; the weight log and login session live beside it under
// their own keys.
const (
	KeyAppState  = "appstate"
	KeyWeightLog = "weightlog"
	KeySession   = "session"
)

// DateOnly is the layout used for calendar dates throughout Fittrack.
// Time-of-day is never significant for workout or weight dates.
const DateOnly = "2006-01-02"

// LabelDate is the layout used for chart and list labels (M/D/YYYY).
const LabelDate = "1/2/2006"
