package model

import (
	"strings"
	"time"
)

// GoalCategory classifies a goal.
type GoalCategory string

const (
	CategoryStrength  GoalCategory = "strength"
	CategoryEndurance GoalCategory = "endurance"
	CategoryWeight    GoalCategory = "weight"
	CategoryHabit     GoalCategory = "habit"
	CategoryNutrition GoalCategory = "nutrition"
	CategoryOther     GoalCategory = "other"
)

// GoalCategories lists all valid goal categories.
var GoalCategories = []GoalCategory{
	CategoryStrength, CategoryEndurance, CategoryWeight,
	CategoryHabit, CategoryNutrition, CategoryOther,
}

// ParseGoalCategory matches a goal category case-insensitively.
func ParseGoalCategory(s string) (GoalCategory, bool) {
	for _, c := range GoalCategories {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}

// Goal is a fitness target the user is working toward.
type Goal struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description,omitempty"`
	Category     GoalCategory `json:"category"`
	TargetDate   time.Time    `json:"targetDate"`
	CreatedAt    time.Time    `json:"createdAt"`
	Progress     int          `json:"progress"` // 0-100
	Target       float64      `json:"target,omitempty"`
	CurrentValue float64      `json:"currentValue,omitempty"`
	Unit         string       `json:"unit,omitempty"`
	Completed    bool         `json:"completed"`
}

// Normalize clamps progress into 0-100 and forces 100 for completed goals.
func (g Goal) Normalize() Goal {
	if g.Progress < 0 {
		g.Progress = 0
	}
	if g.Progress > 100 {
		g.Progress = 100
	}
	if g.Completed {
		g.Progress = 100
	}
	return g
}

// DaysLeft returns whole days until the target date, negative when overdue.
func (g Goal) DaysLeft(now time.Time) int {
	return int(g.TargetDate.Sub(now).Hours() / 24)
}
