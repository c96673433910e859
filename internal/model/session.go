package model

import "time"

// Session records a local demo login. Nothing is enforced by it; commands
// work the same whether or not a session exists.
type Session struct {
	Email    string    `json:"email"`
	LoggedIn time.Time `json:"loggedIn"`
}
