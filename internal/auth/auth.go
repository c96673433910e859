// Package auth implements the demo login check. There is no server and
// no real account system: a single hard-coded credential pair gates
// nothing but mirrors a sign-in flow. The password is still compared as
// a bcrypt hash so the literal never appears in the binary.
package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"fittrack/internal/errors"
	"fittrack/internal/logging"
)

// DemoEmail is the only accepted login.
const DemoEmail = "demo@example.com"

// demoHash is bcrypt("password"), cost 10.
var demoHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// Verify checks the demo credential pair.
func Verify(email, password string) error {
	logging.Logger().Debug("login attempt",
		"email", logging.MaskEmail(email),
		"password", logging.MaskValue(password))

	if !strings.EqualFold(email, DemoEmail) {
		return errors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(demoHash, []byte(password)); err != nil {
		return errors.ErrInvalidCredentials
	}
	return nil
}
