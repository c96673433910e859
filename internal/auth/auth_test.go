package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fittrack/internal/errors"
)

func TestVerifyDemoCredentials(t *testing.T) {
	assert.NoError(t, Verify("demo@example.com", "password"))

	// Email matching is case-insensitive.
	assert.NoError(t, Verify("Demo@Example.com", "password"))
}

func TestVerifyRejectsBadCredentials(t *testing.T) {
	assert.ErrorIs(t, Verify("demo@example.com", "wrong"), errors.ErrInvalidCredentials)
	assert.ErrorIs(t, Verify("other@example.com", "password"), errors.ErrInvalidCredentials)
	assert.ErrorIs(t, Verify("", ""), errors.ErrInvalidCredentials)
}
