package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskValue(t *testing.T) {
	assert.Equal(t, "", MaskValue(""))
	assert.Equal(t, "***", MaskValue("abc"))
	// Long values are capped so length leaks nothing.
	assert.Equal(t, "********", MaskValue("a-very-long-password"))
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "d***@example.com", MaskEmail("demo@example.com"))
	assert.Equal(t, "********", MaskEmail("a@example.com"))
	assert.Equal(t, "********", MaskEmail("not-an-email"))
}
