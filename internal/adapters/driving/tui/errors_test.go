package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	errs := []error{
		ErrMissingTermService,
		ErrMissingMatchService,
		ErrMissingReplaceService,
		ErrInvalidPorts,
	}

	seen := make(map[string]bool)
	for _, err := range errs {
		msg := err.Error()
		assert.False(t, seen[msg], "duplicate error message: %s", msg)
		seen[msg] = true
	}
}

func TestErrors_Messages(t *testing.T) {
	assert.Contains(t, ErrMissingTermService.Error(), "term service")
	assert.Contains(t, ErrMissingMatchService.Error(), "match service")
	assert.Contains(t, ErrMissingReplaceService.Error(), "replace service")
	assert.Contains(t, ErrInvalidPorts.Error(), "invalid ports")
}
