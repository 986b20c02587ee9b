package repl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stola-lang/stolac/repl"
	"github.com/stola-lang/stolac/sema"
)

func TestNew_SetsFields(t *testing.T) {
	r := repl.New("banner", "0.1.0", "----", "stola> ", sema.Hosted)
	assert.Equal(t, "banner", r.Banner)
	assert.Equal(t, "0.1.0", r.Version)
	assert.Equal(t, "stola> ", r.Prompt)
	assert.Equal(t, sema.Hosted, r.Mode)
}

func TestNew_FreestandingMode(t *testing.T) {
	r := repl.New("banner", "0.1.0", "----", "stola> ", sema.Freestanding)
	assert.Equal(t, sema.Freestanding, r.Mode)
}
