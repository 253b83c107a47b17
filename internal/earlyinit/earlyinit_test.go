package earlyinit

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestPin(t *testing.T) {
	assert.True(t, pin("dark"))
	assert.True(t, lipgloss.HasDarkBackground())

	assert.True(t, pin(" LIGHT "))
	assert.False(t, lipgloss.HasDarkBackground())

	assert.False(t, pin("auto"))
	assert.False(t, pin(""))
}
