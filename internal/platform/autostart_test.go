package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLoginItemForValidates(t *testing.T) {
	_, err := NewLoginItemFor(" ", "/bin/countdown")
	assert.Error(t, err)

	_, err = NewLoginItemFor("Countdown", "")
	assert.Error(t, err)

	item, err := NewLoginItemFor("Countdown", "/bin/countdown")
	assert.NoError(t, err)
	assert.NotNil(t, item)
}

func TestSlugName(t *testing.T) {
	assert.Equal(t, "countdown-timer", slugName("  Countdown Timer "))
}
