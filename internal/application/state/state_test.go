package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMode_String(t *testing.T) {
	assert.Equal(t, "Playing", ModePlaying.String())
	assert.Equal(t, "FadeOut", ModeFadeOut.String())
	assert.Equal(t, "FadeIn", ModeFadeIn.String())
	assert.Equal(t, "Unknown", Mode(42).String())
}
