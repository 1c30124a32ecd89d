package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avaskine/knightfall/internal/domain/geom"
)

func TestTimer(t *testing.T) {
	var tm Timer
	assert.False(t, tm.Active(), "zero value is expired")

	tm.Set(0.3)
	assert.True(t, tm.Active())
	assert.InDelta(t, 0.3, tm.Seconds(), 1e-9)

	tm.Tick(0.2)
	assert.True(t, tm.Active())

	tm.Tick(0.2)
	assert.False(t, tm.Active())

	// Expired timers do not keep counting down.
	tm.Tick(0.2)
	assert.InDelta(t, -0.1, tm.Seconds(), 1e-9)

	tm.Set(1)
	tm.Clear()
	assert.False(t, tm.Active())
}

func TestMover_BodyTracksTruncatedPos(t *testing.T) {
	var m Mover
	m.Body = geom.Rect{W: 55, H: 100}

	m.SetPos(100.9, 250.7)

	assert.Equal(t, 100, m.Body.X)
	assert.Equal(t, 250, m.Body.Y)
	assert.Equal(t, geom.Vec2{X: 100.9, Y: 250.7}, m.Pos, "Pos keeps the sub-pixel part")
}

func TestCamera_ViewRect(t *testing.T) {
	cam := Camera{Pos: geom.Vec2{X: 120.8, Y: 33.2}, ViewW: 1400, ViewH: 800}

	assert.Equal(t, geom.Rect{X: 120, Y: 33, W: 1400, H: 800}, cam.ViewRect())
}

func TestAttackDirection_String(t *testing.T) {
	tests := []struct {
		dir  AttackDirection
		want string
	}{
		{AttackUp, "Up"},
		{AttackDown, "Down"},
		{AttackLeft, "Left"},
		{AttackRight, "Right"},
		{AttackDirection(99), "Unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.dir.String())
	}
}
