package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avaskine/knightfall/internal/domain/entity"
	"github.com/avaskine/knightfall/internal/domain/geom"
	"github.com/avaskine/knightfall/internal/infrastructure/config"
)

func createTestLevel() *entity.Level {
	return &entity.Level{
		Width: 4250,
		Platforms: []geom.Rect{
			{X: 0, Y: 700, W: 4250, H: 50},   // floor
			{X: 1000, Y: 500, W: 200, H: 40}, // ledge
		},
	}
}

func createTestPhysics() *PhysicsSystem {
	return NewPhysicsSystem(config.DefaultTuning(), createTestLevel())
}

func createTestMover(x, y float64, w, h int) *entity.Mover {
	m := &entity.Mover{Body: geom.Rect{W: w, H: h}}
	m.SetPos(x, y)
	return m
}

func TestApplyGravity(t *testing.T) {
	t.Run("accelerates downward", func(t *testing.T) {
		sys := createTestPhysics()
		vel := geom.Vec2{Y: 0}

		sys.ApplyGravity(&vel, 0.1, 0)

		assert.InDelta(t, 180.0, vel.Y, 1e-9)
	})

	t.Run("clamps to terminal velocity", func(t *testing.T) {
		sys := createTestPhysics()
		vel := geom.Vec2{Y: 1190}

		sys.ApplyGravity(&vel, 0.1, 0)

		assert.Equal(t, 1200.0, vel.Y)
	})

	t.Run("cut multiplier adds gravity while rising", func(t *testing.T) {
		sys := createTestPhysics()
		held := geom.Vec2{Y: -500}
		released := geom.Vec2{Y: -500}

		sys.ApplyGravity(&held, 0.01, 0)
		sys.ApplyGravity(&released, 0.01, 3)

		assert.InDelta(t, -482.0, held.Y, 1e-9)
		assert.InDelta(t, -428.0, released.Y, 1e-9)
	})

	t.Run("cut multiplier ignored while falling", func(t *testing.T) {
		sys := createTestPhysics()
		vel := geom.Vec2{Y: 100}

		sys.ApplyGravity(&vel, 0.01, 3)

		assert.InDelta(t, 118.0, vel.Y, 1e-9)
	})
}

func TestMoveX(t *testing.T) {
	t.Run("integrates velocity", func(t *testing.T) {
		sys := createTestPhysics()
		m := createTestMover(100, 100, 55, 100)
		m.Vel.X = 300

		sys.MoveX(m, 0.1)

		assert.InDelta(t, 130.0, m.Pos.X, 1e-9)
		assert.Equal(t, 130, m.Body.X)
	})

	t.Run("pushes out of platform moving right", func(t *testing.T) {
		sys := createTestPhysics()
		m := createTestMover(960, 510, 55, 100)
		m.Vel.X = 600

		sys.MoveX(m, 0.1)

		assert.Equal(t, 945, m.Body.X) // flush against ledge at x=1000
		assert.Equal(t, 945.0, m.Pos.X)
		assert.Equal(t, 0.0, m.Vel.X)
	})

	t.Run("pushes out of platform moving left", func(t *testing.T) {
		sys := createTestPhysics()
		m := createTestMover(1240, 510, 55, 100)
		m.Vel.X = -600

		sys.MoveX(m, 0.1)

		assert.Equal(t, 1200, m.Body.X) // flush against ledge right edge
		assert.Equal(t, 0.0, m.Vel.X)
	})

	t.Run("clamps to left level bound", func(t *testing.T) {
		sys := createTestPhysics()
		m := createTestMover(10, 100, 55, 100)
		m.Vel.X = -300

		sys.MoveX(m, 0.1)

		assert.Equal(t, 0.0, m.Pos.X)
		assert.Equal(t, 0.0, m.Vel.X)
	})

	t.Run("clamps to right level bound", func(t *testing.T) {
		sys := createTestPhysics()
		m := createTestMover(4200, 100, 55, 100)
		m.Vel.X = 300

		sys.MoveX(m, 0.1)

		assert.Equal(t, 4195.0, m.Pos.X)
		assert.Equal(t, 0.0, m.Vel.X)
	})
}

func TestMoveY(t *testing.T) {
	t.Run("lands on platform", func(t *testing.T) {
		sys := createTestPhysics()
		m := createTestMover(100, 590, 55, 100)
		m.Vel.Y = 300

		grounded := sys.MoveY(m, 0.1)

		assert.True(t, grounded)
		assert.Equal(t, 600, m.Body.Y) // bottom aligned to floor at y=700
		assert.Equal(t, 600.0, m.Pos.Y)
		assert.Equal(t, 0.0, m.Vel.Y)
	})

	t.Run("bumps against ceiling", func(t *testing.T) {
		sys := createTestPhysics()
		m := createTestMover(1050, 560, 55, 100)
		m.Vel.Y = -300

		grounded := sys.MoveY(m, 0.1)

		assert.False(t, grounded)
		assert.Equal(t, 540, m.Body.Y) // pushed below ledge at y=500 h=40
		assert.Equal(t, 0.0, m.Vel.Y)
	})

	t.Run("free fall stays airborne", func(t *testing.T) {
		sys := createTestPhysics()
		m := createTestMover(100, 100, 55, 100)
		m.Vel.Y = 300

		grounded := sys.MoveY(m, 0.1)

		assert.False(t, grounded)
		assert.InDelta(t, 130.0, m.Pos.Y, 1e-9)
	})

	t.Run("separate axis passes clear a corner overlap", func(t *testing.T) {
		sys := createTestPhysics()
		m := createTestMover(930, 420, 55, 100)
		m.Vel = geom.Vec2{X: 400, Y: 400}

		sys.MoveX(m, 0.1)
		sys.MoveY(m, 0.1)

		for _, platform := range createTestLevel().Platforms {
			assert.False(t, geom.Overlaps(m.Body, platform))
		}
	})
}
