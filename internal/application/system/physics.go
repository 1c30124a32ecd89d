package system

import (
	"github.com/avaskine/knightfall/internal/domain/entity"
	"github.com/avaskine/knightfall/internal/domain/geom"
	"github.com/avaskine/knightfall/internal/infrastructure/config"
)

// PhysicsSystem integrates entity motion against the static level
// geometry. Resolution is axis-separated: the horizontal pass completes
// before the vertical pass starts, which avoids corner-clipping at the
// cost of not handling diagonal platform corners perfectly.
type PhysicsSystem struct {
	config *config.Tuning
	level  *entity.Level
}

// NewPhysicsSystem creates a new physics system.
func NewPhysicsSystem(cfg *config.Tuning, level *entity.Level) *PhysicsSystem {
	return &PhysicsSystem{
		config: cfg,
		level:  level,
	}
}

// ApplyGravity accelerates the entity downward, clamped to terminal
// velocity. cutMultiplier adds that many extra multiples of gravity
// while the entity is still rising; the player system passes the
// jump-cut multiplier there, everything else passes zero.
func (s *PhysicsSystem) ApplyGravity(vel *geom.Vec2, dt, cutMultiplier float64) {
	g := s.config.Physics.Gravity
	vel.Y += g * dt

	if cutMultiplier > 0 && vel.Y < 0 {
		vel.Y += g * dt * cutMultiplier
	}

	if vel.Y > s.config.Physics.TerminalVelocity {
		vel.Y = s.config.Physics.TerminalVelocity
	}
}

// MoveX integrates horizontal motion, clamps the entity inside the
// level, and pushes the body out of every overlapping platform. A
// resolved collision zeroes the horizontal velocity.
func (s *PhysicsSystem) MoveX(m *entity.Mover, dt float64) {
	m.Pos.X += m.Vel.X * dt

	// Entities cannot leave the level horizontally.
	if m.Pos.X < 0 {
		m.Pos.X = 0
		m.Vel.X = 0
	} else if m.Pos.X+float64(m.Body.W) > float64(s.level.Width) {
		m.Pos.X = float64(s.level.Width - m.Body.W)
		m.Vel.X = 0
	}

	m.SyncBodyX()

	for _, platform := range s.level.Platforms {
		if !geom.Overlaps(m.Body, platform) {
			continue
		}

		if m.Vel.X > 0 {
			m.Body.X = platform.X - m.Body.W
		} else if m.Vel.X < 0 {
			m.Body.X = platform.X + platform.W
		}

		m.Pos.X = float64(m.Body.X)
		m.Vel.X = 0
	}
}

// MoveY integrates vertical motion and pushes the body out of every
// overlapping platform. It reports whether the entity landed on top of
// a platform this step.
func (s *PhysicsSystem) MoveY(m *entity.Mover, dt float64) (grounded bool) {
	m.Pos.Y += m.Vel.Y * dt
	m.SyncBodyY()

	for _, platform := range s.level.Platforms {
		if !geom.Overlaps(m.Body, platform) {
			continue
		}

		if m.Vel.Y > 0 {
			m.Body.Y = platform.Y - m.Body.H
			grounded = true
		} else if m.Vel.Y < 0 {
			m.Body.Y = platform.Y + platform.H
		}

		m.Pos.Y = float64(m.Body.Y)
		m.Vel.Y = 0
	}

	return grounded
}
