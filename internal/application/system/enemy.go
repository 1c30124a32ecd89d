package system

import (
	"github.com/avaskine/knightfall/internal/domain/entity"
	"github.com/avaskine/knightfall/internal/domain/geom"
	"github.com/avaskine/knightfall/internal/infrastructure/config"
)

// EnemySystem updates enemy tracking, physics and respawn countdowns.
// Enemies only act while their body overlaps the camera view; a dead
// enemy instead counts down to its in-place respawn.
type EnemySystem struct {
	config  *config.Tuning
	physics *PhysicsSystem
	ground  entity.GroundTracker
	flying  entity.FlyingTracker
}

// NewEnemySystem creates a new enemy system.
func NewEnemySystem(cfg *config.Tuning, physics *PhysicsSystem) *EnemySystem {
	return &EnemySystem{
		config:  cfg,
		physics: physics,
		ground:  entity.GroundTracker{Speed: cfg.Enemies.GroundSpeed},
		flying:  entity.FlyingTracker{Speed: cfg.Enemies.FlyingSpeed},
	}
}

// Update advances one enemy by one step.
func (s *EnemySystem) Update(e *entity.Enemy, p *entity.Player, view geom.Rect, dt float64) {
	e.CheckOnScreen(view)

	if e.OnScreen {
		if !e.InKnockback() {
			vel, vertical := s.tracker(e.Kind).Track(e.Pos, e.Body, p.Pos, p.Body)
			e.Vel.X = vel.X
			if vertical {
				e.Vel.Y = vel.Y
			} else {
				s.physics.ApplyGravity(&e.Vel, dt, 0)
			}
		} else {
			e.KnockbackTimer.Tick(dt)
		}

		s.physics.MoveX(&e.Mover, dt)
		s.physics.MoveY(&e.Mover, dt)
	} else if !e.Alive {
		e.RespawnTimer.Tick(dt)
		if !e.RespawnTimer.Active() {
			e.Respawn()
		}
	}

	e.DamageCooldown.Tick(dt)
}

func (s *EnemySystem) tracker(kind entity.EnemyKind) entity.Tracker {
	if kind == entity.KindFlying {
		return s.flying
	}
	return s.ground
}
