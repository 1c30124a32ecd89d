package system

import (
	"github.com/avaskine/knightfall/internal/domain/entity"
	"github.com/avaskine/knightfall/internal/infrastructure/config"
)

// PlayerSystem runs the player's movement, dash, jump and attack state
// machines and integrates the result through the physics system.
type PlayerSystem struct {
	config  *config.Tuning
	physics *PhysicsSystem
}

// NewPlayerSystem creates a new player system.
func NewPlayerSystem(cfg *config.Tuning, physics *PhysicsSystem) *PlayerSystem {
	return &PlayerSystem{
		config:  cfg,
		physics: physics,
	}
}

// Update advances the player by one step from an input snapshot.
func (s *PlayerSystem) Update(p *entity.Player, in InputState, dt float64) {
	s.handleDash(p, in)
	s.handleMovement(p, in)
	s.handleAttack(p, in)

	if !p.InKnockback() {
		if p.IsDashing() {
			// The dash velocity scales with the remaining timer, so the
			// burst starts fast and slows to a stop.
			p.Vel.X = p.FacingSign() * s.config.Movement.Speed * s.config.Dash.Burst * p.DashActive.Seconds()
			p.DashActive.Tick(dt)
		}

		p.AttackActive.Tick(dt)

		cut := 0.0
		if !p.Jumping {
			cut = s.config.Jump.CutMultiplier
		}
		s.physics.ApplyGravity(&p.Vel, dt, cut)
	} else {
		p.KnockbackTimer.Tick(dt)
	}

	s.physics.MoveX(&p.Mover, dt)
	grounded := s.physics.MoveY(&p.Mover, dt)
	s.updateGrounding(p, grounded, dt)

	if p.IsAttacking() {
		s.placeAttackHitbox(p)
	}

	p.DashCooldown.Tick(dt)
	p.AttackCooldown.Tick(dt)
	p.DamageCooldown.Tick(dt)

	// One dash per airborne period: re-arm only on the ground.
	if p.Grounded {
		p.DashReady = true
	}
}

func (s *PlayerSystem) handleDash(p *entity.Player, in InputState) {
	if in.DashPressed && p.DashReady && !p.DashCooldown.Active() {
		p.DashActive.Set(s.config.Dash.Duration)
		p.DashCooldown.Set(s.config.Dash.Cooldown)
		p.DashReady = false
	}
}

// handleMovement rewrites the horizontal velocity from held input and
// starts jumps. Dash and knockback both suppress it for their duration.
func (s *PlayerSystem) handleMovement(p *entity.Player, in InputState) {
	if p.IsDashing() || p.InKnockback() {
		return
	}

	p.Vel.X = 0
	if in.Left {
		p.FacingLeft = true
		p.Vel.X = -s.config.Movement.Speed
	}
	if in.Right {
		p.FacingLeft = false
		p.Vel.X = s.config.Movement.Speed
	}

	if in.JumpHeld {
		if p.Grounded && !p.Jumping {
			p.Vel.Y = s.config.Movement.JumpVelocity
			p.Jumping = true
		}
	} else {
		// Releasing mid-rise hands the jump-cut gravity over to Update.
		p.Jumping = false
	}
}

func (s *PlayerSystem) handleAttack(p *entity.Player, in InputState) {
	if !in.AttackPressed || p.IsAttacking() || p.AttackCooldown.Active() {
		return
	}

	p.AttackActive.Set(s.config.Attack.Duration)
	p.AttackCooldown.Set(s.config.Attack.Cooldown)

	// Vertical input wins over facing; down attacks only exist airborne.
	switch {
	case in.Up:
		p.AttackDir = entity.AttackUp
	case in.Down && !p.Grounded:
		p.AttackDir = entity.AttackDown
	case p.FacingLeft:
		p.AttackDir = entity.AttackLeft
	default:
		p.AttackDir = entity.AttackRight
	}
}

// placeAttackHitbox keeps the hitbox flush against the player body on
// the attack side.
func (s *PlayerSystem) placeAttackHitbox(p *entity.Player) {
	switch p.AttackDir {
	case entity.AttackUp:
		p.AttackHitbox.X = int(p.Pos.X)
		p.AttackHitbox.Y = int(p.Pos.Y) - p.AttackHitbox.H
	case entity.AttackDown:
		p.AttackHitbox.X = int(p.Pos.X)
		p.AttackHitbox.Y = int(p.Pos.Y) + p.Body.H
	case entity.AttackLeft:
		p.AttackHitbox.X = int(p.Pos.X) - p.AttackHitbox.W
		p.AttackHitbox.Y = int(p.Pos.Y) + p.AttackHitbox.H/2
	case entity.AttackRight:
		p.AttackHitbox.X = int(p.Pos.X) + p.AttackHitbox.W
		p.AttackHitbox.Y = int(p.Pos.Y) + p.AttackHitbox.H/2
	}
}

// updateGrounding applies the coyote-time extension: the player stays
// grounded for a short window after walking off an edge, so a late
// jump still succeeds.
func (s *PlayerSystem) updateGrounding(p *entity.Player, groundedThisStep bool, dt float64) {
	if groundedThisStep {
		p.Grounded = true
		p.CoyoteTimer.Set(s.config.Jump.CoyoteTime)
		return
	}

	if p.CoyoteTimer.Active() {
		p.CoyoteTimer.Tick(dt)
		p.Grounded = true
	} else {
		p.Grounded = false
	}
}
