package entity

import "github.com/avaskine/knightfall/internal/domain/geom"

// Player is the player entity. Its concurrent sub-states (dash, attack,
// knockback, damage cooldown, grounding) each run on an independent
// Timer; an expired timer marks the sub-state inactive.
type Player struct {
	Mover
	AttackHitbox geom.Rect

	// Dash
	DashReady    bool
	DashActive   Timer
	DashCooldown Timer

	// Attack
	AttackActive   Timer
	AttackCooldown Timer
	AttackDir      AttackDirection

	// Grounding
	Grounded    bool
	CoyoteTimer Timer

	// Combat
	DamageCooldown Timer
	KnockbackTimer Timer
	Health         int

	Jumping    bool
	FacingLeft bool
}

// NewPlayer creates a player of the given body size at x, y. The attack
// hitbox is a square with the body's width.
func NewPlayer(x, y, width, height, health int) *Player {
	p := &Player{
		AttackHitbox: geom.Rect{W: width, H: width},
		DashReady:    true,
		AttackDir:    AttackRight,
		Health:       health,
	}
	p.Body = geom.Rect{W: width, H: height}
	p.SetPos(float64(x), float64(y))
	return p
}

// IsDashing reports whether a dash burst is in progress.
func (p *Player) IsDashing() bool {
	return p.DashActive.Active()
}

// IsAttacking reports whether the attack hitbox is live.
func (p *Player) IsAttacking() bool {
	return p.AttackActive.Active()
}

// InKnockback reports whether knockback currently suppresses movement
// and gravity shaping.
func (p *Player) InKnockback() bool {
	return p.KnockbackTimer.Active()
}

// FacingSign returns -1 when facing left, +1 when facing right.
func (p *Player) FacingSign() float64 {
	if p.FacingLeft {
		return -1
	}
	return 1
}

// DamageFlash reports whether the renderer should show the hurt flash.
// The flash covers the first stretch of the damage cooldown window.
func (p *Player) DamageFlash(threshold float64) bool {
	return p.DamageCooldown.Seconds() > threshold
}

// TakeDamage applies damage with knockback away from origin. It is a
// no-op while the damage cooldown runs, which also guarantees at most
// one death transition per life. An active dash is cancelled. Health is
// deliberately not floored at zero; it may go transiently negative on
// the killing hit.
func (p *Player) TakeDamage(damage int, origin geom.Vec2, ks KnockbackSpec) DamageOutcome {
	if p.DamageCooldown.Active() {
		return DamageIgnored
	}

	p.KnockbackTimer.Set(ks.StunDuration)
	p.DamageCooldown.Set(ks.Cooldown)
	p.DashActive.Clear()

	if vel, ok := geom.Knockback(p.Pos, origin, ks.Horizontal, ks.Vertical); ok {
		p.Vel = vel
	}

	p.Health -= damage
	if p.Health <= 0 {
		return DamageDied
	}
	return DamageHurt
}

// Respawn resets position, velocity and health, and reopens the damage
// cooldown. Dash and attack cooldowns are left running.
func (p *Player) Respawn(x, y, health int) {
	p.SetPos(float64(x), float64(y))
	p.Vel = geom.Vec2{}
	p.Health = health
	p.DamageCooldown.Clear()
	p.KnockbackTimer.Clear()
}
