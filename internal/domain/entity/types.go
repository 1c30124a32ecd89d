package entity

import "github.com/avaskine/knightfall/internal/domain/geom"

// AttackDirection is the side of the player body the attack hitbox
// covers while an attack is active.
type AttackDirection int

const (
	AttackUp AttackDirection = iota
	AttackDown
	AttackLeft
	AttackRight
)

// String returns the string representation of the attack direction.
func (d AttackDirection) String() string {
	switch d {
	case AttackUp:
		return "Up"
	case AttackDown:
		return "Down"
	case AttackLeft:
		return "Left"
	case AttackRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Mover is the shared physical state of a moving entity. Pos is the
// authoritative sub-pixel position; Body's origin is always the
// integer-truncated copy of Pos.
type Mover struct {
	Pos  geom.Vec2
	Vel  geom.Vec2
	Body geom.Rect
}

// SyncBodyX resyncs the body's x origin from the position.
func (m *Mover) SyncBodyX() {
	m.Body.X = int(m.Pos.X)
}

// SyncBodyY resyncs the body's y origin from the position.
func (m *Mover) SyncBodyY() {
	m.Body.Y = int(m.Pos.Y)
}

// SetPos moves the entity, keeping position and body in sync.
func (m *Mover) SetPos(x, y float64) {
	m.Pos = geom.Vec2{X: x, Y: y}
	m.SyncBodyX()
	m.SyncBodyY()
}

// Level is the static platform geometry, immutable for the session.
type Level struct {
	Platforms []geom.Rect
	Width     int
}

// Coin is a collectible. Collected flips exactly once, when the
// player's attack hitbox sweeps over it.
type Coin struct {
	Body      geom.Rect
	Collected bool
}

// Camera tracks a target point with smoothing lag. Pos trails Target;
// the view rectangle is what on-screen gating tests against.
type Camera struct {
	Target geom.Vec2
	Pos    geom.Vec2
	ViewW  int
	ViewH  int
}

// ViewRect returns the camera's view rectangle in world space.
func (c *Camera) ViewRect() geom.Rect {
	return geom.Rect{X: int(c.Pos.X), Y: int(c.Pos.Y), W: c.ViewW, H: c.ViewH}
}

// DamageOutcome is the result of a TakeDamage call.
type DamageOutcome int

const (
	// DamageIgnored means the damage cooldown was still open and
	// nothing changed.
	DamageIgnored DamageOutcome = iota
	// DamageHurt means damage and knockback were applied.
	DamageHurt
	// DamageDied means the hit dropped health to zero or below.
	DamageDied
)

// KnockbackSpec carries the combat constants TakeDamage needs, so the
// domain types stay free of the config package.
type KnockbackSpec struct {
	Horizontal   float64
	Vertical     float64
	StunDuration float64
	Cooldown     float64
}
