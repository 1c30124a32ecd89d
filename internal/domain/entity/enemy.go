package entity

import "github.com/avaskine/knightfall/internal/domain/geom"

// EnemyKind selects the tracking behavior, fixed for the enemy's
// lifetime at construction.
type EnemyKind int

const (
	KindGround EnemyKind = iota
	KindFlying
)

// String returns the string representation of the enemy kind.
func (k EnemyKind) String() string {
	switch k {
	case KindGround:
		return "Ground"
	case KindFlying:
		return "Flying"
	default:
		return "Unknown"
	}
}

// Tracker computes an enemy's chase velocity from its own and the
// player's position. vertical reports whether the tracker steers the
// vertical axis; when false the enemy keeps its gravity-driven vertical
// velocity.
type Tracker interface {
	Track(pos geom.Vec2, body geom.Rect, playerPos geom.Vec2, playerBody geom.Rect) (vel geom.Vec2, vertical bool)
}

// GroundTracker chases the player's x position at a fixed speed and
// leaves the vertical axis to gravity.
type GroundTracker struct {
	Speed float64
}

// Track implements Tracker. The enemy holds still once the player's
// body already covers its x-span.
func (t GroundTracker) Track(pos geom.Vec2, body geom.Rect, playerPos geom.Vec2, playerBody geom.Rect) (geom.Vec2, bool) {
	return geom.Vec2{X: chaseAxis(pos.X, body.W, playerPos.X, playerBody.W, t.Speed)}, false
}

// FlyingTracker chases on both axes and is never subject to gravity.
type FlyingTracker struct {
	Speed float64
}

// Track implements Tracker.
func (t FlyingTracker) Track(pos geom.Vec2, body geom.Rect, playerPos geom.Vec2, playerBody geom.Rect) (geom.Vec2, bool) {
	return geom.Vec2{
		X: chaseAxis(pos.X, body.W, playerPos.X, playerBody.W, t.Speed),
		Y: chaseAxis(pos.Y, body.H, playerPos.Y, playerBody.H, t.Speed),
	}, true
}

// chaseAxis moves toward the player along one axis unless the player's
// extent already overlaps the enemy's (with a one-pixel slack so the
// enemy doesn't jitter while flush against the player).
func chaseAxis(pos float64, extent int, playerPos float64, playerExtent int, speed float64) float64 {
	switch {
	case playerPos+float64(playerExtent) < pos+1:
		return -speed
	case playerPos > pos+float64(extent)-1:
		return speed
	default:
		return 0
	}
}

// Enemy is one enemy record. Enemies live in a contiguous slice owned
// by the level; they are never destroyed, only deactivated and later
// respawned in place.
type Enemy struct {
	Mover
	Kind     EnemyKind
	SpawnPos geom.Vec2

	DamageCooldown Timer
	KnockbackTimer Timer
	RespawnTimer   Timer
	RespawnDelay   float64

	Health    int
	MaxHealth int
	OnScreen  bool
	Alive     bool
}

// NewEnemy creates an enemy of the given kind and size at x, y.
func NewEnemy(kind EnemyKind, x, y, width, height, health int, respawnDelay float64) Enemy {
	e := Enemy{
		Kind:         kind,
		SpawnPos:     geom.Vec2{X: float64(x), Y: float64(y)},
		RespawnDelay: respawnDelay,
		Health:       health,
		MaxHealth:    health,
		Alive:        true,
	}
	e.Body = geom.Rect{W: width, H: height}
	e.SetPos(float64(x), float64(y))
	return e
}

// InKnockback reports whether knockback currently suppresses tracking
// and gravity.
func (e *Enemy) InKnockback() bool {
	return e.KnockbackTimer.Active()
}

// DamageFlash reports whether the renderer should show the hurt flash.
func (e *Enemy) DamageFlash(threshold float64) bool {
	return e.DamageCooldown.Seconds() > threshold
}

// CheckOnScreen recomputes the on-screen flag against the camera view.
// A dead enemy never reports itself on screen.
func (e *Enemy) CheckOnScreen(view geom.Rect) {
	if e.Alive {
		e.OnScreen = geom.Overlaps(e.Body, view)
	}
}

// TakeDamage mirrors the player's cooldown-gated damage contract. A
// killing hit deactivates the enemy and starts the respawn countdown.
func (e *Enemy) TakeDamage(damage int, origin geom.Vec2, ks KnockbackSpec) DamageOutcome {
	if e.DamageCooldown.Active() {
		return DamageIgnored
	}

	e.KnockbackTimer.Set(ks.StunDuration)
	e.DamageCooldown.Set(ks.Cooldown)

	if vel, ok := geom.Knockback(e.Pos, origin, ks.Horizontal, ks.Vertical); ok {
		e.Vel = vel
	}

	e.Health -= damage
	if e.Health <= 0 {
		e.Alive = false
		e.OnScreen = false
		e.RespawnTimer.Set(e.RespawnDelay)
		return DamageDied
	}
	return DamageHurt
}

// Respawn restores the enemy at its original spawn position with full
// health. It runs from the respawn countdown regardless of visibility.
func (e *Enemy) Respawn() {
	e.Alive = true
	e.Health = e.MaxHealth
	e.KnockbackTimer.Clear()
	e.Vel = geom.Vec2{}
	e.SetPos(e.SpawnPos.X, e.SpawnPos.Y)
}
