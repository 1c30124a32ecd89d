package system

import (
	"github.com/avaskine/knightfall/internal/domain/entity"
	"github.com/avaskine/knightfall/internal/domain/geom"
	"github.com/avaskine/knightfall/internal/infrastructure/config"
)

// CombatSystem cross-checks the player's attack hitbox against enemy
// bodies and collectibles, and enemy bodies against the player. It runs
// once per step, after the enemy and player updates.
type CombatSystem struct {
	config *config.Tuning
	sink   Sink
}

// NewCombatSystem creates a new combat system reporting into sink.
func NewCombatSystem(cfg *config.Tuning, sink Sink) *CombatSystem {
	return &CombatSystem{
		config: cfg,
		sink:   sink,
	}
}

// Resolve runs one step of combat resolution.
func (s *CombatSystem) Resolve(p *entity.Player, enemies []entity.Enemy, coins []entity.Coin) {
	s.playerAttacks(p, enemies)
	s.collectCoins(p, coins)
	s.contactDamage(p, enemies)
}

func (s *CombatSystem) knockbackSpec() entity.KnockbackSpec {
	return entity.KnockbackSpec{
		Horizontal:   s.config.Combat.HorizontalKnockback,
		Vertical:     s.config.Combat.VerticalKnockback,
		StunDuration: s.config.Combat.KnockbackDuration,
		Cooldown:     s.config.Combat.DamageCooldown,
	}
}

func (s *CombatSystem) playerAttacks(p *entity.Player, enemies []entity.Enemy) {
	if !p.IsAttacking() {
		return
	}

	for i := range enemies {
		e := &enemies[i]
		if !e.OnScreen || !geom.Overlaps(e.Body, p.AttackHitbox) {
			continue
		}

		outcome := e.TakeDamage(s.config.Attack.Damage, p.Pos, s.knockbackSpec())
		switch outcome {
		case entity.DamageIgnored:
			continue
		case entity.DamageDied:
			s.sink.PlaySound(SoundDeath)
		case entity.DamageHurt:
			s.sink.PlaySound(SoundDamage)
		}

		// Pogo: a landed down-attack while airborne bounces the player
		// and reopens the attack immediately.
		if !p.Grounded && p.AttackDir == entity.AttackDown {
			p.Vel.Y = s.config.Movement.JumpVelocity * s.config.Attack.PogoMultiplier
			p.AttackCooldown.Clear()
		}
	}
}

func (s *CombatSystem) collectCoins(p *entity.Player, coins []entity.Coin) {
	if !p.IsAttacking() {
		return
	}

	for i := range coins {
		c := &coins[i]
		if c.Collected || !geom.Overlaps(c.Body, p.AttackHitbox) {
			continue
		}

		c.Collected = true
		s.sink.PlaySound(SoundCoin)

		if allCollected(coins) {
			s.sink.Won()
		}
	}
}

// contactDamage lets every overlapping on-screen enemy attempt contact
// damage independently; the player's shared damage cooldown is the only
// thing that limits repeated hits.
func (s *CombatSystem) contactDamage(p *entity.Player, enemies []entity.Enemy) {
	for i := range enemies {
		e := &enemies[i]
		if !e.OnScreen || !geom.Overlaps(p.Body, e.Body) {
			continue
		}

		switch p.TakeDamage(s.config.Combat.ContactDamage, e.Pos, s.knockbackSpec()) {
		case entity.DamageDied:
			s.sink.PlaySound(SoundDeath)
			s.sink.PlayerDied()
		case entity.DamageHurt:
			s.sink.PlaySound(SoundDamage)
		}
	}
}

func allCollected(coins []entity.Coin) bool {
	for i := range coins {
		if !coins[i].Collected {
			return false
		}
	}
	return true
}
