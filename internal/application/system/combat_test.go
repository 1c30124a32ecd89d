package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avaskine/knightfall/internal/domain/entity"
	"github.com/avaskine/knightfall/internal/domain/geom"
	"github.com/avaskine/knightfall/internal/infrastructure/config"
)

// sinkRecorder captures combat events for assertions.
type sinkRecorder struct {
	sounds []string
	died   bool
	won    bool
}

func (r *sinkRecorder) PlaySound(name string) { r.sounds = append(r.sounds, name) }
func (r *sinkRecorder) PlayerDied()           { r.died = true }
func (r *sinkRecorder) Won()                  { r.won = true }

func createTestCombat() (*CombatSystem, *sinkRecorder) {
	rec := &sinkRecorder{}
	return NewCombatSystem(config.DefaultTuning(), rec), rec
}

// attackingPlayer returns a player mid-attack with the hitbox placed
// over the given rectangle.
func attackingPlayer(dir entity.AttackDirection, target geom.Rect) *entity.Player {
	p := entity.NewPlayer(100, 200, 55, 100, 10)
	p.AttackActive.Set(0.5)
	p.AttackCooldown.Set(0.75)
	p.AttackDir = dir
	p.AttackHitbox = target
	return p
}

func onScreenEnemy(x, y, health int) entity.Enemy {
	e := entity.NewEnemy(entity.KindGround, x, y, 60, 60, health, 10)
	e.OnScreen = true
	return e
}

func TestPlayerAttacksEnemy(t *testing.T) {
	t.Run("attack damages and knocks back", func(t *testing.T) {
		combat, rec := createTestCombat()
		p := attackingPlayer(entity.AttackRight, geom.Rect{X: 500, Y: 300, W: 55, H: 55})
		enemies := []entity.Enemy{onScreenEnemy(510, 310, 5)}

		combat.Resolve(p, enemies, nil)

		assert.Equal(t, 3, enemies[0].Health)
		assert.True(t, enemies[0].InKnockback())
		assert.Positive(t, enemies[0].Vel.X) // pushed away from the player
		assert.Equal(t, []string{SoundDamage}, rec.sounds)
	})

	t.Run("enemy cooldown ignores the hit", func(t *testing.T) {
		combat, rec := createTestCombat()
		p := attackingPlayer(entity.AttackRight, geom.Rect{X: 500, Y: 300, W: 55, H: 55})
		enemies := []entity.Enemy{onScreenEnemy(510, 310, 5)}
		enemies[0].DamageCooldown.Set(0.75)

		combat.Resolve(p, enemies, nil)

		assert.Equal(t, 5, enemies[0].Health)
		assert.Empty(t, rec.sounds)
	})

	t.Run("killing hit plays the death sound", func(t *testing.T) {
		combat, rec := createTestCombat()
		p := attackingPlayer(entity.AttackRight, geom.Rect{X: 500, Y: 300, W: 55, H: 55})
		enemies := []entity.Enemy{onScreenEnemy(510, 310, 2)}

		combat.Resolve(p, enemies, nil)

		assert.False(t, enemies[0].Alive)
		assert.True(t, enemies[0].RespawnTimer.Active())
		assert.Equal(t, []string{SoundDeath}, rec.sounds)
	})

	t.Run("off-screen enemy is untouchable", func(t *testing.T) {
		combat, rec := createTestCombat()
		p := attackingPlayer(entity.AttackRight, geom.Rect{X: 500, Y: 300, W: 55, H: 55})
		enemies := []entity.Enemy{onScreenEnemy(510, 310, 5)}
		enemies[0].OnScreen = false

		combat.Resolve(p, enemies, nil)

		assert.Equal(t, 5, enemies[0].Health)
		assert.Empty(t, rec.sounds)
	})

	t.Run("idle hitbox does nothing", func(t *testing.T) {
		combat, rec := createTestCombat()
		p := attackingPlayer(entity.AttackRight, geom.Rect{X: 500, Y: 300, W: 55, H: 55})
		p.AttackActive.Clear()
		enemies := []entity.Enemy{onScreenEnemy(510, 310, 5)}

		combat.Resolve(p, enemies, nil)

		assert.Equal(t, 5, enemies[0].Health)
		assert.Empty(t, rec.sounds)
	})
}

func TestPogo(t *testing.T) {
	t.Run("airborne down-attack bounces and reopens the attack", func(t *testing.T) {
		combat, _ := createTestCombat()
		p := attackingPlayer(entity.AttackDown, geom.Rect{X: 500, Y: 300, W: 55, H: 55})
		p.Grounded = false
		enemies := []entity.Enemy{onScreenEnemy(510, 310, 5)}

		combat.Resolve(p, enemies, nil)

		cfg := config.DefaultTuning()
		assert.InDelta(t, cfg.Movement.JumpVelocity*cfg.Attack.PogoMultiplier, p.Vel.Y, 1e-9)
		assert.False(t, p.AttackCooldown.Active())
	})

	t.Run("grounded down-attack does not bounce", func(t *testing.T) {
		combat, _ := createTestCombat()
		p := attackingPlayer(entity.AttackDown, geom.Rect{X: 500, Y: 300, W: 55, H: 55})
		p.Grounded = true
		enemies := []entity.Enemy{onScreenEnemy(510, 310, 5)}

		combat.Resolve(p, enemies, nil)

		assert.Equal(t, 0.0, p.Vel.Y)
		assert.True(t, p.AttackCooldown.Active())
	})

	t.Run("ignored hit does not bounce", func(t *testing.T) {
		combat, _ := createTestCombat()
		p := attackingPlayer(entity.AttackDown, geom.Rect{X: 500, Y: 300, W: 55, H: 55})
		p.Grounded = false
		enemies := []entity.Enemy{onScreenEnemy(510, 310, 5)}
		enemies[0].DamageCooldown.Set(0.75)

		combat.Resolve(p, enemies, nil)

		assert.Equal(t, 0.0, p.Vel.Y)
		assert.True(t, p.AttackCooldown.Active())
	})
}

func TestCoinCollection(t *testing.T) {
	t.Run("attack sweep collects", func(t *testing.T) {
		combat, rec := createTestCombat()
		p := attackingPlayer(entity.AttackRight, geom.Rect{X: 500, Y: 300, W: 55, H: 55})
		coins := []entity.Coin{
			{Body: geom.Rect{X: 510, Y: 310, W: 50, H: 50}},
			{Body: geom.Rect{X: 2000, Y: 310, W: 50, H: 50}},
		}

		combat.Resolve(p, nil, coins)

		assert.True(t, coins[0].Collected)
		assert.False(t, coins[1].Collected)
		assert.Equal(t, []string{SoundCoin}, rec.sounds)
		assert.False(t, rec.won)
	})

	t.Run("walking through a coin does not collect", func(t *testing.T) {
		combat, rec := createTestCombat()
		p := entity.NewPlayer(500, 300, 55, 100, 10)
		coins := []entity.Coin{{Body: geom.Rect{X: 510, Y: 310, W: 50, H: 50}}}

		combat.Resolve(p, nil, coins)

		assert.False(t, coins[0].Collected)
		assert.Empty(t, rec.sounds)
	})

	t.Run("last coin wins the game", func(t *testing.T) {
		combat, rec := createTestCombat()
		p := attackingPlayer(entity.AttackRight, geom.Rect{X: 500, Y: 300, W: 55, H: 55})
		coins := []entity.Coin{
			{Body: geom.Rect{X: 2000, Y: 310, W: 50, H: 50}, Collected: true},
			{Body: geom.Rect{X: 510, Y: 310, W: 50, H: 50}},
		}

		combat.Resolve(p, nil, coins)

		assert.True(t, rec.won)
	})
}

func TestContactDamage(t *testing.T) {
	t.Run("overlap hurts the player once per cooldown", func(t *testing.T) {
		combat, rec := createTestCombat()
		p := entity.NewPlayer(500, 300, 55, 100, 10)
		enemies := []entity.Enemy{
			onScreenEnemy(510, 310, 5),
			onScreenEnemy(490, 320, 5),
		}

		combat.Resolve(p, enemies, nil)

		// Both enemies overlap, but the shared cooldown admits one hit.
		assert.Equal(t, 9, p.Health)
		assert.True(t, p.InKnockback())
		assert.Equal(t, []string{SoundDamage}, rec.sounds)
	})

	t.Run("lethal contact reports the death", func(t *testing.T) {
		combat, rec := createTestCombat()
		p := entity.NewPlayer(500, 300, 55, 100, 1)
		enemies := []entity.Enemy{onScreenEnemy(510, 310, 5)}

		combat.Resolve(p, enemies, nil)

		assert.Equal(t, 0, p.Health)
		assert.True(t, rec.died)
		assert.Equal(t, []string{SoundDeath}, rec.sounds)
	})

	t.Run("separated bodies do not hurt", func(t *testing.T) {
		combat, rec := createTestCombat()
		p := entity.NewPlayer(500, 300, 55, 100, 10)
		enemies := []entity.Enemy{onScreenEnemy(2000, 310, 5)}

		combat.Resolve(p, enemies, nil)

		assert.Equal(t, 10, p.Health)
		assert.Empty(t, rec.sounds)
		assert.False(t, rec.died)
	})
}
