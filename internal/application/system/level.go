package system

import (
	"github.com/avaskine/knightfall/internal/domain/entity"
	"github.com/avaskine/knightfall/internal/domain/geom"
	"github.com/avaskine/knightfall/internal/infrastructure/config"
)

// coinSize is the square body size of a collectible.
const coinSize = 50

// BuildWorld converts raw level data into world entities. Level files
// measure y upward from the floor level, so every entry is flipped into
// y-down world space here. Enemy descriptors with an unknown kind tag
// fall back to the ground variant.
func BuildWorld(tn *config.Tuning, data *config.LevelData) (*entity.Level, []entity.Enemy, []entity.Coin) {
	level := &entity.Level{
		Width:     tn.Level.Width,
		Platforms: make([]geom.Rect, 0, len(data.Platforms)),
	}

	for _, p := range data.Platforms {
		w := int(p.W)
		if p.W == config.FullLevelWidth {
			w = tn.Level.Width
		}
		level.Platforms = append(level.Platforms, geom.Rect{
			X: p.X,
			Y: tn.Level.FloorLevel - p.Y,
			W: w,
			H: p.H,
		})
	}

	enemies := make([]entity.Enemy, 0, len(data.Enemies))
	for _, e := range data.Enemies {
		kind := entity.KindGround
		if e.Type == "Flying" {
			kind = entity.KindFlying
		}
		enemies = append(enemies, entity.NewEnemy(
			kind,
			e.X,
			tn.Level.FloorLevel-e.Y,
			e.W,
			e.H,
			e.Health,
			tn.Enemies.RespawnDelay,
		))
	}

	coins := make([]entity.Coin, 0, len(data.Coins))
	for _, c := range data.Coins {
		coins = append(coins, entity.Coin{
			Body: geom.Rect{X: c.X, Y: tn.Level.FloorLevel - c.Y, W: coinSize, H: coinSize},
		})
	}

	return level, enemies, coins
}
