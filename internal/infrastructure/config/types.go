package config

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Tuning is the root config for tuning.json. Every simulation constant
// lives here and is threaded into the systems that need it, so the core
// can run under alternate tunings in tests.
type Tuning struct {
	Display  DisplayConfig  `json:"display"`
	Level    LevelConfig    `json:"level"`
	Physics  PhysicsConfig  `json:"physics"`
	Movement MovementConfig `json:"movement"`
	Jump     JumpConfig     `json:"jump"`
	Dash     DashConfig     `json:"dash"`
	Attack   AttackConfig   `json:"attack"`
	Combat   CombatConfig   `json:"combat"`
	Camera   CameraConfig   `json:"camera"`
	Fade     FadeConfig     `json:"fade"`
	Enemies  EnemyTuning    `json:"enemies"`
	Player   PlayerConfig   `json:"player"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
}

// LevelConfig describes the level coordinate space. Level data files
// measure y upward from FloorLevel; the world uses y-down screen space.
type LevelConfig struct {
	Width      int `json:"width"`
	FloorLevel int `json:"floorLevel"`
}

type PhysicsConfig struct {
	Gravity          float64 `json:"gravity"`
	TerminalVelocity float64 `json:"terminalVelocity"`
	MaxStep          float64 `json:"maxStep"` // delta-time clamp, seconds
}

type MovementConfig struct {
	Speed        float64 `json:"speed"`
	JumpVelocity float64 `json:"jumpVelocity"`
}

type JumpConfig struct {
	CoyoteTime    float64 `json:"coyoteTime"`
	CutMultiplier float64 `json:"cutMultiplier"` // extra gravity while rising with jump released
}

type DashConfig struct {
	Duration float64 `json:"duration"`
	Cooldown float64 `json:"cooldown"`
	Burst    float64 `json:"burst"` // dash velocity = speed * Burst * remaining timer
}

type AttackConfig struct {
	Duration       float64 `json:"duration"`
	Cooldown       float64 `json:"cooldown"`
	Damage         int     `json:"damage"`
	PogoMultiplier float64 `json:"pogoMultiplier"` // bounce = jumpVelocity * PogoMultiplier
}

type CombatConfig struct {
	DamageCooldown      float64 `json:"damageCooldown"`
	KnockbackDuration   float64 `json:"knockbackDuration"`
	HorizontalKnockback float64 `json:"horizontalKnockback"`
	VerticalKnockback   float64 `json:"verticalKnockback"`
	ContactDamage       int     `json:"contactDamage"`
	FlashThreshold      float64 `json:"flashThreshold"` // damage flash while cooldown above this
}

type CameraConfig struct {
	Smoothing float64 `json:"smoothing"`
}

type FadeConfig struct {
	Speed float64 `json:"speed"` // alpha units (0-255) per second
}

type EnemyTuning struct {
	GroundSpeed  float64 `json:"groundSpeed"`
	FlyingSpeed  float64 `json:"flyingSpeed"`
	RespawnDelay float64 `json:"respawnDelay"`
}

type PlayerConfig struct {
	Width     int `json:"width"`
	Height    int `json:"height"`
	SpawnX    int `json:"spawnX"`
	SpawnY    int `json:"spawnY"`
	MaxHealth int `json:"maxHealth"`
}

// LevelData holds the raw level geometry entries as they appear in the
// platforms/enemies/coins JSON files.
type LevelData struct {
	Platforms []PlatformEntry
	Enemies   []EnemyEntry
	Coins     []CoinEntry
}

// PlatformEntry is one rectangle from platforms.json. Y is measured
// upward from the floor level.
type PlatformEntry struct {
	X int           `json:"x"`
	Y int           `json:"y"`
	W PlatformWidth `json:"w"`
	H int           `json:"h"`
}

// EnemyEntry is one enemy descriptor from enemies.json. Unrecognized
// Type values fall back to the ground variant at build time.
type EnemyEntry struct {
	Type   string `json:"type"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	W      int    `json:"w"`
	H      int    `json:"h"`
	Health int    `json:"health"`
}

// CoinEntry is one collectible position from coins.json.
type CoinEntry struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// FullLevelWidth marks a platform whose width resolves to the level
// width when the world is built.
const FullLevelWidth PlatformWidth = -1

// PlatformWidth is a platform width that is either a number or the
// string "LEVEL_WIDTH" in the JSON file.
type PlatformWidth int

// UnmarshalJSON accepts a JSON number or the string "LEVEL_WIDTH".
func (w *PlatformWidth) UnmarshalJSON(data []byte) error {
	if bytes.HasPrefix(data, []byte(`"`)) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s != "LEVEL_WIDTH" {
			return fmt.Errorf("unknown platform width %q", s)
		}
		*w = FullLevelWidth
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*w = PlatformWidth(n)
	return nil
}
