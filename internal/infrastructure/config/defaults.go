package config

// DefaultTuning returns the stock simulation tuning. Tests and the save
// fallback path use it directly; cmd/game loads tuning.json instead.
func DefaultTuning() *Tuning {
	return &Tuning{
		Display: DisplayConfig{
			ScreenWidth:  1400,
			ScreenHeight: 800,
		},
		Level: LevelConfig{
			Width:      4250,
			FloorLevel: 700,
		},
		Physics: PhysicsConfig{
			Gravity:          1800,
			TerminalVelocity: 1200,
			MaxStep:          0.05,
		},
		Movement: MovementConfig{
			Speed:        300,
			JumpVelocity: -960,
		},
		Jump: JumpConfig{
			CoyoteTime:    0.05,
			CutMultiplier: 3,
		},
		Dash: DashConfig{
			Duration: 0.3,
			Cooldown: 0.75,
			Burst:    15,
		},
		Attack: AttackConfig{
			Duration:       0.5,
			Cooldown:       0.75,
			Damage:         2,
			PogoMultiplier: 1.5,
		},
		Combat: CombatConfig{
			DamageCooldown:      0.75,
			KnockbackDuration:   0.1,
			HorizontalKnockback: 600,
			VerticalKnockback:   -200,
			ContactDamage:       1,
			FlashThreshold:      0.25,
		},
		Camera: CameraConfig{
			Smoothing: 15,
		},
		Fade: FadeConfig{
			Speed: 300,
		},
		Enemies: EnemyTuning{
			GroundSpeed:  150,
			FlyingSpeed:  100,
			RespawnDelay: 10,
		},
		Player: PlayerConfig{
			Width:     55,
			Height:    100,
			SpawnX:    100,
			SpawnY:    250,
			MaxHealth: 10,
		},
	}
}
