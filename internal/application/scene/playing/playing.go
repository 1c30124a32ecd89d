// Package playing provides the main gameplay scene.
package playing

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/avaskine/knightfall/internal/application/replay"
	"github.com/avaskine/knightfall/internal/application/scene"
	"github.com/avaskine/knightfall/internal/application/state"
	"github.com/avaskine/knightfall/internal/application/system"
	"github.com/avaskine/knightfall/internal/domain/entity"
	"github.com/avaskine/knightfall/internal/infrastructure/config"
	"github.com/avaskine/knightfall/internal/infrastructure/save"
	"github.com/avaskine/knightfall/internal/infrastructure/sound"
)

// Options carries the optional collaborators of the playing scene. Any
// field may be zero; the scene degrades to an ephemeral, silent, live
// session.
type Options struct {
	Store      *save.Store
	Sounds     *sound.Bank
	RecordPath string
	Replay     *replay.ReplayData
}

// Playing is the gameplay scene. It owns the world state and drives
// the per-frame system pipeline; transitions (death, win) run through
// a fade so the reset never pops on screen.
type Playing struct {
	config  *config.Tuning
	level   *entity.Level
	player  *entity.Player
	enemies []entity.Enemy
	coins   []entity.Coin
	camera  entity.Camera

	inputSystem  *system.InputSystem
	playerSystem *system.PlayerSystem
	enemySystem  *system.EnemySystem
	combatSystem *system.CombatSystem
	cameraSystem *system.CameraSystem

	mode      state.Mode
	fade      *gween.Tween
	fadeAlpha float32
	winning   bool

	store  *save.Store
	sounds *sound.Bank

	recorder   *Recorder
	recordPath string
	replayer   *replay.Replayer
}

// New builds the playing scene from tuning and level data.
func New(cfg *config.Tuning, data *config.LevelData, opts Options) *Playing {
	level, enemies, coins := system.BuildWorld(cfg, data)
	physics := system.NewPhysicsSystem(cfg, level)

	p := &Playing{
		config:  cfg,
		level:   level,
		enemies: enemies,
		coins:   coins,
		camera: entity.Camera{
			ViewW: cfg.Display.ScreenWidth,
			ViewH: cfg.Display.ScreenHeight,
		},
		inputSystem:  system.NewInputSystem(),
		playerSystem: system.NewPlayerSystem(cfg, physics),
		enemySystem:  system.NewEnemySystem(cfg, physics),
		cameraSystem: system.NewCameraSystem(cfg),
		mode:         state.ModePlaying,
		store:        opts.Store,
		sounds:       opts.Sounds,
		recordPath:   opts.RecordPath,
	}
	p.combatSystem = system.NewCombatSystem(cfg, p)

	p.player = entity.NewPlayer(
		cfg.Player.SpawnX, cfg.Player.SpawnY,
		cfg.Player.Width, cfg.Player.Height,
		cfg.Player.MaxHealth,
	)

	if opts.RecordPath != "" {
		p.recorder = NewRecorder()
		log.Printf("Recording enabled: %s", opts.RecordPath)
	}
	if opts.Replay != nil {
		p.replayer = replay.NewReplayer(*opts.Replay)
		log.Printf("Replaying %d frames", p.replayer.TotalFrames())
	}

	return p
}

// OnEnter restores saved progress. A save with dead health immediately
// replays the death sequence instead of reviving the player for free.
func (p *Playing) OnEnter() {
	progress := p.store.Load(save.Progress{
		X:      p.config.Player.SpawnX,
		Y:      p.config.Player.SpawnY,
		Health: p.config.Player.MaxHealth,
	})

	p.player.SetPos(float64(progress.X), float64(progress.Y))
	p.player.Health = progress.Health
	p.cameraSystem.Snap(&p.camera, p.player)

	if progress.Health <= 0 {
		p.PlayerDied()
	}
}

// OnExit saves progress and flushes any active recording.
func (p *Playing) OnExit() {
	p.store.Save(save.Progress{
		X:      int(p.player.Pos.X),
		Y:      int(p.player.Pos.Y),
		Health: p.player.Health,
	})

	if p.recorder != nil {
		if err := p.recorder.Save(p.recordPath); err != nil {
			log.Printf("Failed to save recording: %v", err)
		} else {
			log.Printf("Recording saved: %s (%d frames)", p.recordPath, p.recorder.FrameCount())
		}
	}
}

// Update implements scene.Scene.
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	switch p.mode {
	case state.ModePlaying:
		p.step(dt)

	case state.ModeFadeOut:
		var finished bool
		p.fadeAlpha, finished = p.fade.Update(float32(dt))
		if finished {
			if p.winning {
				return nil, ebiten.Termination
			}
			p.respawn()
			p.mode = state.ModeFadeIn
			p.fade = gween.New(255, 0, p.fadeDuration(), ease.Linear)
		}

	case state.ModeFadeIn:
		var finished bool
		p.fadeAlpha, finished = p.fade.Update(float32(dt))
		if finished {
			p.mode = state.ModePlaying
		}
	}

	return nil, nil
}

// step runs one simulation frame: enemies, player, combat, camera.
func (p *Playing) step(dt float64) {
	var in system.InputState
	if p.replayer != nil {
		frame, recordedDt, ok := p.replayer.Next()
		if !ok {
			// Recording exhausted; the world idles.
			frame, recordedDt = system.InputState{}, dt
		}
		in, dt = frame, recordedDt
	} else {
		in = p.inputSystem.Poll()
	}

	if p.recorder != nil {
		p.recorder.RecordFrame(in, dt)
	}

	view := p.camera.ViewRect()
	for i := range p.enemies {
		p.enemySystem.Update(&p.enemies[i], p.player, view, dt)
	}

	p.playerSystem.Update(p.player, in, dt)
	p.combatSystem.Resolve(p.player, p.enemies, p.coins)
	p.cameraSystem.Update(&p.camera, p.player, dt)
}

// respawn resets the world after a death fade. Enemies and coins come
// back with the player so a fresh life faces a fresh level.
func (p *Playing) respawn() {
	p.player.Respawn(p.config.Player.SpawnX, p.config.Player.SpawnY, p.config.Player.MaxHealth)

	for i := range p.enemies {
		p.enemies[i].Respawn()
		p.enemies[i].OnScreen = false
	}
	for i := range p.coins {
		p.coins[i].Collected = false
	}

	p.cameraSystem.Snap(&p.camera, p.player)
}

func (p *Playing) fadeDuration() float32 {
	return float32(255 / p.config.Fade.Speed)
}

func (p *Playing) beginFade(winning bool) {
	if p.mode == state.ModeFadeOut {
		return
	}
	p.winning = winning
	p.mode = state.ModeFadeOut
	p.fade = gween.New(0, 255, p.fadeDuration(), ease.Linear)
	p.fadeAlpha = 0
}

// PlaySound implements system.Sink.
func (p *Playing) PlaySound(name string) {
	if p.sounds != nil {
		p.sounds.Play(name)
	}
}

// PlayerDied implements system.Sink.
func (p *Playing) PlayerDied() {
	p.beginFade(false)
}

// Won implements system.Sink.
func (p *Playing) Won() {
	p.beginFade(true)
}
