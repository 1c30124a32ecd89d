package main

import (
	"flag"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/avaskine/knightfall/internal/application/game"
	"github.com/avaskine/knightfall/internal/application/replay"
	"github.com/avaskine/knightfall/internal/application/scene/playing"
	"github.com/avaskine/knightfall/internal/infrastructure/config"
	"github.com/avaskine/knightfall/internal/infrastructure/save"
	"github.com/avaskine/knightfall/internal/infrastructure/sound"
)

const appName = "knightfall"

func main() {
	dataFlag := flag.String("data", "", "Load tuning and level data from a directory instead of the embedded files")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded session")
	flag.Parse()

	loader, err := newLoader(*dataFlag)
	if err != nil {
		log.Fatalf("Failed to open data directory: %v", err)
	}

	cfg, err := loader.LoadTuning()
	if err != nil {
		log.Fatalf("Failed to load tuning: %v", err)
	}

	levelData, err := loader.LoadLevelData()
	if err != nil {
		log.Fatalf("Failed to load level data: %v", err)
	}

	opts := playing.Options{
		RecordPath: *recordFlag,
	}

	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		opts.Replay = data
	}

	store, err := save.Open(appName)
	if err != nil {
		log.Printf("Warning: progress will not persist: %v", err)
	} else {
		opts.Store = store
	}

	opts.Sounds = loadSounds()

	g := game.New(
		playing.New(cfg, levelData, opts),
		cfg.Display.ScreenWidth,
		cfg.Display.ScreenHeight,
		cfg.Physics.MaxStep,
	)

	ebiten.SetWindowSize(cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	ebiten.SetWindowTitle("Knightfall")

	err = ebiten.RunGame(g)

	// Closing the window ends RunGame with nil without reaching the
	// scene's exit hooks; run them here so progress saves on every
	// shutdown path.
	g.Shutdown()

	if err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}

func newLoader(dataDir string) (*config.Loader, error) {
	if dataDir != "" {
		return config.NewLoader(dataDir), nil
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys), nil
}

// loadSounds decodes the bundled effects. Missing assets leave the
// corresponding effect silent.
func loadSounds() *sound.Bank {
	bank := sound.NewBank()

	fsys, err := fs.Sub(configFS, "configs/sounds")
	if err != nil {
		log.Printf("Warning: sounds unavailable: %v", err)
		return bank
	}

	bank.LoadAll(fsys, "coin", "damage", "death")
	return bank
}
