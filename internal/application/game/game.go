// Package game provides the ebiten.Game adapter that drives scenes
// with wall-clock time.
package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/avaskine/knightfall/internal/application/scene"
)

// Game implements ebiten.Game. It measures real elapsed time between
// frames, clamps it to maxStep, and hands the result to the current
// scene. The clamp keeps a stall (window drag, debugger pause) from
// turning into one giant simulation step that tunnels entities through
// platforms.
type Game struct {
	current scene.Scene
	screenW int
	screenH int

	maxStep float64
	now     func() time.Time
	last    time.Time

	exited bool
}

// New creates the loop around an initial scene. The scene's OnEnter
// runs immediately. maxStep is the delta-time clamp in seconds.
func New(initial scene.Scene, screenW, screenH int, maxStep float64) *Game {
	g := &Game{
		current: initial,
		screenW: screenW,
		screenH: screenH,
		maxStep: maxStep,
		now:     time.Now,
	}
	g.current.OnEnter()
	return g
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	next, err := g.current.Update(g.step())
	if err != nil {
		g.Shutdown()
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// step returns the clamped wall-clock time since the previous frame.
// The first frame gets a zero step.
func (g *Game) step() float64 {
	now := g.now()
	if g.last.IsZero() {
		g.last = now
		return 0
	}

	dt := now.Sub(g.last).Seconds()
	g.last = now

	if dt > g.maxStep {
		dt = g.maxStep
	}
	return dt
}

// Shutdown exits the current scene, running its persistence hooks.
// The loop calls it when a scene ends the run with an error; main must
// also call it after RunGame returns, because closing the window ends
// the loop without going through Update. Idempotent.
func (g *Game) Shutdown() {
	if g.exited {
		return
	}
	g.exited = true
	g.current.OnExit()
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetClock replaces the time source. Tests use it to drive exact steps.
func (g *Game) SetClock(now func() time.Time) {
	g.now = now
	g.last = time.Time{}
}
