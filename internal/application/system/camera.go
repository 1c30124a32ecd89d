package system

import (
	"github.com/avaskine/knightfall/internal/domain/entity"
	"github.com/avaskine/knightfall/internal/infrastructure/config"
)

// verticalBias divides the view height when centering on the player,
// showing more of the level above the player than below.
const verticalBias = 1.8

// CameraSystem follows the player with exponential-decay smoothing,
// clamped to the level bounds.
type CameraSystem struct {
	config *config.Tuning
}

// NewCameraSystem creates a new camera system.
func NewCameraSystem(cfg *config.Tuning) *CameraSystem {
	return &CameraSystem{config: cfg}
}

// Update retargets the camera on the player and moves it a fraction of
// the way there. The camera never snaps: for smoothing*dt < 1 it
// approaches without overshooting.
func (s *CameraSystem) Update(cam *entity.Camera, p *entity.Player, dt float64) {
	cam.Target.X = p.Pos.X + float64(p.Body.W)/2 - float64(cam.ViewW)/2
	cam.Target.Y = p.Pos.Y + float64(p.Body.H)/2 - float64(cam.ViewH)/verticalBias

	s.clampTarget(cam)

	cam.Pos.X += (cam.Target.X - cam.Pos.X) * s.config.Camera.Smoothing * dt
	cam.Pos.Y += (cam.Target.Y - cam.Pos.Y) * s.config.Camera.Smoothing * dt
}

// Snap jumps the camera to the respawned player without smoothing.
func (s *CameraSystem) Snap(cam *entity.Camera, p *entity.Player) {
	cam.Pos.X = 0
	cam.Pos.Y = p.Pos.Y + float64(p.Body.H)/2 - float64(cam.ViewH)/verticalBias
}

func (s *CameraSystem) clampTarget(cam *entity.Camera) {
	maxX := float64(s.config.Level.Width - cam.ViewW)
	if cam.Target.X < 0 {
		cam.Target.X = 0
	} else if cam.Target.X > maxX {
		cam.Target.X = maxX
	}

	if cam.Target.Y > 0 {
		cam.Target.Y = 0
	}
}
