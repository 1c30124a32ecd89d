package playing

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/avaskine/knightfall/internal/application/replay"
	"github.com/avaskine/knightfall/internal/application/system"
)

// Recorder captures per-frame input for later playback.
type Recorder struct {
	data  replay.ReplayData
	frame int
}

// NewRecorder creates a recorder with an empty session.
func NewRecorder() *Recorder {
	return &Recorder{
		data: replay.ReplayData{
			Version:   "1.0",
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]replay.FrameInput, 0, 3600),
		},
	}
}

// RecordFrame appends one frame's input and step length.
func (r *Recorder) RecordFrame(in system.InputState, dt float64) {
	r.data.Frames = append(r.data.Frames, replay.FrameInput{
		F:  r.frame,
		Dt: dt,
		L:  in.Left,
		R:  in.Right,
		U:  in.Up,
		D:  in.Down,
		J:  in.JumpHeld,
		Ds: in.DashPressed,
		A:  in.AttackPressed,
	})
	r.frame++
}

// Save writes the session to a file.
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create replay file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// FrameCount returns the number of recorded frames.
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recorded session.
func (r *Recorder) Data() replay.ReplayData {
	return r.data
}
