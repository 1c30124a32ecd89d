package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/avaskine/knightfall/internal/application/system"
)

// Replayer plays back a recorded session frame by frame.
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a replayer over the given data.
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay reads a replay file.
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open replay: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// Next returns the input and step length for the current frame and
// advances. ok is false once the recording is exhausted.
func (r *Replayer) Next() (in system.InputState, dt float64, ok bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, 0, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return system.InputState{
		Left:          fi.L,
		Right:         fi.R,
		Up:            fi.U,
		Down:          fi.D,
		JumpHeld:      fi.J,
		DashPressed:   fi.Ds,
		AttackPressed: fi.A,
	}, fi.Dt, true
}

// CurrentFrame returns the number of frames consumed so far.
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the recording's length in frames.
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Reset rewinds to the first frame.
func (r *Replayer) Reset() {
	r.frame = 0
}
