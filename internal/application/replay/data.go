package replay

// FrameInput is one frame's input snapshot in a replay file. Field
// names are shortened to keep recordings small.
type FrameInput struct {
	F  int     `json:"f"`            // frame number
	Dt float64 `json:"dt"`           // step length, seconds
	L  bool    `json:"l,omitempty"`  // left
	R  bool    `json:"r,omitempty"`  // right
	U  bool    `json:"u,omitempty"`  // up
	D  bool    `json:"d,omitempty"`  // down
	J  bool    `json:"j,omitempty"`  // jump held
	Ds bool    `json:"ds,omitempty"` // dash pressed
	A  bool    `json:"a,omitempty"`  // attack pressed
}

// ReplayData is a full recorded session. The step lengths are recorded
// per frame because the simulation runs on wall-clock time.
type ReplayData struct {
	Version   string       `json:"version"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
