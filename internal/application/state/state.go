package state

// Mode is the orchestrator's step mode. Gameplay only advances while
// Playing; the fade modes suspend everything except the fade tween.
type Mode int

const (
	ModePlaying Mode = iota
	ModeFadeOut
	ModeFadeIn
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModePlaying:
		return "Playing"
	case ModeFadeOut:
		return "FadeOut"
	case ModeFadeIn:
		return "FadeIn"
	default:
		return "Unknown"
	}
}
