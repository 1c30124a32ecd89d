package system

// Sound names emitted to the audio collaborator.
const (
	SoundCoin   = "coin"
	SoundDamage = "damage"
	SoundDeath  = "death"
)

// Sink receives gameplay events synchronously at the moment they occur.
// The orchestrator implements it; systems hold a Sink instead of a
// back-pointer to their owner.
type Sink interface {
	// PlaySound triggers a named sound effect.
	PlaySound(name string)
	// PlayerDied fires when the player's health drops to zero or below.
	PlayerDied()
	// Won fires when the last collectible is collected.
	Won()
}
