package entity

// Timer is a countdown in seconds. The zero value is expired; every
// boolean/timer pair in the simulation (dash, attack, knockback,
// cooldowns, coyote time) is a Timer plus at most one explicit flag.
type Timer float64

// Set starts the timer with the given duration.
func (t *Timer) Set(seconds float64) {
	*t = Timer(seconds)
}

// Tick counts the timer down. Expired timers stay put.
func (t *Timer) Tick(dt float64) {
	if *t > 0 {
		*t -= Timer(dt)
	}
}

// Active reports whether the timer is still running.
func (t Timer) Active() bool {
	return t > 0
}

// Clear expires the timer immediately.
func (t *Timer) Clear() {
	*t = 0
}

// Seconds returns the remaining time in seconds.
func (t Timer) Seconds() float64 {
	return float64(t)
}
