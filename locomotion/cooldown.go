package locomotion

// cooldownEpsilon absorbs float32 drift when a cooldown is ticked with many small steps.
const cooldownEpsilon = 1e-6

// Cooldown is a one-shot timer advanced explicitly by Tick.
type Cooldown struct {
	remaining float32
	active    bool
}

// Start (re)starts the cooldown with the duration passed in seconds.
func (c *Cooldown) Start(duration float32) {
	c.remaining = duration
	c.active = true
}

// Tick advances the cooldown by dt seconds. It returns true exactly once, on the tick that finishes
// the cooldown. A cooldown started with a duration of zero or less finishes on the next tick.
func (c *Cooldown) Tick(dt float32) bool {
	if !c.active {
		return false
	}
	c.remaining -= dt
	if c.remaining > cooldownEpsilon {
		return false
	}
	c.remaining = 0
	c.active = false
	return true
}

// Active returns true while the cooldown is running.
func (c *Cooldown) Active() bool {
	return c.active
}

// Remaining returns the seconds left before the cooldown finishes.
func (c *Cooldown) Remaining() float32 {
	return c.remaining
}
