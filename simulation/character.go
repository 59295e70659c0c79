package simulation

import (
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/input"
	"github.com/oomph-ac/locomotion/locomotion"
	"github.com/oomph-ac/locomotion/physics"
	"github.com/sirupsen/logrus"
)

// Character is a controller together with the body and input it owns.
type Character struct {
	id string

	controller *locomotion.Controller
	body       *physics.Body
	feed       input.Frames
	recorder   *input.Recorder

	log *logrus.Entry

	transitions atomic.Uint64
	jumps       atomic.Uint64
	faulted     atomic.Bool
}

// ID ...
func (c *Character) ID() string {
	return c.id
}

// Controller returns the movement controller of the character.
func (c *Character) Controller() *locomotion.Controller {
	return c.controller
}

// Body returns the rigid body of the character.
func (c *Character) Body() *physics.Body {
	return c.body
}

// Transitions returns the number of state changes since the character spawned.
func (c *Character) Transitions() uint64 {
	return c.transitions.Load()
}

// Jumps returns the number of jumps since the character spawned.
func (c *Character) Jumps() uint64 {
	return c.jumps.Load()
}

// Faulted returns true if an update of the character panicked. Faulted characters are no longer
// updated.
func (c *Character) Faulted() bool {
	return c.faulted.Load()
}

// Record captures every frame read by the character into r from the next frame on.
func (c *Character) Record(r *input.Recorder) {
	c.recorder = r
}

// HandleStateChange ...
func (c *Character) HandleStateChange(ctl *locomotion.Controller, from, to locomotion.State) {
	c.transitions.Add(1)
	c.log.WithFields(logrus.Fields{
		"frame": ctl.Frame(),
		"from":  from.String(),
		"to":    to.String(),
	}).Info("state changed")
}

// HandleJump ...
func (c *Character) HandleJump(ctl *locomotion.Controller, impulse mgl32.Vec3) {
	c.jumps.Add(1)
	c.log.WithFields(logrus.Fields{
		"frame":   ctl.Frame(),
		"impulse": impulse.Y(),
	}).Info("jumped")
}

// HandleSlideToggle ...
func (c *Character) HandleSlideToggle(ctl *locomotion.Controller, sliding bool) {
	c.log.WithFields(logrus.Fields{
		"frame":   ctl.Frame(),
		"sliding": sliding,
	}).Debug("slide toggled")
}
