package locomotion

import "github.com/go-gl/mathgl/mgl32"

// Handler is notified of the side effects a Controller produces. Handlers are called synchronously
// from Update on the goroutine driving the controller.
type Handler interface {
	// HandleStateChange is called after the state changed from one value to another. It is never
	// called when the resolved state equals the current state.
	HandleStateChange(c *Controller, from, to State)
	// HandleJump is called after the jump impulse was applied.
	HandleJump(c *Controller, impulse mgl32.Vec3)
	// HandleSlideToggle is called when the slide key or the move key changed the slide flag.
	HandleSlideToggle(c *Controller, sliding bool)
}

// NopHandler implements Handler and does nothing.
type NopHandler struct{}

func (NopHandler) HandleStateChange(*Controller, State, State) {}
func (NopHandler) HandleJump(*Controller, mgl32.Vec3)          {}
func (NopHandler) HandleSlideToggle(*Controller, bool)         {}
