package locomotion

import "github.com/oomph-ac/locomotion/game"

// ResolveState returns the state a character should be in. Being airborne always wins; on the ground
// the state depends only on whether there is movement and whether the slide flag is set. current is
// returned only if no case matches, which cannot happen for boolean inputs.
func ResolveState(grounded, directionIsZero, sliding bool, current State) State {
	switch {
	case !grounded:
		return StateJump
	case directionIsZero && !sliding:
		return StateIdle
	case !directionIsZero && !sliding:
		return StateMove
	case !directionIsZero && sliding:
		return StateSlide
	case directionIsZero && sliding:
		return StateSlideIdle
	}
	return current
}

// DragFor returns the linear damping for the state. States without their own drag keep current.
func DragFor(s State, opts Opts, current float32) float32 {
	switch s {
	case StateMove:
		return opts.GroundDrag
	case StateSlide:
		return opts.SlideDrag
	case StateJump:
		return opts.AirDrag
	default:
		return current
	}
}

// ForceMultiplier returns the multiplier applied to the movement force in the state.
func ForceMultiplier(s State, opts Opts) float32 {
	switch s {
	case StateMove:
		return game.DefaultForceMultiplier
	case StateSlide:
		return opts.SlideMultiplier
	case StateJump:
		return opts.AirMultiplier
	default:
		return game.DefaultForceMultiplier
	}
}
