package locomotion

import (
	"errors"

	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/input"
	"github.com/oomph-ac/locomotion/oerror"
	"github.com/oomph-ac/locomotion/physics"
)

var bindingNames = [...]string{"move", "jump", "slide"}

// Opts are the designer-tunable constants of a Controller.
type Opts struct {
	// MovementSpeed scales the movement force and is the maximum horizontal speed.
	MovementSpeed float32

	JumpForce float32
	// JumpCooldown is the number of seconds after a jump before the next jump is allowed.
	JumpCooldown float32
	// JumpReadyOnSpawn decides whether a jump is available before the first cooldown.
	JumpReadyOnSpawn bool

	AirMultiplier float32
	AirDrag       float32

	SlideMultiplier float32
	SlideDrag       float32

	GroundDrag float32
	// Height is the character height used for the grounded ray.
	Height float32
	// GroundMask selects the layers that count as ground.
	GroundMask physics.LayerMask

	Keys input.Bindings
}

// GroundCheckDistance returns the length of the grounded ray.
func (o Opts) GroundCheckDistance() float32 {
	return o.Height*0.5 + game.GroundCheckMargin
}

// Validate reports every misconfigured field. Misconfiguration does not crash a controller but makes
// it degenerate, for example a zero ground mask means the character is never grounded.
func (o Opts) Validate() error {
	var errs []error
	positive := func(name string, v float32) {
		if v <= 0 {
			errs = append(errs, oerror.New("%s must be greater than zero (got %v)", name, v))
		}
	}
	nonNegative := func(name string, v float32) {
		if v < 0 {
			errs = append(errs, oerror.New("%s must not be negative (got %v)", name, v))
		}
	}

	positive("movement speed", o.MovementSpeed)
	nonNegative("jump force", o.JumpForce)
	positive("jump cooldown", o.JumpCooldown)
	nonNegative("air multiplier", o.AirMultiplier)
	nonNegative("air drag", o.AirDrag)
	nonNegative("slide multiplier", o.SlideMultiplier)
	nonNegative("slide drag", o.SlideDrag)
	nonNegative("ground drag", o.GroundDrag)
	positive("height", o.Height)

	if o.GroundMask == 0 {
		errs = append(errs, oerror.New("ground layer mask is empty"))
	}

	seen := make(map[input.Key]string, 3)
	for i, k := range o.Keys.Keys() {
		name := bindingNames[i]
		if k == "" {
			errs = append(errs, oerror.New("%s key is not bound", name))
			continue
		}
		if other, ok := seen[k]; ok {
			errs = append(errs, oerror.New("%s and %s keys are both bound to %q", other, name, k))
			continue
		}
		seen[k] = name
	}
	return errors.Join(errs...)
}
