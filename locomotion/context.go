package locomotion

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/input"
	"github.com/oomph-ac/locomotion/physics"
)

// frameContext carries the values shared by the steps of a single Update call.
type frameContext struct {
	c  *Controller
	dt float32

	grounded        bool
	groundedChecked bool
}

// isGrounded ray casts once per frame. Nothing moves the body during Update, so the result holds for
// the whole frame.
func (ctx *frameContext) isGrounded() bool {
	if !ctx.groundedChecked {
		ctx.grounded = ctx.c.Grounded()
		ctx.groundedChecked = true
	}
	return ctx.grounded
}

func (ctx *frameContext) tickCooldown() {
	c := ctx.c
	if c.cooldown.Tick(ctx.dt) {
		c.canJump = true
		c.Dbg.Notify(DebugModeJump, true, "jump ready again (frame=%d)", c.frame)
	}
}

// sampleInput reads the axes and runs the slide, move and jump branches. Only one branch runs per
// frame: a slide or move key press on the same frame as a held jump key swallows the jump.
func (ctx *frameContext) sampleInput() {
	c := ctx.c
	src, keys := c.comps.Input, c.opts.Keys

	c.horizontal = src.Axis(input.AxisHorizontal)
	c.vertical = src.Axis(input.AxisVertical)

	if src.KeyDown(keys.Slide) {
		c.setSliding(true)
		c.Dbg.Notify(DebugModeInput, true, "player sliding")
	} else if src.KeyDown(keys.Move) {
		c.setSliding(false)
		c.Dbg.Notify(DebugModeInput, true, "player moving")
	} else if src.KeyHeld(keys.Jump) && c.canJump && ctx.isGrounded() {
		c.canJump = false
		ctx.jump()
		c.cooldown.Start(c.opts.JumpCooldown)
	}
}

func (ctx *frameContext) jump() {
	c := ctx.c
	body := c.comps.Body

	vel := body.Velocity()
	vel[1] = 0
	body.SetVelocity(vel)

	impulse := game.Up.Mul(c.opts.JumpForce)
	body.AddForce(impulse, physics.ForceModeImpulse)
	c.Dbg.Notify(DebugModeJump, true, "applied jump impulse %v (vel=%v)", impulse, body.Velocity())
	c.handler().HandleJump(c, impulse)
}

func (ctx *frameContext) applyState() {
	c := ctx.c
	c.direction = c.movementDirection()

	from := c.state.Current()
	to := ResolveState(ctx.isGrounded(), game.IsZeroVec3(c.direction), c.sliding, from)
	if to == from {
		return
	}
	c.state.Set(to)
	c.Dbg.Notify(DebugModeStates, true, "state %v -> %v (frame=%d)", from, to, c.frame)
	c.handler().HandleStateChange(c, from, to)
}

func (ctx *frameContext) applyDrag() {
	body := ctx.c.comps.Body
	current := body.LinearDamping()
	if drag := DragFor(ctx.c.state.Current(), ctx.c.opts, current); drag != current {
		body.SetLinearDamping(drag)
	}
}

func (ctx *frameContext) limitSpeed() {
	c := ctx.c
	body := c.comps.Body
	if limited, changed := game.ClampHorizontal(body.Velocity(), c.opts.MovementSpeed); changed {
		c.Dbg.Notify(DebugModeForces, true, "limited velocity %v -> %v", body.Velocity(), limited)
		body.SetVelocity(limited)
	}
}

func (ctx *frameContext) movementForce() mgl32.Vec3 {
	c := ctx.c
	return c.direction.Mul(c.opts.MovementSpeed * ForceMultiplier(c.state.Current(), c.opts))
}
