package locomotion

import (
	"io"
	"sync"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/assert"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/input"
	"github.com/oomph-ac/locomotion/physics"
	"github.com/sirupsen/logrus"
)

// Controller moves a single character. Update must be called once per rendered frame and
// PhysicsUpdate once per fixed physics step, both by the same host loop. A Controller is not safe for
// concurrent use, and Update and PhysicsUpdate must never overlap.
type Controller struct {
	opts  Opts
	comps Components
	log   *logrus.Logger

	Dbg *Debugger

	hMu sync.RWMutex
	h   Handler

	state *StateController

	horizontal, vertical float32
	direction            mgl32.Vec3
	sliding              bool

	canJump  bool
	cooldown Cooldown

	frame, physicsFrame uint64
}

// New returns a controller in the idle state. Invalid opts are returned as an error; missing
// components are programmer errors and panic. The body's damping is set to the ground drag since the
// character spawns idle on the ground. A nil logger discards all output.
func New(opts Opts, comps Components, log *logrus.Logger) (*Controller, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	assert.NotNil(comps.Body, "body")
	assert.NotNil(comps.Ground, "ground probe")
	assert.NotNil(comps.Input, "input source")
	assert.NotNil(comps.Orientation, "orientation")

	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}

	c := &Controller{
		opts:    opts,
		comps:   comps,
		log:     log,
		Dbg:     NewDebugger(log),
		h:       NopHandler{},
		state:   NewStateController(StateIdle),
		canJump: opts.JumpReadyOnSpawn,
	}
	comps.Body.SetLinearDamping(opts.GroundDrag)
	return c, nil
}

// Handle sets the handler notified of state changes, jumps and slide toggles. A nil handler resets
// it to NopHandler.
func (c *Controller) Handle(h Handler) {
	if h == nil {
		h = NopHandler{}
	}
	c.hMu.Lock()
	c.h = h
	c.hMu.Unlock()
}

func (c *Controller) handler() Handler {
	c.hMu.RLock()
	defer c.hMu.RUnlock()
	return c.h
}

// Update runs the per-frame logic: the jump cooldown, input sampling, state resolution, drag and the
// horizontal speed limit, in that order. dt is the frame time in seconds.
func (c *Controller) Update(dt float32) {
	c.frame++

	ctx := newCtx(c, dt)
	defer putCtx(ctx)

	ctx.tickCooldown()
	ctx.sampleInput()
	ctx.applyState()
	ctx.applyDrag()
	ctx.limitSpeed()
}

// PhysicsUpdate applies the continuous movement force for the current state. dt is the fixed step in
// seconds; the force itself is integrated over dt by the physics engine.
func (c *Controller) PhysicsUpdate(dt float32) {
	c.physicsFrame++

	ctx := newCtx(c, dt)
	defer putCtx(ctx)

	c.direction = c.movementDirection()
	force := ctx.movementForce()
	c.comps.Body.AddForce(force, physics.ForceModeForce)
	c.Dbg.Notify(DebugModeForces, !game.IsZeroVec3(force), "applied movement force %v (state=%v dt=%.4f)", force, c.state.Current(), dt)
}

// movementDirection combines the last sampled axes with the orientation basis.
func (c *Controller) movementDirection() mgl32.Vec3 {
	o := c.comps.Orientation
	dir := o.Forward().Mul(c.vertical).Add(o.Right().Mul(c.horizontal))
	return game.SafeNormalize(dir)
}

func (c *Controller) setSliding(sliding bool) {
	if c.sliding == sliding {
		return
	}
	c.sliding = sliding
	c.handler().HandleSlideToggle(c, sliding)
}

// Grounded ray casts down from the body position and returns true if ground is within half the
// character height plus a small margin.
func (c *Controller) Grounded() bool {
	return c.comps.Ground.Raycast(c.comps.Body.Position(), game.Down, c.opts.GroundCheckDistance(), c.opts.GroundMask)
}

// State returns the current locomotion state.
func (c *Controller) State() State {
	return c.state.Current()
}

// StateController returns the state holder of the controller.
func (c *Controller) StateController() *StateController {
	return c.state
}

// Sliding returns the slide flag.
func (c *Controller) Sliding() bool {
	return c.sliding
}

// JumpReady returns true if a jump would be accepted on the next grounded frame.
func (c *Controller) JumpReady() bool {
	return c.canJump
}

// JumpCooldown returns the jump cooldown timer.
func (c *Controller) JumpCooldown() Cooldown {
	return c.cooldown
}

// Direction returns the normalized movement direction computed by the last update.
func (c *Controller) Direction() mgl32.Vec3 {
	return c.direction
}

// Axes returns the last sampled horizontal and vertical axes.
func (c *Controller) Axes() (horizontal, vertical float32) {
	return c.horizontal, c.vertical
}

// Opts returns the options of the controller.
func (c *Controller) Opts() Opts {
	return c.opts
}

// Bindings returns the keys read by the controller.
func (c *Controller) Bindings() input.Bindings {
	return c.opts.Keys
}

// Body returns the rigid body driven by the controller.
func (c *Controller) Body() RigidBody {
	return c.comps.Body
}

// Frame returns the number of Update calls so far.
func (c *Controller) Frame() uint64 {
	return c.frame
}

// Log returns the logger of the controller.
func (c *Controller) Log() *logrus.Logger {
	return c.log
}

// Snapshot returns diagnostic values in a stable order.
func (c *Controller) Snapshot() *orderedmap.OrderedMap[string, any] {
	body := c.comps.Body
	m := orderedmap.NewOrderedMap[string, any]()
	m.Set("frame", c.frame)
	m.Set("physicsFrame", c.physicsFrame)
	m.Set("state", c.state.Current().String())
	m.Set("sliding", c.sliding)
	m.Set("jumpReady", c.canJump)
	m.Set("cooldown", game.Round32(c.cooldown.Remaining(), 3))
	m.Set("pos", game.RoundVec32(body.Position(), 3))
	m.Set("vel", game.RoundVec32(body.Velocity(), 3))
	m.Set("damping", body.LinearDamping())
	return m
}
