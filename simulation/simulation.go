package simulation

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/input"
	"github.com/oomph-ac/locomotion/internal"
	"github.com/oomph-ac/locomotion/locomotion"
	"github.com/oomph-ac/locomotion/oerror"
	"github.com/oomph-ac/locomotion/physics"
	"github.com/oomph-ac/locomotion/worker"
	"github.com/sirupsen/logrus"
)

// maxFrameTime caps the frame time Run feeds into Advance after a stall.
const maxFrameTime = float32(0.25)

// frameTimeSamples is the number of Advance durations kept for Stats.
const frameTimeSamples = 256

// Config configures the loop.
type Config struct {
	// FixedTimestep is the physics step in seconds.
	FixedTimestep float32
	// MaxStepsPerFrame caps the physics steps run by a single Advance. Remaining time is dropped.
	MaxStepsPerFrame int
	// FrameRate is the rate at which Run calls Advance.
	FrameRate int
}

// Spawn describes a character to add to the simulation.
type Spawn struct {
	ID          string
	Opts        locomotion.Opts
	Position    mgl32.Vec3
	Width       float32
	Mass        float32
	Input       input.Frames
	Orientation locomotion.Orientation
}

// Simulation owns a physics world and every character moving in it. It calls Update on every
// character once per frame and PhysicsUpdate at a fixed rate, never both at once.
type Simulation struct {
	cfg   Config
	world *physics.World
	pool  *worker.Pool
	log   *logrus.Logger

	mu         sync.Mutex
	characters []*Character

	accumulator float32
	frames      uint64
	steps       uint64
	frameTimes  *internal.Ring[float64]
}

// New returns a simulation stepping world. The pool is used to update characters in parallel within
// a phase.
func New(cfg Config, world *physics.World, pool *worker.Pool, log *logrus.Logger) (*Simulation, error) {
	if cfg.FixedTimestep <= 0 {
		return nil, oerror.New("fixed timestep must be greater than zero (got %v)", cfg.FixedTimestep)
	}
	if cfg.MaxStepsPerFrame <= 0 {
		cfg.MaxStepsPerFrame = 1
	}
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = 60
	}
	return &Simulation{
		cfg:   cfg,
		world: world,
		pool:  pool,
		log:   log,

		frameTimes: internal.NewRing[float64](frameTimeSamples),
	}, nil
}

// World returns the physics world of the simulation.
func (s *Simulation) World() *physics.World {
	return s.world
}

// Spawn creates a body and controller for sp and adds them to the simulation.
func (s *Simulation) Spawn(sp Spawn) (*Character, error) {
	body := physics.NewBody(sp.Position, sp.Width, sp.Opts.Height, sp.Mass)
	ctl, err := locomotion.New(sp.Opts, locomotion.Components{
		Body:        body,
		Ground:      s.world,
		Input:       sp.Input,
		Orientation: sp.Orientation,
	}, s.log)
	if err != nil {
		return nil, oerror.New("unable to spawn %q: %v", sp.ID, err)
	}

	c := &Character{
		id:         sp.ID,
		controller: ctl,
		body:       body,
		feed:       sp.Input,
		log:        s.log.WithField("character", sp.ID),
	}
	ctl.Handle(c)
	s.world.AddBody(body)

	s.mu.Lock()
	s.characters = append(s.characters, c)
	s.mu.Unlock()
	return c, nil
}

// Characters returns every spawned character.
func (s *Simulation) Characters() []*Character {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*Character(nil), s.characters...)
}

// Advance runs one frame of dt seconds: every character reads its next input frame and updates, then
// physics runs as many fixed steps as the accumulated time allows.
func (s *Simulation) Advance(dt float32) error {
	start := time.Now()
	chars := s.active()

	for _, c := range chars {
		c.feed.NextFrame()
		if c.recorder != nil {
			if err := c.recorder.Record(input.Capture(c.feed, c.controller.Bindings(), dt)); err != nil {
				return oerror.New("unable to record frame for %q: %v", c.id, err)
			}
		}
	}
	if err := s.phase(chars, func(c *Character) { c.controller.Update(dt) }); err != nil {
		return err
	}

	s.accumulator += dt
	steps := 0
	for s.accumulator >= s.cfg.FixedTimestep && steps < s.cfg.MaxStepsPerFrame {
		fixed := s.cfg.FixedTimestep
		if err := s.phase(chars, func(c *Character) { c.controller.PhysicsUpdate(fixed) }); err != nil {
			return err
		}
		s.world.Step(fixed)
		s.accumulator -= fixed
		s.steps++
		steps++
	}
	if s.accumulator >= s.cfg.FixedTimestep {
		s.log.Warnf("simulation is behind: dropping %.3fs after %d physics steps", s.accumulator, steps)
		s.accumulator = 0
	}

	s.frames++
	s.frameTimes.Push(float64(time.Since(start).Microseconds()) / 1000)
	return nil
}

// Run calls Advance at the configured frame rate with the real time elapsed between frames until ctx
// is cancelled or Advance fails.
func (s *Simulation) Run(ctx context.Context) error {
	t := time.NewTicker(time.Second / time.Duration(s.cfg.FrameRate))
	defer t.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-t.C:
			dt := game.ClampFloat(float32(now.Sub(last).Seconds()), 0, maxFrameTime)
			last = now
			if err := s.Advance(dt); err != nil {
				return err
			}
		}
	}
}

// Stats is a summary of the work done by the simulation.
type Stats struct {
	Frames       uint64
	PhysicsSteps uint64
	Characters   int

	MeanFrameMs   float64
	StdDevFrameMs float64
	MaxFrameMs    float64
}

func (st Stats) String() string {
	return fmt.Sprintf("frames=%d steps=%d characters=%d frame(mean=%.3fms sd=%.3fms max=%.3fms)",
		st.Frames, st.PhysicsSteps, st.Characters, st.MeanFrameMs, st.StdDevFrameMs, st.MaxFrameMs)
}

// Stats returns a summary of the frames run so far.
func (s *Simulation) Stats() Stats {
	s.mu.Lock()
	n := len(s.characters)
	s.mu.Unlock()

	samples := s.frameTimes.Slice()
	return Stats{
		Frames:        s.frames,
		PhysicsSteps:  s.steps,
		Characters:    n,
		MeanFrameMs:   game.Mean(samples),
		StdDevFrameMs: game.StandardDeviation(samples),
		MaxFrameMs:    game.Max(samples),
	}
}

func (s *Simulation) active() []*Character {
	s.mu.Lock()
	defer s.mu.Unlock()

	chars := make([]*Character, 0, len(s.characters))
	for _, c := range s.characters {
		if !c.Faulted() {
			chars = append(chars, c)
		}
	}
	return chars
}

// phase runs f for every character on the worker pool and waits for all of them.
func (s *Simulation) phase(chars []*Character, f func(c *Character)) error {
	tasks := make([]func(), len(chars))
	for i, c := range chars {
		tasks[i] = func() {
			defer s.recoverCharacter(c)
			f(c)
		}
	}
	return s.pool.Do(tasks...)
}

// recoverCharacter marks a character whose update panicked as faulted and reports the panic.
func (s *Simulation) recoverCharacter(c *Character) {
	r := recover()
	if r == nil {
		return
	}
	c.faulted.Store(true)
	err := oerror.New("character %q panicked: %v", c.id, r)
	c.log.Errorf("%v (snapshot=%s)", err, game.KeyValsString(c.controller.Snapshot()))

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("character", c.id)
		scope.SetTag("state", c.controller.State().String())
	})
	hub.Recover(err)
	hub.Flush(time.Second * 5)
}
