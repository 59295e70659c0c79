package simulation

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/input"
	"github.com/oomph-ac/locomotion/locomotion"
	"github.com/oomph-ac/locomotion/physics"
	"github.com/oomph-ac/locomotion/worker"
	"github.com/sirupsen/logrus"
)

const frameTime = float32(0.02)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newSim(t *testing.T, cfg Config) (*Simulation, physics.LayerMask) {
	t.Helper()
	layers := physics.NewLayers("ground")
	ground, _ := layers.Layer("ground")
	world := physics.NewWorld(layers, game.Gravity)
	world.AddCollider(game.PlaneAABB(0, 500, 1), ground)

	pool := worker.New(2)
	t.Cleanup(pool.Close)

	sim, err := New(cfg, world, pool, quietLogger())
	if err != nil {
		t.Fatalf("unable to create simulation: %v", err)
	}
	return sim, physics.MaskOf(ground)
}

func defaultConfig() Config {
	return Config{FixedTimestep: frameTime, MaxStepsPerFrame: 4, FrameRate: 50}
}

func testOpts(mask physics.LayerMask) locomotion.Opts {
	return locomotion.Opts{
		MovementSpeed:    20,
		JumpForce:        5,
		JumpCooldown:     0.25,
		JumpReadyOnSpawn: true,
		AirMultiplier:    0.4,
		AirDrag:          0,
		SlideMultiplier:  1.5,
		SlideDrag:        0.3,
		GroundDrag:       6,
		Height:           2,
		GroundMask:       mask,
		Keys:             input.DefaultBindings(),
	}
}

func scenario(keys input.Bindings) []input.Frame {
	var frames []input.Frame
	frames = append(frames, input.Repeat(input.Frame{DeltaTime: frameTime}, 10)...)
	frames = append(frames, input.Repeat(input.Frame{DeltaTime: frameTime, Vertical: 1}, 30)...)
	frames = append(frames, input.Frame{DeltaTime: frameTime, Held: []input.Key{keys.Jump}})
	frames = append(frames, input.Repeat(input.Frame{DeltaTime: frameTime}, 150)...)
	return frames
}

func spawn(t *testing.T, sim *Simulation, mask physics.LayerMask, id string, feed input.Frames) *Character {
	t.Helper()
	c, err := sim.Spawn(Spawn{
		ID:          id,
		Opts:        testOpts(mask),
		Position:    mgl32.Vec3{0, 1, 0},
		Width:       1,
		Mass:        1,
		Input:       feed,
		Orientation: locomotion.WorldOrientation(),
	})
	if err != nil {
		t.Fatalf("unable to spawn: %v", err)
	}
	return c
}

func TestScriptedRun(t *testing.T) {
	sim, mask := newSim(t, defaultConfig())
	keys := input.DefaultBindings()
	script := input.NewScript(scenario(keys)...)
	c := spawn(t, sim, mask, "runner", script)

	seen := map[locomotion.State]bool{}
	for i := 0; i < script.Len(); i++ {
		if err := sim.Advance(frameTime); err != nil {
			t.Fatalf("advance failed on frame %d: %v", i, err)
		}
		seen[c.Controller().State()] = true

		if i == 39 {
			if c.Controller().State() != locomotion.StateMove {
				t.Fatalf("expected Move after walking, got %v", c.Controller().State())
			}
			if c.Body().Position().Z() <= 0 {
				t.Fatalf("expected forward progress, got %v", c.Body().Position())
			}
		}
	}

	if !seen[locomotion.StateIdle] || !seen[locomotion.StateMove] || !seen[locomotion.StateJump] {
		t.Fatalf("expected Idle, Move and Jump during the run, saw %v", seen)
	}
	if c.Jumps() != 1 {
		t.Fatalf("expected exactly one jump, got %d", c.Jumps())
	}
	if c.Controller().State() != locomotion.StateIdle {
		t.Fatalf("expected to land idle, got %v", c.Controller().State())
	}
	if !c.Body().OnSurface() {
		t.Fatalf("expected the body to rest on the ground")
	}
	if c.Transitions() != c.Controller().StateController().Transitions() {
		t.Fatalf("handler saw %d transitions, controller recorded %d", c.Transitions(), c.Controller().StateController().Transitions())
	}

	st := sim.Stats()
	if st.Frames != uint64(script.Len()) || st.Characters != 1 {
		t.Fatalf("unexpected stats %v", st)
	}
}

func TestFixedStepAccumulator(t *testing.T) {
	cfg := Config{FixedTimestep: 0.125, MaxStepsPerFrame: 8}
	sim, mask := newSim(t, cfg)
	spawn(t, sim, mask, "idle", input.NewScript())

	_ = sim.Advance(0.3125)
	if got := sim.Stats().PhysicsSteps; got != 2 {
		t.Fatalf("expected 2 steps, got %d", got)
	}
	_ = sim.Advance(0.3125)
	if got := sim.Stats().PhysicsSteps; got != 5 {
		t.Fatalf("expected 5 steps in total, got %d", got)
	}
}

func TestMaxStepsDropsBacklog(t *testing.T) {
	cfg := Config{FixedTimestep: 0.125, MaxStepsPerFrame: 2}
	sim, mask := newSim(t, cfg)
	spawn(t, sim, mask, "idle", input.NewScript())

	_ = sim.Advance(1)
	_ = sim.Advance(0.125)
	if got := sim.Stats().PhysicsSteps; got != 3 {
		t.Fatalf("expected backlog to be dropped (3 steps), got %d", got)
	}
}

type panickingInput struct {
	input.Script
}

func (*panickingInput) Axis(input.Axis) float32 {
	panic("input device lost")
}

func TestFaultedCharacterIsIsolated(t *testing.T) {
	sim, mask := newSim(t, defaultConfig())
	bad := spawn(t, sim, mask, "bad", &panickingInput{})
	good := spawn(t, sim, mask, "good", input.NewScript(input.Repeat(input.Frame{Vertical: 1}, 20)...))

	for i := 0; i < 20; i++ {
		if err := sim.Advance(frameTime); err != nil {
			t.Fatalf("a faulted character must not fail the simulation: %v", err)
		}
	}
	if !bad.Faulted() {
		t.Fatalf("expected the panicking character to be faulted")
	}
	if good.Faulted() || good.Controller().State() != locomotion.StateMove {
		t.Fatalf("healthy character should keep moving, state=%v", good.Controller().State())
	}
	if bad.Controller().Frame() != 1 {
		t.Fatalf("faulted character should not be updated again, frame=%d", bad.Controller().Frame())
	}
}

func TestRecordingReplaysDeterministically(t *testing.T) {
	keys := input.DefaultBindings()
	frames := scenario(keys)
	frames[20].Down = []input.Key{keys.Slide}
	frames[35].Down = []input.Key{keys.Move}

	sim, mask := newSim(t, defaultConfig())
	c := spawn(t, sim, mask, "recorded", input.NewScript(frames...))

	var buf bytes.Buffer
	rec, err := input.NewRecorder(&buf, input.RecordingHeader{Bindings: keys, FixedTimestep: frameTime})
	if err != nil {
		t.Fatalf("unable to create recorder: %v", err)
	}
	c.Record(rec)
	for range frames {
		if err := sim.Advance(frameTime); err != nil {
			t.Fatalf("advance failed: %v", err)
		}
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("unable to close recorder: %v", err)
	}

	recording, err := input.ReadRecording(&buf)
	if err != nil {
		t.Fatalf("unable to read recording: %v", err)
	}
	if len(recording.Frames) != len(frames) {
		t.Fatalf("expected %d recorded frames, got %d", len(frames), len(recording.Frames))
	}

	replaySim, replayMask := newSim(t, defaultConfig())
	replay := spawn(t, replaySim, replayMask, "replay", recording.Script())
	for _, f := range recording.Frames {
		if err := replaySim.Advance(f.DeltaTime); err != nil {
			t.Fatalf("replay advance failed: %v", err)
		}
	}

	if replay.Body().Position() != c.Body().Position() {
		t.Fatalf("replay diverged: %v vs %v", replay.Body().Position(), c.Body().Position())
	}
	if replay.Transitions() != c.Transitions() || replay.Jumps() != c.Jumps() {
		t.Fatalf("replay saw %d transitions/%d jumps, recorded run %d/%d", replay.Transitions(), replay.Jumps(), c.Transitions(), c.Jumps())
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	sim, mask := newSim(t, Config{FixedTimestep: frameTime, MaxStepsPerFrame: 4, FrameRate: 200})
	spawn(t, sim, mask, "idle", input.NewScript())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	if err := sim.Run(ctx); err != nil {
		t.Fatalf("run returned an error: %v", err)
	}
	if sim.Stats().Frames == 0 {
		t.Fatalf("expected at least one frame before cancellation")
	}
}
