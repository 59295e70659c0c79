package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
)

func newGroundWorld(t *testing.T) (*World, LayerMask) {
	t.Helper()
	layers := NewLayers("ground")
	groundLayer, ok := layers.Layer("ground")
	if !ok {
		t.Fatalf("ground layer was not registered")
	}
	w := NewWorld(layers, game.Gravity)
	w.AddCollider(game.PlaneAABB(0, 100, 1), groundLayer)
	return w, MaskOf(groundLayer)
}

func TestLayers(t *testing.T) {
	layers := NewLayers("ground", "water")
	if got := layers.Names(); len(got) != 3 || got[0] != DefaultLayerName || got[1] != "ground" || got[2] != "water" {
		t.Fatalf("unexpected layer order %v", got)
	}
	again, err := layers.Register("ground")
	if err != nil || again != 1 {
		t.Fatalf("re-registering should return existing index 1, got %v (%v)", again, err)
	}
	mask, err := layers.Mask("ground", "water")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !mask.Has(1) || !mask.Has(2) || mask.Has(0) {
		t.Fatalf("unexpected mask %b", mask)
	}
	if _, err := layers.Mask("lava"); err == nil {
		t.Fatalf("expected error for unknown layer")
	}
}

func TestLayersFull(t *testing.T) {
	layers := NewLayers()
	for i := 1; i < MaxLayers; i++ {
		if _, err := layers.Register(string(rune('a' + i))); err != nil {
			t.Fatalf("unexpected error registering layer %d: %v", i, err)
		}
	}
	if _, err := layers.Register("overflow"); err == nil {
		t.Fatalf("expected error once every layer is used")
	}
}

func TestRaycastLayerFilter(t *testing.T) {
	w, groundMask := newGroundWorld(t)
	origin := mgl32.Vec3{0, 1, 0}

	if !w.Raycast(origin, game.Down, 1.2, groundMask) {
		t.Fatalf("expected hit on ground layer")
	}
	if w.Raycast(origin, game.Down, 1.2, MaskOf(0)) {
		t.Fatalf("expected miss when the ground layer is filtered out")
	}
	if w.Raycast(origin, game.Down, 1.2, 0) {
		t.Fatalf("zero mask must never hit")
	}
	if w.Raycast(origin, game.Down, 0.5, groundMask) {
		t.Fatalf("expected miss for a ray too short to reach the ground")
	}
}

func TestImpulseAndForce(t *testing.T) {
	b := NewBody(mgl32.Vec3{}, 1, 2, 2)
	b.AddForce(mgl32.Vec3{0, 10, 0}, ForceModeImpulse)
	if b.Velocity() != (mgl32.Vec3{0, 5, 0}) {
		t.Fatalf("impulse should change velocity by force/mass, got %v", b.Velocity())
	}

	b.SetVelocity(mgl32.Vec3{})
	b.SetGravity(false)
	b.AddForce(mgl32.Vec3{4, 0, 0}, ForceModeForce)
	if b.Velocity() != (mgl32.Vec3{}) {
		t.Fatalf("continuous force must not change velocity before a step")
	}
	b.integrate(0.5, game.Gravity)
	if !game.Float32ApproxEq(b.Velocity().X(), 1) {
		t.Fatalf("expected vx=1 after half a second of 2m/s², got %v", b.Velocity())
	}
	if b.PendingForce() != (mgl32.Vec3{}) {
		t.Fatalf("pending force should be consumed by a step")
	}
}

func TestDamping(t *testing.T) {
	b := NewBody(mgl32.Vec3{}, 1, 2, 1)
	b.SetGravity(false)
	b.SetVelocity(mgl32.Vec3{10, 0, 0})
	b.SetLinearDamping(5)
	b.integrate(0.1, 0)
	if !game.Float32ApproxEq(b.Velocity().X(), 5) {
		t.Fatalf("expected velocity halved by damping, got %v", b.Velocity())
	}

	b.SetLinearDamping(-3)
	if b.LinearDamping() != 0 {
		t.Fatalf("negative damping should clamp to zero")
	}
}

func TestStepRestsOnGround(t *testing.T) {
	w, _ := newGroundWorld(t)
	b := NewBody(mgl32.Vec3{0, 3, 0}, 1, 2, 1)
	w.AddBody(b)

	for i := 0; i < 200; i++ {
		w.Step(0.02)
	}
	if !b.OnSurface() {
		t.Fatalf("body should have landed")
	}
	if !game.Float32ApproxEq(b.BoundingBox().Min().Y(), 0) {
		t.Fatalf("expected feet at y=0, got %v", b.BoundingBox().Min().Y())
	}
	if b.Velocity().Y() != 0 {
		t.Fatalf("resting body should have no vertical velocity, got %v", b.Velocity())
	}
}
