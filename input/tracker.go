package input

import "sync"

type keyEvent struct {
	key     Key
	pressed bool
}

// Tracker turns raw press and release events into per-frame edge and held state. Events may be fed
// from a different goroutine than the one polling the tracker; EndFrame publishes them.
type Tracker struct {
	mu sync.Mutex

	axes   [2]float32
	events []keyEvent

	held map[Key]struct{}
	down map[Key]struct{}

	frameAxes [2]float32
}

// NewTracker ...
func NewTracker() *Tracker {
	return &Tracker{
		held: make(map[Key]struct{}),
		down: make(map[Key]struct{}),
	}
}

// Press records that k went down.
func (t *Tracker) Press(k Key) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = append(t.events, keyEvent{key: k, pressed: true})
}

// Release records that k went up.
func (t *Tracker) Release(k Key) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = append(t.events, keyEvent{key: k})
}

// SetAxis records the latest reading for an axis.
func (t *Tracker) SetAxis(a Axis, v float32) {
	if a > AxisVertical {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.axes[a] = clampAxis(v)
}

// EndFrame applies every event received since the previous call in order. A key that goes from up
// to down reports KeyDown for exactly one frame, even if it was released again before the frame
// ended. Repeated presses of an already held key are ignored.
func (t *Tracker) EndFrame() {
	t.mu.Lock()
	defer t.mu.Unlock()

	clear(t.down)
	for _, ev := range t.events {
		if !ev.pressed {
			delete(t.held, ev.key)
			continue
		}
		if _, held := t.held[ev.key]; !held {
			t.down[ev.key] = struct{}{}
		}
		t.held[ev.key] = struct{}{}
	}
	t.events = t.events[:0]
	t.frameAxes = t.axes
}

// Axis ...
func (t *Tracker) Axis(a Axis) float32 {
	if a > AxisVertical {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.frameAxes[a]
}

// KeyDown ...
func (t *Tracker) KeyDown(k Key) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.down[k]
	return ok
}

// KeyHeld ...
func (t *Tracker) KeyHeld(k Key) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.held[k]
	return ok
}

// NextFrame implements Frames.
func (t *Tracker) NextFrame() {
	t.EndFrame()
}
