package input

// Key names a key or button. Keys are compared by name, for example "W", "Space" or "LeftControl".
type Key string

// Axis names an analog movement axis.
type Axis uint8

const (
	// AxisHorizontal is the strafe axis. Positive values move right.
	AxisHorizontal Axis = iota
	// AxisVertical is the forward axis. Positive values move forward.
	AxisVertical
)

func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "Horizontal"
	case AxisVertical:
		return "Vertical"
	default:
		return "Unknown"
	}
}

// Source is polled once per frame by a controller.
type Source interface {
	// Axis returns the value of the axis in the range [-1, 1].
	Axis(a Axis) float32
	// KeyDown returns true only on the frame the key went down.
	KeyDown(k Key) bool
	// KeyHeld returns true for every frame the key is down.
	KeyHeld(k Key) bool
}

// Bindings are the three keys a movement controller reads.
type Bindings struct {
	Move  Key
	Jump  Key
	Slide Key
}

// DefaultBindings returns W for move, Space for jump and LeftControl for slide.
func DefaultBindings() Bindings {
	return Bindings{
		Move:  "W",
		Jump:  "Space",
		Slide: "LeftControl",
	}
}

// Keys returns the bindings as a slice in move, jump, slide order.
func (b Bindings) Keys() []Key {
	return []Key{b.Move, b.Jump, b.Slide}
}

// clampAxis clamps an axis value into [-1, 1].
func clampAxis(v float32) float32 {
	if v < -1 {
		return -1
	} else if v > 1 {
		return 1
	}
	return v
}

// Frames is a Source that has to be moved to the next frame before each Update reads it.
type Frames interface {
	Source
	// NextFrame publishes the input for the coming frame.
	NextFrame()
}
