package input

import "slices"

// Frame is a snapshot of every input a controller can read for a single frame. Frames are what a
// Script plays back and what a Recording stores.
type Frame struct {
	// DeltaTime is the frame time in seconds the frame was recorded with.
	DeltaTime  float32 `json:"dt,omitempty" yaml:"dt,omitempty"`
	Horizontal float32 `json:"h,omitempty" yaml:"h,omitempty"`
	Vertical   float32 `json:"v,omitempty" yaml:"v,omitempty"`
	Down       []Key   `json:"down,omitempty" yaml:"down,omitempty"`
	Held       []Key   `json:"held,omitempty" yaml:"held,omitempty"`
}

// Axis ...
func (f Frame) Axis(a Axis) float32 {
	switch a {
	case AxisHorizontal:
		return clampAxis(f.Horizontal)
	case AxisVertical:
		return clampAxis(f.Vertical)
	default:
		return 0
	}
}

// KeyDown ...
func (f Frame) KeyDown(k Key) bool {
	return slices.Contains(f.Down, k)
}

// KeyHeld ...
func (f Frame) KeyHeld(k Key) bool {
	return slices.Contains(f.Held, k)
}

// Capture reads every binding from src into a Frame. Only the bound keys are captured.
func Capture(src Source, bindings Bindings, dt float32) Frame {
	f := Frame{
		DeltaTime:  dt,
		Horizontal: src.Axis(AxisHorizontal),
		Vertical:   src.Axis(AxisVertical),
	}
	for _, k := range bindings.Keys() {
		if src.KeyDown(k) && !slices.Contains(f.Down, k) {
			f.Down = append(f.Down, k)
		}
		if src.KeyHeld(k) && !slices.Contains(f.Held, k) {
			f.Held = append(f.Held, k)
		}
	}
	return f
}
