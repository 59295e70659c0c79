package input

// Script plays back a fixed sequence of frames. Advance moves to the next frame; once the script is
// exhausted it keeps reporting an empty frame.
type Script struct {
	frames []Frame
	idx    int
}

// NewScript ...
func NewScript(frames ...Frame) *Script {
	return &Script{frames: frames, idx: -1}
}

// Repeat returns n copies of f, useful for building scripts.
func Repeat(f Frame, n int) []Frame {
	frames := make([]Frame, n)
	for i := range frames {
		frames[i] = f
	}
	return frames
}

// Advance moves to the next frame. It returns false once every frame has been played.
func (s *Script) Advance() bool {
	if s.idx < len(s.frames) {
		s.idx++
	}
	return s.idx < len(s.frames)
}

// Done returns true once every frame has been played.
func (s *Script) Done() bool {
	return s.idx >= len(s.frames)
}

// Len returns the number of frames in the script.
func (s *Script) Len() int {
	return len(s.frames)
}

// Current returns the frame currently played, or an empty frame before the first Advance and after
// the last frame.
func (s *Script) Current() Frame {
	if s.idx < 0 || s.idx >= len(s.frames) {
		return Frame{}
	}
	return s.frames[s.idx]
}

// Axis ...
func (s *Script) Axis(a Axis) float32 {
	return s.Current().Axis(a)
}

// KeyDown ...
func (s *Script) KeyDown(k Key) bool {
	return s.Current().KeyDown(k)
}

// KeyHeld ...
func (s *Script) KeyHeld(k Key) bool {
	return s.Current().KeyHeld(k)
}

// NextFrame implements Frames.
func (s *Script) NextFrame() {
	s.Advance()
}
