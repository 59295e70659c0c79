package locomotion

import "fmt"

// State is the locomotion mode of a character. It decides which drag and force multiplier apply.
type State uint8

const (
	StateIdle State = iota
	StateMove
	StateJump
	StateSlide
	StateSlideIdle
)

var stateNames = [...]string{
	StateIdle:      "Idle",
	StateMove:      "Move",
	StateJump:      "Jump",
	StateSlide:     "Slide",
	StateSlideIdle: "SlideIdle",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// States returns every locomotion state in declaration order.
func States() []State {
	return []State{StateIdle, StateMove, StateJump, StateSlide, StateSlideIdle}
}

// StateController holds the current locomotion state. Only the current value is kept.
type StateController struct {
	current     State
	transitions uint64
}

// NewStateController returns a controller starting in the state passed.
func NewStateController(initial State) *StateController {
	return &StateController{current: initial}
}

// Current returns the current state.
func (sc *StateController) Current() State {
	return sc.current
}

// Set replaces the current state. Setting the state it already holds is a no-op and returns false.
// Any state may follow any other.
func (sc *StateController) Set(s State) bool {
	if s == sc.current {
		return false
	}
	sc.current = s
	sc.transitions++
	return true
}

// Transitions returns how many times Set changed the state.
func (sc *StateController) Transitions() uint64 {
	return sc.transitions
}
