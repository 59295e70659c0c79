package locomotion

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

const (
	DebugModeStates = iota
	DebugModeInput
	DebugModeJump
	DebugModeForces
	DebugModeCount
)

var debugModeNames = [DebugModeCount]string{
	DebugModeStates: "states",
	DebugModeInput:  "input",
	DebugModeJump:   "jump",
	DebugModeForces: "forces",
}

// ParseDebugMode returns the debug mode with the name passed, as used in settings files.
func ParseDebugMode(name string) (int, bool) {
	for mode, n := range debugModeNames {
		if n == name {
			return mode, true
		}
	}
	return 0, false
}

// Debugger writes debug messages for the modes that are enabled.
type Debugger struct {
	mu    sync.RWMutex
	modes [DebugModeCount]bool

	log *logrus.Logger
}

// NewDebugger returns a debugger with every mode disabled.
func NewDebugger(log *logrus.Logger) *Debugger {
	return &Debugger{log: log}
}

// Toggle enables or disables a debug mode.
func (d *Debugger) Toggle(mode int, enabled bool) {
	if mode < 0 || mode >= DebugModeCount {
		panic(fmt.Errorf("unknown debug mode %v", mode))
	}
	d.mu.Lock()
	d.modes[mode] = enabled
	d.mu.Unlock()
}

// Enabled returns true if the debug mode is enabled.
func (d *Debugger) Enabled(mode int) bool {
	if mode < 0 || mode >= DebugModeCount {
		return false
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.modes[mode]
}

// Notify logs the message if cond is true and the mode is enabled.
func (d *Debugger) Notify(mode int, cond bool, format string, args ...any) {
	if !cond || !d.Enabled(mode) {
		return
	}
	d.log.WithField("mode", debugModeNames[mode]).Debugf(format, args...)
}
