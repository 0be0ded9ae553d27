package debugs

import (
	"github.com/reusee/ngl/tapes"
)

const windowRadius = 8

// MachineGlobals describes a machine for Tap. window holds the cells around
// the pointer, starting at window_start.
func MachineGlobals(m *tapes.Machine) map[string]any {
	start := wrap(m.Pointer - windowRadius)
	window := make([]int, 0, windowRadius*2+1)
	for i := range windowRadius*2 + 1 {
		window = append(window, int(m.Tape[wrap(start+i)]))
	}

	return map[string]any{
		"program":      m.Program,
		"state":        m.State(),
		"ip":           m.IP,
		"pointer":      m.Pointer,
		"steps":        m.Steps,
		"budget":       m.Budget,
		"output":       m.Output(),
		"window":       window,
		"window_start": start,
		"cell": func(i int) int {
			return int(m.Tape[wrap(i)])
		},
	}
}

func wrap(i int) int {
	return ((i % tapes.TapeSize) + tapes.TapeSize) % tapes.TapeSize
}
