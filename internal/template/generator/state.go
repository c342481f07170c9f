package generator

import "github.com/tacogips/scaffold/internal/debug"

// State is the generation lifecycle state.
type State int

const (
	// StateNotStarted is the initial state.
	StateNotStarted State = iota
	// StateWalking enumerates the template tree and renders destination paths.
	StateWalking
	// StateRendering renders the content of one entry.
	StateRendering
	// StateWriting writes one entry to the destination.
	StateWriting
	// StateDone means every entry was handled without failures.
	StateDone
	// StatePartiallyFailed means the walk completed but some entries failed.
	StatePartiallyFailed
	// StateAborted means a fatal error stopped generation.
	StateAborted
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "NotStarted"
	case StateWalking:
		return "Walking"
	case StateRendering:
		return "Rendering"
	case StateWriting:
		return "Writing"
	case StateDone:
		return "Done"
	case StatePartiallyFailed:
		return "PartiallyFailed"
	case StateAborted:
		return "Aborted"
	default:
		return "Unknown"
	}
}

var transitions = map[State][]State{
	StateNotStarted: {StateWalking, StateAborted},
	StateWalking:    {StateRendering, StateWriting, StateDone, StateAborted},
	StateRendering:  {StateWriting, StateRendering, StateDone, StateAborted},
	StateWriting:    {StateRendering, StateWriting, StateDone, StateAborted},
	StateDone:       {StatePartiallyFailed},
}

// machine tracks the current state of one generation run.
type machine struct {
	state State
}

// to moves to next. Disallowed transitions are ignored and logged.
func (m *machine) to(next State) {
	for _, allowed := range transitions[m.state] {
		if allowed == next {
			if next != m.state {
				debug.Debug("[generator] State %s -> %s", m.state, next)
			}
			m.state = next
			return
		}
	}
	debug.Debug("[generator] Ignoring invalid state transition %s -> %s", m.state, next)
}
