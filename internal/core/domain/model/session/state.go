package session

import (
	"fmt"

	"rentalvoice/internal/pkg/errs"
)

// State represents the lifecycle state of a voice-agent session.
// It implements a state machine with defined transitions to ensure the
// session manager never opens a second concurrent session.
//
// State transitions:
//
//	Idle ──> Connecting ──> Connected ──> Idle
//	              │                        ▲
//	              └──────> Failed ─────────┘
//	                  (retry via Start)
//
// The zero value is Idle, which is the initial state of every manager.
type State int

const (
	// Idle means no session exists. Initial state and the state at rest.
	Idle State = iota

	// Connecting means a session has been requested from the voice agent
	// but the agent has not yet confirmed the connection.
	Connecting

	// Connected means the agent confirmed the connection and events
	// (messages, metadata) may arrive.
	Connected

	// Failed means the last connection attempt did not succeed.
	// A new Start attempt is allowed from this state.
	Failed
)

// getStateStrings returns a map of State values to their string representations.
func getStateStrings() map[State]string {
	return map[State]string{
		Idle:       "idle",
		Connecting: "connecting",
		Connected:  "connected",
		Failed:     "error",
	}
}

// String returns the wire representation of the state: "idle", "connecting",
// "connected", or "error". Implements fmt.Stringer and is safe on any value.
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// CanStart reports whether a new session may be requested from this state.
// Starting is allowed from Idle and Failed only; Connecting and Connected
// must never spawn a second session.
func (s State) CanStart() bool {
	return s == Idle || s == Failed
}

// Start transitions to Connecting.
//
// Valid transitions:
//   - Idle -> Connecting (first attempt)
//   - Failed -> Connecting (user-initiated retry)
func (s State) Start() (State, error) {
	if !s.CanStart() {
		return s, errs.NewValueIsInvalidErrorWithCause(
			"state",
			fmt.Errorf("cannot start a session while %s", s),
		)
	}
	return Connecting, nil
}

// Established transitions to Connected on the agent's connect event.
//
// Valid transitions:
//   - Connecting -> Connected
func (s State) Established() (State, error) {
	if s != Connecting {
		return s, errs.NewValueIsInvalidErrorWithCause(
			"state",
			fmt.Errorf("connect event while %s", s),
		)
	}
	return Connected, nil
}

// Fail transitions to Failed when establishing the session did not succeed.
//
// Valid transitions:
//   - Connecting -> Failed
func (s State) Fail() (State, error) {
	if s != Connecting {
		return s, errs.NewValueIsInvalidErrorWithCause(
			"state",
			fmt.Errorf("connection failure while %s", s),
		)
	}
	return Failed, nil
}

// Disconnect transitions to Idle on an agent-initiated hangup.
//
// Valid transitions:
//   - Connected -> Idle
func (s State) Disconnect() (State, error) {
	if s != Connected {
		return s, errs.NewValueIsInvalidErrorWithCause(
			"state",
			fmt.Errorf("disconnect event while %s", s),
		)
	}
	return Idle, nil
}

// End transitions to Idle when the user terminates the session.
// Termination is best effort and always lands on Idle.
//
// Valid transitions:
//   - Connected -> Idle
//   - Connecting -> Idle (abandon an in-flight attempt)
func (s State) End() (State, error) {
	if s != Connected && s != Connecting {
		return s, errs.NewValueIsInvalidErrorWithCause(
			"state",
			fmt.Errorf("cannot end a session while %s", s),
		)
	}
	return Idle, nil
}
