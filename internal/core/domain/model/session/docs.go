// Package session provides the lifecycle state machine for a connection to the
// external conversational voice agent.
//
// A session moves through the states idle -> connecting -> connected -> idle,
// with connecting -> error -> idle on failure. Idle is both the initial state
// and the state at rest; at most one live session exists at a time, which the
// session manager enforces on top of this value object.
package session
