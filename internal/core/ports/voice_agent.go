package ports

import (
	"context"
	"encoding/json"

	"rentalvoice/internal/core/domain/model/kernel"
)

// VoiceEventType identifies the kind of event a voice session emits.
type VoiceEventType string

const (
	// VoiceEventConnected is emitted once the agent has accepted the session.
	VoiceEventConnected VoiceEventType = "connect"

	// VoiceEventDisconnected is emitted when the agent hangs up.
	VoiceEventDisconnected VoiceEventType = "disconnect"

	// VoiceEventMessage carries a conversational message from the agent.
	VoiceEventMessage VoiceEventType = "message"

	// VoiceEventMetadata carries agent-extracted metadata, possibly including
	// a captured order.
	VoiceEventMetadata VoiceEventType = "metadata"
)

// VoiceEvent is a single lifecycle or data event emitted by a live session.
// Payload is the raw agent payload; its shape is not trusted and must go
// through explicit parsing before use.
type VoiceEvent struct {
	Type    VoiceEventType
	Payload json.RawMessage
}

// SessionConfig carries the parameters for establishing a voice session.
type SessionConfig struct {
	// AgentID selects the conversational agent to connect to.
	AgentID string
}

// SessionHandle represents one live session with the voice agent.
//
// Events delivers lifecycle and data events in arrival order on a single
// channel. The channel is closed when the session ends, whether by EndSession
// or by the agent; no events are delivered after closure.
type SessionHandle interface {
	// ID identifies this session handle.
	ID() kernel.UUID

	// Events returns the channel session events are delivered on.
	// The same channel is returned on every call.
	Events() <-chan VoiceEvent

	// EndSession terminates the session and closes the event channel.
	// Safe to call more than once; termination is best effort.
	EndSession() error
}

// VoiceAgentClient is the contract for the external conversational voice agent.
// The agent itself (speech recognition, dialogue policy) is an opaque external
// collaborator; this subsystem only consumes its session lifecycle.
type VoiceAgentClient interface {
	// StartSession requests a new session from the agent.
	// The returned handle's event channel delivers a connect event once the
	// agent confirms the connection.
	StartSession(ctx context.Context, cfg SessionConfig) (SessionHandle, error)
}
