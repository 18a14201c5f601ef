// Package voice drives the inbound side of the voice-agent integration: it
// owns the single live session, walks the session state machine, and feeds
// agent-extracted metadata into order ingestion.
package voice

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"rentalvoice/internal/core/application/usecases/commands"
	"rentalvoice/internal/core/domain/model/session"
	"rentalvoice/internal/core/ports"
)

var (
	// ErrSessionActive is returned by Start while a session is connecting or
	// connected. At most one session exists at any time.
	ErrSessionActive = errors.New("a voice session is already active")
)

// IngestHandler consumes metadata payloads captured during a session.
type IngestHandler interface {
	Handle(ctx context.Context, cmd commands.IngestOrderCommand) error
}

// Manager owns the lifecycle of the voice-agent session. It holds at most one
// live handle, guarded by a mutex since HTTP handlers race against the event
// pump goroutine.
//
// Example:
//
//	manager := NewManager(client, agentID, ingestHandler, logger)
//
//	if err := manager.Start(ctx); err != nil {
//	    // connection refused or a session is already active
//	}
//	defer manager.End()
type Manager struct {
	client  ports.VoiceAgentClient
	agentID string
	ingest  IngestHandler
	logger  *slog.Logger

	mu     sync.Mutex
	state  session.State
	handle ports.SessionHandle
}

// NewManager creates a session manager in the idle state.
func NewManager(
	client ports.VoiceAgentClient,
	agentID string,
	ingest IngestHandler,
	logger *slog.Logger,
) *Manager {
	return &Manager{
		client:  client,
		agentID: agentID,
		ingest:  ingest,
		logger:  logger.With("component", "voice_session_manager"),
	}
}

// State returns the current session state.
func (m *Manager) State() session.State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Start requests a new session from the voice agent. Allowed from idle and
// error only; a second Start while a session is live returns ErrSessionActive
// and opens nothing. On agent failure the manager lands in the error state and
// the error is returned; a later Start retries from there.
//
// A successful Start leaves the manager connecting. The transition to
// connected happens when the agent's connect event arrives on the session's
// event channel.
func (m *Manager) Start(ctx context.Context) error {
	m.mu.Lock()
	next, err := m.state.Start()
	if err != nil {
		m.mu.Unlock()
		return ErrSessionActive
	}
	m.state = next
	m.mu.Unlock()

	handle, err := m.client.StartSession(ctx, ports.SessionConfig{AgentID: m.agentID})
	if err != nil {
		m.logger.ErrorContext(ctx, "Voice session could not be established", "error", err)

		m.mu.Lock()
		m.state, _ = m.state.Fail()
		m.mu.Unlock()
		return err
	}

	m.mu.Lock()
	m.handle = handle
	m.mu.Unlock()

	m.logger.InfoContext(ctx, "Voice session requested", "session_id", handle.ID().String())
	go m.pump(handle)
	return nil
}

// End terminates the live session. Termination is best effort: the agent-side
// teardown error is logged, never returned, and the manager always lands on
// idle. Calling End with no live session is a no-op.
func (m *Manager) End() {
	m.mu.Lock()
	handle := m.handle
	if handle == nil {
		m.mu.Unlock()
		return
	}
	m.handle = nil
	m.state, _ = m.state.End()
	m.mu.Unlock()

	if err := handle.EndSession(); err != nil {
		m.logger.Error("Voice session teardown failed",
			"session_id", handle.ID().String(), "error", err)
	}
	m.logger.Info("Voice session ended", "session_id", handle.ID().String())
}

// pump consumes the session's event channel until it closes. It is the only
// goroutine reading the channel, so events apply in arrival order.
func (m *Manager) pump(handle ports.SessionHandle) {
	for event := range handle.Events() {
		switch event.Type {
		case ports.VoiceEventConnected:
			m.transition(handle, session.State.Established)
			m.logger.Info("Voice session connected", "session_id", handle.ID().String())

		case ports.VoiceEventDisconnected:
			m.transition(handle, session.State.Disconnect)
			m.logger.Info("Voice agent disconnected", "session_id", handle.ID().String())

		case ports.VoiceEventMessage:
			m.logger.Debug("Voice agent message", "session_id", handle.ID().String())

		case ports.VoiceEventMetadata:
			m.handleMetadata(handle, event.Payload)

		default:
			m.logger.Debug("Unrecognized voice event dropped",
				"session_id", handle.ID().String(), "type", string(event.Type))
		}
	}

	// Channel closed without End: an attempt that never connected failed,
	// a connected session that lost its stream is over.
	m.mu.Lock()
	if m.handle == handle {
		m.handle = nil
		switch m.state {
		case session.Connecting:
			m.state, _ = m.state.Fail()
		case session.Connected:
			m.state, _ = m.state.End()
		case session.Idle, session.Failed:
		}
	}
	m.mu.Unlock()
}

// transition applies a state-machine step for events belonging to the live
// handle. Events from a superseded handle are ignored.
func (m *Manager) transition(handle ports.SessionHandle, step func(session.State) (session.State, error)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.handle != handle {
		return
	}

	next, err := step(m.state)
	if err != nil {
		m.logger.Warn("Voice event ignored in current state",
			"session_id", handle.ID().String(), "state", m.state.String(), "error", err)
		return
	}
	m.state = next
}

// handleMetadata forwards a metadata payload to order ingestion. Metadata
// arriving while the session is not connected is dropped.
func (m *Manager) handleMetadata(handle ports.SessionHandle, payload []byte) {
	m.mu.Lock()
	live := m.handle == handle && m.state == session.Connected
	m.mu.Unlock()

	if !live {
		m.logger.Debug("Metadata outside a connected session dropped",
			"session_id", handle.ID().String())
		return
	}

	cmd, err := commands.NewIngestOrderCommand(payload)
	if err != nil {
		m.logger.Debug("Empty metadata payload dropped", "session_id", handle.ID().String())
		return
	}

	if err := m.ingest.Handle(context.Background(), cmd); err != nil {
		m.logger.Error("Order ingestion from metadata failed",
			"session_id", handle.ID().String(), "error", err)
	}
}
