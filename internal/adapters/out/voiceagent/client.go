// Package voiceagent implements the VoiceAgentClient port over the
// conversational agent's HTTP API. A session is created with one POST and its
// events are then streamed from the returned events URL as line-delimited
// JSON.
package voiceagent

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"rentalvoice/internal/core/domain/model/kernel"
	"rentalvoice/internal/core/ports"
)

const sessionsPath = "/v1/convai/sessions"

// Client talks to the voice agent's session API.
//
// Example:
//
//	client := NewClient("https://agent.example.com", 10*time.Second, logger)
//	handle, err := client.StartSession(ctx, ports.SessionConfig{AgentID: "agent-123"})
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a client for the agent API at the given base URL.
// The timeout applies to the session create and delete calls; the event
// stream itself is bounded by its context, not the timeout.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With("component", "voiceagent_client"),
	}
}

type createSessionRequest struct {
	AgentID string `json:"agent_id"`
}

type createSessionResponse struct {
	SessionID string `json:"session_id"`
	EventsURL string `json:"events_url"`
}

type wireEvent struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// StartSession creates a session for the configured agent and begins streaming
// its events. The returned handle's channel delivers events in arrival order
// and closes when the stream ends or EndSession is called.
func (c *Client) StartSession(ctx context.Context, cfg ports.SessionConfig) (ports.SessionHandle, error) {
	body, err := json.Marshal(createSessionRequest{AgentID: cfg.AgentID})
	if err != nil {
		return nil, fmt.Errorf("encode session request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+sessionsPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build session request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("create session: unexpected status %d", resp.StatusCode)
	}

	var created createSessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("decode session response: %w", err)
	}
	if created.SessionID == "" || created.EventsURL == "" {
		return nil, fmt.Errorf("create session: incomplete response")
	}

	// The stream outlives the request that started it; it is bounded by its
	// own context, cancelled from EndSession.
	streamCtx, cancel := context.WithCancel(context.Background())
	handle := &sessionHandle{
		id:        kernel.NewUUID(),
		sessionID: created.SessionID,
		events:    make(chan ports.VoiceEvent),
		cancel:    cancel,
		done:      make(chan struct{}),
		client:    c,
	}

	go handle.stream(streamCtx, created.EventsURL)
	return handle, nil
}

// deleteSession tears the session down on the agent side.
func (c *Client) deleteSession(sessionID string) error {
	req, err := http.NewRequest(http.MethodDelete, c.baseURL+sessionsPath+"/"+sessionID, nil)
	if err != nil {
		return fmt.Errorf("build delete request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("delete session %s: %w", sessionID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("delete session %s: unexpected status %d", sessionID, resp.StatusCode)
	}
	return nil
}

// sessionHandle is one live session. The event channel is closed exactly once,
// by the streaming goroutine, so no events are delivered after closure.
type sessionHandle struct {
	id        kernel.UUID
	sessionID string
	events    chan ports.VoiceEvent
	cancel    context.CancelFunc
	done      chan struct{}
	client    *Client

	endOnce sync.Once
	endErr  error
}

// ID identifies this handle.
func (h *sessionHandle) ID() kernel.UUID {
	return h.id
}

// Events returns the channel session events are delivered on.
func (h *sessionHandle) Events() <-chan ports.VoiceEvent {
	return h.events
}

// EndSession cancels the event stream, waits for it to drain, and deletes the
// session on the agent side. Safe to call more than once; later calls return
// the first call's result.
func (h *sessionHandle) EndSession() error {
	h.endOnce.Do(func() {
		h.cancel()
		<-h.done
		h.endErr = h.client.deleteSession(h.sessionID)
	})
	return h.endErr
}

// stream reads line-delimited JSON events from the agent and forwards them to
// the handle's channel until the stream or the context ends.
func (h *sessionHandle) stream(ctx context.Context, eventsURL string) {
	defer close(h.done)
	defer close(h.events)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, eventsURL, nil)
	if err != nil {
		h.client.logger.Error("Event stream request could not be built",
			"session_id", h.sessionID, "error", err)
		return
	}

	// The event stream stays open for the life of the session, so it must
	// not use the timeout-bound client.
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		if ctx.Err() == nil {
			h.client.logger.Error("Event stream connection failed",
				"session_id", h.sessionID, "error", err)
		}
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		h.client.logger.Error("Event stream rejected",
			"session_id", h.sessionID, "status", resp.StatusCode)
		return
	}

	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var event wireEvent
		if err := json.Unmarshal(line, &event); err != nil {
			h.client.logger.Debug("Malformed event line skipped",
				"session_id", h.sessionID, "error", err)
			continue
		}

		select {
		case h.events <- ports.VoiceEvent{
			Type:    ports.VoiceEventType(event.Type),
			Payload: event.Payload,
		}:
		case <-ctx.Done():
			return
		}
	}

	if err := scanner.Err(); err != nil && ctx.Err() == nil {
		h.client.logger.Error("Event stream read failed",
			"session_id", h.sessionID, "error", err)
	}
}
