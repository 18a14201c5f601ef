package commands

import (
	"errors"

	"rentalvoice/internal/pkg/guard"
)

var (
	ErrIngestOrderCommandIsNotConstructed = errors.New(
		"IngestOrderCommand must be created via NewIngestOrderCommand constructor",
	)
	ErrPayloadIsRequired = errors.New("metadata payload is required")
)

// IngestOrderCommand represents a request to convert a raw metadata payload
// from the voice session into a persisted order. The payload shape is not
// trusted; the handler performs explicit parsing and drops payloads that do
// not contain an order object.
//
// Example:
//
//	cmd, err := NewIngestOrderCommand(event.Payload)
//	if err != nil {
//	    return err
//	}
//	if err := ingestHandler.Handle(ctx, cmd); err != nil {
//	    log.Printf("ingestion failed: %v", err)
//	}
type IngestOrderCommand struct {
	payload []byte

	guard guard.ConstructorGuard
}

// NewIngestOrderCommand creates a command carrying the raw metadata payload.
// Returns an error when the payload is empty.
func NewIngestOrderCommand(payload []byte) (IngestOrderCommand, error) {
	if len(payload) == 0 {
		return IngestOrderCommand{}, ErrPayloadIsRequired
	}

	return IngestOrderCommand{
		payload: payload,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrIngestOrderCommandIsNotConstructed if validation fails.
func (c IngestOrderCommand) Validate() error {
	return c.guard.Validate(ErrIngestOrderCommandIsNotConstructed)
}

// Payload returns the raw metadata payload.
func (c IngestOrderCommand) Payload() []byte {
	return c.payload
}
