package commands

import (
	"encoding/json"

	"rentalvoice/internal/core/domain/model/kernel"
)

// orderMetadata mirrors the untrusted metadata payload emitted by the voice
// agent. Only the optional order object is of interest; everything else in the
// payload is ignored.
type orderMetadata struct {
	Order *orderMetadataFields `json:"order"`
}

// orderMetadataFields carries the subset of order fields the agent may have
// captured. Pointers distinguish absent fields from empty strings.
type orderMetadataFields struct {
	Equipment *string `json:"equipment"`
	Duration  *string `json:"duration"`
	Location  *string `json:"location"`
}

// parseOrderMetadata validates the raw payload and extracts the order fields.
// Returns ok=false when the payload is not JSON or carries no order object;
// such events are dropped without error.
func parseOrderMetadata(payload []byte) (orderMetadataFields, bool) {
	var metadata orderMetadata
	if err := json.Unmarshal(payload, &metadata); err != nil {
		return orderMetadataFields{}, false
	}
	if metadata.Order == nil {
		return orderMetadataFields{}, false
	}
	return *metadata.Order, true
}

// fieldFrom converts an optional JSON string into the explicit Field sentinel.
func fieldFrom(s *string) kernel.Field {
	if s == nil {
		return kernel.UnsetField()
	}
	return kernel.NewField(*s)
}

func (f orderMetadataFields) equipment() kernel.Field { return fieldFrom(f.Equipment) }
func (f orderMetadataFields) duration() kernel.Field  { return fieldFrom(f.Duration) }
func (f orderMetadataFields) location() kernel.Field  { return fieldFrom(f.Location) }
