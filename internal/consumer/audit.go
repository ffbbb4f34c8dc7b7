package consumer

import (
	"context"
	"fmt"
	"log"

	"example.com/signups/internal/events"
)

// AuditHandler writes a line to the audit log for every roster change.
type AuditHandler struct {
	logger *log.Logger
}

// NewAuditHandler constructs an AuditHandler.
func NewAuditHandler(logger *log.Logger) *AuditHandler {
	if logger == nil {
		logger = log.New(log.Writer(), "[audit] ", log.LstdFlags)
	}
	return &AuditHandler{logger: logger}
}

// Handle implements Handler.
func (h *AuditHandler) Handle(ctx context.Context, msg Message) error {
	var verb string
	switch msg.EventType {
	case events.TypeSignup:
		verb = "signed up for"
	case events.TypeWithdrawal:
		verb = "withdrew from"
	default:
		return fmt.Errorf("unknown event type %q", msg.EventType)
	}

	h.logger.Printf("%s %s %q (roster=%d, event=%s, at=%s)",
		msg.Change.Email, verb, msg.Change.Activity, msg.Change.RosterSize,
		msg.Change.EventID, msg.Change.OccurredAt.Format("2006-01-02T15:04:05Z07:00"))
	return nil
}
