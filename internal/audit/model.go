package audit

import (
	"context"
	"strings"
)

const (
	StatusProcessed = "PROCESSED"
	StatusFailed    = "FAILED"
)

const (
	EventCreated = "created"
	EventRemoved = "removed"
)

// StorageEvent is one inbound object-storage notification, reduced to the
// fields the pipeline acts on. EventTime is carried through to the persisted
// record unmodified.
type StorageEvent struct {
	Kind      string
	Bucket    string
	Key       string
	EventTime string
}

// ClassifyEventName maps a raw notification event name ("ObjectCreated:Put",
// "ObjectRemoved:Delete", ...) onto the two kinds the pipeline distinguishes.
func ClassifyEventName(name string) string {
	if strings.Contains(name, "ObjectRemoved") {
		return EventRemoved
	}
	return EventCreated
}

// Result is the sanitized output of the inference service. Any field may be
// absent from the raw response; absent fields stay nil and are persisted as
// null rather than failing the pipeline.
type Result struct {
	Category  *string `json:"category"`
	Violation *bool   `json:"violation"`
	Summary   *string `json:"summary"`
}

// Record is the terminal audit record for one object key. The object key
// doubles as the record identifier, so a re-upload under the same key
// overwrites the prior audit.
type Record struct {
	UserID      string  `dynamodbav:"userId" json:"userId"`
	AuditID     string  `dynamodbav:"auditId,omitempty" json:"auditId,omitempty"`
	FinalAmount string  `dynamodbav:"finalAmount,omitempty" json:"finalAmount,omitempty"`
	Category    *string `dynamodbav:"category,omitempty" json:"category,omitempty"`
	Violation   *bool   `dynamodbav:"violation,omitempty" json:"violation,omitempty"`
	Summary     *string `dynamodbav:"summary,omitempty" json:"summary,omitempty"`
	Status      string  `dynamodbav:"status" json:"status"`
	Timestamp   string  `dynamodbav:"timestamp,omitempty" json:"timestamp,omitempty"`
	Error       string  `dynamodbav:"error,omitempty" json:"error,omitempty"`
}

// RecordStore persists terminal audit records keyed by object key.
type RecordStore interface {
	// Put unconditionally overwrites any record at rec.UserID.
	Put(ctx context.Context, rec Record) error
	// Delete removes the record at key; deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
