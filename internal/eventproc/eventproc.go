package eventproc

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-lambda-go/events"

	"audit-backend/internal/audit"
	"audit-backend/internal/shared/telemetry"
)

// ErrNoRecords indicates a notification payload carrying no records.
var ErrNoRecords = errors.New("no records in storage event")

// FromRecord converts one inbound notification record into a storage event.
// The object key is used exactly as delivered.
func FromRecord(rec events.S3EventRecord) audit.StorageEvent {
	return audit.StorageEvent{
		Kind:      audit.ClassifyEventName(rec.EventName),
		Bucket:    rec.S3.Bucket.Name,
		Key:       rec.S3.Object.Key,
		EventTime: rec.EventTime.UTC().Format(time.RFC3339),
	}
}

// First returns the storage event for the first record in the notification.
// The pipeline is delivered one record per invocation; extras are ignored
// with a warning.
func First(event events.S3Event) (audit.StorageEvent, error) {
	if len(event.Records) == 0 {
		return audit.StorageEvent{}, ErrNoRecords
	}
	if len(event.Records) > 1 {
		telemetry.Warn("ignoring extra records in storage event", map[string]any{
			"records": len(event.Records),
		})
	}
	return FromRecord(event.Records[0]), nil
}

// Parse decodes a raw S3 notification body and returns its first record as a
// storage event.
func Parse(body []byte) (audit.StorageEvent, error) {
	var event events.S3Event
	if err := json.Unmarshal(body, &event); err != nil {
		return audit.StorageEvent{}, fmt.Errorf("decode storage event: %w", err)
	}
	return First(event)
}
