package audit

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"audit-backend/internal/docai"
	"audit-backend/internal/llm"
	"audit-backend/internal/shared/metrics"
	"audit-backend/internal/shared/telemetry"
)

// Service runs the document-audit pipeline for one storage event at a time.
// Clients are constructed once at bootstrap and reused across invocations;
// invocations for different keys may run concurrently with no coordination,
// and two invocations racing on the same key resolve by last writer wins.
type Service struct {
	Analyzer docai.Analyzer
	LLM      llm.Client
	Records  RecordStore
}

// HandleEvent routes one storage event to the delete path or the full
// extract, audit, persist chain. Every invocation leaves exactly one terminal
// outcome for the key: a deletion, a PROCESSED record, or a FAILED record.
// The lone exception is ErrUnrecoverable, when the failure-path write itself
// fails.
func (s *Service) HandleEvent(ctx context.Context, ev StorageEvent) error {
	if ev.Kind == EventRemoved {
		telemetry.Info("object removed, deleting record", map[string]any{"key": ev.Key})
		if err := s.Records.Delete(ctx, ev.Key); err != nil {
			return StoreError{Op: "delete", Key: ev.Key, Err: err}
		}
		metrics.IncRecordsDeleted()
		return nil
	}

	metrics.IncAuditStarted()
	start := time.Now()

	if err := s.process(ctx, ev); err != nil {
		metrics.IncAuditFailed()
		telemetry.Error("audit failed", map[string]any{"key": ev.Key, "error": err.Error()})

		failed := Record{UserID: ev.Key, Status: StatusFailed, Error: err.Error()}
		if putErr := s.Records.Put(ctx, failed); putErr != nil {
			// Double failure: the key is left without a terminal record.
			telemetry.Error("failure record write failed", map[string]any{
				"key":         ev.Key,
				"error":       putErr.Error(),
				"stage_error": err.Error(),
			})
			return fmt.Errorf("%w for key %s: %v (stage error: %v)", ErrUnrecoverable, ev.Key, putErr, err)
		}
		return err
	}

	metrics.IncAuditProcessed()
	metrics.ObserveAuditDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	return nil
}

// process runs the stage sequence and writes the PROCESSED record.
func (s *Service) process(ctx context.Context, ev StorageEvent) error {
	telemetry.Info("starting extraction", map[string]any{"bucket": ev.Bucket, "key": ev.Key})
	docs, err := s.Analyzer.AnalyzeExpense(ctx, ev.Bucket, ev.Key)
	if err != nil {
		return err
	}

	extractedText, amount := AggregateFields(docs)
	telemetry.Info("extraction complete", map[string]any{
		"key":          ev.Key,
		"chars":        len(extractedText),
		"final_amount": amount,
	})

	raw, err := s.LLM.Complete(ctx, BuildPrompt(extractedText))
	if err != nil {
		return err
	}

	result, err := ExtractResult(raw)
	if err != nil {
		return err
	}

	rec := Record{
		UserID:      ev.Key,
		AuditID:     uuid.NewString(),
		FinalAmount: amount,
		Category:    result.Category,
		Violation:   result.Violation,
		Summary:     result.Summary,
		Status:      StatusProcessed,
		Timestamp:   ev.EventTime,
	}
	if err := s.Records.Put(ctx, rec); err != nil {
		return StoreError{Op: "put", Key: ev.Key, Err: err}
	}
	telemetry.Info("audit record saved", map[string]any{"key": ev.Key, "audit_id": rec.AuditID})
	return nil
}

// StatusCode maps a pipeline outcome onto the coarse status code returned to
// the invoking runtime.
func StatusCode(err error) int {
	if err != nil {
		return http.StatusInternalServerError
	}
	return http.StatusOK
}
