package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"audit-backend/internal/audit"
	"audit-backend/internal/docai"
	"audit-backend/internal/records"
)

type staticAnalyzer struct {
	docs []docai.Document
	err  error
}

func (s staticAnalyzer) AnalyzeExpense(ctx context.Context, bucket, key string) ([]docai.Document, error) {
	_ = ctx
	if s.err != nil {
		return nil, docai.ExtractionError{Bucket: bucket, Key: key, Err: s.err}
	}
	return s.docs, nil
}

type staticLLM struct {
	resp string
}

func (s staticLLM) Complete(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return s.resp, nil
}

const createdBody = `{
	"Records": [{
		"eventName": "ObjectCreated:Put",
		"eventTime": "2026-08-29T10:00:00.000Z",
		"s3": {"bucket": {"name": "receipts"}, "object": {"key": "r1"}}
	}]
}`

func newTestRouter(analyzer docai.Analyzer, repo *records.MemoryRepo, resp string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := &audit.Service{
		Analyzer: analyzer,
		LLM:      staticLLM{resp: resp},
		Records:  repo,
	}
	return NewRouter(RouterDeps{Audit: svc})
}

func TestInvokeAuditSuccess(t *testing.T) {
	repo := records.NewMemoryRepo()
	analyzer := staticAnalyzer{docs: []docai.Document{{
		SummaryFields: []docai.Field{{Label: "TOTAL", Value: "62.50"}},
	}}}
	router := newTestRouter(analyzer, repo, `{"category":"meals","violation":true,"summary":"over limit"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/audit/invoke", strings.NewReader(createdBody))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	rec, ok := repo.Get("r1")
	if !ok || rec.Status != audit.StatusProcessed {
		t.Fatalf("expected PROCESSED record for r1, got %+v (ok=%v)", rec, ok)
	}
}

func TestInvokeAuditStageFailure(t *testing.T) {
	repo := records.NewMemoryRepo()
	analyzer := staticAnalyzer{err: context.DeadlineExceeded}
	router := newTestRouter(analyzer, repo, "{}")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/audit/invoke", strings.NewReader(createdBody))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", w.Code, w.Body.String())
	}
	rec, ok := repo.Get("r1")
	if !ok || rec.Status != audit.StatusFailed || rec.Error == "" {
		t.Fatalf("expected FAILED record with error, got %+v (ok=%v)", rec, ok)
	}
}

func TestInvokeAuditBadBody(t *testing.T) {
	repo := records.NewMemoryRepo()
	router := newTestRouter(staticAnalyzer{}, repo, "{}")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/audit/invoke", strings.NewReader("not json"))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if repo.Len() != 0 {
		t.Fatalf("expected no record writes for a bad body, got %d", repo.Len())
	}
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(staticAnalyzer{}, records.NewMemoryRepo(), "{}")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
