package main

// Build the Lambda handler binary:
//   GOOS=linux GOARCH=amd64 CGO_ENABLED=0 go build -o bootstrap ./cmd/lambda-auditor

import (
	"context"
	"log"
	"net/http"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"audit-backend/internal/audit"
	"audit-backend/internal/bootstrap"
	"audit-backend/internal/eventproc"
	"audit-backend/internal/shared/config"
)

var (
	initOnce sync.Once
	initErr  error
	app      *bootstrap.App
)

func initApp() {
	cfg := config.Load()
	built, err := bootstrap.Build(cfg)
	if err != nil {
		initErr = err
		return
	}
	app = built
}

// response mirrors the coarse status contract with the invoking runtime.
type response struct {
	StatusCode int `json:"statusCode"`
}

func handler(ctx context.Context, event events.S3Event) (response, error) {
	initOnce.Do(initApp)
	if initErr != nil {
		log.Printf("bootstrap error: %v", initErr)
		return response{StatusCode: http.StatusInternalServerError}, initErr
	}

	ev, err := eventproc.First(event)
	if err != nil {
		log.Printf("event parse error: %v", err)
		return response{StatusCode: http.StatusInternalServerError}, err
	}

	// Stage failures already leave a FAILED record for the key; returning a
	// nil error here keeps the runtime from redelivering the same event.
	return response{StatusCode: audit.StatusCode(app.Audit.HandleEvent(ctx, ev))}, nil
}

func main() {
	lambda.Start(handler)
}
