package object

import (
	"context"
	"io"
)

// ObjectStore defines the contract for saving receipt objects. The key is
// chosen by the caller because it doubles as the audit record identifier
// downstream.
type ObjectStore interface {
	Save(ctx context.Context, key string, r io.Reader) (sizeBytes int64, mimeType string, err error)
}
