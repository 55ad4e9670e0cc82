package docai

import (
	"context"
	"fmt"
)

// Field is one label/value pair detected on an analyzed document.
type Field struct {
	Label string
	Value string
}

// Document groups the summary fields detected on a single expense document.
type Document struct {
	SummaryFields []Field
}

// Analyzer extracts structured expense fields from a stored document.
type Analyzer interface {
	AnalyzeExpense(ctx context.Context, bucket, key string) ([]Document, error)
}

// ExtractionError indicates the document-analysis call failed or the stored
// object could not be analyzed.
type ExtractionError struct {
	Bucket string
	Key    string
	Err    error
}

func (e ExtractionError) Error() string {
	return fmt.Sprintf("extract document s3://%s/%s: %v", e.Bucket, e.Key, e.Err)
}

func (e ExtractionError) Unwrap() error { return e.Err }
