package textract

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awstextract "github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"

	"audit-backend/internal/docai"
)

// Textract returns a "Type" and "ValueDetection" per summary field; either may
// be missing, so the label falls back to "Field" and the value to empty.
const defaultLabel = "Field"

// Client implements docai.Analyzer using Amazon Textract expense analysis.
type Client struct {
	api *awstextract.Client
}

// New constructs a Textract-backed analyzer from a shared AWS config.
func New(cfg aws.Config) *Client {
	return &Client{api: awstextract.NewFromConfig(cfg)}
}

// AnalyzeExpense runs expense analysis against a stored document and flattens
// the response into label/value fields, preserving document and field order.
func (c *Client) AnalyzeExpense(ctx context.Context, bucket, key string) ([]docai.Document, error) {
	out, err := c.api.AnalyzeExpense(ctx, &awstextract.AnalyzeExpenseInput{
		Document: &types.Document{
			S3Object: &types.S3Object{
				Bucket: aws.String(bucket),
				Name:   aws.String(key),
			},
		},
	})
	if err != nil {
		return nil, docai.ExtractionError{Bucket: bucket, Key: key, Err: err}
	}

	docs := make([]docai.Document, 0, len(out.ExpenseDocuments))
	for _, expense := range out.ExpenseDocuments {
		doc := docai.Document{SummaryFields: make([]docai.Field, 0, len(expense.SummaryFields))}
		for _, raw := range expense.SummaryFields {
			field := docai.Field{Label: defaultLabel}
			if raw.Type != nil && raw.Type.Text != nil {
				field.Label = *raw.Type.Text
			}
			if raw.ValueDetection != nil {
				field.Value = aws.ToString(raw.ValueDetection.Text)
			}
			doc.SummaryFields = append(doc.SummaryFields, field)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

var _ docai.Analyzer = (*Client)(nil)
