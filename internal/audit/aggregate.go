package audit

import (
	"strings"

	"audit-backend/internal/docai"
)

// DefaultAmount is the final amount recorded when no TOTAL field is detected.
const DefaultAmount = "0.00"

const totalLabel = "TOTAL"

// AggregateFields flattens all summary fields across all analyzed documents
// into one "label: value" text block, document-major in field order, and
// selects the value of the first field labeled TOTAL as the final amount.
func AggregateFields(docs []docai.Document) (extractedText, finalAmount string) {
	finalAmount = DefaultAmount
	found := false

	var b strings.Builder
	for _, doc := range docs {
		for _, field := range doc.SummaryFields {
			b.WriteString(field.Label)
			b.WriteString(": ")
			b.WriteString(field.Value)
			b.WriteByte('\n')
			if !found && field.Label == totalLabel {
				finalAmount = field.Value
				found = true
			}
		}
	}
	return b.String(), finalAmount
}
