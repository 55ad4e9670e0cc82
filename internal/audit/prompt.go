package audit

import "fmt"

// The extracted text is substituted verbatim, so receipt content ends up
// inside the instruction unescaped. Callers must treat the model response as
// untrusted; the sanitizer downstream only accepts a single JSON object.
const promptTemplate = `Act as a corporate auditor. Analyze this receipt:
%s
Rules: Meals over $50 are a violation.
Return ONLY valid JSON: {"category": "string", "violation": boolean, "summary": "string"}`

// BuildPrompt renders the fixed audit instruction around the extracted
// receipt text.
func BuildPrompt(extractedText string) string {
	return fmt.Sprintf(promptTemplate, extractedText)
}
