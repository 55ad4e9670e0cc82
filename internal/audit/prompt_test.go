package audit

import (
	"strings"
	"testing"
)

func TestBuildPromptEmbedsExtractedText(t *testing.T) {
	text := "VENDOR_NAME: Starbucks\nTOTAL: 62.50\n"
	prompt := BuildPrompt(text)

	if !strings.Contains(prompt, text) {
		t.Fatalf("expected prompt to embed extracted text verbatim:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Return ONLY valid JSON") {
		t.Fatalf("expected JSON-only instruction in prompt:\n%s", prompt)
	}
	for _, key := range []string{"category", "violation", "summary"} {
		if !strings.Contains(prompt, key) {
			t.Fatalf("expected prompt to name key %q:\n%s", key, prompt)
		}
	}
}

func TestBuildPromptDeterministic(t *testing.T) {
	if BuildPrompt("a") != BuildPrompt("a") {
		t.Fatal("expected identical prompts for identical input")
	}
}
