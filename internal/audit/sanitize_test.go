package audit

import (
	"errors"
	"testing"
)

func TestExtractResultWithSurroundingProse(t *testing.T) {
	raw := `blah {"category":"meals","violation":true,"summary":"x"} trailing`

	res, err := ExtractResult(raw)
	if err != nil {
		t.Fatalf("extract result: %v", err)
	}
	if res.Category == nil || *res.Category != "meals" {
		t.Fatalf("expected category meals, got %v", res.Category)
	}
	if res.Violation == nil || !*res.Violation {
		t.Fatalf("expected violation true, got %v", res.Violation)
	}
	if res.Summary == nil || *res.Summary != "x" {
		t.Fatalf("expected summary x, got %v", res.Summary)
	}
}

func TestExtractResultIdempotent(t *testing.T) {
	raw := `{"category":"meals","violation":false,"summary":"ok"}`

	first, err := ExtractResult(raw)
	if err != nil {
		t.Fatalf("first extract: %v", err)
	}
	second, err := ExtractResult(raw)
	if err != nil {
		t.Fatalf("second extract: %v", err)
	}
	if *first.Category != *second.Category || *first.Violation != *second.Violation || *first.Summary != *second.Summary {
		t.Fatalf("expected identical results, got %+v and %+v", first, second)
	}
}

func TestExtractResultMissingAndExtraKeys(t *testing.T) {
	res, err := ExtractResult(`{"category":"travel","confidence":0.9}`)
	if err != nil {
		t.Fatalf("extract result: %v", err)
	}
	if res.Category == nil || *res.Category != "travel" {
		t.Fatalf("expected category travel, got %v", res.Category)
	}
	if res.Violation != nil {
		t.Fatalf("expected absent violation to stay nil, got %v", *res.Violation)
	}
	if res.Summary != nil {
		t.Fatalf("expected absent summary to stay nil, got %v", *res.Summary)
	}
}

func TestExtractResultMalformed(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{name: "no braces", raw: "the model refused to answer"},
		{name: "only opening brace", raw: "here you go {"},
		{name: "closing before opening", raw: "} nope {"},
		{name: "invalid json inside braces", raw: `{"category": meals}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ExtractResult(tc.raw)
			if err == nil {
				t.Fatalf("expected error for %q", tc.raw)
			}
			var malformed MalformedResponseError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected MalformedResponseError, got %T: %v", err, err)
			}
		})
	}
}
