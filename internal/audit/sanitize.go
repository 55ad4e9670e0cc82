package audit

import (
	"encoding/json"
	"strings"
)

// ExtractResult recovers a single JSON object from inference output that may
// carry explanatory prose before or after it: everything from the first "{"
// to the last "}" is parsed as the result. Unknown keys are ignored and
// missing keys stay nil.
func ExtractResult(raw string) (Result, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return Result{}, MalformedResponseError{Reason: "no JSON object in response"}
	}

	var res Result
	if err := json.Unmarshal([]byte(raw[start:end+1]), &res); err != nil {
		return Result{}, MalformedResponseError{Reason: "invalid JSON: " + err.Error()}
	}
	return res, nil
}
