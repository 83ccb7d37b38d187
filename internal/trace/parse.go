package trace

import (
	"encoding/json"
	"regexp"
	"strings"
)

// ParseError means the raw text is not recoverable as a JSON object by
// either parse attempt. It is terminal for the trace.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "could not parse structured data from model response"
}

func (e *ParseError) Unwrap() error { return e.Err }

// Matches the first (non-greedy) triple-backtick fence, optionally
// tagged "json".
var fenceRe = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)```")

// ExtractJSON parses a JSON object out of raw model output. It tries
// the whole text first, then the contents of the first fenced code
// block. No further heuristics: anything else fails with a ParseError.
func ExtractJSON(raw string) (Result, error) {
	text := strings.TrimSpace(raw)

	var res Result
	direct := json.Unmarshal([]byte(text), &res)
	if direct == nil {
		return res, nil
	}

	if m := fenceRe.FindStringSubmatch(text); m != nil {
		inner := strings.TrimSpace(m[1])
		if err := json.Unmarshal([]byte(inner), &res); err != nil {
			return nil, &ParseError{Err: err}
		}
		return res, nil
	}

	return nil, &ParseError{Err: direct}
}
