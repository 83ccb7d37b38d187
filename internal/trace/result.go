// Package trace owns the core of a pathway trace: parsing the model
// response, validating its shape, and extracting the flowchart.
package trace

// Result is the parsed model response. It stays loosely typed on
// purpose: no field is guaranteed present, and the validator's job is
// to characterize what is missing rather than reject it at decode time.
type Result map[string]any

// Stimulus returns the echoed stimulus, or "" when absent.
func (r Result) Stimulus() string {
	s, _ := r["stimulus"].(string)
	return s
}

// Steps returns the step sequence. Absent or wrongly shaped values
// yield an empty slice; non-object elements become empty steps so the
// validator can report their missing keys.
func (r Result) Steps() []map[string]any {
	raw, _ := r["steps"].([]any)
	steps := make([]map[string]any, len(raw))
	for i, v := range raw {
		if m, ok := v.(map[string]any); ok {
			steps[i] = m
		} else {
			steps[i] = map[string]any{}
		}
	}
	return steps
}

// ReflexArcNote returns the optional reflex arc note, or "" when absent.
func (r Result) ReflexArcNote() string {
	s, _ := r["reflex_arc_note"].(string)
	return s
}
