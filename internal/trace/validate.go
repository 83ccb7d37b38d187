package trace

import (
	"fmt"
	"strings"
)

// Report is the outcome of validating a parsed result. Validation never
// fails: every missing or wrongly shaped field becomes an entry here.
type Report struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

var requiredKeys = []string{
	"stimulus",
	"steps",
	"mermaid_flowchart",
	"ncert_accuracy_notes",
}

var stepKeys = []string{
	"step_number",
	"title",
	"description",
	"structure",
	"ncert_reference",
}

// Validate checks the parsed result against the required-field contract.
// Missing top-level keys and a step count other than 5 are errors; the
// step-count rule runs even when "steps" itself is missing, so both
// signals fire together in that case. Per-step omissions and the
// flowchart prefix check are warnings only.
func Validate(res Result) Report {
	report := Report{Valid: true, Errors: []string{}, Warnings: []string{}}

	for _, key := range requiredKeys {
		if _, ok := res[key]; !ok {
			report.Valid = false
			report.Errors = append(report.Errors, fmt.Sprintf("Missing required key: '%s'", key))
		}
	}

	steps := res.Steps()
	if len(steps) != 5 {
		report.Valid = false
		report.Errors = append(report.Errors, fmt.Sprintf("Expected 5 steps, got %d", len(steps)))
	}

	for i, step := range steps {
		for _, key := range stepKeys {
			if _, ok := step[key]; !ok {
				report.Warnings = append(report.Warnings, fmt.Sprintf("Step %d missing key: '%s'", i+1, key))
			}
		}
	}

	mermaid, _ := res["mermaid_flowchart"].(string)
	if !strings.HasPrefix(strings.TrimSpace(mermaid), "graph TD") {
		report.Warnings = append(report.Warnings, "Mermaid flowchart may not use 'graph TD' syntax")
	}

	return report
}
