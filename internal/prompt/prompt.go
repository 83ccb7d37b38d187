// Package prompt assembles the system instruction and the per-trace user
// request sent to the completion provider.
package prompt

import (
	"fmt"
	"strings"
	"sync"

	"synapse/internal/catalog"
)

// rules are the invariants the model is asked to honor. Numbered in the
// rendered instruction.
var rules = []string{
	"Always start at the receptor and end at the brain processing center.",
	"Each step must reference real anatomical structures.",
	"The Mermaid flowchart must use graph TD syntax with descriptive node labels.",
	"Wrap node labels in quotes if they contain special characters.",
	"Cross-check every step against the NCERT reference data provided.",
	"Be educational — this is for students preparing for exams.",
}

const schemaBlock = `{
  "stimulus": "<the input stimulus>",
  "steps": [
    {
      "step_number": 1,
      "title": "<short title>",
      "description": "<detailed NCERT-aligned explanation, 2-3 sentences>",
      "structure": "<anatomical structure involved>",
      "ncert_reference": "<relevant NCERT chapter/concept>"
    },
    ... (exactly 5 steps)
  ],
  "mermaid_flowchart": "<valid Mermaid.js flowchart string using graph TD>",
  "ncert_accuracy_notes": "<paragraph explaining how each step aligns with NCERT standards>",
  "reflex_arc_note": "<if applicable, explain the reflex arc shortcut>"
}`

var systemInstruction = sync.OnceValue(buildSystemInstruction)

// SystemInstruction returns the cached system instruction. The catalog is
// constant, so the instruction is built once per process.
func SystemInstruction() string {
	return systemInstruction()
}

func buildSystemInstruction() string {
	var b strings.Builder
	b.WriteString("You are Synapse-Architect, a neuroscience reasoning agent for students.\n\n")
	b.WriteString("Your task: Given a stimulus, trace the complete neural signal pathway in EXACTLY 5 logical steps,\n")
	b.WriteString("from the receptor to the brain's processing center.\n\n")
	b.WriteString(catalog.Context())
	b.WriteString("\n\nYou MUST respond with valid JSON only — no markdown, no explanation outside the JSON.\n")
	b.WriteString("Do NOT wrap the JSON in ```json``` code fences. Output raw JSON only.\n\n")
	b.WriteString("JSON schema:\n")
	b.WriteString(schemaBlock)
	b.WriteString("\n\nRules:\n")
	for i, r := range rules {
		fmt.Fprintf(&b, "%d. %s\n", i+1, r)
	}
	return b.String()
}

// UserRequest renders the per-trace request. The stimulus is embedded
// verbatim; callers own any vetting of user input.
func UserRequest(stimulus string) string {
	return fmt.Sprintf(
		"Trace the complete neural signal pathway for this stimulus: '%s'. "+
			"Provide exactly 5 steps from receptor to brain, a Mermaid.js flowchart, "+
			"and NCERT accuracy cross-check.",
		stimulus,
	)
}
