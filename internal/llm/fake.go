package llm

import (
	"context"
	"encoding/json"
)

// FakeClient returns a deterministic, well-formed trace payload for
// offline use and tests. Raw and Err, when set, override the canned
// response.
type FakeClient struct {
	Raw string
	Err error
}

func NewFakeClient() *FakeClient { return &FakeClient{} }

func (f *FakeClient) Name() string { return "FakeLLM" }
func (f *FakeClient) Close() error { return nil }

func (f *FakeClient) Complete(_ context.Context, _, user string) (string, error) {
	if f.Err != nil {
		return "", f.Err
	}
	if f.Raw != "" {
		return f.Raw, nil
	}
	return cannedResponse(user), nil
}

func cannedResponse(stimulus string) string {
	steps := []map[string]any{
		{"step_number": 1, "title": "Receptor Activation", "description": "Nociceptors in the skin detect the stimulus and fire.", "structure": "Nociceptors (skin)", "ncert_reference": "Class 10 Ch.7: Control and Coordination"},
		{"step_number": 2, "title": "Afferent Conduction", "description": "The sensory neuron carries the impulse toward the CNS.", "structure": "Sensory (afferent) neuron", "ncert_reference": "Class 11 Ch.21: Neural Control and Coordination"},
		{"step_number": 3, "title": "CNS Relay", "description": "The signal enters the spinal cord through the dorsal root.", "structure": "Spinal cord (dorsal horn)", "ncert_reference": "Class 10 Ch.7: Control and Coordination"},
		{"step_number": 4, "title": "Interneuron Processing", "description": "Interneurons relay the signal up the ascending tracts.", "structure": "Interneuron / spinothalamic tract", "ncert_reference": "Class 11 Ch.21: Neural Control and Coordination"},
		{"step_number": 5, "title": "Cortical Processing", "description": "The somatosensory cortex localizes and interprets the stimulus.", "structure": "Somatosensory cortex (parietal lobe)", "ncert_reference": "Class 12 Ch.4: Human Neural System"},
	}
	obj := map[string]any{
		"stimulus":             stimulus,
		"steps":                steps,
		"mermaid_flowchart":    "graph TD\n  A[\"Receptor\"] --> B[\"Sensory Neuron\"]\n  B --> C[\"Spinal Cord\"]\n  C --> D[\"Interneuron\"]\n  D --> E[\"Somatosensory Cortex\"]",
		"ncert_accuracy_notes": "Each step follows the standard 5-component pathway from the NCERT reference data.",
		"reflex_arc_note":      "A reflex arc via the spinal cord may trigger withdrawal before cortical processing completes.",
	}
	b, _ := json.Marshal(obj)
	return string(b)
}
