package trace

import (
	"context"
	"time"

	"synapse/internal/llm"
	"synapse/internal/prompt"
)

// Trace is one completed pathway trace: the parsed result plus its
// validation report and the displayable flowchart.
type Trace struct {
	Stimulus   string        `json:"stimulus"`
	Result     Result        `json:"result"`
	Validation Report        `json:"validation"`
	Flowchart  string        `json:"flowchart"`
	Elapsed    time.Duration `json:"-"`
}

// Tracer runs pathway traces against a completion client. The system
// instruction is fixed at construction.
type Tracer struct {
	client llm.Client
	system string
}

func New(client llm.Client) *Tracer {
	return &Tracer{
		client: client,
		system: prompt.SystemInstruction(),
	}
}

// Run performs one trace. Transport and parse failures abort with an
// error and no Trace is produced; validation findings never abort — the
// result is returned with the report attached so partial content stays
// visible.
func (t *Tracer) Run(ctx context.Context, stimulus string) (*Trace, error) {
	start := time.Now()

	raw, err := t.client.Complete(ctx, t.system, prompt.UserRequest(stimulus))
	if err != nil {
		return nil, err
	}

	result, err := ExtractJSON(raw)
	if err != nil {
		return nil, err
	}

	return &Trace{
		Stimulus:   stimulus,
		Result:     result,
		Validation: Validate(result),
		Flowchart:  Flowchart(result),
		Elapsed:    time.Since(start),
	}, nil
}
