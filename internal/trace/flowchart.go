package trace

import "strings"

// FallbackFlowchart is displayed when the model omitted the flowchart.
const FallbackFlowchart = "graph TD\n  A[No data] --> B[Error]"

// Flowchart extracts the Mermaid flowchart from the result, substituting
// the fallback when absent. Escaped newlines inside the string value are
// turned into real line breaks; nothing else is touched.
func Flowchart(res Result) string {
	mermaid, ok := res["mermaid_flowchart"].(string)
	if !ok {
		mermaid = FallbackFlowchart
	}
	return strings.ReplaceAll(mermaid, `\n`, "\n")
}
