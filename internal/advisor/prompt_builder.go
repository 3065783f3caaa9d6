package advisor

import (
	"fmt"
	"strings"

	"harmonia/internal/harmony"
	"harmonia/internal/vocabulary"
)

// PromptBuilder assembles prompts for the rename advisor.
type PromptBuilder struct{}

// BuildRenamePrompt describes the dissonance in words the model can act on:
// the current name, the axis breakdown and optionally the function source.
func (b *PromptBuilder) BuildRenamePrompt(rec harmony.Record, source string) string {
	var sb strings.Builder

	sb.WriteString("You are reviewing a Python function whose name does not match what its body does.\n\n")
	sb.WriteString(fmt.Sprintf("Current name: %s (defined in %s, line %d)\n", rec.Name, rec.File, rec.Line))
	sb.WriteString(fmt.Sprintf("Name/body mismatch score: %.3f (%s)\n\n", rec.Distance, rec.Severity))

	sb.WriteString("Semantic axis breakdown (0..1 weight per axis):\n")
	sb.WriteString(fmt.Sprintf("%-12s %8s %8s\n", "axis", "name", "body"))
	for c := vocabulary.Category(0); int(c) < vocabulary.NumCategories; c++ {
		sb.WriteString(fmt.Sprintf("%-12s %8.3f %8.3f\n", c.String(), rec.Intent[c], rec.Execution[c]))
	}

	if source != "" {
		sb.WriteString("\nFunction source:\n```python\n")
		sb.WriteString(source)
		if !strings.HasSuffix(source, "\n") {
			sb.WriteString("\n")
		}
		sb.WriteString("```\n")
	}

	sb.WriteString("\nPropose ONE snake_case function name that honestly describes the body's behavior.\n")
	sb.WriteString("Respond with the name only. No explanation, no punctuation, no code fences.\n")

	return sb.String()
}
