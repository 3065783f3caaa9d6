// Package advisor asks an LLM for rename suggestions on dissonant functions.
// Scoring never depends on it; the advisor only annotates findings.
package advisor

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"harmonia/internal/harmony"
)

// Advisor proposes a better name for a scored function.
type Advisor interface {
	SuggestRename(ctx context.Context, rec harmony.Record, source string) (string, error)
}

// GeminiAdvisor implements Advisor using Gemini text generation.
type GeminiAdvisor struct {
	client        *genai.Client
	model         string
	promptBuilder *PromptBuilder
}

func NewGeminiAdvisor(ctx context.Context, apiKey string, modelName string) (*GeminiAdvisor, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GeminiAdvisor{
		client:        client,
		model:         modelName,
		promptBuilder: &PromptBuilder{},
	}, nil
}

// SuggestRename asks the model for a snake_case name matching what the body
// actually does. The source snippet is optional context; pass "" to rely on
// the coordinates alone.
func (a *GeminiAdvisor) SuggestRename(ctx context.Context, rec harmony.Record, source string) (string, error) {
	prompt := a.promptBuilder.BuildRenamePrompt(rec, source)
	resp, err := a.generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	name := extractIdentifier(resp)
	if name == "" {
		return "", fmt.Errorf("failed to parse a name from LLM response: %s", resp)
	}
	return name, nil
}

func (a *GeminiAdvisor) generate(ctx context.Context, prompt string) (string, error) {
	contents := genai.Text(prompt)
	resp, err := a.client.Models.GenerateContent(ctx, a.model, contents, nil)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// extractIdentifier pulls the first plausible python identifier from a model
// response, stripping code fences, quotes and trailing punctuation.
func extractIdentifier(resp string) string {
	for _, line := range strings.Split(resp, "\n") {
		line = strings.TrimSpace(line)
		line = strings.Trim(line, "`'\".")
		if line == "" || strings.HasPrefix(line, "```") {
			continue
		}
		word := strings.Fields(line)[0]
		word = strings.Trim(word, "`'\".,()")
		if isIdentifier(word) {
			return word
		}
	}
	return ""
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
