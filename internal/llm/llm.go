// Package llm defines the text-generation collaborator and its OpenAI
// implementation. The collaborator is treated as a pure function from
// prompt to text: no retained state between calls, no streaming.
package llm

import "context"

// TextGenerator produces natural-language text for a composed prompt.
type TextGenerator interface {
	Complete(ctx context.Context, systemRole, prompt string, maxTokens int, temperature float64) (string, error)
}
