package provider

import "context"

// ISpeechProvider synthesizes spoken audio for a question prompt.
type ISpeechProvider interface {
	Synthesize(ctx context.Context, text string, emphasis []string) ([]byte, error)
}
