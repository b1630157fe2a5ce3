package speech

import "context"

// Service is the narrow speech contract the voice presenter depends on.
// Both calls are fallible, finite-latency network operations.
type Service interface {
	// Transcribe turns an audio attachment into text. An empty transcript
	// with a nil error means the audio contained no recognizable speech.
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)

	// Synthesize turns text into spoken audio. Callers fall back to text
	// output when it fails.
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
