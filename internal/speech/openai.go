package speech

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// OpenAIService implements Service on the OpenAI audio endpoints
// (whisper transcription, tts synthesis). Every call carries a bounded
// timeout so a hanging provider can never stall a dialog turn.
type OpenAIService struct {
	client  *openai.Client
	timeout time.Duration
	voice   openai.SpeechVoice
	log     *zap.Logger
}

func NewOpenAIService(client *openai.Client, timeout time.Duration, log *zap.Logger) *OpenAIService {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &OpenAIService{
		client:  client,
		timeout: timeout,
		voice:   openai.VoiceAlloy,
		log:     log,
	}
}

func (s *OpenAIService) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: "voice" + extensionFor(mimeType),
		Reader:   bytes.NewReader(audio),
		Language: "de",
	})
	if err != nil {
		s.log.Warn("transcription failed", zap.Error(err))
		return "", fmt.Errorf("transcribe: %w", err)
	}
	return strings.TrimSpace(resp.Text), nil
}

func (s *OpenAIService) Synthesize(ctx context.Context, text string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model: openai.TTSModel1,
		Input: text,
		Voice: s.voice,
	})
	if err != nil {
		s.log.Warn("speech synthesis failed", zap.Error(err))
		return nil, fmt.Errorf("synthesize: %w", err)
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("synthesize: read audio: %w", err)
	}
	return audio, nil
}

// extensionFor maps an attachment MIME type to the file extension the
// transcription endpoint uses for format detection.
func extensionFor(mimeType string) string {
	switch strings.ToLower(strings.TrimSpace(mimeType)) {
	case "audio/ogg", "audio/opus":
		return ".ogg"
	case "audio/mpeg", "audio/mp3":
		return ".mp3"
	case "audio/wav", "audio/x-wav":
		return ".wav"
	case "audio/mp4", "audio/m4a", "audio/x-m4a":
		return ".m4a"
	case "audio/webm":
		return ".webm"
	default:
		return ".ogg"
	}
}
