package channel

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/kundenwerk/regbot/internal/speech"
	"github.com/kundenwerk/regbot/internal/texts"
)

var supportedAudioMimeTypes = map[string]bool{
	"audio/ogg":   true,
	"audio/opus":  true,
	"audio/mpeg":  true,
	"audio/mp3":   true,
	"audio/wav":   true,
	"audio/x-wav": true,
	"audio/mp4":   true,
	"audio/m4a":   true,
	"audio/x-m4a": true,
	"audio/webm":  true,
}

const voiceReplyMimeType = "audio/mpeg"

// VoicePresenter is the presenter for audio-only channels. Input must be a
// supported audio attachment; typed text is rejected with the dialog state
// preserved. Output is synthesized speech, degrading to text per reply
// when synthesis fails.
type VoicePresenter struct {
	speech speech.Service
	log    *zap.Logger
}

func NewVoicePresenter(svc speech.Service, log *zap.Logger) *VoicePresenter {
	return &VoicePresenter{speech: svc, log: log}
}

func (p *VoicePresenter) Extract(ctx context.Context, in Inbound) (string, *Rejection) {
	if in.Type != TypeAudio || in.Audio == nil {
		return "", &Rejection{Reply: texts.VoiceOnly}
	}
	if !supportedAudioMimeTypes[strings.ToLower(strings.TrimSpace(in.Audio.MimeType))] {
		return "", &Rejection{Reply: texts.VoiceOnly}
	}

	transcript, err := p.speech.Transcribe(ctx, in.Audio.Data, in.Audio.MimeType)
	if err != nil {
		return "", &Rejection{Reply: texts.SpeechUnavailable}
	}
	if transcript == "" {
		return "", &Rejection{Reply: texts.TranscriptEmpty}
	}
	return transcript, nil
}

func (p *VoicePresenter) Render(ctx context.Context, replies []string) []Outbound {
	out := make([]Outbound, 0, len(replies))
	for _, r := range replies {
		audio, err := p.speech.Synthesize(ctx, r)
		if err != nil || len(audio) == 0 {
			// Never drop a reply: a failed synthesis degrades to text.
			p.log.Warn("synthesis degraded to text", zap.Error(err))
			out = append(out, Outbound{Text: r})
			continue
		}
		out = append(out, Outbound{Text: r, Audio: audio, MimeType: voiceReplyMimeType})
	}
	return out
}
