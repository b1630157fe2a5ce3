package channel

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kundenwerk/regbot/internal/texts"
)

type stubSpeech struct {
	transcript    string
	transcribeErr error
	audio         []byte
	synthesizeErr error
}

func (s *stubSpeech) Transcribe(context.Context, []byte, string) (string, error) {
	return s.transcript, s.transcribeErr
}

func (s *stubSpeech) Synthesize(context.Context, string) ([]byte, error) {
	return s.audio, s.synthesizeErr
}

func TestTextPresenterExtract(t *testing.T) {
	p := NewTextPresenter()
	ctx := context.Background()

	got, rej := p.Extract(ctx, Inbound{Type: TypeText, Text: "  ja  "})
	require.Nil(t, rej)
	assert.Equal(t, "ja", got)

	_, rej = p.Extract(ctx, Inbound{Type: TypeAudio, Audio: &Attachment{MimeType: "audio/ogg"}})
	require.NotNil(t, rej)
	assert.Equal(t, texts.TextOnly, rej.Reply)
}

func TestTextPresenterRender(t *testing.T) {
	out := NewTextPresenter().Render(context.Background(), []string{"a", "b"})
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].Text)
	assert.Nil(t, out[0].Audio)
}

func TestVoicePresenterExtract(t *testing.T) {
	ctx := context.Background()
	log := zap.NewNop()

	p := NewVoicePresenter(&stubSpeech{transcript: "ja"}, log)
	got, rej := p.Extract(ctx, Inbound{Type: TypeAudio, Audio: &Attachment{MimeType: "audio/ogg", Data: []byte{1}}})
	require.Nil(t, rej)
	assert.Equal(t, "ja", got)

	// Typed text on a voice channel is refused, not processed.
	_, rej = p.Extract(ctx, Inbound{Type: TypeText, Text: "ja"})
	require.NotNil(t, rej)
	assert.Equal(t, texts.VoiceOnly, rej.Reply)

	// Unsupported attachment type.
	_, rej = p.Extract(ctx, Inbound{Type: TypeAudio, Audio: &Attachment{MimeType: "video/mp4", Data: []byte{1}}})
	require.NotNil(t, rej)
	assert.Equal(t, texts.VoiceOnly, rej.Reply)
}

func TestVoicePresenterExtractDegrades(t *testing.T) {
	ctx := context.Background()
	log := zap.NewNop()
	in := Inbound{Type: TypeAudio, Audio: &Attachment{MimeType: "audio/ogg", Data: []byte{1}}}

	_, rej := NewVoicePresenter(&stubSpeech{transcribeErr: errors.New("timeout")}, log).Extract(ctx, in)
	require.NotNil(t, rej)
	assert.Equal(t, texts.SpeechUnavailable, rej.Reply)

	_, rej = NewVoicePresenter(&stubSpeech{transcript: ""}, log).Extract(ctx, in)
	require.NotNil(t, rej)
	assert.Equal(t, texts.TranscriptEmpty, rej.Reply)
}

func TestVoicePresenterRenderFallsBackToText(t *testing.T) {
	ctx := context.Background()
	log := zap.NewNop()

	out := NewVoicePresenter(&stubSpeech{audio: []byte{0xff}}, log).Render(ctx, []string{"hallo"})
	require.Len(t, out, 1)
	assert.Equal(t, []byte{0xff}, out[0].Audio)
	assert.Equal(t, "hallo", out[0].Text)

	out = NewVoicePresenter(&stubSpeech{synthesizeErr: errors.New("down")}, log).Render(ctx, []string{"hallo"})
	require.Len(t, out, 1)
	assert.Nil(t, out[0].Audio)
	assert.Equal(t, "hallo", out[0].Text, "synthesis failure degrades to text, never drops the turn")
}
