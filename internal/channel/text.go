package channel

import (
	"context"
	"strings"

	"github.com/kundenwerk/regbot/internal/texts"
)

// TextPresenter is the presenter for typed-text channels (web chat). It
// rejects audio input instead of guessing at it.
type TextPresenter struct{}

func NewTextPresenter() *TextPresenter {
	return &TextPresenter{}
}

func (p *TextPresenter) Extract(_ context.Context, in Inbound) (string, *Rejection) {
	if in.Type != TypeText {
		return "", &Rejection{Reply: texts.TextOnly}
	}
	return strings.TrimSpace(in.Text), nil
}

func (p *TextPresenter) Render(_ context.Context, replies []string) []Outbound {
	out := make([]Outbound, 0, len(replies))
	for _, r := range replies {
		out = append(out, Outbound{Text: r})
	}
	return out
}
