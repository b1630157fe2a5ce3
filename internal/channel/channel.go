// Package channel normalizes channel-native input and output to the
// logical shapes the dialog engine works with. Presenters never touch
// dialog state; a rejection leaves the conversation exactly where it was.
package channel

import "context"

type InboundType string

const (
	TypeText            InboundType = "text"
	TypeAudio           InboundType = "audio"
	TypeMembershipEvent InboundType = "membership_event"
)

// Attachment is a channel-native media payload.
type Attachment struct {
	MimeType string
	Data     []byte
}

// Inbound is the logical shape of a channel message arriving at the bot.
type Inbound struct {
	Type  InboundType
	Text  string
	Audio *Attachment
}

// Outbound is one reply in the channel's native form. Audio is set when
// the channel speaks; Text is always set so transports can degrade.
type Outbound struct {
	Text     string
	Audio    []byte
	MimeType string
}

// Rejection is a channel-level refusal of an inbound message ("I am a
// voice bot, please send audio"). The reply is presented to the user and
// the dialog state stays untouched.
type Rejection struct {
	Reply string
}

// Presenter converts between channel-native messages and the logical
// utterances/prompts of the dialog engine.
type Presenter interface {
	// Extract returns the logical user utterance, or a rejection when the
	// message cannot be handled on this channel.
	Extract(ctx context.Context, in Inbound) (string, *Rejection)

	// Render converts logical replies into channel output. It must always
	// produce a visible reply per input, degrading rather than dropping.
	Render(ctx context.Context, replies []string) []Outbound
}
