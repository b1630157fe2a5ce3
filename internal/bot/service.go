// Package bot wires one channel presenter to the dialog machine: it owns
// the per-turn load → extract → dispatch → save → render sequence.
package bot

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/kundenwerk/regbot/internal/channel"
	"github.com/kundenwerk/regbot/internal/dialog"
	"github.com/kundenwerk/regbot/internal/session"
)

// Service handles inbound messages for one channel. The dialog machine is
// shared; the presenter is what makes a service a text bot or a voice bot.
type Service struct {
	store     session.Store
	locks     *session.Locks
	machine   *dialog.Machine
	presenter channel.Presenter
	log       *zap.Logger
}

func NewService(
	store session.Store,
	locks *session.Locks,
	machine *dialog.Machine,
	presenter channel.Presenter,
	log *zap.Logger,
) *Service {
	return &Service{
		store:     store,
		locks:     locks,
		machine:   machine,
		presenter: presenter,
		log:       log,
	}
}

// HandleInbound runs one dialog turn. Turns of the same conversation are
// serialized by the per-conversation lock; the session is saved only after
// the machine has fully processed the turn, so a failed turn never leaves
// a half-updated state behind.
func (s *Service) HandleInbound(ctx context.Context, conversationID string, in channel.Inbound) ([]channel.Outbound, error) {
	release := s.locks.Acquire(conversationID)
	defer release()

	rec, err := s.store.Load(ctx, conversationID)
	switch {
	case errors.Is(err, session.ErrNotFound):
		rec = session.NewRecord(string(dialog.StateGreeting))
		rec.Profile[dialog.KeyFirstInteraction] = "true"
	case err != nil:
		return nil, fmt.Errorf("bot: load session: %w", err)
	}

	var text string
	if in.Type == channel.TypeMembershipEvent {
		// The bot joined the conversation: greet without user input, but
		// never disturb a conversation that is already under way.
		if rec.State != string(dialog.StateGreeting) {
			return nil, nil
		}
	} else {
		extracted, rejection := s.presenter.Extract(ctx, in)
		if rejection != nil {
			// Channel-level refusal: reply, state stays untouched.
			return s.presenter.Render(ctx, []string{rejection.Reply}), nil
		}
		text = extracted
	}

	conv := &dialog.Conversation{
		ID:      conversationID,
		State:   dialog.State(rec.State),
		Profile: dialog.Profile(rec.Profile),
	}
	replies := s.machine.HandleTurn(ctx, conv, text)

	rec.State = string(conv.State)
	rec.Profile = map[string]string(conv.Profile)
	if err := s.store.Save(ctx, conversationID, rec); err != nil {
		s.log.Error("session save failed",
			zap.String("conversation", conversationID), zap.Error(err))
		return nil, fmt.Errorf("bot: save session: %w", err)
	}

	s.log.Info("turn handled",
		zap.String("conversation", conversationID),
		zap.String("state", rec.State),
		zap.Int("replies", len(replies)))

	return s.presenter.Render(ctx, replies), nil
}
