package dialog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kundenwerk/regbot/internal/customer"
	"github.com/kundenwerk/regbot/internal/nlu"
	"github.com/kundenwerk/regbot/internal/texts"
)

// Conversation is the per-conversation state the machine mutates during a
// turn. The caller owns loading it before and saving it after the turn.
type Conversation struct {
	ID      string
	State   State
	Profile Profile
}

// Machine drives the registration dialog. It is stateless itself; all
// per-conversation state lives in the Conversation. One machine instance
// serves all conversations and all channels.
type Machine struct {
	repo      customer.Repository
	extractor nlu.Extractor
	log       *zap.Logger
	now       func() time.Time
}

func NewMachine(repo customer.Repository, extractor nlu.Extractor, log *zap.Logger) *Machine {
	return &Machine{
		repo:      repo,
		extractor: extractor,
		log:       log,
		now:       time.Now,
	}
}

// HandleTurn processes one user utterance and returns the bot replies.
// Every failure mode resolves to a reply and a well-defined state; the
// turn itself never fails.
func (m *Machine) HandleTurn(ctx context.Context, conv *Conversation, input string) []string {
	if conv.Profile == nil {
		conv.Profile = NewProfile()
	}

	switch conv.State {
	case StateGreeting:
		return m.greet(conv)
	case StateAskConsent:
		return m.handleConsent(conv, input)
	case StateFinalConfirmation:
		return m.handleFinalConfirmation(ctx, conv, input)
	case StateCorrectionSelection:
		return m.handleCorrectionSelection(conv, input)
	case StateCompleted:
		return m.handleCompleted(conv, input)
	case StateError:
		return m.handleError(conv, input)
	}

	if st, ok := stepByAsk(conv.State); ok {
		return m.handleAsk(ctx, conv, st, input)
	}
	if st, idx, ok := stepByConfirm(conv.State); ok {
		return m.handleConfirm(conv, st, idx, input)
	}
	return m.handleUnknownState(conv, input)
}

// greet opens a fresh registration. Reached on the first turn of a
// conversation and after every restart.
func (m *Machine) greet(conv *Conversation) []string {
	conv.Profile.SetFlag(KeyFirstInteraction, false)
	conv.State = StateAskConsent
	return []string{texts.Greeting, texts.AskConsent}
}

// startOver wipes the profile and begins again. Used by restart keywords
// everywhere they are recognized.
func (m *Machine) startOver(conv *Conversation) []string {
	conv.Profile.Reset()
	return m.greet(conv)
}

// handleConsent is the hard gate in front of all field collection.
func (m *Machine) handleConsent(conv *Conversation, input string) []string {
	p := conv.Profile
	switch {
	case isYes(input):
		p.SetFlag(KeyConsentGiven, true)
		p.Set(KeyConsentTimestamp, m.now().UTC().Format(time.RFC3339))
		conv.State = StateAskGender
		return []string{flow[0].prompt}
	case isNo(input):
		p.Reset()
		p.SetFlag(KeyRegistrationCancelled, true)
		conv.State = StateCompleted
		return []string{texts.ConsentDeclined}
	default:
		return []string{texts.ConfirmRepeat, texts.AskConsent}
	}
}

// handleAsk validates input for one field, preferring an extracted entity
// span over the raw utterance, and moves into the field's confirmation
// sub-dialog (or straight back to the summary in correction mode).
func (m *Machine) handleAsk(ctx context.Context, conv *Conversation, st *step, input string) []string {
	p := conv.Profile

	mutations, display, ok := m.tryEntity(ctx, p, st, input)
	if !ok {
		mutations, display, ok = st.validate(m, ctx, p, input)
	}
	if !ok {
		// Validation rejection: user-recoverable, state untouched.
		return []string{st.reject}
	}

	// The duplicate check runs after validation and before any profile
	// write. In correction mode the user is revising an in-flight
	// registration, so the check is skipped.
	if st.key == KeyEmail && !p.Flag(KeyCorrectionMode) {
		exists, err := m.repo.EmailExists(ctx, mutations[KeyEmail])
		if err != nil {
			m.log.Error("email lookup failed",
				zap.String("conversation", conv.ID), zap.Error(err))
			return []string{texts.TryAgainLater}
		}
		if exists {
			return []string{texts.DuplicateEmail}
		}
	}

	for k, v := range mutations {
		p.Set(k, v)
	}

	if p.Flag(KeyCorrectionMode) {
		p.Delete(KeyCorrectionMode)
		p.Delete(KeyCorrectionReturnTo)
		conv.State = StateFinalConfirmation
		return append([]string{fmt.Sprintf(texts.CorrectionSaved, st.label)}, m.summary(p)...)
	}

	conv.State = st.confirm
	return []string{fmt.Sprintf(texts.ConfirmValue, st.label, display)}
}

// tryEntity runs the advisory extraction pre-pass. Any failure, miss, or
// invalid span falls through to raw-text validation.
func (m *Machine) tryEntity(ctx context.Context, p Profile, st *step, input string) (map[string]string, string, bool) {
	if st.entity == "" {
		return nil, "", false
	}
	span := nlu.FirstEntity(ctx, m.extractor, input, st.entity)
	if span == "" {
		return nil, "", false
	}

	candidate := span
	var extra map[string]string
	if st.entityPrep != nil {
		candidate, extra = st.entityPrep(p, span)
	}

	mutations, display, ok := st.validate(m, ctx, p, candidate)
	if !ok {
		return nil, "", false
	}
	for k, v := range extra {
		if _, taken := mutations[k]; !taken {
			mutations[k] = v
		}
	}
	return mutations, display, true
}

// handleConfirm resolves the yes/no round trip after a field. "ja" moves
// to the next entry of the backbone table; the table miss after the last
// entry advances to the final summary. "nein" returns to the same field's
// ask state, leaving the stale profile value to be overwritten.
func (m *Machine) handleConfirm(conv *Conversation, st *step, index int, input string) []string {
	switch {
	case isYes(input):
		if next, ok := nextAsk(index); ok {
			conv.State = next
			return []string{flow[index+1].prompt}
		}
		conv.State = StateFinalConfirmation
		return m.summary(conv.Profile)
	case isNo(input):
		conv.State = st.ask
		return []string{st.prompt}
	default:
		return []string{texts.ConfirmRepeat}
	}
}

// handleFinalConfirmation persists on "ja" and opens the correction menu
// on "nein".
func (m *Machine) handleFinalConfirmation(ctx context.Context, conv *Conversation, input string) []string {
	p := conv.Profile
	switch {
	case isYes(input):
		reg, err := p.Registration()
		if err != nil {
			m.log.Error("profile incomplete at final confirmation",
				zap.String("conversation", conv.ID), zap.Error(err))
			conv.State = StateError
			return []string{texts.PersistFailed}
		}
		if err := m.repo.Persist(ctx, reg); err != nil {
			m.log.Error("persist failed",
				zap.String("conversation", conv.ID), zap.Error(err))
			conv.State = StateError
			return []string{texts.PersistFailed}
		}
		p.Reset()
		conv.State = StateCompleted
		return []string{texts.RegistrationDone}
	case isNo(input):
		conv.State = StateCorrectionSelection
		return []string{texts.CorrectionMenu}
	default:
		return []string{texts.ConfirmRepeat}
	}
}

// handleCorrectionSelection matches the named or numbered field to re-edit
// and jumps back into the normal flow with the confirmation bypass armed.
func (m *Machine) handleCorrectionSelection(conv *Conversation, input string) []string {
	if isBack(input) {
		conv.State = StateFinalConfirmation
		return m.summary(conv.Profile)
	}
	if isRestart(input) {
		return m.startOver(conv)
	}

	idx, ok := matchCorrection(input)
	if !ok {
		return []string{texts.CorrectionUnknown, texts.CorrectionMenu}
	}

	st := &flow[idx]
	conv.Profile.SetFlag(KeyCorrectionMode, true)
	conv.Profile.Set(KeyCorrectionReturnTo, "final_summary")
	conv.State = st.ask
	return []string{st.prompt}
}

// handleCompleted routes input on a finished conversation by keyword, so
// stale sessions never silently re-run field collection.
func (m *Machine) handleCompleted(conv *Conversation, input string) []string {
	cancelled := conv.Profile.Flag(KeyRegistrationCancelled)
	if isRestart(input) {
		if cancelled {
			return m.startOver(conv)
		}
		return []string{texts.AlreadyRegistered}
	}
	if cancelled {
		return []string{texts.CancelledHelp}
	}
	return []string{texts.CompletedHelp}
}

// handleError offers retry (back to the summary) or restart after a
// failed persist.
func (m *Machine) handleError(conv *Conversation, input string) []string {
	switch {
	case isRetry(input):
		conv.State = StateFinalConfirmation
		return m.summary(conv.Profile)
	case isRestart(input):
		return m.startOver(conv)
	default:
		return []string{texts.ErrorRetryUnknown}
	}
}

// handleUnknownState is the defensive fallback for a state value outside
// the transition table.
func (m *Machine) handleUnknownState(conv *Conversation, input string) []string {
	m.log.Warn("unknown dialog state",
		zap.String("conversation", conv.ID), zap.String("state", string(conv.State)))
	if isRestart(input) {
		return m.startOver(conv)
	}
	conv.State = StateCompleted
	return []string{texts.Confused}
}

// summary renders the full field overview shown at final confirmation.
// Indices match the correction menu.
func (m *Machine) summary(p Profile) []string {
	lines := make([]string, 0, len(flow))
	for i, st := range flow {
		lines = append(lines, fmt.Sprintf("%d. %s: %s", i+1, st.label, summaryValue(p, st.key)))
	}
	return []string{
		texts.SummaryHeader,
		strings.Join(lines, "\n"),
		texts.SummaryFooter,
	}
}
