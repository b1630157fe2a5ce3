package bot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/kundenwerk/regbot/internal/channel"
	"github.com/kundenwerk/regbot/internal/customer"
	"github.com/kundenwerk/regbot/internal/dialog"
	"github.com/kundenwerk/regbot/internal/session"
	"github.com/kundenwerk/regbot/internal/texts"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestService(t *testing.T, presenter channel.Presenter) (*Service, *session.MemoryStore, *customer.MemoryRepository) {
	t.Helper()
	store := session.NewMemoryStore()
	repo := customer.NewMemoryRepository()
	machine := dialog.NewMachine(repo, nil, zap.NewNop())
	svc := NewService(store, session.NewLocks(), machine, presenter, zap.NewNop())
	return svc, store, repo
}

func TestHandleInboundFirstTurnGreets(t *testing.T) {
	svc, store, _ := newTestService(t, channel.NewTextPresenter())
	ctx := context.Background()

	out, err := svc.HandleInbound(ctx, "c1", channel.Inbound{Type: channel.TypeText, Text: "hallo"})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, texts.Greeting, out[0].Text)
	assert.Equal(t, texts.AskConsent, out[1].Text)

	rec, err := store.Load(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, string(dialog.StateAskConsent), rec.State)
}

func TestHandleInboundMembershipEventGreets(t *testing.T) {
	svc, store, _ := newTestService(t, channel.NewTextPresenter())
	ctx := context.Background()

	out, err := svc.HandleInbound(ctx, "c1", channel.Inbound{Type: channel.TypeMembershipEvent})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, texts.Greeting, out[0].Text)

	// A later membership event must not disturb the running dialog.
	out, err = svc.HandleInbound(ctx, "c1", channel.Inbound{Type: channel.TypeMembershipEvent})
	require.NoError(t, err)
	assert.Empty(t, out)

	rec, err := store.Load(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, string(dialog.StateAskConsent), rec.State)
}

func TestChannelRejectionPreservesState(t *testing.T) {
	svc, store, _ := newTestService(t, channel.NewTextPresenter())
	ctx := context.Background()

	_, err := svc.HandleInbound(ctx, "c1", channel.Inbound{Type: channel.TypeText, Text: "hallo"})
	require.NoError(t, err)

	// Audio on the text channel is refused; the session stays where it was.
	out, err := svc.HandleInbound(ctx, "c1", channel.Inbound{
		Type:  channel.TypeAudio,
		Audio: &channel.Attachment{MimeType: "audio/ogg", Data: []byte{1}},
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, texts.TextOnly, out[0].Text)

	rec, err := store.Load(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, string(dialog.StateAskConsent), rec.State)
}

type failingStore struct {
	*session.MemoryStore
	failSave bool
}

func (s *failingStore) Save(ctx context.Context, id string, rec *session.Record) error {
	if s.failSave {
		return errors.New("store down")
	}
	return s.MemoryStore.Save(ctx, id, rec)
}

func TestSaveFailureFailsTurnWithoutPartialState(t *testing.T) {
	store := &failingStore{MemoryStore: session.NewMemoryStore()}
	repo := customer.NewMemoryRepository()
	machine := dialog.NewMachine(repo, nil, zap.NewNop())
	svc := NewService(store, session.NewLocks(), machine, channel.NewTextPresenter(), zap.NewNop())
	ctx := context.Background()

	store.failSave = true
	_, err := svc.HandleInbound(ctx, "c1", channel.Inbound{Type: channel.TypeText, Text: "hallo"})
	require.Error(t, err)

	// Nothing was saved; the next turn re-runs the greeting cleanly.
	store.failSave = false
	out, err := svc.HandleInbound(ctx, "c1", channel.Inbound{Type: channel.TypeText, Text: "hallo"})
	require.NoError(t, err)
	assert.Equal(t, texts.Greeting, out[0].Text)
}

func TestWebhookHappyTurn(t *testing.T) {
	svc, _, _ := newTestService(t, channel.NewTextPresenter())
	h := NewHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	RegisterRoutes(r, h)

	body, _ := json.Marshal(map[string]any{"type": "text", "text": "hallo"})
	req := httptest.NewRequest(http.MethodPost, "/webchat/message", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var out outboundPayload
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	assert.NotEmpty(t, out.ConversationID, "a conversation id is minted when the client sends none")
	require.Len(t, out.Replies, 2)
	assert.Equal(t, texts.Greeting, out.Replies[0].Text)

	// Second turn continues the same conversation.
	body, _ = json.Marshal(map[string]any{
		"conversation_id": out.ConversationID, "type": "text", "text": "ja",
	})
	req = httptest.NewRequest(http.MethodPost, "/webchat/message", bytes.NewReader(body))
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var next outboundPayload
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &next))
	assert.Equal(t, out.ConversationID, next.ConversationID)
	require.Len(t, next.Replies, 1)
	assert.Equal(t, texts.AskGender, next.Replies[0].Text)
}

func TestWebhookRejectsBadPayloads(t *testing.T) {
	svc, _, _ := newTestService(t, channel.NewTextPresenter())
	h := NewHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	RegisterRoutes(r, h)

	for _, body := range []string{
		`not json`,
		`{"type":"text"}`,
		`{"type":"audio"}`,
		`{"type":"audio","audio":{"mime_type":"audio/ogg","data":"%%%"}}`,
		`{"type":"carrier_pigeon","text":"hallo"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/webchat/message", bytes.NewReader([]byte(body)))
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code, "body %s", body)
	}
}

func TestEndToEndRegistrationOverService(t *testing.T) {
	svc, _, repo := newTestService(t, channel.NewTextPresenter())
	ctx := context.Background()

	say := func(text string) []channel.Outbound {
		out, err := svc.HandleInbound(ctx, "c1", channel.Inbound{Type: channel.TypeText, Text: text})
		require.NoError(t, err)
		return out
	}

	say("hallo")
	say("ja") // consent
	for _, answer := range []string{
		"männlich", "kein", "Max", "Mustermann", "15.03.1990",
		"max@test.de", "030 1234567", "Musterstraße", "5", "kein",
		"12345", "Berlin", "Deutschland",
	} {
		say(answer)
		say("ja")
	}
	out := say("ja") // final confirmation

	require.Len(t, out, 1)
	assert.Equal(t, texts.RegistrationDone, out[0].Text)
	regs := repo.Registrations()
	require.Len(t, regs, 1)
	assert.Equal(t, "max@test.de", regs[0].Email)
	assert.Equal(t, "+49301234567", regs[0].Telephone)
}
