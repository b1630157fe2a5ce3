package bot

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kundenwerk/regbot/internal/channel"
)

// Handler exposes the web-chat channel over HTTP.
type Handler struct {
	svc *Service
	log *zap.Logger
}

func NewHandler(svc *Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

type inboundPayload struct {
	ConversationID string `json:"conversation_id"`
	Type           string `json:"type"`
	Text           string `json:"text"`
	Audio          *struct {
		MimeType string `json:"mime_type"`
		Data     string `json:"data"` // base64
	} `json:"audio"`
}

type replyPayload struct {
	Text     string `json:"text"`
	Audio    string `json:"audio,omitempty"` // base64
	MimeType string `json:"mime_type,omitempty"`
}

type outboundPayload struct {
	ConversationID string         `json:"conversation_id"`
	Replies        []replyPayload `json:"replies"`
}

// HandleMessage is the inbound web-chat webhook.
func (h *Handler) HandleMessage(w http.ResponseWriter, r *http.Request) {
	var payload inboundPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	in, ok := payload.toInbound()
	if !ok {
		http.Error(w, "invalid message", http.StatusBadRequest)
		return
	}

	conversationID := payload.ConversationID
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	replies, err := h.svc.HandleInbound(r.Context(), conversationID, in)
	if err != nil {
		h.log.Error("turn failed", zap.String("conversation", conversationID), zap.Error(err))
		http.Error(w, "processing error", http.StatusInternalServerError)
		return
	}

	out := outboundPayload{
		ConversationID: conversationID,
		Replies:        make([]replyPayload, 0, len(replies)),
	}
	for _, reply := range replies {
		rp := replyPayload{Text: reply.Text}
		if len(reply.Audio) > 0 {
			rp.Audio = base64.StdEncoding.EncodeToString(reply.Audio)
			rp.MimeType = reply.MimeType
		}
		out.Replies = append(out.Replies, rp)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

func (p inboundPayload) toInbound() (channel.Inbound, bool) {
	switch channel.InboundType(p.Type) {
	case channel.TypeText:
		if p.Text == "" {
			return channel.Inbound{}, false
		}
		return channel.Inbound{Type: channel.TypeText, Text: p.Text}, true
	case channel.TypeAudio:
		if p.Audio == nil {
			return channel.Inbound{}, false
		}
		data, err := base64.StdEncoding.DecodeString(p.Audio.Data)
		if err != nil || len(data) == 0 {
			return channel.Inbound{}, false
		}
		return channel.Inbound{
			Type:  channel.TypeAudio,
			Audio: &channel.Attachment{MimeType: p.Audio.MimeType, Data: data},
		}, true
	case channel.TypeMembershipEvent:
		return channel.Inbound{Type: channel.TypeMembershipEvent}, true
	}
	return channel.Inbound{}, false
}
