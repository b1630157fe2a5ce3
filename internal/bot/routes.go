package bot

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/webchat/message", h.HandleMessage)
}

// RegisterVoiceRoutes mounts a voice-presenter handler on its own path so
// the same binary can serve both channels.
func RegisterVoiceRoutes(r chi.Router, h *Handler) {
	r.Post("/voicecall/message", h.HandleMessage)
}
