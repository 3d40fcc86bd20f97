package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/chatterd/chatterd/internal/bot"
)

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
}

// chatHandler feeds authenticated messages to the reply generator.
type chatHandler struct {
	responder *bot.Responder
	logger    *slog.Logger
	now       func() time.Time
}

func (h *chatHandler) send(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r.Context())
	if !ok {
		// Route is registered behind requireToken; reaching here without an
		// identity means the gate was bypassed.
		writeMessage(w, http.StatusUnauthorized, msgTokenInvalid)
		return
	}

	var req chatRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "No message provided")
		return
	}
	if req.Message == "" {
		writeMessage(w, http.StatusBadRequest, "No message provided")
		return
	}

	name := identity.Name
	if name == "" {
		name = identity.Username
	}

	reply := h.responder.Reply(name, req.Message)

	h.logger.Debug("chat reply",
		"username", identity.Username,
		"request_id", requestIDFromContext(r.Context()),
	)

	writeJSON(w, http.StatusOK, chatResponse{
		Response:  reply,
		Timestamp: h.now().Format(time.RFC3339),
	})
}
