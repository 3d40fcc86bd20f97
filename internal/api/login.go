package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/chatterd/chatterd/internal/auth"
)

// maxBodySize caps request bodies. Login and chat payloads are tiny; anything
// near this limit is abuse.
const maxBodySize = 1 << 20

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginUser struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

type loginResponse struct {
	Message string    `json:"message"`
	Token   string    `json:"token"`
	User    loginUser `json:"user"`
}

// loginHandler authenticates a credential pair and returns a session token.
type loginHandler struct {
	sessions *auth.Service
	logger   *slog.Logger
}

func (h *loginHandler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Missing username or password")
		return
	}

	result, err := h.sessions.Login(req.Username, req.Password)
	switch {
	case errors.Is(err, auth.ErrMissingCredentials):
		writeMessage(w, http.StatusBadRequest, "Missing username or password")
		return
	case errors.Is(err, auth.ErrInvalidCredentials):
		h.logger.Info("login rejected",
			"username", req.Username,
			"request_id", requestIDFromContext(r.Context()),
		)
		writeMessage(w, http.StatusUnauthorized, "Invalid username or password")
		return
	case err != nil:
		h.logger.Error("login failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.logger.Info("login successful",
		"username", result.Username,
		"request_id", requestIDFromContext(r.Context()),
	)

	writeJSON(w, http.StatusOK, loginResponse{
		Message: "Login successful",
		Token:   result.Token,
		User:    loginUser{Username: result.Username, Name: result.Name},
	})
}
