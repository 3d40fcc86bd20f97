package api

import "net/http"

type verifyResponse struct {
	Message string `json:"message"`
	User    string `json:"user"`
}

// verify echoes the identity the gate already resolved. Its only purpose is
// letting a client probe whether its token is still good, with no side
// effects.
func verify(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, msgTokenInvalid)
		return
	}

	writeJSON(w, http.StatusOK, verifyResponse{
		Message: "Token is valid",
		User:    identity.Username,
	})
}
