package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/chatterd/chatterd/internal/auth"
)

// Gate failure messages. Wording is part of the API contract; clients match
// on these strings.
const (
	msgTokenMissing = "Token is missing!"
	msgTokenInvalid = "Token is invalid!"
)

// bearerPrefix is the optional literal preceding the token in the
// Authorization header. The match is case-sensitive and exact; a raw token
// without the prefix is also accepted.
const bearerPrefix = "Bearer "

type identityKey struct{}

var ctxKeyIdentity = identityKey{}

// identityFromContext retrieves the authenticated identity placed in the
// context by requireToken.
func identityFromContext(ctx context.Context) (auth.Identity, bool) {
	id, ok := ctx.Value(ctxKeyIdentity).(auth.Identity)
	return id, ok
}

// requireToken gates a handler behind token validation. It extracts the
// Authorization header, validates the token through the codec, and injects
// the resolved identity into the request context. The gate holds no state of
// its own and composes in front of any handler.
func requireToken(codec *auth.Codec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeMessage(w, http.StatusUnauthorized, msgTokenMissing)
				return
			}

			token := strings.TrimPrefix(header, bearerPrefix)

			identity, err := codec.Validate(token)
			if err != nil {
				writeMessage(w, http.StatusUnauthorized, msgTokenInvalid)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyIdentity, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
