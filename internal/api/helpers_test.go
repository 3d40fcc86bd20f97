package api

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/chatterd/chatterd/internal/auth"
	"github.com/chatterd/chatterd/internal/bot"
)

// testEpoch is the fixed wall clock every API test runs at.
var testEpoch = time.Date(2025, time.November, 12, 10, 30, 0, 0, time.UTC)

const testSecret = "test-secret"

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// testClock is a mutable fixed clock shared by codec, responder, and server.
type testClock struct {
	current time.Time
}

func (c *testClock) Now() time.Time        { return c.current }
func (c *testClock) Shift(d time.Duration) { c.current = c.current.Add(d) }

// newTestServer builds a fully wired server on a fixed clock with the
// default demo credentials.
func newTestServer(t *testing.T) (*Server, *auth.Codec, *testClock) {
	t.Helper()

	clock := &testClock{current: testEpoch}
	codec := auth.NewCodec([]byte(testSecret), 24*time.Hour, clock.Now)
	sessions := auth.NewService(auth.NewStore(auth.DefaultRecords()...), codec)

	srv, err := NewServer(ServerConfig{
		Logger:      discardLogger(),
		Sessions:    sessions,
		Codec:       codec,
		Responder:   bot.New(clock.Now),
		CORSOrigins: []string{"*"},
		Now:         clock.Now,
	})
	require.NoError(t, err)

	return srv, codec, clock
}

// doJSON runs a request with an optional JSON body and bearer token through
// the full handler stack.
func doJSON(t *testing.T, srv *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	r := httptest.NewRequest(method, path, reader)
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		r.Header.Set("Authorization", token)
	}

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, r)
	return w
}

// decodeBody unmarshals a recorded JSON response.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder, into any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), into),
		"response body: %s", w.Body.String())
}

// loginToken performs a login through the HTTP surface and returns the token.
func loginToken(t *testing.T, srv *Server, username, password string) string {
	t.Helper()

	w := doJSON(t, srv, http.MethodPost, "/api/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, "login body: %s", w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	decodeBody(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}
