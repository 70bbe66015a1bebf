package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ristorante-africa/ristorante/config"
	"github.com/ristorante-africa/ristorante/middlewares"
)

func setupAdminAuth(t *testing.T) {
	t.Helper()
	config.SecretKey = []byte("test-secret")
	hash, err := bcrypt.GenerateFromPassword([]byte("open-sesame"), bcrypt.MinCost)
	require.NoError(t, err)
	config.AdminPasswordHash = hash
}

func login(t *testing.T, password string) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(map[string]string{"password": password})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/auth", bytes.NewReader(raw))
	w := httptest.NewRecorder()
	AdminLogin(w, req)
	return w
}

func TestAdminLogin_IssuesUsableToken(t *testing.T) {
	setupAdminAuth(t)

	w := login(t, "open-sesame")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body["token"])

	// the minted token must pass the middleware's check
	req := httptest.NewRequest(http.MethodGet, "/api/reservations", nil)
	req.Header.Set("Authorization", "Bearer "+body["token"])
	assert.True(t, middlewares.IsAdminRequest(req))
}

func TestAdminLogin_WrongPassword(t *testing.T) {
	setupAdminAuth(t)

	w := login(t, "guess")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminLogin_MissingPassword(t *testing.T) {
	setupAdminAuth(t)

	w := login(t, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminMiddleware_RejectsBadTokens(t *testing.T) {
	setupAdminAuth(t)

	handler := middlewares.AdminMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, header := range []string{"", "Bearer not-a-token", "Basic abc"} {
		req := httptest.NewRequest(http.MethodGet, "/api/reservations", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}
}

func TestVerifyAdmin(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/admin/auth", nil)
	w := httptest.NewRecorder()
	VerifyAdmin(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]bool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body["authenticated"])
}
