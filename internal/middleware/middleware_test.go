package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const testSecret = "test-secret-key-for-testing-only"

func echoIdentity() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(GetIdentityID(r.Context())))
	})
}

func TestSessionToken_RoundTrip(t *testing.T) {
	token, err := NewSessionToken(testSecret, "u1", "d@x.com", time.Hour)
	require.NoError(t, err)

	id, err := ParseSessionToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "u1", id)
}

func TestParseSessionToken_Rejects(t *testing.T) {
	expired, err := NewSessionToken(testSecret, "u1", "d@x.com", -time.Minute)
	require.NoError(t, err)
	_, err = ParseSessionToken(testSecret, expired)
	assert.Error(t, err, "expired")

	other, err := NewSessionToken("another-secret", "u1", "d@x.com", time.Hour)
	require.NoError(t, err)
	_, err = ParseSessionToken(testSecret, other)
	assert.Error(t, err, "wrong secret")

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u1"}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = ParseSessionToken(testSecret, noExp)
	assert.Error(t, err, "missing exp")

	_, err = ParseSessionToken(testSecret, "garbage")
	assert.Error(t, err)
}

func TestAuthenticate(t *testing.T) {
	token, err := NewSessionToken(testSecret, "u1", "d@x.com", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"valid bearer", "Bearer " + token, "u1"},
		{"lowercase scheme", "bearer " + token, "u1"},
		{"missing header", "", ""},
		{"bad format", "InvalidFormat", ""},
		{"invalid token", "Bearer invalid_token_xyz", ""},
	}

	h := Authenticate(testSecret)(echoIdentity())
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tc.want, w.Body.String())
		})
	}
}

func TestRequireAuth(t *testing.T) {
	h := Authenticate(testSecret)(RequireAuth(echoIdentity()))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"unauthorized"}`, w.Body.String())

	token, err := NewSessionToken(testSecret, "u1", "d@x.com", time.Hour)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", w.Body.String())
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h := RequestLogger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/gen", nil))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "POST", fields["method"])
	assert.Equal(t, "/api/gen", fields["path"])
	assert.EqualValues(t, http.StatusTeapot, fields["status"])
	assert.EqualValues(t, 15, fields["bytes"])
}
