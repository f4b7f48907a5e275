package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/mail"
	"net/url"
	"strings"
	"time"

	"reel-backend/internal/mailer"
	"reel-backend/internal/middleware"
	"reel-backend/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	signInTokenTTL   = 15 * time.Minute
	sessionTTL       = 30 * 24 * time.Hour
	signInRateWindow = 10 * time.Minute
	signInRateLimit  = 5
)

type AuthTokenStore interface {
	Create(ctx context.Context, token *models.AuthToken) error
	Consume(ctx context.Context, token string) (*models.AuthToken, error)
	CountRecentByEmail(ctx context.Context, email string, duration time.Duration) (int64, error)
}

type IdentityRegistry interface {
	FindOrCreate(ctx context.Context, email, firstName, lastName string) (*models.Identity, error)
}

type AuthHandler struct {
	tokens     AuthTokenStore
	identities IdentityRegistry
	mailer     mailer.Mailer
	jwtSecret  string
	appURL     string
	logger     *zap.Logger
}

func NewAuthHandler(
	tokens AuthTokenStore,
	identities IdentityRegistry,
	m mailer.Mailer,
	jwtSecret, appURL string,
	logger *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		tokens:     tokens,
		identities: identities,
		mailer:     m,
		jwtSecret:  jwtSecret,
		appURL:     strings.TrimRight(appURL, "/"),
		logger:     logger,
	}
}

// --- Request / Response types ---

// RequestLoginRequest serves both screens: signup sends the names, login
// sends only the email.
type RequestLoginRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type VerifyResponse struct {
	Token    string           `json:"token"`
	Identity *models.Identity `json:"identity"`
}

// --- POST /auth/request ---

func (h *AuthHandler) RequestLogin(w http.ResponseWriter, r *http.Request) {
	var req RequestLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	addr, err := mail.ParseAddress(strings.TrimSpace(req.Email))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "a valid email is required"})
		return
	}
	email := strings.ToLower(addr.Address)

	count, err := h.tokens.CountRecentByEmail(r.Context(), email, signInRateWindow)
	if err != nil {
		h.logger.Error("checking sign-in rate limit", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if count >= signInRateLimit {
		writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "too many login requests, please try again later"})
		return
	}

	authToken := &models.AuthToken{
		Email:     email,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Token:     uuid.New().String(),
		ExpiresAt: time.Now().Add(signInTokenTTL),
	}
	if err := h.tokens.Create(r.Context(), authToken); err != nil {
		h.logger.Error("creating sign-in token", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create login token"})
		return
	}

	link := fmt.Sprintf("%s/auth?token=%s", h.appURL, url.QueryEscape(authToken.Token))
	if err := h.mailer.SendSignInLink(r.Context(), email, link); err != nil {
		// The token exists; delivery is best effort.
		h.logger.Error("sending sign-in email", zap.String("to", email), zap.Error(err))
		writeJSON(w, http.StatusOK, map[string]string{
			"message": "login link generated (email delivery may be delayed)",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "login link sent to your email",
	})
}

// --- GET /auth/verify ---

func (h *AuthHandler) VerifyToken(w http.ResponseWriter, r *http.Request) {
	tokenValue := r.URL.Query().Get("token")
	if tokenValue == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "token is required"})
		return
	}

	authToken, err := h.tokens.Consume(r.Context(), tokenValue)
	if err != nil {
		h.logger.Error("consuming sign-in token", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if authToken == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid or already used token"})
		return
	}
	if authToken.IsExpired() {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "token has expired"})
		return
	}

	identity, err := h.identities.FindOrCreate(r.Context(), authToken.Email, authToken.FirstName, authToken.LastName)
	if err != nil {
		h.logger.Error("finding or creating identity", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	session, err := middleware.NewSessionToken(h.jwtSecret, identity.ID, identity.Email, sessionTTL)
	if err != nil {
		h.logger.Error("signing session token", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, VerifyResponse{
		Token:    session,
		Identity: identity,
	})
}
