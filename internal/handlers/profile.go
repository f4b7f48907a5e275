package handlers

import (
	"errors"
	"net/http"

	"reel-backend/internal/common"
	"reel-backend/internal/middleware"
	"reel-backend/internal/service"

	"go.uber.org/zap"
)

type ProfileHandler struct {
	profiles *service.ProfileService
	logger   *zap.Logger
}

func NewProfileHandler(profiles *service.ProfileService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		profiles: profiles,
		logger:   logger,
	}
}

type CreateProfileRequest struct {
	// Bio is the biography the browser still holds, used to recover a
	// profile that has no record on the server.
	Bio string `json:"bio"`
}

// --- POST /api/create-profile ---

func (h *ProfileHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var req CreateProfileRequest
	if err := decodeOptionalJSON(r, &req); err != nil {
		writeProfileError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	identity, err := h.profiles.ResolveIdentity(r.Context(), middleware.GetIdentityID(r.Context()))
	if err != nil {
		h.writeReconcileError(w, err)
		return
	}

	result, err := h.profiles.Reconcile(r.Context(), identity, req.Bio)
	if err != nil {
		h.writeReconcileError(w, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	writeJSON(w, status, map[string]interface{}{
		"name":  result.Profile.Name,
		"bio":   result.Profile.Bio,
		"error": false,
	})
}

func (h *ProfileHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeProfileError(w, http.StatusMethodNotAllowed, "Method not allowed")
}

func (h *ProfileHandler) writeReconcileError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrUnauthorized):
		writeProfileError(w, http.StatusBadRequest, "No user found")
	case errors.Is(err, common.ErrInvalidInput):
		writeProfileError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("profile reconciliation failed", zap.Error(err))
		writeProfileError(w, http.StatusBadRequest, "failed to create profile")
	}
}

func writeProfileError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"error":   true,
		"message": message,
	})
}
