package handlers

import (
	"errors"
	"net/http"

	"reel-backend/internal/common"
	"reel-backend/internal/middleware"
	"reel-backend/internal/onboarding"
	"reel-backend/internal/service"

	"go.uber.org/zap"
)

// UserHandler serves the dashboard of a signed-in user.
type UserHandler struct {
	profiles *service.ProfileService
	logger   *zap.Logger
}

func NewUserHandler(profiles *service.ProfileService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		profiles: profiles,
		logger:   logger,
	}
}

type SaveBioRequest struct {
	Bio *string `json:"bio"`
}

type DashboardResponse struct {
	Snapshot  onboarding.Snapshot  `json:"snapshot"`
	Checklist onboarding.Checklist `json:"checklist"`
}

// --- GET /user/status ---

func (h *UserHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	snap, err := h.profiles.Snapshot(r.Context(), middleware.GetIdentityID(r.Context()))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeDashboard(w, snap)
}

// --- PUT /user/bio ---

func (h *UserHandler) SaveBio(w http.ResponseWriter, r *http.Request) {
	var req SaveBioRequest
	if err := decodeOptionalJSON(r, &req); err != nil || req.Bio == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bio is required"})
		return
	}

	snap, err := h.profiles.SaveBio(r.Context(), middleware.GetIdentityID(r.Context()), *req.Bio)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeDashboard(w, snap)
}

// --- PATCH /user/first-message ---

func (h *UserHandler) CompleteFirstMessage(w http.ResponseWriter, r *http.Request) {
	snap, err := h.profiles.MarkFirstMessageSent(r.Context(), middleware.GetIdentityID(r.Context()))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeDashboard(w, snap)
}

func writeDashboard(w http.ResponseWriter, snap onboarding.Snapshot) {
	writeJSON(w, http.StatusOK, DashboardResponse{
		Snapshot:  snap,
		Checklist: onboarding.Compute(&snap),
	})
}

func (h *UserHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "profile not found"})
	case errors.Is(err, common.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		h.logger.Error("dashboard request failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
