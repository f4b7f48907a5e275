package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"reel-backend/internal/common"
	"reel-backend/internal/draft"

	"go.uber.org/zap"
)

type DraftHandler struct {
	generator draft.Generator
	timeout   time.Duration
	logger    *zap.Logger
}

func NewDraftHandler(generator draft.Generator, timeout time.Duration, logger *zap.Logger) *DraftHandler {
	return &DraftHandler{
		generator: generator,
		timeout:   timeout,
		logger:    logger,
	}
}

type GenerateRequest struct {
	User draft.Sender    `json:"user"`
	Conn draft.Recipient `json:"conn"`
}

// --- POST /api/gen ---

func (h *DraftHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := decodeOptionalJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid user data"})
		return
	}

	ctx := r.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	message, err := h.generator.Draft(ctx, req.User, req.Conn)
	switch {
	case errors.Is(err, common.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid user data"})
		return
	case err != nil:
		h.logger.Error("draft generation failed", zap.String("user_id", req.User.ID), zap.Error(err))
		writeJSON(w, http.StatusBadGateway, map[string]string{"message": "Failed to generate message"})
		return
	}

	h.logger.Info("connection message requested",
		zap.String("user_id", req.User.ID),
		zap.String("user_name", req.User.Name),
		zap.String("conn_name", req.Conn.Name),
	)
	writeJSON(w, http.StatusOK, map[string]string{"message": message})
}

func (h *DraftHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"message": "Method not allowed"})
}
