package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/coursedeck/backend/internal/models"
)

// URLSigner is the interface that wraps the signed URL generation.
type URLSigner interface {
	// Method SignURL exchanges a storage key for a time-limited playable URL.
	//
	// "storageKey" parameter is the path of the media object within the bucket.
	// If some error will occur during signing, the error will be returned together with an empty value.
	SignURL(ctx context.Context, storageKey string) (string, error)
}

// MediaHandler handles media URL-signing HTTP requests
type MediaHandler struct {
	BaseHandler
	signer URLSigner
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(signer URLSigner, logger *zap.Logger) *MediaHandler {
	return &MediaHandler{
		BaseHandler: BaseHandler{logger: logger},
		signer:      signer,
	}
}

// RegisterRoutes registers all media handler routes
func (h *MediaHandler) RegisterRoutes(r chi.Router) {
	r.Route("/media", func(r chi.Router) {
		r.Get("/sign-url", h.SignURL)
	})
}

// SignURL handles GET /api/v1/media/sign-url
// @Summary Sign a media URL
// @Description Exchange an object storage key for a time-limited playable URL
// @Tags media
// @Accept json
// @Produce json
// @Param key query string true "Object storage key"
// @Success 200 {object} models.SignURLResponse
// @Failure 400 {object} map[string]string "Missing or invalid key"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1/media/sign-url [get]
func (h *MediaHandler) SignURL(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		h.respondError(w, http.StatusBadRequest, "key is required")
		return
	}

	// Keys are relative object paths; reject anything that tries to escape
	if strings.HasPrefix(key, "/") || strings.Contains(key, "..") {
		h.respondError(w, http.StatusBadRequest, "invalid key")
		return
	}

	signedURL, err := h.signer.SignURL(r.Context(), key)
	if err != nil {
		h.logger.Error("failed to sign url", zap.Error(err), zap.String("key", key))
		h.respondError(w, http.StatusInternalServerError, "failed to sign url")
		return
	}

	h.respondJSON(w, http.StatusOK, models.SignURLResponse{SignedURL: signedURL})
}
