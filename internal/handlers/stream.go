package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/clipstream/backend/internal/logging"
	"github.com/clipstream/backend/internal/repositories"
)

// embedURLTemplate builds the provider embed URL returned to clients. The raw
// provider id only ever appears inside this URL, never as a response field.
const embedURLTemplate = "https://www.youtube.com/embed/%s?autoplay=0&controls=1"

// StreamHandler resolves a video's stream URL for callers holding both a valid
// session token (gate-enforced) and a playback token scoped to that video.
type StreamHandler struct {
	Videos   VideoStore
	Playback PlaybackTokens
}

// Resolve handles GET /video/{id}/stream requests.
func (h StreamHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	ctx, span := logging.StartSpan(r.Context(), "stream.resolve")
	defer span.End()

	logger := logging.FromContext(ctx)
	videoID := r.PathValue("id")

	token := r.URL.Query().Get("token")
	if token == "" {
		logger.Warn("stream request missing playback token", "videoId", videoID)
		respondError(ctx, w, http.StatusBadRequest, "Playback token is required", "missing_playback_token")
		return
	}

	tokenVideoID, err := h.Playback.Verify(token)
	if err != nil {
		logger.Warn("playback token rejected", "error", err, "videoId", videoID)
		respondError(ctx, w, http.StatusUnauthorized, "Invalid or expired playback token", "invalid_playback_token")
		return
	}

	// The token signature does not reference the request URL; this comparison
	// is what binds a playback token to exactly one video.
	if tokenVideoID != videoID {
		logger.Warn("playback token video mismatch", "tokenVideoId", tokenVideoID, "videoId", videoID)
		respondError(ctx, w, http.StatusForbidden, "Playback token was issued for a different video", "token_video_mismatch")
		return
	}

	video, err := h.Videos.FindByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.Warn("stream video not found", "videoId", videoID)
			respondError(ctx, w, http.StatusNotFound, "Video not found", "not_found")
			return
		}
		logger.Error("stream video lookup failed", "error", err, "videoId", videoID)
		respondError(ctx, w, http.StatusInternalServerError, "Internal server error", "internal_error")
		return
	}

	if !video.Active {
		logger.Warn("stream video inactive", "videoId", videoID)
		respondError(ctx, w, http.StatusForbidden, "Video is not available", "video_unavailable")
		return
	}

	respondJSON(ctx, w, http.StatusOK, streamResponse{
		StreamURL: fmt.Sprintf(embedURLTemplate, video.ProviderID),
		VideoID:   video.ID,
		Title:     video.Title,
	})
}

type streamResponse struct {
	StreamURL string `json:"stream_url"`
	VideoID   string `json:"video_id"`
	Title     string `json:"title"`
}
