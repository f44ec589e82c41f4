package handlers

import (
	"net/http"

	"github.com/clipstream/backend/internal/logging"
)

// dashboardVideoLimit caps the curated catalog shown on the dashboard. This is
// a product decision for the demo catalog, not a pagination cursor.
const dashboardVideoLimit = 2

// DashboardHandler lists the curated videos together with a fresh playback
// token per entry. It only requires that the caller is authenticated; the
// listing itself is the same for every user.
type DashboardHandler struct {
	Videos   VideoStore
	Playback PlaybackTokens
}

// List handles GET /dashboard requests.
func (h DashboardHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, span := logging.StartSpan(r.Context(), "dashboard.list")
	defer span.End()

	logger := logging.FromContext(ctx)

	videos, err := h.Videos.FindActive(ctx, dashboardVideoLimit)
	if err != nil {
		logger.Error("failed to load active videos", "error", err)
		respondError(ctx, w, http.StatusInternalServerError, "Internal server error", "internal_error")
		return
	}

	entries := make([]dashboardVideo, 0, len(videos))
	for _, video := range videos {
		// One single-purpose token per video; tokens are never shared
		// across catalog entries.
		token, err := h.Playback.Issue(video.ID)
		if err != nil {
			logger.Error("failed to issue playback token", "error", err, "videoId", video.ID)
			respondError(ctx, w, http.StatusInternalServerError, "Internal server error", "internal_error")
			return
		}

		entries = append(entries, dashboardVideo{
			ID:            video.ID,
			Title:         video.Title,
			Description:   video.Description,
			ThumbnailURL:  video.ThumbnailURL,
			PlaybackToken: token,
		})
	}

	respondJSON(ctx, w, http.StatusOK, dashboardResponse{Videos: entries})
}

type dashboardVideo struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	ThumbnailURL  string `json:"thumbnail_url"`
	PlaybackToken string `json:"playback_token"`
}

type dashboardResponse struct {
	Videos []dashboardVideo `json:"videos"`
}
