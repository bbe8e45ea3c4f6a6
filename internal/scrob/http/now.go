package http

import (
	"encoding/json"
	"net/http"

	"github.com/scrob-fm/scrob/internal/scrob/service"
	"github.com/scrob-fm/scrob/pkg/httpx"
)

// NowPlayingRequest is a transient now-playing notification.
type NowPlayingRequest struct {
	Artist   string `json:"artist"`
	Track    string `json:"track"`
	Album    string `json:"album"`
	Duration *int64 `json:"duration"`
}

type NowPlayingHandler struct {
	IngestService *service.IngestService
}

// ServeHTTP acknowledges a now-playing notification.
//
//	@Summary		Set the now-playing track
//	@Description	Announces what the authenticated user is listening to right now. The state
//	@Description	is transient: it is replaced by the next notification and never appears in
//	@Description	history or rankings. A listen still needs a separate scrob submission.
//	@Tags			Scrobs
//	@Security		BearerAuth
//	@Accept			json
//	@Success		204	"Acknowledged"
//	@Failure		400	{object}	httpx.ErrorBody	"Malformed body or invalid entry"
//	@Failure		401	{object}	httpx.ErrorBody	"Missing, malformed or revoked token"
//	@Router			/v1/now [post].
func (h *NowPlayingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p, ok := httpx.PrincipalFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req NowPlayingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	err := h.IngestService.NowPlaying(r.Context(), principalUser(p), service.NowPlayingEntry{
		Artist:   req.Artist,
		Track:    req.Track,
		Album:    req.Album,
		Duration: req.Duration,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
