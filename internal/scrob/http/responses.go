package http

import (
	"errors"
	"net/http"

	"github.com/scrob-fm/scrob/internal/scrob/domain"
	"github.com/scrob-fm/scrob/internal/scrob/service"
	"github.com/scrob-fm/scrob/pkg/httpx"
	"github.com/scrob-fm/scrob/pkg/slogx"
)

// Wire representations shared by the handlers. All timestamps are unix
// seconds.

// ScrobResponse is one recorded listen.
type ScrobResponse struct {
	ID        string `json:"id"`
	Artist    string `json:"artist"`
	Track     string `json:"track"`
	Album     string `json:"album,omitempty"`
	Duration  *int64 `json:"duration,omitempty"`
	Timestamp int64  `json:"timestamp"`
	CreatedAt int64  `json:"created_at"`
}

func toScrobResponse(s domain.Scrob) ScrobResponse {
	return ScrobResponse{
		ID:        s.ID,
		Artist:    s.Artist,
		Track:     s.Track,
		Album:     s.Album,
		Duration:  s.Duration,
		Timestamp: s.Timestamp,
		CreatedAt: s.CreatedAt,
	}
}

// TopArtistResponse is one ranking row of the artist leaderboard.
type TopArtistResponse struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// TopTrackResponse is one ranking row of the track leaderboard. Tracks
// are identified by the artist/track pair.
type TopTrackResponse struct {
	Artist string `json:"artist"`
	Track  string `json:"track"`
	Count  int64  `json:"count"`
}

// TokenResponse describes a token without exposing its value.
type TokenResponse struct {
	ID         string `json:"id"`
	Label      string `json:"label,omitempty"`
	CreatedAt  int64  `json:"created_at"`
	LastUsedAt *int64 `json:"last_used_at,omitempty"`
	Revoked    bool   `json:"revoked"`
}

func toTokenResponse(t domain.ApiToken) TokenResponse {
	return TokenResponse{
		ID:         t.ID,
		Label:      t.Label,
		CreatedAt:  t.CreatedAt,
		LastUsedAt: t.LastUsedAt,
		Revoked:    t.Revoked(),
	}
}

// writeServiceError maps service failures onto the wire. Anything not
// explicitly recognized is a 500 with the cause logged, never echoed.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *service.ValidationError
	var berr *service.BatchLimitError

	switch {
	case errors.As(err, &verr):
		httpx.WriteError(w, http.StatusBadRequest, verr.Error())
	case errors.As(err, &berr):
		httpx.WriteError(w, http.StatusBadRequest, berr.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, "invalid username or password")
	case errors.Is(err, service.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrForbidden):
		httpx.WriteError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, service.ErrAlreadyBootstrapped):
		httpx.WriteError(w, http.StatusConflict, "already bootstrapped")
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
