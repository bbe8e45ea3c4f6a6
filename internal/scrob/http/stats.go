package http

import (
	"net/http"
	"strconv"

	"github.com/scrob-fm/scrob/internal/scrob/service"
	"github.com/scrob-fm/scrob/pkg/httpx"
)

type StatsHandler struct {
	StatsService *service.StatsService
}

// HandleRecent returns the user's listening history, newest first.
//
//	@Summary		List recent listens
//	@Description	Returns the authenticated user's listens ordered by play timestamp
//	@Description	descending. Equal timestamps order by most recently recorded first.
//	@Tags			Stats
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int				false	"Result size, clamped to [1,100]"	default(20)
//	@Success		200		{array}		ScrobResponse	"Recent listens"
//	@Failure		400		{object}	httpx.ErrorBody	"Non-numeric limit"
//	@Failure		401		{object}	httpx.ErrorBody	"Missing, malformed or revoked token"
//	@Failure		500		{object}	httpx.ErrorBody	"Internal server error"
//	@Router			/v1/recent [get].
func (h *StatsHandler) HandleRecent(w http.ResponseWriter, r *http.Request) {
	p, ok := httpx.PrincipalFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit, err := limitParam(r, service.DefaultRecentLimit)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "limit must be an integer")
		return
	}

	scrobs, err := h.StatsService.Recent(r.Context(), principalUser(p), limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]ScrobResponse, len(scrobs))
	for i, s := range scrobs {
		out[i] = toScrobResponse(s)
	}

	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleTopArtists returns the user's artist leaderboard.
//
//	@Summary		Top artists
//	@Description	Ranks the authenticated user's artists by play count over an optional
//	@Description	play-timestamp range. Ties break alphabetically.
//	@Tags			Stats
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int					false	"Result size, clamped to [1,100]"	default(10)
//	@Param			from	query		int					false	"Inclusive lower bound, unix seconds"
//	@Param			to		query		int					false	"Inclusive upper bound, unix seconds"
//	@Success		200		{array}		TopArtistResponse	"Ranked artists"
//	@Failure		400		{object}	httpx.ErrorBody		"Non-numeric limit, from or to"
//	@Failure		401		{object}	httpx.ErrorBody		"Missing, malformed or revoked token"
//	@Failure		500		{object}	httpx.ErrorBody		"Internal server error"
//	@Router			/v1/top/artists [get].
func (h *StatsHandler) HandleTopArtists(w http.ResponseWriter, r *http.Request) {
	p, ok := httpx.PrincipalFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit, from, to, err := rangeParams(r)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	artists, err := h.StatsService.TopArtists(r.Context(), principalUser(p), from, to, limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]TopArtistResponse, len(artists))
	for i, a := range artists {
		out[i] = TopArtistResponse{Name: a.Name, Count: a.Count}
	}

	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleTopTracks returns the user's track leaderboard.
//
//	@Summary		Top tracks
//	@Description	Ranks the authenticated user's tracks by play count over an optional
//	@Description	play-timestamp range. A track is an artist/track pair; album never
//	@Description	participates in grouping. Ties break by artist, then track.
//	@Tags			Stats
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int					false	"Result size, clamped to [1,100]"	default(10)
//	@Param			from	query		int					false	"Inclusive lower bound, unix seconds"
//	@Param			to		query		int					false	"Inclusive upper bound, unix seconds"
//	@Success		200		{array}		TopTrackResponse	"Ranked tracks"
//	@Failure		400		{object}	httpx.ErrorBody		"Non-numeric limit, from or to"
//	@Failure		401		{object}	httpx.ErrorBody		"Missing, malformed or revoked token"
//	@Failure		500		{object}	httpx.ErrorBody		"Internal server error"
//	@Router			/v1/top/tracks [get].
func (h *StatsHandler) HandleTopTracks(w http.ResponseWriter, r *http.Request) {
	p, ok := httpx.PrincipalFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit, from, to, err := rangeParams(r)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	tracks, err := h.StatsService.TopTracks(r.Context(), principalUser(p), from, to, limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]TopTrackResponse, len(tracks))
	for i, t := range tracks {
		out[i] = TopTrackResponse{Artist: t.Artist, Track: t.Track, Count: t.Count}
	}

	httpx.WriteJSON(w, http.StatusOK, out)
}

// limitParam reads ?limit, falling back to def when absent. Range
// clamping happens in the service; only non-numeric input is an error.
func limitParam(r *http.Request, def int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

// rangeParams reads ?limit, ?from and ?to for the ranking endpoints.
func rangeParams(r *http.Request) (limit int, from, to *int64, err error) {
	limit, err = limitParam(r, service.DefaultTopLimit)
	if err != nil {
		return 0, nil, nil, paramError{"limit must be an integer"}
	}

	if raw := r.URL.Query().Get("from"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return 0, nil, nil, paramError{"from must be a unix timestamp"}
		}
		from = &v
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return 0, nil, nil, paramError{"to must be a unix timestamp"}
		}
		to = &v
	}

	return limit, from, to, nil
}

type paramError struct{ msg string }

func (e paramError) Error() string { return e.msg }
