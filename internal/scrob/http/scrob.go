package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/scrob-fm/scrob/internal/scrob/service"
	"github.com/scrob-fm/scrob/pkg/httpx"
)

// ScrobEntryRequest is one listen as submitted by a client.
type ScrobEntryRequest struct {
	Artist    string `json:"artist"`
	Track     string `json:"track"`
	Album     string `json:"album"`
	Duration  *int64 `json:"duration"`
	Timestamp int64  `json:"timestamp"`
}

func (e ScrobEntryRequest) toEntry() service.ScrobEntry {
	return service.ScrobEntry{
		Artist:    e.Artist,
		Track:     e.Track,
		Album:     e.Album,
		Duration:  e.Duration,
		Timestamp: e.Timestamp,
	}
}

type ScrobHandler struct {
	IngestService *service.IngestService
}

// ServeHTTP records a batch of listens.
//
//	@Summary		Submit listens
//	@Description	Records one or more listens for the authenticated user. The body is either
//	@Description	a single entry object or an array of entries. Batches are all-or-nothing:
//	@Description	one invalid entry rejects the whole batch and nothing is written.
//	@Tags			Scrobs
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		[]ScrobEntryRequest	true	"Entries to record"
//	@Success		201		{array}		ScrobResponse		"Recorded listens in submission order"
//	@Failure		400		{object}	httpx.ErrorBody		"Malformed body, invalid entry or over-limit batch"
//	@Failure		401		{object}	httpx.ErrorBody		"Missing, malformed or revoked token"
//	@Failure		500		{object}	httpx.ErrorBody		"Internal server error"
//	@Router			/v1/scrob [post].
func (h *ScrobHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p, ok := httpx.PrincipalFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	entries, err := decodeEntries(r.Body)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "request body must be a JSON entry or array of entries")
		return
	}

	scrobs, err := h.IngestService.SubmitBatch(r.Context(), principalUser(p), entries)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]ScrobResponse, len(scrobs))
	for i, s := range scrobs {
		out[i] = toScrobResponse(s)
	}

	httpx.WriteJSON(w, http.StatusCreated, out)
}

// decodeEntries accepts both a bare entry object and an array of
// entries, so single-track clients don't need to wrap their payload.
func decodeEntries(body io.Reader) ([]service.ScrobEntry, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var reqs []ScrobEntryRequest
		if err := json.Unmarshal(raw, &reqs); err != nil {
			return nil, err
		}
		entries := make([]service.ScrobEntry, len(reqs))
		for i, req := range reqs {
			entries[i] = req.toEntry()
		}
		return entries, nil
	}

	var req ScrobEntryRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, err
	}
	return []service.ScrobEntry{req.toEntry()}, nil
}
