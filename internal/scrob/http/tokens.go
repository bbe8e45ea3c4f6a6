package http

import (
	"encoding/json"
	"net/http"

	"github.com/scrob-fm/scrob/internal/scrob/service"
	"github.com/scrob-fm/scrob/pkg/httpx"
)

type CreateTokenRequest struct {
	Label string `json:"label"`
}

// CreateTokenResponse is the only place a non-session token value is
// ever exposed.
type CreateTokenResponse struct {
	ID        string `json:"id"`
	Token     string `json:"token"`
	Label     string `json:"label,omitempty"`
	CreatedAt int64  `json:"created_at"`
}

type TokensHandler struct {
	TokenService *service.TokenService
}

// HandleCreate mints a long-lived API token for the authenticated user.
//
//	@Summary		Create an API token
//	@Description	Mints a new token for the authenticated user, typically for a scrobbling client.
//	@Description	The token value appears only in this response and is never retrievable again.
//	@Tags			Tokens
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateTokenRequest	false	"Optional label"
//	@Success		201		{object}	CreateTokenResponse	"Created token (value shown once)"
//	@Failure		400		{object}	httpx.ErrorBody		"Malformed request body or label"
//	@Failure		401		{object}	httpx.ErrorBody		"Missing, malformed or revoked token"
//	@Failure		500		{object}	httpx.ErrorBody		"Internal server error"
//	@Router			/v1/tokens [post].
func (h *TokensHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	p, ok := httpx.PrincipalFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req CreateTokenRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "request body must be valid JSON")
			return
		}
	}

	t, err := h.TokenService.Issue(r.Context(), p.ID, req.Label)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, CreateTokenResponse{
		ID:        t.ID,
		Token:     t.Value,
		Label:     t.Label,
		CreatedAt: t.CreatedAt,
	})
}

// HandleList lists the authenticated user's tokens, newest first.
//
//	@Summary		List API tokens
//	@Description	Returns all of the authenticated user's tokens including revoked ones. Token values are never included.
//	@Tags			Tokens
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		TokenResponse	"Tokens, newest first"
//	@Failure		401	{object}	httpx.ErrorBody	"Missing, malformed or revoked token"
//	@Failure		500	{object}	httpx.ErrorBody	"Internal server error"
//	@Router			/v1/tokens [get].
func (h *TokensHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	p, ok := httpx.PrincipalFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	tokens, err := h.TokenService.List(r.Context(), p.ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]TokenResponse, len(tokens))
	for i, t := range tokens {
		out[i] = toTokenResponse(t)
	}

	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleRevoke revokes one of the authenticated user's tokens.
//
//	@Summary		Revoke an API token
//	@Description	Marks the token as revoked. In-flight requests already authenticated with it complete; later requests fail.
//	@Description	Revoking an already-revoked token succeeds.
//	@Tags			Tokens
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Token ID"
//	@Success		204	"Token revoked"
//	@Failure		401	{object}	httpx.ErrorBody	"Missing, malformed or revoked token"
//	@Failure		403	{object}	httpx.ErrorBody	"Token belongs to another user"
//	@Failure		404	{object}	httpx.ErrorBody	"Unknown token ID"
//	@Failure		500	{object}	httpx.ErrorBody	"Internal server error"
//	@Router			/v1/tokens/{id} [delete].
func (h *TokensHandler) HandleRevoke(w http.ResponseWriter, r *http.Request) {
	p, ok := httpx.PrincipalFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	tokenID := r.PathValue("id")
	if tokenID == "" {
		httpx.WriteError(w, http.StatusBadRequest, "token id is required")
		return
	}

	if err := h.TokenService.Revoke(r.Context(), p.ID, tokenID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
