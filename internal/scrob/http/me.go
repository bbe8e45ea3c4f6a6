package http

import (
	"net/http"

	"github.com/scrob-fm/scrob/pkg/httpx"
)

// MeResponse identifies the authenticated user.
type MeResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

type MeHandler struct{}

// ServeHTTP returns the identity behind the presented token.
//
//	@Summary		Get the authenticated user
//	@Description	Returns the account the presented token belongs to. Useful for clients validating a stored token.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	MeResponse		"Authenticated user"
//	@Failure		401	{object}	httpx.ErrorBody	"Missing, malformed or revoked token"
//	@Router			/v1/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p, ok := httpx.PrincipalFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, MeResponse{
		ID:       p.ID,
		Username: p.Username,
		IsAdmin:  p.IsAdmin,
	})
}
