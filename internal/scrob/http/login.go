package http

import (
	"encoding/json"
	"net/http"

	"github.com/scrob-fm/scrob/internal/scrob/service"
	"github.com/scrob-fm/scrob/pkg/httpx"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the freshly minted session token. This is the
// only response that ever contains the token value.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

type LoginHandler struct {
	TokenService *service.TokenService
}

// ServeHTTP handles password login.
//
//	@Summary		Log in with username and password
//	@Description	Verifies a username/password pair and issues a fresh session token.
//	@Description	Every login mints a new token; existing tokens stay valid until revoked.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest		true	"Credentials"
//	@Success		200		{object}	LoginResponse		"Session token (only shown once)"
//	@Failure		400		{object}	httpx.ErrorBody		"Malformed request body"
//	@Failure		401		{object}	httpx.ErrorBody		"Invalid username or password"
//	@Failure		500		{object}	httpx.ErrorBody		"Internal server error"
//	@Router			/v1/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	u, t, err := h.TokenService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, LoginResponse{
		Token:    t.Value,
		Username: u.Username,
		IsAdmin:  u.IsAdmin,
	})
}
