package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/scrob-fm/scrob/internal/scrob/service"
	"github.com/scrob-fm/scrob/pkg/httpx"
	"github.com/scrob-fm/scrob/pkg/slogx"
)

type BootstrapRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type BootstrapResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
}

// ServeHTTP creates the instance's first admin account.
//
//	@Summary		Bootstrap the instance
//	@Description	Creates the first account, which is always an admin. Available only while
//	@Description	no users exist; permanently closed afterwards. When a bootstrap token is
//	@Description	configured it must be supplied in the X-Bootstrap-Token header.
//	@Tags			Bootstrap
//	@Accept			json
//	@Produce		json
//	@Param			X-Bootstrap-Token	header		string				false	"Bootstrap token, when configured"
//	@Param			request				body		BootstrapRequest	true	"Admin credentials"
//	@Success		201					{object}	BootstrapResponse	"Created admin account"
//	@Failure		400					{object}	httpx.ErrorBody		"Malformed body or invalid username/password"
//	@Failure		403					{object}	httpx.ErrorBody		"Missing or wrong bootstrap token"
//	@Failure		409					{object}	httpx.ErrorBody		"A user already exists"
//	@Failure		500					{object}	httpx.ErrorBody		"Internal server error"
//	@Router			/v1/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())
	l.Info("bootstrap attempt")

	var req BootstrapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	u, err := h.BootstrapService.CreateInitialUser(
		r.Context(),
		r.Header.Get("X-Bootstrap-Token"),
		strings.TrimSpace(req.Username),
		req.Password,
	)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, BootstrapResponse{
		ID:       u.ID,
		Username: u.Username,
		IsAdmin:  u.IsAdmin,
	})
}
