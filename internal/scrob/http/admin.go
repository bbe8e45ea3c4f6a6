package http

import (
	"net/http"

	"github.com/scrob-fm/scrob/internal/scrob/service"
	"github.com/scrob-fm/scrob/pkg/httpx"
)

// AdminUserResponse is one account in the admin user listing.
type AdminUserResponse struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	IsAdmin    bool   `json:"is_admin"`
	CreatedAt  int64  `json:"created_at"`
	ScrobCount int64  `json:"scrob_count"`
}

// AdminUserDetailResponse extends the listing row with the last play
// time, when the account has any listens.
type AdminUserDetailResponse struct {
	AdminUserResponse
	LastScrob *int64 `json:"last_scrob,omitempty"`
}

// AdminStatsResponse reports instance totals and the activity
// leaderboard.
type AdminStatsResponse struct {
	Stats    AdminTotalsResponse    `json:"stats"`
	TopUsers []AdminTopUserResponse `json:"top_users"`
}

// AdminTotalsResponse holds whole-instance counters.
type AdminTotalsResponse struct {
	TotalUsers   int64 `json:"total_users"`
	TotalScrobs  int64 `json:"total_scrobs"`
	TotalArtists int64 `json:"total_artists"`
	TotalTracks  int64 `json:"total_tracks"`
}

// AdminTopUserResponse is one leaderboard row.
type AdminTopUserResponse struct {
	Username   string `json:"username"`
	ScrobCount int64  `json:"scrob_count"`
}

type AdminHandler struct {
	AdminService *service.AdminService
}

// HandleStats reports instance-wide totals.
//
//	@Summary		Instance statistics
//	@Description	Returns whole-instance totals (users, listens, distinct artists and tracks) and the ten most active accounts. Admin only.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	AdminStatsResponse	"Totals and leaderboard"
//	@Failure		401	{object}	httpx.ErrorBody		"Missing, malformed or revoked token"
//	@Failure		403	{object}	httpx.ErrorBody		"Not an admin"
//	@Failure		500	{object}	httpx.ErrorBody		"Internal server error"
//	@Router			/v1/admin/stats [get].
func (h *AdminHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	overview, err := h.AdminService.Stats(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	top := make([]AdminTopUserResponse, len(overview.TopUsers))
	for i, u := range overview.TopUsers {
		top[i] = AdminTopUserResponse{Username: u.Username, ScrobCount: u.Count}
	}

	httpx.WriteJSON(w, http.StatusOK, AdminStatsResponse{
		Stats: AdminTotalsResponse{
			TotalUsers:   overview.Stats.TotalUsers,
			TotalScrobs:  overview.Stats.TotalScrobs,
			TotalArtists: overview.Stats.TotalArtists,
			TotalTracks:  overview.Stats.TotalTracks,
		},
		TopUsers: top,
	})
}

// HandleList lists every account on the instance.
//
//	@Summary		List users
//	@Description	Returns every account with its listen count, ordered by creation time. Admin only.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		AdminUserResponse	"Accounts"
//	@Failure		401	{object}	httpx.ErrorBody		"Missing, malformed or revoked token"
//	@Failure		403	{object}	httpx.ErrorBody		"Not an admin"
//	@Failure		500	{object}	httpx.ErrorBody		"Internal server error"
//	@Router			/v1/admin/users [get].
func (h *AdminHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.AdminService.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]AdminUserResponse, len(summaries))
	for i, s := range summaries {
		out[i] = AdminUserResponse{
			ID:         s.User.ID,
			Username:   s.User.Username,
			IsAdmin:    s.User.IsAdmin,
			CreatedAt:  s.User.CreatedAt,
			ScrobCount: s.ScrobCount,
		}
	}

	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet returns one account.
//
//	@Summary		Get a user
//	@Description	Returns one account with its listen count and last play time. Admin only.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"User ID"
//	@Success		200	{object}	AdminUserDetailResponse	"Account"
//	@Failure		401	{object}	httpx.ErrorBody			"Missing, malformed or revoked token"
//	@Failure		403	{object}	httpx.ErrorBody			"Not an admin"
//	@Failure		404	{object}	httpx.ErrorBody			"Unknown user ID"
//	@Failure		500	{object}	httpx.ErrorBody			"Internal server error"
//	@Router			/v1/admin/users/{id} [get].
func (h *AdminHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if userID == "" {
		httpx.WriteError(w, http.StatusBadRequest, "user id is required")
		return
	}

	detail, err := h.AdminService.GetUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, AdminUserDetailResponse{
		AdminUserResponse: AdminUserResponse{
			ID:         detail.User.ID,
			Username:   detail.User.Username,
			IsAdmin:    detail.User.IsAdmin,
			CreatedAt:  detail.User.CreatedAt,
			ScrobCount: detail.ScrobCount,
		},
		LastScrob: detail.LastScrob,
	})
}

// HandleDelete removes an account and everything it owns.
//
//	@Summary		Delete a user
//	@Description	Removes the account along with its tokens and listens. Admins cannot delete their own account. Admin only.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Param			id	path	string	true	"User ID"
//	@Success		204	"Account deleted"
//	@Failure		401	{object}	httpx.ErrorBody	"Missing, malformed or revoked token"
//	@Failure		403	{object}	httpx.ErrorBody	"Not an admin, or deleting own account"
//	@Failure		404	{object}	httpx.ErrorBody	"Unknown user ID"
//	@Failure		500	{object}	httpx.ErrorBody	"Internal server error"
//	@Router			/v1/admin/users/{id} [delete].
func (h *AdminHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	p, ok := httpx.PrincipalFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	userID := r.PathValue("id")
	if userID == "" {
		httpx.WriteError(w, http.StatusBadRequest, "user id is required")
		return
	}

	if err := h.AdminService.DeleteUser(r.Context(), principalUser(p), userID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
