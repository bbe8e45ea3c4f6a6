package service

import (
	"context"
	"errors"

	"github.com/scrob-fm/scrob/internal/scrob/domain"
	"github.com/scrob-fm/scrob/internal/scrob/store"
	"github.com/scrob-fm/scrob/pkg/slogx"
)

// UserSummary is an account plus its listen count, for the admin user
// listing.
type UserSummary struct {
	User       domain.User
	ScrobCount int64
}

// UserDetail extends the summary with the timestamp of the most recent
// listen, when any exists.
type UserDetail struct {
	User       domain.User
	ScrobCount int64
	LastScrob  *int64
}

// StatsOverview is the instance totals plus the most active accounts.
type StatsOverview struct {
	Stats    domain.InstanceStats
	TopUsers []domain.TopUser
}

// topUsersLimit caps the leaderboard in the stats overview.
const topUsersLimit = 10

// AdminService exposes instance-operator views over accounts. The
// transport layer is responsible for gating these behind the admin
// flag.
type AdminService struct {
	Store store.Store
}

// ListUsers returns every account with its listen count, ordered by
// creation time.
func (s *AdminService) ListUsers(ctx context.Context) ([]UserSummary, error) {
	users, counts, err := s.Store.Users().ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]UserSummary, len(users))
	for i, u := range users {
		summaries[i] = UserSummary{User: u, ScrobCount: counts[u.ID]}
	}
	return summaries, nil
}

// GetUser returns one account with its listen count and last play time.
func (s *AdminService) GetUser(ctx context.Context, userID string) (UserDetail, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return UserDetail{}, ErrNotFound
		}
		return UserDetail{}, err
	}

	count, last, err := s.Store.Users().CountUserScrobs(ctx, userID)
	if err != nil {
		return UserDetail{}, err
	}

	return UserDetail{User: u, ScrobCount: count, LastScrob: last}, nil
}

// Stats returns whole-instance totals and the most active accounts.
func (s *AdminService) Stats(ctx context.Context) (StatsOverview, error) {
	stats, err := s.Store.Users().InstanceStats(ctx)
	if err != nil {
		return StatsOverview{}, err
	}

	top, err := s.Store.Users().TopUsers(ctx, topUsersLimit)
	if err != nil {
		return StatsOverview{}, err
	}
	if top == nil {
		top = []domain.TopUser{}
	}

	return StatsOverview{Stats: stats, TopUsers: top}, nil
}

// DeleteUser removes an account along with its tokens and listens.
// Admins cannot delete their own account; ErrForbidden keeps the
// instance from locking itself out.
func (s *AdminService) DeleteUser(ctx context.Context, actor domain.AuthUser, userID string) error {
	if userID == actor.ID {
		return ErrForbidden
	}

	if err := s.Store.Users().DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	slogx.FromContext(ctx).Info("user deleted",
		"user_id", userID,
		"deleted_by", actor.ID,
	)

	return nil
}
