package service

import (
	"context"

	"github.com/Astemirdum/book-tracker/tracker/internal/errs"
	"github.com/Astemirdum/book-tracker/tracker/internal/model"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Follow subscribes followerID to targetID's activity. Targets that require
// approval get a pending follow that stays out of the feed until approved.
func (s *Service) Follow(ctx context.Context, followerID, targetID uuid.UUID) (model.Follow, error) {
	if followerID == targetID {
		return model.Follow{}, errs.ErrFollowSelf
	}
	var f model.Follow
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.repo.EnsureUser(ctx, followerID); err != nil {
			return errors.Wrap(err, "ensure user")
		}
		target, err := s.repo.GetUser(ctx, targetID)
		if err != nil {
			return err
		}
		f = model.Follow{
			FollowerID:  followerID,
			FollowingID: targetID,
			IsApproved:  !target.RequireFollowApproval,
			CreatedAt:   s.now(),
		}
		return s.repo.CreateFollow(ctx, f)
	})
	if err != nil {
		return model.Follow{}, err
	}
	s.log.Debug("follow", zap.Stringer("follower_id", followerID),
		zap.Stringer("following_id", targetID), zap.Bool("approved", f.IsApproved))
	return f, nil
}

func (s *Service) Unfollow(ctx context.Context, followerID, targetID uuid.UUID) error {
	return s.repo.DeleteFollow(ctx, followerID, targetID)
}

func (s *Service) ListFollowing(ctx context.Context, userID uuid.UUID) ([]model.Follow, error) {
	items, err := s.repo.ListFollowing(ctx, userID)
	if items == nil {
		items = []model.Follow{}
	}
	return items, err
}

func (s *Service) ListPendingFollowers(ctx context.Context, userID uuid.UUID) ([]model.Follow, error) {
	items, err := s.repo.ListPendingFollowers(ctx, userID)
	if items == nil {
		items = []model.Follow{}
	}
	return items, err
}

// ApproveFollower lets followerID's pending follow of userID through.
func (s *Service) ApproveFollower(ctx context.Context, userID, followerID uuid.UUID) error {
	return s.repo.ApproveFollow(ctx, followerID, userID)
}

// SetPrivacy changes whether new followers of userID need approval.
// Existing follows are left as they are.
func (s *Service) SetPrivacy(ctx context.Context, userID uuid.UUID, req model.PrivacyRequest) error {
	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.repo.EnsureUser(ctx, userID); err != nil {
			return errors.Wrap(err, "ensure user")
		}
		return s.repo.SetFollowApproval(ctx, userID, req.RequireFollowApproval)
	})
}
