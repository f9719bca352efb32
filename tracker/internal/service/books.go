package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/Astemirdum/book-tracker/tracker/internal/errs"
	"github.com/Astemirdum/book-tracker/tracker/internal/ledger"
	"github.com/Astemirdum/book-tracker/tracker/internal/metrics"
	"github.com/Astemirdum/book-tracker/tracker/internal/model"
	"github.com/Astemirdum/book-tracker/tracker/internal/status"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const MaxReviewLength = 2000

// ChangeStatus moves the user's copy of bookID to the requested status and
// settles the ledger and achievements in the same commit.
func (s *Service) ChangeStatus(ctx context.Context, userID uuid.UUID, bookID int64, requested string) (model.ChangeStatusResponse, error) {
	var (
		prev, next model.BookStatus
		delta      ledger.Delta
		title      string
		unlocked   []model.UnlockedAchievement
	)
	err := s.inUserScope(ctx, "change_status", userID, func(ctx context.Context) error {
		user, err := s.repo.GetUserForUpdate(ctx, userID)
		if err != nil {
			if errors.Is(err, errs.ErrUserNotFound) {
				return errs.ErrNotFound
			}
			return err
		}
		ub, err := s.repo.GetOwnership(ctx, userID, bookID)
		if err != nil {
			return err
		}
		if next, err = status.Transition(ub.Status, requested); err != nil {
			return err
		}
		prev, title = ub.Status, ub.Title
		ub.Status = next
		if err = s.repo.SaveOwnership(ctx, ub); err != nil {
			return errors.Wrap(err, "save ownership")
		}

		delta = ledger.ApplyTransition(&user, prev, next, s.readReward)
		if unlocked, err = s.evaluate(ctx, &user); err != nil {
			return err
		}
		if delta.IsZero() && len(unlocked) == 0 {
			return nil
		}
		_, err = s.repo.SaveUser(ctx, user)
		return err
	})
	if err != nil {
		return model.ChangeStatusResponse{}, err
	}

	if prev != next {
		metrics.RecordTransition(string(prev), string(next))
	}
	s.dispatch(ctx, committed{userID: userID, finished: delta.Finished, finishedTitle: title, unlocked: unlocked})

	return model.ChangeStatusResponse{Status: next, UnlockedAchievements: nonNil(unlocked)}, nil
}

// AddReview stores review text and rating on an ownership record. An omitted
// rating keeps the one already stored. The ledger and achievements are not
// involved.
func (s *Service) AddReview(ctx context.Context, userID uuid.UUID, userBookID int64, req model.ReviewRequest) (model.UserBook, error) {
	if req.Rating != nil && (*req.Rating < 1 || *req.Rating > 5) {
		return model.UserBook{}, errs.ErrInvalidRating
	}
	text := strings.TrimSpace(req.Review)
	if utf8.RuneCountInString(text) > MaxReviewLength {
		return model.UserBook{}, errs.ErrReviewTooLong
	}

	var ub model.UserBook
	err := s.inUserScope(ctx, "add_review", userID, func(ctx context.Context) error {
		var err error
		if ub, err = s.repo.GetOwnershipByID(ctx, userID, userBookID); err != nil {
			return err
		}
		ub.Review = nil
		if text != "" {
			ub.Review = &text
		}
		if req.Rating != nil {
			ub.Rating = req.Rating
		}
		return s.repo.SaveOwnership(ctx, ub)
	})
	if err != nil {
		return model.UserBook{}, err
	}

	s.notifier.Send(ctx, userID, model.NotificationReview, ReviewedMessage(ub.Title))
	return ub, nil
}

// AddBook puts bookID into the user's library as Unread.
func (s *Service) AddBook(ctx context.Context, userID uuid.UUID, bookID int64) (model.AddBookResponse, error) {
	var (
		ub       model.UserBook
		unlocked []model.UnlockedAchievement
	)
	err := s.inUserScope(ctx, "add_book", userID, func(ctx context.Context) error {
		if err := s.repo.EnsureUser(ctx, userID); err != nil {
			return errors.Wrap(err, "ensure user")
		}
		user, err := s.repo.GetUserForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if ub, err = s.repo.CreateOwnership(ctx, userID, bookID); err != nil {
			return err
		}
		ledger.AddToLibrary(&user)
		if unlocked, err = s.evaluate(ctx, &user); err != nil {
			return err
		}
		_, err = s.repo.SaveUser(ctx, user)
		return err
	})
	if err != nil {
		return model.AddBookResponse{}, err
	}

	s.dispatch(ctx, committed{userID: userID, unlocked: unlocked})
	return model.AddBookResponse{UserBook: ub, UnlockedAchievements: nonNil(unlocked)}, nil
}
