package service

import (
	"context"

	"github.com/Astemirdum/book-tracker/pkg/kafka"
	"github.com/Astemirdum/book-tracker/tracker/internal/achievement"
	"github.com/Astemirdum/book-tracker/tracker/internal/errs"
	"github.com/Astemirdum/book-tracker/tracker/internal/ledger"
	"github.com/Astemirdum/book-tracker/tracker/internal/metrics"
	"github.com/Astemirdum/book-tracker/tracker/internal/model"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	notificationsLimit = 50
	feedDefaultLimit   = 10
	feedMaxLimit       = 25
)

// RecordLogin applies the daily login streak rule. Repeated logins on the
// same UTC day change nothing.
func (s *Service) RecordLogin(ctx context.Context, userID uuid.UUID) (model.LoginResponse, error) {
	var (
		streak   int
		unlocked []model.UnlockedAchievement
	)
	err := s.inUserScope(ctx, "record_login", userID, func(ctx context.Context) error {
		if err := s.repo.EnsureUser(ctx, userID); err != nil {
			return errors.Wrap(err, "ensure user")
		}
		user, err := s.repo.GetUserForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		changed := ledger.ApplyLogin(&user, s.now())
		if unlocked, err = s.evaluate(ctx, &user); err != nil {
			return err
		}
		streak = user.LoginStreak
		if !changed && len(unlocked) == 0 {
			return nil
		}
		_, err = s.repo.SaveUser(ctx, user)
		return err
	})
	if err != nil {
		return model.LoginResponse{}, err
	}

	s.dispatch(ctx, committed{userID: userID, unlocked: unlocked})
	return model.LoginResponse{LoginStreak: streak, UnlockedAchievements: nonNil(unlocked)}, nil
}

func (s *Service) getUser(ctx context.Context, userID uuid.UUID) (model.User, error) {
	u, err := s.repo.GetUser(ctx, userID)
	if errors.Is(err, errs.ErrUserNotFound) {
		return model.User{ID: userID}, nil
	}
	return u, err
}

func (s *Service) GetStats(ctx context.Context, userID uuid.UUID) (model.Stats, error) {
	u, err := s.getUser(ctx, userID)
	if err != nil {
		return model.Stats{}, err
	}
	return model.Stats{
		BooksRead:   u.BooksRead,
		TotalBooks:  u.TotalBooks,
		Points:      u.Points,
		LoginStreak: u.LoginStreak,
	}, nil
}

func (s *Service) ListAchievements(ctx context.Context) ([]model.Achievement, error) {
	return s.repo.ListAchievements(ctx)
}

func (s *Service) ListUnlocked(ctx context.Context, userID uuid.UUID) ([]model.UnlockedAchievement, error) {
	items, err := s.repo.ListUnlocked(ctx, userID)
	return nonNil(items), err
}

func (s *Service) AchievementProgress(ctx context.Context, userID uuid.UUID) ([]model.AchievementProgress, error) {
	u, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	catalog, err := s.repo.ListAchievements(ctx)
	if err != nil {
		return nil, err
	}
	earned, err := s.repo.ListEarned(ctx, userID)
	if err != nil {
		return nil, err
	}
	return achievement.Progress(u, catalog, earned), nil
}

func (s *Service) ListNotifications(ctx context.Context, userID uuid.UUID) ([]model.Notification, error) {
	items, err := s.repo.ListNotifications(ctx, userID, notificationsLimit)
	if items == nil {
		items = []model.Notification{}
	}
	return items, err
}

func (s *Service) MarkNotificationRead(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.MarkNotificationRead(ctx, userID, id)
}

// ListFeed pages through the reading-activity posts visible to viewerID,
// newest first. after is the cursor returned by the previous page.
func (s *Service) ListFeed(ctx context.Context, viewerID uuid.UUID, after *model.FeedCursor, limit int) (model.FeedPage, error) {
	if limit <= 0 {
		limit = feedDefaultLimit
	}
	if limit > feedMaxLimit {
		limit = feedMaxLimit
	}
	items, err := s.repo.ListFeed(ctx, viewerID, after, limit+1)
	if err != nil {
		return model.FeedPage{}, err
	}
	page := model.FeedPage{Items: items, HasMore: len(items) > limit}
	if page.HasMore {
		page.Items = items[:limit]
	}
	if page.Items == nil {
		page.Items = []model.FeedPost{}
	}
	if n := len(page.Items); n > 0 && page.HasMore {
		last := page.Items[n-1]
		page.NextCursor = model.FeedCursor{CreatedAt: last.CreatedAt, ID: last.ID}.String()
	}
	return page, nil
}

// SaveActivity turns a reading-activity event into a feed post.
func (s *Service) SaveActivity(ctx context.Context, ev kafka.EventActivity) error {
	var content string
	switch ev.Kind {
	case kafka.ActivityBookFinished:
		content = "finished reading '" + orBook(ev.Subject) + "' 📚"
	case kafka.ActivityAchievementUnlocked:
		content = "unlocked the achievement '" + ev.Subject + "' 🏆"
	default:
		metrics.RecordFeedEvent(string(ev.Kind), "skipped")
		s.log.Warn("unknown activity kind", zap.String("kind", string(ev.Kind)))
		return nil
	}
	if ev.ID == uuid.Nil {
		ev.ID = uuid.New()
	}
	createdAt := ev.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.now()
	}
	err := s.repo.CreateFeedPost(ctx, model.FeedPost{
		ID:        ev.ID,
		UserID:    ev.UserID,
		Content:   content,
		CreatedAt: createdAt,
	})
	if err != nil {
		metrics.RecordFeedEvent(string(ev.Kind), "failed")
		return errors.Wrap(err, "create feed post")
	}
	metrics.RecordFeedEvent(string(ev.Kind), "ok")
	return nil
}
