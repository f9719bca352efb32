package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Astemirdum/book-tracker/pkg/kafka"
	"github.com/Astemirdum/book-tracker/pkg/locker"
	"github.com/Astemirdum/book-tracker/pkg/retry"
	"github.com/Astemirdum/book-tracker/tracker/internal/achievement"
	"github.com/Astemirdum/book-tracker/tracker/internal/errs"
	"github.com/Astemirdum/book-tracker/tracker/internal/ledger"
	"github.com/Astemirdum/book-tracker/tracker/internal/metrics"
	"github.com/Astemirdum/book-tracker/tracker/internal/model"
	"github.com/Astemirdum/book-tracker/tracker/internal/notifier"
	"github.com/Astemirdum/book-tracker/tracker/internal/repository"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Notifier interface {
	Send(ctx context.Context, userID uuid.UUID, typ model.NotificationType, message string)
}

type Service struct {
	repo       repository.Repository
	tx         repository.TxManager
	locker     locker.Locker
	notifier   Notifier
	activity   notifier.ActivityPublisher
	readReward int
	retryDelay time.Duration
	now        func() time.Time
	log        *zap.Logger
}

type Option func(*Service)

func WithReadReward(points int) Option {
	return func(s *Service) { s.readReward = points }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithRetryDelay(d time.Duration) Option {
	return func(s *Service) { s.retryDelay = d }
}

func WithActivity(p notifier.ActivityPublisher) Option {
	return func(s *Service) { s.activity = p }
}

func NewService(repo repository.Repository, tx repository.TxManager, lk locker.Locker, ntf Notifier, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		repo:       repo,
		tx:         tx,
		locker:     lk,
		notifier:   ntf,
		activity:   notifier.NopActivity{},
		readReward: ledger.DefaultReadReward,
		retryDelay: 5 * time.Millisecond,
		now:        func() time.Time { return time.Now().UTC() },
		log:        log.Named("service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// inUserScope runs fn as one transaction while holding the user's exclusive
// scope. fn is re-run once with fresh reads on errs.ErrConflict; a second
// conflict is reported as errs.ErrUnavailable.
func (s *Service) inUserScope(ctx context.Context, op string, userID uuid.UUID, fn func(ctx context.Context) error) error {
	unlock, err := s.locker.Lock(ctx, userID.String())
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %w", errs.ErrUnavailable, err)
	}
	defer unlock()

	err = retry.Do(ctx, func(ctx context.Context) error {
		return s.tx.RunInTx(ctx, fn)
	},
		retry.On(errs.ErrConflict),
		retry.WithBaseDelay(s.retryDelay),
		retry.OnRetry(func(attempt int, err error) {
			metrics.RecordConflict(op, "retried")
			s.log.Warn("retrying after conflict",
				zap.String("op", op), zap.Stringer("user_id", userID), zap.Int("attempt", attempt), zap.Error(err))
		}),
	)
	if errors.Is(err, errs.ErrConflict) {
		metrics.RecordConflict(op, "surfaced")
		return fmt.Errorf("%w: %w", errs.ErrUnavailable, err)
	}
	return err
}

// evaluate unlocks what u now qualifies for, crediting rewards to u and
// recording each unlock in the current transaction.
func (s *Service) evaluate(ctx context.Context, u *model.User) ([]model.UnlockedAchievement, error) {
	catalog, err := s.repo.ListAchievements(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list achievements")
	}
	earned, err := s.repo.ListEarned(ctx, u.ID)
	if err != nil {
		return nil, errors.Wrap(err, "list earned")
	}
	unlocked := achievement.Evaluate(u, catalog, earned, s.now())
	for _, a := range unlocked {
		if err := s.repo.RecordEarned(ctx, u.ID, a.ID, a.EarnedAt); err != nil {
			return nil, errors.Wrapf(err, "record earned %d", a.ID)
		}
	}
	return unlocked, nil
}

type committed struct {
	userID        uuid.UUID
	finishedTitle string
	finished      bool
	unlocked      []model.UnlockedAchievement
}

// dispatch fans out notifications and activity events for a committed unit
// of work. Nothing here can fail the operation.
func (s *Service) dispatch(ctx context.Context, c committed) {
	now := s.now()
	var events []kafka.EventActivity
	if c.finished {
		s.notifier.Send(ctx, c.userID, model.NotificationRead, FinishedMessage(c.finishedTitle))
		events = append(events, kafka.EventActivity{
			ID: uuid.New(), Kind: kafka.ActivityBookFinished, UserID: c.userID, Subject: c.finishedTitle, CreatedAt: now,
		})
	}
	for _, a := range c.unlocked {
		metrics.RecordAchievementUnlocked(a.Title)
		s.notifier.Send(ctx, c.userID, model.NotificationAchievement, UnlockedMessage(a.Achievement))
		events = append(events, kafka.EventActivity{
			ID: uuid.New(), Kind: kafka.ActivityAchievementUnlocked, UserID: c.userID, Subject: a.Title, CreatedAt: now,
		})
	}
	if len(events) == 0 {
		return
	}
	if err := s.activity.Publish(context.WithoutCancel(ctx), events...); err != nil {
		s.log.Warn("publish activity", zap.Stringer("user_id", c.userID), zap.Error(err))
	}
}

func FinishedMessage(title string) string {
	return fmt.Sprintf("You finished reading '%s'! 🎉", orBook(title))
}

func ReviewedMessage(title string) string {
	return fmt.Sprintf("You reviewed '%s'. ⭐", orBook(title))
}

func UnlockedMessage(a model.Achievement) string {
	return fmt.Sprintf("Achievement unlocked: '%s'! 🏆 +%d points", a.Title, a.PointsReward)
}

func orBook(title string) string {
	if title == "" {
		return "a book"
	}
	return title
}

func nonNil(u []model.UnlockedAchievement) []model.UnlockedAchievement {
	if u == nil {
		return []model.UnlockedAchievement{}
	}
	return u
}
