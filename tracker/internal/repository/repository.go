package repository

import (
	"context"
	"time"

	"github.com/Astemirdum/book-tracker/tracker/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	GetOwnership(ctx context.Context, userID uuid.UUID, bookID int64) (model.UserBook, error)
	GetOwnershipByID(ctx context.Context, userID uuid.UUID, id int64) (model.UserBook, error)
	CreateOwnership(ctx context.Context, userID uuid.UUID, bookID int64) (model.UserBook, error)
	SaveOwnership(ctx context.Context, ub model.UserBook) error

	EnsureUser(ctx context.Context, userID uuid.UUID) error
	GetUser(ctx context.Context, userID uuid.UUID) (model.User, error)
	GetUserForUpdate(ctx context.Context, userID uuid.UUID) (model.User, error)
	SaveUser(ctx context.Context, u model.User) (model.User, error)

	ListAchievements(ctx context.Context) ([]model.Achievement, error)
	ListEarned(ctx context.Context, userID uuid.UUID) (map[int64]struct{}, error)
	RecordEarned(ctx context.Context, userID uuid.UUID, achievementID int64, at time.Time) error
	ListUnlocked(ctx context.Context, userID uuid.UUID) ([]model.UnlockedAchievement, error)

	CreateNotification(ctx context.Context, n model.Notification) error
	ListNotifications(ctx context.Context, userID uuid.UUID, limit int) ([]model.Notification, error)
	MarkNotificationRead(ctx context.Context, userID, id uuid.UUID) error

	CreateFeedPost(ctx context.Context, p model.FeedPost) error
	ListFeed(ctx context.Context, viewerID uuid.UUID, after *model.FeedCursor, limit int) ([]model.FeedPost, error)

	SetFollowApproval(ctx context.Context, userID uuid.UUID, require bool) error
	CreateFollow(ctx context.Context, f model.Follow) error
	DeleteFollow(ctx context.Context, followerID, followingID uuid.UUID) error
	ApproveFollow(ctx context.Context, followerID, followingID uuid.UUID) error
	ListFollowing(ctx context.Context, userID uuid.UUID) ([]model.Follow, error)
	ListPendingFollowers(ctx context.Context, userID uuid.UUID) ([]model.Follow, error)
}

type repository struct {
	db  DB
	log *zap.Logger
}

func NewRepository(db DB, log *zap.Logger) *repository {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}
}

const (
	usersTableName            = `users`
	booksTableName            = `books`
	userBooksTableName        = `user_books`
	achievementsTableName     = `achievements`
	userAchievementsTableName = `user_achievements`
	notificationsTableName    = `notifications`
	feedPostsTableName        = `feed_posts`
	followersTableName        = `followers`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) q(ctx context.Context) Querier {
	return QuerierFromCtx(ctx, r.db)
}
