package handler

import (
	"context"

	"github.com/Astemirdum/book-tracker/tracker/internal/model"
	"github.com/Astemirdum/book-tracker/tracker/internal/service"
	"github.com/google/uuid"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type TrackerService interface {
	ChangeStatus(ctx context.Context, userID uuid.UUID, bookID int64, requested string) (model.ChangeStatusResponse, error)
	AddReview(ctx context.Context, userID uuid.UUID, userBookID int64, req model.ReviewRequest) (model.UserBook, error)
	AddBook(ctx context.Context, userID uuid.UUID, bookID int64) (model.AddBookResponse, error)
	RecordLogin(ctx context.Context, userID uuid.UUID) (model.LoginResponse, error)
	GetStats(ctx context.Context, userID uuid.UUID) (model.Stats, error)
	ListAchievements(ctx context.Context) ([]model.Achievement, error)
	ListUnlocked(ctx context.Context, userID uuid.UUID) ([]model.UnlockedAchievement, error)
	AchievementProgress(ctx context.Context, userID uuid.UUID) ([]model.AchievementProgress, error)
	ListNotifications(ctx context.Context, userID uuid.UUID) ([]model.Notification, error)
	MarkNotificationRead(ctx context.Context, userID, id uuid.UUID) error
	ListFeed(ctx context.Context, viewerID uuid.UUID, after *model.FeedCursor, limit int) (model.FeedPage, error)
	Follow(ctx context.Context, followerID, targetID uuid.UUID) (model.Follow, error)
	Unfollow(ctx context.Context, followerID, targetID uuid.UUID) error
	ListFollowing(ctx context.Context, userID uuid.UUID) ([]model.Follow, error)
	ListPendingFollowers(ctx context.Context, userID uuid.UUID) ([]model.Follow, error)
	ApproveFollower(ctx context.Context, userID, followerID uuid.UUID) error
	SetPrivacy(ctx context.Context, userID uuid.UUID, req model.PrivacyRequest) error
}

var _ TrackerService = (*service.Service)(nil)
