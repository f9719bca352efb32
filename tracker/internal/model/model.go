package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type BookStatus string

const (
	StatusUnread  BookStatus = "Unread"
	StatusReading BookStatus = "Reading"
	StatusRead    BookStatus = "Read"
)

// UserBook is one user's ownership record of a book.
type UserBook struct {
	ID        int64      `json:"id" db:"id"`
	UserID    uuid.UUID  `json:"userId" db:"user_id"`
	BookID    int64      `json:"bookId" db:"book_id"`
	Title     string     `json:"title" db:"title"`
	Status    BookStatus `json:"status" db:"status"`
	Review    *string    `json:"review,omitempty" db:"review"`
	Rating    *int       `json:"rating,omitempty" db:"rating"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
}

// User carries the progress ledger. Version guards concurrent writers.
type User struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	UserName      string     `json:"username" db:"username"`
	BooksRead     int        `json:"booksRead" db:"books_read"`
	TotalBooks    int        `json:"totalBooks" db:"total_books"`
	Points        int        `json:"points" db:"points"`
	LoginStreak   int        `json:"loginStreak" db:"login_streak"`
	LastLoginDate *time.Time `json:"lastLoginDate,omitempty" db:"last_login_date"`

	// RequireFollowApproval holds new followers as pending until approved.
	RequireFollowApproval bool  `json:"requireFollowApproval" db:"require_follow_approval"`
	Version               int64 `json:"-" db:"version"`
}

type Metric string

const (
	MetricBooksRead   Metric = "BooksRead"
	MetricTotalBooks  Metric = "TotalBooks"
	MetricPoints      Metric = "Points"
	MetricLoginStreak Metric = "LoginStreak"
)

type Achievement struct {
	ID           int64  `json:"id" db:"id"`
	Title        string `json:"title" db:"title"`
	Description  string `json:"description" db:"description"`
	Metric       Metric `json:"metric" db:"metric"`
	Goal         int    `json:"goal" db:"goal"`
	PointsReward int    `json:"pointsReward" db:"points_reward"`
	IconURL      string `json:"iconUrl" db:"icon_url"`
}

type UserAchievement struct {
	UserID        uuid.UUID `json:"userId" db:"user_id"`
	AchievementID int64     `json:"achievementId" db:"achievement_id"`
	EarnedAt      time.Time `json:"earnedAt" db:"earned_at"`
}

type UnlockedAchievement struct {
	Achievement
	EarnedAt time.Time `json:"earnedAt" db:"earned_at"`
}

type AchievementProgress struct {
	Achievement
	ProgressValue int  `json:"progressValue"`
	Unlocked      bool `json:"unlocked"`
}

type NotificationType string

const (
	NotificationRead        NotificationType = "read"
	NotificationAchievement NotificationType = "achievement"
	NotificationReview      NotificationType = "review"
)

type Notification struct {
	ID        uuid.UUID        `json:"id" db:"id"`
	UserID    uuid.UUID        `json:"userId" db:"user_id"`
	Type      NotificationType `json:"type" db:"type"`
	Message   string           `json:"message" db:"message"`
	IsRead    bool             `json:"isRead" db:"is_read"`
	CreatedAt time.Time        `json:"timestamp" db:"created_at"`
}

type FeedPost struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"userId" db:"user_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type FeedPage struct {
	Items      []FeedPost `json:"items"`
	HasMore    bool       `json:"hasMore"`
	NextCursor string     `json:"nextCursor,omitempty"`
}

// FeedCursor is the position of the last post of a page. Posts sharing a
// timestamp are ordered by id.
type FeedCursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

const feedCursorSep = "_"

func (c FeedCursor) String() string {
	return c.CreatedAt.UTC().Format(time.RFC3339Nano) + feedCursorSep + c.ID.String()
}

func ParseFeedCursor(raw string) (FeedCursor, error) {
	ts, id, ok := strings.Cut(raw, feedCursorSep)
	if !ok {
		return FeedCursor{}, fmt.Errorf("cursor %q: missing id", raw)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return FeedCursor{}, fmt.Errorf("cursor %q: %w", raw, err)
	}
	postID, err := uuid.Parse(id)
	if err != nil {
		return FeedCursor{}, fmt.Errorf("cursor %q: %w", raw, err)
	}
	return FeedCursor{CreatedAt: createdAt, ID: postID}, nil
}

// Follow links a follower to a followed user. Pending follows are not approved yet.
type Follow struct {
	FollowerID  uuid.UUID `json:"followerId" db:"follower_id"`
	FollowingID uuid.UUID `json:"followingId" db:"following_id"`
	IsApproved  bool      `json:"isApproved" db:"is_approved"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

type PrivacyRequest struct {
	RequireFollowApproval bool `json:"requireFollowApproval"`
}

type Stats struct {
	BooksRead   int `json:"booksRead"`
	TotalBooks  int `json:"totalBooks"`
	Points      int `json:"points"`
	LoginStreak int `json:"loginStreak"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type ChangeStatusResponse struct {
	Status               BookStatus            `json:"status"`
	UnlockedAchievements []UnlockedAchievement `json:"unlockedAchievements"`
}

type ReviewRequest struct {
	Review string `json:"review" validate:"max=2000"`
	Rating *int   `json:"rating" validate:"omitempty,min=1,max=5"`
}

type AddBookRequest struct {
	BookID int64 `json:"bookId" validate:"required,gt=0"`
}

type AddBookResponse struct {
	UserBook             UserBook              `json:"userBook"`
	UnlockedAchievements []UnlockedAchievement `json:"unlockedAchievements"`
}

type LoginResponse struct {
	LoginStreak          int                   `json:"loginStreak"`
	UnlockedAchievements []UnlockedAchievement `json:"unlockedAchievements"`
}
