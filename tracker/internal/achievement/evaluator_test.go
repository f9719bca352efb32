package achievement_test

import (
	"testing"
	"time"

	"github.com/Astemirdum/book-tracker/tracker/internal/achievement"
	"github.com/Astemirdum/book-tracker/tracker/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 5, 17, 10, 0, 0, 0, time.UTC)

func catalog() []model.Achievement {
	return []model.Achievement{
		{ID: 1, Title: "First Book Read", Metric: model.MetricBooksRead, Goal: 1, PointsReward: 10},
		{ID: 2, Title: "Reading Streak", Metric: model.MetricLoginStreak, Goal: 7, PointsReward: 50},
		{ID: 3, Title: "Book Collector", Metric: model.MetricTotalBooks, Goal: 50, PointsReward: 30},
		{ID: 4, Title: "Points Master", Metric: model.MetricPoints, Goal: 500, PointsReward: 100},
	}
}

func ids(items []model.UnlockedAchievement) []int64 {
	out := make([]int64, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestEvaluate_FirstBook(t *testing.T) {
	u := model.User{BooksRead: 1, Points: 10}
	got := achievement.Evaluate(&u, catalog(), nil, now)

	require.Equal(t, []int64{1}, ids(got))
	require.Equal(t, "First Book Read", got[0].Title)
	require.Equal(t, now, got[0].EarnedAt)
	require.Equal(t, 20, u.Points)
}

func TestEvaluate_Idempotent(t *testing.T) {
	u := model.User{BooksRead: 1, Points: 10}
	earned := map[int64]struct{}{}

	first := achievement.Evaluate(&u, catalog(), earned, now)
	for _, a := range first {
		earned[a.ID] = struct{}{}
	}
	pointsAfterFirst := u.Points

	second := achievement.Evaluate(&u, catalog(), earned, now)
	require.Empty(t, second)
	require.Equal(t, pointsAfterFirst, u.Points)
}

func TestEvaluate_DoesNotMutateEarned(t *testing.T) {
	u := model.User{BooksRead: 1}
	earned := map[int64]struct{}{}
	achievement.Evaluate(&u, catalog(), earned, now)
	require.Empty(t, earned)
}

func TestEvaluate_UnknownMetricNeverUnlocks(t *testing.T) {
	u := model.User{BooksRead: 100, Points: 100}
	cat := []model.Achievement{
		{ID: 1, Metric: "FriendsMade", Goal: 0, PointsReward: 5},
		{ID: 2, Metric: "", Goal: -1, PointsReward: 5},
	}
	require.Empty(t, achievement.Evaluate(&u, cat, nil, now))
	require.Equal(t, 100, u.Points)
}

func TestEvaluate_SamePassRewardVisibility(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		catalog    []model.Achievement
		user       model.User
		wantIDs    []int64
		wantPoints int
	}{
		{
			name: "earlier reward lifts later points goal",
			catalog: []model.Achievement{
				{ID: 1, Metric: model.MetricBooksRead, Goal: 1, PointsReward: 10},
				{ID: 2, Metric: model.MetricPoints, Goal: 20, PointsReward: 5},
			},
			user:       model.User{BooksRead: 1, Points: 10},
			wantIDs:    []int64{1, 2},
			wantPoints: 25,
		},
		{
			name: "later reward does not revisit earlier points goal",
			catalog: []model.Achievement{
				{ID: 1, Metric: model.MetricPoints, Goal: 20, PointsReward: 5},
				{ID: 2, Metric: model.MetricBooksRead, Goal: 1, PointsReward: 10},
			},
			user:       model.User{BooksRead: 1, Points: 10},
			wantIDs:    []int64{2},
			wantPoints: 20,
		},
		{
			name: "catalog order does not matter, id order does",
			catalog: []model.Achievement{
				{ID: 9, Metric: model.MetricPoints, Goal: 20, PointsReward: 1},
				{ID: 3, Metric: model.MetricBooksRead, Goal: 1, PointsReward: 10},
			},
			user:       model.User{BooksRead: 1, Points: 10},
			wantIDs:    []int64{3, 9},
			wantPoints: 21,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			u := tt.user
			got := achievement.Evaluate(&u, tt.catalog, nil, now)
			assert.Equal(t, tt.wantIDs, ids(got))
			assert.Equal(t, tt.wantPoints, u.Points)
		})
	}
}

func TestEvaluate_NextPassPicksUpSkipped(t *testing.T) {
	cat := []model.Achievement{
		{ID: 1, Metric: model.MetricPoints, Goal: 20, PointsReward: 5},
		{ID: 2, Metric: model.MetricBooksRead, Goal: 1, PointsReward: 10},
	}
	u := model.User{BooksRead: 1, Points: 10}
	earned := map[int64]struct{}{}
	for _, a := range achievement.Evaluate(&u, cat, earned, now) {
		earned[a.ID] = struct{}{}
	}
	got := achievement.Evaluate(&u, cat, earned, now)
	require.Equal(t, []int64{1}, ids(got))
	require.Equal(t, 25, u.Points)
}

func TestEvaluate_LoginStreak(t *testing.T) {
	u := model.User{LoginStreak: 7}
	got := achievement.Evaluate(&u, catalog(), nil, now)
	require.Equal(t, []int64{2}, ids(got))
	require.Equal(t, 50, u.Points)
}

func TestProgress(t *testing.T) {
	u := model.User{BooksRead: 2, TotalBooks: 5, Points: 40, LoginStreak: 3}
	got := achievement.Progress(u, catalog(), map[int64]struct{}{1: {}})
	require.Len(t, got, 4)
	assert.True(t, got[0].Unlocked)
	assert.Equal(t, 2, got[0].ProgressValue)
	assert.Equal(t, 3, got[1].ProgressValue)
	assert.Equal(t, 5, got[2].ProgressValue)
	assert.Equal(t, 40, got[3].ProgressValue)
	assert.False(t, got[3].Unlocked)
}
