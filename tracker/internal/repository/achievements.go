package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Astemirdum/book-tracker/tracker/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func (r *repository) ListAchievements(ctx context.Context) ([]model.Achievement, error) {
	query, args, err := qb.Select("id", "title", "description", "metric", "goal", "points_reward", "icon_url").
		From(achievementsTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.q(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Achievement])
	if err != nil {
		return nil, mapError(err)
	}
	return items, nil
}

func (r *repository) ListEarned(ctx context.Context, userID uuid.UUID) (map[int64]struct{}, error) {
	query, args, err := qb.Select("achievement_id").
		From(userAchievementsTableName).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.q(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, mapError(err)
	}
	earned := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		earned[id] = struct{}{}
	}
	return earned, nil
}

// RecordEarned inserts the unlock. A duplicate means a concurrent writer got
// there first and is reported as errs.ErrConflict.
func (r *repository) RecordEarned(ctx context.Context, userID uuid.UUID, achievementID int64, at time.Time) error {
	query, args, err := qb.Insert(userAchievementsTableName).
		Columns("user_id", "achievement_id", "earned_at").
		Values(userID, achievementID, at).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.q(ctx).Exec(ctx, query, args...)
	return mapError(err)
}

func (r *repository) ListUnlocked(ctx context.Context, userID uuid.UUID) ([]model.UnlockedAchievement, error) {
	query, args, err := qb.Select("a.id", "a.title", "a.description", "a.metric", "a.goal",
		"a.points_reward", "a.icon_url", "ua.earned_at").
		From(userAchievementsTableName + " ua").
		Join(fmt.Sprintf("%s a on a.id = ua.achievement_id", achievementsTableName)).
		Where(sq.Eq{"ua.user_id": userID}).
		OrderBy("ua.earned_at", "a.id").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.q(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.UnlockedAchievement, error) {
		var u model.UnlockedAchievement
		err := row.Scan(&u.ID, &u.Title, &u.Description, &u.Metric, &u.Goal,
			&u.PointsReward, &u.IconURL, &u.EarnedAt)
		return u, err
	})
	if err != nil {
		return nil, mapError(err)
	}
	return items, nil
}
