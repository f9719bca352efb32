package repository

import (
	"context"
	"fmt"

	"github.com/Astemirdum/book-tracker/tracker/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateFeedPost is idempotent on the post id so redelivered events are harmless.
func (r *repository) CreateFeedPost(ctx context.Context, p model.FeedPost) error {
	query, args, err := qb.Insert(feedPostsTableName).
		Columns("id", "user_id", "content", "created_at").
		Values(p.ID, p.UserID, p.Content, p.CreatedAt).
		Suffix("on conflict (id) do nothing").
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.q(ctx).Exec(ctx, query, args...)
	return mapError(err)
}

// ListFeed returns the posts visible to viewerID, newest first: their own
// and those of users they follow with an approved follow. Paging resumes
// strictly after the cursor position.
func (r *repository) ListFeed(ctx context.Context, viewerID uuid.UUID, after *model.FeedCursor, limit int) ([]model.FeedPost, error) {
	b := qb.Select("id", "user_id", "content", "created_at").
		From(feedPostsTableName).
		Where(sq.Or{
			sq.Eq{"user_id": viewerID},
			sq.Expr(fmt.Sprintf(
				"user_id in (select following_id from %s where follower_id = ? and is_approved)",
				followersTableName), viewerID),
		}).
		OrderBy("created_at desc", "id desc")
	if after != nil {
		b = b.Where(sq.Expr("(created_at, id) < (?, ?)", after.CreatedAt, after.ID))
	}
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.q(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.FeedPost])
	if err != nil {
		return nil, mapError(err)
	}
	return items, nil
}
