package repository

import (
	"context"

	"github.com/Astemirdum/book-tracker/tracker/internal/errs"
	"github.com/Astemirdum/book-tracker/tracker/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
)

var followColumns = []string{"follower_id", "following_id", "is_approved", "created_at"}

func (r *repository) CreateFollow(ctx context.Context, f model.Follow) error {
	query, args, err := qb.Insert(followersTableName).
		Columns(followColumns...).
		Values(f.FollowerID, f.FollowingID, f.IsApproved, f.CreatedAt).
		ToSql()
	if err != nil {
		return err
	}
	if _, err = r.q(ctx).Exec(ctx, query, args...); err != nil {
		switch {
		case isCode(err, pgerrcode.UniqueViolation):
			return errs.ErrAlreadyFollowing
		case isCode(err, pgerrcode.ForeignKeyViolation):
			return errs.ErrUserNotFound
		}
		return mapError(err)
	}
	return nil
}

func (r *repository) DeleteFollow(ctx context.Context, followerID, followingID uuid.UUID) error {
	query, args, err := qb.Delete(followersTableName).
		Where(sq.Eq{"follower_id": followerID, "following_id": followingID}).
		ToSql()
	if err != nil {
		return err
	}
	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrFollowNotFound
	}
	return nil
}

// ApproveFollow approves a pending follow. Approved or missing follows yield errs.ErrFollowNotFound.
func (r *repository) ApproveFollow(ctx context.Context, followerID, followingID uuid.UUID) error {
	query, args, err := qb.Update(followersTableName).
		Set("is_approved", true).
		Where(sq.Eq{"follower_id": followerID, "following_id": followingID, "is_approved": false}).
		ToSql()
	if err != nil {
		return err
	}
	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrFollowNotFound
	}
	return nil
}

func (r *repository) ListFollowing(ctx context.Context, userID uuid.UUID) ([]model.Follow, error) {
	return r.listFollows(ctx, sq.Eq{"follower_id": userID, "is_approved": true})
}

func (r *repository) ListPendingFollowers(ctx context.Context, userID uuid.UUID) ([]model.Follow, error) {
	return r.listFollows(ctx, sq.Eq{"following_id": userID, "is_approved": false})
}

func (r *repository) listFollows(ctx context.Context, where sq.Eq) ([]model.Follow, error) {
	query, args, err := qb.Select(followColumns...).
		From(followersTableName).
		Where(where).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.q(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Follow])
	if err != nil {
		return nil, mapError(err)
	}
	return items, nil
}
