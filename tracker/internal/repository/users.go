package repository

import (
	"context"

	"github.com/Astemirdum/book-tracker/tracker/internal/errs"
	"github.com/Astemirdum/book-tracker/tracker/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

var userColumns = []string{"id", "username", "books_read", "total_books", "points",
	"login_streak", "last_login_date", "require_follow_approval", "version"}

func (r *repository) EnsureUser(ctx context.Context, userID uuid.UUID) error {
	query, args, err := qb.Insert(usersTableName).
		Columns("id").
		Values(userID).
		Suffix("on conflict (id) do nothing").
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.q(ctx).Exec(ctx, query, args...)
	return mapError(err)
}

func (r *repository) getUser(ctx context.Context, userID uuid.UUID, lock bool) (model.User, error) {
	b := qb.Select(userColumns...).
		From(usersTableName).
		Where(sq.Eq{"id": userID})
	if lock {
		b = b.Suffix("for update")
	}
	query, args, err := b.ToSql()
	if err != nil {
		return model.User{}, err
	}
	rows, err := r.q(ctx).Query(ctx, query, args...)
	if err != nil {
		return model.User{}, mapError(err)
	}
	u, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, errs.ErrUserNotFound
		}
		return model.User{}, mapError(err)
	}
	return u, nil
}

func (r *repository) GetUser(ctx context.Context, userID uuid.UUID) (model.User, error) {
	return r.getUser(ctx, userID, false)
}

// GetUserForUpdate row-locks the ledger until the surrounding transaction ends.
func (r *repository) GetUserForUpdate(ctx context.Context, userID uuid.UUID) (model.User, error) {
	return r.getUser(ctx, userID, true)
}

// SaveUser writes the ledger if nobody else did since u was read.
// A stale version yields errs.ErrConflict.
func (r *repository) SaveUser(ctx context.Context, u model.User) (model.User, error) {
	query, args, err := qb.Update(usersTableName).
		Set("books_read", u.BooksRead).
		Set("total_books", u.TotalBooks).
		Set("points", u.Points).
		Set("login_streak", u.LoginStreak).
		Set("last_login_date", u.LastLoginDate).
		Set("version", sq.Expr("version + 1")).
		Where(sq.Eq{"id": u.ID, "version": u.Version}).
		Suffix("returning version").
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	if err := r.q(ctx).QueryRow(ctx, query, args...).Scan(&u.Version); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, errors.Wrapf(errs.ErrConflict, "user %s version %d", u.ID, u.Version)
		}
		return model.User{}, mapError(err)
	}
	return u, nil
}

// SetFollowApproval switches whether new followers wait for approval.
func (r *repository) SetFollowApproval(ctx context.Context, userID uuid.UUID, require bool) error {
	query, args, err := qb.Update(usersTableName).
		Set("require_follow_approval", require).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return err
	}
	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}
