package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Astemirdum/book-tracker/tracker/internal/errs"
	"github.com/Astemirdum/book-tracker/tracker/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

func ownershipSelect() sq.SelectBuilder {
	return qb.Select("ub.id", "ub.user_id", "ub.book_id", "b.title", "ub.status",
		"ub.review", "ub.rating", "ub.created_at", "ub.updated_at").
		From(userBooksTableName + " ub").
		Join(fmt.Sprintf("%s b on b.id = ub.book_id", booksTableName))
}

func (r *repository) getOwnership(ctx context.Context, where sq.Eq) (model.UserBook, error) {
	query, args, err := ownershipSelect().
		Where(where).
		Suffix("for update of ub").
		ToSql()
	if err != nil {
		return model.UserBook{}, err
	}
	rows, err := r.q(ctx).Query(ctx, query, args...)
	if err != nil {
		return model.UserBook{}, mapError(err)
	}
	ub, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.UserBook])
	if err != nil {
		return model.UserBook{}, mapError(err)
	}
	return ub, nil
}

// GetOwnership locks the record for the rest of the surrounding transaction.
func (r *repository) GetOwnership(ctx context.Context, userID uuid.UUID, bookID int64) (model.UserBook, error) {
	return r.getOwnership(ctx, sq.Eq{"ub.user_id": userID, "ub.book_id": bookID})
}

func (r *repository) GetOwnershipByID(ctx context.Context, userID uuid.UUID, id int64) (model.UserBook, error) {
	return r.getOwnership(ctx, sq.Eq{"ub.user_id": userID, "ub.id": id})
}

func (r *repository) CreateOwnership(ctx context.Context, userID uuid.UUID, bookID int64) (model.UserBook, error) {
	q := fmt.Sprintf(`
with ins as (
    insert into %s (user_id, book_id, status)
    values ($1, $2, $3)
    returning id, user_id, book_id, status, review, rating, created_at, updated_at
)
select ins.id, ins.user_id, ins.book_id, b.title, ins.status, ins.review, ins.rating, ins.created_at, ins.updated_at
from ins join %s b on b.id = ins.book_id`, userBooksTableName, booksTableName)

	rows, err := r.q(ctx).Query(ctx, q, userID, bookID, model.StatusUnread)
	if err != nil {
		return model.UserBook{}, r.createOwnershipErr(err, userID, bookID)
	}
	ub, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.UserBook])
	if err != nil {
		return model.UserBook{}, r.createOwnershipErr(err, userID, bookID)
	}
	return ub, nil
}

func (r *repository) createOwnershipErr(err error, userID uuid.UUID, bookID int64) error {
	switch {
	case isCode(err, pgerrcode.UniqueViolation):
		return errs.ErrAlreadyInLibrary
	case isCode(err, pgerrcode.ForeignKeyViolation):
		return errs.ErrBookNotFound
	}
	r.log.Error("CreateOwnership", zap.Stringer("user_id", userID), zap.Int64("book_id", bookID), zap.Error(err))
	return mapError(err)
}

func (r *repository) SaveOwnership(ctx context.Context, ub model.UserBook) error {
	query, args, err := qb.Update(userBooksTableName).
		Set("status", ub.Status).
		Set("review", ub.Review).
		Set("rating", ub.Rating).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": ub.ID, "user_id": ub.UserID}).
		ToSql()
	if err != nil {
		return err
	}
	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
