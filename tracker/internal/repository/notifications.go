package repository

import (
	"context"

	"github.com/Astemirdum/book-tracker/tracker/internal/errs"
	"github.com/Astemirdum/book-tracker/tracker/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func (r *repository) CreateNotification(ctx context.Context, n model.Notification) error {
	query, args, err := qb.Insert(notificationsTableName).
		Columns("id", "user_id", "type", "message", "is_read", "created_at").
		Values(n.ID, n.UserID, n.Type, n.Message, n.IsRead, n.CreatedAt).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.q(ctx).Exec(ctx, query, args...)
	return mapError(err)
}

func (r *repository) ListNotifications(ctx context.Context, userID uuid.UUID, limit int) ([]model.Notification, error) {
	b := qb.Select("id", "user_id", "type", "message", "is_read", "created_at").
		From(notificationsTableName).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at desc")
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
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Notification])
	if err != nil {
		return nil, mapError(err)
	}
	return items, nil
}

func (r *repository) MarkNotificationRead(ctx context.Context, userID, id uuid.UUID) error {
	query, args, err := qb.Update(notificationsTableName).
		Set("is_read", true).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return err
	}
	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotificationNotFound
	}
	return nil
}
