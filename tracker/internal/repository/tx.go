package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

// Querier is implemented by both *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DB is the part of *pgxpool.Pool the repository uses.
type DB interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

type txCtxKey struct{}

func withTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txCtxKey{}, tx)
}

// QuerierFromCtx returns the transaction carried by ctx, or the pool.
func QuerierFromCtx(ctx context.Context, db Querier) Querier {
	if tx, ok := ctx.Value(txCtxKey{}).(pgx.Tx); ok {
		return tx
	}
	return db
}

type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type txManager struct {
	db DB
}

func NewTxManager(db DB) *txManager {
	return &txManager{db: db}
}

// RunInTx commits when fn succeeds and rolls back otherwise, including on panic.
// Nested calls join the outer transaction.
// Commit and rollback run detached from ctx cancellation so a dropped caller
// never leaves the unit of work half applied.
func (m *txManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(txCtxKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return mapError(errors.Wrap(err, "begin transaction"))
	}
	finishCtx := context.WithoutCancel(ctx)

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(finishCtx)
			panic(r)
		}
	}()

	if err = fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(finishCtx); rbErr != nil {
			return errors.Wrapf(rbErr, "rollback failed (original error: %v)", err)
		}
		return err
	}
	if err = tx.Commit(finishCtx); err != nil {
		return mapError(errors.Wrap(err, "commit transaction"))
	}
	return nil
}
