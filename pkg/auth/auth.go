package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

const XUserNameHeader = "X-User-Name"

type ctxKey struct{}

var ErrNoUser = errors.New("user id is missing")

func SetUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func GetUserID(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctx.Value(ctxKey{}).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, ErrNoUser
	}
	return id, nil
}
