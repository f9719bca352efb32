package errs

import (
	"errors"
)

var (
	ErrNotFound             = errors.New("book not found in your library")
	ErrUserNotFound         = errors.New("user not found")
	ErrBookNotFound         = errors.New("book not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrInvalidStatus        = errors.New("invalid status value")
	ErrInvalidRating        = errors.New("rating must be between 1 and 5")
	ErrReviewTooLong        = errors.New("review must be at most 2000 characters")
	ErrAlreadyInLibrary     = errors.New("book is already in your library")
	ErrConflict             = errors.New("concurrent update conflict")
	ErrUnavailable          = errors.New("temporarily unavailable, try again")
	ErrUserName             = errors.New("user id is required")
	ErrFollowSelf           = errors.New("you cannot follow yourself")
	ErrAlreadyFollowing     = errors.New("follow request already exists")
	ErrFollowNotFound       = errors.New("follow not found")
)
