// Package status holds the reading-status state machine of an ownership record.
// Every state accepts every known target, so the machine is total and cyclic.
package status

import (
	"fmt"

	"github.com/Astemirdum/book-tracker/tracker/internal/errs"
	"github.com/Astemirdum/book-tracker/tracker/internal/model"
)

// Initial is the status of a freshly created ownership record.
const Initial = model.StatusUnread

// Parse validates a status token. Tokens are case-sensitive.
func Parse(token string) (model.BookStatus, error) {
	switch s := model.BookStatus(token); s {
	case model.StatusUnread, model.StatusReading, model.StatusRead:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %q", errs.ErrInvalidStatus, token)
	}
}

// Transition computes the next status for a requested token.
func Transition(current model.BookStatus, requested string) (model.BookStatus, error) {
	next, err := Parse(requested)
	if err != nil {
		return current, err
	}
	return next, nil
}

// Valid reports whether s is one of the known statuses.
func Valid(s model.BookStatus) bool {
	_, err := Parse(string(s))
	return err == nil
}
