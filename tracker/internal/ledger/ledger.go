// Package ledger applies counter deltas to a user's progress ledger.
package ledger

import (
	"time"

	"github.com/Astemirdum/book-tracker/tracker/internal/model"
)

// DefaultReadReward is the number of points granted for finishing a book.
const DefaultReadReward = 10

// Delta describes what a single transition did to the ledger.
type Delta struct {
	BooksRead int
	Points    int
	// Finished is set when the transition crossed into Read.
	Finished bool
}

func (d Delta) IsZero() bool {
	return d.BooksRead == 0 && d.Points == 0
}

// Compute returns the delta for prev -> next without touching any user.
// Only crossings of the Read boundary move the counters.
func Compute(prev, next model.BookStatus, reward int) Delta {
	switch {
	case prev != model.StatusRead && next == model.StatusRead:
		return Delta{BooksRead: 1, Points: reward, Finished: true}
	case prev == model.StatusRead && next != model.StatusRead:
		return Delta{BooksRead: -1, Points: -reward}
	default:
		return Delta{}
	}
}

// ApplyTransition mutates u with the delta of prev -> next and returns it.
// totalBooks is never touched here.
func ApplyTransition(u *model.User, prev, next model.BookStatus, reward int) Delta {
	d := Compute(prev, next, reward)
	u.BooksRead += d.BooksRead
	u.Points += d.Points
	return d
}

// AddToLibrary accounts for a new ownership record.
func AddToLibrary(u *model.User) {
	u.TotalBooks++
}

// ApplyLogin runs the once-per-day login streak rule and reports whether
// the ledger changed. Days are UTC calendar days.
func ApplyLogin(u *model.User, now time.Time) bool {
	today := DayStart(now)
	if u.LastLoginDate != nil {
		last := DayStart(*u.LastLoginDate)
		switch {
		case last.Equal(today):
			return false
		case last.Equal(today.AddDate(0, 0, -1)):
			u.LoginStreak++
		default:
			u.LoginStreak = 1
		}
	} else {
		u.LoginStreak = 1
	}
	u.LastLoginDate = &today
	return true
}

// DayStart truncates t to midnight UTC of its calendar day.
func DayStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
