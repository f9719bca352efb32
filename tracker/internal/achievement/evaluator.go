// Package achievement decides which catalog entries a user has newly unlocked.
package achievement

import (
	"sort"
	"time"

	"github.com/Astemirdum/book-tracker/tracker/internal/model"
)

// MetricValue resolves a metric name to the matching ledger counter.
// ok is false for metrics the ledger does not know; those never unlock.
func MetricValue(u model.User, metric model.Metric) (value int, ok bool) {
	switch metric {
	case model.MetricBooksRead:
		return u.BooksRead, true
	case model.MetricTotalBooks:
		return u.TotalBooks, true
	case model.MetricPoints:
		return u.Points, true
	case model.MetricLoginStreak:
		return u.LoginStreak, true
	default:
		return 0, false
	}
}

// Evaluate returns the achievements of catalog that u satisfies and has not
// earned yet, crediting each reward to u.Points as it unlocks.
//
// Entries are visited once, in ascending id order. A reward credited by an
// earlier entry counts towards a later Points goal in the same pass; an entry
// that was already visited is not reconsidered until the next evaluation.
func Evaluate(u *model.User, catalog []model.Achievement, earned map[int64]struct{}, now time.Time) []model.UnlockedAchievement {
	ordered := make([]model.Achievement, len(catalog))
	copy(ordered, catalog)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	seen := make(map[int64]struct{}, len(earned)+len(ordered))
	for id := range earned {
		seen[id] = struct{}{}
	}

	var unlocked []model.UnlockedAchievement
	for _, ach := range ordered {
		if _, ok := seen[ach.ID]; ok {
			continue
		}
		value, ok := MetricValue(*u, ach.Metric)
		if !ok || value < ach.Goal {
			continue
		}
		seen[ach.ID] = struct{}{}
		u.Points += ach.PointsReward
		unlocked = append(unlocked, model.UnlockedAchievement{
			Achievement: ach,
			EarnedAt:    now,
		})
	}
	return unlocked
}

// Progress reports every catalog entry with the user's current value.
func Progress(u model.User, catalog []model.Achievement, earned map[int64]struct{}) []model.AchievementProgress {
	out := make([]model.AchievementProgress, 0, len(catalog))
	for _, ach := range catalog {
		value, _ := MetricValue(u, ach.Metric)
		_, unlocked := earned[ach.ID]
		out = append(out, model.AchievementProgress{
			Achievement:   ach,
			ProgressValue: value,
			Unlocked:      unlocked,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
