// Package metrics exports Prometheus counters for reading progress.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	StatusTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_status_transitions_total",
			Help: "Committed book status transitions",
		},
		[]string{"from", "to"},
	)

	AchievementsUnlockedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_achievements_unlocked_total",
			Help: "Achievements unlocked by users",
		},
		[]string{"achievement"},
	)

	ConflictsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_persistence_conflicts_total",
			Help: "Concurrent write conflicts, by outcome (retried or surfaced)",
		},
		[]string{"operation", "outcome"},
	)

	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_notifications_total",
			Help: "Notification deliveries by type and stage outcome",
		},
		[]string{"type", "status"},
	)

	FeedEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_feed_events_total",
			Help: "Reading-activity events handled by the feed consumer",
		},
		[]string{"kind", "status"},
	)
)

func RecordTransition(from, to string) {
	StatusTransitionsTotal.WithLabelValues(from, to).Inc()
}

func RecordAchievementUnlocked(title string) {
	AchievementsUnlockedTotal.WithLabelValues(title).Inc()
}

func RecordConflict(operation, outcome string) {
	ConflictsTotal.WithLabelValues(operation, outcome).Inc()
}

// RecordNotification status is one of "stored", "pushed", "store_failed", "push_failed".
func RecordNotification(typ, status string) {
	NotificationsTotal.WithLabelValues(typ, status).Inc()
}

func RecordFeedEvent(kind, status string) {
	FeedEventsTotal.WithLabelValues(kind, status).Inc()
}
