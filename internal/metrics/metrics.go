package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	cacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mandir",
			Name:      "cache_hits_total",
			Help:      "Cache hits by resource name.",
		},
		[]string{"resource"},
	)

	cacheMisses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mandir",
			Name:      "cache_misses_total",
			Help:      "Cache misses by resource name.",
		},
		[]string{"resource"},
	)

	cacheInvalidations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mandir",
			Name:      "cache_invalidations_total",
			Help:      "Cache invalidations by resource-name prefix.",
		},
		[]string{"resource"},
	)

	emailsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mandir",
			Name:      "notification_emails_total",
			Help:      "Notification emails by type and outcome.",
		},
		[]string{"type", "outcome"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(cacheHits, cacheMisses, cacheInvalidations, emailsSent)
	})
}

func CacheHit(resource string)          { cacheHits.WithLabelValues(resource).Inc() }
func CacheMiss(resource string)         { cacheMisses.WithLabelValues(resource).Inc() }
func CacheInvalidation(resource string) { cacheInvalidations.WithLabelValues(resource).Inc() }

func EmailSent(kind string)   { emailsSent.WithLabelValues(kind, "sent").Inc() }
func EmailFailed(kind string) { emailsSent.WithLabelValues(kind, "failed").Inc() }
