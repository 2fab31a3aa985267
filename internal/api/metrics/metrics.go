// Package metrics defines the application-level Prometheus metrics of the
// community API. HTTP request metrics come from echoprometheus; this package
// only holds what the handlers and the session gate record themselves.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const Namespace = "comunidad"

// Result label values.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// ── Auth ─────────────────────────────────────────────────────────────────────

// AuthRegistrationsTotal counts register attempts.
// Label result: "ok", "missing_field", "user_exists" or "error".
var AuthRegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "auth_registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// AuthLoginsTotal counts login attempts.
// Label result: "ok", "user_not_found", "bad_password" or "error".
var AuthLoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "auth_logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

var AuthLogoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "auth_logouts_total",
		Help:      "Total number of logout requests.",
	},
)

// SessionRejectionsTotal counts requests turned away by the session gate.
// Label reason: "missing_cookie", "invalid_cookie" or "invalid_session".
var SessionRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "session_rejections_total",
		Help:      "Total number of requests rejected by the session gate, by reason.",
	},
	[]string{"reason"},
)

// ── Resources ────────────────────────────────────────────────────────────────

var EventsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "events_created_total",
		Help:      "Total number of events created.",
	},
)

// PostsCreatedTotal counts created posts.
// Label with_media: "true" or "false".
var PostsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "posts_created_total",
		Help:      "Total number of posts created, by media presence.",
	},
	[]string{"with_media"},
)

// MediaUploadBytes observes the size of accepted media uploads.
var MediaUploadBytes = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "media_upload_bytes",
		Help:      "Size in bytes of media files attached to posts.",
		Buckets:   prometheus.ExponentialBuckets(16*1024, 4, 8), // 16KiB .. 256MiB
	},
)
