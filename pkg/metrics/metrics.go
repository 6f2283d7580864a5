package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	TopicsGenerated = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "notifier", Name: "topics_generated_total", Help: "Number of learning topics generated successfully."},
	)
	TopicsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "notifier", Name: "topics_failed_total", Help: "Number of failed topic generation attempts."},
	)
	EmailsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "notifier", Name: "emails_sent_total", Help: "Number of emails accepted by the mail provider, by kind."},
		[]string{"kind"},
	)
	EmailsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "notifier", Name: "emails_failed_total", Help: "Number of failed email sends, by kind."},
		[]string{"kind"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "notifier", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "notifier", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(TopicsGenerated)
	reg.MustRegister(TopicsFailed)
	reg.MustRegister(EmailsSent)
	reg.MustRegister(EmailsFailed)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
