package logic

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"post_sentinel/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_metrics.go -package mocks post_sentinel/logic IMetrics,IRequestObserver

type IMetrics interface {
	ServiceStarted()
	PollCycleCompleted()
	AccountPolled(outcome string)
	NewPostSaved()
	StartEnrichment() IRequestObserver
	EnrichmentFallback()
	AlertSent()
	AlertFailed()
	FetchThrottled()
	MonitoredAccounts(count int)
	EnrichQueueLength(length int)
}

type IRequestObserver interface {
	Finish()
}

type metrics struct {
	cfg                 *shared.Config
	serviceStarted      prometheus.Counter
	pollCycles          prometheus.Counter
	accountsPolled      *prometheus.CounterVec
	newPostsSaved       prometheus.Counter
	enrichDuration      *prometheus.HistogramVec
	enrichmentFallbacks prometheus.Counter
	alertsSent          prometheus.Counter
	alertsFailed        prometheus.Counter
	fetchesThrottled    prometheus.Counter
	monitoredAccounts   prometheus.Gauge
	enrichQueueLength   prometheus.Gauge
}

func NewMetrics(cfg *shared.Config) IMetrics {

	res := metrics{}
	res.cfg = cfg

	res.serviceStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "service_started",
		Help: "Service has started up",
	})
	prometheus.Register(res.serviceStarted)

	res.pollCycles = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "poll_cycles_completed",
		Help: "Number of completed poll cycles",
	})
	prometheus.Register(res.pollCycles)

	res.accountsPolled = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "accounts_polled",
		Help: "Number of per-account polls, by outcome",
	}, []string{"outcome"})
	prometheus.Register(res.accountsPolled)

	res.newPostsSaved = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "new_posts_saved",
		Help: "Number of new posts saved",
	})
	prometheus.Register(res.newPostsSaved)

	res.enrichDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "enrichment_duration",
		Help: "Duration in seconds of AI enrichment calls.",
	}, []string{"label"})
	prometheus.Register(res.enrichDuration)

	res.enrichmentFallbacks = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "enrichment_fallbacks",
		Help: "Number of posts that received the degraded fallback enrichment",
	})
	prometheus.Register(res.enrichmentFallbacks)

	res.alertsSent = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "alerts_sent",
		Help: "Number of alerts dispatched successfully",
	})
	prometheus.Register(res.alertsSent)

	res.alertsFailed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "alerts_failed",
		Help: "Number of alerts that failed for every recipient",
	})
	prometheus.Register(res.alertsFailed)

	res.fetchesThrottled = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "fetches_throttled",
		Help: "Number of throttling signals received from the gateway",
	})
	prometheus.Register(res.fetchesThrottled)

	res.monitoredAccounts = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "monitored_accounts",
		Help: "Number of active monitored accounts",
	})
	prometheus.Register(res.monitoredAccounts)

	res.enrichQueueLength = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "enrich_queue_length",
		Help: "Posts waiting in the enrichment queue",
	})
	prometheus.Register(res.enrichQueueLength)

	return &res
}

type requestObserver struct {
	label string
	start time.Time
	hgvec *prometheus.HistogramVec
}

func (ro *requestObserver) Finish() {
	now := time.Now()
	elapsed := float64(now.UnixMilli()-ro.start.UnixMilli()) / 1000.0
	ro.hgvec.WithLabelValues(ro.label).Observe(elapsed)
}

func (m *metrics) ServiceStarted() {
	m.serviceStarted.Add(1)
}

func (m *metrics) PollCycleCompleted() {
	m.pollCycles.Add(1)
}

func (m *metrics) AccountPolled(outcome string) {
	m.accountsPolled.WithLabelValues(outcome).Add(1)
}

func (m *metrics) NewPostSaved() {
	m.newPostsSaved.Add(1)
}

func (m *metrics) StartEnrichment() IRequestObserver {
	return &requestObserver{"enrich", time.Now(), m.enrichDuration}
}

func (m *metrics) EnrichmentFallback() {
	m.enrichmentFallbacks.Add(1)
}

func (m *metrics) AlertSent() {
	m.alertsSent.Add(1)
}

func (m *metrics) AlertFailed() {
	m.alertsFailed.Add(1)
}

func (m *metrics) FetchThrottled() {
	m.fetchesThrottled.Add(1)
}

func (m *metrics) MonitoredAccounts(count int) {
	m.monitoredAccounts.Set(float64(count))
}

func (m *metrics) EnrichQueueLength(length int) {
	m.enrichQueueLength.Set(float64(length))
}
