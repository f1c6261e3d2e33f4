package logic

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"wren/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_metrics.go -package mocks wren/logic IMetrics,IRequestObserver

type IMetrics interface {
	StartApubRequestIn(label string) IRequestObserver
	StartApubRequestOut(label string) IRequestObserver
	ActivityHandled(activityType string)
	ActivityDropped(activityType string)
	DuplicateActivity(activityType string)
	NotificationCreated(kind string)
	PushAttempted()
	PushFailed()
	ServiceStarted()
	TotalFollowers(count int)
}

type IRequestObserver interface {
	Finish()
}

type metrics struct {
	cfg                  *shared.Config
	apubRequestsIn       *prometheus.HistogramVec
	apubRequestsOut      *prometheus.HistogramVec
	activitiesHandled    *prometheus.CounterVec
	activitiesDropped    *prometheus.CounterVec
	duplicateActivities  *prometheus.CounterVec
	notificationsCreated *prometheus.CounterVec
	pushAttempted        prometheus.Counter
	pushFailed           prometheus.Counter
	serviceStarted       prometheus.Counter
	totalFollowers       prometheus.Gauge
}

func NewMetrics(cfg *shared.Config) IMetrics {

	res := metrics{}
	res.cfg = cfg

	res.apubRequestsIn = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "apub_requests_in_duration",
		Help: "Duration in seconds of ActivityPub requests served.",
	}, []string{"label"})
	prometheus.Register(res.apubRequestsIn)

	res.apubRequestsOut = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "apub_requests_out_duration",
		Help: "Duration in seconds of ActivityPub requests made.",
	}, []string{"label"})
	prometheus.Register(res.apubRequestsOut)

	res.activitiesHandled = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "activities_handled",
		Help: "Number of inbound activities applied, by type",
	}, []string{"type"})
	prometheus.Register(res.activitiesHandled)

	res.activitiesDropped = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "activities_dropped",
		Help: "Number of inbound activities dropped after validation, by type",
	}, []string{"type"})
	prometheus.Register(res.activitiesDropped)

	res.duplicateActivities = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "duplicate_activities",
		Help: "Number of re-delivered activities ignored as duplicates, by type",
	}, []string{"type"})
	prometheus.Register(res.duplicateActivities)

	res.notificationsCreated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "notifications_created",
		Help: "Number of notifications created, by kind",
	}, []string{"kind"})
	prometheus.Register(res.notificationsCreated)

	res.pushAttempted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "push_deliveries_attempted",
		Help: "Number of web push deliveries attempted",
	})
	prometheus.Register(res.pushAttempted)

	res.pushFailed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "push_deliveries_failed",
		Help: "Number of web push deliveries that failed",
	})
	prometheus.Register(res.pushFailed)

	res.serviceStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "service_started",
		Help: "Service has started up",
	})
	prometheus.Register(res.serviceStarted)

	res.totalFollowers = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "total_follower_count",
		Help: "Total follower count of local users",
	})
	prometheus.Register(res.totalFollowers)

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

func (m *metrics) StartApubRequestIn(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.apubRequestsIn}
}

func (m *metrics) StartApubRequestOut(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.apubRequestsOut}
}

func (m *metrics) ActivityHandled(activityType string) {
	m.activitiesHandled.WithLabelValues(activityType).Add(1)
}

func (m *metrics) ActivityDropped(activityType string) {
	m.activitiesDropped.WithLabelValues(activityType).Add(1)
}

func (m *metrics) DuplicateActivity(activityType string) {
	m.duplicateActivities.WithLabelValues(activityType).Add(1)
}

func (m *metrics) NotificationCreated(kind string) {
	m.notificationsCreated.WithLabelValues(kind).Add(1)
}

func (m *metrics) PushAttempted() {
	m.pushAttempted.Add(1)
}

func (m *metrics) PushFailed() {
	m.pushFailed.Add(1)
}

func (m *metrics) ServiceStarted() {
	m.serviceStarted.Add(1)
}

func (m *metrics) TotalFollowers(count int) {
	m.totalFollowers.Set(float64(count))
}
