// Package metrics holds the Prometheus counters for mail numbering, disposisi
// routing, archiving, reports and notification delivery.
//
// All methods are safe on a nil *Metrics so services can run without
// instrumentation in tests.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "esuka"

type Metrics struct {
	NomorSuratTotal     *prometheus.CounterVec
	DisposisiTotal      *prometheus.CounterVec
	ArchiveTotal        *prometheus.CounterVec
	ReportsTotal        *prometheus.CounterVec
	ReportRows          *prometheus.HistogramVec
	EventsDroppedTotal  prometheus.Counter
	NotificationsTotal  *prometheus.CounterVec
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// New registers every metric on reg. Passing prometheus.DefaultRegisterer
// exposes them on /metrics.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		NomorSuratTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nomor_surat_generated_total",
			Help:      "Nomor surat previews generated, by result",
		}, []string{"result"}),
		DisposisiTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "disposisi_transitions_total",
			Help:      "Disposisi transitions by action (create, forward) and result",
		}, []string{"action", "result"}),
		ArchiveTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "archive_toggles_total",
			Help:      "Archive flag updates by jenis and target state",
		}, []string{"jenis", "archived"}),
		ReportsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_generated_total",
			Help:      "Reports generated by jenis and format",
		}, []string{"jenis", "format"}),
		ReportRows: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "report_rows",
			Help:      "Rows per generated report",
			Buckets:   []float64{0, 10, 50, 100, 250, 500, 1000},
		}, []string{"jenis"}),
		EventsDroppedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_dropped_total",
			Help:      "Events dropped because the bus buffer was full",
		}),
		NotificationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_sent_total",
			Help:      "FCM notifications by result",
		}, []string{"result"}),
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func (m *Metrics) RecordNomorSurat(err error) {
	if m == nil {
		return
	}
	m.NomorSuratTotal.WithLabelValues(result(err)).Inc()
}

func (m *Metrics) RecordDisposisi(action string, err error) {
	if m == nil {
		return
	}
	m.DisposisiTotal.WithLabelValues(action, result(err)).Inc()
}

func (m *Metrics) RecordArchive(jenis string, archived bool) {
	if m == nil {
		return
	}
	m.ArchiveTotal.WithLabelValues(jenis, strconv.FormatBool(archived)).Inc()
}

func (m *Metrics) RecordReport(jenis, format string, rows int) {
	if m == nil {
		return
	}
	m.ReportsTotal.WithLabelValues(jenis, format).Inc()
	m.ReportRows.WithLabelValues(jenis).Observe(float64(rows))
}

func (m *Metrics) RecordEventDropped() {
	if m == nil {
		return
	}
	m.EventsDroppedTotal.Inc()
}

func (m *Metrics) RecordNotification(err error) {
	if m == nil {
		return
	}
	m.NotificationsTotal.WithLabelValues(result(err)).Inc()
}

func (m *Metrics) RecordHTTP(method, route string, status int, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(seconds)
}
