package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorders(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RecordNomorSurat(nil)
	m.RecordNomorSurat(errors.New("count failed"))
	m.RecordDisposisi("forward", nil)
	m.RecordArchive("masuk", true)
	m.RecordArchive("masuk", true)
	m.RecordReport("keluar", "pdf", 12)
	m.RecordEventDropped()
	m.RecordHTTP("GET", "/api/arsip", 200, 0.01)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.NomorSuratTotal.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NomorSuratTotal.WithLabelValues("error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DisposisiTotal.WithLabelValues("forward", "success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ArchiveTotal.WithLabelValues("masuk", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReportsTotal.WithLabelValues("keluar", "pdf")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsDroppedTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/arsip", "200")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordNomorSurat(nil)
		m.RecordDisposisi("create", nil)
		m.RecordArchive("keluar", false)
		m.RecordReport("masuk", "xlsx", 0)
		m.RecordEventDropped()
		m.RecordNotification(nil)
		m.RecordHTTP("POST", "/", 500, 1)
	})
}
