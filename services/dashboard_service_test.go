package services

import (
	"testing"
	"time"

	"esuka/models"
	"esuka/utils/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardSummary(t *testing.T) {
	db := testdb.Open(t)
	svc := NewDashboardService(db)
	svc.now = fixedClock(time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))

	masuk := seedSuratMasuk(t, db, 7, false)
	keluar := seedSuratKeluar(t, db, 2, false)

	june := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)
	march := time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)
	for i := range masuk {
		at := june.Add(time.Duration(i) * time.Hour)
		if i >= 5 {
			at = march
		}
		require.NoError(t, db.Model(&masuk[i]).Update("created_at", at).Error)
	}
	require.NoError(t, db.Model(&keluar[0]).Update("created_at", june).Error)
	require.NoError(t, db.Model(&keluar[1]).Update("created_at", time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)).Error)

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(5), summary.SuratMasukBulanIni)
	assert.Equal(t, int64(1), summary.SuratKeluarBulanIni)
	assert.Equal(t, int64(0), summary.DisposisiBulanIni)

	require.Len(t, summary.PerBulan, 12)
	assert.Equal(t, "Maret", summary.PerBulan[2].Bulan)
	assert.Equal(t, 2, summary.PerBulan[2].Masuk)
	assert.Equal(t, 5, summary.PerBulan[5].Masuk)
	assert.Equal(t, 1, summary.PerBulan[5].Keluar)

	require.Len(t, summary.SuratMasukTerbaru, 5)
	assert.Equal(t, masuk[4].ID, summary.SuratMasukTerbaru[0].ID)
	for _, s := range summary.SuratMasukTerbaru {
		assert.Equal(t, models.SifatBiasa, s.Sifat)
	}
}
