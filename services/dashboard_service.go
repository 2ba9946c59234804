package services

import (
	"context"
	"time"

	"esuka/models"

	"gorm.io/gorm"
)

type MonthCount struct {
	Bulan  string `json:"bulan"`
	Masuk  int    `json:"masuk"`
	Keluar int    `json:"keluar"`
}

type DashboardSummary struct {
	SuratMasukBulanIni  int64               `json:"surat_masuk_bulan_ini"`
	SuratKeluarBulanIni int64               `json:"surat_keluar_bulan_ini"`
	DisposisiBulanIni   int64               `json:"disposisi_bulan_ini"`
	PerBulan            []MonthCount        `json:"per_bulan"`
	SuratMasukTerbaru   []models.SuratMasuk `json:"surat_masuk_terbaru"`
}

type DashboardService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db, now: time.Now}
}

func (s *DashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	now := s.now()
	loc := now.Location()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	monthEnd := monthStart.AddDate(0, 1, 0)
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, loc)
	yearEnd := yearStart.AddDate(1, 0, 0)

	db := s.db.WithContext(ctx)
	out := &DashboardSummary{}

	counts := []struct {
		model any
		dest  *int64
	}{
		{&models.SuratMasuk{}, &out.SuratMasukBulanIni},
		{&models.SuratKeluar{}, &out.SuratKeluarBulanIni},
		{&models.Disposisi{}, &out.DisposisiBulanIni},
	}
	for _, c := range counts {
		err := db.Model(c.model).
			Where("created_at >= ? AND created_at < ?", monthStart, monthEnd).
			Count(c.dest).Error
		if err != nil {
			return nil, err
		}
	}

	// Bucketed in Go to stay portable across postgres, mysql and sqlite.
	var masukDates, keluarDates []time.Time
	if err := db.Model(&models.SuratMasuk{}).Where("created_at >= ? AND created_at < ?", yearStart, yearEnd).Pluck("created_at", &masukDates).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.SuratKeluar{}).Where("created_at >= ? AND created_at < ?", yearStart, yearEnd).Pluck("created_at", &keluarDates).Error; err != nil {
		return nil, err
	}

	out.PerBulan = make([]MonthCount, 12)
	for i := range out.PerBulan {
		out.PerBulan[i].Bulan = NamaBulan(time.Month(i + 1))
	}
	for _, d := range masukDates {
		out.PerBulan[d.In(loc).Month()-1].Masuk++
	}
	for _, d := range keluarDates {
		out.PerBulan[d.In(loc).Month()-1].Keluar++
	}

	if err := db.Order("created_at DESC").Order("id DESC").Limit(5).Find(&out.SuratMasukTerbaru).Error; err != nil {
		return nil, err
	}
	return out, nil
}
