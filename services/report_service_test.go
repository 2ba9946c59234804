package services

import (
	"bytes"
	"testing"
	"time"

	"esuka/models"
	"esuka/utils/report"
	"esuka/utils/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamaBulan(t *testing.T) {
	assert.Equal(t, "Januari", NamaBulan(time.January))
	assert.Equal(t, "Juni", NamaBulan(time.June))
	assert.Equal(t, "Desember", NamaBulan(time.December))
	assert.Equal(t, "", NamaBulan(13))
}

func TestBuildReportSuratMasuk(t *testing.T) {
	db := testdb.Open(t)
	svc := NewReportService(db, nil)

	rows := []models.SuratMasuk{
		{NomorSurat: "B", TanggalSurat: time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC), TanggalDiterima: time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC), Pengirim: "Dinas B", Perihal: "Kedua"},
		{NomorSurat: "A", TanggalSurat: time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), TanggalDiterima: time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC), Pengirim: "Dinas A", Perihal: "Pertama", Sifat: models.SifatPenting, IsArchived: true},
		{NomorSurat: "C", TanggalSurat: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), TanggalDiterima: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), Pengirim: "Dinas C", Perihal: "Juli"},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}

	r, err := svc.Build(ctx, Actor{ID: 1, FullName: "Admin"}, ReportQuery{Jenis: models.LetterMasuk, Tahun: 2024, Bulan: 6})
	require.NoError(t, err)
	assert.Equal(t, "Laporan Surat Masuk", r.Title)
	assert.Equal(t, "Juni 2024", r.Period)
	assert.Equal(t, []string{"No", "Nomor Surat", "Tanggal Surat", "Tanggal Diterima", "Pengirim", "Perihal", "Sifat"}, r.Headers())

	doc := r.Document()
	require.Len(t, doc.Rows, 2)
	assert.Equal(t, []string{"1", "A", "03-06-2024", "04-06-2024", "Dinas A", "Pertama", "Penting"}, doc.Rows[0])
	assert.Equal(t, "2", doc.Rows[1][0])
	assert.Equal(t, "B", doc.Rows[1][1])

	out, err := svc.Render(r, report.FormatPDF)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))

	_, err = svc.Render(r, "docx")
	assert.Error(t, err)
}

func TestBuildReportSuratKeluar(t *testing.T) {
	db := testdb.Open(t)
	svc := NewReportService(db, nil)
	seedSuratKeluar(t, db, 2, false)

	r, err := svc.Build(ctx, Actor{ID: 1}, ReportQuery{Jenis: models.LetterKeluar, Tahun: 2024, Bulan: 6})
	require.NoError(t, err)
	assert.Equal(t, "Laporan Surat Keluar", r.Title)
	assert.Equal(t, []string{"No", "Nomor Surat", "Tanggal Surat", "Penandatangan", "Tujuan", "Perihal", "Sifat"}, r.Headers())
	assert.Len(t, r.Records, 2)

	out, err := svc.Render(r, report.FormatExcel)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestReportQueryValidate(t *testing.T) {
	errs := ReportQuery{Jenis: "semua", Tahun: 1990, Bulan: 13}.Validate()
	assert.Len(t, errs, 3)
	assert.Empty(t, ReportQuery{Jenis: models.LetterMasuk, Tahun: 2024, Bulan: 1}.Validate())
}
