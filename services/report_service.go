package services

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"esuka/models"
	"esuka/utils/metrics"
	"esuka/utils/report"

	"gorm.io/gorm"
)

const reportDateLayout = "02-01-2006"

var bulanIndonesia = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// NamaBulan returns the Indonesian month name, "" when out of range.
func NamaBulan(month time.Month) string {
	if month < time.January || month > time.December {
		return ""
	}
	return bulanIndonesia[month-1]
}

type ReportQuery struct {
	Jenis models.LetterType
	Tahun int
	Bulan int
}

func (q ReportQuery) Validate() map[string]string {
	errs := map[string]string{}
	if !q.Jenis.IsValid() {
		errs["jenis"] = "jenis must be masuk or keluar"
	}
	if q.Tahun < 2000 || q.Tahun > 2100 {
		errs["tahun"] = "tahun must be between 2000 and 2100"
	}
	if q.Bulan < 1 || q.Bulan > 12 {
		errs["bulan"] = "bulan must be between 1 and 12"
	}
	return errs
}

// Column is a (header, accessor) pair handed to the renderers.
type Column struct {
	Header   string
	Accessor func(row any) string
}

type Report struct {
	Jenis   models.LetterType
	Title   string
	Period  string
	Columns []Column
	Records []any
}

// Headers includes the leading "No" column.
func (r *Report) Headers() []string {
	out := make([]string, 0, len(r.Columns)+1)
	out = append(out, "No")
	for _, c := range r.Columns {
		out = append(out, c.Header)
	}
	return out
}

// Cells renders record i with its 1-based number first.
func (r *Report) Cells(i int) []string {
	out := make([]string, 0, len(r.Columns)+1)
	out = append(out, strconv.Itoa(i+1))
	for _, c := range r.Columns {
		out = append(out, c.Accessor(r.Records[i]))
	}
	return out
}

func (r *Report) Document() report.Document {
	rows := make([][]string, len(r.Records))
	for i := range r.Records {
		rows[i] = r.Cells(i)
	}
	return report.Document{Title: r.Title, Period: r.Period, Headers: r.Headers(), Rows: rows}
}

var suratMasukColumns = []Column{
	{Header: "Nomor Surat", Accessor: func(row any) string { return row.(models.SuratMasuk).NomorSurat }},
	{Header: "Tanggal Surat", Accessor: func(row any) string { return row.(models.SuratMasuk).TanggalSurat.Format(reportDateLayout) }},
	{Header: "Tanggal Diterima", Accessor: func(row any) string { return row.(models.SuratMasuk).TanggalDiterima.Format(reportDateLayout) }},
	{Header: "Pengirim", Accessor: func(row any) string { return row.(models.SuratMasuk).Pengirim }},
	{Header: "Perihal", Accessor: func(row any) string { return row.(models.SuratMasuk).Perihal }},
	{Header: "Sifat", Accessor: func(row any) string { return string(row.(models.SuratMasuk).Sifat) }},
}

var suratKeluarColumns = []Column{
	{Header: "Nomor Surat", Accessor: func(row any) string { return row.(models.SuratKeluar).NomorSurat }},
	{Header: "Tanggal Surat", Accessor: func(row any) string { return row.(models.SuratKeluar).TanggalSurat.Format(reportDateLayout) }},
	{Header: "Penandatangan", Accessor: func(row any) string { return row.(models.SuratKeluar).Penandatangan }},
	{Header: "Tujuan", Accessor: func(row any) string { return string(row.(models.SuratKeluar).Tujuan) }},
	{Header: "Perihal", Accessor: func(row any) string { return row.(models.SuratKeluar).Perihal }},
	{Header: "Sifat", Accessor: func(row any) string { return string(row.(models.SuratKeluar).Sifat) }},
}

type ReportService struct {
	db      *gorm.DB
	metrics *metrics.Metrics
}

func NewReportService(db *gorm.DB, m *metrics.Metrics) *ReportService {
	return &ReportService{db: db, metrics: m}
}

// Build selects the letters whose tanggal_surat falls in the month, oldest
// first. Archived letters are included.
func (s *ReportService) Build(ctx context.Context, actor Actor, q ReportQuery) (*Report, error) {
	if errs := q.Validate(); len(errs) > 0 {
		return nil, ErrInvalidReportQuery
	}

	start := time.Date(q.Tahun, time.Month(q.Bulan), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	db := s.db.WithContext(ctx).
		Where("tanggal_surat >= ? AND tanggal_surat < ?", start, end).
		Order("tanggal_surat ASC").Order("id ASC")

	r := &Report{
		Jenis:  q.Jenis,
		Period: fmt.Sprintf("%s %d", NamaBulan(start.Month()), q.Tahun),
	}

	switch q.Jenis {
	case models.LetterMasuk:
		var rows []models.SuratMasuk
		if err := db.Find(&rows).Error; err != nil {
			return nil, err
		}
		r.Title = "Laporan Surat Masuk"
		r.Columns = suratMasukColumns
		for _, row := range rows {
			r.Records = append(r.Records, row)
		}
	case models.LetterKeluar:
		var rows []models.SuratKeluar
		if err := db.Find(&rows).Error; err != nil {
			return nil, err
		}
		r.Title = "Laporan Surat Keluar"
		r.Columns = suratKeluarColumns
		for _, row := range rows {
			r.Records = append(r.Records, row)
		}
	}

	log.Printf("📄 %s %s requested by %s (user %d), %d rows", r.Title, r.Period, actor.Name(), actor.ID, len(r.Records))
	return r, nil
}

// Render produces the downloadable bytes for pdf or xlsx.
func (s *ReportService) Render(r *Report, format string) ([]byte, error) {
	var (
		out []byte
		err error
	)
	switch format {
	case report.FormatPDF:
		out, err = report.RenderPDF(r.Document())
	case report.FormatExcel:
		out, err = report.RenderExcel(r.Document())
	default:
		return nil, fmt.Errorf("unsupported report format %q", format)
	}
	if err != nil {
		return nil, err
	}

	s.metrics.RecordReport(string(r.Jenis), format, len(r.Records))
	return out, nil
}
