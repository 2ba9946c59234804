package dto

import (
	"strings"

	"esuka/models"
	"esuka/services"
	"esuka/utils/report"
)

type ReportRequest struct {
	Jenis  string `query:"jenis"`
	Tahun  int    `query:"tahun"`
	Bulan  int    `query:"bulan"`
	Format string `query:"format"`
}

// Validate checks format here and leaves jenis, tahun and bulan to
// services.ReportQuery.
func (r *ReportRequest) Validate() map[string]string {
	r.Format = strings.ToLower(strings.TrimSpace(r.Format))
	if r.Format == "" {
		r.Format = report.FormatJSON
	}

	errors := r.ToQuery().Validate()
	switch r.Format {
	case report.FormatJSON, report.FormatPDF, report.FormatExcel:
	default:
		errors["format"] = "format must be json, pdf, or xlsx"
	}
	return errors
}

func (r *ReportRequest) ToQuery() services.ReportQuery {
	return services.ReportQuery{
		Jenis: models.LetterType(strings.ToLower(strings.TrimSpace(r.Jenis))),
		Tahun: r.Tahun,
		Bulan: r.Bulan,
	}
}

// ReportResponse is the json rendering of a report.
type ReportResponse struct {
	Jenis   models.LetterType `json:"jenis"`
	Title   string            `json:"title"`
	Period  string            `json:"period"`
	Headers []string          `json:"headers"`
	Rows    [][]string        `json:"rows"`
}

func NewReportResponse(r *services.Report) ReportResponse {
	doc := r.Document()
	rows := doc.Rows
	if rows == nil {
		rows = [][]string{}
	}
	return ReportResponse{
		Jenis:   r.Jenis,
		Title:   doc.Title,
		Period:  doc.Period,
		Headers: doc.Headers,
		Rows:    rows,
	}
}
