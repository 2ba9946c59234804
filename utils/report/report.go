// Package report renders tabular letter reports to PDF and Excel.
package report

import "errors"

const (
	FormatJSON  = "json"
	FormatPDF   = "pdf"
	FormatExcel = "xlsx"
)

const (
	agencyName    = "BADAN PERENCANAAN PEMBANGUNAN DAERAH"
	agencyAddress = "Jl. Jenderal Sudirman No. 1"
	agencyShort   = "BAPPEDA"
)

var ErrEmptyHeaders = errors.New("report has no columns")

// Document is what a renderer needs: title, period and a grid of cells.
type Document struct {
	Title   string
	Period  string
	Headers []string
	Rows    [][]string
}

func (d Document) validate() error {
	if len(d.Headers) == 0 {
		return ErrEmptyHeaders
	}
	return nil
}

// ContentType returns the MIME type and file extension for a format.
func ContentType(format string) (string, string) {
	switch format {
	case FormatPDF:
		return "application/pdf", ".pdf"
	case FormatExcel:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", ".xlsx"
	default:
		return "application/json", ".json"
	}
}
