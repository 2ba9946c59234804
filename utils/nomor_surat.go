package utils

import (
	"fmt"
	"strings"
	"time"
)

const nomorSuratAgency = "BAPPEDA"

var romanMonths = [...]string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X", "XI", "XII"}

// RomanMonth renders a calendar month (1-12) as an uppercase Roman numeral.
// Out of range values return an empty string.
func RomanMonth(month time.Month) string {
	if month < time.January || month > time.December {
		return ""
	}
	return romanMonths[month-1]
}

// PadSequence zero-pads seq to at least three digits.
func PadSequence(seq int) string {
	return fmt.Sprintf("%03d", seq)
}

// FormatNomorSurat builds "{klasifikasi}/{seq}/{bidang}-BAPPEDA/{month}/{year}".
// Month and year come from now, never from the letter's own tanggal_surat.
func FormatNomorSurat(klasifikasiKode, bidangKode string, seq int, now time.Time) (string, error) {
	klasifikasiKode = strings.TrimSpace(klasifikasiKode)
	bidangKode = strings.TrimSpace(bidangKode)
	if klasifikasiKode == "" || bidangKode == "" {
		return "", fmt.Errorf("klasifikasi and bidang codes are required")
	}
	if seq < 1 {
		return "", fmt.Errorf("sequence must be positive, got %d", seq)
	}

	return fmt.Sprintf("%s/%s/%s-%s/%s/%d",
		klasifikasiKode,
		PadSequence(seq),
		bidangKode,
		nomorSuratAgency,
		RomanMonth(now.Month()),
		now.Year(),
	), nil
}
