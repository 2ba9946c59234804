package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRomanMonth(t *testing.T) {
	assert.Equal(t, "I", RomanMonth(time.January))
	assert.Equal(t, "IV", RomanMonth(time.April))
	assert.Equal(t, "IX", RomanMonth(time.September))
	assert.Equal(t, "XII", RomanMonth(time.December))
	assert.Equal(t, "", RomanMonth(0))
	assert.Equal(t, "", RomanMonth(13))
}

func TestPadSequence(t *testing.T) {
	assert.Equal(t, "007", PadSequence(7))
	assert.Equal(t, "123", PadSequence(123))
	assert.Equal(t, "1000", PadSequence(1000))
}

func TestFormatNomorSurat(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

	// 10 surat masuk + 5 surat keluar already recorded.
	nomor, err := FormatNomorSurat("001", "02", 10+5+1, now)
	require.NoError(t, err)
	assert.Equal(t, "001/016/02-BAPPEDA/VI/2024", nomor)

	nomor, err = FormatNomorSurat(" 005 ", "PEM", 1, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "005/001/PEM-BAPPEDA/XII/2025", nomor)
}

func TestFormatNomorSuratRequiresCodes(t *testing.T) {
	now := time.Now()

	_, err := FormatNomorSurat("", "02", 1, now)
	assert.Error(t, err)

	_, err = FormatNomorSurat("001", "  ", 1, now)
	assert.Error(t, err)

	_, err = FormatNomorSurat("001", "02", 0, now)
	assert.Error(t, err)
}
