package services

import (
	"testing"
	"time"

	"esuka/utils/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNomorSurat(t *testing.T) {
	db := testdb.Open(t)
	seedReference(t, db)
	seedSuratMasuk(t, db, 8, false)
	seedSuratMasuk(t, db, 2, true)
	seedSuratKeluar(t, db, 5, false)

	svc := NewNomorSuratService(db, nil)
	svc.now = fixedClock(time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC))

	preview, err := svc.Generate(ctx, "001", "02")
	require.NoError(t, err)
	assert.Equal(t, "001/016/02-BAPPEDA/VI/2024", preview.NomorSurat)
	assert.Equal(t, 16, preview.Sequence)
}

func TestNomorSuratSequenceFollowsBothTables(t *testing.T) {
	db := testdb.Open(t)
	seedReference(t, db)
	svc := NewNomorSuratService(db, nil)

	first, err := svc.NextSequence(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, first)

	seedSuratKeluar(t, db, 1, false)
	second, err := svc.NextSequence(ctx)
	require.NoError(t, err)

	seedSuratMasuk(t, db, 1, false)
	third, err := svc.NextSequence(ctx)
	require.NoError(t, err)

	assert.Less(t, first, second)
	assert.Less(t, second, third)
}

func TestGenerateNomorSuratValidatesCodes(t *testing.T) {
	db := testdb.Open(t)
	seedReference(t, db)
	svc := NewNomorSuratService(db, nil)

	_, err := svc.Generate(ctx, "", "02")
	assert.ErrorIs(t, err, ErrCodesRequired)

	_, err = svc.Generate(ctx, "999", "02")
	assert.ErrorIs(t, err, ErrUnknownKlasifikasi)

	_, err = svc.Generate(ctx, "001", "99")
	assert.ErrorIs(t, err, ErrUnknownBidang)
}

func TestGenerateNomorSuratCountFailure(t *testing.T) {
	db := testdb.Open(t)
	seedReference(t, db)
	require.NoError(t, db.Migrator().DropTable("surat_keluar"))

	_, err := NewNomorSuratService(db, nil).Generate(ctx, "001", "02")
	assert.ErrorIs(t, err, ErrNomorSuratGeneration)
}
