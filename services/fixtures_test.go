package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"sync"
	"testing"
	"time"

	"esuka/models"
	"esuka/utils"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var ctx = context.Background()

func seedUser(t *testing.T, db *gorm.DB, email string, role models.Role, jabatan models.Jabatan) models.User {
	t.Helper()
	hash, err := utils.HashPassword("password123")
	require.NoError(t, err)

	u := models.User{
		FullName:     "User " + email,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Jabatan:      jabatan,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func seedReference(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&models.KlasifikasiSurat{Kode: "001", Keterangan: "Umum"}).Error)
	require.NoError(t, db.Create(&models.Bidang{Kode: "02", Nama: "Perekonomian"}).Error)
}

func seedSuratMasuk(t *testing.T, db *gorm.DB, n int, archived bool) []models.SuratMasuk {
	t.Helper()
	out := make([]models.SuratMasuk, 0, n)
	for i := 0; i < n; i++ {
		sm := models.SuratMasuk{
			NomorSurat:      fmt.Sprintf("SM/%03d", i+1),
			TanggalSurat:    time.Date(2024, 6, 1+i%28, 0, 0, 0, 0, time.UTC),
			TanggalDiterima: time.Date(2024, 6, 2+i%27, 0, 0, 0, 0, time.UTC),
			Pengirim:        fmt.Sprintf("Dinas %d", i+1),
			Perihal:         "Undangan rapat",
			Sifat:           models.SifatBiasa,
			IsArchived:      archived,
		}
		require.NoError(t, db.Create(&sm).Error)
		out = append(out, sm)
	}
	return out
}

func seedSuratKeluar(t *testing.T, db *gorm.DB, n int, archived bool) []models.SuratKeluar {
	t.Helper()
	out := make([]models.SuratKeluar, 0, n)
	for i := 0; i < n; i++ {
		sk := models.SuratKeluar{
			NomorSurat:    fmt.Sprintf("SK/%03d", i+1),
			TanggalSurat:  time.Date(2024, 6, 1+i%28, 0, 0, 0, 0, time.UTC),
			Penandatangan: "Kepala",
			Tujuan:        models.JabatanKepalaBadan,
			Perihal:       "Balasan",
			IsArchived:    archived,
		}
		require.NoError(t, db.Create(&sk).Error)
		out = append(out, sk)
	}
	return out
}

// memoryStore records uploads in memory.
type memoryStore struct {
	mu      sync.Mutex
	objects map[string]string
	deleted []string
	// deleteErr, when set, is returned by Delete after recording the call.
	deleteErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{objects: map[string]string{}}
}

func (m *memoryStore) Upload(_ context.Context, fh *multipart.FileHeader, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := "https://files.test/" + key
	m.objects[u] = fh.Filename
	return u, nil
}

func (m *memoryStore) Delete(_ context.Context, fileURL string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, fileURL)
	m.deleted = append(m.deleted, fileURL)
	return m.deleteErr
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
