package dto

import (
	"testing"

	"esuka/models"
	"esuka/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequestValidate(t *testing.T) {
	req := RegisterRequest{FullName: "  ", Email: "bukan-email", Password: "short"}
	errs := req.Validate()

	assert.Equal(t, "full_name is required", errs["full_name"])
	assert.Equal(t, "email must be a valid email", errs["email"])
	assert.Equal(t, "password must be at least 8 characters", errs["password"])

	req = RegisterRequest{FullName: " Siti Aminah ", Email: " siti@bappeda.go.id ", Password: "rahasia123"}
	assert.Empty(t, req.Validate())
	assert.Equal(t, "Siti Aminah", req.FullName)
	assert.Equal(t, services.RegisterInput{FullName: "Siti Aminah", Email: "siti@bappeda.go.id", Password: "rahasia123"}, req.ToInput())
}

func TestPasswordResetSubmissionValidate(t *testing.T) {
	req := PasswordResetSubmission{Token: "abc", Password: "rahasia123", ConfirmPassword: "rahasia124"}
	errs := req.Validate()
	assert.Equal(t, "confirm_password does not match", errs["confirm_password"])

	req.ConfirmPassword = "rahasia123"
	assert.Empty(t, req.Validate())
}

func TestForwardDisposisiRequestValidate(t *testing.T) {
	req := ForwardDisposisiRequest{TujuanJabatan: "Kepala Bidang Fiktif"}
	assert.Equal(t, "tujuan_jabatan is not a known jabatan", req.Validate()["tujuan_jabatan"])

	req = ForwardDisposisiRequest{}
	assert.Equal(t, "tujuan_jabatan is required", req.Validate()["tujuan_jabatan"])

	req = ForwardDisposisiRequest{TujuanJabatan: " " + string(models.JabatanKepalaBadan) + " ", Catatan: " segera "}
	assert.Empty(t, req.Validate())
	assert.Equal(t, models.JabatanKepalaBadan, req.Target())
	assert.Equal(t, "segera", req.Catatan)
}

func TestReferenceRequestsValidate(t *testing.T) {
	b := BidangRequest{Kode: " ", Nama: "Perencanaan"}
	assert.Contains(t, b.Validate(), "kode")

	k := KlasifikasiRequest{Kode: "005", Keterangan: " Undangan "}
	assert.Empty(t, k.Validate())
	assert.Equal(t, "Undangan", k.Keterangan)
}

func TestReportRequestValidate(t *testing.T) {
	req := ReportRequest{Jenis: "MASUK", Tahun: 2024, Bulan: 6}
	require.Empty(t, req.Validate())
	assert.Equal(t, "json", req.Format)
	assert.Equal(t, models.LetterMasuk, req.ToQuery().Jenis)

	req = ReportRequest{Jenis: "internal", Tahun: 1999, Bulan: 13, Format: "docx"}
	errs := req.Validate()
	assert.Contains(t, errs, "jenis")
	assert.Contains(t, errs, "tahun")
	assert.Contains(t, errs, "bulan")
	assert.Equal(t, "format must be json, pdf, or xlsx", errs["format"])
}

func TestNewDisposisiResponse(t *testing.T) {
	d := models.NewDisposisi(3, models.RiwayatEntry{From: "Admin TU", Catatan: "cek"})
	d.SuratMasuk = &models.SuratMasuk{ID: 3, NomorSurat: "005/12/2024", Pengirim: "Dinas PU"}

	out := NewDisposisiResponse(&d)
	assert.Equal(t, uint(3), out.SuratMasukID)
	assert.Equal(t, models.DisposisiRoot, out.TujuanJabatan)
	assert.False(t, out.Selesai)
	require.Len(t, out.Riwayat, 1)
	require.NotNil(t, out.SuratMasuk)
	assert.Equal(t, "Dinas PU", out.SuratMasuk.Pengirim)

	assert.Equal(t, DisposisiResponse{}, NewDisposisiResponse(nil))
}
