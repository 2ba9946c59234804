package letters

import (
	"testing"
	"time"

	"esuka/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuratMasukRequest(t *testing.T) {
	req := SuratMasukRequest{
		NomorSurat:      " 005/123/DPU/2024 ",
		TanggalSurat:    "2024-06-10",
		TanggalDiterima: "2024-06-12",
		Pengirim:        "Dinas PU",
		Perihal:         "Undangan rapat",
		Sifat:           "Segera",
	}
	require.Empty(t, req.Validate())

	in := req.ToInput()
	assert.Equal(t, "005/123/DPU/2024", in.NomorSurat)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), in.TanggalSurat)
	assert.Equal(t, time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC), in.TanggalDiterima)
	assert.Equal(t, models.SifatSegera, in.Sifat)
}

func TestSuratMasukRequestRejectsBadInput(t *testing.T) {
	req := SuratMasukRequest{TanggalSurat: "10/06/2024", Sifat: "biasa"}
	errs := req.Validate()

	assert.Equal(t, "nomor_surat is required", errs["nomor_surat"])
	assert.Equal(t, "tanggal_surat must be a date in YYYY-MM-DD format", errs["tanggal_surat"])
	assert.Equal(t, "tanggal_diterima is required", errs["tanggal_diterima"])
	assert.Contains(t, errs, "sifat")
	assert.Contains(t, errs, "pengirim")
	assert.Contains(t, errs, "perihal")
}

func TestSuratKeluarRequest(t *testing.T) {
	req := SuratKeluarRequest{
		KlasifikasiKode: "005",
		BidangKode:      "02",
		NomorSurat:      "005/016/02-BAPPEDA/VI/2024",
		TanggalSurat:    "2024-06-15",
		Penandatangan:   "Budi Santoso",
		Tujuan:          "Camat",
		Perihal:         "Undangan",
	}
	errs := req.Validate()
	assert.Equal(t, "tujuan is not a known jabatan", errs["tujuan"])

	req.Tujuan = string(models.JabatanKabidLitbang)
	require.Empty(t, req.Validate())

	in := req.ToInput()
	assert.Equal(t, models.JabatanKabidLitbang, in.Tujuan)
	assert.Equal(t, models.Sifat(""), in.Sifat)
	assert.Equal(t, 15, in.TanggalSurat.Day())
}

func TestNomorQueryValidate(t *testing.T) {
	q := NomorQuery{Klasifikasi: " 005 "}
	errs := q.Validate()
	assert.Equal(t, map[string]string{"bidang": "bidang is required"}, errs)
	assert.Equal(t, "005", q.Klasifikasi)
}

func TestNewSuratMasukResponseIncludesDisposisi(t *testing.T) {
	d := models.NewDisposisi(9, models.RiwayatEntry{})
	s := models.SuratMasuk{
		ID:              9,
		TanggalSurat:    time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		TanggalDiterima: time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC),
		Disposisi:       &d,
	}

	out := NewSuratMasukResponse(&s)
	assert.Equal(t, "2024-06-10", out.TanggalSurat)
	require.NotNil(t, out.Disposisi)
	assert.Equal(t, models.DisposisiRoot, out.Disposisi.TujuanJabatan)

	assert.Empty(t, NewSuratMasukResponses(nil))
}
