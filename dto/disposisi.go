package dto

import (
	"strings"
	"time"

	"esuka/models"
)

type CreateDisposisiRequest struct {
	Catatan string `json:"catatan" validate:"max=2000"`
}

func (r *CreateDisposisiRequest) Validate() map[string]string {
	r.Catatan = strings.TrimSpace(r.Catatan)
	return ValidateStruct(r)
}

type ForwardDisposisiRequest struct {
	TujuanJabatan string `json:"tujuan_jabatan" validate:"required,jabatan"`
	Catatan       string `json:"catatan" validate:"max=2000"`
}

func (r *ForwardDisposisiRequest) Validate() map[string]string {
	r.TujuanJabatan = strings.TrimSpace(r.TujuanJabatan)
	r.Catatan = strings.TrimSpace(r.Catatan)
	return ValidateStruct(r)
}

func (r *ForwardDisposisiRequest) Target() models.Jabatan {
	return models.Jabatan(r.TujuanJabatan)
}

type SuratMasukBrief struct {
	ID              uint         `json:"id"`
	NomorSurat      string       `json:"nomor_surat"`
	Pengirim        string       `json:"pengirim"`
	Perihal         string       `json:"perihal"`
	Sifat           models.Sifat `json:"sifat,omitempty"`
	TanggalDiterima string       `json:"tanggal_diterima"`
	FileURL         string       `json:"file_url,omitempty"`
}

type DisposisiResponse struct {
	ID            uint                  `json:"id"`
	SuratMasukID  uint                  `json:"surat_masuk_id"`
	TujuanJabatan models.Jabatan        `json:"tujuan_jabatan"`
	Status        string                `json:"status"`
	Catatan       string                `json:"catatan"`
	Selesai       bool                  `json:"selesai"`
	Riwayat       []models.RiwayatEntry `json:"riwayat"`
	SuratMasuk    *SuratMasukBrief      `json:"surat_masuk,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

func NewDisposisiResponse(d *models.Disposisi) DisposisiResponse {
	if d == nil {
		return DisposisiResponse{}
	}

	out := DisposisiResponse{
		ID:            d.ID,
		SuratMasukID:  d.SuratMasukID,
		TujuanJabatan: d.TujuanJabatan,
		Status:        d.Status,
		Catatan:       d.Catatan,
		Selesai:       d.IsSelesai(),
		Riwayat:       []models.RiwayatEntry(d.Riwayat),
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
	if out.Riwayat == nil {
		out.Riwayat = []models.RiwayatEntry{}
	}
	if s := d.SuratMasuk; s != nil {
		out.SuratMasuk = &SuratMasukBrief{
			ID:              s.ID,
			NomorSurat:      s.NomorSurat,
			Pengirim:        s.Pengirim,
			Perihal:         s.Perihal,
			Sifat:           s.Sifat,
			TanggalDiterima: s.TanggalDiterima.Format(DateLayout),
			FileURL:         s.FileURL,
		}
	}
	return out
}

func NewDisposisiResponses(list []models.Disposisi) []DisposisiResponse {
	out := make([]DisposisiResponse, 0, len(list))
	for i := range list {
		out = append(out, NewDisposisiResponse(&list[i]))
	}
	return out
}
