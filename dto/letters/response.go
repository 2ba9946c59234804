package letters

import (
	"time"

	"esuka/dto"
	"esuka/models"
)

type SuratMasukResponse struct {
	ID              uint                   `json:"id"`
	NomorSurat      string                 `json:"nomor_surat"`
	TanggalSurat    string                 `json:"tanggal_surat"`
	TanggalDiterima string                 `json:"tanggal_diterima"`
	Pengirim        string                 `json:"pengirim"`
	Perihal         string                 `json:"perihal"`
	Sifat           models.Sifat           `json:"sifat,omitempty"`
	FileURL         string                 `json:"file_url,omitempty"`
	IsArchived      bool                   `json:"is_archived"`
	Disposisi       *dto.DisposisiResponse `json:"disposisi,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

func NewSuratMasukResponse(s *models.SuratMasuk) SuratMasukResponse {
	if s == nil {
		return SuratMasukResponse{}
	}

	out := SuratMasukResponse{
		ID:              s.ID,
		NomorSurat:      s.NomorSurat,
		TanggalSurat:    s.TanggalSurat.Format(dto.DateLayout),
		TanggalDiterima: s.TanggalDiterima.Format(dto.DateLayout),
		Pengirim:        s.Pengirim,
		Perihal:         s.Perihal,
		Sifat:           s.Sifat,
		FileURL:         s.FileURL,
		IsArchived:      s.IsArchived,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
	if s.Disposisi != nil {
		d := dto.NewDisposisiResponse(s.Disposisi)
		out.Disposisi = &d
	}
	return out
}

func NewSuratMasukResponses(list []models.SuratMasuk) []SuratMasukResponse {
	out := make([]SuratMasukResponse, 0, len(list))
	for i := range list {
		out = append(out, NewSuratMasukResponse(&list[i]))
	}
	return out
}

type SuratKeluarResponse struct {
	ID              uint           `json:"id"`
	NomorSurat      string         `json:"nomor_surat"`
	KlasifikasiKode string         `json:"klasifikasi_kode"`
	BidangKode      string         `json:"bidang_kode"`
	Sifat           models.Sifat   `json:"sifat,omitempty"`
	TanggalSurat    string         `json:"tanggal_surat"`
	Penandatangan   string         `json:"penandatangan"`
	Tujuan          models.Jabatan `json:"tujuan"`
	Perihal         string         `json:"perihal"`
	FileURL         string         `json:"file_url,omitempty"`
	IsArchived      bool           `json:"is_archived"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func NewSuratKeluarResponse(s *models.SuratKeluar) SuratKeluarResponse {
	if s == nil {
		return SuratKeluarResponse{}
	}

	return SuratKeluarResponse{
		ID:              s.ID,
		NomorSurat:      s.NomorSurat,
		KlasifikasiKode: s.KlasifikasiKode,
		BidangKode:      s.BidangKode,
		Sifat:           s.Sifat,
		TanggalSurat:    s.TanggalSurat.Format(dto.DateLayout),
		Penandatangan:   s.Penandatangan,
		Tujuan:          s.Tujuan,
		Perihal:         s.Perihal,
		FileURL:         s.FileURL,
		IsArchived:      s.IsArchived,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func NewSuratKeluarResponses(list []models.SuratKeluar) []SuratKeluarResponse {
	out := make([]SuratKeluarResponse, 0, len(list))
	for i := range list {
		out = append(out, NewSuratKeluarResponse(&list[i]))
	}
	return out
}
