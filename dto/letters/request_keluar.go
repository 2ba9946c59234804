package letters

import (
	"strings"

	"esuka/dto"
	"esuka/models"
	"esuka/services"
)

type SuratKeluarRequest struct {
	KlasifikasiKode string `json:"klasifikasi_kode" form:"klasifikasi_kode" validate:"required,max=50"`
	BidangKode      string `json:"bidang_kode" form:"bidang_kode" validate:"required,max=50"`
	Sifat           string `json:"sifat" form:"sifat" validate:"sifat"`
	NomorSurat      string `json:"nomor_surat" form:"nomor_surat" validate:"required,max=100"`
	TanggalSurat    string `json:"tanggal_surat" form:"tanggal_surat" validate:"required,datetime=2006-01-02"` // YYYY-MM-DD
	Penandatangan   string `json:"penandatangan" form:"penandatangan" validate:"required,max=200"`
	Tujuan          string `json:"tujuan" form:"tujuan" validate:"required,jabatan"`
	Perihal         string `json:"perihal" form:"perihal" validate:"required"`
}

func (r *SuratKeluarRequest) Validate() map[string]string {
	r.KlasifikasiKode = strings.TrimSpace(r.KlasifikasiKode)
	r.BidangKode = strings.TrimSpace(r.BidangKode)
	r.Sifat = strings.TrimSpace(r.Sifat)
	r.NomorSurat = strings.TrimSpace(r.NomorSurat)
	r.TanggalSurat = strings.TrimSpace(r.TanggalSurat)
	r.Penandatangan = strings.TrimSpace(r.Penandatangan)
	r.Tujuan = strings.TrimSpace(r.Tujuan)
	r.Perihal = strings.TrimSpace(r.Perihal)
	return dto.ValidateStruct(r)
}

// ToInput assumes Validate passed.
func (r *SuratKeluarRequest) ToInput() services.SuratKeluarInput {
	return services.SuratKeluarInput{
		NomorSurat:      r.NomorSurat,
		KlasifikasiKode: r.KlasifikasiKode,
		BidangKode:      r.BidangKode,
		Sifat:           models.Sifat(r.Sifat),
		TanggalSurat:    parseDate(r.TanggalSurat),
		Penandatangan:   r.Penandatangan,
		Tujuan:          models.Jabatan(r.Tujuan),
		Perihal:         r.Perihal,
	}
}

// NomorQuery is the query string of the nomor surat preview.
type NomorQuery struct {
	Klasifikasi string `query:"klasifikasi"`
	Bidang      string `query:"bidang"`
}

func (q *NomorQuery) Validate() map[string]string {
	errors := make(map[string]string)
	q.Klasifikasi = strings.TrimSpace(q.Klasifikasi)
	q.Bidang = strings.TrimSpace(q.Bidang)
	if q.Klasifikasi == "" {
		errors["klasifikasi"] = "klasifikasi is required"
	}
	if q.Bidang == "" {
		errors["bidang"] = "bidang is required"
	}
	return errors
}
