package letters

import (
	"strings"

	"esuka/dto"
	"esuka/models"
	"esuka/services"
)

// SuratMasukRequest is used for both create and edit. The attachment comes in
// the multipart "file" field and is handled by the handler.
type SuratMasukRequest struct {
	NomorSurat      string `json:"nomor_surat" form:"nomor_surat" validate:"required,max=100"`
	TanggalSurat    string `json:"tanggal_surat" form:"tanggal_surat" validate:"required,datetime=2006-01-02"`       // YYYY-MM-DD
	TanggalDiterima string `json:"tanggal_diterima" form:"tanggal_diterima" validate:"required,datetime=2006-01-02"` // YYYY-MM-DD
	Pengirim        string `json:"pengirim" form:"pengirim" validate:"required,max=200"`
	Perihal         string `json:"perihal" form:"perihal" validate:"required"`
	Sifat           string `json:"sifat" form:"sifat" validate:"sifat"`
}

func (r *SuratMasukRequest) Validate() map[string]string {
	r.NomorSurat = strings.TrimSpace(r.NomorSurat)
	r.TanggalSurat = strings.TrimSpace(r.TanggalSurat)
	r.TanggalDiterima = strings.TrimSpace(r.TanggalDiterima)
	r.Pengirim = strings.TrimSpace(r.Pengirim)
	r.Perihal = strings.TrimSpace(r.Perihal)
	r.Sifat = strings.TrimSpace(r.Sifat)
	return dto.ValidateStruct(r)
}

// ToInput assumes Validate passed.
func (r *SuratMasukRequest) ToInput() services.SuratMasukInput {
	return services.SuratMasukInput{
		NomorSurat:      r.NomorSurat,
		TanggalSurat:    parseDate(r.TanggalSurat),
		TanggalDiterima: parseDate(r.TanggalDiterima),
		Pengirim:        r.Pengirim,
		Perihal:         r.Perihal,
		Sifat:           models.Sifat(r.Sifat),
	}
}
