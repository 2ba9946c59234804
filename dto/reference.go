package dto

import "strings"

type BidangRequest struct {
	Kode string `json:"kode" validate:"required,max=20"`
	Nama string `json:"nama" validate:"required,max=200"`
}

func (r *BidangRequest) Validate() map[string]string {
	r.Kode = strings.TrimSpace(r.Kode)
	r.Nama = strings.TrimSpace(r.Nama)
	return ValidateStruct(r)
}

type KlasifikasiRequest struct {
	Kode       string `json:"kode" validate:"required,max=20"`
	Keterangan string `json:"keterangan" validate:"required,max=255"`
}

func (r *KlasifikasiRequest) Validate() map[string]string {
	r.Kode = strings.TrimSpace(r.Kode)
	r.Keterangan = strings.TrimSpace(r.Keterangan)
	return ValidateStruct(r)
}
