package models

import (
	"time"
)

type LetterType string
type Sifat string

const (
	LetterMasuk  LetterType = "masuk"
	LetterKeluar LetterType = "keluar"
)

const (
	SifatBiasa   Sifat = "Biasa"
	SifatPenting Sifat = "Penting"
	SifatSegera  Sifat = "Segera"
	SifatRahasia Sifat = "Rahasia"
)

func (t LetterType) IsValid() bool {
	return t == LetterMasuk || t == LetterKeluar
}

// IsValid accepts the empty value, sifat is nullable.
func (s Sifat) IsValid() bool {
	switch s {
	case "", SifatBiasa, SifatPenting, SifatSegera, SifatRahasia:
		return true
	default:
		return false
	}
}

type SuratMasuk struct {
	ID              uint      `gorm:"primaryKey;autoIncrement:true"`
	NomorSurat      string    `gorm:"type:varchar(100);not null;index"`
	TanggalSurat    time.Time `gorm:"type:date;not null;index"`
	TanggalDiterima time.Time `gorm:"type:date;not null;index"`
	Pengirim        string    `gorm:"type:varchar(200);not null"`
	Perihal         string    `gorm:"type:text;not null"`
	Sifat           Sifat     `gorm:"type:varchar(20)"`
	FileURL         string    `gorm:"type:varchar(500)"`
	IsArchived      bool      `gorm:"not null;default:false;index"`
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time

	Disposisi *Disposisi `gorm:"foreignKey:SuratMasukID"`
}

func (SuratMasuk) TableName() string {
	return "surat_masuk"
}

// SuratKeluar keeps klasifikasi and bidang codes as plain values: they are
// looked up when the nomor surat is generated, never joined.
type SuratKeluar struct {
	ID              uint      `gorm:"primaryKey;autoIncrement:true"`
	NomorSurat      string    `gorm:"type:varchar(100);not null;index"`
	KlasifikasiKode string    `gorm:"type:varchar(50)"`
	BidangKode      string    `gorm:"type:varchar(50)"`
	Sifat           Sifat     `gorm:"type:varchar(20)"`
	TanggalSurat    time.Time `gorm:"type:date;not null;index"`
	Penandatangan   string    `gorm:"type:varchar(200);not null"`
	Tujuan          Jabatan   `gorm:"type:varchar(150);not null"`
	Perihal         string    `gorm:"type:text;not null"`
	FileURL         string    `gorm:"type:varchar(500)"`
	IsArchived      bool      `gorm:"not null;default:false;index"`
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time
}

func (SuratKeluar) TableName() string {
	return "surat_keluar"
}
