package models

import "time"

type Bidang struct {
	ID        uint      `gorm:"primaryKey;autoIncrement:true" json:"id"`
	Kode      string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"kode"`
	Nama      string    `gorm:"type:varchar(200);not null" json:"nama"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Bidang) TableName() string {
	return "bidang"
}

type KlasifikasiSurat struct {
	ID         uint      `gorm:"primaryKey;autoIncrement:true" json:"id"`
	Kode       string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"kode"`
	Keterangan string    `gorm:"type:varchar(255);not null" json:"keterangan"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (KlasifikasiSurat) TableName() string {
	return "klasifikasi_surat"
}

// All lists every model for AutoMigrate, parents before children.
func All() []any {
	return []any{
		&User{},
		&RefreshToken{},
		&PasswordResetToken{},
		&Bidang{},
		&KlasifikasiSurat{},
		&SuratMasuk{},
		&SuratKeluar{},
		&Disposisi{},
	}
}
