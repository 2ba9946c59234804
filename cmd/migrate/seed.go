package main

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"esuka/models"
	"esuka/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var defaultBidang = []models.Bidang{
	{Kode: "01", Nama: "Sekretariat"},
	{Kode: "02", Nama: "Perencanaan Pemerintahan dan Pembangunan Manusia"},
	{Kode: "03", Nama: "Perencanaan Perekonomian dan Sumber Daya Alam"},
	{Kode: "04", Nama: "Perencanaan Infrastruktur dan Kewilayahan"},
	{Kode: "05", Nama: "Penelitian dan Pengembangan"},
	{Kode: "06", Nama: "Pengendalian, Evaluasi dan Pelaporan"},
}

var defaultKlasifikasi = []models.KlasifikasiSurat{
	{Kode: "000", Keterangan: "Umum"},
	{Kode: "005", Keterangan: "Undangan"},
	{Kode: "050", Keterangan: "Perencanaan"},
	{Kode: "090", Keterangan: "Perjalanan Dinas"},
	{Kode: "800", Keterangan: "Kepegawaian"},
	{Kode: "900", Keterangan: "Keuangan"},
}

type seedAdmin struct {
	Email    string
	Password string
	FullName string
}

// runSeed is idempotent: rows whose kode or email already exist are skipped.
func runSeed(db *gorm.DB, admin seedAdmin) error {
	return db.Transaction(func(tx *gorm.DB) error {
		bidang := append([]models.Bidang(nil), defaultBidang...)
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&bidang).Error; err != nil {
			return fmt.Errorf("seed bidang: %w", err)
		}
		klasifikasi := append([]models.KlasifikasiSurat(nil), defaultKlasifikasi...)
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&klasifikasi).Error; err != nil {
			return fmt.Errorf("seed klasifikasi: %w", err)
		}
		return seedAdminUser(tx, admin)
	})
}

func seedAdminUser(tx *gorm.DB, admin seedAdmin) error {
	email := strings.ToLower(strings.TrimSpace(admin.Email))
	if email == "" || admin.Password == "" {
		log.Println("⚠️ SEED_ADMIN_EMAIL or SEED_ADMIN_PASSWORD not set, skipping admin")
		return nil
	}

	var existing models.User
	err := tx.Where("email = ?", email).First(&existing).Error
	if err == nil {
		log.Printf("ℹ️ Admin %s already exists", email)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("lookup admin: %w", err)
	}

	hash, err := utils.HashPassword(admin.Password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	name := strings.TrimSpace(admin.FullName)
	if name == "" {
		name = "Administrator"
	}
	user := models.User{
		FullName:     name,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}
	if err := tx.Create(&user).Error; err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	log.Printf("👤 Admin %s created", email)
	return nil
}
