package services

import (
	"context"
	"strings"

	"esuka/models"
	"esuka/utils"

	"gorm.io/gorm"
)

// ReferenceService manages the bidang and klasifikasi lookup tables. Letters
// refer to them by kode only.
type ReferenceService struct {
	db    *gorm.DB
	perms *PermissionService
}

func NewReferenceService(db *gorm.DB, perms *PermissionService) *ReferenceService {
	return &ReferenceService{db: db, perms: perms}
}

func (s *ReferenceService) ListBidang(ctx context.Context) ([]models.Bidang, error) {
	var rows []models.Bidang
	err := s.db.WithContext(ctx).Order("kode ASC").Find(&rows).Error
	return rows, err
}

func (s *ReferenceService) CreateBidang(ctx context.Context, actor Actor, kode, nama string) (*models.Bidang, error) {
	if err := s.perms.CanManageReference(&actor); err != nil {
		return nil, err
	}
	row := models.Bidang{Kode: strings.TrimSpace(kode), Nama: strings.TrimSpace(nama)}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, translateReferenceError(err)
	}
	return &row, nil
}

func (s *ReferenceService) UpdateBidang(ctx context.Context, actor Actor, id uint, kode, nama string) (*models.Bidang, error) {
	if err := s.perms.CanManageReference(&actor); err != nil {
		return nil, err
	}

	var row models.Bidang
	if err := s.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, notFound(err)
	}
	err := s.db.WithContext(ctx).Model(&row).Updates(map[string]any{
		"kode": strings.TrimSpace(kode),
		"nama": strings.TrimSpace(nama),
	}).Error
	if err != nil {
		return nil, translateReferenceError(err)
	}
	if err := s.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *ReferenceService) DeleteBidang(ctx context.Context, actor Actor, id uint) error {
	if err := s.perms.CanManageReference(&actor); err != nil {
		return err
	}
	res := s.db.WithContext(ctx).Delete(&models.Bidang{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ReferenceService) ListKlasifikasi(ctx context.Context) ([]models.KlasifikasiSurat, error) {
	var rows []models.KlasifikasiSurat
	err := s.db.WithContext(ctx).Order("kode ASC").Find(&rows).Error
	return rows, err
}

func (s *ReferenceService) CreateKlasifikasi(ctx context.Context, actor Actor, kode, keterangan string) (*models.KlasifikasiSurat, error) {
	if err := s.perms.CanManageReference(&actor); err != nil {
		return nil, err
	}
	row := models.KlasifikasiSurat{Kode: strings.TrimSpace(kode), Keterangan: strings.TrimSpace(keterangan)}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, translateReferenceError(err)
	}
	return &row, nil
}

func (s *ReferenceService) UpdateKlasifikasi(ctx context.Context, actor Actor, id uint, kode, keterangan string) (*models.KlasifikasiSurat, error) {
	if err := s.perms.CanManageReference(&actor); err != nil {
		return nil, err
	}

	var row models.KlasifikasiSurat
	if err := s.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, notFound(err)
	}
	err := s.db.WithContext(ctx).Model(&row).Updates(map[string]any{
		"kode":       strings.TrimSpace(kode),
		"keterangan": strings.TrimSpace(keterangan),
	}).Error
	if err != nil {
		return nil, translateReferenceError(err)
	}
	if err := s.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *ReferenceService) DeleteKlasifikasi(ctx context.Context, actor Actor, id uint) error {
	if err := s.perms.CanManageReference(&actor); err != nil {
		return err
	}
	res := s.db.WithContext(ctx).Delete(&models.KlasifikasiSurat{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func translateReferenceError(err error) error {
	if utils.IsDuplicateError(err) {
		return ErrDuplicateKode
	}
	return err
}
