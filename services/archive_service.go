package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"esuka/models"
	"esuka/utils/metrics"
	"esuka/utils/storage"

	"gorm.io/gorm"
)

// ArchiveItem is one row of the archive gallery, from either mail table.
type ArchiveItem struct {
	Jenis        models.LetterType `json:"jenis"`
	ID           uint              `json:"id"`
	NomorSurat   string            `json:"nomor_surat"`
	Perihal      string            `json:"perihal"`
	Pihak        string            `json:"pihak"`
	Sifat        models.Sifat      `json:"sifat,omitempty"`
	TanggalSurat time.Time         `json:"tanggal_surat"`
	FileURL      string            `json:"file_url,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
}

type ArchiveService struct {
	db      *gorm.DB
	store   storage.ObjectStore
	metrics *metrics.Metrics
}

func NewArchiveService(db *gorm.DB, store storage.ObjectStore, m *metrics.Metrics) *ArchiveService {
	return &ArchiveService{db: db, store: store, metrics: m}
}

func tableModel(jenis models.LetterType) (any, error) {
	switch jenis {
	case models.LetterMasuk:
		return &models.SuratMasuk{}, nil
	case models.LetterKeluar:
		return &models.SuratKeluar{}, nil
	default:
		return nil, ErrInvalidJenis
	}
}

// SetArchived writes is_archived for one letter. Repeating the same value is
// not an error.
func (s *ArchiveService) SetArchived(ctx context.Context, jenis models.LetterType, id uint, archived bool) error {
	model, err := tableModel(jenis)
	if err != nil {
		return err
	}

	db := s.db.WithContext(ctx)
	if err := db.First(model, id).Error; err != nil {
		return notFound(err)
	}
	if err := db.Model(model).Update("is_archived", archived).Error; err != nil {
		return fmt.Errorf("update is_archived: %w", err)
	}

	s.metrics.RecordArchive(string(jenis), archived)
	return nil
}

// Gallery lists archived letters of both tables, newest first. An empty jenis
// means both.
func (s *ArchiveService) Gallery(ctx context.Context, jenis models.LetterType) ([]ArchiveItem, error) {
	if jenis != "" && !jenis.IsValid() {
		return nil, ErrInvalidJenis
	}

	db := s.db.WithContext(ctx)
	items := make([]ArchiveItem, 0)

	if jenis == "" || jenis == models.LetterMasuk {
		var masuk []models.SuratMasuk
		if err := db.Where("is_archived = ?", true).Find(&masuk).Error; err != nil {
			return nil, err
		}
		for _, m := range masuk {
			items = append(items, ArchiveItem{
				Jenis:        models.LetterMasuk,
				ID:           m.ID,
				NomorSurat:   m.NomorSurat,
				Perihal:      m.Perihal,
				Pihak:        m.Pengirim,
				Sifat:        m.Sifat,
				TanggalSurat: m.TanggalSurat,
				FileURL:      m.FileURL,
				CreatedAt:    m.CreatedAt,
			})
		}
	}

	if jenis == "" || jenis == models.LetterKeluar {
		var keluar []models.SuratKeluar
		if err := db.Where("is_archived = ?", true).Find(&keluar).Error; err != nil {
			return nil, err
		}
		for _, k := range keluar {
			items = append(items, ArchiveItem{
				Jenis:        models.LetterKeluar,
				ID:           k.ID,
				NomorSurat:   k.NomorSurat,
				Perihal:      k.Perihal,
				Pihak:        string(k.Tujuan),
				Sifat:        k.Sifat,
				TanggalSurat: k.TanggalSurat,
				FileURL:      k.FileURL,
				CreatedAt:    k.CreatedAt,
			})
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

// DeleteArchived permanently removes an archived letter, its disposisi and
// its attachment. Active letters are refused with ErrNotArchived.
func (s *ArchiveService) DeleteArchived(ctx context.Context, jenis models.LetterType, id uint) error {
	var fileURL string

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		switch jenis {
		case models.LetterMasuk:
			var surat models.SuratMasuk
			if err := tx.First(&surat, id).Error; err != nil {
				return notFound(err)
			}
			if !surat.IsArchived {
				return ErrNotArchived
			}
			if err := tx.Where("surat_masuk_id = ?", surat.ID).Delete(&models.Disposisi{}).Error; err != nil {
				return fmt.Errorf("delete disposisi: %w", err)
			}
			fileURL = surat.FileURL
			return tx.Delete(&surat).Error

		case models.LetterKeluar:
			var surat models.SuratKeluar
			if err := tx.First(&surat, id).Error; err != nil {
				return notFound(err)
			}
			if !surat.IsArchived {
				return ErrNotArchived
			}
			fileURL = surat.FileURL
			return tx.Delete(&surat).Error

		default:
			return ErrInvalidJenis
		}
	})
	if err != nil {
		return err
	}

	if fileURL != "" {
		if err := s.store.Delete(ctx, fileURL); err != nil {
			log.Printf("⚠️ failed to delete attachment %s: %v", fileURL, err)
		}
	}
	return nil
}
