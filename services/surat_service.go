package services

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"strings"
	"time"

	"esuka/models"
	"esuka/utils/events"
	"esuka/utils/storage"

	"gorm.io/gorm"
)

type SuratMasukInput struct {
	NomorSurat      string
	TanggalSurat    time.Time
	TanggalDiterima time.Time
	Pengirim        string
	Perihal         string
	Sifat           models.Sifat
}

type SuratKeluarInput struct {
	NomorSurat      string
	KlasifikasiKode string
	BidangKode      string
	Sifat           models.Sifat
	TanggalSurat    time.Time
	Penandatangan   string
	Tujuan          models.Jabatan
	Perihal         string
}

// ListQuery filters the active (non archived) letter lists.
type ListQuery struct {
	Query string
	Page  int
	Limit int
}

type SuratService struct {
	db    *gorm.DB
	store storage.ObjectStore
	bus   *events.Bus
	now   func() time.Time
}

func NewSuratService(db *gorm.DB, store storage.ObjectStore, bus *events.Bus) *SuratService {
	return &SuratService{db: db, store: store, bus: bus, now: time.Now}
}

func (s *SuratService) CreateMasuk(ctx context.Context, in SuratMasukInput, file *multipart.FileHeader) (*models.SuratMasuk, error) {
	if !in.Sifat.IsValid() {
		return nil, ErrInvalidSifat
	}

	surat := models.SuratMasuk{
		NomorSurat:      strings.TrimSpace(in.NomorSurat),
		TanggalSurat:    in.TanggalSurat,
		TanggalDiterima: in.TanggalDiterima,
		Pengirim:        strings.TrimSpace(in.Pengirim),
		Perihal:         strings.TrimSpace(in.Perihal),
		Sifat:           in.Sifat,
	}

	if file != nil {
		url, err := s.uploadAttachment(ctx, models.LetterMasuk, file)
		if err != nil {
			return nil, err
		}
		surat.FileURL = url
	}

	if err := s.db.WithContext(ctx).Create(&surat).Error; err != nil {
		s.discard(ctx, surat.FileURL)
		return nil, fmt.Errorf("create surat masuk: %w", err)
	}

	s.bus.Publish(events.Event{
		Type:         events.SuratMasukCreated,
		SuratMasukID: surat.ID,
		NomorSurat:   surat.NomorSurat,
		Pengirim:     surat.Pengirim,
		Perihal:      surat.Perihal,
	})
	return &surat, nil
}

func (s *SuratService) UpdateMasuk(ctx context.Context, id uint, in SuratMasukInput, file *multipart.FileHeader) (*models.SuratMasuk, error) {
	if !in.Sifat.IsValid() {
		return nil, ErrInvalidSifat
	}

	surat, err := s.GetMasuk(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{
		"nomor_surat":      strings.TrimSpace(in.NomorSurat),
		"tanggal_surat":    in.TanggalSurat,
		"tanggal_diterima": in.TanggalDiterima,
		"pengirim":         strings.TrimSpace(in.Pengirim),
		"perihal":          strings.TrimSpace(in.Perihal),
		"sifat":            in.Sifat,
	}

	previous, err := s.replaceAttachment(ctx, models.LetterMasuk, file, surat.FileURL, updates)
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(&models.SuratMasuk{ID: surat.ID}).Updates(updates).Error; err != nil {
		if url, ok := updates["file_url"].(string); ok {
			s.discard(ctx, url)
		}
		return nil, fmt.Errorf("update surat masuk: %w", err)
	}
	s.discard(ctx, previous)

	return s.GetMasuk(ctx, id)
}

// GetMasuk loads a surat masuk with its disposisi, when one exists.
func (s *SuratService) GetMasuk(ctx context.Context, id uint) (*models.SuratMasuk, error) {
	var surat models.SuratMasuk
	if err := s.db.WithContext(ctx).Preload("Disposisi").First(&surat, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &surat, nil
}

// ListMasuk returns active letters newest received first.
func (s *SuratService) ListMasuk(ctx context.Context, q ListQuery) ([]models.SuratMasuk, int64, error) {
	page, limit := NormalizePage(q.Page, q.Limit)

	tx := s.db.WithContext(ctx).Model(&models.SuratMasuk{}).Where("is_archived = ?", false)
	if term := strings.TrimSpace(q.Query); term != "" {
		like := containsPattern(term)
		tx = tx.Where(
			s.db.Where("LOWER(nomor_surat) LIKE ? ESCAPE '!'", like).
				Or("LOWER(pengirim) LIKE ? ESCAPE '!'", like).
				Or("LOWER(perihal) LIKE ? ESCAPE '!'", like),
		)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.SuratMasuk
	err := tx.Preload("Disposisi").
		Order("tanggal_diterima DESC").Order("id DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (s *SuratService) CreateKeluar(ctx context.Context, in SuratKeluarInput, file *multipart.FileHeader) (*models.SuratKeluar, error) {
	if err := s.validateKeluar(ctx, in); err != nil {
		return nil, err
	}

	surat := models.SuratKeluar{
		NomorSurat:      strings.TrimSpace(in.NomorSurat),
		KlasifikasiKode: strings.TrimSpace(in.KlasifikasiKode),
		BidangKode:      strings.TrimSpace(in.BidangKode),
		Sifat:           in.Sifat,
		TanggalSurat:    in.TanggalSurat,
		Penandatangan:   strings.TrimSpace(in.Penandatangan),
		Tujuan:          in.Tujuan,
		Perihal:         strings.TrimSpace(in.Perihal),
	}

	if file != nil {
		url, err := s.uploadAttachment(ctx, models.LetterKeluar, file)
		if err != nil {
			return nil, err
		}
		surat.FileURL = url
	}

	if err := s.db.WithContext(ctx).Create(&surat).Error; err != nil {
		s.discard(ctx, surat.FileURL)
		return nil, fmt.Errorf("create surat keluar: %w", err)
	}
	return &surat, nil
}

func (s *SuratService) UpdateKeluar(ctx context.Context, id uint, in SuratKeluarInput, file *multipart.FileHeader) (*models.SuratKeluar, error) {
	if err := s.validateKeluar(ctx, in); err != nil {
		return nil, err
	}

	surat, err := s.GetKeluar(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{
		"nomor_surat":      strings.TrimSpace(in.NomorSurat),
		"klasifikasi_kode": strings.TrimSpace(in.KlasifikasiKode),
		"bidang_kode":      strings.TrimSpace(in.BidangKode),
		"sifat":            in.Sifat,
		"tanggal_surat":    in.TanggalSurat,
		"penandatangan":    strings.TrimSpace(in.Penandatangan),
		"tujuan":           in.Tujuan,
		"perihal":          strings.TrimSpace(in.Perihal),
	}

	previous, err := s.replaceAttachment(ctx, models.LetterKeluar, file, surat.FileURL, updates)
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(&models.SuratKeluar{ID: surat.ID}).Updates(updates).Error; err != nil {
		if url, ok := updates["file_url"].(string); ok {
			s.discard(ctx, url)
		}
		return nil, fmt.Errorf("update surat keluar: %w", err)
	}
	s.discard(ctx, previous)

	return s.GetKeluar(ctx, id)
}

func (s *SuratService) GetKeluar(ctx context.Context, id uint) (*models.SuratKeluar, error) {
	var surat models.SuratKeluar
	if err := s.db.WithContext(ctx).First(&surat, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &surat, nil
}

// ListKeluar returns active letters newest first.
func (s *SuratService) ListKeluar(ctx context.Context, q ListQuery) ([]models.SuratKeluar, int64, error) {
	page, limit := NormalizePage(q.Page, q.Limit)

	tx := s.db.WithContext(ctx).Model(&models.SuratKeluar{}).Where("is_archived = ?", false)
	if term := strings.TrimSpace(q.Query); term != "" {
		like := containsPattern(term)
		tx = tx.Where(
			s.db.Where("LOWER(nomor_surat) LIKE ? ESCAPE '!'", like).
				Or("LOWER(penandatangan) LIKE ? ESCAPE '!'", like).
				Or("LOWER(perihal) LIKE ? ESCAPE '!'", like),
		)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.SuratKeluar
	err := tx.Order("created_at DESC").Order("id DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// validateKeluar checks tujuan against the jabatan set and penandatangan
// against existing profiles.
func (s *SuratService) validateKeluar(ctx context.Context, in SuratKeluarInput) error {
	if !in.Sifat.IsValid() {
		return ErrInvalidSifat
	}
	if !in.Tujuan.IsValid() {
		return ErrInvalidJabatan
	}

	var count int64
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("full_name = ?", strings.TrimSpace(in.Penandatangan)).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrUnknownPenandatangan
	}
	return nil
}

func (s *SuratService) uploadAttachment(ctx context.Context, jenis models.LetterType, file *multipart.FileHeader) (string, error) {
	if err := storage.AttachmentRule.Validate(file); err != nil {
		return "", err
	}
	url, err := s.store.Upload(ctx, file, storage.AttachmentKey(string(jenis), s.now(), file.Filename))
	if err != nil {
		return "", fmt.Errorf("upload attachment: %w", err)
	}
	return url, nil
}

// replaceAttachment uploads file and records its URL in updates. It returns
// the URL being replaced, empty when no new file was sent.
func (s *SuratService) replaceAttachment(ctx context.Context, jenis models.LetterType, file *multipart.FileHeader, currentURL string, updates map[string]any) (string, error) {
	if file == nil {
		return "", nil
	}

	url, err := s.uploadAttachment(ctx, jenis, file)
	if err != nil {
		return "", err
	}
	updates["file_url"] = url
	return currentURL, nil
}

// discard removes an uploaded object, logging failures.
func (s *SuratService) discard(ctx context.Context, fileURL string) {
	if fileURL == "" {
		return
	}
	if err := s.store.Delete(ctx, fileURL); err != nil {
		log.Printf("⚠️ failed to delete attachment %s: %v", fileURL, err)
	}
}
