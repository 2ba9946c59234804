package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"esuka/models"
	"esuka/utils"
	"esuka/utils/metrics"

	"gorm.io/gorm"
)

type NomorSuratPreview struct {
	NomorSurat      string `json:"nomor_surat"`
	Sequence        int    `json:"sequence"`
	KlasifikasiKode string `json:"klasifikasi_kode"`
	BidangKode      string `json:"bidang_kode"`
}

// NomorSuratService derives the next outgoing letter number. The sequence is
// read at call time and not reserved, so two concurrent previews may return
// the same number.
type NomorSuratService struct {
	db      *gorm.DB
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewNomorSuratService(db *gorm.DB, m *metrics.Metrics) *NomorSuratService {
	return &NomorSuratService{db: db, metrics: m, now: time.Now}
}

// NextSequence is count(surat_masuk) + count(surat_keluar) + 1, archived rows
// included.
func (s *NomorSuratService) NextSequence(ctx context.Context) (int, error) {
	var masuk, keluar int64
	db := s.db.WithContext(ctx)

	if err := db.Model(&models.SuratMasuk{}).Count(&masuk).Error; err != nil {
		return 0, fmt.Errorf("count surat masuk: %w", err)
	}
	if err := db.Model(&models.SuratKeluar{}).Count(&keluar).Error; err != nil {
		return 0, fmt.Errorf("count surat keluar: %w", err)
	}
	return int(masuk+keluar) + 1, nil
}

func (s *NomorSuratService) Generate(ctx context.Context, klasifikasiKode, bidangKode string) (preview *NomorSuratPreview, err error) {
	defer func() { s.metrics.RecordNomorSurat(err) }()

	klasifikasiKode = strings.TrimSpace(klasifikasiKode)
	bidangKode = strings.TrimSpace(bidangKode)
	if klasifikasiKode == "" || bidangKode == "" {
		return nil, ErrCodesRequired
	}

	if err := s.lookupCodes(ctx, klasifikasiKode, bidangKode); err != nil {
		return nil, err
	}

	seq, err := s.NextSequence(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNomorSuratGeneration, err)
	}

	nomor, err := utils.FormatNomorSurat(klasifikasiKode, bidangKode, seq, s.now())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNomorSuratGeneration, err)
	}

	return &NomorSuratPreview{
		NomorSurat:      nomor,
		Sequence:        seq,
		KlasifikasiKode: klasifikasiKode,
		BidangKode:      bidangKode,
	}, nil
}

// lookupCodes resolves both codes by value. There is no foreign key behind
// them, the lookup is the only check.
func (s *NomorSuratService) lookupCodes(ctx context.Context, klasifikasiKode, bidangKode string) error {
	db := s.db.WithContext(ctx)

	var klasifikasi models.KlasifikasiSurat
	if err := db.Where("kode = ?", klasifikasiKode).First(&klasifikasi).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnknownKlasifikasi
		}
		return fmt.Errorf("%w: %w", ErrNomorSuratGeneration, err)
	}

	var bidang models.Bidang
	if err := db.Where("kode = ?", bidangKode).First(&bidang).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnknownBidang
		}
		return fmt.Errorf("%w: %w", ErrNomorSuratGeneration, err)
	}
	return nil
}
