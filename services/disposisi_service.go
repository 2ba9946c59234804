package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"esuka/models"
	"esuka/utils"
	"esuka/utils/events"
	"esuka/utils/metrics"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DefaultCatatanCreate  = "Surat baru diterima, mohon ditindaklanjuti."
	DefaultCatatanForward = "Diteruskan untuk ditindaklanjuti."
)

type DisposisiFilter struct {
	TujuanJabatan models.Jabatan
	Page          int
	Limit         int
}

// Destination is a jabatan the disposisi can move to and who holds it.
type Destination struct {
	Jabatan models.Jabatan `json:"jabatan"`
	Users   []UserOption   `json:"users"`
}

type DisposisiService struct {
	db      *gorm.DB
	perms   *PermissionService
	bus     *events.Bus
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewDisposisiService(db *gorm.DB, perms *PermissionService, bus *events.Bus, m *metrics.Metrics) *DisposisiService {
	return &DisposisiService{db: db, perms: perms, bus: bus, metrics: m, now: time.Now}
}

// Create starts the disposisi chain of a surat masuk at the root jabatan. The
// unique index on surat_masuk_id turns a second attempt into
// ErrAlreadyDispositioned.
func (s *DisposisiService) Create(ctx context.Context, actor Actor, suratMasukID uint, catatan string) (out *models.Disposisi, err error) {
	defer func() { s.metrics.RecordDisposisi("create", err) }()

	if actor.ID == 0 {
		return nil, ErrUnauthorized
	}

	var surat models.SuratMasuk
	if err := s.db.WithContext(ctx).First(&surat, suratMasukID).Error; err != nil {
		return nil, notFound(err)
	}

	catatan = strings.TrimSpace(catatan)
	if catatan == "" {
		catatan = DefaultCatatanCreate
	}

	d := models.NewDisposisi(surat.ID, models.RiwayatEntry{
		From:        actor.Name(),
		FromID:      actor.ID,
		FromJabatan: actor.Jabatan,
		Catatan:     catatan,
		Timestamp:   s.now(),
	})

	if err := s.db.WithContext(ctx).Create(&d).Error; err != nil {
		if utils.IsDuplicateError(err) {
			return nil, ErrAlreadyDispositioned
		}
		return nil, fmt.Errorf("create disposisi: %w", err)
	}

	d.SuratMasuk = &surat
	s.bus.Publish(events.Event{
		Type:         events.DisposisiCreated,
		SuratMasukID: surat.ID,
		DisposisiID:  d.ID,
		NomorSurat:   surat.NomorSurat,
		Pengirim:     surat.Pengirim,
		Perihal:      surat.Perihal,
		From:         actor.Name(),
		ToJabatan:    d.TujuanJabatan,
		Catatan:      catatan,
	})
	return &d, nil
}

// Forward appends one riwayat entry and moves the disposisi to target. The
// row is locked for the duration of the transaction so concurrent forwards
// apply one after the other.
func (s *DisposisiService) Forward(ctx context.Context, actor Actor, id uint, target models.Jabatan, catatan string) (out *models.Disposisi, err error) {
	defer func() { s.metrics.RecordDisposisi("forward", err) }()

	catatan = strings.TrimSpace(catatan)
	if catatan == "" {
		catatan = DefaultCatatanForward
	}

	var d models.Disposisi
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&d, id).Error; err != nil {
			return notFound(err)
		}

		if err := s.perms.CanForward(&actor, &d, target); err != nil {
			return err
		}

		d.Forward(models.RiwayatEntry{
			From:        actor.Name(),
			FromID:      actor.ID,
			FromJabatan: actor.Jabatan,
			ToJabatan:   target,
			Catatan:     catatan,
			Timestamp:   s.now(),
		})
		if err := d.CheckRiwayat(); err != nil {
			return err
		}

		return tx.Model(&d).Updates(map[string]any{
			"tujuan_jabatan": d.TujuanJabatan,
			"status":         d.Status,
			"catatan":        d.Catatan,
			"riwayat":        d.Riwayat,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	var surat models.SuratMasuk
	if err := s.db.WithContext(ctx).First(&surat, d.SuratMasukID).Error; err == nil {
		d.SuratMasuk = &surat
	}

	s.bus.Publish(events.Event{
		Type:         events.DisposisiForwarded,
		SuratMasukID: d.SuratMasukID,
		DisposisiID:  d.ID,
		NomorSurat:   surat.NomorSurat,
		Pengirim:     surat.Pengirim,
		Perihal:      surat.Perihal,
		From:         actor.Name(),
		ToJabatan:    target,
		Catatan:      catatan,
	})
	return &d, nil
}

func (s *DisposisiService) Get(ctx context.Context, id uint) (*models.Disposisi, error) {
	var d models.Disposisi
	if err := s.db.WithContext(ctx).Preload("SuratMasuk").First(&d, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &d, nil
}

func (s *DisposisiService) List(ctx context.Context, filter DisposisiFilter) ([]models.Disposisi, int64, error) {
	page, limit := NormalizePage(filter.Page, filter.Limit)

	query := s.db.WithContext(ctx).Model(&models.Disposisi{})
	if filter.TujuanJabatan != "" {
		query = query.Where("tujuan_jabatan = ?", filter.TujuanJabatan)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Disposisi
	err := query.Preload("SuratMasuk").
		Order("created_at DESC").Order("id DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// Destinations lists the hierarchy successors of the current holder together
// with the profiles holding each jabatan.
func (s *DisposisiService) Destinations(ctx context.Context, id uint) ([]Destination, error) {
	var d models.Disposisi
	if err := s.db.WithContext(ctx).First(&d, id).Error; err != nil {
		return nil, notFound(err)
	}

	next := d.TujuanJabatan.NextDestinations()
	out := make([]Destination, 0, len(next))
	if len(next) == 0 {
		return out, nil
	}

	var users []models.User
	if err := s.db.WithContext(ctx).Where("jabatan IN ?", next).Order("full_name ASC").Find(&users).Error; err != nil {
		return nil, err
	}

	byJabatan := make(map[models.Jabatan][]UserOption, len(next))
	for _, u := range users {
		byJabatan[u.Jabatan] = append(byJabatan[u.Jabatan], toUserOption(u))
	}
	for _, j := range next {
		opts := byJabatan[j]
		if opts == nil {
			opts = []UserOption{}
		}
		out = append(out, Destination{Jabatan: j, Users: opts})
	}
	return out, nil
}
