package models

import (
	"errors"
	"time"

	"gorm.io/datatypes"
)

const (
	StatusDisposisiBaru = "Disposisi ke " + string(DisposisiRoot)
	StatusDiteruskan    = "Diteruskan"
)

var ErrRiwayatBroken = errors.New("disposisi riwayat does not match tujuan_jabatan")

// RiwayatEntry is one routing step. Entries are never edited once appended.
type RiwayatEntry struct {
	From        string    `json:"from"`
	FromID      uint      `json:"from_id,omitempty"`
	FromJabatan Jabatan   `json:"from_jabatan"`
	ToJabatan   Jabatan   `json:"to_jabatan"`
	Status      string    `json:"status"`
	Catatan     string    `json:"catatan"`
	Timestamp   time.Time `json:"timestamp"`
}

type Disposisi struct {
	ID            uint                              `gorm:"primaryKey;autoIncrement:true"`
	SuratMasukID  uint                              `gorm:"not null;uniqueIndex"`
	SuratMasuk    *SuratMasuk                       `gorm:"foreignKey:SuratMasukID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	TujuanJabatan Jabatan                           `gorm:"type:varchar(150);not null;index"`
	Status        string                            `gorm:"type:varchar(255);not null"`
	Catatan       string                            `gorm:"type:text"`
	Riwayat       datatypes.JSONSlice[RiwayatEntry] `gorm:"not null"`
	CreatedAt     time.Time                         `gorm:"index"`
	UpdatedAt     time.Time
}

func (Disposisi) TableName() string {
	return "disposisi"
}

// NewDisposisi builds the initial state of a disposisi: routed to the root
// jabatan with exactly one riwayat entry.
func NewDisposisi(suratMasukID uint, first RiwayatEntry) Disposisi {
	first.ToJabatan = DisposisiRoot
	if first.Status == "" {
		first.Status = StatusDisposisiBaru
	}
	return Disposisi{
		SuratMasukID:  suratMasukID,
		TujuanJabatan: DisposisiRoot,
		Status:        StatusDisposisiBaru,
		Catatan:       first.Catatan,
		Riwayat:       datatypes.NewJSONSlice([]RiwayatEntry{first}),
	}
}

// Forward appends entry to riwayat and moves the disposisi to entry.ToJabatan.
// The riwayat slice is rebuilt so earlier readers keep their own copy.
func (d *Disposisi) Forward(entry RiwayatEntry) {
	if entry.Status == "" {
		entry.Status = "Diteruskan ke " + string(entry.ToJabatan)
	}
	next := make([]RiwayatEntry, 0, len(d.Riwayat)+1)
	next = append(next, d.Riwayat...)
	next = append(next, entry)

	d.Riwayat = datatypes.NewJSONSlice(next)
	d.TujuanJabatan = entry.ToJabatan
	d.Status = StatusDiteruskan
	d.Catatan = entry.Catatan
}

func (d *Disposisi) LastEntry() (RiwayatEntry, bool) {
	if len(d.Riwayat) == 0 {
		return RiwayatEntry{}, false
	}
	return d.Riwayat[len(d.Riwayat)-1], true
}

// CheckRiwayat verifies tujuan_jabatan equals the to_jabatan of the newest entry.
func (d *Disposisi) CheckRiwayat() error {
	last, ok := d.LastEntry()
	if !ok || last.ToJabatan != d.TujuanJabatan {
		return ErrRiwayatBroken
	}
	return nil
}

func (d *Disposisi) IsSelesai() bool {
	return d.TujuanJabatan.IsTerminal()
}
