package events

import (
	"log"
	"time"

	"esuka/models"
)

// Type names what happened to a letter.
type Type string

const (
	// SuratMasukCreated is published after a surat masuk row is inserted.
	SuratMasukCreated Type = "SuratMasukCreated"

	// DisposisiCreated is published when a letter first enters the disposisi chain.
	DisposisiCreated Type = "DisposisiCreated"

	// DisposisiForwarded is published after every successful forward.
	DisposisiForwarded Type = "DisposisiForwarded"
)

type Event struct {
	Type         Type
	SuratMasukID uint
	DisposisiID  uint
	NomorSurat   string
	Pengirim     string
	Perihal      string
	From         string
	ToJabatan    models.Jabatan
	Catatan      string
	OccurredAt   time.Time
}

// Bus is a buffered channel of events. Publishing never blocks the API
// handler: when the buffer is full the event is dropped and logged.
type Bus struct {
	ch        chan Event
	onDropped func()
}

func NewBus(buffer int) *Bus {
	if buffer <= 0 {
		buffer = 100
	}
	return &Bus{ch: make(chan Event, buffer)}
}

// OnDropped registers a hook called for every dropped event.
func (b *Bus) OnDropped(fn func()) {
	if b != nil {
		b.onDropped = fn
	}
}

// Publish reports whether e was queued. A nil bus accepts nothing.
func (b *Bus) Publish(e Event) bool {
	if b == nil {
		return false
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now()
	}

	select {
	case b.ch <- e:
		return true
	default:
		log.Printf("⚠️ event bus full, dropping %s for surat masuk %d", e.Type, e.SuratMasukID)
		if b.onDropped != nil {
			b.onDropped()
		}
		return false
	}
}

func (b *Bus) Events() <-chan Event {
	return b.ch
}
