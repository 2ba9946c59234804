package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublishIsNonBlocking(t *testing.T) {
	bus := NewBus(1)
	dropped := 0
	bus.OnDropped(func() { dropped++ })

	assert.True(t, bus.Publish(Event{Type: SuratMasukCreated, SuratMasukID: 1}))
	assert.False(t, bus.Publish(Event{Type: SuratMasukCreated, SuratMasukID: 2}))
	assert.Equal(t, 1, dropped)

	e := <-bus.Events()
	assert.Equal(t, uint(1), e.SuratMasukID)
	assert.False(t, e.OccurredAt.IsZero())
}

func TestNilBus(t *testing.T) {
	var bus *Bus
	assert.False(t, bus.Publish(Event{Type: DisposisiCreated}))
}
