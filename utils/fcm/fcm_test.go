package fcm

import (
	"context"
	"errors"
	"sync"
	"testing"

	"esuka/models"
	"esuka/utils/events"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	mu   sync.Mutex
	sent []*messaging.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, msg *messaging.Message) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
	return "projects/test/messages/1", f.err
}

func TestTopicForJabatan(t *testing.T) {
	assert.Equal(t, "topic_kepala_badan", TopicForJabatan(models.JabatanKepalaBadan))
	assert.Equal(t, "topic_sekretaris_badan", TopicForJabatan(models.JabatanSekretarisBadan))
	assert.Equal(t, "topic_kepala_bidang_pengendalian_evaluasi_dan_pelaporan", TopicForJabatan(models.JabatanKabidPengendalian))
}

func TestBuildMessages(t *testing.T) {
	msgs := BuildMessages(events.Event{Type: events.SuratMasukCreated, SuratMasukID: 3, Pengirim: "Dinas PU", Perihal: "Undangan"})
	require.Len(t, msgs, 1)
	assert.Equal(t, TopicSuratMasuk, msgs[0].Topic)
	assert.Equal(t, "3", msgs[0].Data["surat_masuk_id"])

	msgs = BuildMessages(events.Event{Type: events.DisposisiForwarded, SuratMasukID: 3, DisposisiID: 9, ToJabatan: models.JabatanKepalaBadan, From: "Sekban"})
	require.Len(t, msgs, 1)
	assert.Equal(t, "topic_kepala_badan", msgs[0].Topic)
	assert.Equal(t, "9", msgs[0].Data["disposisi_id"])

	assert.Empty(t, BuildMessages(events.Event{Type: events.DisposisiCreated}))
}

func TestDispatch(t *testing.T) {
	sender := &fakeSender{}
	n := NewNotifier(sender, nil)

	err := n.Dispatch(context.Background(), events.Event{Type: events.DisposisiCreated, ToJabatan: models.JabatanSekretarisBadan})
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	sender.err = errors.New("quota exceeded")
	err = n.Dispatch(context.Background(), events.Event{Type: events.SuratMasukCreated})
	assert.EqualError(t, err, "quota exceeded")

	assert.Error(t, NewNotifier(nil, nil).Dispatch(context.Background(), events.Event{}))
}
