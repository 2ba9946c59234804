package fcm

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"
	"unicode"

	"esuka/models"
	"esuka/utils/events"
	"esuka/utils/metrics"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
)

// Prefix untuk nama topic di Firebase
const FCMTopicPrefix = "topic_"

// TopicSuratMasuk is subscribed by every client that shows the new-letter bell.
const TopicSuratMasuk = FCMTopicPrefix + "surat_masuk"

const sendTimeout = 10 * time.Second

// Sender is satisfied by *messaging.Client.
type Sender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type Notifier struct {
	sender  Sender
	metrics *metrics.Metrics
}

func NewNotifier(sender Sender, m *metrics.Metrics) *Notifier {
	return &Notifier{sender: sender, metrics: m}
}

// NewFirebaseSender initializes the Firebase Admin SDK with application
// default credentials.
func NewFirebaseSender(ctx context.Context, projectID string) (*messaging.Client, error) {
	log.Println("Initializing Firebase Admin SDK...")

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID})
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("get firebase messaging client: %w", err)
	}

	log.Println("✅ Firebase Admin SDK initialized successfully.")
	return client, nil
}

// TopicForJabatan maps a jabatan to a valid FCM topic name, e.g.
// "Kepala Badan" -> "topic_kepala_badan".
func TopicForJabatan(j models.Jabatan) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.ToLower(string(j)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore && b.Len() > 0 {
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	return FCMTopicPrefix + strings.TrimSuffix(b.String(), "_")
}

// BuildMessages turns an event into the FCM messages it should produce.
func BuildMessages(e events.Event) []*messaging.Message {
	data := map[string]string{
		"type":           string(e.Type),
		"surat_masuk_id": strconv.FormatUint(uint64(e.SuratMasukID), 10),
	}
	if e.DisposisiID != 0 {
		data["disposisi_id"] = strconv.FormatUint(uint64(e.DisposisiID), 10)
	}

	switch e.Type {
	case events.SuratMasukCreated:
		return []*messaging.Message{newMessage(TopicSuratMasuk,
			"Surat Masuk Baru",
			fmt.Sprintf("Surat dari %s: %s", e.Pengirim, e.Perihal),
			data)}

	case events.DisposisiCreated, events.DisposisiForwarded:
		if e.ToJabatan == "" {
			return nil
		}
		data["tujuan_jabatan"] = string(e.ToJabatan)
		body := fmt.Sprintf("Surat %s menunggu tindak lanjut Anda.", e.NomorSurat)
		if e.From != "" {
			body = fmt.Sprintf("Surat %s didisposisikan oleh %s.", e.NomorSurat, e.From)
		}
		return []*messaging.Message{newMessage(TopicForJabatan(e.ToJabatan), "Disposisi Baru", body, data)}
	}

	return nil
}

func newMessage(topic, title, body string, data map[string]string) *messaging.Message {
	return &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority:     "high",
			Notification: &messaging.AndroidNotification{ChannelID: "default_channel"},
		},
	}
}

// Dispatch sends every message built from e and returns the first error.
func (n *Notifier) Dispatch(ctx context.Context, e events.Event) error {
	if n.sender == nil {
		return fmt.Errorf("FCM client not initialized")
	}

	var firstErr error
	for _, msg := range BuildMessages(e) {
		sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
		_, err := n.sender.Send(sendCtx, msg)
		cancel()

		n.metrics.RecordNotification(err)
		if err != nil {
			log.Printf("⚠️ FCM send to %s failed: %v", msg.Topic, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// StartNotifierConsumer drains the bus until ctx is cancelled.
func (n *Notifier) StartNotifierConsumer(ctx context.Context, bus *events.Bus) {
	log.Println("✅ FCM Notifier Consumer started")

	for {
		select {
		case <-ctx.Done():
			return
		case e := <-bus.Events():
			go func(event events.Event) {
				_ = n.Dispatch(context.Background(), event)
			}(e)
		}
	}
}
