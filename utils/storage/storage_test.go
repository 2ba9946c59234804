package storage

import (
	"mime/multipart"
	"strings"
	"testing"
	"time"

	"esuka/config"

	"github.com/stretchr/testify/assert"
)

func TestAttachmentRule(t *testing.T) {
	assert.NoError(t, AttachmentRule.Validate(&multipart.FileHeader{Filename: "undangan.PDF", Size: 900 << 10}))
	assert.NoError(t, AttachmentRule.Validate(&multipart.FileHeader{Filename: "nota.docx", Size: 1 << 20}))

	err := AttachmentRule.Validate(&multipart.FileHeader{Filename: "scan.pdf", Size: 1<<20 + 1})
	assert.EqualError(t, err, "file must not exceed 1MB")

	err = AttachmentRule.Validate(&multipart.FileHeader{Filename: "foto.webp", Size: 10})
	assert.ErrorContains(t, err, "not allowed")

	assert.Error(t, AttachmentRule.Validate(nil))
}

func TestAvatarRule(t *testing.T) {
	assert.NoError(t, AvatarRule.Validate(&multipart.FileHeader{Filename: "me.webp", Size: 500 << 10}))
	assert.EqualError(t, AvatarRule.Validate(&multipart.FileHeader{Filename: "me.png", Size: 500<<10 + 1}), "file must not exceed 500KB")
	assert.Error(t, AvatarRule.Validate(&multipart.FileHeader{Filename: "me.pdf", Size: 10}))
}

func TestKeys(t *testing.T) {
	now := time.UnixMilli(1718442000000)
	assert.Equal(t, "public/masuk_1718442000000-surat_undangan.pdf", AttachmentKey("masuk", now, "surat undangan.pdf"))

	key := AvatarKey(7, "Foto.JPG")
	assert.True(t, strings.HasPrefix(key, "7/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))
}

func TestPublicURLRoundTrip(t *testing.T) {
	cfg := config.StorageConfig{Bucket: "esuka", Region: "ap-southeast-1", PublicBaseURL: "https://cdn.example.com/esuka"}

	u := PublicURL(cfg, "public/masuk_1-a b.pdf")
	assert.Equal(t, "https://cdn.example.com/esuka/public/masuk_1-a%20b.pdf", u)

	key, ok := KeyFromURL(cfg, u)
	assert.True(t, ok)
	assert.Equal(t, "public/masuk_1-a b.pdf", key)

	_, ok = KeyFromURL(cfg, "https://elsewhere.example.com/x.pdf")
	assert.False(t, ok)

	cfg.PublicBaseURL = ""
	assert.Equal(t, "https://esuka.s3.ap-southeast-1.amazonaws.com/k.pdf", PublicURL(cfg, "k.pdf"))
}
