package services

import (
	"errors"
	"mime/multipart"
	"testing"

	"esuka/models"
	"esuka/utils"
	"esuka/utils/storage"
	"esuka/utils/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestProfileUpdate(t *testing.T) {
	db := testdb.Open(t)
	svc := NewProfileService(db, newMemoryStore())
	actor := ActorFromUser(seedUser(t, db, "budi@bappeda.go.id", models.RoleUser, ""))

	user, err := svc.Update(ctx, actor, UpdateProfileInput{FullName: ptr("Budi Santoso"), Jabatan: ptr(models.JabatanKabidLitbang)})
	require.NoError(t, err)
	assert.Equal(t, "Budi Santoso", user.FullName)
	assert.Equal(t, models.JabatanKabidLitbang, user.Jabatan)

	_, err = svc.Update(ctx, actor, UpdateProfileInput{Jabatan: ptr(models.Jabatan("Lurah"))})
	assert.ErrorIs(t, err, ErrInvalidJabatan)
}

func TestProfileAvatar(t *testing.T) {
	db := testdb.Open(t)
	store := newMemoryStore()
	svc := NewProfileService(db, store)
	actor := ActorFromUser(seedUser(t, db, "budi@bappeda.go.id", models.RoleUser, ""))

	first, err := svc.UploadAvatar(ctx, actor, &multipart.FileHeader{Filename: "me.png", Size: 100 << 10})
	require.NoError(t, err)
	assert.Contains(t, first.AvatarURL, "https://files.test/")

	second, err := svc.UploadAvatar(ctx, actor, &multipart.FileHeader{Filename: "me.webp", Size: 10})
	require.NoError(t, err)
	assert.NotEqual(t, first.AvatarURL, second.AvatarURL)
	assert.Contains(t, store.deleted, first.AvatarURL)

	_, err = svc.UploadAvatar(ctx, actor, &multipart.FileHeader{Filename: "big.jpg", Size: 600 << 10})
	var verr *storage.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestProfileAvatarSaveFailureRemovesUpload(t *testing.T) {
	db := testdb.Open(t)
	store := newMemoryStore()
	store.deleteErr = errors.New("bucket offline")
	svc := NewProfileService(db, store)
	actor := ActorFromUser(seedUser(t, db, "budi@bappeda.go.id", models.RoleUser, ""))

	saveErr := errors.New("disk full")
	require.NoError(t, db.Callback().Update().Before("gorm:update").Register("test:fail_avatar", func(tx *gorm.DB) {
		_ = tx.AddError(saveErr)
	}))

	_, err := svc.UploadAvatar(ctx, actor, &multipart.FileHeader{Filename: "me.png", Size: 10})
	require.ErrorIs(t, err, saveErr)
	require.Len(t, store.deleted, 1)
	assert.Contains(t, store.deleted[0], "https://files.test/")

	user, err := svc.Get(ctx, actor)
	require.NoError(t, err)
	assert.Empty(t, user.AvatarURL)
}

func TestChangePassword(t *testing.T) {
	db := testdb.Open(t)
	svc := NewProfileService(db, newMemoryStore())
	actor := ActorFromUser(seedUser(t, db, "budi@bappeda.go.id", models.RoleUser, ""))

	assert.ErrorIs(t, svc.ChangePassword(ctx, actor, "wrong", "newpassword1"), ErrWrongPassword)
	require.NoError(t, svc.ChangePassword(ctx, actor, "password123", "newpassword1"))

	user, err := svc.Get(ctx, actor)
	require.NoError(t, err)
	assert.True(t, utils.CheckPassword(user.PasswordHash, "newpassword1"))
}
