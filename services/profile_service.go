package services

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"strings"

	"esuka/models"
	"esuka/utils"
	"esuka/utils/storage"

	"gorm.io/gorm"
)

type UpdateProfileInput struct {
	FullName *string
	Jabatan  *models.Jabatan
	NIP      *string
}

// ProfileService lets a signed-in user manage their own profile row.
type ProfileService struct {
	db    *gorm.DB
	store storage.ObjectStore
}

func NewProfileService(db *gorm.DB, store storage.ObjectStore) *ProfileService {
	return &ProfileService{db: db, store: store}
}

func (s *ProfileService) Get(ctx context.Context, actor Actor) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, actor.ID).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (s *ProfileService) Update(ctx context.Context, actor Actor, in UpdateProfileInput) (*models.User, error) {
	if in.Jabatan != nil && *in.Jabatan != "" && !in.Jabatan.IsValid() {
		return nil, ErrInvalidJabatan
	}

	user, err := s.Get(ctx, actor)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.FullName != nil {
		updates["full_name"] = strings.TrimSpace(*in.FullName)
	}
	if in.Jabatan != nil {
		updates["jabatan"] = *in.Jabatan
	}
	if in.NIP != nil {
		updates["nip"] = strings.TrimSpace(*in.NIP)
	}
	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(user).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, actor)
}

// UploadAvatar stores a new avatar and removes the previous object.
func (s *ProfileService) UploadAvatar(ctx context.Context, actor Actor, file *multipart.FileHeader) (*models.User, error) {
	if err := storage.AvatarRule.Validate(file); err != nil {
		return nil, err
	}

	user, err := s.Get(ctx, actor)
	if err != nil {
		return nil, err
	}

	url, err := s.store.Upload(ctx, file, storage.AvatarKey(user.ID, file.Filename))
	if err != nil {
		return nil, fmt.Errorf("upload avatar: %w", err)
	}

	previous := user.AvatarURL
	if err := s.db.WithContext(ctx).Model(user).Update("avatar_url", url).Error; err != nil {
		s.discardAvatar(ctx, user.ID, url)
		return nil, fmt.Errorf("save avatar: %w", err)
	}
	s.discardAvatar(ctx, user.ID, previous)

	user.AvatarURL = url
	return user, nil
}

func (s *ProfileService) ChangePassword(ctx context.Context, actor Actor, current, next string) error {
	user, err := s.Get(ctx, actor)
	if err != nil {
		return err
	}
	if !utils.CheckPassword(user.PasswordHash, current) {
		return ErrWrongPassword
	}

	hash, err := utils.HashPassword(next)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.db.WithContext(ctx).Model(user).Update("password_hash", hash).Error
}

func (s *ProfileService) discardAvatar(ctx context.Context, userID uint, fileURL string) {
	if fileURL == "" {
		return
	}
	if err := s.store.Delete(ctx, fileURL); err != nil {
		log.Printf("⚠️ failed to delete avatar %s of user %d: %v", fileURL, userID, err)
	}
}
