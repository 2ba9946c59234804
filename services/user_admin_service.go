package services

import (
	"context"
	"fmt"
	"strings"

	"esuka/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserOption feeds penandatangan and destination pickers.
type UserOption struct {
	ID       uint           `json:"id"`
	FullName string         `json:"full_name"`
	Jabatan  models.Jabatan `json:"jabatan,omitempty"`
}

func toUserOption(u models.User) UserOption {
	return UserOption{ID: u.ID, FullName: u.DisplayName(), Jabatan: u.Jabatan}
}

type UserFilter struct {
	Role  models.Role
	Query string
	Page  int
	Limit int
}

// UpdateUserInput is a partial update; nil fields are left alone.
type UpdateUserInput struct {
	FullName *string
	Role     *models.Role
	Jabatan  *models.Jabatan
	NIP      *string
}

type UserAdminService struct {
	db    *gorm.DB
	perms *PermissionService
}

func NewUserAdminService(db *gorm.DB, perms *PermissionService) *UserAdminService {
	return &UserAdminService{db: db, perms: perms}
}

func (s *UserAdminService) List(ctx context.Context, actor Actor, filter UserFilter) ([]models.User, int64, error) {
	if err := s.perms.CanManageUsers(&actor); err != nil {
		return nil, 0, err
	}
	page, limit := NormalizePage(filter.Page, filter.Limit)

	tx := s.db.WithContext(ctx).Model(&models.User{})
	if filter.Role != "" {
		tx = tx.Where("role = ?", filter.Role)
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		like := containsPattern(q)
		tx = tx.Where(
			s.db.Where("LOWER(full_name) LIKE ? ESCAPE '!'", like).
				Or("LOWER(email) LIKE ? ESCAPE '!'", like).
				Or("nip LIKE ? ESCAPE '!'", like),
		)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	if err := tx.Order("full_name ASC").Order("id ASC").Limit(limit).Offset((page - 1) * limit).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// Update applies a partial profile update. Demoting the only admin is
// rejected with ErrLastAdmin.
func (s *UserAdminService) Update(ctx context.Context, actor Actor, id uint, in UpdateUserInput) (*models.User, error) {
	if err := s.perms.CanManageUsers(&actor); err != nil {
		return nil, err
	}
	if in.Role != nil && !in.Role.IsValid() {
		return nil, ErrInvalidRole
	}
	if in.Jabatan != nil && *in.Jabatan != "" && !in.Jabatan.IsValid() {
		return nil, ErrInvalidJabatan
	}

	var user models.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, id).Error; err != nil {
			return notFound(err)
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
		if in.Role != nil && *in.Role != user.Role {
			if user.IsAdmin() {
				if err := ensureAnotherAdmin(tx); err != nil {
					return err
				}
			}
			updates["role"] = *in.Role
		}

		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&user).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&user, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete hard-deletes a profile with its tokens. A sole admin cannot be
// removed, not even by themselves.
func (s *UserAdminService) Delete(ctx context.Context, actor Actor, id uint) error {
	if err := s.perms.CanManageUsers(&actor); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, id).Error; err != nil {
			return notFound(err)
		}

		if user.IsAdmin() {
			if err := ensureAnotherAdmin(tx); err != nil {
				return err
			}
		}
		if user.ID == actor.ID {
			return ErrSelfDelete
		}

		if err := tx.Where("user_id = ?", user.ID).Unscoped().Delete(&models.RefreshToken{}).Error; err != nil {
			return fmt.Errorf("delete refresh tokens: %w", err)
		}
		if err := tx.Where("user_id = ?", user.ID).Unscoped().Delete(&models.PasswordResetToken{}).Error; err != nil {
			return fmt.Errorf("delete reset tokens: %w", err)
		}
		return tx.Unscoped().Delete(&user).Error
	})
}

// Options lists every profile for selectors, ordered by name.
func (s *UserAdminService) Options(ctx context.Context, jabatan models.Jabatan) ([]UserOption, error) {
	tx := s.db.WithContext(ctx).Model(&models.User{})
	if jabatan != "" {
		tx = tx.Where("jabatan = ?", jabatan)
	}

	var users []models.User
	if err := tx.Order("full_name ASC").Find(&users).Error; err != nil {
		return nil, err
	}

	out := make([]UserOption, 0, len(users))
	for _, u := range users {
		out = append(out, toUserOption(u))
	}
	return out, nil
}

func ensureAnotherAdmin(tx *gorm.DB) error {
	var admins int64
	if err := tx.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&admins).Error; err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if admins <= 1 {
		return ErrLastAdmin
	}
	return nil
}
