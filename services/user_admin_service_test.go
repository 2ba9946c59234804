package services

import (
	"testing"

	"esuka/models"
	"esuka/utils/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestSoleAdminCannotBeRemovedOrDemoted(t *testing.T) {
	db := testdb.Open(t)
	svc := NewUserAdminService(db, NewPermissionService(false))
	admin := seedUser(t, db, "admin@bappeda.go.id", models.RoleAdmin, "")
	actor := ActorFromUser(admin)

	err := svc.Delete(ctx, actor, admin.ID)
	assert.ErrorIs(t, err, ErrLastAdmin)
	assert.EqualError(t, err, "cannot remove the last admin")

	_, err = svc.Update(ctx, actor, admin.ID, UpdateUserInput{Role: ptr(models.RoleUser)})
	assert.ErrorIs(t, err, ErrLastAdmin)

	var stored models.User
	require.NoError(t, db.First(&stored, admin.ID).Error)
	assert.Equal(t, models.RoleAdmin, stored.Role)
}

func TestDeleteUserRules(t *testing.T) {
	db := testdb.Open(t)
	svc := NewUserAdminService(db, NewPermissionService(false))
	admin := seedUser(t, db, "admin@bappeda.go.id", models.RoleAdmin, "")
	other := seedUser(t, db, "admin2@bappeda.go.id", models.RoleAdmin, "")
	staf := seedUser(t, db, "staf@bappeda.go.id", models.RoleUser, models.JabatanStaf)
	require.NoError(t, db.Create(&models.RefreshToken{UserID: staf.ID, TokenHash: "abc"}).Error)

	assert.ErrorIs(t, svc.Delete(ctx, ActorFromUser(admin), admin.ID), ErrSelfDelete)
	assert.ErrorIs(t, svc.Delete(ctx, ActorFromUser(staf), other.ID), ErrAdminOnly)
	assert.ErrorIs(t, svc.Delete(ctx, ActorFromUser(admin), 999), ErrNotFound)

	require.NoError(t, svc.Delete(ctx, ActorFromUser(admin), staf.ID))
	var count int64
	db.Unscoped().Model(&models.User{}).Where("id = ?", staf.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.RefreshToken{}).Where("user_id = ?", staf.ID).Count(&count)
	assert.Zero(t, count)

	require.NoError(t, svc.Delete(ctx, ActorFromUser(admin), other.ID))
	assert.ErrorIs(t, svc.Delete(ctx, ActorFromUser(admin), admin.ID), ErrLastAdmin)
}

func TestUpdateUser(t *testing.T) {
	db := testdb.Open(t)
	svc := NewUserAdminService(db, NewPermissionService(false))
	admin := ActorFromUser(seedUser(t, db, "admin@bappeda.go.id", models.RoleAdmin, ""))
	staf := seedUser(t, db, "staf@bappeda.go.id", models.RoleUser, "")

	updated, err := svc.Update(ctx, admin, staf.ID, UpdateUserInput{
		FullName: ptr("  Siti Aminah "),
		Jabatan:  ptr(models.JabatanKepalaBadan),
		NIP:      ptr("198001012005012001"),
		Role:     ptr(models.RoleAdmin),
	})
	require.NoError(t, err)
	assert.Equal(t, "Siti Aminah", updated.FullName)
	assert.Equal(t, models.JabatanKepalaBadan, updated.Jabatan)
	assert.Equal(t, models.RoleAdmin, updated.Role)

	// Two admins now, demotion is fine.
	updated, err = svc.Update(ctx, admin, staf.ID, UpdateUserInput{Role: ptr(models.RoleUser)})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, updated.Role)

	_, err = svc.Update(ctx, admin, staf.ID, UpdateUserInput{Jabatan: ptr(models.Jabatan("Camat"))})
	assert.ErrorIs(t, err, ErrInvalidJabatan)
	_, err = svc.Update(ctx, admin, staf.ID, UpdateUserInput{Role: ptr(models.Role("root"))})
	assert.ErrorIs(t, err, ErrInvalidRole)
	_, err = svc.Update(ctx, ActorFromUser(staf), staf.ID, UpdateUserInput{})
	assert.ErrorIs(t, err, ErrAdminOnly)
}

func TestListUsersAndOptions(t *testing.T) {
	db := testdb.Open(t)
	svc := NewUserAdminService(db, NewPermissionService(false))
	admin := ActorFromUser(seedUser(t, db, "admin@bappeda.go.id", models.RoleAdmin, ""))
	seedUser(t, db, "budi@bappeda.go.id", models.RoleUser, models.JabatanKepalaBadan)
	seedUser(t, db, "citra@bappeda.go.id", models.RoleUser, models.JabatanStaf)

	users, total, err := svc.List(ctx, admin, UserFilter{Role: models.RoleUser})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, users, 2)

	users, _, err = svc.List(ctx, admin, UserFilter{Query: "BUDI"})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "budi@bappeda.go.id", users[0].Email)

	opts, err := svc.Options(ctx, models.JabatanKepalaBadan)
	require.NoError(t, err)
	require.Len(t, opts, 1)

	opts, err = svc.Options(ctx, "")
	require.NoError(t, err)
	assert.Len(t, opts, 3)
}
