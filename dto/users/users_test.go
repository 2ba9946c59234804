package users

import (
	"testing"

	"esuka/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestAdminUserUpdateRequest(t *testing.T) {
	req := AdminUserUpdateRequest{Role: ptr("direktur"), Jabatan: ptr("Ketua")}
	errs := req.Validate()
	assert.Equal(t, "role must be admin or user", errs["role"])
	assert.Equal(t, "jabatan is not a known jabatan", errs["jabatan"])

	req = AdminUserUpdateRequest{FullName: ptr("  ")}
	assert.Equal(t, "full_name must not be empty", req.Validate()["full_name"])

	req = AdminUserUpdateRequest{Role: ptr(" admin "), Jabatan: ptr(string(models.JabatanKepalaBadan))}
	require.Empty(t, req.Validate())
	in := req.ToInput()
	require.NotNil(t, in.Role)
	assert.Equal(t, models.RoleAdmin, *in.Role)
	assert.Equal(t, models.JabatanKepalaBadan, *in.Jabatan)
	assert.Nil(t, in.FullName)
}

func TestUpdateProfileRequestAllowsClearingJabatan(t *testing.T) {
	req := UpdateProfileRequest{Jabatan: ptr(""), NIP: ptr(" 1987 ")}
	require.Empty(t, req.Validate())

	in := req.ToInput()
	require.NotNil(t, in.Jabatan)
	assert.Equal(t, models.Jabatan(""), *in.Jabatan)
	assert.Equal(t, "1987", *in.NIP)
}

func TestAdminUserUpdateRequestAllowsClearingJabatan(t *testing.T) {
	req := AdminUserUpdateRequest{Jabatan: ptr("  ")}
	require.Empty(t, req.Validate())

	in := req.ToInput()
	require.NotNil(t, in.Jabatan)
	assert.Equal(t, models.Jabatan(""), *in.Jabatan)
	assert.Nil(t, in.Role)
}

func TestUpdateProfileRequestRejectsUnknownJabatan(t *testing.T) {
	req := UpdateProfileRequest{Jabatan: ptr("Camat")}
	assert.Equal(t, "jabatan is not a known jabatan", req.Validate()["jabatan"])
}

func TestChangePasswordRequestValidate(t *testing.T) {
	req := ChangePasswordRequest{OldPassword: "", NewPassword: "pendek", ConfirmPassword: "lain"}
	errs := req.Validate()
	assert.Contains(t, errs, "old_password")
	assert.Equal(t, "new_password must be at least 8 characters", errs["new_password"])
	assert.Equal(t, "confirm_password does not match", errs["confirm_password"])
}

func TestUserListRequest(t *testing.T) {
	req := UserListRequest{Role: "superuser"}
	assert.Contains(t, req.Validate(), "role")

	req = UserListRequest{Role: "user", Q: " siti ", Page: 2}
	require.Empty(t, req.Validate())
	f := req.ToFilter()
	assert.Equal(t, models.RoleUser, f.Role)
	assert.Equal(t, "siti", f.Query)
	assert.Equal(t, 2, f.Page)
}
