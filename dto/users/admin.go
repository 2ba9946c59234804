package users

import (
	"strings"

	"esuka/dto"
	"esuka/models"
	"esuka/services"
)

// AdminUserUpdateRequest only touches the fields that were sent.
type AdminUserUpdateRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,max=150"`
	Role     *string `json:"role" validate:"omitempty,role"`
	Jabatan  *string `json:"jabatan" validate:"omitempty,jabatan_or_empty"`
	NIP      *string `json:"nip" validate:"omitempty,max=50"`
}

func (r *AdminUserUpdateRequest) Validate() map[string]string {
	trim(r.FullName, r.Role, r.Jabatan, r.NIP)
	errors := dto.ValidateStruct(r)
	if r.FullName != nil && *r.FullName == "" {
		errors["full_name"] = "full_name must not be empty"
	}
	return errors
}

func (r *AdminUserUpdateRequest) ToInput() services.UpdateUserInput {
	in := services.UpdateUserInput{FullName: r.FullName, NIP: r.NIP}
	if r.Role != nil && *r.Role != "" {
		role := models.Role(*r.Role)
		in.Role = &role
	}
	if r.Jabatan != nil {
		jabatan := models.Jabatan(*r.Jabatan)
		in.Jabatan = &jabatan
	}
	return in
}

type UserListRequest struct {
	Role  string `query:"role"`
	Q     string `query:"q"`
	Page  int    `query:"page"`
	Limit int    `query:"limit"`
}

func (r *UserListRequest) Validate() map[string]string {
	errors := make(map[string]string)
	r.Role = strings.TrimSpace(r.Role)
	if r.Role != "" && !models.Role(r.Role).IsValid() {
		errors["role"] = "role must be admin or user"
	}
	return errors
}

func (r *UserListRequest) ToFilter() services.UserFilter {
	return services.UserFilter{
		Role:  models.Role(r.Role),
		Query: strings.TrimSpace(r.Q),
		Page:  r.Page,
		Limit: r.Limit,
	}
}

func trim(values ...*string) {
	for _, v := range values {
		if v != nil {
			*v = strings.TrimSpace(*v)
		}
	}
}
