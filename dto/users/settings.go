package users

import (
	"esuka/dto"
	"esuka/models"
	"esuka/services"
)

type UpdateProfileRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,max=150"`
	Jabatan  *string `json:"jabatan" validate:"omitempty,jabatan_or_empty"`
	NIP      *string `json:"nip" validate:"omitempty,max=50"`
}

func (r *UpdateProfileRequest) Validate() map[string]string {
	trim(r.FullName, r.Jabatan, r.NIP)
	errors := dto.ValidateStruct(r)
	if r.FullName != nil && *r.FullName == "" {
		errors["full_name"] = "full_name must not be empty"
	}
	return errors
}

func (r *UpdateProfileRequest) ToInput() services.UpdateProfileInput {
	in := services.UpdateProfileInput{FullName: r.FullName, NIP: r.NIP}
	if r.Jabatan != nil {
		jabatan := models.Jabatan(*r.Jabatan)
		in.Jabatan = &jabatan
	}
	return in
}

type ChangePasswordRequest struct {
	OldPassword     string `json:"old_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}

func (r *ChangePasswordRequest) Validate() map[string]string {
	return dto.ValidateStruct(r)
}
