package handlers

import (
	"esuka/dto"
	userdto "esuka/dto/users"
	"esuka/services"
	"esuka/utils"

	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	profile *services.ProfileService
}

func NewProfileHandler(profile *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profile: profile}
}

func (h *ProfileHandler) GetMyProfile(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return respondError(c, err, "")
	}

	user, err := h.profile.Get(c.UserContext(), actor)
	if err != nil {
		return respondError(c, err, "failed to load profile")
	}
	return utils.OK(c, "profile retrieved", dto.NewUserSummary(*user))
}

func (h *ProfileHandler) UpdateMyProfile(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return respondError(c, err, "")
	}

	var req userdto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid body", err.Error())
	}
	if errMap := req.Validate(); len(errMap) > 0 {
		return utils.BadRequest(c, "Validasi gagal", errMap)
	}

	user, err := h.profile.Update(c.UserContext(), actor, req.ToInput())
	if err != nil {
		return respondError(c, err, "failed to update profile")
	}
	return utils.OK(c, "profile updated successfully", dto.NewUserSummary(*user))
}

// UploadAvatar expects the image in the multipart "file" field.
func (h *ProfileHandler) UploadAvatar(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return respondError(c, err, "")
	}

	fileHeader := optionalFile(c)
	if fileHeader == nil {
		return utils.BadRequest(c, "Validasi gagal", fiber.Map{fileField: "file is required"})
	}

	user, err := h.profile.UploadAvatar(c.UserContext(), actor, fileHeader)
	if err != nil {
		return respondError(c, err, "failed to upload avatar")
	}
	return utils.OK(c, "avatar updated", dto.NewUserSummary(*user))
}

func (h *ProfileHandler) ChangePassword(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return respondError(c, err, "")
	}

	var req userdto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid body", err.Error())
	}
	if errMap := req.Validate(); len(errMap) > 0 {
		return utils.BadRequest(c, "Validasi gagal", errMap)
	}

	if err := h.profile.ChangePassword(c.UserContext(), actor, req.OldPassword, req.NewPassword); err != nil {
		return respondError(c, err, "failed to change password")
	}
	return utils.OK(c, "password changed successfully", nil)
}
