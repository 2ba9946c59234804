package handlers

import (
	"errors"

	"esuka/dto"
	"esuka/services"
	"esuka/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body", err.Error())
	}
	if errMap := req.Validate(); len(errMap) > 0 {
		return utils.BadRequest(c, "Validasi gagal", errMap)
	}

	user, err := h.auth.Register(c.UserContext(), req.ToInput())
	if err != nil {
		return respondError(c, err, "failed to register")
	}

	return utils.Created(c, "registration successful", dto.NewUserSummary(*user))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body", err.Error())
	}
	if errMap := req.Validate(); len(errMap) > 0 {
		return utils.BadRequest(c, "Validasi gagal", errMap)
	}

	pair, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err, "failed to login")
	}

	return utils.OK(c, "login successful", dto.NewLoginResponse(pair))
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body", err.Error())
	}
	if errMap := req.Validate(); len(errMap) > 0 {
		return utils.BadRequest(c, "Validasi gagal", errMap)
	}

	pair, err := h.auth.Refresh(c.UserContext(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			return utils.Unauthorized(c, err.Error())
		}
		return respondError(c, err, "failed to refresh token")
	}

	return utils.OK(c, "token refreshed", dto.NewLoginResponse(pair))
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var req dto.RefreshTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body", err.Error())
	}
	if errMap := req.Validate(); len(errMap) > 0 {
		return utils.BadRequest(c, "Validasi gagal", errMap)
	}

	if err := h.auth.Logout(c.UserContext(), req.RefreshToken); err != nil {
		return respondError(c, err, "failed to logout")
	}
	return utils.OK(c, "logged out", nil)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return respondError(c, err, "")
	}

	user, err := h.auth.Me(c.UserContext(), actor)
	if err != nil {
		return respondError(c, err, "failed to load profile")
	}
	return utils.OK(c, "current user", dto.NewUserSummary(*user))
}

// RequestPasswordReset answers the same way whether or not the email exists.
func (h *AuthHandler) RequestPasswordReset(c *fiber.Ctx) error {
	var req dto.PasswordResetRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body", err.Error())
	}
	if errMap := req.Validate(); len(errMap) > 0 {
		return utils.BadRequest(c, "Validasi gagal", errMap)
	}

	if err := h.auth.ForgotPassword(c.UserContext(), req.Email); err != nil {
		return respondError(c, err, "failed to send reset link")
	}
	return utils.OK(c, "If the email exists, a reset link has been sent", nil)
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.PasswordResetSubmission
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body", err.Error())
	}
	if errMap := req.Validate(); len(errMap) > 0 {
		return utils.BadRequest(c, "Validasi gagal", errMap)
	}

	if err := h.auth.ResetPassword(c.UserContext(), req.Token, req.Password); err != nil {
		return respondError(c, err, "failed to reset password")
	}
	return utils.OK(c, "password has been reset", nil)
}
