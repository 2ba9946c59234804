package handlers

import (
	"errors"

	"esuka/middleware"
	"esuka/models"
	"esuka/services"
	"esuka/utils"
	"esuka/utils/storage"

	"github.com/gofiber/fiber/v2"
)

// respondError maps service errors onto the response envelope. Anything not
// recognised is a backend failure: 500 with fallback and the raw message.
func respondError(c *fiber.Ctx, err error, fallback string) error {
	var fileErr *storage.ValidationError
	switch {
	case errors.As(err, &fileErr):
		return utils.BadRequest(c, "Validasi gagal", fiber.Map{"file": fileErr.Message})

	case errors.Is(err, services.ErrNotFound):
		return utils.NotFound(c, err.Error())

	case errors.Is(err, services.ErrUnauthorized),
		errors.Is(err, services.ErrInvalidCredentials):
		return utils.Unauthorized(c, err.Error())

	case errors.Is(err, services.ErrForbidden),
		errors.Is(err, services.ErrAdminOnly),
		errors.Is(err, services.ErrReferenceAdminOnly),
		errors.Is(err, services.ErrNotDisposisiHolder):
		return utils.Forbidden(c, err.Error())

	case errors.Is(err, services.ErrAlreadyDispositioned),
		errors.Is(err, services.ErrDuplicateKode),
		errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrLastAdmin),
		errors.Is(err, services.ErrNotArchived):
		return utils.Conflict(c, err.Error())

	case errors.Is(err, services.ErrInvalidToken),
		errors.Is(err, models.ErrPasswordResetTokenExpired),
		errors.Is(err, models.ErrPasswordResetTokenUsed),
		errors.Is(err, services.ErrWrongPassword),
		errors.Is(err, services.ErrSelfDelete),
		errors.Is(err, services.ErrJabatanRequired),
		errors.Is(err, services.ErrInvalidJabatan),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrCodesRequired),
		errors.Is(err, services.ErrUnknownKlasifikasi),
		errors.Is(err, services.ErrUnknownBidang),
		errors.Is(err, services.ErrUnknownPenandatangan),
		errors.Is(err, services.ErrInvalidJenis),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrInvalidSifat),
		errors.Is(err, services.ErrInvalidReportQuery):
		return utils.BadRequest(c, err.Error(), nil)

	case errors.Is(err, storage.ErrNotConfigured):
		return utils.JSONError(c, fiber.StatusServiceUnavailable, err.Error(), nil)
	}

	return utils.InternalServerError(c, fallback, err)
}

func paramID(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

func currentActor(c *fiber.Ctx) (services.Actor, error) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return services.Actor{}, services.ErrUnauthorized
	}
	return actor, nil
}
