package handlers

import (
	"strings"

	"esuka/dto"
	userdto "esuka/dto/users"
	"esuka/models"
	"esuka/services"
	"esuka/utils"

	"github.com/gofiber/fiber/v2"
)

type AdminUserHandler struct {
	users *services.UserAdminService
}

func NewAdminUserHandler(users *services.UserAdminService) *AdminUserHandler {
	return &AdminUserHandler{users: users}
}

// AdminListUsers supports ?page=&limit=&role=&q=.
func (h *AdminUserHandler) AdminListUsers(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return respondError(c, err, "")
	}

	var req userdto.UserListRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.BadRequest(c, "invalid query", err.Error())
	}
	if errMap := req.Validate(); len(errMap) > 0 {
		return utils.BadRequest(c, "Validasi gagal", errMap)
	}

	filter := req.ToFilter()
	users, total, err := h.users.List(c.UserContext(), actor, filter)
	if err != nil {
		return respondError(c, err, "failed to list users")
	}

	page, limit := services.NormalizePage(filter.Page, filter.Limit)
	return utils.Paginated(c, "users retrieved", dto.NewUserSummaries(users), utils.NewPaginationMeta(page, limit, total))
}

func (h *AdminUserHandler) AdminUpdateUser(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return respondError(c, err, "")
	}
	id, ok := paramID(c)
	if !ok {
		return utils.BadRequest(c, "invalid id", nil)
	}

	var req userdto.AdminUserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body", err.Error())
	}
	if errMap := req.Validate(); len(errMap) > 0 {
		return utils.BadRequest(c, "Validasi gagal", errMap)
	}

	user, err := h.users.Update(c.UserContext(), actor, id, req.ToInput())
	if err != nil {
		return respondError(c, err, "failed to update user")
	}
	return utils.OK(c, "user updated", dto.NewUserSummary(*user))
}

func (h *AdminUserHandler) AdminDeleteUser(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return respondError(c, err, "")
	}
	id, ok := paramID(c)
	if !ok {
		return utils.BadRequest(c, "invalid id", nil)
	}

	if err := h.users.Delete(c.UserContext(), actor, id); err != nil {
		return respondError(c, err, "failed to delete user")
	}
	return utils.OK(c, "user deleted", nil)
}

// UserOptions feeds the penandatangan and disposisi pickers. Any signed-in
// user may call it.
func (h *AdminUserHandler) UserOptions(c *fiber.Ctx) error {
	jabatan := models.Jabatan(strings.TrimSpace(c.Query("jabatan")))
	if jabatan != "" && !jabatan.IsValid() {
		return utils.BadRequest(c, services.ErrInvalidJabatan.Error(), nil)
	}

	options, err := h.users.Options(c.UserContext(), jabatan)
	if err != nil {
		return respondError(c, err, "failed to list users")
	}
	return utils.OK(c, "user options", options)
}
