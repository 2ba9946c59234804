package handlers

import (
	"strings"

	"esuka/dto"
	"esuka/models"
	"esuka/services"
	"esuka/utils"

	"github.com/gofiber/fiber/v2"
)

type DisposisiHandler struct {
	disposisi *services.DisposisiService
}

func NewDisposisiHandler(disposisi *services.DisposisiService) *DisposisiHandler {
	return &DisposisiHandler{disposisi: disposisi}
}

type disposisiListQuery struct {
	TujuanJabatan string `query:"tujuan_jabatan"`
	Mine          bool   `query:"mine"`
	Page          int    `query:"page"`
	Limit         int    `query:"limit"`
}

// ListDisposisi filters by tujuan_jabatan, or by the caller's own jabatan
// when mine=true.
func (h *DisposisiHandler) ListDisposisi(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return respondError(c, err, "")
	}

	var q disposisiListQuery
	if err := c.QueryParser(&q); err != nil {
		return utils.BadRequest(c, "invalid query", err.Error())
	}

	filter := services.DisposisiFilter{
		TujuanJabatan: models.Jabatan(strings.TrimSpace(q.TujuanJabatan)),
		Page:          q.Page,
		Limit:         q.Limit,
	}
	if q.Mine {
		if actor.Jabatan == "" {
			return utils.BadRequest(c, services.ErrJabatanRequired.Error(), nil)
		}
		filter.TujuanJabatan = actor.Jabatan
	}
	if filter.TujuanJabatan != "" && !filter.TujuanJabatan.IsValid() {
		return utils.BadRequest(c, "Validasi gagal", fiber.Map{"tujuan_jabatan": "tujuan_jabatan is not a known jabatan"})
	}

	list, total, err := h.disposisi.List(c.UserContext(), filter)
	if err != nil {
		return respondError(c, err, "Gagal mengambil disposisi")
	}

	page, limit := services.NormalizePage(filter.Page, filter.Limit)
	return utils.Paginated(c, "List disposisi", dto.NewDisposisiResponses(list), utils.NewPaginationMeta(page, limit, total))
}

func (h *DisposisiHandler) GetDisposisi(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return utils.BadRequest(c, "invalid id", nil)
	}

	d, err := h.disposisi.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "Gagal mengambil disposisi")
	}
	return utils.OK(c, "Detail disposisi", dto.NewDisposisiResponse(d))
}

// ForwardDisposisi appends one riwayat entry and moves the disposisi on.
func (h *DisposisiHandler) ForwardDisposisi(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return respondError(c, err, "")
	}
	id, ok := paramID(c)
	if !ok {
		return utils.BadRequest(c, "invalid id", nil)
	}

	var req dto.ForwardDisposisiRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body", err.Error())
	}
	if errMap := req.Validate(); len(errMap) > 0 {
		return utils.BadRequest(c, "Validasi gagal", errMap)
	}

	d, err := h.disposisi.Forward(c.UserContext(), actor, id, req.Target(), req.Catatan)
	if err != nil {
		return respondError(c, err, "Gagal meneruskan disposisi")
	}
	return utils.OK(c, "Disposisi berhasil diteruskan", dto.NewDisposisiResponse(d))
}

func (h *DisposisiHandler) Destinations(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return utils.BadRequest(c, "invalid id", nil)
	}

	out, err := h.disposisi.Destinations(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "Gagal mengambil tujuan disposisi")
	}
	return utils.OK(c, "Tujuan disposisi", out)
}
