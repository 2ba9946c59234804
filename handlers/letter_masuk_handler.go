package handlers

import (
	"esuka/dto"
	"esuka/dto/letters"
	"esuka/models"
	"esuka/services"
	"esuka/utils"

	"github.com/gofiber/fiber/v2"
)

type LetterMasukHandler struct {
	surat     *services.SuratService
	disposisi *services.DisposisiService
	archive   *services.ArchiveService
}

func NewLetterMasukHandler(surat *services.SuratService, disposisi *services.DisposisiService, archive *services.ArchiveService) *LetterMasukHandler {
	return &LetterMasukHandler{surat: surat, disposisi: disposisi, archive: archive}
}

// CreateSuratMasuk records an incoming letter, optionally with an attachment
// in the multipart "file" field.
func (h *LetterMasukHandler) CreateSuratMasuk(c *fiber.Ctx) error {
	var req letters.SuratMasukRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body", err.Error())
	}
	if errMap := req.Validate(); len(errMap) > 0 {
		return utils.BadRequest(c, "Validasi gagal", errMap)
	}

	surat, err := h.surat.CreateMasuk(c.UserContext(), req.ToInput(), optionalFile(c))
	if err != nil {
		return respondError(c, err, "Gagal mencatat surat masuk")
	}
	return utils.Created(c, "Surat masuk berhasil dicatat", letters.NewSuratMasukResponse(surat))
}

func (h *LetterMasukHandler) UpdateSuratMasuk(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return utils.BadRequest(c, "invalid id", nil)
	}

	var req letters.SuratMasukRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body", err.Error())
	}
	if errMap := req.Validate(); len(errMap) > 0 {
		return utils.BadRequest(c, "Validasi gagal", errMap)
	}

	surat, err := h.surat.UpdateMasuk(c.UserContext(), id, req.ToInput(), optionalFile(c))
	if err != nil {
		return respondError(c, err, "Gagal memperbarui surat masuk")
	}
	return utils.OK(c, "Surat masuk berhasil diperbarui", letters.NewSuratMasukResponse(surat))
}

// ListSuratMasuk returns active letters, newest tanggal_diterima first.
func (h *LetterMasukHandler) ListSuratMasuk(c *fiber.Ctx) error {
	var req letters.ListRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.BadRequest(c, "invalid query", err.Error())
	}

	q := req.ToQuery()
	list, total, err := h.surat.ListMasuk(c.UserContext(), q)
	if err != nil {
		return respondError(c, err, "Gagal mengambil surat masuk")
	}

	page, limit := services.NormalizePage(q.Page, q.Limit)
	return utils.Paginated(c, "List surat masuk berhasil diambil", letters.NewSuratMasukResponses(list), utils.NewPaginationMeta(page, limit, total))
}

func (h *LetterMasukHandler) GetSuratMasuk(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return utils.BadRequest(c, "invalid id", nil)
	}

	surat, err := h.surat.GetMasuk(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "Gagal mengambil surat masuk")
	}
	return utils.OK(c, "Detail surat masuk", letters.NewSuratMasukResponse(surat))
}

func (h *LetterMasukHandler) ArchiveSuratMasuk(c *fiber.Ctx) error {
	return setArchived(c, h.archive, models.LetterMasuk, true)
}

func (h *LetterMasukHandler) UnarchiveSuratMasuk(c *fiber.Ctx) error {
	return setArchived(c, h.archive, models.LetterMasuk, false)
}

func (h *LetterMasukHandler) DeleteSuratMasuk(c *fiber.Ctx) error {
	return deleteArchived(c, h.archive, models.LetterMasuk)
}

// DisposeSuratMasuk opens the disposisi of a letter, routed to the root jabatan.
func (h *LetterMasukHandler) DisposeSuratMasuk(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return respondError(c, err, "")
	}
	id, ok := paramID(c)
	if !ok {
		return utils.BadRequest(c, "invalid id", nil)
	}

	var req dto.CreateDisposisiRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return utils.BadRequest(c, "invalid request body", err.Error())
		}
	}
	if errMap := req.Validate(); len(errMap) > 0 {
		return utils.BadRequest(c, "Validasi gagal", errMap)
	}

	d, err := h.disposisi.Create(c.UserContext(), actor, id, req.Catatan)
	if err != nil {
		return respondError(c, err, "Gagal membuat disposisi")
	}
	return utils.Created(c, "Disposisi berhasil dibuat", dto.NewDisposisiResponse(d))
}
