package handlers

import (
	"esuka/dto/letters"
	"esuka/models"
	"esuka/services"
	"esuka/utils"

	"github.com/gofiber/fiber/v2"
)

type LetterKeluarHandler struct {
	surat   *services.SuratService
	nomor   *services.NomorSuratService
	archive *services.ArchiveService
}

func NewLetterKeluarHandler(surat *services.SuratService, nomor *services.NomorSuratService, archive *services.ArchiveService) *LetterKeluarHandler {
	return &LetterKeluarHandler{surat: surat, nomor: nomor, archive: archive}
}

// GenerateNomor previews the next nomor surat for a klasifikasi and bidang.
// Nothing is reserved; the number is only kept when the letter is saved.
func (h *LetterKeluarHandler) GenerateNomor(c *fiber.Ctx) error {
	var q letters.NomorQuery
	if err := c.QueryParser(&q); err != nil {
		return utils.BadRequest(c, "invalid query", err.Error())
	}
	if errMap := q.Validate(); len(errMap) > 0 {
		return utils.BadRequest(c, services.ErrCodesRequired.Error(), errMap)
	}

	preview, err := h.nomor.Generate(c.UserContext(), q.Klasifikasi, q.Bidang)
	if err != nil {
		return respondError(c, err, "Gagal membuat nomor surat")
	}
	return utils.OK(c, "Nomor surat berhasil dibuat", preview)
}

func (h *LetterKeluarHandler) CreateSuratKeluar(c *fiber.Ctx) error {
	var req letters.SuratKeluarRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body", err.Error())
	}
	if errMap := req.Validate(); len(errMap) > 0 {
		return utils.BadRequest(c, "Validasi gagal", errMap)
	}

	surat, err := h.surat.CreateKeluar(c.UserContext(), req.ToInput(), optionalFile(c))
	if err != nil {
		return respondError(c, err, "Gagal mencatat surat keluar")
	}
	return utils.Created(c, "Surat keluar berhasil dicatat", letters.NewSuratKeluarResponse(surat))
}

func (h *LetterKeluarHandler) UpdateSuratKeluar(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return utils.BadRequest(c, "invalid id", nil)
	}

	var req letters.SuratKeluarRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body", err.Error())
	}
	if errMap := req.Validate(); len(errMap) > 0 {
		return utils.BadRequest(c, "Validasi gagal", errMap)
	}

	surat, err := h.surat.UpdateKeluar(c.UserContext(), id, req.ToInput(), optionalFile(c))
	if err != nil {
		return respondError(c, err, "Gagal memperbarui surat keluar")
	}
	return utils.OK(c, "Surat keluar berhasil diperbarui", letters.NewSuratKeluarResponse(surat))
}

func (h *LetterKeluarHandler) ListSuratKeluar(c *fiber.Ctx) error {
	var req letters.ListRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.BadRequest(c, "invalid query", err.Error())
	}

	q := req.ToQuery()
	list, total, err := h.surat.ListKeluar(c.UserContext(), q)
	if err != nil {
		return respondError(c, err, "Gagal mengambil surat keluar")
	}

	page, limit := services.NormalizePage(q.Page, q.Limit)
	return utils.Paginated(c, "List surat keluar berhasil diambil", letters.NewSuratKeluarResponses(list), utils.NewPaginationMeta(page, limit, total))
}

func (h *LetterKeluarHandler) GetSuratKeluar(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return utils.BadRequest(c, "invalid id", nil)
	}

	surat, err := h.surat.GetKeluar(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "Gagal mengambil surat keluar")
	}
	return utils.OK(c, "Detail surat keluar", letters.NewSuratKeluarResponse(surat))
}

func (h *LetterKeluarHandler) ArchiveSuratKeluar(c *fiber.Ctx) error {
	return setArchived(c, h.archive, models.LetterKeluar, true)
}

func (h *LetterKeluarHandler) UnarchiveSuratKeluar(c *fiber.Ctx) error {
	return setArchived(c, h.archive, models.LetterKeluar, false)
}

func (h *LetterKeluarHandler) DeleteSuratKeluar(c *fiber.Ctx) error {
	return deleteArchived(c, h.archive, models.LetterKeluar)
}
