package handlers

import (
	"strings"

	"esuka/models"
	"esuka/services"
	"esuka/utils"

	"github.com/gofiber/fiber/v2"
)

type ArchiveHandler struct {
	archive *services.ArchiveService
}

func NewArchiveHandler(archive *services.ArchiveService) *ArchiveHandler {
	return &ArchiveHandler{archive: archive}
}

// Gallery lists archived letters of one jenis, or both when jenis is omitted.
func (h *ArchiveHandler) Gallery(c *fiber.Ctx) error {
	jenis := models.LetterType(strings.ToLower(strings.TrimSpace(c.Query("jenis"))))
	items, err := h.archive.Gallery(c.UserContext(), jenis)
	if err != nil {
		return respondError(c, err, "Gagal mengambil arsip")
	}
	return utils.OK(c, "Arsip surat", items)
}

func (h *ArchiveHandler) Delete(c *fiber.Ctx) error {
	return deleteArchived(c, h.archive, models.LetterType(strings.ToLower(c.Params("jenis"))))
}

func setArchived(c *fiber.Ctx, archive *services.ArchiveService, jenis models.LetterType, archived bool) error {
	id, ok := paramID(c)
	if !ok {
		return utils.BadRequest(c, "invalid id", nil)
	}

	if err := archive.SetArchived(c.UserContext(), jenis, id, archived); err != nil {
		return respondError(c, err, "Gagal memperbarui status arsip")
	}

	message := "Surat berhasil diarsipkan"
	if !archived {
		message = "Surat dikembalikan dari arsip"
	}
	return utils.OK(c, message, fiber.Map{"id": id, "jenis": jenis, "is_archived": archived})
}

func deleteArchived(c *fiber.Ctx, archive *services.ArchiveService, jenis models.LetterType) error {
	id, ok := paramID(c)
	if !ok {
		return utils.BadRequest(c, "invalid id", nil)
	}

	if err := archive.DeleteArchived(c.UserContext(), jenis, id); err != nil {
		return respondError(c, err, "Gagal menghapus surat")
	}
	return utils.OK(c, "Surat berhasil dihapus", nil)
}
