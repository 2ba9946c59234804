package handlers

import (
	"esuka/dto"
	"esuka/models"
	"esuka/services"
	"esuka/utils"

	"github.com/gofiber/fiber/v2"
)

// ReferenceHandler serves bidang and klasifikasi surat lookups.
type ReferenceHandler struct {
	ref *services.ReferenceService
}

func NewReferenceHandler(ref *services.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{ref: ref}
}

func (h *ReferenceHandler) ListBidang(c *fiber.Ctx) error {
	list, err := h.ref.ListBidang(c.UserContext())
	if err != nil {
		return respondError(c, err, "Gagal mengambil bidang")
	}
	return utils.OK(c, "List bidang", list)
}

func (h *ReferenceHandler) CreateBidang(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return respondError(c, err, "")
	}

	var req dto.BidangRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body", err.Error())
	}
	if errMap := req.Validate(); len(errMap) > 0 {
		return utils.BadRequest(c, "Validasi gagal", errMap)
	}

	b, err := h.ref.CreateBidang(c.UserContext(), actor, req.Kode, req.Nama)
	if err != nil {
		return respondError(c, err, "Gagal menyimpan bidang")
	}
	return utils.Created(c, "Bidang berhasil ditambahkan", b)
}

func (h *ReferenceHandler) UpdateBidang(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return respondError(c, err, "")
	}
	id, ok := paramID(c)
	if !ok {
		return utils.BadRequest(c, "invalid id", nil)
	}

	var req dto.BidangRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body", err.Error())
	}
	if errMap := req.Validate(); len(errMap) > 0 {
		return utils.BadRequest(c, "Validasi gagal", errMap)
	}

	b, err := h.ref.UpdateBidang(c.UserContext(), actor, id, req.Kode, req.Nama)
	if err != nil {
		return respondError(c, err, "Gagal memperbarui bidang")
	}
	return utils.OK(c, "Bidang berhasil diperbarui", b)
}

func (h *ReferenceHandler) DeleteBidang(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return respondError(c, err, "")
	}
	id, ok := paramID(c)
	if !ok {
		return utils.BadRequest(c, "invalid id", nil)
	}

	if err := h.ref.DeleteBidang(c.UserContext(), actor, id); err != nil {
		return respondError(c, err, "Gagal menghapus bidang")
	}
	return utils.OK(c, "Bidang berhasil dihapus", nil)
}

func (h *ReferenceHandler) ListKlasifikasi(c *fiber.Ctx) error {
	list, err := h.ref.ListKlasifikasi(c.UserContext())
	if err != nil {
		return respondError(c, err, "Gagal mengambil klasifikasi")
	}
	return utils.OK(c, "List klasifikasi surat", list)
}

func (h *ReferenceHandler) CreateKlasifikasi(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return respondError(c, err, "")
	}

	var req dto.KlasifikasiRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body", err.Error())
	}
	if errMap := req.Validate(); len(errMap) > 0 {
		return utils.BadRequest(c, "Validasi gagal", errMap)
	}

	k, err := h.ref.CreateKlasifikasi(c.UserContext(), actor, req.Kode, req.Keterangan)
	if err != nil {
		return respondError(c, err, "Gagal menyimpan klasifikasi")
	}
	return utils.Created(c, "Klasifikasi berhasil ditambahkan", k)
}

func (h *ReferenceHandler) UpdateKlasifikasi(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return respondError(c, err, "")
	}
	id, ok := paramID(c)
	if !ok {
		return utils.BadRequest(c, "invalid id", nil)
	}

	var req dto.KlasifikasiRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body", err.Error())
	}
	if errMap := req.Validate(); len(errMap) > 0 {
		return utils.BadRequest(c, "Validasi gagal", errMap)
	}

	k, err := h.ref.UpdateKlasifikasi(c.UserContext(), actor, id, req.Kode, req.Keterangan)
	if err != nil {
		return respondError(c, err, "Gagal memperbarui klasifikasi")
	}
	return utils.OK(c, "Klasifikasi berhasil diperbarui", k)
}

func (h *ReferenceHandler) DeleteKlasifikasi(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return respondError(c, err, "")
	}
	id, ok := paramID(c)
	if !ok {
		return utils.BadRequest(c, "invalid id", nil)
	}

	if err := h.ref.DeleteKlasifikasi(c.UserContext(), actor, id); err != nil {
		return respondError(c, err, "Gagal menghapus klasifikasi")
	}
	return utils.OK(c, "Klasifikasi berhasil dihapus", nil)
}

// ListJabatan exposes the closed jabatan set for pickers.
func ListJabatan(c *fiber.Ctx) error {
	return utils.OK(c, "List jabatan", models.AllJabatan())
}
