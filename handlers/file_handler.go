package handlers

import (
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
)

const fileField = "file"

// optionalFile returns the multipart "file" field, or nil when the request
// carries none (including plain JSON bodies). Size and type checks are the
// storage rule's job.
func optionalFile(c *fiber.Ctx) *multipart.FileHeader {
	fileHeader, err := c.FormFile(fileField)
	if err != nil {
		return nil
	}
	return fileHeader
}
