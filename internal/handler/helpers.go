package handler

import (
	"errors"
	"io"
	"path/filepath"

	"github.com/farbodforooghi-ux/istanbul-gasht-backend/pkg/assets"
	"github.com/farbodforooghi-ux/istanbul-gasht-backend/pkg/e"

	"github.com/gofiber/fiber/v2"
)

// readUpload pulls an optional multipart file out of the request. A missing
// file is not an error; it just means "no new image".
func readUpload(c *fiber.Ctx, field string) (*assets.Upload, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return &assets.Upload{
		Data: data,
		Ext:  filepath.Ext(fileHeader.Filename),
	}, nil
}

// respondError maps the service error taxonomy onto HTTP statuses.
func respondError(c *fiber.Ctx, err error) error {
	var vErr *e.ValidationError
	if errors.As(err, &vErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": vErr.Error(),
			"field": vErr.Field,
		})
	}

	if errors.Is(err, e.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Something went wrong"})
}

// warningMessage extracts a user-facing warning string, or "" when there
// is nothing to warn about.
func warningMessage(warn error) string {
	if warn == nil {
		return ""
	}
	return "There was a problem saving the image, so the entry was saved without it."
}
