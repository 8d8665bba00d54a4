package handler

import (
	"github.com/farbodforooghi-ux/istanbul-gasht-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	service service.ProfileService
}

func NewProfileHandler(s service.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: s}
}

func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	admin, err := h.service.GetProfile()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(admin)
}

func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	input := service.ProfileInput{
		Name:  c.FormValue("name"),
		Email: c.FormValue("email"),
	}

	avatar, err := readUpload(c, "avatar")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Could not read uploaded avatar"})
	}

	result, err := h.service.UpdateProfile(c.Context(), input, avatar)
	if err != nil {
		return respondError(c, err)
	}

	resp := fiber.Map{"profile": result.Admin}
	if msg := warningMessage(result.AssetWarning); msg != "" {
		resp["warning"] = msg
	}
	return c.JSON(resp)
}
