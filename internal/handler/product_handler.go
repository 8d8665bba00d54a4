package handler

import (
	"github.com/farbodforooghi-ux/istanbul-gasht-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProductHandler struct {
	service service.CatalogService
}

func NewProductHandler(s service.CatalogService) *ProductHandler {
	return &ProductHandler{service: s}
}

func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.ListProducts()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	input := service.ProductInput{
		Name:        c.FormValue("name"),
		Price:       c.FormValue("price"),
		Category:    c.FormValue("category"),
		Stock:       c.FormValue("stock"),
		Description: c.FormValue("description"),
	}

	image, err := readUpload(c, "image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Could not read uploaded image"})
	}

	result, err := h.service.CreateProduct(c.Context(), input, image)
	if err != nil {
		return respondError(c, err)
	}

	resp := fiber.Map{"product": result.Product}
	if msg := warningMessage(result.AssetWarning); msg != "" {
		resp["warning"] = msg
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product id"})
	}

	input := service.ProductInput{
		Name:        c.FormValue("name"),
		Price:       c.FormValue("price"),
		Category:    c.FormValue("category"),
		Stock:       c.FormValue("stock"),
		Description: c.FormValue("description"),
	}

	image, err := readUpload(c, "image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Could not read uploaded image"})
	}

	result, err := h.service.UpdateProduct(c.Context(), id, input, image)
	if err != nil {
		return respondError(c, err)
	}

	resp := fiber.Map{"product": result.Product}
	if msg := warningMessage(result.AssetWarning); msg != "" {
		resp["warning"] = msg
	}
	return c.JSON(resp)
}

func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product id"})
	}

	if err := h.service.DeleteProduct(c.Context(), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}
