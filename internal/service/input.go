package service

import (
	"strconv"
	"strings"

	"github.com/farbodforooghi-ux/istanbul-gasht-backend/pkg/e"
	"github.com/farbodforooghi-ux/istanbul-gasht-backend/pkg/validator"

	"github.com/shopspring/decimal"
)

// ProductInput carries raw form values. The service parses and validates
// them itself regardless of any upstream checks.
type ProductInput struct {
	Name        string `validate:"required"`
	Price       string `validate:"required"`
	Category    string `validate:"required"`
	Stock       string `validate:"required"`
	Description string
}

// ProfileInput carries raw form values for the admin profile.
type ProfileInput struct {
	Name  string `validate:"required"`
	Email string `validate:"required"`
}

// productFields is ProductInput after parsing, with numeric types in place.
type productFields struct {
	name        string
	price       decimal.Decimal
	category    string
	stock       int
	description string
}

func parseProductInput(input ProductInput) (*productFields, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Price = strings.TrimSpace(input.Price)
	input.Category = strings.TrimSpace(input.Category)
	input.Stock = strings.TrimSpace(input.Stock)
	input.Description = strings.TrimSpace(input.Description)

	if errs := validator.ValidateStruct(input); len(errs) > 0 {
		return nil, e.NewValidation(errs[0].FailedField, "is required")
	}

	price, err := decimal.NewFromString(input.Price)
	if err != nil {
		return nil, e.NewValidation("Price", "must be a valid number")
	}
	if price.IsNegative() {
		return nil, e.NewValidation("Price", "must not be negative")
	}

	stock, err := strconv.Atoi(input.Stock)
	if err != nil {
		return nil, e.NewValidation("Stock", "must be a valid integer")
	}
	if stock < 0 {
		return nil, e.NewValidation("Stock", "must not be negative")
	}

	return &productFields{
		name:        input.Name,
		price:       price,
		category:    input.Category,
		stock:       stock,
		description: input.Description,
	}, nil
}

func parseProfileInput(input ProfileInput) (ProfileInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)

	if errs := validator.ValidateStruct(input); len(errs) > 0 {
		return input, e.NewValidation(errs[0].FailedField, "is required")
	}
	return input, nil
}
