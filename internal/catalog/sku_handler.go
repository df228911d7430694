package catalog

import (
	"warehouse-backend/internal/apperr"
	"warehouse-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CreateSKURequest struct {
	SKUCode     string  `json:"sku_code"`
	ProductName string  `json:"product_name"`
	Category    string  `json:"category"`
	MRP         float64 `json:"mrp"`
	SalePrice   float64 `json:"sale_price"`
	GSTPercent  float64 `json:"gst_percent"`
	IsActive    *bool   `json:"is_active"`
}

// POST /api/v1/skus
func CreateSKUHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateSKURequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		sku := models.SKU{
			SKUCode:     body.SKUCode,
			ProductName: body.ProductName,
			Category:    body.Category,
			MRP:         body.MRP,
			SalePrice:   body.SalePrice,
			GSTPercent:  body.GSTPercent,
			IsActive:    true,
		}
		if body.IsActive != nil {
			sku.IsActive = *body.IsActive
		}

		if err := CreateSKU(db, &sku); err != nil {
			return apperr.AsFiber(err)
		}
		return c.Status(fiber.StatusCreated).JSON(sku)
	}
}

// GET /api/v1/skus
func ListSKUsHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		skus, err := ListSKUs(db)
		if err != nil {
			return apperr.AsFiber(err)
		}
		return c.JSON(skus)
	}
}

// GET /api/v1/skus/:id
func GetSKUHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid SKU id")
		}

		sku, err := GetSKUByID(db, uint(id))
		if err != nil {
			return apperr.AsFiber(err)
		}
		return c.JSON(sku)
	}
}

// PUT /api/v1/skus/:id
func UpdateSKUHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid SKU id")
		}

		var patch SKUPatch
		if err := c.BodyParser(&patch); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		sku, err := UpdateSKU(db, uint(id), patch)
		if err != nil {
			return apperr.AsFiber(err)
		}
		return c.JSON(sku)
	}
}

// DELETE /api/v1/skus/:id
func DeleteSKUHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid SKU id")
		}

		if err := DeleteSKU(db, uint(id)); err != nil {
			return apperr.AsFiber(err)
		}
		return c.JSON(fiber.Map{"message": "SKU deleted successfully"})
	}
}
