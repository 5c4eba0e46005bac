package controllers

import (
	"crm-service/models"
	"crm-service/services"

	"github.com/gofiber/fiber/v2"
)

// ProductController handles HTTP requests related to products.
type ProductController struct {
	productService services.IProductService
}

// NewProductController creates a new ProductController instance.
func NewProductController(svc services.IProductService) *ProductController {
	return &ProductController{productService: svc}
}

// CreateProduct handles POST /products.
func (c *ProductController) CreateProduct(ctx *fiber.Ctx) error {
	var input models.ProductInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body format"})
	}

	result := c.productService.CreateProduct(input)
	if !result.Success {
		return ctx.Status(statusForFailure(result.Message)).JSON(result)
	}
	return ctx.Status(fiber.StatusCreated).JSON(result)
}

// GetProduct handles GET /products/:id.
func (c *ProductController) GetProduct(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product id"})
	}
	product, err := c.productService.GetProduct(id)
	if err != nil {
		return notFoundOrInternal(ctx, "Product", err)
	}
	return ctx.JSON(product)
}

// ListProducts handles GET /products with optional filters.
func (c *ProductController) ListProducts(ctx *fiber.Ctx) error {
	var f models.ProductFilter
	var err error

	if f.PriceGte, err = decimalQuery(ctx, "price_gte"); err != nil {
		return invalidQuery(ctx, "price_gte")
	}
	if f.PriceLte, err = decimalQuery(ctx, "price_lte"); err != nil {
		return invalidQuery(ctx, "price_lte")
	}
	if f.StockGte, err = intQuery(ctx, "stock_gte"); err != nil {
		return invalidQuery(ctx, "stock_gte")
	}
	if f.StockLte, err = intQuery(ctx, "stock_lte"); err != nil {
		return invalidQuery(ctx, "stock_lte")
	}
	if f.LowStock, err = intQuery(ctx, "low_stock"); err != nil {
		return invalidQuery(ctx, "low_stock")
	}
	f.Name = ctx.Query("name")

	products, err := c.productService.ListProducts(f)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(products)
}
