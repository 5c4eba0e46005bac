package controllers

import (
	"crm-service/models"
	"crm-service/services"

	"github.com/gofiber/fiber/v2"
)

// OrderController handles HTTP requests related to orders.
type OrderController struct {
	orderService services.IOrderService
}

// NewOrderController creates a new OrderController instance.
func NewOrderController(svc services.IOrderService) *OrderController {
	return &OrderController{orderService: svc}
}

// CreateOrder handles POST /orders.
func (c *OrderController) CreateOrder(ctx *fiber.Ctx) error {
	var input models.OrderInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body format"})
	}

	result := c.orderService.CreateOrder(input)
	if !result.Success {
		return ctx.Status(statusForFailure(result.Message)).JSON(result)
	}
	return ctx.Status(fiber.StatusCreated).JSON(result)
}

// GetOrder handles GET /orders/:id.
func (c *OrderController) GetOrder(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid order id"})
	}
	order, err := c.orderService.GetOrder(id)
	if err != nil {
		return notFoundOrInternal(ctx, "Order", err)
	}
	return ctx.JSON(order)
}

// ListOrders handles GET /orders with optional filters.
func (c *OrderController) ListOrders(ctx *fiber.Ctx) error {
	var f models.OrderFilter
	var err error

	if f.TotalAmountGte, err = decimalQuery(ctx, "total_amount_gte"); err != nil {
		return invalidQuery(ctx, "total_amount_gte")
	}
	if f.TotalAmountLte, err = decimalQuery(ctx, "total_amount_lte"); err != nil {
		return invalidQuery(ctx, "total_amount_lte")
	}
	if f.OrderDateGte, err = timeQuery(ctx, "order_date_gte"); err != nil {
		return invalidQuery(ctx, "order_date_gte")
	}
	if f.OrderDateLte, err = timeQuery(ctx, "order_date_lte"); err != nil {
		return invalidQuery(ctx, "order_date_lte")
	}
	if f.ProductID, err = uintQuery(ctx, "product_id"); err != nil {
		return invalidQuery(ctx, "product_id")
	}
	f.CustomerName = ctx.Query("customer_name")
	f.CustomerEmail = ctx.Query("customer_email")
	f.ProductName = ctx.Query("product_name")

	orders, err := c.orderService.ListOrders(f)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(orders)
}
