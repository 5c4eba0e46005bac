package controllers

import (
	"crm-service/models"
	"crm-service/services"

	"github.com/gofiber/fiber/v2"
)

// CustomerController handles HTTP requests related to customers.
type CustomerController struct {
	customerService services.ICustomerService
}

// NewCustomerController creates a new CustomerController instance.
func NewCustomerController(svc services.ICustomerService) *CustomerController {
	return &CustomerController{customerService: svc}
}

// CreateCustomer handles POST /customers.
func (c *CustomerController) CreateCustomer(ctx *fiber.Ctx) error {
	var input models.CustomerInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body format"})
	}

	result := c.customerService.CreateCustomer(input)
	if !result.Success {
		return ctx.Status(statusForFailure(result.Message)).JSON(result)
	}
	return ctx.Status(fiber.StatusCreated).JSON(result)
}

// BulkCreateCustomers handles POST /customers/bulk. The response always
// carries HTTP 200: partial success is a normal outcome, reported per item.
func (c *CustomerController) BulkCreateCustomers(ctx *fiber.Ctx) error {
	var request struct {
		Customers []models.CustomerInput `json:"customers"`
	}
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body format"})
	}

	result := c.customerService.BulkCreateCustomers(request.Customers)
	return ctx.JSON(result)
}

// GetCustomer handles GET /customers/:id.
func (c *CustomerController) GetCustomer(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid customer id"})
	}
	customer, err := c.customerService.GetCustomer(id)
	if err != nil {
		return notFoundOrInternal(ctx, "Customer", err)
	}
	return ctx.JSON(customer)
}

// ListCustomers handles GET /customers with optional filters.
func (c *CustomerController) ListCustomers(ctx *fiber.Ctx) error {
	var f models.CustomerFilter
	var err error

	if f.CreatedAtGte, err = timeQuery(ctx, "created_at_gte"); err != nil {
		return invalidQuery(ctx, "created_at_gte")
	}
	if f.CreatedAtLte, err = timeQuery(ctx, "created_at_lte"); err != nil {
		return invalidQuery(ctx, "created_at_lte")
	}
	f.Name = ctx.Query("name")
	f.Email = ctx.Query("email")
	f.PhonePattern = ctx.Query("phone_pattern")

	customers, err := c.customerService.ListCustomers(f)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(customers)
}
