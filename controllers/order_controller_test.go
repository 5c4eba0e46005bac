package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"crm-service/controllers"
	"crm-service/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockOrderService is a mock implementation of services.IOrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateOrder(input models.OrderInput) *models.OrderResult {
	args := m.Called(input)
	return args.Get(0).(*models.OrderResult)
}

func (m *MockOrderService) GetOrder(id uint) (*models.OrderResponse, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OrderResponse), args.Error(1)
}

func (m *MockOrderService) ListOrders(f models.OrderFilter) ([]models.OrderResponse, error) {
	args := m.Called(f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.OrderResponse), args.Error(1)
}

func newOrderApp(svc *MockOrderService) *fiber.App {
	ctrl := controllers.NewOrderController(svc)
	app := fiber.New()
	app.Post("/orders", ctrl.CreateOrder)
	app.Get("/orders", ctrl.ListOrders)
	app.Get("/orders/:id", ctrl.GetOrder)
	return app
}

func TestOrderController_CreateOrder_Success(t *testing.T) {
	mockSvc := new(MockOrderService)

	expected := &models.OrderResult{
		Order: &models.OrderResponse{
			ID:          1,
			Customer:    models.CustomerResponse{ID: 1, Name: "Alice Johnson", Email: "alice@example.com"},
			Products:    []models.ProductResponse{{ID: 10}, {ID: 11}},
			TotalAmount: decimal.RequireFromString("1025.49"),
		},
		Success: true,
		Message: "Order created successfully",
		Errors:  []string{},
	}
	mockSvc.On("CreateOrder", models.OrderInput{CustomerID: 1, ProductIDs: []uint{10, 11}}).
		Return(expected)

	app := newOrderApp(mockSvc)
	payload, _ := json.Marshal(models.OrderInput{CustomerID: 1, ProductIDs: []uint{10, 11}})
	req := httptest.NewRequest("POST", "/orders", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var result models.OrderResult
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.True(t, result.Success)
	assert.Equal(t, uint(1), result.Order.ID)
	assert.True(t, result.Order.TotalAmount.Equal(decimal.RequireFromString("1025.49")))
	assert.Len(t, result.Order.Products, 2)

	mockSvc.AssertExpectations(t)
}

func TestOrderController_CreateOrder_ValidationFailure(t *testing.T) {
	mockSvc := new(MockOrderService)

	mockSvc.On("CreateOrder", mock.AnythingOfType("models.OrderInput")).Return(&models.OrderResult{
		Success: false,
		Message: models.MsgValidationFailed,
		Errors:  []string{"Customer with ID 999 does not exist"},
	})

	app := newOrderApp(mockSvc)
	payload, _ := json.Marshal(models.OrderInput{CustomerID: 999, ProductIDs: []uint{10}})
	req := httptest.NewRequest("POST", "/orders", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var result models.OrderResult
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.False(t, result.Success)
	assert.Equal(t, []string{"Customer with ID 999 does not exist"}, result.Errors)
}

func TestOrderController_CreateOrder_StorageFailure(t *testing.T) {
	mockSvc := new(MockOrderService)

	mockSvc.On("CreateOrder", mock.AnythingOfType("models.OrderInput")).Return(&models.OrderResult{
		Success: false,
		Message: "Error creating order: database write error",
		Errors:  []string{"database write error"},
	})

	app := newOrderApp(mockSvc)
	payload, _ := json.Marshal(models.OrderInput{CustomerID: 1, ProductIDs: []uint{10}})
	req := httptest.NewRequest("POST", "/orders", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestOrderController_CreateOrder_InvalidBody(t *testing.T) {
	mockSvc := new(MockOrderService)
	app := newOrderApp(mockSvc)

	req := httptest.NewRequest("POST", "/orders", bytes.NewReader([]byte("{invalid json}")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	mockSvc.AssertNotCalled(t, "CreateOrder")
}

func TestOrderController_GetOrder_NotFound(t *testing.T) {
	mockSvc := new(MockOrderService)
	mockSvc.On("GetOrder", uint(42)).Return(nil, gorm.ErrRecordNotFound)

	app := newOrderApp(mockSvc)
	req := httptest.NewRequest("GET", "/orders/42", nil)

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestOrderController_ListOrders_ParsesFilters(t *testing.T) {
	mockSvc := new(MockOrderService)

	mockSvc.On("ListOrders", mock.MatchedBy(func(f models.OrderFilter) bool {
		return f.TotalAmountGte != nil && f.TotalAmountGte.Equal(decimal.RequireFromString("100")) &&
			f.OrderDateGte != nil && f.CustomerName == "Alice"
	})).Return([]models.OrderResponse{}, nil)

	app := newOrderApp(mockSvc)
	req := httptest.NewRequest("GET", "/orders?total_amount_gte=100&order_date_gte=2026-08-01&customer_name=Alice", nil)

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestOrderController_ListOrders_BadFilter(t *testing.T) {
	mockSvc := new(MockOrderService)
	app := newOrderApp(mockSvc)

	req := httptest.NewRequest("GET", "/orders?total_amount_gte=abc", nil)

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	mockSvc.AssertNotCalled(t, "ListOrders")
}
