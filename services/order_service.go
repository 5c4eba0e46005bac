package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"crm-service/models"
	"crm-service/repository"
	"crm-service/validators"

	"gorm.io/gorm"
)

// IOrderService defines the interface for order-related business logic.
type IOrderService interface {
	CreateOrder(input models.OrderInput) *models.OrderResult
	GetOrder(id uint) (*models.OrderResponse, error)
	ListOrders(f models.OrderFilter) ([]models.OrderResponse, error)
}

// OrderService implements IOrderService.
type OrderService struct {
	repo         repository.ICrmRepository
	kafkaService IKafkaService // optional; events are skipped when nil
	kafkaTopic   string
}

// NewOrderService creates a new OrderService instance.
func NewOrderService(repo repository.ICrmRepository, kafkaSvc IKafkaService, topic string) IOrderService {
	return &OrderService{
		repo:         repo,
		kafkaService: kafkaSvc,
		kafkaTopic:   topic,
	}
}

// CreateOrder runs the order workflow: resolve the customer, resolve the
// deduplicated product set, aggregate every validation failure, and only
// then commit the order, its associations and its total as one atomic
// unit. A failed validation performs no writes, so repeating an invalid
// request yields the same error set every time.
func (s *OrderService) CreateOrder(input models.OrderInput) *models.OrderResult {
	var errs []string

	customer, err := s.repo.GetCustomerByID(input.CustomerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			errs = append(errs, fmt.Sprintf("Customer with ID %d does not exist", input.CustomerID))
		} else {
			return orderFailure("Error creating order", err)
		}
	}

	ids := validators.DedupIDs(input.ProductIDs)
	if len(ids) == 0 {
		errs = append(errs, "At least one product must be specified")
	} else {
		products, err := s.repo.FilterProductsByIDs(ids)
		if err != nil {
			return orderFailure("Error creating order", err)
		}
		found := make([]uint, 0, len(products))
		for _, p := range products {
			found = append(found, p.ID)
		}
		if missing := validators.MissingIDs(ids, found); len(missing) > 0 {
			errs = append(errs, fmt.Sprintf("Products with IDs %v do not exist", missing))
		}
	}

	if len(errs) > 0 {
		return &models.OrderResult{
			Order:   nil,
			Success: false,
			Message: models.MsgValidationFailed,
			Errors:  errs,
		}
	}

	order := &models.Order{
		CustomerID: customer.ID,
		OrderDate:  time.Now(),
		Notes:      input.Notes,
	}
	if err := s.repo.CreateOrder(order, ids); err != nil {
		return orderFailure("Error creating order", err)
	}
	order.Customer = *customer

	s.publishOrderCreated(order)

	return &models.OrderResult{
		Order:   models.NewOrderResponse(order),
		Success: true,
		Message: "Order created successfully",
		Errors:  []string{},
	}
}

// publishOrderCreated pushes the committed order to Kafka. The order is
// already durable at this point, so a publish failure is logged, never
// surfaced to the caller.
func (s *OrderService) publishOrderCreated(order *models.Order) {
	if s.kafkaService == nil {
		return
	}
	payload, err := json.Marshal(models.NewOrderResponse(order))
	if err != nil {
		slog.Error("failed to marshal order event", "order_id", order.ID, "error", err)
		return
	}
	if err := s.kafkaService.PushMessage(s.kafkaTopic, payload); err != nil {
		slog.Error("failed to publish order event", "order_id", order.ID, "error", err)
	}
}

// GetOrder returns a single order with its customer and products.
func (s *OrderService) GetOrder(id uint) (*models.OrderResponse, error) {
	order, err := s.repo.GetOrderByID(id)
	if err != nil {
		return nil, err
	}
	return models.NewOrderResponse(order), nil
}

// ListOrders returns the orders matching the filter, newest first.
func (s *OrderService) ListOrders(f models.OrderFilter) ([]models.OrderResponse, error) {
	orders, err := s.repo.FilterOrders(f)
	if err != nil {
		return nil, err
	}
	out := make([]models.OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, *models.NewOrderResponse(&orders[i]))
	}
	return out, nil
}

func orderFailure(message string, err error) *models.OrderResult {
	return &models.OrderResult{
		Order:   nil,
		Success: false,
		Message: fmt.Sprintf("%s: %v", message, err),
		Errors:  []string{err.Error()},
	}
}
