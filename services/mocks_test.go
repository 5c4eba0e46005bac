package services_test

import (
	"crm-service/models"

	"github.com/stretchr/testify/mock"
)

// MockCrmRepository is a mock implementation of repository.ICrmRepository.
type MockCrmRepository struct {
	mock.Mock
}

func (m *MockCrmRepository) GetCustomerByID(id uint) (*models.Customer, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCrmRepository) CustomerEmailExists(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

func (m *MockCrmRepository) CreateCustomer(customer *models.Customer) error {
	args := m.Called(customer)
	return args.Error(0)
}

func (m *MockCrmRepository) FilterCustomers(f models.CustomerFilter) ([]models.Customer, error) {
	args := m.Called(f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Customer), args.Error(1)
}

func (m *MockCrmRepository) GetProductByID(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockCrmRepository) FilterProductsByIDs(ids []uint) ([]models.Product, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockCrmRepository) CreateProduct(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockCrmRepository) FilterProducts(f models.ProductFilter) ([]models.Product, error) {
	args := m.Called(f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockCrmRepository) GetOrderByID(id uint) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockCrmRepository) CreateOrder(order *models.Order, productIDs []uint) error {
	args := m.Called(order, productIDs)
	return args.Error(0)
}

func (m *MockCrmRepository) FilterOrders(f models.OrderFilter) ([]models.Order, error) {
	args := m.Called(f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

// MockKafkaService is a mock implementation of services.IKafkaService.
type MockKafkaService struct {
	mock.Mock
}

func (m *MockKafkaService) PushMessage(topic string, message []byte) error {
	args := m.Called(topic, message)
	return args.Error(0)
}
