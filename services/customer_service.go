package services

import (
	"errors"
	"fmt"

	"crm-service/models"
	"crm-service/repository"
	"crm-service/validators"

	"gorm.io/gorm"
)

// ICustomerService defines the interface for customer business logic.
type ICustomerService interface {
	CreateCustomer(input models.CustomerInput) *models.CustomerResult
	BulkCreateCustomers(inputs []models.CustomerInput) *models.BulkCustomerResult
	GetCustomer(id uint) (*models.CustomerResponse, error)
	ListCustomers(f models.CustomerFilter) ([]models.CustomerResponse, error)
}

// CustomerService implements ICustomerService.
type CustomerService struct {
	repo repository.ICrmRepository
}

// NewCustomerService creates a new CustomerService instance.
func NewCustomerService(repo repository.ICrmRepository) ICustomerService {
	return &CustomerService{repo: repo}
}

// validateCustomerInput runs every customer rule against live store state
// and returns the full list of failures. Uniqueness is re-checked here on
// every call, never cached, since concurrent submissions can race on the
// same email.
func (s *CustomerService) validateCustomerInput(input models.CustomerInput) ([]string, error) {
	var errs []string
	if !validators.NameIsPresent(input.Name) {
		errs = append(errs, "Name is required")
	}
	if !validators.EmailLooksValid(input.Email) {
		errs = append(errs, "Please enter a valid email address")
	} else {
		exists, err := s.repo.CustomerEmailExists(input.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			errs = append(errs, "Email already exists")
		}
	}
	if !validators.PhoneIsValid(input.Phone) {
		errs = append(errs, "Invalid phone format. Use +1234567890 or 123-456-7890")
	}
	return errs, nil
}

// CreateCustomer validates the input, aggregating every failing rule, and
// creates the customer only when the failure list is empty. A duplicate
// key raced in by a concurrent submission is reported the same way as the
// uniqueness pre-check.
func (s *CustomerService) CreateCustomer(input models.CustomerInput) *models.CustomerResult {
	errs, err := s.validateCustomerInput(input)
	if err != nil {
		return customerFailure("Error creating customer", err)
	}
	if len(errs) > 0 {
		return &models.CustomerResult{
			Customer: nil,
			Success:  false,
			Message:  models.MsgValidationFailed,
			Errors:   errs,
		}
	}

	customer := &models.Customer{
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
	}
	if err := s.repo.CreateCustomer(customer); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &models.CustomerResult{
				Customer: nil,
				Success:  false,
				Message:  models.MsgValidationFailed,
				Errors:   []string{"Email already exists"},
			}
		}
		return customerFailure("Error creating customer", err)
	}

	return &models.CustomerResult{
		Customer: models.NewCustomerResponse(customer),
		Success:  true,
		Message:  "Customer created successfully",
		Errors:   []string{},
	}
}

// BulkCreateCustomers processes the inputs independently with
// partial-success semantics: each valid item is created immediately, each
// failing item appends a labeled error, and processing continues. There is
// no cross-item invariant, so nothing is rolled back.
func (s *CustomerService) BulkCreateCustomers(inputs []models.CustomerInput) *models.BulkCustomerResult {
	created := []models.CustomerResponse{}
	bulkErrs := []string{}

	for i, input := range inputs {
		errs, err := s.validateCustomerInput(input)
		if err != nil {
			bulkErrs = append(bulkErrs, fmt.Sprintf("Customer %d: %v", i+1, err))
			continue
		}
		if len(errs) > 0 {
			for _, e := range errs {
				bulkErrs = append(bulkErrs, fmt.Sprintf("Customer %d: %s", i+1, e))
			}
			continue
		}

		customer := &models.Customer{
			Name:  input.Name,
			Email: input.Email,
			Phone: input.Phone,
		}
		if err := s.repo.CreateCustomer(customer); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				bulkErrs = append(bulkErrs, fmt.Sprintf("Customer %d: Email %s already exists", i+1, input.Email))
			} else {
				bulkErrs = append(bulkErrs, fmt.Sprintf("Customer %d: %v", i+1, err))
			}
			continue
		}
		created = append(created, *models.NewCustomerResponse(customer))
	}

	return &models.BulkCustomerResult{
		Customers:    created,
		Errors:       bulkErrs,
		SuccessCount: len(created),
	}
}

// GetCustomer returns a single customer by ID.
func (s *CustomerService) GetCustomer(id uint) (*models.CustomerResponse, error) {
	customer, err := s.repo.GetCustomerByID(id)
	if err != nil {
		return nil, err
	}
	return models.NewCustomerResponse(customer), nil
}

// ListCustomers returns the customers matching the filter, newest first.
func (s *CustomerService) ListCustomers(f models.CustomerFilter) ([]models.CustomerResponse, error) {
	customers, err := s.repo.FilterCustomers(f)
	if err != nil {
		return nil, err
	}
	out := make([]models.CustomerResponse, 0, len(customers))
	for i := range customers {
		out = append(out, *models.NewCustomerResponse(&customers[i]))
	}
	return out, nil
}

func customerFailure(message string, err error) *models.CustomerResult {
	return &models.CustomerResult{
		Customer: nil,
		Success:  false,
		Message:  fmt.Sprintf("%s: %v", message, err),
		Errors:   []string{err.Error()},
	}
}
