package services

import (
	"fmt"

	"crm-service/models"
	"crm-service/repository"
	"crm-service/validators"
)

// IProductService defines the interface for product business logic.
type IProductService interface {
	CreateProduct(input models.ProductInput) *models.ProductResult
	GetProduct(id uint) (*models.ProductResponse, error)
	ListProducts(f models.ProductFilter) ([]models.ProductResponse, error)
}

// ProductService implements IProductService.
type ProductService struct {
	repo repository.ICrmRepository
}

// NewProductService creates a new ProductService instance.
func NewProductService(repo repository.ICrmRepository) IProductService {
	return &ProductService{repo: repo}
}

// CreateProduct validates the input, aggregating every failing rule, and
// creates the product only when the failure list is empty.
func (s *ProductService) CreateProduct(input models.ProductInput) *models.ProductResult {
	var errs []string
	if !validators.NameIsPresent(input.Name) {
		errs = append(errs, "Name is required")
	}
	if !validators.PriceIsValid(input.Price) {
		errs = append(errs, "Price must be positive")
	}
	if !validators.StockIsValid(input.Stock) {
		errs = append(errs, "Stock cannot be negative")
	}
	if len(errs) > 0 {
		return &models.ProductResult{
			Product: nil,
			Success: false,
			Message: models.MsgValidationFailed,
			Errors:  errs,
		}
	}

	stock := 0
	if input.Stock != nil {
		stock = *input.Stock
	}
	product := &models.Product{
		Name:        input.Name,
		Price:       input.Price,
		Stock:       stock,
		Description: input.Description,
	}
	if err := s.repo.CreateProduct(product); err != nil {
		return &models.ProductResult{
			Product: nil,
			Success: false,
			Message: fmt.Sprintf("Error creating product: %v", err),
			Errors:  []string{err.Error()},
		}
	}

	return &models.ProductResult{
		Product: models.NewProductResponse(product),
		Success: true,
		Message: "Product created successfully",
		Errors:  []string{},
	}
}

// GetProduct returns a single product by ID.
func (s *ProductService) GetProduct(id uint) (*models.ProductResponse, error) {
	product, err := s.repo.GetProductByID(id)
	if err != nil {
		return nil, err
	}
	return models.NewProductResponse(product), nil
}

// ListProducts returns the products matching the filter, ordered by name.
func (s *ProductService) ListProducts(f models.ProductFilter) ([]models.ProductResponse, error) {
	products, err := s.repo.FilterProducts(f)
	if err != nil {
		return nil, err
	}
	out := make([]models.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, *models.NewProductResponse(&products[i]))
	}
	return out, nil
}
