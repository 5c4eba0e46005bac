package repository

import (
	"fmt"

	"crm-service/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ICrmRepository defines the interface for CRM data operations. All writes
// issued by CreateOrder happen inside a single transaction.
type ICrmRepository interface {
	GetCustomerByID(id uint) (*models.Customer, error)
	CustomerEmailExists(email string) (bool, error)
	CreateCustomer(customer *models.Customer) error
	FilterCustomers(f models.CustomerFilter) ([]models.Customer, error)

	GetProductByID(id uint) (*models.Product, error)
	FilterProductsByIDs(ids []uint) ([]models.Product, error)
	CreateProduct(product *models.Product) error
	FilterProducts(f models.ProductFilter) ([]models.Product, error)

	GetOrderByID(id uint) (*models.Order, error)
	CreateOrder(order *models.Order, productIDs []uint) error
	FilterOrders(f models.OrderFilter) ([]models.Order, error)
}

// CrmRepository implements ICrmRepository for GORM.
type CrmRepository struct {
	DB *gorm.DB
}

// NewCrmRepository creates a new CrmRepository instance.
func NewCrmRepository(db *gorm.DB) ICrmRepository {
	return &CrmRepository{DB: db}
}

// GetCustomerByID retrieves a customer by ID.
func (r *CrmRepository) GetCustomerByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	err := r.DB.First(&customer, id).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// CustomerEmailExists reports whether a customer with this email exists.
func (r *CrmRepository) CustomerEmailExists(email string) (bool, error) {
	var count int64
	err := r.DB.Model(&models.Customer{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// CreateCustomer persists a new customer.
func (r *CrmRepository) CreateCustomer(customer *models.Customer) error {
	return r.DB.Create(customer).Error
}

// FilterCustomers lists customers matching the filter, newest first.
func (r *CrmRepository) FilterCustomers(f models.CustomerFilter) ([]models.Customer, error) {
	q := r.DB.Model(&models.Customer{})
	if f.Name != "" {
		q = q.Where("name LIKE ?", "%"+f.Name+"%")
	}
	if f.Email != "" {
		q = q.Where("email LIKE ?", "%"+f.Email+"%")
	}
	if f.CreatedAtGte != nil {
		q = q.Where("created_at >= ?", *f.CreatedAtGte)
	}
	if f.CreatedAtLte != nil {
		q = q.Where("created_at <= ?", *f.CreatedAtLte)
	}
	if f.PhonePattern != "" {
		q = q.Where("phone LIKE ?", f.PhonePattern+"%")
	}
	var customers []models.Customer
	err := q.Order("created_at DESC").Find(&customers).Error
	return customers, err
}

// GetProductByID retrieves a product by ID.
func (r *CrmRepository) GetProductByID(id uint) (*models.Product, error) {
	var product models.Product
	err := r.DB.First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FilterProductsByIDs returns the subset of products whose ids exist.
func (r *CrmRepository) FilterProductsByIDs(ids []uint) ([]models.Product, error) {
	var products []models.Product
	err := r.DB.Where("id IN ?", ids).Find(&products).Error
	return products, err
}

// CreateProduct persists a new product.
func (r *CrmRepository) CreateProduct(product *models.Product) error {
	return r.DB.Create(product).Error
}

// FilterProducts lists products matching the filter, ordered by name.
func (r *CrmRepository) FilterProducts(f models.ProductFilter) ([]models.Product, error) {
	q := r.DB.Model(&models.Product{})
	if f.Name != "" {
		q = q.Where("name LIKE ?", "%"+f.Name+"%")
	}
	if f.PriceGte != nil {
		q = q.Where("price >= ?", *f.PriceGte)
	}
	if f.PriceLte != nil {
		q = q.Where("price <= ?", *f.PriceLte)
	}
	if f.StockGte != nil {
		q = q.Where("stock >= ?", *f.StockGte)
	}
	if f.StockLte != nil {
		q = q.Where("stock <= ?", *f.StockLte)
	}
	if f.LowStock != nil {
		q = q.Where("stock < ?", *f.LowStock)
	}
	var products []models.Product
	err := q.Order("name ASC").Find(&products).Error
	return products, err
}

// GetOrderByID retrieves an order with its customer and products.
func (r *CrmRepository) GetOrderByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.DB.Preload("Customer").Preload("Products").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateOrder persists an order and its product associations as a single
// all-or-nothing unit: the order row is written with a zero total, the
// products are re-read and attached, and the total is recomputed from
// their current prices and persisted. Any failure rolls the whole unit
// back, so no reader ever observes a partially created order.
func (r *CrmRepository) CreateOrder(order *models.Order, productIDs []uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		order.TotalAmount = decimal.Zero
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		// Re-read inside the transaction so the attached set and the total
		// reflect authoritative store state, not the caller's pre-check.
		var products []models.Product
		if err := tx.Where("id IN ?", productIDs).Find(&products).Error; err != nil {
			return err
		}
		if len(products) != len(productIDs) {
			return fmt.Errorf("expected %d products, found %d", len(productIDs), len(products))
		}

		if err := tx.Model(order).Association("Products").Append(&products); err != nil {
			return err
		}

		total := decimal.Zero
		for _, p := range products {
			total = total.Add(p.Price)
		}
		if err := tx.Model(order).Update("total_amount", total).Error; err != nil {
			return err
		}

		order.TotalAmount = total
		order.Products = products
		return nil
	})
}

// FilterOrders lists orders matching the filter, newest first, with
// customer and products preloaded.
func (r *CrmRepository) FilterOrders(f models.OrderFilter) ([]models.Order, error) {
	q := r.DB.Model(&models.Order{})
	if f.TotalAmountGte != nil {
		q = q.Where("orders.total_amount >= ?", *f.TotalAmountGte)
	}
	if f.TotalAmountLte != nil {
		q = q.Where("orders.total_amount <= ?", *f.TotalAmountLte)
	}
	if f.OrderDateGte != nil {
		q = q.Where("orders.order_date >= ?", *f.OrderDateGte)
	}
	if f.OrderDateLte != nil {
		q = q.Where("orders.order_date <= ?", *f.OrderDateLte)
	}
	if f.CustomerName != "" || f.CustomerEmail != "" {
		q = q.Joins("JOIN customers ON customers.id = orders.customer_id")
		if f.CustomerName != "" {
			q = q.Where("customers.name LIKE ?", "%"+f.CustomerName+"%")
		}
		if f.CustomerEmail != "" {
			q = q.Where("customers.email LIKE ?", "%"+f.CustomerEmail+"%")
		}
	}
	if f.ProductName != "" || f.ProductID != nil {
		q = q.Joins("JOIN order_products ON order_products.order_id = orders.id").
			Joins("JOIN products ON products.id = order_products.product_id").
			Distinct("orders.*")
		if f.ProductName != "" {
			q = q.Where("products.name LIKE ?", "%"+f.ProductName+"%")
		}
		if f.ProductID != nil {
			q = q.Where("products.id = ?", *f.ProductID)
		}
	}
	var orders []models.Order
	err := q.Preload("Customer").Preload("Products").
		Order("orders.order_date DESC").Find(&orders).Error
	return orders, err
}
