package main

import (
	"log"
	"log/slog"

	"crm-service/config"
	"crm-service/controllers"
	"crm-service/jobs"
	"crm-service/models"
	"crm-service/repository"
	"crm-service/services"
	"crm-service/telemetry"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func main() {
	telemetry.InitLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := repository.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	slog.Info("running database migrations")
	err = db.AutoMigrate(&models.Customer{}, &models.Product{}, &models.Order{})
	if err != nil {
		log.Fatalf("Failed to auto migrate database: %v", err)
	}

	seedData(db)

	repo := repository.NewCrmRepository(db)

	var kafkaSvc services.IKafkaService
	if cfg.Kafka.Enabled {
		kafkaSvc, err = services.NewKafkaService(cfg.Kafka.Brokers)
		if err != nil {
			log.Fatalf("Failed to initialize Kafka service: %v", err)
		}
	}

	customerSvc := services.NewCustomerService(repo)
	productSvc := services.NewProductService(repo)
	orderSvc := services.NewOrderService(repo, kafkaSvc, cfg.Kafka.Topic)

	customerCtrl := controllers.NewCustomerController(customerSvc)
	productCtrl := controllers.NewProductController(productSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	app := fiber.New()
	app.Use(controllers.RequestID())

	app.Get("/hello", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"message": "Hello, CRM!"})
	})

	app.Post("/customers", customerCtrl.CreateCustomer)
	app.Post("/customers/bulk", customerCtrl.BulkCreateCustomers)
	app.Get("/customers", customerCtrl.ListCustomers)
	app.Get("/customers/:id", customerCtrl.GetCustomer)

	app.Post("/products", productCtrl.CreateProduct)
	app.Get("/products", productCtrl.ListProducts)
	app.Get("/products/:id", productCtrl.GetProduct)

	app.Post("/orders", orderCtrl.CreateOrder)
	app.Get("/orders", orderCtrl.ListOrders)
	app.Get("/orders/:id", orderCtrl.GetOrder)

	if cfg.Jobs.Enabled {
		scheduler := jobs.NewScheduler()
		scheduler.Add(jobs.NewHeartbeat(cfg.Jobs.APIURL, cfg.Jobs.HeartbeatLog), cfg.Jobs.HeartbeatInterval)
		scheduler.Add(jobs.NewOrderReminders(cfg.Jobs.APIURL, cfg.Jobs.ReminderLog, cfg.Jobs.ReminderWindowDays), cfg.Jobs.ReminderInterval)
		scheduler.Start()
		defer scheduler.Stop()
	}

	slog.Info("server starting", "port", cfg.Server.Port)
	log.Fatal(app.Listen(cfg.Server.Port))
}

// seedData creates a few sample customers and products for testing, only
// for rows that are not already present, so restarts do not duplicate.
func seedData(db *gorm.DB) {
	customers := []models.Customer{
		{Name: "Alice Johnson", Email: "alice@example.com", Phone: "+1-234-567-8901"},
		{Name: "Bob Smith", Email: "bob@example.com", Phone: "123-456-7890"},
		{Name: "Carol Williams", Email: "carol@example.com"},
	}
	for _, customer := range customers {
		var existing models.Customer
		if db.Where("email = ?", customer.Email).First(&existing).Error != nil {
			if err := db.Create(&customer).Error; err != nil {
				slog.Error("failed to seed customer", "name", customer.Name, "error", err)
			} else {
				slog.Info("seeded customer", "name", customer.Name, "email", customer.Email)
			}
		}
	}

	products := []models.Product{
		{Name: "Laptop", Price: decimal.NewFromFloat(999.99), Stock: 10, Description: "High-performance laptop"},
		{Name: "Mouse", Price: decimal.NewFromFloat(25.50), Stock: 50, Description: "Wireless mouse"},
		{Name: "Keyboard", Price: decimal.NewFromFloat(75.00), Stock: 25, Description: "Mechanical keyboard"},
	}
	for _, product := range products {
		var existing models.Product
		if db.Where("name = ?", product.Name).First(&existing).Error != nil {
			if err := db.Create(&product).Error; err != nil {
				slog.Error("failed to seed product", "name", product.Name, "error", err)
			} else {
				slog.Info("seeded product", "name", product.Name, "price", product.Price.String())
			}
		}
	}
}
