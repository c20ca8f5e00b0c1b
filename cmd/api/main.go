package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-pos-backoffice/internal/handler"
	"go-pos-backoffice/internal/middleware"
	"go-pos-backoffice/internal/model"
	"go-pos-backoffice/internal/repository"
	"go-pos-backoffice/internal/service"
	"go-pos-backoffice/internal/ws"
	"go-pos-backoffice/pkg/database"
	"go-pos-backoffice/pkg/jwt"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(
		&model.Profile{},
		&model.Product{},
		&model.Customer{},
		&model.Supplier{},
		&model.Invoice{},
		&model.InvoiceItem{},
		&model.Expense{},
	)

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	customerRepo := repository.NewCustomerRepo(db)
	supplierRepo := repository.NewSupplierRepo(db)
	invoiceRepo := repository.NewInvoiceRepo(db)
	expenseRepo := repository.NewExpenseRepo(db)
	reportRepo := repository.NewReportRepo(db)
	profileRepo := repository.NewProfileRepo(db)

	invService := service.NewInventoryService(productRepo, db, wsHub)
	salesService := service.NewSalesService(productRepo, customerRepo, invoiceRepo, db, wsHub)
	registryService := service.NewRegistryService(customerRepo, supplierRepo, db)
	expenseService := service.NewExpenseService(expenseRepo)
	reportService := service.NewReportService(reportRepo)
	authService := service.NewAuthService(profileRepo)

	invHandler := handler.NewInventoryHandler(invService)
	salesHandler := handler.NewSalesHandler(salesService)
	registryHandler := handler.NewRegistryHandler(registryService)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	dashHandler := handler.NewDashboardHandler(reportService)
	authHandler := handler.NewAuthHandler(authService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "POS Back Office v1.0",
	})

	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 6. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/validate-token", authHandler.ValidateToken)

	// ============ PROTECTED ROUTES ============
	// Every route below runs through the tenant guard.
	protected := api.Group("", middleware.RequireTenant(profileRepo))

	protected.Get("/dashboard/stats", dashHandler.GetDashboardStats)

	protected.Get("/products", invHandler.GetProducts)
	protected.Post("/products", invHandler.CreateProduct)
	protected.Put("/products/:id", invHandler.UpdateProduct)
	protected.Delete("/products/:id", invHandler.DeleteProduct)
	protected.Post("/products/:id/stock", invHandler.AdjustStock)

	protected.Get("/customers", registryHandler.GetCustomers)
	protected.Post("/customers", registryHandler.CreateCustomer)
	protected.Put("/customers/:id", registryHandler.UpdateCustomer)
	protected.Delete("/customers/:id", registryHandler.DeleteCustomer)

	protected.Get("/suppliers", registryHandler.GetSuppliers)
	protected.Post("/suppliers", registryHandler.CreateSupplier)
	protected.Put("/suppliers/:id", registryHandler.UpdateSupplier)
	protected.Delete("/suppliers/:id", registryHandler.DeleteSupplier)

	protected.Get("/expenses", expenseHandler.GetExpenses)
	protected.Post("/expenses", expenseHandler.CreateExpense)
	protected.Put("/expenses/:id", expenseHandler.UpdateExpense)
	protected.Delete("/expenses/:id", expenseHandler.DeleteExpense)

	protected.Get("/invoices", salesHandler.GetInvoices)
	protected.Get("/invoices/:id", salesHandler.GetInvoice)
	protected.Post("/invoices", salesHandler.CreateInvoice)
	protected.Put("/invoices/:id/status", salesHandler.UpdatePaymentStatus)
	protected.Delete("/invoices/:id", salesHandler.DeleteInvoice)

	// WebSocket route. The token rides in the query string because browser
	// websocket clients cannot set headers.
	app.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return c.SendStatus(fiber.StatusUpgradeRequired)
		}
		claims, err := jwt.ValidateToken(c.Query("token"))
		if err != nil {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		c.Locals("tenant_id", claims.TenantID)
		return c.Next()
	})
	app.Get("/ws", websocket.New(func(conn *websocket.Conn) {
		tenant, ok := conn.Locals("tenant_id").(uuid.UUID)
		if !ok {
			conn.Close()
			return
		}

		sub := ws.Subscription{TenantID: tenant, Conn: conn}
		wsHub.Register <- sub
		defer func() { wsHub.Unregister <- sub }()

		for {
			// Keep alive loop
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 7. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
