package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-outlet-ops/internal/handler"
	"go-outlet-ops/internal/middleware"
	"go-outlet-ops/internal/model"
	"go-outlet-ops/internal/repository"
	"go-outlet-ops/internal/service"
	"go-outlet-ops/internal/ws"
	"go-outlet-ops/pkg/database"
	"go-outlet-ops/pkg/imagestore"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
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
		&model.Outlet{}, &model.User{}, &model.Product{},
		&model.Inventory{}, &model.Purchase{}, &model.Sale{},
		&model.Waste{}, &model.DailyClosing{},
	)

	// 3. Seed outlets, users, and sample products
	seedReferenceData(db)

	// 4. Organizational timezone for the dashboard windows
	loc := time.Local
	if tz := os.Getenv("APP_TZ"); tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			log.Printf("Warning: invalid APP_TZ %q, falling back to local time", tz)
		} else {
			loc = l
		}
	}

	// 5. Uploaded waste photos live under a static-served directory
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	images, err := imagestore.New(uploadDir+"/waste", "/uploads/waste")
	if err != nil {
		log.Fatal("Failed to prepare upload directory: ", err)
	}

	// 6. WebSocket hub for the live activity feed
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 7. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	outletRepo := repository.NewOutletRepo(db)
	productRepo := repository.NewProductRepo(db)
	inventoryRepo := repository.NewInventoryRepo(db)
	purchaseRepo := repository.NewPurchaseRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	wasteRepo := repository.NewWasteRepo(db)
	closingRepo := repository.NewClosingRepo(db)

	authService := service.NewAuthService(userRepo)
	recordService := service.NewRecordService(
		productRepo, outletRepo, inventoryRepo, purchaseRepo,
		saleRepo, wasteRepo, closingRepo, images, wsHub,
	)
	reportService := service.NewReportService(
		productRepo, purchaseRepo, saleRepo, wasteRepo,
		closingRepo, outletRepo, nil, loc,
	)

	authHandler := handler.NewAuthHandler(authService)
	inventoryHandler := handler.NewInventoryHandler(recordService)
	purchaseHandler := handler.NewPurchaseHandler(recordService)
	saleHandler := handler.NewSaleHandler(recordService)
	wasteHandler := handler.NewWasteHandler(recordService)
	closingHandler := handler.NewClosingHandler(recordService)
	reportHandler := handler.NewReportHandler(reportService)
	catalogHandler := handler.NewCatalogHandler(productRepo, outletRepo)

	// 8. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName:      "Outlet Ops v1.0",
		BodyLimit:    imagestore.MaxUploadBytes + 1024*1024, // form fields ride along with the image
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS for the SPA client

	// Uploaded files
	app.Static("/uploads", uploadDir)

	// 9. Routes
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true, "data": fiber.Map{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		}})
	})

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth())

	ownerOnly := middleware.RequireRoles(model.RoleOwner)
	buyers := middleware.RequireRoles(model.RoleOwner, model.RolePurchasing)
	sellers := middleware.RequireRoles(append([]model.Role{model.RoleOwner}, model.OutletRoles()...)...)

	protected.Get("/inventory", inventoryHandler.List)
	protected.Post("/inventory", buyers, inventoryHandler.Upsert)

	protected.Get("/sales", saleHandler.List)
	protected.Post("/sales", sellers, saleHandler.Record)

	protected.Get("/purchases", purchaseHandler.List)
	protected.Post("/purchases", buyers, purchaseHandler.Record)

	protected.Get("/waste", wasteHandler.List)
	protected.Post("/waste", sellers, wasteHandler.Record)

	protected.Get("/daily-closing", closingHandler.List)
	protected.Post("/daily-closing", sellers, closingHandler.Upsert)

	protected.Get("/reports/inventory", reportHandler.Inventory)
	protected.Get("/reports/sales", reportHandler.Sales)
	protected.Get("/reports/daily-summary", ownerOnly, reportHandler.DailySummary)
	protected.Get("/reports/dashboard-stats", ownerOnly, reportHandler.DashboardStats)

	protected.Get("/products", catalogHandler.Products)
	protected.Get("/outlets", catalogHandler.Outlets)

	// WebSocket Route (live activity feed)
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// Unmatched routes
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Not found"})
	})

	// 10. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3001"
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

// errorHandler keeps uncaught errors inside the response envelope. Detail is
// logged server-side only.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		if code < 500 {
			message = e.Message
		}
	}
	if code >= 500 {
		log.Printf("unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	}

	return c.Status(code).JSON(fiber.Map{"success": false, "error": message})
}
