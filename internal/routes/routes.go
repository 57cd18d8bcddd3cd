package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/cafeshop/internal/config"
	"github.com/example/cafeshop/internal/handlers"
	"github.com/example/cafeshop/internal/middleware"
	"github.com/example/cafeshop/internal/services"
	"github.com/example/cafeshop/internal/store"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	telegramService := services.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramAdminChat)

	userStore := store.NewUserStore(db)
	menuStore := store.NewMenuStore(db)
	orderStore := store.NewOrderStore(db)

	authHandler := handlers.NewAuthHandler(userStore, cfg)
	menuHandler := handlers.NewMenuHandler(menuStore)
	orderHandler := handlers.NewOrderHandler(orderStore, telegramService)
	adminHandler := handlers.NewAdminHandler(db)

	authGate := middleware.AuthMiddleware(cfg)
	adminGate := middleware.RequireAdmin()

	api := app.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/signin", authHandler.Signin)
	auth.Post("/logout", authHandler.Logout)

	// Menu routes: reading is public, mutation is admin-only
	menu := api.Group("/menu")
	menu.Get("/get", menuHandler.GetItems)
	menu.Post("/add", authGate, adminGate, menuHandler.AddItems)
	menu.Put("/update", authGate, adminGate, menuHandler.UpdateItems)
	menu.Delete("/delete", authGate, adminGate, menuHandler.DeleteItems)

	// Order routes
	orders := api.Group("/orders", authGate)
	orders.Post("/create", orderHandler.CreateOrder)
	orders.Get("/my-orders", orderHandler.ListMyOrders)
	orders.Get("/my-orders/:orderId", orderHandler.GetMyOrder)
	orders.Get("/all", adminGate, orderHandler.ListAllOrders)
	orders.Put("/status", adminGate, orderHandler.UpdateStatus)
	orders.Get("/details/:orderId", adminGate, orderHandler.GetOrderDetails)

	// Admin dashboard
	admin := api.Group("/admin", authGate, adminGate)
	admin.Get("/stats", adminHandler.Stats)
}
