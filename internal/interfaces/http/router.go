package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockflow-api/internal/application/auth"
	"github.com/jhoicas/stockflow-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	RestaurantUC *usecase.RestaurantUseCase
	AccessUC     *usecase.AccessUseCase
	ItemUC       *usecase.ItemUseCase
	ReceiptUC    *usecase.ReceiptUseCase
	InviteUC     *usecase.InviteUseCase
	DashboardUC  *usecase.DashboardUseCase
	ReportUC     *usecase.ReportUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Canje de invitación (público: se llama antes de tener cuenta)
	inviteHandler := NewInviteHandler(deps.InviteUC)
	api.Post("/invites/redeem", inviteHandler.Redeem)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Perfil (protegido)
	protected.Get("/me", authHandler.Me)
	protected.Put("/me", authHandler.UpdateMe)

	// Restaurants (protegido)
	restaurants := protected.Group("/restaurants")
	restaurantHandler := NewRestaurantHandler(deps.RestaurantUC)
	restaurants.Post("/", restaurantHandler.Create)
	restaurants.Get("/", restaurantHandler.List)
	restaurants.Get("/:id", restaurantHandler.GetByID)
	restaurants.Put("/:id", restaurantHandler.Update)
	restaurants.Delete("/:id", restaurantHandler.Delete)

	// Miembros (protegido)
	accessHandler := NewAccessHandler(deps.AccessUC)
	restaurants.Get("/:id/members", accessHandler.ListMembers)
	restaurants.Delete("/:id/members/:userId", accessHandler.RemoveMember)

	// Inventario (protegido)
	itemHandler := NewItemHandler(deps.ItemUC)
	restaurants.Post("/:id/items", itemHandler.Create)
	restaurants.Get("/:id/items", itemHandler.List)
	items := protected.Group("/items")
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)
	items.Post("/:id/adjust", itemHandler.Adjust)
	items.Put("/:id/quantity", itemHandler.SetQuantity)

	// Recibos (protegido)
	receiptHandler := NewReceiptHandler(deps.ReceiptUC)
	restaurants.Post("/:id/receipts", receiptHandler.Upload)
	restaurants.Get("/:id/receipts", receiptHandler.List)
	receipts := protected.Group("/receipts")
	receipts.Get("/:id/image", receiptHandler.Image)
	receipts.Delete("/:id", receiptHandler.Delete)

	// Invitaciones (protegido)
	invites := protected.Group("/invites")
	invites.Post("/", inviteHandler.Create)
	invites.Get("/", inviteHandler.ListMine)

	// Dashboard y reporte (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	restaurants.Get("/:id/dashboard", dashboardHandler.Summary)
	reportHandler := NewReportHandler(deps.ReportUC)
	restaurants.Get("/:id/report", reportHandler.Inventory)
}
