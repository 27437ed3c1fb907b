// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"medifind/internal/delivery/http/middleware"
	"medifind/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	PharmacyHandler *handler.PharmacyHandler
	SearchHandler   *handler.SearchHandler
	UserHandler     *handler.UserHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	pharmacyHandler *handler.PharmacyHandler
	searchHandler   *handler.SearchHandler
	userHandler     *handler.UserHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		pharmacyHandler: params.PharmacyHandler,
		searchHandler:   params.SearchHandler,
		userHandler:     params.UserHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Banner)
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/user", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Public availability lookup
	api.GET("/search", r.searchHandler.Search)

	pharmacyGroup := api.Group("/pharmacy")
	{
		// Public listing stays outside the auth chain
		pharmacyGroup.GET("/all", r.pharmacyHandler.ListAll)

		pharmacyGroup.POST("", r.pharmacyHandler.Register, r.authMiddleware.Authenticate)
		pharmacyGroup.PUT("/update", r.pharmacyHandler.Update, r.authMiddleware.Authenticate)
		pharmacyGroup.GET("/mine", r.pharmacyHandler.Mine, r.authMiddleware.Authenticate)
		pharmacyGroup.GET("/mine/qrcode", r.pharmacyHandler.QRCode, r.authMiddleware.Authenticate)
		pharmacyGroup.GET("/medicines/all", r.pharmacyHandler.ListMedicines, r.authMiddleware.Authenticate)
		pharmacyGroup.GET("/stock", r.pharmacyHandler.ListStock, r.authMiddleware.Authenticate)
		pharmacyGroup.POST("/stock", r.pharmacyHandler.UpsertStock, r.authMiddleware.Authenticate)
		pharmacyGroup.PUT("/stock/:id", r.pharmacyHandler.UpdateStock, r.authMiddleware.Authenticate)
		pharmacyGroup.DELETE("/stock/:id", r.pharmacyHandler.DeleteStock, r.authMiddleware.Authenticate)
		pharmacyGroup.POST("/verify-stock", r.userHandler.VerifyStock, r.authMiddleware.Authenticate)
	}

	usersGroup := api.Group("/users")
	{
		usersGroup.GET("/leaderboard", r.userHandler.Leaderboard)
	}
}
