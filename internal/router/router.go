// Package router wires HTTP routes to handlers and hangs the session
// and page-guard middleware on each protected group.
package router

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/restaurant-pos/internal/config"
	"github.com/iliyamo/restaurant-pos/internal/handler"
	"github.com/iliyamo/restaurant-pos/internal/middleware"
)

// Handlers bundles every handler group the router mounts.
type Handlers struct {
	Auth      *handler.AuthHandler
	Orders    *handler.OrderHandler
	Payments  *handler.PaymentHandler
	Menu      *handler.MenuHandler
	Tables    *handler.TableHandler
	Inventory *handler.InventoryHandler
	Users     *handler.UserHandler
	Shifts    *handler.ShiftHandler
	Reports   *handler.ReportHandler
	Notify    *handler.NotifyHandler
}

// Register mounts all routes. The notification relay and the health
// check are open and CORS-permissive per the wire contract; everything
// else requires a session, and each page group additionally passes the
// RBAC page guard.
func Register(e *echo.Echo, h Handlers, cfg config.Config, rdb *redis.Client) {
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{AllowOrigins: []string{"*"}}))

	e.GET("/healthz", handler.Health)

	// Relay wire contract: open subscribe/publish with no auth.
	e.GET("/v1/notifications/stream", h.Notify.Stream)
	e.POST("/v1/notifications", h.Notify.Publish)

	// Login is rate limited; the other auth routes are plain.
	rl := middleware.LoginRateLimit(config.LoadRateLimitConfig(), rdb)
	e.POST("/v1/auth/login", h.Auth.Login, rl)
	e.POST("/v1/auth/logout", h.Auth.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(cfg.JWTSecret))
	auth.GET("/me", h.Auth.Me)
	auth.GET("/navigation", h.Auth.Navigation)

	orders := auth.Group("/orders", middleware.RequirePage("orders"))
	orders.GET("", h.Orders.List)
	orders.POST("", h.Orders.Create)
	orders.GET("/:id", h.Orders.Get)
	orders.PATCH("/:id/status", h.Orders.UpdateStatus)
	orders.POST("/:id/split", h.Orders.Split)
	orders.POST("/merge", h.Orders.Merge)
	orders.DELETE("/:id", h.Orders.Delete)

	// Payments ride on the orders page; there is no separate payments
	// page in the navigation model.
	payments := auth.Group("/payments", middleware.RequirePage("orders"))
	payments.GET("", h.Payments.List)
	payments.POST("", h.Payments.Process)
	payments.POST("/:id/refund", h.Payments.Refund)

	cache := middleware.ResponseCache(config.LoadCacheConfig(), rdb)

	menu := auth.Group("/menu", middleware.RequirePage("menu"))
	menu.GET("", h.Menu.List, cache)
	menu.POST("", h.Menu.Create)
	menu.PUT("/:id", h.Menu.Update)
	menu.PATCH("/:id/availability", h.Menu.SetAvailability)
	menu.DELETE("/:id", h.Menu.Delete)

	tables := auth.Group("/tables", middleware.RequirePage("tables"))
	tables.GET("", h.Tables.List)
	tables.POST("", h.Tables.Create)
	tables.PATCH("/:id/status", h.Tables.UpdateStatus)
	tables.POST("/:id/order", h.Tables.AssignOrder)
	tables.DELETE("/:id/order", h.Tables.ClearOrder)
	tables.POST("/:id/reservation", h.Tables.Reserve)
	tables.DELETE("/:id", h.Tables.Delete)

	inventory := auth.Group("/inventory", middleware.RequirePage("inventory"))
	inventory.GET("", h.Inventory.List)
	inventory.POST("", h.Inventory.Create)
	inventory.PUT("/:id", h.Inventory.Update)
	inventory.PATCH("/:id/stock", h.Inventory.UpdateStock)
	inventory.DELETE("/:id", h.Inventory.Delete)

	users := auth.Group("/users", middleware.RequirePage("users"))
	users.GET("", h.Users.List)
	users.POST("", h.Users.Create)
	users.PUT("/:id", h.Users.Update)
	users.POST("/:id/deactivate", h.Users.Deactivate)
	users.DELETE("/:id", h.Users.Delete)

	// Shift scheduling lives on the users page.
	shifts := auth.Group("/shifts", middleware.RequirePage("users"))
	shifts.GET("", h.Shifts.List)
	shifts.POST("", h.Shifts.Create)
	shifts.PUT("/:id", h.Shifts.Update)
	shifts.DELETE("/:id", h.Shifts.Delete)

	reports := auth.Group("/reports", middleware.RequirePage("reports"))
	reports.GET("/sales", h.Reports.Sales, cache)
}
