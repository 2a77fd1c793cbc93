package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/kraviona/seller-console/internal/gate"
	"github.com/kraviona/seller-console/internal/handlers"
)

type Deps struct {
	Gate             *gate.Gate
	AuthHandler      *handlers.AuthHandler
	CategoryHandler  *handlers.CategoryHandler
	ProductHandler   *handlers.ProductHandler
	EmailHandler     *handlers.EmailHandler
	DashboardHandler *handlers.DashboardHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	// login screen is the only unauthenticated-only route
	e.GET("/login", d.AuthHandler.LoginPage, d.Gate.RedirectAuthenticated)
	e.POST("/login", d.AuthHandler.Login, d.Gate.RedirectAuthenticated)
	e.POST("/logout", d.AuthHandler.Logout)

	// public storefront surface, no session required
	e.GET("/shop", d.ProductHandler.Shop, d.Gate.Resolve)
	e.GET("/product/:slug", d.ProductHandler.Detail, d.Gate.Resolve)

	// everything below is gated on an active session
	g := e.Group("", d.Gate.RequireSession)

	g.GET("/", d.DashboardHandler.Home)
	g.GET("/emails", d.EmailHandler.List)

	g.GET("/categories", d.CategoryHandler.List)
	g.GET("/add-category", d.CategoryHandler.AddPage)
	g.POST("/add-category", d.CategoryHandler.Add)
	g.GET("/categories/:id/delete", d.CategoryHandler.ConfirmDelete)
	g.POST("/categories/:id/delete", d.CategoryHandler.Delete)

	g.GET("/products", d.ProductHandler.Table)
	g.GET("/add-product", d.ProductHandler.AddPage)
	g.POST("/add-product", d.ProductHandler.Add)
	g.GET("/edit-product/:id", d.ProductHandler.EditPage)
	g.POST("/edit-product/:id", d.ProductHandler.Edit)
	g.GET("/products/:id/delete", d.ProductHandler.ConfirmDelete)
	g.POST("/products/:id/delete", d.ProductHandler.Delete)

	// wildcard 404, rendered inside the chrome
	e.GET("/*", d.DashboardHandler.NotFound, d.Gate.Resolve)
}
