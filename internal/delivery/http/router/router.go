// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ShopperHandler  *handler.ShopperHandler
	ProductHandler  *handler.ProductHandler
	CartHandler     *handler.CartHandler
	CheckoutHandler *handler.CheckoutHandler
	AddressHandler  *handler.AddressHandler
	OrderHandler    *handler.OrderHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	shopperHandler  *handler.ShopperHandler
	productHandler  *handler.ProductHandler
	cartHandler     *handler.CartHandler
	checkoutHandler *handler.CheckoutHandler
	addressHandler  *handler.AddressHandler
	orderHandler    *handler.OrderHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		shopperHandler:  params.ShopperHandler,
		productHandler:  params.ProductHandler,
		cartHandler:     params.CartHandler,
		checkoutHandler: params.CheckoutHandler,
		addressHandler:  params.AddressHandler,
		orderHandler:    params.OrderHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.shopperHandler.Register)
		authGroup.POST("/login", r.shopperHandler.Login)
	}

	// Everything below requires a signed-in shopper
	shopperGroup := e.Group("/shopper")
	shopperGroup.Use(r.authMiddleware.Authenticate)
	{
		shopperGroup.GET("/profile", r.shopperHandler.Profile)
	}

	productGroup := e.Group("/products")
	productGroup.Use(r.authMiddleware.Authenticate)
	{
		productGroup.GET("", r.productHandler.ListProducts)
		productGroup.GET("/:id", r.productHandler.GetProduct)
	}

	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PUT("/items/:productID", r.cartHandler.UpdateQuantity)
		cartGroup.DELETE("/items/:productID", r.cartHandler.RemoveItem)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
	}

	checkoutGroup := e.Group("/checkout")
	checkoutGroup.Use(r.authMiddleware.Authenticate)
	{
		checkoutGroup.POST("/start", r.checkoutHandler.Start)
		checkoutGroup.GET("/session", r.checkoutHandler.Session)
		checkoutGroup.POST("/address/select", r.checkoutHandler.BeginAddressSelection)
		checkoutGroup.POST("/address/choose", r.checkoutHandler.ChooseAddress)
		checkoutGroup.POST("/address/edit", r.checkoutHandler.BeginAddressEntry)
		checkoutGroup.POST("/address", r.checkoutHandler.SaveAddress)
		checkoutGroup.DELETE("/address/:id", r.checkoutHandler.RemoveAddress)
		checkoutGroup.GET("/delivery", r.checkoutHandler.DeliveryOptions)
		checkoutGroup.POST("/delivery", r.checkoutHandler.ChooseDelivery)
		checkoutGroup.POST("/order", r.checkoutHandler.PlaceOrder)
	}

	addressGroup := e.Group("/addresses")
	addressGroup.Use(r.authMiddleware.Authenticate)
	{
		addressGroup.GET("", r.addressHandler.ListAddresses)
		addressGroup.POST("", r.addressHandler.CreateAddress)
		addressGroup.PUT("/:id", r.addressHandler.UpdateAddress)
		addressGroup.DELETE("/:id", r.addressHandler.DeleteAddress)
	}

	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
	}
}
