// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"store/internal/delivery/api/router/handler"
	"store/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler         *handler.AccountHandler
	ProductHandler         *handler.ProductHandler
	OrderHandler           *handler.OrderHandler
	CategoryHandler        *handler.CategoryHandler
	LogHandler             *handler.LogHandler
	StatsHandler           *handler.StatsHandler
	VisitCounterMiddleware *middleware.VisitCounterMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler  *handler.AccountHandler
	productHandler  *handler.ProductHandler
	orderHandler    *handler.OrderHandler
	categoryHandler *handler.CategoryHandler
	logHandler      *handler.LogHandler
	statsHandler    *handler.StatsHandler
	visitCounter    *middleware.VisitCounterMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:  params.AccountHandler,
		productHandler:  params.ProductHandler,
		orderHandler:    params.OrderHandler,
		categoryHandler: params.CategoryHandler,
		logHandler:      params.LogHandler,
		statsHandler:    params.StatsHandler,
		visitCounter:    params.VisitCounterMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Every /api request is counted
	api := e.Group("/api")
	api.Use(r.visitCounter.Count)

	accountsGroup := api.Group("/accounts")
	{
		accountsGroup.GET("", r.accountHandler.GetAccounts)
		accountsGroup.POST("", r.accountHandler.CreateAccount)
		accountsGroup.GET("/:id", r.accountHandler.GetAccount)
		accountsGroup.PUT("/:id", r.accountHandler.UpdateAccount)
		accountsGroup.DELETE("/:id", r.accountHandler.DeleteAccount)
		accountsGroup.GET("/nickname/:nickname", r.accountHandler.GetAccountByNickname)
	}

	productsGroup := api.Group("/products")
	{
		productsGroup.GET("", r.productHandler.GetProducts)
		productsGroup.POST("", r.productHandler.CreateProduct)
		productsGroup.POST("/bulk", r.productHandler.CreateProducts)
		productsGroup.GET("/:id", r.productHandler.GetProduct)
		productsGroup.PUT("/:id", r.productHandler.UpdateProduct)
		productsGroup.DELETE("/:id", r.productHandler.DeleteProduct)
	}

	ordersGroup := api.Group("/orders")
	{
		ordersGroup.GET("", r.orderHandler.GetOrders)
		ordersGroup.POST("", r.orderHandler.CreateOrder)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
		ordersGroup.PUT("/:id", r.orderHandler.UpdateOrder)
		ordersGroup.DELETE("/:id", r.orderHandler.DeleteOrder)
		ordersGroup.GET("/account/:accountId", r.orderHandler.GetOrdersByAccount)
		ordersGroup.GET("/filter/by-category-jpql", r.orderHandler.FilterByProductCategory)
		ordersGroup.GET("/filter/by-price-native", r.orderHandler.FilterByProductPrice)
	}

	categoriesGroup := api.Group("/categories")
	{
		categoriesGroup.GET("", r.categoryHandler.GetCategories)
		categoriesGroup.POST("", r.categoryHandler.CreateCategory)
		categoriesGroup.GET("/:id", r.categoryHandler.GetCategory)
		categoriesGroup.PUT("/:id", r.categoryHandler.UpdateCategory)
		categoriesGroup.DELETE("/:id", r.categoryHandler.DeleteCategory)
	}

	logsGroup := api.Group("/logs")
	{
		logsGroup.POST("/generate", r.logHandler.GenerateLogFile)
		logsGroup.GET("/status/:taskId", r.logHandler.GetTaskStatus)
		logsGroup.GET("/download/:taskId", r.logHandler.DownloadLogFile)
		logsGroup.GET("/by-date", r.logHandler.GetLogsByDate)
	}

	api.GET("/number-of-requests", r.statsHandler.GetRequestCounts)
}
