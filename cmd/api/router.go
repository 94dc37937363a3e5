package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"cryptoex/internal/handlers"
	"cryptoex/internal/metrics"
	"cryptoex/internal/middleware"
	"cryptoex/internal/services"
)

// proxyMaxAge is how long browsers and shared caches may reuse /api/crypto.
const proxyMaxAge = 60 * time.Second

// appServices is everything the router needs to serve requests.
type appServices struct {
	market    services.MarketServicer
	portfolio services.PortfolioServicer
	wallet    services.WalletServicer
	news      services.NewsServicer
}

func newRouter(svc appServices) *gin.Engine {
	cryptoHandler := handlers.NewCryptoHandler(svc.market, svc.news)
	marketHandler := handlers.NewMarketHandler(svc.market)
	portfolioHandler := handlers.NewPortfolioHandler(svc.portfolio)
	walletHandler := handlers.NewWalletHandler(svc.wallet)
	newsHandler := handlers.NewNewsHandler(svc.news)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.Metrics())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := router.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	api.GET("/crypto", middleware.CacheControl(proxyMaxAge), cryptoHandler.GetCrypto)

	v1 := api.Group("/v1")
	v1.GET("/landing", cryptoHandler.GetLanding)
	v1.GET("/dashboard", portfolioHandler.GetDashboard)
	v1.GET("/portfolio", portfolioHandler.GetPortfolio)
	v1.GET("/orders", portfolioHandler.ListOrders)
	v1.GET("/markets", marketHandler.ListMarkets)
	v1.GET("/wallet", walletHandler.GetWallet)
	v1.GET("/transactions", walletHandler.ListTransactions)
	v1.GET("/news", newsHandler.ListNews)

	assets := v1.Group("/assets")
	assets.GET("/overview", walletHandler.GetOverview)
	assets.GET("/spot", walletHandler.GetSpotAssets)
	assets.GET("/options", walletHandler.GetOptionsAssets)

	return router
}
