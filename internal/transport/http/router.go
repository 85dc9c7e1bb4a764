package httpapi

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

func Router(deps Deps, log *zap.Logger) *gin.Engine {
	r := gin.Default()

	origins := deps.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	storeHandler := NewStoreHandler(deps.Catalog, deps.Submitter, deps.StoreNumber, log)
	adminHandler := NewAdminHandler(deps.Admin, deps.Auth, log)

	api := r.Group("/api/v1")
	api.GET("/products", storeHandler.Products)
	api.POST("/cart/summary", storeHandler.CartSummary)
	api.POST("/orders", storeHandler.Checkout)

	api.POST("/admin/login", adminHandler.Login)

	admin := api.Group("/admin", AdminRequired(deps.Auth, log))
	admin.GET("/orders", adminHandler.Orders)
	admin.PATCH("/orders/:id/status", adminHandler.SetStatus)
	admin.POST("/catalog/refresh", storeHandler.RefreshCatalog)

	return r
}
