package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"froakie_tcg_back_end/internal/handlers"
	"froakie_tcg_back_end/internal/middleware"
)

// Register câble la surface HTTP complète.
func Register(r *gin.Engine, products *handlers.ProductHandler, orders *handlers.OrderHandler, webhook *handlers.WebhookHandler, rdb *redis.Client) {
	r.Use(cors.Default())
	r.Use(middleware.RequestID())

	// Health
	r.GET("/", handlers.Health)

	api := r.Group("/api")
	api.Use(middleware.APIRateLimit(rdb))

	// Produits
	api.GET("/products", products.List)
	api.GET("/products/:id", products.Get)
	api.POST("/products", products.Create)
	api.PUT("/products/:id", products.Update)
	api.DELETE("/products/:id", products.Delete)
	api.PATCH("/products/:id/stock", products.UpdateStock)

	// Commandes & paiement
	api.POST("/create-order", orders.Create)
	api.POST("/verify-payment", orders.Verify)
	api.GET("/orders", orders.List)
	api.GET("/orders/:id", orders.Get)
	api.POST("/webhook", webhook.Handle)

	// Données d'exemple
	api.POST("/initialize", products.Initialize)
}
