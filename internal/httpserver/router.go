package httpserver

import (
	"log"

	"scoopdash/internal/notify"
	"scoopdash/internal/service/admin"
	"scoopdash/internal/service/catalog"
	"scoopdash/internal/service/checkout"
	"scoopdash/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Deps carries the wired services for the router.
type Deps struct {
	Store    *store.Store
	Checkout *checkout.Service
	Admin    *admin.Service
	Catalog  *catalog.Service
	Notes    *notify.Center
}

// buildRouter wires routes for the storefront and the admin console.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins []string) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(corsOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = corsOrigins
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.GET("/cart", getCartHandler(deps.Store))
	router.POST("/cart/items", addCartItemHandler(deps.Store))
	router.PATCH("/cart/items/:productId", updateQuantityHandler(deps.Store))
	router.DELETE("/cart/items/:productId", removeCartItemHandler(deps.Store))
	router.DELETE("/cart", clearCartHandler(deps.Store))
	router.GET("/cart/totals", cartTotalsHandler(deps.Store))

	router.POST("/checkout", checkoutHandler(deps.Checkout))
	router.GET("/orders", listOrdersHandler(deps.Store))
	router.GET("/orders/last", lastOrderHandler(deps.Store))
	router.PUT("/location", setLocationHandler(deps.Store))

	router.GET("/products", listProductsHandler(deps.Catalog))
	router.GET("/addons", listAddonsHandler(deps.Catalog))
	router.GET("/locations", listLocationsHandler(deps.Catalog))

	router.GET("/notifications", listNotificationsHandler(deps.Notes))
	router.DELETE("/notifications/:id", dismissNotificationHandler(deps.Notes))

	adminGroup := router.Group("/admin")
	{
		adminGroup.GET("/orders", adminOrdersHandler(deps.Admin))
		adminGroup.PATCH("/orders/:id/status", updateStatusHandler(deps.Admin))
		adminGroup.PATCH("/orders/:id/rider", assignRiderHandler(deps.Admin))
		adminGroup.GET("/riders", listRidersHandler(deps.Admin))
		adminGroup.POST("/products", createProductHandler(deps.Admin))
		adminGroup.POST("/locations", createLocationHandler(deps.Admin))
		adminGroup.POST("/riders", createRiderHandler(deps.Admin))
	}

	return router, nil
}
