package httpserver

import (
	"net/http"

	"scoopdash/internal/domain"
	"scoopdash/internal/service/catalog"

	"github.com/gin-gonic/gin"
)

func listProductsHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.Products(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "catalog unavailable"})
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, products)
	}
}

func listAddonsHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		addons, err := svc.Addons(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "catalog unavailable"})
			return
		}
		if addons == nil {
			addons = []domain.Addon{}
		}
		c.JSON(http.StatusOK, addons)
	}
}

func listLocationsHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		locations, err := svc.Locations(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "catalog unavailable"})
			return
		}
		if locations == nil {
			locations = []domain.Location{}
		}
		c.JSON(http.StatusOK, locations)
	}
}
