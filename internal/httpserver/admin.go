package httpserver

import (
	"net/http"
	"strings"

	"scoopdash/internal/domain"
	"scoopdash/internal/service/admin"

	"github.com/gin-gonic/gin"
)

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type assignRiderRequest struct {
	RiderID string `json:"rider_id" binding:"required"`
}

func adminOrdersHandler(svc *admin.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := svc.Orders()
		if orders == nil {
			orders = []domain.Order{}
		}
		c.JSON(http.StatusOK, orders)
	}
}

func updateStatusHandler(svc *admin.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		status := domain.OrderStatus(strings.ToLower(strings.TrimSpace(req.Status)))
		if !domain.ValidStatus(status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
			return
		}
		if err := svc.UpdateStatus(c.Request.Context(), c.Param("id"), status); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func assignRiderHandler(svc *admin.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req assignRiderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := svc.AssignRider(c.Request.Context(), c.Param("id"), req.RiderID); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func listRidersHandler(svc *admin.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		riders, err := svc.ListRiders(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "riders unavailable"})
			return
		}
		if riders == nil {
			riders = []domain.Rider{}
		}
		c.JSON(http.StatusOK, riders)
	}
}

func createProductHandler(svc *admin.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p domain.Product
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		created, err := svc.CreateProduct(c.Request.Context(), p)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func createLocationHandler(svc *admin.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var l domain.Location
		if err := c.ShouldBindJSON(&l); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		created, err := svc.CreateLocation(c.Request.Context(), l)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func createRiderHandler(svc *admin.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var r domain.Rider
		if err := c.ShouldBindJSON(&r); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		created, err := svc.CreateRider(c.Request.Context(), r)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}
