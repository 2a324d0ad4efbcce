package httpserver

import (
	"errors"
	"net/http"

	"scoopdash/internal/domain"
	"scoopdash/internal/service/checkout"
	"scoopdash/internal/store"

	"github.com/gin-gonic/gin"
)

func checkoutHandler(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in checkout.PlaceInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		order, err := svc.Place(c.Request.Context(), in)
		if err != nil {
			if errors.Is(err, domain.ErrEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		// LocalOnly is still a placed order from the shopper's view.
		c.JSON(http.StatusCreated, order)
	}
}

func listOrdersHandler(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := st.Orders()
		if orders == nil {
			orders = []domain.Order{}
		}
		c.JSON(http.StatusOK, orders)
	}
}

func lastOrderHandler(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		last := st.LastOrder()
		if last == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "no recent order"})
			return
		}
		c.JSON(http.StatusOK, last)
	}
}
