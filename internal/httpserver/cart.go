package httpserver

import (
	"net/http"

	"scoopdash/internal/domain"
	"scoopdash/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type addItemRequest struct {
	Product  productPayload `json:"product" binding:"required"`
	Addons   []addonPayload `json:"addons"`
	Quantity int            `json:"quantity"`
}

type productPayload struct {
	ID    string          `json:"id" binding:"required"`
	Name  string          `json:"name" binding:"required"`
	Price decimal.Decimal `json:"price"`
}

type addonPayload struct {
	ID    string          `json:"id" binding:"required"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type updateQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

func getCartHandler(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		lines := st.Lines()
		if lines == nil {
			lines = []domain.CartLine{}
		}
		c.JSON(http.StatusOK, gin.H{
			"items":  lines,
			"totals": st.Totals(),
		})
	}
}

func addCartItemHandler(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		qty := req.Quantity
		if qty < 1 {
			qty = 1
		}
		addons := make([]domain.SelectedAddon, 0, len(req.Addons))
		for _, a := range req.Addons {
			addons = append(addons, domain.SelectedAddon{ID: a.ID, Name: a.Name, Price: a.Price})
		}
		product := domain.Product{ID: req.Product.ID, Name: req.Product.Name, Price: req.Product.Price}
		line := st.AddLine(c.Request.Context(), product, addons, qty)
		c.JSON(http.StatusCreated, line)
	}
}

func updateQuantityHandler(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		st.UpdateQuantity(c.Request.Context(), c.Param("productId"), req.Delta)
		lines := st.Lines()
		if lines == nil {
			lines = []domain.CartLine{}
		}
		c.JSON(http.StatusOK, gin.H{"items": lines})
	}
}

func removeCartItemHandler(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		st.RemoveLine(c.Request.Context(), c.Param("productId"))
		c.Status(http.StatusNoContent)
	}
}

func clearCartHandler(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		st.ClearCart(c.Request.Context())
		c.Status(http.StatusNoContent)
	}
}

func cartTotalsHandler(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, st.Totals())
	}
}

func setLocationHandler(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var loc domain.Location
		if err := c.ShouldBindJSON(&loc); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if loc.ID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "location id required"})
			return
		}
		st.SetLocation(loc)
		c.JSON(http.StatusOK, loc)
	}
}
