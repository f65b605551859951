package handlers

import (
	"net/http"

	"bistro-api/models"
	"bistro-api/store"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	carts *store.CartStore
}

func NewCartHandler(carts *store.CartStore) *CartHandler {
	return &CartHandler{carts: carts}
}

type AddCartItemRequest struct {
	Email      string  `json:"email" binding:"required,email"`
	MenuItemID uint    `json:"menuItemId" binding:"required"`
	Name       string  `json:"name"`
	Image      string  `json:"image"`
	Price      float64 `json:"price"`
}

// List returns the cart items for the email given as a query param.
// The filter is caller-supplied, not taken from a token.
func (h *CartHandler) List(c *gin.Context) {
	items, err := h.carts.ListByEmail(c.Query("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// Create adds an item to a cart and echoes the stored item back.
func (h *CartHandler) Create(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.CartItem{
		Email:      req.Email,
		MenuItemID: req.MenuItemID,
		Name:       req.Name,
		Image:      req.Image,
		Price:      req.Price,
	}
	if err := h.carts.Create(&item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add cart item"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete removes a cart item by id.
func (h *CartHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	affected, err := h.carts.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cart item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": affected})
}
