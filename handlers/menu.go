package handlers

import (
	"errors"
	"net/http"

	"bistro-api/models"
	"bistro-api/store"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	menu *store.MenuStore
}

func NewMenuHandler(menu *store.MenuStore) *MenuHandler {
	return &MenuHandler{menu: menu}
}

type CreateMenuItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Recipe   string  `json:"recipe"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
	Price    float64 `json:"price" binding:"required,gt=0"`
}

// List returns the full menu (public)
func (h *MenuHandler) List(c *gin.Context) {
	items, err := h.menu.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// Get returns a single menu item (public)
func (h *MenuHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, err := h.menu.GetByID(id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu item"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// Create adds a menu item — admin only
func (h *MenuHandler) Create(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.MenuItem{
		Name:     req.Name,
		Recipe:   req.Recipe,
		Image:    req.Image,
		Category: req.Category,
		Price:    req.Price,
	}
	if err := h.menu.Create(&item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": item.ID})
}

// Delete removes a menu item — admin only
func (h *MenuHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	affected, err := h.menu.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": affected})
}
