package handlers

import (
	"net/http"

	"bistro-api/store"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviews *store.ReviewStore
}

func NewReviewHandler(reviews *store.ReviewStore) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// List returns all reviews (public)
func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.reviews.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}
