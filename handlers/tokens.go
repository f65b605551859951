package handlers

import (
	"net/http"

	"bistro-api/token"

	"github.com/gin-gonic/gin"
)

type TokenHandler struct {
	tokens *token.Service
}

func NewTokenHandler(tokens *token.Service) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

type TokenRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

// Issue mints a long-lived JWT for an already signed-in user. Identity
// is established upstream; this endpoint only turns it into a bearer
// credential.
func (h *TokenHandler) Issue(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t, err := h.tokens.Issue(req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": t})
}
