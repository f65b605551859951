package handlers

import (
	"errors"
	"net/http"

	"bistro-api/middleware"
	"bistro-api/models"
	"bistro-api/store"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users *store.UserStore
}

func NewUserHandler(users *store.UserStore) *UserHandler {
	return &UserHandler{users: users}
}

type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"required,email"`
	Photo string `json:"photo"`
}

// List returns all users — admin only
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// AdminStatus answers whether a user is an admin. Callers may only ask
// about themselves; probing another user's status is forbidden.
func (h *UserHandler) AdminStatus(c *gin.Context) {
	email := c.Param("email")
	if email != middleware.GetEmail(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied: you can only check your own admin status"})
		return
	}

	admin := false
	user, err := h.users.GetByEmail(email)
	if err == nil {
		admin = user.IsAdmin()
	} else if !errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": admin})
}

// Create inserts a user record on first sign-in. Idempotent by email: a
// repeat sign-in returns a sentinel with a null insertedId instead of a
// second record.
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := h.users.GetByEmail(req.Email)
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"message": "User already exists", "insertedId": nil})
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		return
	}

	user := models.User{
		Name:  req.Name,
		Email: req.Email,
		Photo: req.Photo,
	}
	if err := h.users.Create(&user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": user.ID})
}

// Promote sets a user's role to admin — admin only. The only role
// transition this API exposes; there is no demotion route.
func (h *UserHandler) Promote(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	affected, err := h.users.PromoteToAdmin(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"matchedCount": affected, "modifiedCount": affected})
}

// Delete removes a user by id — admin only. Deleting an absent id is a
// zero-count success.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	affected, err := h.users.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": affected})
}
