package routes

import (
	"bistro-api/handlers"
	"bistro-api/middleware"
	"bistro-api/store"
	"bistro-api/token"

	"github.com/gin-gonic/gin"
)

// Deps carries everything the route table needs. Built once at startup
// and handed in whole, so tests can assemble the same router over an
// in-memory database.
type Deps struct {
	Tokens  *token.Service
	Users   *store.UserStore
	Menu    *store.MenuStore
	Reviews *store.ReviewStore
	Carts   *store.CartStore
}

func SetupRoutes(r *gin.Engine, d *Deps) {
	tokenHandler := handlers.NewTokenHandler(d.Tokens)
	userHandler := handlers.NewUserHandler(d.Users)
	menuHandler := handlers.NewMenuHandler(d.Menu)
	reviewHandler := handlers.NewReviewHandler(d.Reviews)
	cartHandler := handlers.NewCartHandler(d.Carts)

	authRequired := middleware.AuthRequired(d.Tokens)
	adminRequired := middleware.AdminRequired(d.Users)

	// ── Token issuing ──────────────────────────────────────────────
	r.POST("/jwt", tokenHandler.Issue)

	// ── Users ──────────────────────────────────────────────────────
	r.GET("/users", authRequired, adminRequired, userHandler.List)
	r.GET("/users/admin/:email", authRequired, userHandler.AdminStatus)
	r.POST("/users", userHandler.Create)
	r.PATCH("/users/admin/:id", authRequired, adminRequired, userHandler.Promote)
	r.DELETE("/users/:id", authRequired, adminRequired, userHandler.Delete)

	// ── Menu ───────────────────────────────────────────────────────
	r.GET("/menu", menuHandler.List)
	r.GET("/menu/:id", menuHandler.Get)
	r.POST("/menu", authRequired, adminRequired, menuHandler.Create)
	r.DELETE("/menu/:id", authRequired, adminRequired, menuHandler.Delete)

	// ── Reviews ────────────────────────────────────────────────────
	r.GET("/reviews", reviewHandler.List)

	// ── Carts ──────────────────────────────────────────────────────
	r.GET("/carts", cartHandler.List)
	r.POST("/carts", cartHandler.Create)
	r.DELETE("/carts/:id", cartHandler.Delete)
}
