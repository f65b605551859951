package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bistro-api/config"
	"bistro-api/models"
	"bistro-api/store"
	"bistro-api/token"

	"github.com/gin-gonic/gin"
)

func setupGate(t *testing.T) (*gin.Engine, *token.Service, *store.UserStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := config.InitDB(":memory:")
	if err != nil {
		t.Fatalf("opening in-memory db: %v", err)
	}
	tokens := token.NewService([]byte("test_secret"))
	users := store.NewUserStore(db)

	r := gin.New()
	r.GET("/me", AuthRequired(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": GetEmail(c)})
	})
	r.GET("/protected", AuthRequired(tokens), AdminRequired(users), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r, tokens, users
}

func get(r *gin.Engine, path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequired_MissingHeader(t *testing.T) {
	r, _, _ := setupGate(t)

	if w := get(r, "/me", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("no header: status = %d, want 401", w.Code)
	}

	// Wrong scheme is as bad as no header
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Basic abc123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("basic scheme: status = %d, want 401", w.Code)
	}
}

func TestAuthRequired_InvalidToken(t *testing.T) {
	r, _, _ := setupGate(t)

	if w := get(r, "/me", "not.a.jwt"); w.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: status = %d, want 401", w.Code)
	}
}

func TestAuthRequired_InjectsEmail(t *testing.T) {
	r, tokens, _ := setupGate(t)

	tok, err := tokens.Issue("a@x.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	w := get(r, "/me", tok)
	if w.Code != http.StatusOK {
		t.Fatalf("valid token: status = %d, want 200", w.Code)
	}
	if body := w.Body.String(); body != `{"email":"a@x.com"}` {
		t.Errorf("body = %s, want injected email", body)
	}
}

func TestAdminRequired(t *testing.T) {
	r, tokens, users := setupGate(t)

	if err := users.Create(&models.User{Email: "user@x.com"}); err != nil {
		t.Fatalf("creating user: %v", err)
	}
	if err := users.Create(&models.User{Email: "admin@x.com", Role: models.RoleAdmin}); err != nil {
		t.Fatalf("creating admin: %v", err)
	}

	tests := []struct {
		name  string
		email string
		want  int
	}{
		{"unknown user", "ghost@x.com", http.StatusForbidden},
		{"regular user", "user@x.com", http.StatusForbidden},
		{"admin", "admin@x.com", http.StatusOK},
	}
	for _, tt := range tests {
		tok, err := tokens.Issue(tt.email)
		if err != nil {
			t.Fatalf("Issue() error = %v", err)
		}
		if w := get(r, "/protected", tok); w.Code != tt.want {
			t.Errorf("%s: status = %d, want %d", tt.name, w.Code, tt.want)
		}
	}
}

// A promotion must be visible on the very next request: role lives in
// the database, not in the token.
func TestAdminRequired_LiveRoleLookup(t *testing.T) {
	r, tokens, users := setupGate(t)

	u := models.User{Email: "late@x.com"}
	if err := users.Create(&u); err != nil {
		t.Fatalf("creating user: %v", err)
	}
	tok, err := tokens.Issue(u.Email)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if w := get(r, "/protected", tok); w.Code != http.StatusForbidden {
		t.Fatalf("before promotion: status = %d, want 403", w.Code)
	}
	if _, err := users.PromoteToAdmin(u.ID); err != nil {
		t.Fatalf("PromoteToAdmin() error = %v", err)
	}
	if w := get(r, "/protected", tok); w.Code != http.StatusOK {
		t.Errorf("after promotion, same token: status = %d, want 200", w.Code)
	}
}
