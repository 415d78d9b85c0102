package middlewares

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"foodigo/configs"
	"foodigo/entity"
	"foodigo/utils"
)

const testSecret = "test-secret"

func setupAuthTest(t *testing.T) (userToken, adminToken string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &configs.Config{
		DBDriver: "sqlite",
		DBSource: fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
	}
	configs.ConnectionDB(cfg)
	if err := configs.SetupDatabase(); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	db := configs.DB()
	user := entity.User{Name: "Jane", Email: "jane@example.com", Status: "active"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	admin := entity.Admin{Name: "Root", Email: "root@example.com", Role: "admin"}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("create admin: %v", err)
	}

	userToken, err := utils.GenerateToken(user.ID, "user", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("user token: %v", err)
	}
	adminToken, err = utils.GenerateToken(admin.ID, "admin", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("admin token: %v", err)
	}
	return userToken, adminToken
}

func protectedRouter(roles ...string) *gin.Engine {
	r := gin.New()
	r.GET("/protected", AuthMiddleware(testSecret, roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": utils.CurrentRole(c)})
	})
	return r
}

func doGet(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMissingTokenIs401(t *testing.T) {
	setupAuthTest(t)
	r := protectedRouter()

	if w := doGet(r, ""); w.Code != http.StatusUnauthorized {
		t.Errorf("missing token: status = %d, want 401", w.Code)
	}
}

func TestAuthInvalidTokenIs403(t *testing.T) {
	setupAuthTest(t)
	r := protectedRouter()

	if w := doGet(r, "not-a-jwt"); w.Code != http.StatusForbidden {
		t.Errorf("garbage token: status = %d, want 403", w.Code)
	}

	expired, err := utils.GenerateToken(1, "user", testSecret, -time.Hour)
	if err != nil {
		t.Fatalf("expired token: %v", err)
	}
	if w := doGet(r, expired); w.Code != http.StatusForbidden {
		t.Errorf("expired token: status = %d, want 403", w.Code)
	}
}

func TestAuthRoleFiltering(t *testing.T) {
	userToken, adminToken := setupAuthTest(t)

	adminOnly := protectedRouter("admin")
	if w := doGet(adminOnly, userToken); w.Code != http.StatusForbidden {
		t.Errorf("user on admin route: status = %d, want 403", w.Code)
	}
	if w := doGet(adminOnly, adminToken); w.Code != http.StatusOK {
		t.Errorf("admin on admin route: status = %d, want 200", w.Code)
	}
}

func TestAuthUnresolvedPrincipalIs403(t *testing.T) {
	setupAuthTest(t)
	r := protectedRouter()

	ghost, err := utils.GenerateToken(9999, "user", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("ghost token: %v", err)
	}
	if w := doGet(r, ghost); w.Code != http.StatusForbidden {
		t.Errorf("deleted account: status = %d, want 403", w.Code)
	}
}

func TestOptionalAuthNeverRejects(t *testing.T) {
	userToken, _ := setupAuthTest(t)

	r := gin.New()
	r.GET("/open", OptionalAuth(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": utils.CurrentUserID(c)})
	})

	for _, token := range []string{"", "garbage", userToken} {
		req := httptest.NewRequest(http.MethodGet, "/open", nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("token %q: status = %d, want 200", token, w.Code)
		}
	}
}
