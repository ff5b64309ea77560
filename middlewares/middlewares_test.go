package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bistro-boss-server/constants"
	"bistro-boss-server/dto"
	"bistro-boss-server/models"
	"bistro-boss-server/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUserService struct {
	roles map[string]string // email -> role
	err   error             // returned by FindByEmail when set
}

func (f *fakeUserService) Register(ctx context.Context, input dto.RegisterUserInput) (interface{}, error) {
	return nil, nil
}

func (f *fakeUserService) FindAll(ctx context.Context) ([]models.User, error) {
	return nil, nil
}

func (f *fakeUserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	role, ok := f.roles[email]
	if !ok {
		return nil, nil
	}
	return &models.User{Email: email, Role: role}, nil
}

func (f *fakeUserService) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return 0, nil
}

func (f *fakeUserService) PromoteToAdmin(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return 0, nil
}

func (f *fakeUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	return f.roles[email] == constants.RoleAdmin, nil
}

func issueToken(t *testing.T, authService services.IAuthService, email string) string {
	t.Helper()
	token, err := authService.IssueToken(map[string]interface{}{"email": email})
	require.NoError(t, err)
	return *token
}

func setupTestRouter(userService services.IUserService) (*gin.Engine, services.IAuthService) {
	gin.SetMode(gin.TestMode)
	authService := services.NewAuthService()

	r := gin.New()
	r.GET("/protected", AuthMiddleware(authService), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"email": ctx.GetString("email")})
	})
	r.GET("/admin", AuthMiddleware(authService), RequireRoles(userService, constants.RoleAdmin), func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})
	return r, authService
}

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	r, authService := setupTestRouter(&fakeUserService{})

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc123", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized},
		{"valid token", "Bearer " + issueToken(t, authService, "user@example.com"), http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestAuthMiddlewareSetsEmail(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	r, authService := setupTestRouter(&fakeUserService{})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, authService, "user@example.com"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"email": "user@example.com"}`, w.Body.String())
}

func TestRequireRoles(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	userService := &fakeUserService{roles: map[string]string{
		"admin@example.com":   constants.RoleAdmin,
		"regular@example.com": constants.RoleUser,
	}}
	r, authService := setupTestRouter(userService)

	tests := []struct {
		name       string
		email      string
		wantStatus int
	}{
		{"admin allowed", "admin@example.com", http.StatusOK},
		{"regular user forbidden", "regular@example.com", http.StatusForbidden},
		{"unknown principal forbidden", "ghost@example.com", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			req.Header.Set("Authorization", "Bearer "+issueToken(t, authService, tt.email))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

// A failed principal lookup is an unexpected error, not a role decision.
func TestRequireRolesLookupFailure(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	r, authService := setupTestRouter(&fakeUserService{err: errors.New("connection reset")})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, authService, "admin@example.com"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRequireRolesWithoutToken(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	r, _ := setupTestRouter(&fakeUserService{})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
