package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mockmate/mockmate-api/internal/domain/entities"
	"github.com/mockmate/mockmate-api/internal/usecase/auth"
	"github.com/mockmate/mockmate-api/pkg/jwt"
)

type stubUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entities.User
}

func (r *stubUserRepo) Create(_ context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	return user, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

func (r *stubUserRepo) Update(_ context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

func setup(t *testing.T) (*echo.Echo, *jwt.Manager, *entities.User) {
	t.Helper()

	user := entities.NewUser("alice@example.com", "Alice", "hash")
	repo := &stubUserRepo{users: map[uuid.UUID]*entities.User{user.ID: user}}
	manager := jwt.NewManager("access-secret", "refresh-secret", time.Minute, time.Hour)
	authService := auth.NewService(repo, manager, nil, nil)

	e := echo.New()
	e.Use(EchoIdentity(authService))
	e.GET("/whoami", func(c echo.Context) error {
		return c.JSON(http.StatusOK, GetIdentity(c))
	})
	return e, manager, user
}

func TestEchoIdentity_ValidBearerToken(t *testing.T) {
	e, manager, user := setup(t)

	token, err := manager.GenerateAccessToken(user.ID, user.Email)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), user.ID.String())
}

func TestEchoIdentity_MissingTokenIsGuestNotError(t *testing.T) {
	e, _, _ := setup(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), entities.GuestID)
}

func TestEchoIdentity_MalformedTokenIsGuest(t *testing.T) {
	e, _, _ := setup(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), entities.GuestID)
}

func TestEchoIdentity_CookieFallback(t *testing.T) {
	e, manager, user := setup(t)

	token, err := manager.GenerateAccessToken(user.ID, user.Email)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), user.ID.String())
}

func TestGetIdentity_OutsideMiddlewareIsGuest(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	ident := GetIdentity(c)
	assert.True(t, ident.IsGuest)
}
