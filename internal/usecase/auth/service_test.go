package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/mockmate/mockmate-api/errors"
	"github.com/mockmate/mockmate-api/internal/domain/entities"
	"github.com/mockmate/mockmate-api/pkg/jwt"
)

type memoryUserRepo struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]*entities.User
	byEmail map[string]*entities.User
	finds   int
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{
		byID:    make(map[uuid.UUID]*entities.User),
		byEmail: make(map[string]*entities.User),
	}
}

func (r *memoryUserRepo) Create(_ context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEmail[user.Email]; exists {
		return entities.ErrUserAlreadyExists
	}
	copied := *user
	r.byID[user.ID] = &copied
	r.byEmail[user.Email] = &copied
	return nil
}

func (r *memoryUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finds++
	user, ok := r.byID[id]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *memoryUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.byEmail[email]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *memoryUserRepo) Update(_ context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *user
	r.byID[user.ID] = &copied
	r.byEmail[user.Email] = &copied
	return nil
}

type memoryUserCache struct {
	mu      sync.Mutex
	entries map[uuid.UUID]bool
}

func newMemoryUserCache() *memoryUserCache {
	return &memoryUserCache{entries: make(map[uuid.UUID]bool)}
}

func (c *memoryUserCache) IsActive(_ context.Context, userID uuid.UUID) (bool, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	active, ok := c.entries[userID]
	return active, ok
}

func (c *memoryUserCache) SetActive(_ context.Context, userID uuid.UUID, active bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[userID] = active
}

func newTestService(cache UserCache) (*Service, *memoryUserRepo) {
	repo := newMemoryUserRepo()
	manager := jwt.NewManager("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
	return NewService(repo, manager, cache, nil), repo
}

func requireAppCode(t *testing.T, err error, want apperrors.ErrorCode) {
	t.Helper()
	var appErr apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, want, appErr.Code)
}

func TestRegister_CreatesUserAndIssuesTokens(t *testing.T) {
	service, _ := newTestService(nil)

	result, err := service.Register(context.Background(), "alice@example.com", "Alice", "s3cret-pass")
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", result.User.Email)
	assert.NotEqual(t, "s3cret-pass", result.User.PasswordHash, "password must be stored hashed")
	assert.NotEmpty(t, result.Tokens.AccessToken)
	assert.NotEmpty(t, result.Tokens.RefreshToken)
	assert.Equal(t, "bearer", result.Tokens.TokenType)
	assert.Equal(t, int64(900), result.Tokens.ExpiresIn)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	service, _ := newTestService(nil)

	_, err := service.Register(context.Background(), "alice@example.com", "Alice", "s3cret-pass")
	require.NoError(t, err)

	_, err = service.Register(context.Background(), "alice@example.com", "Alice Again", "other-pass")
	requireAppCode(t, err, apperrors.ErrorCode_AUTH_USER_ALREADY_EXISTS)
}

func TestLogin_RoundTrip(t *testing.T) {
	service, _ := newTestService(nil)

	_, err := service.Register(context.Background(), "alice@example.com", "Alice", "s3cret-pass")
	require.NoError(t, err)

	result, err := service.Login(context.Background(), "alice@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", result.User.Email)
	assert.NotEmpty(t, result.Tokens.AccessToken)
}

func TestLogin_WrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	service, _ := newTestService(nil)

	_, err := service.Register(context.Background(), "alice@example.com", "Alice", "s3cret-pass")
	require.NoError(t, err)

	_, wrongPass := service.Login(context.Background(), "alice@example.com", "nope")
	_, unknown := service.Login(context.Background(), "nobody@example.com", "nope")

	requireAppCode(t, wrongPass, apperrors.ErrorCode_AUTH_INVALID_CREDENTIALS)
	requireAppCode(t, unknown, apperrors.ErrorCode_AUTH_INVALID_CREDENTIALS)
	assert.Equal(t, wrongPass.Error(), unknown.Error())
}

func TestRefresh_IssuesNewPair(t *testing.T) {
	service, _ := newTestService(nil)

	registered, err := service.Register(context.Background(), "alice@example.com", "Alice", "s3cret-pass")
	require.NoError(t, err)

	refreshed, err := service.Refresh(context.Background(), registered.Tokens.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, refreshed.User.ID)
	assert.NotEmpty(t, refreshed.Tokens.AccessToken)
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	service, _ := newTestService(nil)

	registered, err := service.Register(context.Background(), "alice@example.com", "Alice", "s3cret-pass")
	require.NoError(t, err)

	// An access token is signed with a different secret, so it must not be
	// accepted on the refresh path.
	_, err = service.Refresh(context.Background(), registered.Tokens.AccessToken)
	requireAppCode(t, err, apperrors.ErrorCode_AUTH_INVALID_REFRESH_TOKEN)
}

func TestResolveIdentity_ValidToken(t *testing.T) {
	service, _ := newTestService(nil)

	registered, err := service.Register(context.Background(), "alice@example.com", "Alice", "s3cret-pass")
	require.NoError(t, err)

	ident := service.ResolveIdentity(context.Background(), registered.Tokens.AccessToken)
	assert.False(t, ident.IsGuest)
	assert.Equal(t, registered.User.ID.String(), ident.ID)
}

func TestResolveIdentity_FallsBackToGuest(t *testing.T) {
	service, repo := newTestService(nil)

	for name, token := range map[string]string{
		"empty":     "",
		"garbage":   "not-a-jwt",
		"tampered":  "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiJ4In0.bad",
		"wrong key": mustSignForeignToken(t),
	} {
		ident := service.ResolveIdentity(context.Background(), token)
		assert.True(t, ident.IsGuest, "token %q must resolve to guest", name)
		assert.Equal(t, entities.GuestID, ident.ID)
	}

	// A structurally valid token for a deleted user also degrades to guest.
	registered, err := service.Register(context.Background(), "alice@example.com", "Alice", "s3cret-pass")
	require.NoError(t, err)
	repo.mu.Lock()
	delete(repo.byID, registered.User.ID)
	repo.mu.Unlock()

	ident := service.ResolveIdentity(context.Background(), registered.Tokens.AccessToken)
	assert.True(t, ident.IsGuest)
}

func mustSignForeignToken(t *testing.T) string {
	t.Helper()
	foreign := jwt.NewManager("other-access", "other-refresh", time.Minute, time.Minute)
	token, err := foreign.GenerateAccessToken(uuid.New(), "x@example.com")
	require.NoError(t, err)
	return token
}

func TestResolveIdentity_UsesCache(t *testing.T) {
	cache := newMemoryUserCache()
	service, repo := newTestService(cache)

	registered, err := service.Register(context.Background(), "alice@example.com", "Alice", "s3cret-pass")
	require.NoError(t, err)

	service.ResolveIdentity(context.Background(), registered.Tokens.AccessToken)
	findsAfterFirst := repo.finds

	service.ResolveIdentity(context.Background(), registered.Tokens.AccessToken)
	assert.Equal(t, findsAfterFirst, repo.finds, "second resolve must be served from the cache")

	// A cached inactive flag blocks the token without a DB round trip.
	cache.SetActive(context.Background(), registered.User.ID, false)
	ident := service.ResolveIdentity(context.Background(), registered.Tokens.AccessToken)
	assert.True(t, ident.IsGuest)
}

func TestGetMe_GuestIsUnauthenticated(t *testing.T) {
	service, _ := newTestService(nil)

	_, err := service.GetMe(context.Background(), entities.GuestIdentity())
	requireAppCode(t, err, apperrors.ErrorCode_UNAUTHENTICATED)
}

func TestUpdateProfile_PartialUpdate(t *testing.T) {
	service, _ := newTestService(nil)

	registered, err := service.Register(context.Background(), "alice@example.com", "Alice", "s3cret-pass")
	require.NoError(t, err)

	level := "Senior"
	updated, err := service.UpdateProfile(context.Background(), registered.User.Identity(), ProfileUpdate{
		Skills:          []string{"Go", "Postgres"},
		ExperienceLevel: &level,
	})
	require.NoError(t, err)

	assert.Equal(t, "Alice", updated.FullName, "unset fields stay untouched")
	assert.JSONEq(t, `["Go","Postgres"]`, string(updated.Skills))
	require.NotNil(t, updated.ExperienceLevel)
	assert.Equal(t, "Senior", *updated.ExperienceLevel)

	fetched, err := service.GetMe(context.Background(), registered.User.Identity())
	require.NoError(t, err)
	assert.JSONEq(t, `["Go","Postgres"]`, string(fetched.Skills))
}
