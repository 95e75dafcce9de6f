package auth

import (
	"context"
	"encoding/json"
	stdErrors "errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"

	apperrors "github.com/mockmate/mockmate-api/errors"
	"github.com/mockmate/mockmate-api/internal/domain/entities"
	"github.com/mockmate/mockmate-api/internal/domain/repositories"
	"github.com/mockmate/mockmate-api/pkg/jwt"
)

// UserCache caches the "this user id exists and is active" fact so identity
// resolution does not hit the database on every request. A nil cache is
// valid; lookups then always fall through to the repository.
type UserCache interface {
	IsActive(ctx context.Context, userID uuid.UUID) (active bool, ok bool)
	SetActive(ctx context.Context, userID uuid.UUID, active bool)
}

// TokenPair carries the issued JWT pair
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

// AuthResult represents the authentication response
type AuthResult struct {
	User   *entities.User `json:"user"`
	Tokens TokenPair      `json:"tokens"`
}

// ProfileUpdate holds the mutable profile fields; nil means "leave unchanged"
type ProfileUpdate struct {
	FullName        *string
	Skills          []string
	ExperienceLevel *string
}

// Service handles registration, login and identity resolution
type Service struct {
	userRepo   repositories.UserRepository
	jwtManager *jwt.Manager
	cache      UserCache
	logger     *zap.Logger
}

// NewService creates a new auth service
func NewService(userRepo repositories.UserRepository, jwtManager *jwt.Manager, cache UserCache, logger *zap.Logger) *Service {
	return &Service{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		cache:      cache,
		logger:     logger,
	}
}

// Register creates a new user account and logs it in
func (s *Service) Register(ctx context.Context, email, fullName, password string) (*AuthResult, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.ErrInternal(err)
	}

	user := entities.NewUser(email, fullName, string(hash))
	if err := user.Validate(); err != nil {
		return nil, apperrors.ErrInvalidArgument(err.Error())
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if stdErrors.Is(err, entities.ErrUserAlreadyExists) {
			return nil, apperrors.ErrUserAlreadyExists(email)
		}
		return nil, apperrors.ErrDBQueryFailed(err)
	}

	if s.logger != nil {
		s.logger.Info("auth.registered",
			zap.String("user_id", user.ID.String()),
			zap.String("email", user.Email),
		)
	}
	return s.issueTokens(user)
}

// Login verifies credentials and issues a token pair. Unknown email and
// wrong password produce the same error so callers cannot probe accounts.
func (s *Service) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if stdErrors.Is(err, entities.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials()
		}
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	if !user.IsActive {
		return nil, apperrors.ErrInvalidCredentials()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials()
	}
	return s.issueTokens(user)
}

// Refresh exchanges a valid refresh token for a fresh token pair
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidRefreshToken()
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if stdErrors.Is(err, entities.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidRefreshToken()
		}
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	if !user.IsActive {
		return nil, apperrors.ErrInvalidRefreshToken()
	}
	return s.issueTokens(user)
}

// ResolveIdentity maps a bearer token to the identity it acts as. It never
// fails: a missing, malformed, expired or unknown token yields the guest
// identity, so every endpoint stays usable without an account.
func (s *Service) ResolveIdentity(ctx context.Context, token string) entities.Identity {
	if token == "" {
		return entities.GuestIdentity()
	}

	claims, err := s.jwtManager.ValidateAccessToken(token)
	if err != nil {
		return entities.GuestIdentity()
	}

	if s.cache != nil {
		if active, ok := s.cache.IsActive(ctx, claims.UserID); ok {
			if !active {
				return entities.GuestIdentity()
			}
			return entities.NewUserIdentity(claims.UserID.String())
		}
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return entities.GuestIdentity()
	}
	if s.cache != nil {
		s.cache.SetActive(ctx, user.ID, user.IsActive)
	}
	if !user.IsActive {
		return entities.GuestIdentity()
	}
	return user.Identity()
}

// GetMe returns the profile of the authenticated user
func (s *Service) GetMe(ctx context.Context, ident entities.Identity) (*entities.User, error) {
	user, err := s.requireUser(ctx, ident)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfile applies partial profile changes to the authenticated user
func (s *Service) UpdateProfile(ctx context.Context, ident entities.Identity, update ProfileUpdate) (*entities.User, error) {
	user, err := s.requireUser(ctx, ident)
	if err != nil {
		return nil, err
	}

	if update.FullName != nil {
		user.FullName = *update.FullName
	}
	if update.Skills != nil {
		raw, err := json.Marshal(update.Skills)
		if err != nil {
			return nil, apperrors.ErrInternal(err)
		}
		user.Skills = datatypes.JSON(raw)
	}
	if update.ExperienceLevel != nil {
		user.ExperienceLevel = update.ExperienceLevel
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	return user, nil
}

func (s *Service) requireUser(ctx context.Context, ident entities.Identity) (*entities.User, error) {
	if ident.IsGuest {
		return nil, apperrors.ErrUnauthenticated()
	}
	userID, err := uuid.Parse(ident.ID)
	if err != nil {
		return nil, apperrors.ErrUnauthenticated()
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if stdErrors.Is(err, entities.ErrUserNotFound) {
			return nil, apperrors.ErrUnauthenticated()
		}
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	return user, nil
}

func (s *Service) issueTokens(user *entities.User) (*AuthResult, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, apperrors.ErrInternal(err)
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, apperrors.ErrInternal(err)
	}

	return &AuthResult{
		User: user,
		Tokens: TokenPair{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			TokenType:    "bearer",
			ExpiresIn:    int64(s.jwtManager.GetAccessExpiry().Seconds()),
		},
	}, nil
}
