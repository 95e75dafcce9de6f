package auth

import (
	"encoding/json"
	"time"

	"github.com/mockmate/mockmate-api/internal/domain/entities"
	"github.com/mockmate/mockmate-api/internal/usecase/auth"
)

// UserResponse represents user information in responses
type UserResponse struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	FullName        string    `json:"full_name"`
	Skills          []string  `json:"skills"`
	ExperienceLevel *string   `json:"experience_level,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// AuthResponse represents the authentication response with tokens
type AuthResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	TokenType    string        `json:"token_type"`
	ExpiresIn    int64         `json:"expires_in"` // seconds
	User         *UserResponse `json:"user"`
}

// NewUserResponse maps a user entity to its response shape
func NewUserResponse(user *entities.User) *UserResponse {
	skills := []string{}
	if len(user.Skills) > 0 {
		// Stored as a jsonb array; a decode failure leaves the empty slice.
		_ = json.Unmarshal(user.Skills, &skills)
	}

	return &UserResponse{
		ID:              user.ID.String(),
		Email:           user.Email,
		FullName:        user.FullName,
		Skills:          skills,
		ExperienceLevel: user.ExperienceLevel,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}
}

// NewAuthResponse maps an auth result to its response shape
func NewAuthResponse(result *auth.AuthResult) *AuthResponse {
	return &AuthResponse{
		AccessToken:  result.Tokens.AccessToken,
		RefreshToken: result.Tokens.RefreshToken,
		TokenType:    result.Tokens.TokenType,
		ExpiresIn:    result.Tokens.ExpiresIn,
		User:         NewUserResponse(result.User),
	}
}
