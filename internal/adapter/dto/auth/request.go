package auth

// RegisterRequest represents the request to create an account
type RegisterRequest struct {
	Email           string   `json:"email" validate:"required,email"`
	Password        string   `json:"password" validate:"required,min=8,max=128"`
	FullName        string   `json:"full_name" validate:"required,min=1,max=255"`
	Skills          []string `json:"skills,omitempty" validate:"omitempty,dive,min=1,max=100"`
	ExperienceLevel *string  `json:"experience_level,omitempty" validate:"omitempty,max=50"`
}

// LoginRequest represents the request to log in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest represents the request to refresh access token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// UpdateProfileRequest represents the request to update user profile
type UpdateProfileRequest struct {
	FullName        *string  `json:"full_name,omitempty" validate:"omitempty,min=1,max=255"`
	Skills          []string `json:"skills,omitempty" validate:"omitempty,dive,min=1,max=100"`
	ExperienceLevel *string  `json:"experience_level,omitempty" validate:"omitempty,max=50"`
}
