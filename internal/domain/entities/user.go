package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// User represents a registered user in the system
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email        string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName     string    `json:"full_name" gorm:"type:varchar(255);not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;type:text;not null"` // Never expose in JSON

	// Candidate profile
	Skills          datatypes.JSON `json:"skills" gorm:"type:jsonb;default:'[]'"`
	ExperienceLevel *string        `json:"experience_level,omitempty" gorm:"type:varchar(50)"`

	IsActive bool `json:"is_active" gorm:"default:true;not null"`

	// Timestamps
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user with default values
func NewUser(email, fullName, passwordHash string) *User {
	now := time.Now()
	return &User{
		ID:           uuid.New(),
		Email:        email,
		FullName:     fullName,
		PasswordHash: passwordHash,
		Skills:       datatypes.JSON([]byte("[]")),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Identity returns the owner identity this user acts as
func (u *User) Identity() Identity {
	return NewUserIdentity(u.ID.String())
}

// Validate validates user data
func (u *User) Validate() error {
	if u.Email == "" {
		return ErrInvalidEmail
	}
	if u.PasswordHash == "" {
		return ErrInvalidPassword
	}
	return nil
}
