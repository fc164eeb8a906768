package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required,min=2"`
	Phone    string `json:"phone" validate:"omitempty,min=8,max=20"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type UpdateProfileRequest struct {
	FullName  string `json:"full_name" validate:"required,min=2"`
	Phone     string `json:"phone" validate:"omitempty,min=8,max=20"`
	CitizenID string `json:"citizen_id" validate:"omitempty,len=13,numeric"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,url"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserResponse struct {
	ID         uuid.UUID         `json:"id"`
	Email      string            `json:"email"`
	FullName   string            `json:"full_name"`
	Phone      string            `json:"phone,omitempty"`
	CitizenID  string            `json:"citizen_id,omitempty"`
	AvatarURL  string            `json:"avatar_url,omitempty"`
	Role       string            `json:"role"`
	HospitalID *int              `json:"hospital_id,omitempty"`
	Hospital   *HospitalResponse `json:"hospital,omitempty"`
	IsActive   bool              `json:"is_active"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}
