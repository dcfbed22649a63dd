package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserStatus represents the account lifecycle status
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
	UserStatusPending  UserStatus = "pending"
	UserStatusRejected UserStatus = "rejected"
	UserStatusDeleted  UserStatus = "deleted"
)

// User represents an identity record
type User struct {
	ID           uuid.UUID   `json:"id"`
	Email        string      `json:"email"`
	Username     string      `json:"username"`
	PhoneNumber  string      `json:"phoneNumber"`
	PasswordHash string      `json:"-"`
	UserTypeID   uuid.UUID   `json:"userTypeId"`
	RoleID       null.String `json:"roleId,omitempty"`
	Status       UserStatus  `json:"status"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// RegisterInput represents input for registering a platform user
type RegisterInput struct {
	Email       string `json:"email" binding:"required,email"`
	Username    string `json:"username" binding:"required,min=3,max=50"`
	PhoneNumber string `json:"phoneNumber" binding:"required,min=7,max=20"`
	Password    string `json:"password" binding:"required,min=8"`
	UserType    string `json:"userType" binding:"required"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	UseSession bool   `json:"useSession"` // If true, store tokens in Redis and return SessionID
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken  string `json:"accessToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
	SessionID    string `json:"sessionId,omitempty"`
	User         *User  `json:"user"`
}

// ChangePasswordInput represents input for changing user password.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" binding:"required,min=8"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// Principal is the authenticated caller passed explicitly into usecases.
// It carries the resolved permission set so authorization checks never
// reach back into request-global state.
type Principal struct {
	UserID      uuid.UUID    `json:"userId"`
	Role        string       `json:"role"`
	Permissions []Permission `json:"permissions"`
}

// HasPermission reports whether the principal holds the given
// resource/action pair. Action "All" matches any requested action.
func (p *Principal) HasPermission(resource, action string) bool {
	for _, perm := range p.Permissions {
		if perm.Resource != resource {
			continue
		}
		if perm.Action == action || perm.Action == PermissionActionAll {
			return true
		}
	}
	return false
}

// kycViewResources are the resources whose View/All grants access to any
// user's KYC documents.
var kycViewResources = []string{
	"Creator",
	"Creator Management",
	"Account Management",
	"Brand Management",
}

// CanViewAnyKYC reports whether the principal may download KYC documents
// it does not own.
func (p *Principal) CanViewAnyKYC() bool {
	for _, resource := range kycViewResources {
		if p.HasPermission(resource, PermissionActionView) {
			return true
		}
	}
	return false
}
