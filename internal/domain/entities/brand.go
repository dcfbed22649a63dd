package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Brand represents a brand account attached to a user.
type Brand struct {
	ID           uuid.UUID   `json:"id"`
	UserID       uuid.UUID   `json:"userId"`
	CompanyName  string      `json:"companyName"`
	Website      null.String `json:"website,omitempty"`
	ContactEmail string      `json:"contactEmail"`
	Status       UserStatus  `json:"status"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// BrandSignupInput represents input for brand signup
type BrandSignupInput struct {
	CompanyName  string `json:"companyName" binding:"required,min=2,max=150"`
	ContactEmail string `json:"contactEmail" binding:"required,email"`
	Username     string `json:"username" binding:"required,min=3,max=50"`
	PhoneNumber  string `json:"phoneNumber" binding:"required,min=7,max=20"`
	Password     string `json:"password" binding:"required,min=8"`
	Website      string `json:"website"`
}

// UpdateBrandInput represents input for updating a brand
type UpdateBrandInput struct {
	CompanyName *string `json:"companyName"`
	Website     *string `json:"website"`
}
