package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// SocialMedia holds a creator's social links as named fields. Requests
// carry these top-level; the mapping into this struct is explicit.
type SocialMedia struct {
	Instagram null.String `json:"instagram,omitempty"`
	Facebook  null.String `json:"facebook,omitempty"`
	YouTube   null.String `json:"youtube,omitempty"`
}

// Creator represents a creator profile attached to a user. CreatorID is
// the sequential human-readable ID (CA00001, CA00002, ...).
type Creator struct {
	ID          uuid.UUID   `json:"id"`
	UserID      uuid.UUID   `json:"userId"`
	CreatorID   string      `json:"creatorId"`
	DisplayName string      `json:"displayName"`
	Bio         null.String `json:"bio,omitempty"`
	SocialMedia SocialMedia `json:"socialMedia"`
	Status      UserStatus  `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// CreatorSignupInput represents input for creator signup. Social links
// arrive top-level, matching the public API shape.
type CreatorSignupInput struct {
	DisplayName string `json:"displayName" binding:"required,min=2,max=100"`
	Email       string `json:"email" binding:"required,email"`
	Username    string `json:"username" binding:"required,min=3,max=50"`
	PhoneNumber string `json:"phoneNumber" binding:"required,min=7,max=20"`
	Password    string `json:"password" binding:"required,min=8"`
	Bio         string `json:"bio"`
	Instagram   string `json:"instagram"`
	Facebook    string `json:"facebook"`
	YouTube     string `json:"youtube"`
}

// ToSocialMedia maps the top-level social fields into the nested domain
// struct with named fields.
func (in *CreatorSignupInput) ToSocialMedia() SocialMedia {
	var sm SocialMedia
	if in.Instagram != "" {
		sm.Instagram = null.StringFrom(in.Instagram)
	}
	if in.Facebook != "" {
		sm.Facebook = null.StringFrom(in.Facebook)
	}
	if in.YouTube != "" {
		sm.YouTube = null.StringFrom(in.YouTube)
	}
	return sm
}

// UpdateCreatorInput represents input for updating a creator profile.
type UpdateCreatorInput struct {
	DisplayName *string `json:"displayName"`
	Bio         *string `json:"bio"`
	Instagram   *string `json:"instagram"`
	Facebook    *string `json:"facebook"`
	YouTube     *string `json:"youtube"`
}
