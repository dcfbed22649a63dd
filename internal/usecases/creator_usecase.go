package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"creator-kita.backend/internal/domain/entities"
	domainerrors "creator-kita.backend/internal/domain/errors"
	"creator-kita.backend/internal/domain/repositories"
	"creator-kita.backend/pkg/crypto"
	"creator-kita.backend/pkg/utils"
)

// UserTypeCreator is the user type name assigned to creator signups.
const UserTypeCreator = "Creator"

// CreatorUsecase handles creator account business logic
type CreatorUsecase struct {
	creatorRepo  repositories.CreatorRepository
	userRepo     repositories.UserRepository
	userTypeRepo repositories.UserTypeRepository
	authUsecase  *AuthUsecase
}

// NewCreatorUsecase creates a new creator usecase
func NewCreatorUsecase(
	creatorRepo repositories.CreatorRepository,
	userRepo repositories.UserRepository,
	userTypeRepo repositories.UserTypeRepository,
	authUsecase *AuthUsecase,
) *CreatorUsecase {
	return &CreatorUsecase{
		creatorRepo:  creatorRepo,
		userRepo:     userRepo,
		userTypeRepo: userTypeRepo,
		authUsecase:  authUsecase,
	}
}

// Signup registers a creator account: a user record plus a creator
// profile carrying the next sequential creator ID.
func (u *CreatorUsecase) Signup(ctx context.Context, input *entities.CreatorSignupInput) (*entities.Creator, error) {
	if err := u.authUsecase.CheckSignupUniqueness(ctx, input.Email, input.Username, input.PhoneNumber); err != nil {
		return nil, err
	}

	userType, err := u.userTypeRepo.GetByName(ctx, UserTypeCreator)
	if err != nil {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	creatorID, err := u.creatorRepo.NextCreatorID(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entities.User{
		ID:           utils.GenerateUUIDv7(),
		Email:        input.Email,
		Username:     input.Username,
		PhoneNumber:  input.PhoneNumber,
		PasswordHash: passwordHash,
		UserTypeID:   userType.ID,
		Status:       entities.UserStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	creator := &entities.Creator{
		ID:          utils.GenerateUUIDv7(),
		UserID:      user.ID,
		CreatorID:   creatorID,
		DisplayName: input.DisplayName,
		SocialMedia: input.ToSocialMedia(),
		Status:      entities.UserStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.Bio != "" {
		creator.Bio = null.StringFrom(input.Bio)
	}
	if err := u.creatorRepo.Create(ctx, creator); err != nil {
		return nil, err
	}
	return creator, nil
}

// GetByID gets a creator profile by ID
func (u *CreatorUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.Creator, error) {
	return u.creatorRepo.GetByID(ctx, id)
}

// GetByUserID gets the creator profile owned by a user
func (u *CreatorUsecase) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Creator, error) {
	return u.creatorRepo.GetByUserID(ctx, userID)
}

// Update applies a partial profile update. Each social link is mapped
// from its own field; nil fields are untouched.
func (u *CreatorUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateCreatorInput) (*entities.Creator, error) {
	creator, err := u.creatorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.DisplayName != nil {
		creator.DisplayName = *input.DisplayName
	}
	if input.Bio != nil {
		creator.Bio = optionalString(*input.Bio)
	}
	if input.Instagram != nil {
		creator.SocialMedia.Instagram = optionalString(*input.Instagram)
	}
	if input.Facebook != nil {
		creator.SocialMedia.Facebook = optionalString(*input.Facebook)
	}
	if input.YouTube != nil {
		creator.SocialMedia.YouTube = optionalString(*input.YouTube)
	}

	if err := u.creatorRepo.Update(ctx, creator); err != nil {
		return nil, err
	}
	return creator, nil
}

// Approve activates a pending creator and its user account
func (u *CreatorUsecase) Approve(ctx context.Context, id uuid.UUID) error {
	return u.transitionStatus(ctx, id, entities.UserStatusActive)
}

// Reject marks a pending creator as rejected
func (u *CreatorUsecase) Reject(ctx context.Context, id uuid.UUID) error {
	return u.transitionStatus(ctx, id, entities.UserStatusRejected)
}

// Deactivate suspends an active creator
func (u *CreatorUsecase) Deactivate(ctx context.Context, id uuid.UUID) error {
	return u.transitionStatus(ctx, id, entities.UserStatusInactive)
}

func (u *CreatorUsecase) transitionStatus(ctx context.Context, id uuid.UUID, target entities.UserStatus) error {
	creator, err := u.creatorRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !validAccountTransition(creator.Status, target) {
		return domainerrors.InvalidTransition("Cannot change status from " + string(creator.Status) + " to " + string(target) + ".")
	}

	if err := u.creatorRepo.UpdateStatus(ctx, id, target); err != nil {
		return err
	}
	return u.userRepo.UpdateStatus(ctx, creator.UserID, target)
}

// SoftDelete marks the creator and its user account as deleted. Rows
// are retained.
func (u *CreatorUsecase) SoftDelete(ctx context.Context, id uuid.UUID) error {
	creator, err := u.creatorRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.creatorRepo.UpdateStatus(ctx, id, entities.UserStatusDeleted); err != nil {
		return err
	}
	return u.userRepo.SoftDelete(ctx, creator.UserID)
}

// List lists creators with optional status filter and pagination
func (u *CreatorUsecase) List(ctx context.Context, status entities.UserStatus, page, limit int) ([]*entities.Creator, int64, error) {
	if status != "" && !validUserStatus(status) {
		return nil, 0, domainerrors.BadRequest("Unknown status filter.")
	}
	return u.creatorRepo.List(ctx, status, page, limit)
}

// validAccountTransition guards creator/brand lifecycle changes.
// pending accounts can be approved or rejected; active ones suspended;
// suspended ones reactivated.
func validAccountTransition(from, to entities.UserStatus) bool {
	switch from {
	case entities.UserStatusPending:
		return to == entities.UserStatusActive || to == entities.UserStatusRejected
	case entities.UserStatusActive:
		return to == entities.UserStatusInactive
	case entities.UserStatusInactive:
		return to == entities.UserStatusActive
	case entities.UserStatusRejected:
		return to == entities.UserStatusActive
	}
	return false
}

func validUserStatus(s entities.UserStatus) bool {
	switch s {
	case entities.UserStatusActive, entities.UserStatusInactive, entities.UserStatusPending,
		entities.UserStatusRejected, entities.UserStatusDeleted:
		return true
	}
	return false
}

// optionalString treats an empty string as clearing the field.
func optionalString(s string) null.String {
	if s == "" {
		return null.String{}
	}
	return null.StringFrom(s)
}
