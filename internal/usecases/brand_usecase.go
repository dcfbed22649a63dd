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

// UserTypeBrand is the user type name assigned to brand signups.
const UserTypeBrand = "Brand"

// BrandUsecase handles brand account business logic
type BrandUsecase struct {
	brandRepo    repositories.BrandRepository
	userRepo     repositories.UserRepository
	userTypeRepo repositories.UserTypeRepository
	authUsecase  *AuthUsecase
}

// NewBrandUsecase creates a new brand usecase
func NewBrandUsecase(
	brandRepo repositories.BrandRepository,
	userRepo repositories.UserRepository,
	userTypeRepo repositories.UserTypeRepository,
	authUsecase *AuthUsecase,
) *BrandUsecase {
	return &BrandUsecase{
		brandRepo:    brandRepo,
		userRepo:     userRepo,
		userTypeRepo: userTypeRepo,
		authUsecase:  authUsecase,
	}
}

// Signup registers a brand account: a user record plus a brand profile
func (u *BrandUsecase) Signup(ctx context.Context, input *entities.BrandSignupInput) (*entities.Brand, error) {
	if err := u.authUsecase.CheckSignupUniqueness(ctx, input.ContactEmail, input.Username, input.PhoneNumber); err != nil {
		return nil, err
	}

	userType, err := u.userTypeRepo.GetByName(ctx, UserTypeBrand)
	if err != nil {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entities.User{
		ID:           utils.GenerateUUIDv7(),
		Email:        input.ContactEmail,
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

	brand := &entities.Brand{
		ID:           utils.GenerateUUIDv7(),
		UserID:       user.ID,
		CompanyName:  input.CompanyName,
		ContactEmail: input.ContactEmail,
		Status:       entities.UserStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if input.Website != "" {
		brand.Website = null.StringFrom(input.Website)
	}
	if err := u.brandRepo.Create(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

// GetByID gets a brand by ID
func (u *BrandUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.Brand, error) {
	return u.brandRepo.GetByID(ctx, id)
}

// GetByUserID gets the brand owned by a user
func (u *BrandUsecase) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Brand, error) {
	return u.brandRepo.GetByUserID(ctx, userID)
}

// Update applies a partial brand update
func (u *BrandUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateBrandInput) (*entities.Brand, error) {
	brand, err := u.brandRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.CompanyName != nil {
		brand.CompanyName = *input.CompanyName
	}
	if input.Website != nil {
		brand.Website = optionalString(*input.Website)
	}

	if err := u.brandRepo.Update(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

// Approve activates a pending brand and its user account
func (u *BrandUsecase) Approve(ctx context.Context, id uuid.UUID) error {
	return u.transitionStatus(ctx, id, entities.UserStatusActive)
}

// Reject marks a pending brand as rejected
func (u *BrandUsecase) Reject(ctx context.Context, id uuid.UUID) error {
	return u.transitionStatus(ctx, id, entities.UserStatusRejected)
}

// Deactivate suspends an active brand
func (u *BrandUsecase) Deactivate(ctx context.Context, id uuid.UUID) error {
	return u.transitionStatus(ctx, id, entities.UserStatusInactive)
}

func (u *BrandUsecase) transitionStatus(ctx context.Context, id uuid.UUID, target entities.UserStatus) error {
	brand, err := u.brandRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !validAccountTransition(brand.Status, target) {
		return domainerrors.InvalidTransition("Cannot change status from " + string(brand.Status) + " to " + string(target) + ".")
	}

	if err := u.brandRepo.UpdateStatus(ctx, id, target); err != nil {
		return err
	}
	return u.userRepo.UpdateStatus(ctx, brand.UserID, target)
}

// SoftDelete marks the brand and its user account as deleted
func (u *BrandUsecase) SoftDelete(ctx context.Context, id uuid.UUID) error {
	brand, err := u.brandRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.brandRepo.UpdateStatus(ctx, id, entities.UserStatusDeleted); err != nil {
		return err
	}
	return u.userRepo.SoftDelete(ctx, brand.UserID)
}

// List lists brands with optional status filter and pagination
func (u *BrandUsecase) List(ctx context.Context, status entities.UserStatus, page, limit int) ([]*entities.Brand, int64, error) {
	if status != "" && !validUserStatus(status) {
		return nil, 0, domainerrors.BadRequest("Unknown status filter.")
	}
	return u.brandRepo.List(ctx, status, page, limit)
}
