package usecases

import (
	"context"

	"github.com/google/uuid"

	"creator-kita.backend/internal/domain/entities"
	domainerrors "creator-kita.backend/internal/domain/errors"
	"creator-kita.backend/internal/domain/repositories"
)

// PlatformStats summarizes account and verification queue counts for
// the admin dashboard.
type PlatformStats struct {
	TotalUsers      int64 `json:"totalUsers"`
	PendingCreators int64 `json:"pendingCreators"`
	ActiveCreators  int64 `json:"activeCreators"`
	PendingBrands   int64 `json:"pendingBrands"`
	ActiveBrands    int64 `json:"activeBrands"`
	PendingKYCDocs  int64 `json:"pendingKycDocuments"`
}

// UserUsecase handles account management business logic
type UserUsecase struct {
	userRepo     repositories.UserRepository
	userTypeRepo repositories.UserTypeRepository
	creatorRepo  repositories.CreatorRepository
	brandRepo    repositories.BrandRepository
	kycRepo      repositories.KYCDocumentRepository
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(
	userRepo repositories.UserRepository,
	userTypeRepo repositories.UserTypeRepository,
	creatorRepo repositories.CreatorRepository,
	brandRepo repositories.BrandRepository,
	kycRepo repositories.KYCDocumentRepository,
) *UserUsecase {
	return &UserUsecase{
		userRepo:     userRepo,
		userTypeRepo: userTypeRepo,
		creatorRepo:  creatorRepo,
		brandRepo:    brandRepo,
		kycRepo:      kycRepo,
	}
}

// List lists users with optional search and pagination
func (u *UserUsecase) List(ctx context.Context, search string, page, limit int) ([]*entities.User, int64, error) {
	return u.userRepo.List(ctx, search, page, limit)
}

// GetByID gets a user by ID
func (u *UserUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

// Activate re-enables a deactivated account
func (u *UserUsecase) Activate(ctx context.Context, id uuid.UUID) error {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user.Status == entities.UserStatusDeleted {
		return domainerrors.InvalidTransition("Deleted accounts cannot be reactivated.")
	}
	return u.userRepo.UpdateStatus(ctx, id, entities.UserStatusActive)
}

// Deactivate suspends an account
func (u *UserUsecase) Deactivate(ctx context.Context, id uuid.UUID) error {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user.Status == entities.UserStatusDeleted {
		return domainerrors.InvalidTransition("Deleted accounts cannot be deactivated.")
	}
	return u.userRepo.UpdateStatus(ctx, id, entities.UserStatusInactive)
}

// SoftDelete marks an account as deleted. The row and its uniqueness
// claims on email, username and phone are retained.
func (u *UserUsecase) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return u.userRepo.SoftDelete(ctx, id)
}

// ListUserTypes lists the available user types
func (u *UserUsecase) ListUserTypes(ctx context.Context) ([]*entities.UserType, error) {
	return u.userTypeRepo.List(ctx)
}

// Stats computes dashboard counts
func (u *UserUsecase) Stats(ctx context.Context) (*PlatformStats, error) {
	stats := &PlatformStats{}

	_, totalUsers, err := u.userRepo.List(ctx, "", 1, 1)
	if err != nil {
		return nil, err
	}
	stats.TotalUsers = totalUsers

	_, pendingCreators, err := u.creatorRepo.List(ctx, entities.UserStatusPending, 1, 1)
	if err != nil {
		return nil, err
	}
	stats.PendingCreators = pendingCreators

	_, activeCreators, err := u.creatorRepo.List(ctx, entities.UserStatusActive, 1, 1)
	if err != nil {
		return nil, err
	}
	stats.ActiveCreators = activeCreators

	_, pendingBrands, err := u.brandRepo.List(ctx, entities.UserStatusPending, 1, 1)
	if err != nil {
		return nil, err
	}
	stats.PendingBrands = pendingBrands

	_, activeBrands, err := u.brandRepo.List(ctx, entities.UserStatusActive, 1, 1)
	if err != nil {
		return nil, err
	}
	stats.ActiveBrands = activeBrands

	_, pendingDocs, err := u.kycRepo.ListForVerification(ctx, entities.DocumentFilter{
		Status: entities.DocumentStatusPending, Page: 1, Limit: 1,
	})
	if err != nil {
		return nil, err
	}
	stats.PendingKYCDocs = pendingDocs

	return stats, nil
}
