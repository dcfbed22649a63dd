package repositories

import (
	"context"

	"github.com/google/uuid"

	"creator-kita.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByPhoneNumber(ctx context.Context, phoneNumber string) (bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.UserStatus) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, search string, page, limit int) ([]*entities.User, int64, error)
}

// UserTypeRepository defines user type lookups
type UserTypeRepository interface {
	Create(ctx context.Context, userType *entities.UserType) error
	GetByName(ctx context.Context, name string) (*entities.UserType, error)
	List(ctx context.Context) ([]*entities.UserType, error)
}
