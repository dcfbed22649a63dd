package repositories

import (
	"context"

	"github.com/google/uuid"

	"creator-kita.backend/internal/domain/entities"
)

// CreatorRepository defines creator data operations. NextCreatorID must
// be safe under concurrent signups.
type CreatorRepository interface {
	Create(ctx context.Context, creator *entities.Creator) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Creator, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Creator, error)
	Update(ctx context.Context, creator *entities.Creator) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.UserStatus) error
	List(ctx context.Context, status entities.UserStatus, page, limit int) ([]*entities.Creator, int64, error)
	NextCreatorID(ctx context.Context) (string, error)
}

// BrandRepository defines brand data operations
type BrandRepository interface {
	Create(ctx context.Context, brand *entities.Brand) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Brand, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Brand, error)
	Update(ctx context.Context, brand *entities.Brand) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.UserStatus) error
	List(ctx context.Context, status entities.UserStatus, page, limit int) ([]*entities.Brand, int64, error)
}
