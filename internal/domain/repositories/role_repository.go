package repositories

import (
	"context"

	"github.com/google/uuid"

	"creator-kita.backend/internal/domain/entities"
)

// RoleRepository defines role data operations. Membership lives on
// users.role_id; SyncAssignedUsers applies a membership diff atomically.
type RoleRepository interface {
	Create(ctx context.Context, role *entities.Role) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Role, error)
	GetByName(ctx context.Context, name string) (*entities.Role, error)
	List(ctx context.Context) ([]*entities.Role, error)
	Update(ctx context.Context, role *entities.Role) error
	SyncAssignedUsers(ctx context.Context, roleID uuid.UUID, userIDs []uuid.UUID) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	MemberIDs(ctx context.Context, roleID uuid.UUID) ([]uuid.UUID, error)
	PermissionsForUser(ctx context.Context, userID uuid.UUID) (string, []entities.Permission, error)
}
