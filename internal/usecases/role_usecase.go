package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"creator-kita.backend/internal/domain/entities"
	domainerrors "creator-kita.backend/internal/domain/errors"
	"creator-kita.backend/internal/domain/repositories"
	"creator-kita.backend/pkg/utils"
)

// RoleUsecase handles role and permission business logic
type RoleUsecase struct {
	roleRepo repositories.RoleRepository
	userRepo repositories.UserRepository
}

// NewRoleUsecase creates a new role usecase
func NewRoleUsecase(roleRepo repositories.RoleRepository, userRepo repositories.UserRepository) *RoleUsecase {
	return &RoleUsecase{roleRepo: roleRepo, userRepo: userRepo}
}

// Create creates a role and assigns its initial members
func (u *RoleUsecase) Create(ctx context.Context, input *entities.CreateRoleInput) (*entities.Role, error) {
	_, err := u.roleRepo.GetByName(ctx, input.Name)
	if err == nil {
		return nil, domainerrors.Conflict("A role with this name already exists.")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	memberIDs, err := u.parseMemberIDs(ctx, input.AssignedUsers)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	role := &entities.Role{
		ID:          utils.GenerateUUIDv7(),
		Name:        input.Name,
		Permissions: input.Permissions,
		UserTypes:   input.UserTypes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.Description != "" {
		role.Description = optionalString(input.Description)
	}
	if role.UserTypes == nil {
		role.UserTypes = []string{}
	}

	if err := u.roleRepo.Create(ctx, role); err != nil {
		return nil, err
	}
	if err := u.roleRepo.SyncAssignedUsers(ctx, role.ID, memberIDs); err != nil {
		return nil, err
	}
	role.AssignedUserIDs = memberIDs
	return role, nil
}

// GetByID gets a role with its resolved member list
func (u *RoleUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.Role, error) {
	return u.roleRepo.GetByID(ctx, id)
}

// List lists all roles
func (u *RoleUsecase) List(ctx context.Context) ([]*entities.Role, error) {
	return u.roleRepo.List(ctx)
}

// Update applies a partial role update. When AssignedUsers is non-nil
// the full membership is re-synced to exactly that set.
func (u *RoleUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateRoleInput) (*entities.Role, error) {
	role, err := u.roleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && *input.Name != role.Name {
		_, err := u.roleRepo.GetByName(ctx, *input.Name)
		if err == nil {
			return nil, domainerrors.Conflict("A role with this name already exists.")
		}
		if !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		}
		role.Name = *input.Name
	}
	if input.Description != nil {
		role.Description = optionalString(*input.Description)
	}
	if input.Permissions != nil {
		role.Permissions = input.Permissions
	}
	if input.UserTypes != nil {
		role.UserTypes = input.UserTypes
	}

	if err := u.roleRepo.Update(ctx, role); err != nil {
		return nil, err
	}

	if input.AssignedUsers != nil {
		memberIDs, err := u.parseMemberIDs(ctx, input.AssignedUsers)
		if err != nil {
			return nil, err
		}
		if err := u.roleRepo.SyncAssignedUsers(ctx, id, memberIDs); err != nil {
			return nil, err
		}
		role.AssignedUserIDs = memberIDs
	}
	return role, nil
}

// Delete soft-deletes a role, releasing all its members
func (u *RoleUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.roleRepo.SoftDelete(ctx, id)
}

// ResolvePrincipal builds the authenticated caller's principal from the
// current role membership. Users without a role get an empty
// permission set, not an error.
func (u *RoleUsecase) ResolvePrincipal(ctx context.Context, userID uuid.UUID) (*entities.Principal, error) {
	roleName, permissions, err := u.roleRepo.PermissionsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &entities.Principal{
		UserID:      userID,
		Role:        roleName,
		Permissions: permissions,
	}, nil
}

// parseMemberIDs validates that every assigned user ID parses and
// refers to an existing account.
func (u *RoleUsecase) parseMemberIDs(ctx context.Context, raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, domainerrors.BadRequest("Invalid user ID: " + s)
		}
		if _, err := u.userRepo.GetByID(ctx, id); err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return nil, domainerrors.BadRequest("Unknown user ID: " + s)
			}
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
