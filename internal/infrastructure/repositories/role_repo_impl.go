package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"creator-kita.backend/internal/domain/entities"
	domainerrors "creator-kita.backend/internal/domain/errors"
	"creator-kita.backend/internal/infrastructure/models"
)

// RoleRepository implements role data operations. users.role_id is the
// single source of truth for membership; assigned-user lists on the
// entity are resolved by query.
type RoleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

// Create creates a new role
func (r *RoleRepository) Create(ctx context.Context, role *entities.Role) error {
	m, err := roleToModel(role)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	role.ID = m.ID
	return nil
}

// GetByID gets a role by ID, including its resolved member list
func (r *RoleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Role, error) {
	var m models.Role
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	role, err := roleToEntity(&m)
	if err != nil {
		return nil, err
	}
	role.AssignedUserIDs, err = r.MemberIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	return role, nil
}

// GetByName gets a role by name
func (r *RoleRepository) GetByName(ctx context.Context, name string) (*entities.Role, error) {
	var m models.Role
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	role, err := roleToEntity(&m)
	if err != nil {
		return nil, err
	}
	role.AssignedUserIDs, err = r.MemberIDs(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	return role, nil
}

// List lists all roles with their resolved member lists
func (r *RoleRepository) List(ctx context.Context) ([]*entities.Role, error) {
	var roleModels []models.Role
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&roleModels).Error; err != nil {
		return nil, err
	}

	roles := make([]*entities.Role, 0, len(roleModels))
	for i := range roleModels {
		role, err := roleToEntity(&roleModels[i])
		if err != nil {
			return nil, err
		}
		role.AssignedUserIDs, err = r.MemberIDs(ctx, role.ID)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, nil
}

// Update updates a role's name, description, permissions and user types
func (r *RoleRepository) Update(ctx context.Context, role *entities.Role) error {
	m, err := roleToModel(role)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"name":        m.Name,
		"description": m.Description,
		"permissions": m.Permissions,
		"user_types":  m.UserTypes,
		"updated_at":  time.Now(),
	}

	result := r.db.WithContext(ctx).Model(&models.Role{}).Where("id = ?", role.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SyncAssignedUsers diffs the desired member set against users.role_id
// and applies both sides of the change in one transaction, so a crash
// cannot leave membership half-applied.
func (r *RoleRepository) SyncAssignedUsers(ctx context.Context, roleID uuid.UUID, userIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current []models.User
		if err := tx.Select("id").Where("role_id = ?", roleID).Find(&current).Error; err != nil {
			return err
		}

		desired := make(map[uuid.UUID]bool, len(userIDs))
		for _, id := range userIDs {
			desired[id] = true
		}

		var removed []uuid.UUID
		for _, m := range current {
			if desired[m.ID] {
				delete(desired, m.ID)
			} else {
				removed = append(removed, m.ID)
			}
		}
		added := make([]uuid.UUID, 0, len(desired))
		for id := range desired {
			added = append(added, id)
		}

		if len(added) > 0 {
			if err := tx.Model(&models.User{}).Where("id IN ?", added).Updates(map[string]interface{}{
				"role_id":    roleID,
				"updated_at": time.Now(),
			}).Error; err != nil {
				return err
			}
		}
		if len(removed) > 0 {
			if err := tx.Model(&models.User{}).Where("id IN ?", removed).Updates(map[string]interface{}{
				"role_id":    nil,
				"updated_at": time.Now(),
			}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// SoftDelete soft-deletes a role and unsets the role reference of all
// its members in the same transaction.
func (r *RoleRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).Where("role_id = ?", id).Updates(map[string]interface{}{
			"role_id":    nil,
			"updated_at": time.Now(),
		}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Role{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrNotFound
		}
		return nil
	})
}

// MemberIDs returns the IDs of users currently holding the role
func (r *RoleRepository) MemberIDs(ctx context.Context, roleID uuid.UUID) ([]uuid.UUID, error) {
	var memberModels []models.User
	if err := r.db.WithContext(ctx).Select("id").Where("role_id = ?", roleID).Order("created_at ASC").Find(&memberModels).Error; err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(memberModels))
	for _, m := range memberModels {
		ids = append(ids, m.ID)
	}
	return ids, nil
}

// PermissionsForUser resolves the role name and permission set of a
// user. Users without a role get an empty permission set.
func (r *RoleRepository) PermissionsForUser(ctx context.Context, userID uuid.UUID) (string, []entities.Permission, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, domainerrors.ErrNotFound
		}
		return "", nil, err
	}
	if user.RoleID == nil {
		return "", nil, nil
	}

	var role models.Role
	if err := r.db.WithContext(ctx).Where("id = ?", *user.RoleID).First(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Role was deleted from under the user; treat as no role.
			return "", nil, nil
		}
		return "", nil, err
	}

	var permissions []entities.Permission
	if err := json.Unmarshal([]byte(role.Permissions), &permissions); err != nil {
		return "", nil, err
	}
	return role.Name, permissions, nil
}

func roleToModel(role *entities.Role) (*models.Role, error) {
	permissions, err := json.Marshal(role.Permissions)
	if err != nil {
		return nil, err
	}
	userTypes, err := json.Marshal(role.UserTypes)
	if err != nil {
		return nil, err
	}

	m := &models.Role{
		ID:          role.ID,
		Name:        role.Name,
		Permissions: string(permissions),
		UserTypes:   string(userTypes),
		CreatedAt:   role.CreatedAt,
		UpdatedAt:   role.UpdatedAt,
	}
	if role.Description.Valid {
		m.Description = &role.Description.String
	}
	return m, nil
}

func roleToEntity(m *models.Role) (*entities.Role, error) {
	role := &entities.Role{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Description != nil {
		role.Description.SetValid(*m.Description)
	}
	if m.Permissions != "" {
		if err := json.Unmarshal([]byte(m.Permissions), &role.Permissions); err != nil {
			return nil, err
		}
	}
	if m.UserTypes != "" {
		if err := json.Unmarshal([]byte(m.UserTypes), &role.UserTypes); err != nil {
			return nil, err
		}
	}
	return role, nil
}
