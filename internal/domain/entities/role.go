package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Permission actions
const (
	PermissionActionView   = "View"
	PermissionActionCreate = "Create"
	PermissionActionEdit   = "Edit"
	PermissionActionDelete = "Delete"
	PermissionActionAll    = "All"
)

// PermissionResources lists the resources a role can grant access to.
var PermissionResources = []string{
	"Creator",
	"Creator Management",
	"Account Management",
	"Brand Management",
}

// PermissionActions lists the grantable actions.
var PermissionActions = []string{
	PermissionActionView,
	PermissionActionCreate,
	PermissionActionEdit,
	PermissionActionDelete,
	PermissionActionAll,
}

// Permission grants an action on a resource
type Permission struct {
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

// Role carries a named permission set. Membership is not denormalized:
// users.role_id is the single source of truth and AssignedUserIDs is
// resolved by query.
type Role struct {
	ID              uuid.UUID   `json:"id"`
	Name            string      `json:"name"`
	Description     null.String `json:"description,omitempty"`
	Permissions     []Permission `json:"permissions"`
	UserTypes       []string    `json:"userTypes"`
	AssignedUserIDs []uuid.UUID `json:"assignedUsers"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// UserType classifies a user (creator, brand, employee); distinct from
// Role, which carries permissions.
type UserType struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description null.String `json:"description,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// CreateRoleInput represents input for creating a role
type CreateRoleInput struct {
	Name          string       `json:"name" binding:"required,min=2,max=100"`
	Description   string       `json:"description"`
	Permissions   []Permission `json:"permissions" binding:"required,dive"`
	UserTypes     []string     `json:"userTypes"`
	AssignedUsers []string     `json:"assignedUsers"`
}

// UpdateRoleInput represents input for updating a role. Nil slices leave
// the corresponding field untouched.
type UpdateRoleInput struct {
	Name          *string      `json:"name"`
	Description   *string      `json:"description"`
	Permissions   []Permission `json:"permissions"`
	UserTypes     []string     `json:"userTypes"`
	AssignedUsers []string     `json:"assignedUsers"`
}
