package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"creator-kita.backend/internal/domain/entities"
	domainerrors "creator-kita.backend/internal/domain/errors"
	"creator-kita.backend/internal/interfaces/http/response"
	"creator-kita.backend/internal/usecases"
)

// RoleHandler handles role and permission endpoints
type RoleHandler struct {
	roleUsecase *usecases.RoleUsecase
}

// NewRoleHandler creates a new role handler
func NewRoleHandler(roleUsecase *usecases.RoleUsecase) *RoleHandler {
	return &RoleHandler{roleUsecase: roleUsecase}
}

// Create creates a role with its initial member set
// POST /api/v1/roles
func (h *RoleHandler) Create(c *gin.Context) {
	var input entities.CreateRoleInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	role, err := h.roleUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, role)
}

// Get returns one role with its resolved member list
// GET /api/v1/roles/:id
func (h *RoleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid role ID"))
		return
	}

	role, err := h.roleUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, role)
}

// List lists all roles
// GET /api/v1/roles
func (h *RoleHandler) List(c *gin.Context) {
	roles, err := h.roleUsecase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"roles": roles})
}

// PermissionOptions returns the grantable resource/action catalog for
// the role editor
// GET /api/v1/roles/permissions
func (h *RoleHandler) PermissionOptions(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"resources": entities.PermissionResources,
		"actions":   entities.PermissionActions,
	})
}

// Update applies a partial role update, re-syncing membership when an
// assigned user list is present
// PUT /api/v1/roles/:id
func (h *RoleHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid role ID"))
		return
	}

	var input entities.UpdateRoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	role, err := h.roleUsecase.Update(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, role)
}

// Delete soft-deletes a role, releasing all its members
// DELETE /api/v1/roles/:id
func (h *RoleHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid role ID"))
		return
	}

	if err := h.roleUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Role deleted."})
}
