package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"creator-kita.backend/internal/domain/entities"
	domainerrors "creator-kita.backend/internal/domain/errors"
	"creator-kita.backend/internal/interfaces/http/response"
	"creator-kita.backend/internal/usecases"
	"creator-kita.backend/pkg/utils"
)

// CreatorHandler handles creator account endpoints
type CreatorHandler struct {
	creatorUsecase *usecases.CreatorUsecase
}

// NewCreatorHandler creates a new creator handler
func NewCreatorHandler(creatorUsecase *usecases.CreatorUsecase) *CreatorHandler {
	return &CreatorHandler{creatorUsecase: creatorUsecase}
}

// Signup handles public creator signup
// POST /api/v1/creators/signup
func (h *CreatorHandler) Signup(c *gin.Context) {
	var input entities.CreatorSignupInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	creator, err := h.creatorUsecase.Signup(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Signup successful. Your account is pending approval.",
		"creator": creator,
	})
}

// Get returns one creator by ID
// GET /api/v1/creators/:id
func (h *CreatorHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid creator ID"))
		return
	}

	creator, err := h.creatorUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, creator)
}

// Update applies a partial profile update
// PUT /api/v1/creators/:id
func (h *CreatorHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid creator ID"))
		return
	}

	var input entities.UpdateCreatorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	creator, err := h.creatorUsecase.Update(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, creator)
}

// List lists creators with optional status filter and pagination
// GET /api/v1/creators?status=pending&page=1&limit=20
func (h *CreatorHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	params := utils.GetPaginationParams(page, limit)

	status := entities.UserStatus(c.Query("status"))

	creators, total, err := h.creatorUsecase.List(c.Request.Context(), status, params.Page, params.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"creators":   creators,
		"pagination": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// Approve activates a pending creator
// POST /api/v1/creators/:id/approve
func (h *CreatorHandler) Approve(c *gin.Context) {
	h.transition(c, h.creatorUsecase.Approve, "Creator approved.")
}

// Reject marks a pending creator as rejected
// POST /api/v1/creators/:id/reject
func (h *CreatorHandler) Reject(c *gin.Context) {
	h.transition(c, h.creatorUsecase.Reject, "Creator rejected.")
}

// Deactivate suspends an active creator
// POST /api/v1/creators/:id/deactivate
func (h *CreatorHandler) Deactivate(c *gin.Context) {
	h.transition(c, h.creatorUsecase.Deactivate, "Creator deactivated.")
}

// Delete soft-deletes a creator and its user account
// DELETE /api/v1/creators/:id
func (h *CreatorHandler) Delete(c *gin.Context) {
	h.transition(c, h.creatorUsecase.SoftDelete, "Creator deleted.")
}

func (h *CreatorHandler) transition(c *gin.Context, fn func(ctx context.Context, id uuid.UUID) error, message string) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid creator ID"))
		return
	}

	if err := fn(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": message})
}
