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

// BrandHandler handles brand account endpoints
type BrandHandler struct {
	brandUsecase *usecases.BrandUsecase
}

// NewBrandHandler creates a new brand handler
func NewBrandHandler(brandUsecase *usecases.BrandUsecase) *BrandHandler {
	return &BrandHandler{brandUsecase: brandUsecase}
}

// Signup handles public brand signup
// POST /api/v1/brands/signup
func (h *BrandHandler) Signup(c *gin.Context) {
	var input entities.BrandSignupInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	brand, err := h.brandUsecase.Signup(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Signup successful. Your account is pending approval.",
		"brand":   brand,
	})
}

// Get returns one brand by ID
// GET /api/v1/brands/:id
func (h *BrandHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid brand ID"))
		return
	}

	brand, err := h.brandUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, brand)
}

// Update applies a partial brand update
// PUT /api/v1/brands/:id
func (h *BrandHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid brand ID"))
		return
	}

	var input entities.UpdateBrandInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	brand, err := h.brandUsecase.Update(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, brand)
}

// List lists brands with optional status filter and pagination
// GET /api/v1/brands?status=active&page=1&limit=20
func (h *BrandHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	params := utils.GetPaginationParams(page, limit)

	status := entities.UserStatus(c.Query("status"))

	brands, total, err := h.brandUsecase.List(c.Request.Context(), status, params.Page, params.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"brands":     brands,
		"pagination": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// Approve activates a pending brand
// POST /api/v1/brands/:id/approve
func (h *BrandHandler) Approve(c *gin.Context) {
	h.transition(c, h.brandUsecase.Approve, "Brand approved.")
}

// Reject marks a pending brand as rejected
// POST /api/v1/brands/:id/reject
func (h *BrandHandler) Reject(c *gin.Context) {
	h.transition(c, h.brandUsecase.Reject, "Brand rejected.")
}

// Deactivate suspends an active brand
// POST /api/v1/brands/:id/deactivate
func (h *BrandHandler) Deactivate(c *gin.Context) {
	h.transition(c, h.brandUsecase.Deactivate, "Brand deactivated.")
}

// Delete soft-deletes a brand and its user account
// DELETE /api/v1/brands/:id
func (h *BrandHandler) Delete(c *gin.Context) {
	h.transition(c, h.brandUsecase.SoftDelete, "Brand deleted.")
}

func (h *BrandHandler) transition(c *gin.Context, fn func(ctx context.Context, id uuid.UUID) error, message string) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid brand ID"))
		return
	}

	if err := fn(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": message})
}
