package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"creator-kita.backend/internal/domain/entities"
	domainerrors "creator-kita.backend/internal/domain/errors"
	"creator-kita.backend/internal/interfaces/http/middleware"
	"creator-kita.backend/internal/interfaces/http/response"
	"creator-kita.backend/internal/usecases"
	"creator-kita.backend/pkg/utils"
)

// maxDocumentSize caps uploaded KYC files at 10 MiB.
const maxDocumentSize = 10 << 20

// KYCHandler handles KYC document endpoints
type KYCHandler struct {
	kycUsecase *usecases.KYCUsecase
}

// NewKYCHandler creates a new KYC handler
func NewKYCHandler(kycUsecase *usecases.KYCUsecase) *KYCHandler {
	return &KYCHandler{kycUsecase: kycUsecase}
}

// Upload handles a multipart document upload
// POST /api/v1/kyc/documents
func (h *KYCHandler) Upload(c *gin.Context) {
	var input entities.UploadDocumentInput

	if err := c.ShouldBind(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Document file is required."))
		return
	}
	if fileHeader.Size > maxDocumentSize {
		response.Error(c, domainerrors.BadRequest("Document file exceeds the 10 MB limit."))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close()

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}
	doc, err := h.kycUsecase.UploadDocument(c.Request.Context(), userID, &input, file, fileMeta(fileHeader))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, doc)
}

// Update lets the owner change metadata or replace the file. Any update
// puts the document back into pending review.
// PUT /api/v1/kyc/documents/:id
func (h *KYCHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid document ID"))
		return
	}

	var input entities.UpdateDocumentInput
	if err := c.ShouldBind(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	var (
		file multipart.File
		meta *entities.FileUpload
	)
	if fileHeader, err := c.FormFile("file"); err == nil {
		if fileHeader.Size > maxDocumentSize {
			response.Error(c, domainerrors.BadRequest("Document file exceeds the 10 MB limit."))
			return
		}
		file, err = fileHeader.Open()
		if err != nil {
			response.Error(c, err)
			return
		}
		defer file.Close()
		meta = fileMeta(fileHeader)
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}
	doc, err := h.kycUsecase.UpdateDocument(c.Request.Context(), userID, id, &input, file, meta)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, doc)
}

// Delete removes a document and its stored file
// DELETE /api/v1/kyc/documents/:id
func (h *KYCHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid document ID"))
		return
	}

	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}
	if err := h.kycUsecase.DeleteDocument(c.Request.Context(), principal, id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Document deleted."})
}

// Verify applies a reviewer's verification decision
// POST /api/v1/kyc/documents/:id/verify
func (h *KYCHandler) Verify(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid document ID"))
		return
	}

	var input entities.VerifyDocumentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}
	doc, err := h.kycUsecase.Verify(c.Request.Context(), principal, id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, doc)
}

// AddReview appends a comment to the document's review timeline
// POST /api/v1/kyc/documents/:id/reviews
func (h *KYCHandler) AddReview(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid document ID"))
		return
	}

	var input struct {
		Comment string `json:"comment" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}
	review, err := h.kycUsecase.AddReview(c.Request.Context(), principal, id, input.Comment)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, review)
}

// ListReviews returns the document's comment timeline in order
// GET /api/v1/kyc/documents/:id/reviews
func (h *KYCHandler) ListReviews(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid document ID"))
		return
	}

	reviews, err := h.kycUsecase.ListReviews(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reviews": reviews})
}

// ListMine lists the authenticated user's documents
// GET /api/v1/kyc/documents
func (h *KYCHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	docs, err := h.kycUsecase.ListUserDocuments(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"documents": docs})
}

// Queue lists the reviewer verification queue with filters
// GET /api/v1/kyc/queue?status=pending&documentType=pan_card&userId=...
func (h *KYCHandler) Queue(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	params := utils.GetPaginationParams(page, limit)

	filter := entities.DocumentFilter{
		Status:       entities.DocumentStatus(c.Query("status")),
		DocumentType: entities.DocumentType(c.Query("documentType")),
		Page:         params.Page,
		Limit:        params.Limit,
	}
	if raw := c.Query("userId"); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("Invalid user ID filter"))
			return
		}
		filter.UserID = userID
	}

	docs, total, err := h.kycUsecase.ListForVerification(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"documents":  docs,
		"pagination": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// Profile returns the aggregate KYC view for the authenticated user
// GET /api/v1/kyc/profile
func (h *KYCHandler) Profile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	profile, err := h.kycUsecase.GetProfile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// UserProfile returns the aggregate KYC view for any user (reviewers)
// GET /api/v1/kyc/users/:id/profile
func (h *KYCHandler) UserProfile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid user ID"))
		return
	}

	profile, err := h.kycUsecase.GetProfile(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// Download streams the stored document file inline
// GET /api/v1/kyc/documents/:id/download
func (h *KYCHandler) Download(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid document ID"))
		return
	}

	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}
	doc, file, err := h.kycUsecase.OpenDocumentFile(c.Request.Context(), principal, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close()

	extraHeaders := map[string]string{
		"Content-Disposition": fmt.Sprintf("inline; filename=%q", doc.OriginalFileName),
	}
	c.DataFromReader(http.StatusOK, doc.SizeBytes, doc.ContentType, file, extraHeaders)
}

// RevealNumber decrypts the sealed document number for authorized callers
// GET /api/v1/kyc/documents/:id/number
func (h *KYCHandler) RevealNumber(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid document ID"))
		return
	}

	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}
	number, err := h.kycUsecase.RevealDocumentNumber(c.Request.Context(), principal, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"documentNumber": number})
}

func fileMeta(header *multipart.FileHeader) *entities.FileUpload {
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return &entities.FileUpload{
		OriginalName: header.Filename,
		ContentType:  contentType,
		Size:         header.Size,
	}
}
