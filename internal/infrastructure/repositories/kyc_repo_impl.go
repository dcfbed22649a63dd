package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"creator-kita.backend/internal/domain/entities"
	domainerrors "creator-kita.backend/internal/domain/errors"
	"creator-kita.backend/internal/infrastructure/models"
)

// KYCDocumentRepository implements KYC document data operations
type KYCDocumentRepository struct {
	db *gorm.DB
}

// NewKYCDocumentRepository creates a new KYC document repository
func NewKYCDocumentRepository(db *gorm.DB) *KYCDocumentRepository {
	return &KYCDocumentRepository{db: db}
}

// Create creates a new KYC document
func (r *KYCDocumentRepository) Create(ctx context.Context, doc *entities.KYCDocument) error {
	m := kycDocumentToModel(doc)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	doc.ID = m.ID
	return nil
}

// GetByID gets a KYC document by ID
func (r *KYCDocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.KYCDocument, error) {
	var m models.KYCDocument
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return kycDocumentToEntity(&m), nil
}

// Update updates a document's metadata and stored file reference.
// Re-uploading resets status to pending, so the verification fields are
// cleared in the same write.
func (r *KYCDocumentRepository) Update(ctx context.Context, doc *entities.KYCDocument) error {
	updates := map[string]interface{}{
		"document_name":          doc.DocumentName,
		"document_number_enc":    doc.DocumentNumberEnc,
		"document_number_masked": doc.DocumentNumberMasked,
		"file_name":              doc.FileName,
		"original_file_name":     doc.OriginalFileName,
		"content_type":           doc.ContentType,
		"size_bytes":             doc.SizeBytes,
		"status":                 string(doc.Status),
		"verification_remarks":   nullStringPtr(doc.VerificationRemarks),
		"verified_by":            nil,
		"verified_at":            nil,
		"expires_at":             nullTimePtr(doc.ExpiresAt),
		"updated_at":             time.Now(),
	}
	if doc.VerifiedBy.Valid {
		if verifierID, err := uuid.Parse(doc.VerifiedBy.String); err == nil {
			updates["verified_by"] = verifierID
		}
	}
	if doc.VerifiedAt.Valid {
		updates["verified_at"] = doc.VerifiedAt.Time
	}

	result := r.db.WithContext(ctx).Model(&models.KYCDocument{}).Where("id = ?", doc.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateVerification sets status, remarks and verifier in a single
// atomic row update. Last write wins under concurrent decisions.
// uuid.Nil as the verifier records a system decision as NULL.
func (r *KYCDocumentRepository) UpdateVerification(ctx context.Context, id uuid.UUID, status entities.DocumentStatus, remarks null.String, verifiedBy uuid.UUID, verifiedAt time.Time) error {
	var verifier *uuid.UUID
	if verifiedBy != uuid.Nil {
		verifier = &verifiedBy
	}

	updates := map[string]interface{}{
		"status":               string(status),
		"verification_remarks": nullStringPtr(remarks),
		"verified_by":          verifier,
		"verified_at":          verifiedAt,
		"updated_at":           time.Now(),
	}

	result := r.db.WithContext(ctx).Model(&models.KYCDocument{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes a document row. The caller is responsible for the
// stored file.
func (r *KYCDocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.KYCDocument{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListByUser lists all documents of one user, newest first
func (r *KYCDocumentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.KYCDocument, error) {
	var docModels []models.KYCDocument
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&docModels).Error; err != nil {
		return nil, err
	}
	docs := make([]*entities.KYCDocument, 0, len(docModels))
	for i := range docModels {
		docs = append(docs, kycDocumentToEntity(&docModels[i]))
	}
	return docs, nil
}

// ListForVerification lists documents for the admin verification queue
// with optional filters and database-level pagination
func (r *KYCDocumentRepository) ListForVerification(ctx context.Context, filter entities.DocumentFilter) ([]*entities.KYCDocument, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.KYCDocument{})
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.DocumentType != "" {
		query = query.Where("document_type = ?", string(filter.DocumentType))
	}
	if filter.UserID != uuid.Nil {
		query = query.Where("user_id = ?", filter.UserID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC")
	if filter.Limit > 0 {
		query = query.Offset((filter.Page - 1) * filter.Limit).Limit(filter.Limit)
	}

	var docModels []models.KYCDocument
	if err := query.Find(&docModels).Error; err != nil {
		return nil, 0, err
	}

	docs := make([]*entities.KYCDocument, 0, len(docModels))
	for i := range docModels {
		docs = append(docs, kycDocumentToEntity(&docModels[i]))
	}
	return docs, total, nil
}

// ListVerifiedExpired lists verified documents whose expiry passed
// before the given time, oldest expiry first
func (r *KYCDocumentRepository) ListVerifiedExpired(ctx context.Context, before time.Time, limit int) ([]*entities.KYCDocument, error) {
	query := r.db.WithContext(ctx).
		Where("status = ?", string(entities.DocumentStatusVerified)).
		Where("expires_at IS NOT NULL AND expires_at < ?", before).
		Order("expires_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var docModels []models.KYCDocument
	if err := query.Find(&docModels).Error; err != nil {
		return nil, err
	}
	docs := make([]*entities.KYCDocument, 0, len(docModels))
	for i := range docModels {
		docs = append(docs, kycDocumentToEntity(&docModels[i]))
	}
	return docs, nil
}

// AppendReview appends a comment to a document's review timeline
func (r *KYCDocumentRepository) AppendReview(ctx context.Context, review *entities.DocumentReview) error {
	m := &models.DocumentReview{
		ID:         review.ID,
		DocumentID: review.DocumentID,
		ReviewerID: review.ReviewerID,
		Comment:    review.Comment,
		CreatedAt:  review.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	review.ID = m.ID
	return nil
}

// ListReviews lists a document's review timeline in insertion order
func (r *KYCDocumentRepository) ListReviews(ctx context.Context, documentID uuid.UUID) ([]*entities.DocumentReview, error) {
	var reviewModels []models.DocumentReview
	if err := r.db.WithContext(ctx).Where("document_id = ?", documentID).Order("created_at ASC").Find(&reviewModels).Error; err != nil {
		return nil, err
	}
	reviews := make([]*entities.DocumentReview, 0, len(reviewModels))
	for i := range reviewModels {
		m := &reviewModels[i]
		reviews = append(reviews, &entities.DocumentReview{
			ID:         m.ID,
			DocumentID: m.DocumentID,
			ReviewerID: m.ReviewerID,
			Comment:    m.Comment,
			CreatedAt:  m.CreatedAt,
		})
	}
	return reviews, nil
}

func kycDocumentToModel(d *entities.KYCDocument) *models.KYCDocument {
	m := &models.KYCDocument{
		ID:                   d.ID,
		UserID:               d.UserID,
		DocumentType:         string(d.DocumentType),
		DocumentName:         d.DocumentName,
		DocumentNumberEnc:    d.DocumentNumberEnc,
		DocumentNumberMasked: d.DocumentNumberMasked,
		FileName:             d.FileName,
		OriginalFileName:     d.OriginalFileName,
		ContentType:          d.ContentType,
		SizeBytes:            d.SizeBytes,
		Status:               string(d.Status),
		VerificationRemarks:  nullStringPtr(d.VerificationRemarks),
		VerifiedAt:           nullTimePtr(d.VerifiedAt),
		ExpiresAt:            nullTimePtr(d.ExpiresAt),
		CreatedAt:            d.CreatedAt,
		UpdatedAt:            d.UpdatedAt,
	}
	if d.VerifiedBy.Valid {
		if verifierID, err := uuid.Parse(d.VerifiedBy.String); err == nil {
			m.VerifiedBy = &verifierID
		}
	}
	return m
}

func kycDocumentToEntity(m *models.KYCDocument) *entities.KYCDocument {
	d := &entities.KYCDocument{
		ID:                   m.ID,
		UserID:               m.UserID,
		DocumentType:         entities.DocumentType(m.DocumentType),
		DocumentName:         m.DocumentName,
		DocumentNumberEnc:    m.DocumentNumberEnc,
		DocumentNumberMasked: m.DocumentNumberMasked,
		FileName:             m.FileName,
		OriginalFileName:     m.OriginalFileName,
		ContentType:          m.ContentType,
		SizeBytes:            m.SizeBytes,
		Status:               entities.DocumentStatus(m.Status),
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
	if m.VerificationRemarks != nil {
		d.VerificationRemarks.SetValid(*m.VerificationRemarks)
	}
	if m.VerifiedBy != nil {
		d.VerifiedBy.SetValid(m.VerifiedBy.String())
	}
	if m.VerifiedAt != nil {
		d.VerifiedAt.SetValid(*m.VerifiedAt)
	}
	if m.ExpiresAt != nil {
		d.ExpiresAt.SetValid(*m.ExpiresAt)
	}
	return d
}
