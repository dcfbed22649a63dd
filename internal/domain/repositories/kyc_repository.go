package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"creator-kita.backend/internal/domain/entities"
)

// KYCDocumentRepository defines KYC document data operations
type KYCDocumentRepository interface {
	Create(ctx context.Context, doc *entities.KYCDocument) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.KYCDocument, error)
	Update(ctx context.Context, doc *entities.KYCDocument) error
	// UpdateVerification sets status, remarks and verifier in one atomic
	// single-row update. Last write wins.
	UpdateVerification(ctx context.Context, id uuid.UUID, status entities.DocumentStatus, remarks null.String, verifiedBy uuid.UUID, verifiedAt time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.KYCDocument, error)
	ListForVerification(ctx context.Context, filter entities.DocumentFilter) ([]*entities.KYCDocument, int64, error)
	ListVerifiedExpired(ctx context.Context, before time.Time, limit int) ([]*entities.KYCDocument, error)

	AppendReview(ctx context.Context, review *entities.DocumentReview) error
	ListReviews(ctx context.Context, documentID uuid.UUID) ([]*entities.DocumentReview, error)
}
