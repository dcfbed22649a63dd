package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// DocumentType represents the kind of identity document
type DocumentType string

const (
	DocumentTypePANCard    DocumentType = "pan_card"
	DocumentTypeAadharCard DocumentType = "aadhar_card"
	DocumentTypeOther      DocumentType = "other"
)

// ValidDocumentType reports whether t is a known document type.
func ValidDocumentType(t DocumentType) bool {
	switch t {
	case DocumentTypePANCard, DocumentTypeAadharCard, DocumentTypeOther:
		return true
	}
	return false
}

// DocumentStatus represents KYC document verification status
type DocumentStatus string

const (
	DocumentStatusPending  DocumentStatus = "pending"
	DocumentStatusVerified DocumentStatus = "verified"
	DocumentStatusRejected DocumentStatus = "rejected"
)

// ValidDocumentStatus reports whether s is a known document status.
func ValidDocumentStatus(s DocumentStatus) bool {
	switch s {
	case DocumentStatusPending, DocumentStatusVerified, DocumentStatusRejected:
		return true
	}
	return false
}

// ProfileStatus represents the aggregate KYC state of a user
type ProfileStatus string

const (
	ProfileStatusPending  ProfileStatus = "pending"
	ProfileStatusVerified ProfileStatus = "verified"
	ProfileStatusRejected ProfileStatus = "rejected"
	ProfileStatusExpired  ProfileStatus = "expired"
)

// RequiredDocumentTypes are the types a fully verified profile must cover.
var RequiredDocumentTypes = []DocumentType{
	DocumentTypePANCard,
	DocumentTypeAadharCard,
}

// KYCDocument represents an uploaded identity document. The document
// number is sealed at rest; only the masked form leaves the backend.
type KYCDocument struct {
	ID                   uuid.UUID      `json:"id"`
	UserID               uuid.UUID      `json:"userId"`
	DocumentType         DocumentType   `json:"documentType"`
	DocumentName         string         `json:"documentName"`
	DocumentNumberEnc    string         `json:"-"`
	DocumentNumberMasked string         `json:"documentNumber"`
	FileName             string         `json:"-"`
	OriginalFileName     string         `json:"fileName"`
	ContentType          string         `json:"contentType"`
	SizeBytes            int64          `json:"sizeBytes"`
	Status               DocumentStatus `json:"status"`
	VerificationRemarks  null.String    `json:"verificationRemarks,omitempty"`
	VerifiedBy           null.String    `json:"verifiedBy,omitempty"`
	VerifiedAt           null.Time      `json:"verifiedAt,omitempty"`
	ExpiresAt            null.Time      `json:"expiresAt,omitempty"`
	CreatedAt            time.Time      `json:"createdAt"`
	UpdatedAt            time.Time      `json:"updatedAt"`
}

// DocumentReview is one entry in a document's append-only comment
// timeline, independent of verification status.
type DocumentReview struct {
	ID         uuid.UUID `json:"id"`
	DocumentID uuid.UUID `json:"documentId"`
	ReviewerID uuid.UUID `json:"reviewerId"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}

// KYCProfile is the aggregate verification view for one user, computed
// from that user's documents.
type KYCProfile struct {
	UserID          uuid.UUID     `json:"userId"`
	RequiredCount   int           `json:"requiredCount"`
	UploadedCount   int           `json:"uploadedCount"`
	ApprovedCount   int           `json:"approvedCount"`
	RejectedCount   int           `json:"rejectedCount"`
	PendingCount    int           `json:"pendingCount"`
	ExpiredCount    int           `json:"expiredCount"`
	PercentUploaded float64       `json:"percentUploaded"`
	Status          ProfileStatus `json:"status"`
}

// UploadDocumentInput represents metadata accompanying a document upload
type UploadDocumentInput struct {
	DocumentType   DocumentType `form:"documentType" binding:"required"`
	DocumentName   string       `form:"documentName" binding:"required,min=2,max=150"`
	DocumentNumber string       `form:"documentNumber" binding:"required,min=4,max=50"`
}

// UpdateDocumentInput represents metadata changes for a document
type UpdateDocumentInput struct {
	DocumentName   *string `form:"documentName"`
	DocumentNumber *string `form:"documentNumber"`
}

// VerifyDocumentInput represents an admin verification decision
type VerifyDocumentInput struct {
	Status  DocumentStatus `json:"status" binding:"required"`
	Remarks string         `json:"remarks"`
}

// DocumentFilter narrows the verification queue listing
type DocumentFilter struct {
	Status       DocumentStatus
	DocumentType DocumentType
	UserID       uuid.UUID
	Page         int
	Limit        int
}

// FileUpload describes an uploaded file handed to the storage layer.
type FileUpload struct {
	OriginalName string
	ContentType  string
	Size         int64
}
