package usecases

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"creator-kita.backend/internal/domain/entities"
	domainerrors "creator-kita.backend/internal/domain/errors"
	"creator-kita.backend/internal/domain/repositories"
	"creator-kita.backend/internal/infrastructure/storage"
	"creator-kita.backend/pkg/crypto"
	"creator-kita.backend/pkg/utils"
)

// KYCUsecase handles the KYC document lifecycle: upload, verification
// decisions, the review comment timeline and the per-user profile
// aggregate.
type KYCUsecase struct {
	docRepo     repositories.KYCDocumentRepository
	fileStore   storage.FileStore
	secretBox   *crypto.SecretBox
	documentTTL time.Duration
}

// NewKYCUsecase creates a new KYC usecase
func NewKYCUsecase(
	docRepo repositories.KYCDocumentRepository,
	fileStore storage.FileStore,
	secretBox *crypto.SecretBox,
	documentTTL time.Duration,
) *KYCUsecase {
	return &KYCUsecase{
		docRepo:     docRepo,
		fileStore:   fileStore,
		secretBox:   secretBox,
		documentTTL: documentTTL,
	}
}

// UploadDocument stores the file and creates a pending document. The
// document number is sealed before it touches the database; only the
// masked form is ever returned. One document per type per user.
func (u *KYCUsecase) UploadDocument(ctx context.Context, userID uuid.UUID, input *entities.UploadDocumentInput, file io.Reader, meta *entities.FileUpload) (*entities.KYCDocument, error) {
	if !entities.ValidDocumentType(input.DocumentType) {
		return nil, domainerrors.BadRequest("Unknown document type.")
	}

	existing, err := u.docRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, doc := range existing {
		if doc.DocumentType == input.DocumentType {
			return nil, domainerrors.Conflict("A document of this type already exists. Update it instead.")
		}
	}

	sealed, err := u.secretBox.Seal(input.DocumentNumber)
	if err != nil {
		return nil, err
	}

	storedName, size, err := u.fileStore.Save(file, meta.OriginalName)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	doc := &entities.KYCDocument{
		ID:                   utils.GenerateUUIDv7(),
		UserID:               userID,
		DocumentType:         input.DocumentType,
		DocumentName:         input.DocumentName,
		DocumentNumberEnc:    sealed,
		DocumentNumberMasked: crypto.Mask(input.DocumentNumber),
		FileName:             storedName,
		OriginalFileName:     meta.OriginalName,
		ContentType:          meta.ContentType,
		SizeBytes:            size,
		Status:               entities.DocumentStatusPending,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := u.docRepo.Create(ctx, doc); err != nil {
		u.fileStore.Remove(storedName)
		return nil, err
	}
	return doc, nil
}

// UpdateDocument lets the owner change metadata or replace the file.
// Any update puts the document back into pending review.
func (u *KYCUsecase) UpdateDocument(ctx context.Context, userID, docID uuid.UUID, input *entities.UpdateDocumentInput, file io.Reader, meta *entities.FileUpload) (*entities.KYCDocument, error) {
	doc, err := u.docRepo.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}
	if doc.UserID != userID {
		return nil, domainerrors.Forbidden("You do not own this document.")
	}

	if input.DocumentName != nil {
		doc.DocumentName = *input.DocumentName
	}
	if input.DocumentNumber != nil {
		sealed, err := u.secretBox.Seal(*input.DocumentNumber)
		if err != nil {
			return nil, err
		}
		doc.DocumentNumberEnc = sealed
		doc.DocumentNumberMasked = crypto.Mask(*input.DocumentNumber)
	}

	oldFile := ""
	if file != nil && meta != nil {
		storedName, size, err := u.fileStore.Save(file, meta.OriginalName)
		if err != nil {
			return nil, err
		}
		oldFile = doc.FileName
		doc.FileName = storedName
		doc.OriginalFileName = meta.OriginalName
		doc.ContentType = meta.ContentType
		doc.SizeBytes = size
	}

	doc.Status = entities.DocumentStatusPending
	doc.VerificationRemarks = null.String{}
	doc.VerifiedBy = null.String{}
	doc.VerifiedAt = null.Time{}
	doc.ExpiresAt = null.Time{}

	if err := u.docRepo.Update(ctx, doc); err != nil {
		if doc.FileName != oldFile && oldFile != "" {
			u.fileStore.Remove(doc.FileName)
		}
		return nil, err
	}
	if oldFile != "" {
		u.fileStore.Remove(oldFile)
	}
	return doc, nil
}

// DeleteDocument removes a document and its stored file. Owners can
// always delete their own; reviewers need KYC view access.
func (u *KYCUsecase) DeleteDocument(ctx context.Context, principal *entities.Principal, docID uuid.UUID) error {
	doc, err := u.docRepo.GetByID(ctx, docID)
	if err != nil {
		return err
	}
	if doc.UserID != principal.UserID && !principal.CanViewAnyKYC() {
		return domainerrors.Forbidden("You do not own this document.")
	}

	if err := u.docRepo.Delete(ctx, docID); err != nil {
		return err
	}
	return u.fileStore.Remove(doc.FileName)
}

// Verify applies a reviewer's decision. Allowed transitions:
// pending -> verified or rejected, verified -> rejected, and
// verified -> pending (revocation). Remarks are mandatory whenever a
// document leaves the verified state or is rejected.
func (u *KYCUsecase) Verify(ctx context.Context, principal *entities.Principal, docID uuid.UUID, input *entities.VerifyDocumentInput) (*entities.KYCDocument, error) {
	if !entities.ValidDocumentStatus(input.Status) {
		return nil, domainerrors.BadRequest("Unknown document status.")
	}

	doc, err := u.docRepo.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	if !validVerificationTransition(doc.Status, input.Status) {
		return nil, domainerrors.InvalidTransition("Cannot change document status from " + string(doc.Status) + " to " + string(input.Status) + ".")
	}
	if requiresRemarks(doc.Status, input.Status) && input.Remarks == "" {
		return nil, domainerrors.BadRequest("Remarks are required for this decision.")
	}

	remarks := null.String{}
	if input.Remarks != "" {
		remarks = null.StringFrom(input.Remarks)
	}

	now := time.Now()
	if err := u.docRepo.UpdateVerification(ctx, docID, input.Status, remarks, principal.UserID, now); err != nil {
		return nil, err
	}

	doc.Status = input.Status
	doc.VerificationRemarks = remarks
	doc.VerifiedBy = null.StringFrom(principal.UserID.String())
	doc.VerifiedAt = null.TimeFrom(now)

	// Verified documents carry a validity window; the expiry job
	// demotes them once it passes.
	if input.Status == entities.DocumentStatusVerified && u.documentTTL > 0 {
		doc.ExpiresAt = null.TimeFrom(now.Add(u.documentTTL))
		if err := u.docRepo.Update(ctx, doc); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// AddReview appends a comment to the document's timeline. Comments are
// independent of status decisions and are never overwritten.
func (u *KYCUsecase) AddReview(ctx context.Context, principal *entities.Principal, docID uuid.UUID, comment string) (*entities.DocumentReview, error) {
	if comment == "" {
		return nil, domainerrors.BadRequest("Comment must not be empty.")
	}
	if _, err := u.docRepo.GetByID(ctx, docID); err != nil {
		return nil, err
	}

	review := &entities.DocumentReview{
		ID:         utils.GenerateUUIDv7(),
		DocumentID: docID,
		ReviewerID: principal.UserID,
		Comment:    comment,
		CreatedAt:  time.Now(),
	}
	if err := u.docRepo.AppendReview(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// ListReviews returns a document's comment timeline in order
func (u *KYCUsecase) ListReviews(ctx context.Context, docID uuid.UUID) ([]*entities.DocumentReview, error) {
	if _, err := u.docRepo.GetByID(ctx, docID); err != nil {
		return nil, err
	}
	return u.docRepo.ListReviews(ctx, docID)
}

// ListUserDocuments lists all documents of one user
func (u *KYCUsecase) ListUserDocuments(ctx context.Context, userID uuid.UUID) ([]*entities.KYCDocument, error) {
	return u.docRepo.ListByUser(ctx, userID)
}

// ListForVerification lists the reviewer queue with filters
func (u *KYCUsecase) ListForVerification(ctx context.Context, filter entities.DocumentFilter) ([]*entities.KYCDocument, int64, error) {
	if filter.Status != "" && !entities.ValidDocumentStatus(filter.Status) {
		return nil, 0, domainerrors.BadRequest("Unknown status filter.")
	}
	if filter.DocumentType != "" && !entities.ValidDocumentType(filter.DocumentType) {
		return nil, 0, domainerrors.BadRequest("Unknown document type filter.")
	}
	return u.docRepo.ListForVerification(ctx, filter)
}

// OpenDocumentFile authorizes and opens a document's stored file for
// download. Owners and principals with KYC view access may download;
// everyone else gets 403 regardless of whether the file exists.
func (u *KYCUsecase) OpenDocumentFile(ctx context.Context, principal *entities.Principal, docID uuid.UUID) (*entities.KYCDocument, io.ReadCloser, error) {
	doc, err := u.docRepo.GetByID(ctx, docID)
	if err != nil {
		return nil, nil, err
	}
	if doc.UserID != principal.UserID && !principal.CanViewAnyKYC() {
		return nil, nil, domainerrors.Forbidden("You are not allowed to access this document.")
	}

	f, err := u.fileStore.Open(doc.FileName)
	if err != nil {
		return nil, nil, err
	}
	return doc, f, nil
}

// RevealDocumentNumber decrypts the sealed document number for a
// principal with KYC view access. Owners may reveal their own.
func (u *KYCUsecase) RevealDocumentNumber(ctx context.Context, principal *entities.Principal, docID uuid.UUID) (string, error) {
	doc, err := u.docRepo.GetByID(ctx, docID)
	if err != nil {
		return "", err
	}
	if doc.UserID != principal.UserID && !principal.CanViewAnyKYC() {
		return "", domainerrors.Forbidden("You are not allowed to access this document.")
	}
	return u.secretBox.Open(doc.DocumentNumberEnc)
}

// GetProfile computes the aggregate verification view for one user
func (u *KYCUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*entities.KYCProfile, error) {
	docs, err := u.docRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	profile := &entities.KYCProfile{
		UserID:        userID,
		RequiredCount: len(entities.RequiredDocumentTypes),
		UploadedCount: len(docs),
	}

	uploadedRequired := 0
	verifiedRequired := 0
	for _, doc := range docs {
		switch doc.Status {
		case entities.DocumentStatusVerified:
			if doc.ExpiresAt.Valid && doc.ExpiresAt.Time.Before(now) {
				profile.ExpiredCount++
			} else {
				profile.ApprovedCount++
			}
		case entities.DocumentStatusRejected:
			profile.RejectedCount++
		default:
			profile.PendingCount++
		}

		for _, required := range entities.RequiredDocumentTypes {
			if doc.DocumentType != required {
				continue
			}
			uploadedRequired++
			if doc.Status == entities.DocumentStatusVerified && !(doc.ExpiresAt.Valid && doc.ExpiresAt.Time.Before(now)) {
				verifiedRequired++
			}
		}
	}

	if profile.RequiredCount > 0 {
		profile.PercentUploaded = float64(uploadedRequired) / float64(profile.RequiredCount) * 100
	}

	switch {
	case verifiedRequired == profile.RequiredCount && profile.RequiredCount > 0:
		profile.Status = entities.ProfileStatusVerified
	case profile.ExpiredCount > 0:
		profile.Status = entities.ProfileStatusExpired
	case profile.RejectedCount > 0:
		profile.Status = entities.ProfileStatusRejected
	default:
		profile.Status = entities.ProfileStatusPending
	}
	return profile, nil
}

// validVerificationTransition guards reviewer decisions. Rejected is
// terminal until the holder re-uploads.
func validVerificationTransition(from, to entities.DocumentStatus) bool {
	switch from {
	case entities.DocumentStatusPending:
		return to == entities.DocumentStatusVerified || to == entities.DocumentStatusRejected
	case entities.DocumentStatusVerified:
		return to == entities.DocumentStatusRejected || to == entities.DocumentStatusPending
	}
	return false
}

// requiresRemarks marks the decisions that must carry an explanation:
// rejections and revocations of a verified document.
func requiresRemarks(from, to entities.DocumentStatus) bool {
	if to == entities.DocumentStatusRejected {
		return true
	}
	return from == entities.DocumentStatusVerified && to == entities.DocumentStatusPending
}
