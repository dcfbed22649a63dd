package models

import (
	"time"

	"github.com/google/uuid"
)

type KYCDocument struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID               uuid.UUID `gorm:"type:uuid;index;not null"`
	DocumentType         string    `gorm:"type:varchar(30);not null"`
	DocumentName         string    `gorm:"type:varchar(150);not null"`
	DocumentNumberEnc    string    `gorm:"type:text;not null"`
	DocumentNumberMasked string    `gorm:"type:varchar(60);not null"`
	FileName             string    `gorm:"type:varchar(255);not null"`
	OriginalFileName     string    `gorm:"type:varchar(255);not null"`
	ContentType          string    `gorm:"type:varchar(100)"`
	SizeBytes            int64
	Status               string     `gorm:"type:varchar(20);not null;default:'pending'"`
	VerificationRemarks  *string    `gorm:"type:text"`
	VerifiedBy           *uuid.UUID `gorm:"type:uuid"`
	VerifiedAt           *time.Time `gorm:"type:timestamp"`
	ExpiresAt            *time.Time `gorm:"type:timestamp;index"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type DocumentReview struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	DocumentID uuid.UUID `gorm:"type:uuid;index;not null"`
	ReviewerID uuid.UUID `gorm:"type:uuid;not null"`
	Comment    string    `gorm:"type:text;not null"`
	CreatedAt  time.Time
}

// SequenceCounter backs atomic allocation of human-readable IDs.
type SequenceCounter struct {
	Name  string `gorm:"type:varchar(50);primaryKey"`
	Value int64  `gorm:"not null"`
}
