package models

import (
	"time"

	"github.com/google/uuid"
)

type Creator struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID      uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	CreatorID   string    `gorm:"type:varchar(10);uniqueIndex;not null"`
	DisplayName string    `gorm:"type:varchar(100);not null"`
	Bio         *string   `gorm:"type:text"`
	Instagram   *string   `gorm:"type:varchar(255)"`
	Facebook    *string   `gorm:"type:varchar(255)"`
	YouTube     *string   `gorm:"type:varchar(255);column:youtube"`
	Status      string    `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Brand struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID       uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	CompanyName  string    `gorm:"type:varchar(150);not null"`
	Website      *string   `gorm:"type:varchar(255)"`
	ContactEmail string    `gorm:"type:varchar(255);not null"`
	Status       string    `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
