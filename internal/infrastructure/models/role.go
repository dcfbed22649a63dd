package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role stores permissions and user types as JSON-encoded text columns.
type Role struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name        string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description *string   `gorm:"type:varchar(255)"`
	Permissions string    `gorm:"type:text;not null"`
	UserTypes   string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}
