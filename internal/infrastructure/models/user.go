package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Username     string     `gorm:"type:varchar(50);uniqueIndex;not null"`
	PhoneNumber  string     `gorm:"type:varchar(20);uniqueIndex;not null"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	UserTypeID   uuid.UUID  `gorm:"type:uuid;index"`
	RoleID       *uuid.UUID `gorm:"type:uuid;index"`
	Status       string     `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type UserType struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name        string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	Description *string   `gorm:"type:varchar(255)"`
	CreatedAt   time.Time
}
