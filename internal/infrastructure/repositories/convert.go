package repositories

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// nullStringPtr converts a null.String into the *string shape gorm
// models use for nullable columns.
func nullStringPtr(s null.String) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

// nullTimePtr converts a null.Time into the *time.Time shape gorm
// models use for nullable columns.
func nullTimePtr(t null.Time) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
