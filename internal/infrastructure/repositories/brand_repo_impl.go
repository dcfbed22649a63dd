package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"creator-kita.backend/internal/domain/entities"
	domainerrors "creator-kita.backend/internal/domain/errors"
	"creator-kita.backend/internal/infrastructure/models"
)

// BrandRepository implements brand data operations
type BrandRepository struct {
	db *gorm.DB
}

// NewBrandRepository creates a new brand repository
func NewBrandRepository(db *gorm.DB) *BrandRepository {
	return &BrandRepository{db: db}
}

// Create creates a new brand
func (r *BrandRepository) Create(ctx context.Context, brand *entities.Brand) error {
	m := &models.Brand{
		ID:           brand.ID,
		UserID:       brand.UserID,
		CompanyName:  brand.CompanyName,
		Website:      nullStringPtr(brand.Website),
		ContactEmail: brand.ContactEmail,
		Status:       string(brand.Status),
		CreatedAt:    brand.CreatedAt,
		UpdatedAt:    brand.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	brand.ID = m.ID
	return nil
}

// GetByID gets a brand by ID
func (r *BrandRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Brand, error) {
	var m models.Brand
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return brandToEntity(&m), nil
}

// GetByUserID gets a brand by its owning user ID
func (r *BrandRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Brand, error) {
	var m models.Brand
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return brandToEntity(&m), nil
}

// Update updates a brand
func (r *BrandRepository) Update(ctx context.Context, brand *entities.Brand) error {
	updates := map[string]interface{}{
		"company_name": brand.CompanyName,
		"website":      nullStringPtr(brand.Website),
		"updated_at":   time.Now(),
	}

	result := r.db.WithContext(ctx).Model(&models.Brand{}).Where("id = ?", brand.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateStatus updates a brand's lifecycle status
func (r *BrandRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.UserStatus) error {
	result := r.db.WithContext(ctx).Model(&models.Brand{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists brands with optional status filter and database-level pagination
func (r *BrandRepository) List(ctx context.Context, status entities.UserStatus, page, limit int) ([]*entities.Brand, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Brand{})
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC")
	if limit > 0 {
		query = query.Offset((page - 1) * limit).Limit(limit)
	}

	var brandModels []models.Brand
	if err := query.Find(&brandModels).Error; err != nil {
		return nil, 0, err
	}

	brands := make([]*entities.Brand, 0, len(brandModels))
	for i := range brandModels {
		brands = append(brands, brandToEntity(&brandModels[i]))
	}
	return brands, total, nil
}

func brandToEntity(m *models.Brand) *entities.Brand {
	b := &entities.Brand{
		ID:           m.ID,
		UserID:       m.UserID,
		CompanyName:  m.CompanyName,
		ContactEmail: m.ContactEmail,
		Status:       entities.UserStatus(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.Website != nil {
		b.Website.SetValid(*m.Website)
	}
	return b
}
