package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"creator-kita.backend/internal/domain/entities"
	domainerrors "creator-kita.backend/internal/domain/errors"
	"creator-kita.backend/internal/infrastructure/models"
)

const (
	creatorIDPrefix   = "CA"
	creatorIDSequence = "creator_id"
)

// CreatorRepository implements creator data operations
type CreatorRepository struct {
	db *gorm.DB
}

// NewCreatorRepository creates a new creator repository
func NewCreatorRepository(db *gorm.DB) *CreatorRepository {
	return &CreatorRepository{db: db}
}

// Create creates a new creator profile
func (r *CreatorRepository) Create(ctx context.Context, creator *entities.Creator) error {
	m := creatorToModel(creator)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	creator.ID = m.ID
	return nil
}

// GetByID gets a creator by ID
func (r *CreatorRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Creator, error) {
	var m models.Creator
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return creatorToEntity(&m), nil
}

// GetByUserID gets a creator by its owning user ID
func (r *CreatorRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Creator, error) {
	var m models.Creator
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return creatorToEntity(&m), nil
}

// Update updates a creator profile
func (r *CreatorRepository) Update(ctx context.Context, creator *entities.Creator) error {
	updates := map[string]interface{}{
		"display_name": creator.DisplayName,
		"bio":          nullStringPtr(creator.Bio),
		"instagram":    nullStringPtr(creator.SocialMedia.Instagram),
		"facebook":     nullStringPtr(creator.SocialMedia.Facebook),
		"youtube":      nullStringPtr(creator.SocialMedia.YouTube),
		"updated_at":   time.Now(),
	}

	result := r.db.WithContext(ctx).Model(&models.Creator{}).Where("id = ?", creator.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateStatus updates a creator's lifecycle status
func (r *CreatorRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.UserStatus) error {
	result := r.db.WithContext(ctx).Model(&models.Creator{}).Where("id = ?", id).Updates(map[string]interface{}{
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

// List lists creators with optional status filter and database-level pagination
func (r *CreatorRepository) List(ctx context.Context, status entities.UserStatus, page, limit int) ([]*entities.Creator, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Creator{})
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("creator_id ASC")
	if limit > 0 {
		query = query.Offset((page - 1) * limit).Limit(limit)
	}

	var creatorModels []models.Creator
	if err := query.Find(&creatorModels).Error; err != nil {
		return nil, 0, err
	}

	creators := make([]*entities.Creator, 0, len(creatorModels))
	for i := range creatorModels {
		creators = append(creators, creatorToEntity(&creatorModels[i]))
	}
	return creators, total, nil
}

// NextCreatorID allocates the next sequential creator ID (CA00001, ...)
// from an atomic counter. The counter row is seeded from the highest
// existing creator ID the first time it is needed, then incremented
// under a transaction so concurrent signups never observe the same
// value.
func (r *CreatorRepository) NextCreatorID(ctx context.Context) (string, error) {
	var value int64

	// One retry covers the race where two first-ever signups both try
	// to seed the counter row and one loses on the primary key.
	var err error
	for attempt := 0; attempt < 2; attempt++ {
		value, err = r.incrementCreatorSequence(ctx)
		if err == nil {
			break
		}
	}
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s%05d", creatorIDPrefix, value), nil
}

func (r *CreatorRepository) incrementCreatorSequence(ctx context.Context) (int64, error) {
	var value int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.SequenceCounter{}).
			Where("name = ?", creatorIDSequence).
			Update("value", gorm.Expr("value + 1"))
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			seed, err := r.highestAssignedNumber(tx)
			if err != nil {
				return err
			}
			value = seed + 1
			return tx.Create(&models.SequenceCounter{Name: creatorIDSequence, Value: value}).Error
		}

		var counter models.SequenceCounter
		if err := tx.Where("name = ?", creatorIDSequence).First(&counter).Error; err != nil {
			return err
		}
		value = counter.Value
		return nil
	})
	return value, err
}

func (r *CreatorRepository) highestAssignedNumber(tx *gorm.DB) (int64, error) {
	var maxID *string
	if err := tx.Model(&models.Creator{}).Select("MAX(creator_id)").Scan(&maxID).Error; err != nil {
		return 0, err
	}
	if maxID == nil || *maxID == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(strings.TrimPrefix(*maxID, creatorIDPrefix), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed creator id %q: %w", *maxID, err)
	}
	return n, nil
}

func creatorToModel(c *entities.Creator) *models.Creator {
	return &models.Creator{
		ID:          c.ID,
		UserID:      c.UserID,
		CreatorID:   c.CreatorID,
		DisplayName: c.DisplayName,
		Bio:         nullStringPtr(c.Bio),
		Instagram:   nullStringPtr(c.SocialMedia.Instagram),
		Facebook:    nullStringPtr(c.SocialMedia.Facebook),
		YouTube:     nullStringPtr(c.SocialMedia.YouTube),
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func creatorToEntity(m *models.Creator) *entities.Creator {
	c := &entities.Creator{
		ID:          m.ID,
		UserID:      m.UserID,
		CreatorID:   m.CreatorID,
		DisplayName: m.DisplayName,
		Status:      entities.UserStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.Bio != nil {
		c.Bio.SetValid(*m.Bio)
	}
	if m.Instagram != nil {
		c.SocialMedia.Instagram.SetValid(*m.Instagram)
	}
	if m.Facebook != nil {
		c.SocialMedia.Facebook.SetValid(*m.Facebook)
	}
	if m.YouTube != nil {
		c.SocialMedia.YouTube.SetValid(*m.YouTube)
	}
	return c
}
