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

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	m := userToModel(user)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	user.ID = m.ID
	return nil
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// GetByEmail gets a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// ExistsByEmail reports whether a user with the email exists
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email = ?", email)
}

// ExistsByUsername reports whether a user with the username exists
func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "username = ?", username)
}

// ExistsByPhoneNumber reports whether a user with the phone number exists
func (r *UserRepository) ExistsByPhoneNumber(ctx context.Context, phoneNumber string) (bool, error) {
	return r.exists(ctx, "phone_number = ?", phoneNumber)
}

func (r *UserRepository) exists(ctx context.Context, query string, arg interface{}) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where(query, arg).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateStatus updates a user's lifecycle status
func (r *UserRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.UserStatus) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
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

// UpdatePassword updates a user's password hash
func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"password_hash": passwordHash,
		"updated_at":    time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SoftDelete marks a user as deleted. The row is never removed.
func (r *UserRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.UpdateStatus(ctx, id, entities.UserStatusDeleted)
}

// List lists users with optional search and database-level pagination
func (r *UserRepository) List(ctx context.Context, search string, page, limit int) ([]*entities.User, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.User{})

	if search != "" {
		searchTerm := "%" + search + "%"
		query = query.Where("email LIKE ? OR username LIKE ?", searchTerm, searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC")
	if limit > 0 {
		query = query.Offset((page - 1) * limit).Limit(limit)
	}

	var userModels []models.User
	if err := query.Find(&userModels).Error; err != nil {
		return nil, 0, err
	}

	users := make([]*entities.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, userToEntity(&userModels[i]))
	}
	return users, total, nil
}

func userToModel(u *entities.User) *models.User {
	m := &models.User{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		PhoneNumber:  u.PhoneNumber,
		PasswordHash: u.PasswordHash,
		UserTypeID:   u.UserTypeID,
		Status:       string(u.Status),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
	if u.RoleID.Valid {
		if roleID, err := uuid.Parse(u.RoleID.String); err == nil {
			m.RoleID = &roleID
		}
	}
	return m
}

func userToEntity(m *models.User) *entities.User {
	u := &entities.User{
		ID:           m.ID,
		Email:        m.Email,
		Username:     m.Username,
		PhoneNumber:  m.PhoneNumber,
		PasswordHash: m.PasswordHash,
		UserTypeID:   m.UserTypeID,
		Status:       entities.UserStatus(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.RoleID != nil {
		u.RoleID.SetValid(m.RoleID.String())
	}
	return u
}

// UserTypeRepository implements user type lookups
type UserTypeRepository struct {
	db *gorm.DB
}

// NewUserTypeRepository creates a new user type repository
func NewUserTypeRepository(db *gorm.DB) *UserTypeRepository {
	return &UserTypeRepository{db: db}
}

// Create creates a new user type
func (r *UserTypeRepository) Create(ctx context.Context, userType *entities.UserType) error {
	m := &models.UserType{
		ID:        userType.ID,
		Name:      userType.Name,
		CreatedAt: userType.CreatedAt,
	}
	if userType.Description.Valid {
		m.Description = &userType.Description.String
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	userType.ID = m.ID
	return nil
}

// GetByName gets a user type by name
func (r *UserTypeRepository) GetByName(ctx context.Context, name string) (*entities.UserType, error) {
	var m models.UserType
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userTypeToEntity(&m), nil
}

// List lists all user types
func (r *UserTypeRepository) List(ctx context.Context) ([]*entities.UserType, error) {
	var typeModels []models.UserType
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&typeModels).Error; err != nil {
		return nil, err
	}
	types := make([]*entities.UserType, 0, len(typeModels))
	for i := range typeModels {
		types = append(types, userTypeToEntity(&typeModels[i]))
	}
	return types, nil
}

func userTypeToEntity(m *models.UserType) *entities.UserType {
	t := &entities.UserType{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
	}
	if m.Description != nil {
		t.Description.SetValid(*m.Description)
	}
	return t
}
