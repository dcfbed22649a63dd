package usecases_test

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/volatiletech/null/v8"

	"creator-kita.backend/internal/domain/entities"
)

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByPhoneNumber(ctx context.Context, phoneNumber string) (bool, error) {
	args := m.Called(ctx, phoneNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.UserStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, search string, page, limit int) ([]*entities.User, int64, error) {
	args := m.Called(ctx, search, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.User), args.Get(1).(int64), args.Error(2)
}

// Mock UserTypeRepository
type MockUserTypeRepository struct {
	mock.Mock
}

func (m *MockUserTypeRepository) Create(ctx context.Context, userType *entities.UserType) error {
	args := m.Called(ctx, userType)
	return args.Error(0)
}

func (m *MockUserTypeRepository) GetByName(ctx context.Context, name string) (*entities.UserType, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.UserType), args.Error(1)
}

func (m *MockUserTypeRepository) List(ctx context.Context) ([]*entities.UserType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.UserType), args.Error(1)
}

// Mock CreatorRepository
type MockCreatorRepository struct {
	mock.Mock
}

func (m *MockCreatorRepository) Create(ctx context.Context, creator *entities.Creator) error {
	args := m.Called(ctx, creator)
	return args.Error(0)
}

func (m *MockCreatorRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Creator, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Creator), args.Error(1)
}

func (m *MockCreatorRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Creator, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Creator), args.Error(1)
}

func (m *MockCreatorRepository) Update(ctx context.Context, creator *entities.Creator) error {
	args := m.Called(ctx, creator)
	return args.Error(0)
}

func (m *MockCreatorRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.UserStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockCreatorRepository) List(ctx context.Context, status entities.UserStatus, page, limit int) ([]*entities.Creator, int64, error) {
	args := m.Called(ctx, status, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Creator), args.Get(1).(int64), args.Error(2)
}

func (m *MockCreatorRepository) NextCreatorID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// Mock BrandRepository
type MockBrandRepository struct {
	mock.Mock
}

func (m *MockBrandRepository) Create(ctx context.Context, brand *entities.Brand) error {
	args := m.Called(ctx, brand)
	return args.Error(0)
}

func (m *MockBrandRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Brand, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Brand), args.Error(1)
}

func (m *MockBrandRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Brand, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Brand), args.Error(1)
}

func (m *MockBrandRepository) Update(ctx context.Context, brand *entities.Brand) error {
	args := m.Called(ctx, brand)
	return args.Error(0)
}

func (m *MockBrandRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.UserStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBrandRepository) List(ctx context.Context, status entities.UserStatus, page, limit int) ([]*entities.Brand, int64, error) {
	args := m.Called(ctx, status, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Brand), args.Get(1).(int64), args.Error(2)
}

// Mock RoleRepository
type MockRoleRepository struct {
	mock.Mock
}

func (m *MockRoleRepository) Create(ctx context.Context, role *entities.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *MockRoleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Role, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Role), args.Error(1)
}

func (m *MockRoleRepository) GetByName(ctx context.Context, name string) (*entities.Role, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Role), args.Error(1)
}

func (m *MockRoleRepository) List(ctx context.Context) ([]*entities.Role, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Role), args.Error(1)
}

func (m *MockRoleRepository) Update(ctx context.Context, role *entities.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *MockRoleRepository) SyncAssignedUsers(ctx context.Context, roleID uuid.UUID, userIDs []uuid.UUID) error {
	args := m.Called(ctx, roleID, userIDs)
	return args.Error(0)
}

func (m *MockRoleRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRoleRepository) MemberIDs(ctx context.Context, roleID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, roleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockRoleRepository) PermissionsForUser(ctx context.Context, userID uuid.UUID) (string, []entities.Permission, error) {
	args := m.Called(ctx, userID)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).([]entities.Permission), args.Error(2)
}

// Mock KYCDocumentRepository
type MockKYCDocumentRepository struct {
	mock.Mock
}

func (m *MockKYCDocumentRepository) Create(ctx context.Context, doc *entities.KYCDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockKYCDocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.KYCDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.KYCDocument), args.Error(1)
}

func (m *MockKYCDocumentRepository) Update(ctx context.Context, doc *entities.KYCDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockKYCDocumentRepository) UpdateVerification(ctx context.Context, id uuid.UUID, status entities.DocumentStatus, remarks null.String, verifiedBy uuid.UUID, verifiedAt time.Time) error {
	args := m.Called(ctx, id, status, remarks, verifiedBy, verifiedAt)
	return args.Error(0)
}

func (m *MockKYCDocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockKYCDocumentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.KYCDocument, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.KYCDocument), args.Error(1)
}

func (m *MockKYCDocumentRepository) ListForVerification(ctx context.Context, filter entities.DocumentFilter) ([]*entities.KYCDocument, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.KYCDocument), args.Get(1).(int64), args.Error(2)
}

func (m *MockKYCDocumentRepository) ListVerifiedExpired(ctx context.Context, before time.Time, limit int) ([]*entities.KYCDocument, error) {
	args := m.Called(ctx, before, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.KYCDocument), args.Error(1)
}

func (m *MockKYCDocumentRepository) AppendReview(ctx context.Context, review *entities.DocumentReview) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockKYCDocumentRepository) ListReviews(ctx context.Context, documentID uuid.UUID) ([]*entities.DocumentReview, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.DocumentReview), args.Error(1)
}

// Mock FileStore
type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Save(r io.Reader, originalName string) (string, int64, error) {
	args := m.Called(r, originalName)
	return args.String(0), args.Get(1).(int64), args.Error(2)
}

func (m *MockFileStore) Open(storedName string) (io.ReadCloser, error) {
	args := m.Called(storedName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *MockFileStore) Remove(storedName string) error {
	args := m.Called(storedName)
	return args.Error(0)
}
