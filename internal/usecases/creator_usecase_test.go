package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"creator-kita.backend/internal/domain/entities"
	domainerrors "creator-kita.backend/internal/domain/errors"
	"creator-kita.backend/internal/usecases"
	"creator-kita.backend/pkg/jwt"
)

func newCreatorUsecaseForTest(creatorRepo *MockCreatorRepository, userRepo *MockUserRepository, userTypeRepo *MockUserTypeRepository) *usecases.CreatorUsecase {
	jwtSvc := jwt.NewJWTService("test-secret", 15*time.Minute, 24*time.Hour)
	auth := usecases.NewAuthUsecase(userRepo, userTypeRepo, new(MockRoleRepository), jwtSvc, nil)
	return usecases.NewCreatorUsecase(creatorRepo, userRepo, userTypeRepo, auth)
}

func TestCreatorUsecase_Signup(t *testing.T) {
	ctx := context.Background()
	creatorRepo := new(MockCreatorRepository)
	userRepo := new(MockUserRepository)
	userTypeRepo := new(MockUserTypeRepository)
	uc := newCreatorUsecaseForTest(creatorRepo, userRepo, userTypeRepo)

	userRepo.On("ExistsByEmail", ctx, "c@x.io").Return(false, nil).Once()
	userRepo.On("ExistsByUsername", ctx, "creator1").Return(false, nil).Once()
	userRepo.On("ExistsByPhoneNumber", ctx, "+911").Return(false, nil).Once()
	userTypeRepo.On("GetByName", ctx, usecases.UserTypeCreator).Return(&entities.UserType{ID: uuid.New(), Name: "Creator"}, nil).Once()
	creatorRepo.On("NextCreatorID", ctx).Return("CA00007", nil).Once()
	userRepo.On("Create", ctx, mock.AnythingOfType("*entities.User")).Return(nil).Once()
	creatorRepo.On("Create", ctx, mock.AnythingOfType("*entities.Creator")).Return(nil).Once()

	creator, err := uc.Signup(ctx, &entities.CreatorSignupInput{
		DisplayName: "Cree",
		Email:       "c@x.io",
		Username:    "creator1",
		PhoneNumber: "+911",
		Password:    "password1",
		Instagram:   "cree.gram",
	})
	assert.NoError(t, err)
	assert.Equal(t, "CA00007", creator.CreatorID)
	assert.Equal(t, entities.UserStatusPending, creator.Status)
	assert.Equal(t, "cree.gram", creator.SocialMedia.Instagram.String)
	assert.False(t, creator.SocialMedia.Facebook.Valid)
}

func TestCreatorUsecase_Signup_DuplicatePhone(t *testing.T) {
	ctx := context.Background()
	creatorRepo := new(MockCreatorRepository)
	userRepo := new(MockUserRepository)
	uc := newCreatorUsecaseForTest(creatorRepo, userRepo, new(MockUserTypeRepository))

	userRepo.On("ExistsByEmail", ctx, mock.Anything).Return(false, nil).Once()
	userRepo.On("ExistsByUsername", ctx, mock.Anything).Return(false, nil).Once()
	userRepo.On("ExistsByPhoneNumber", ctx, "+911").Return(true, nil).Once()

	_, err := uc.Signup(ctx, &entities.CreatorSignupInput{
		DisplayName: "Cree", Email: "c@x.io", Username: "creator1", PhoneNumber: "+911", Password: "password1",
	})
	assert.ErrorContains(t, err, "Phone number is already registered.")
	creatorRepo.AssertNotCalled(t, "NextCreatorID", ctx)
}

func TestCreatorUsecase_Update_PartialAndClear(t *testing.T) {
	ctx := context.Background()
	creatorRepo := new(MockCreatorRepository)
	uc := newCreatorUsecaseForTest(creatorRepo, new(MockUserRepository), new(MockUserTypeRepository))

	id := uuid.New()
	existing := &entities.Creator{ID: id, DisplayName: "Old", Status: entities.UserStatusActive}
	existing.Bio.SetValid("old bio")
	existing.SocialMedia.Instagram.SetValid("old.gram")

	creatorRepo.On("GetByID", ctx, id).Return(existing, nil).Once()
	creatorRepo.On("Update", ctx, mock.AnythingOfType("*entities.Creator")).Return(nil).Once()

	newName := "New"
	emptyInsta := ""
	updated, err := uc.Update(ctx, id, &entities.UpdateCreatorInput{
		DisplayName: &newName,
		Instagram:   &emptyInsta,
	})
	assert.NoError(t, err)
	assert.Equal(t, "New", updated.DisplayName)
	assert.False(t, updated.SocialMedia.Instagram.Valid)
	// Untouched fields keep their values.
	assert.Equal(t, "old bio", updated.Bio.String)
}

func TestCreatorUsecase_ApproveRejectTransitions(t *testing.T) {
	ctx := context.Background()

	t.Run("approve pending", func(t *testing.T) {
		creatorRepo := new(MockCreatorRepository)
		userRepo := new(MockUserRepository)
		uc := newCreatorUsecaseForTest(creatorRepo, userRepo, new(MockUserTypeRepository))

		id := uuid.New()
		userID := uuid.New()
		creatorRepo.On("GetByID", ctx, id).Return(&entities.Creator{ID: id, UserID: userID, Status: entities.UserStatusPending}, nil).Once()
		creatorRepo.On("UpdateStatus", ctx, id, entities.UserStatusActive).Return(nil).Once()
		userRepo.On("UpdateStatus", ctx, userID, entities.UserStatusActive).Return(nil).Once()

		assert.NoError(t, uc.Approve(ctx, id))
	})

	t.Run("cannot reject active", func(t *testing.T) {
		creatorRepo := new(MockCreatorRepository)
		uc := newCreatorUsecaseForTest(creatorRepo, new(MockUserRepository), new(MockUserTypeRepository))

		id := uuid.New()
		creatorRepo.On("GetByID", ctx, id).Return(&entities.Creator{ID: id, Status: entities.UserStatusActive}, nil).Once()

		err := uc.Reject(ctx, id)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	})

	t.Run("reactivate suspended", func(t *testing.T) {
		creatorRepo := new(MockCreatorRepository)
		userRepo := new(MockUserRepository)
		uc := newCreatorUsecaseForTest(creatorRepo, userRepo, new(MockUserTypeRepository))

		id := uuid.New()
		userID := uuid.New()
		creatorRepo.On("GetByID", ctx, id).Return(&entities.Creator{ID: id, UserID: userID, Status: entities.UserStatusInactive}, nil).Once()
		creatorRepo.On("UpdateStatus", ctx, id, entities.UserStatusActive).Return(nil).Once()
		userRepo.On("UpdateStatus", ctx, userID, entities.UserStatusActive).Return(nil).Once()

		assert.NoError(t, uc.Approve(ctx, id))
	})
}

func TestCreatorUsecase_SoftDelete(t *testing.T) {
	ctx := context.Background()
	creatorRepo := new(MockCreatorRepository)
	userRepo := new(MockUserRepository)
	uc := newCreatorUsecaseForTest(creatorRepo, userRepo, new(MockUserTypeRepository))

	id := uuid.New()
	userID := uuid.New()
	creatorRepo.On("GetByID", ctx, id).Return(&entities.Creator{ID: id, UserID: userID, Status: entities.UserStatusActive}, nil).Once()
	creatorRepo.On("UpdateStatus", ctx, id, entities.UserStatusDeleted).Return(nil).Once()
	userRepo.On("SoftDelete", ctx, userID).Return(nil).Once()

	assert.NoError(t, uc.SoftDelete(ctx, id))
}

func TestCreatorUsecase_List_BadStatus(t *testing.T) {
	ctx := context.Background()
	uc := newCreatorUsecaseForTest(new(MockCreatorRepository), new(MockUserRepository), new(MockUserTypeRepository))

	_, _, err := uc.List(ctx, entities.UserStatus("bogus"), 1, 10)
	assert.ErrorContains(t, err, "Unknown status filter")
}
