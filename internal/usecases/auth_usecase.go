package usecases

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"creator-kita.backend/internal/domain/entities"
	domainerrors "creator-kita.backend/internal/domain/errors"
	"creator-kita.backend/internal/domain/repositories"
	"creator-kita.backend/pkg/crypto"
	"creator-kita.backend/pkg/jwt"
	"creator-kita.backend/pkg/redis"
	"creator-kita.backend/pkg/utils"
)

// Signup uniqueness messages. The phone message is load-bearing: the
// mobile clients match on it.
const (
	MsgEmailTaken    = "Email is already registered."
	MsgUsernameTaken = "Username is already taken."
	MsgPhoneTaken    = "Phone number is already registered."
)

const sessionTTL = 24 * time.Hour

// AuthUsecase handles authentication business logic
type AuthUsecase struct {
	userRepo     repositories.UserRepository
	userTypeRepo repositories.UserTypeRepository
	roleRepo     repositories.RoleRepository
	jwtService   *jwt.JWTService
	sessionStore *redis.SessionStore
}

// NewAuthUsecase creates a new auth usecase. sessionStore may be nil
// when Redis-backed sessions are disabled.
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	userTypeRepo repositories.UserTypeRepository,
	roleRepo repositories.RoleRepository,
	jwtService *jwt.JWTService,
	sessionStore *redis.SessionStore,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:     userRepo,
		userTypeRepo: userTypeRepo,
		roleRepo:     roleRepo,
		jwtService:   jwtService,
		sessionStore: sessionStore,
	}
}

// CheckSignupUniqueness verifies email, username and phone number are
// all unused. Each duplicate has its own client-facing message.
func (u *AuthUsecase) CheckSignupUniqueness(ctx context.Context, email, username, phoneNumber string) error {
	exists, err := u.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return domainerrors.BadRequest(MsgEmailTaken)
	}

	exists, err = u.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return err
	}
	if exists {
		return domainerrors.BadRequest(MsgUsernameTaken)
	}

	exists, err = u.userRepo.ExistsByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		return err
	}
	if exists {
		return domainerrors.BadRequest(MsgPhoneTaken)
	}
	return nil
}

// Register creates a platform user of the given user type
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.User, error) {
	if err := u.CheckSignupUniqueness(ctx, input.Email, input.Username, input.PhoneNumber); err != nil {
		return nil, err
	}

	userType, err := u.userTypeRepo.GetByName(ctx, input.UserType)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.BadRequest("Unknown user type.")
		}
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entities.User{
		ID:           utils.GenerateUUIDv7(),
		Email:        input.Email,
		Username:     input.Username,
		PhoneNumber:  input.PhoneNumber,
		PasswordHash: passwordHash,
		UserTypeID:   userType.ID,
		Status:       entities.UserStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a user and returns tokens, or a session ID when
// the client asked for a server-held session.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NewAppError(http.StatusUnauthorized, domainerrors.CodeInvalidCredentials, "Invalid email or password.", domainerrors.ErrInvalidCredentials)
		}
		return nil, err
	}

	if user.Status == entities.UserStatusDeleted {
		return nil, domainerrors.NewAppError(http.StatusUnauthorized, domainerrors.CodeInvalidCredentials, "Invalid email or password.", domainerrors.ErrInvalidCredentials)
	}
	if user.Status == entities.UserStatusInactive {
		return nil, domainerrors.Forbidden("Account is deactivated.")
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.NewAppError(http.StatusUnauthorized, domainerrors.CodeInvalidCredentials, "Invalid email or password.", domainerrors.ErrInvalidCredentials)
	}

	tokenPair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, u.roleClaim(ctx, user))
	if err != nil {
		return nil, err
	}

	if input.UseSession && u.sessionStore != nil {
		sessionID := uuid.New().String()
		err := u.sessionStore.CreateSession(ctx, sessionID, &redis.SessionData{
			AccessToken:  tokenPair.AccessToken,
			RefreshToken: tokenPair.RefreshToken,
		}, sessionTTL)
		if err != nil {
			return nil, err
		}
		return &entities.AuthResponse{SessionID: sessionID, User: user}, nil
	}

	return &entities.AuthResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User:         user,
	}, nil
}

// RefreshToken issues a new token pair from a valid refresh token
func (u *AuthUsecase) RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, domainerrors.Unauthorized("Invalid refresh token.")
	}

	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, domainerrors.Unauthorized("Account not found.")
	}
	if user.Status == entities.UserStatusDeleted || user.Status == entities.UserStatusInactive {
		return nil, domainerrors.Unauthorized("Account is not active.")
	}

	return u.jwtService.GenerateTokenPair(user.ID, user.Email, u.roleClaim(ctx, user))
}

// Logout removes a server-held session. Token-based clients just drop
// their tokens.
func (u *AuthUsecase) Logout(ctx context.Context, sessionID string) error {
	if u.sessionStore == nil || sessionID == "" {
		return nil
	}
	return u.sessionStore.DeleteSession(ctx, sessionID)
}

// ChangePassword verifies the current password and sets a new one
func (u *AuthUsecase) ChangePassword(ctx context.Context, userID uuid.UUID, input *entities.ChangePasswordInput) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !crypto.CheckPassword(input.CurrentPassword, user.PasswordHash) {
		return domainerrors.BadRequest("Current password is incorrect.")
	}

	newHash, err := crypto.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}
	return u.userRepo.UpdatePassword(ctx, userID, newHash)
}

// GetUserByID gets a user by ID
func (u *AuthUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

// roleClaim resolves the role name embedded in tokens. The claim is
// informational; authorization re-resolves the principal per request.
func (u *AuthUsecase) roleClaim(ctx context.Context, user *entities.User) string {
	if !user.RoleID.Valid {
		return ""
	}
	name, _, err := u.roleRepo.PermissionsForUser(ctx, user.ID)
	if err != nil {
		return ""
	}
	return name
}
