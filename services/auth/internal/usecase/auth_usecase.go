package usecase

import (
	"context"
	"strings"
	"time"

	"newsboard/pkg/apperr"
	"newsboard/pkg/database"
	"newsboard/pkg/jwt"
	"newsboard/pkg/logger"
	"newsboard/pkg/password"
	"newsboard/pkg/validation"
	"newsboard/services/auth/internal/entity"
	"newsboard/services/auth/internal/repo/persistent"
)

const (
	badCredentials = "No active account found with the given credentials"
	badToken       = "Token is invalid or expired"
	usernameTaken  = "A user with that username already exists."
)

type RegisterInput struct {
	Username string `json:"username" validate:"notblank,max=150,username"`
	Password string `json:"password" validate:"notblank"`
	Email    string `json:"email" validate:"omitempty,email"`
}

type AuthUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)
	Login(ctx context.Context, username, secret string) (*jwt.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, refreshToken string) error
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	blacklist  jwt.Blacklist
	passwords  password.Validator
	hasher     password.Hasher
	validator  *validation.Validator
	logger     *logger.Logger
	now        func() time.Time
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	jwtService *jwt.Service,
	blacklist jwt.Blacklist,
	passwords password.Validator,
	hasher password.Hasher,
	validator *validation.Validator,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		passwords:  passwords,
		hasher:     hasher,
		validator:  validator,
		logger:     logger,
		now:        time.Now,
	}
}

func (uc *authUseCase) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)

	msgs := uc.validator.Struct(input)
	if strings.TrimSpace(input.Password) != "" {
		msgs = append(msgs, uc.passwords.Validate(input.Password, input.Username)...)
	}
	if len(msgs) > 0 {
		return nil, apperr.Validation(msgs...)
	}

	hashed, err := uc.hasher.Hash(input.Password)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, err
	}

	user := &entity.User{
		Username: input.Username,
		Email:    input.Email,
		Password: hashed,
		Role:     entity.RoleMember,
		IsActive: true,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperr.Conflict(usernameTaken)
		}
		uc.logger.Error("Failed to create user: %v", err)
		return nil, err
	}

	uc.logger.Info("User %s registered", user.Username)
	return user, nil
}

func (uc *authUseCase) Login(ctx context.Context, username, secret string) (*jwt.TokenPair, error) {
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if database.IsNotFound(err) {
		return nil, apperr.Unauthenticated(badCredentials)
	}
	if err != nil {
		return nil, err
	}
	if !user.IsActive || !uc.hasher.Matches(user.Password, secret) {
		return nil, apperr.Unauthenticated(badCredentials)
	}

	pair, err := uc.jwtService.GenerateTokenPair(user.ID, user.Username)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, err
	}

	if err := uc.userRepo.TouchLastLogin(ctx, user.ID, uc.now()); err != nil {
		uc.logger.Warn("Failed to record last login for %s: %v", user.Username, err)
	}

	return pair, nil
}

// Refresh issues a new access token for a live, unrevoked refresh token
// whose account is still active.
func (uc *authUseCase) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := uc.refreshClaims(ctx, refreshToken)
	if err != nil {
		return "", err
	}

	user, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if database.IsNotFound(err) {
		return "", apperr.Unauthenticated(badToken)
	}
	if err != nil {
		return "", err
	}
	if !user.IsActive {
		return "", apperr.Unauthenticated(badToken)
	}

	return uc.jwtService.GenerateToken(user.ID, user.Username)
}

func (uc *authUseCase) Logout(ctx context.Context, refreshToken string) error {
	claims, err := uc.refreshClaims(ctx, refreshToken)
	if err != nil {
		return err
	}

	if err := uc.blacklist.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		uc.logger.Error("Failed to revoke token: %v", err)
		return err
	}
	return nil
}

func (uc *authUseCase) refreshClaims(ctx context.Context, refreshToken string) (*jwt.Claims, error) {
	claims, err := uc.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperr.Unauthenticated(badToken)
	}

	revoked, err := uc.blacklist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, apperr.Unauthenticated(badToken)
	}
	return claims, nil
}
