package services

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"codelance_backend/internal/auth"
	"codelance_backend/internal/models"
	"codelance_backend/internal/repositories"
	"codelance_backend/internal/services/dto"
	"codelance_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const refreshTokenTTL = 7 * 24 * time.Hour

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	RefreshToken(db *gorm.DB, refreshToken string) (*dto.RefreshResponse, error)
	Logout(db *gorm.DB, refreshToken string) error
}

type AuthServiceImpl struct {
	userRepo         repositories.UserRepository
	profileRepo      repositories.ProfileRepository
	refreshTokenRepo repositories.RefreshTokenRepository
}

func NewAuthService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
) AuthService {
	return &AuthServiceImpl{
		userRepo:         userRepo,
		profileRepo:      profileRepo,
		refreshTokenRepo: refreshTokenRepo,
	}
}

// Register creates the User and its Profile in one transaction, so no
// identity ever exists without a role record. Admin is not selectable.
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	role := req.Role
	if role == "" {
		role = models.UserRoleClient
	}
	if role != models.UserRoleClient && role != models.UserRoleDeveloper {
		return nil, apperrors.ErrInvalidUserRole
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		return s.createUserWithProfile(tx, user, role)
	}); err != nil {
		return nil, err
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// createUserWithProfile inserts the identity plus its default profile
// within the caller's transaction.
func (s *AuthServiceImpl) createUserWithProfile(tx *gorm.DB, user *models.User, role models.UserRole) error {
	if err := s.userRepo.Create(tx, user); err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrUsernameTaken):
			return apperrors.ErrUsernameTaken
		case apperrors.Is(err, repositories.ErrEmailTaken):
			return apperrors.ErrEmailAlreadyExists
		}
		return apperrors.InternalError(err)
	}

	profile := &models.Profile{
		UserID:     user.ID,
		Role:       role,
		IsApproved: false,
	}
	if err := s.profileRepo.Create(tx, profile); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByUsername(db, req.Username)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	role := models.UserRoleClient
	if user.Profile != nil {
		role = user.Profile.Role
	}

	accessToken, err := auth.GenerateToken(user.ID, string(role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken, err := s.issueRefreshToken(db, user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         dto.NewUserResponse(user),
	}, nil
}

// RefreshToken exchanges a valid refresh token for a new token pair.
// The old refresh token is rotated out.
func (s *AuthServiceImpl) RefreshToken(db *gorm.DB, refreshToken string) (*dto.RefreshResponse, error) {
	token, err := s.refreshTokenRepo.FindByToken(db, refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if token.ExpiresAt.Before(time.Now()) {
		_ = s.refreshTokenRepo.Delete(db, refreshToken)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(db, token.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	role := models.UserRoleClient
	if user.Profile != nil {
		role = user.Profile.Role
	}

	accessToken, err := auth.GenerateToken(user.ID, string(role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.refreshTokenRepo.Delete(db, refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}
	newRefresh, err := s.issueRefreshToken(db, user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.RefreshResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefresh,
	}, nil
}

func (s *AuthServiceImpl) Logout(db *gorm.DB, refreshToken string) error {
	if err := s.refreshTokenRepo.Delete(db, refreshToken); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) issueRefreshToken(db *gorm.DB, userID string) (string, error) {
	token := generateRandomToken()
	rt := &models.RefreshToken{
		UserID:    userID,
		Token:     token,
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := s.refreshTokenRepo.Create(db, rt); err != nil {
		return "", err
	}
	return token, nil
}

func generateRandomToken() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
