package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
	"github.com/minhducmx/banhang-api/internal/domain/entity"
	"github.com/minhducmx/banhang-api/internal/domain/repository"
	"github.com/minhducmx/banhang-api/pkg/apperror"
	"github.com/minhducmx/banhang-api/pkg/oauth"
	"github.com/minhducmx/banhang-api/pkg/utils"
)

// AuthService handles operator authentication
type AuthService struct {
	userRepo      repository.UserRepository
	jwtManager    *utils.JWTManager
	googleService *oauth.GoogleService
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepository,
	jwtManager *utils.JWTManager,
	googleService *oauth.GoogleService,
) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		jwtManager:    jwtManager,
		googleService: googleService,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// Login authenticates an operator and returns tokens
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperror.ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

// RegisterInput represents the registration input
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// Register creates a new operator account
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*entity.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Email already registered")
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role != "admin" {
		role = "cashier"
	}

	user := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// RefreshToken exchanges a refresh token for a new token pair
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*LoginOutput, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidToken
	}

	return s.issueTokens(user)
}

// GetUser retrieves an operator by ID
func (s *AuthService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// GoogleAuthURL returns the Google consent URL with a random state token
func (s *AuthService) GoogleAuthURL() (url, state string, err error) {
	if !s.googleService.IsConfigured() {
		return "", "", apperror.NewBadRequestError("Google sign-in is not configured")
	}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", "", err
	}
	state = hex.EncodeToString(buf)
	return s.googleService.AuthURL(state), state, nil
}

// GoogleLogin completes the OAuth flow: it exchanges the code, then matches
// or provisions the operator account. New Google accounts start as cashiers.
func (s *AuthService) GoogleLogin(ctx context.Context, code string) (*LoginOutput, error) {
	gUser, err := s.googleService.FetchUser(ctx, code)
	if err != nil {
		return nil, apperror.NewBadRequestError("Google sign-in failed")
	}
	if !gUser.VerifiedEmail {
		return nil, apperror.NewBadRequestError("Google account email is not verified")
	}

	user, err := s.userRepo.GetByGoogleID(ctx, gUser.ID)
	if err != nil {
		return nil, err
	}

	if user == nil {
		// Link by email when the operator registered with a password first
		user, err = s.userRepo.GetByEmail(ctx, gUser.Email)
		if err != nil {
			return nil, err
		}
		if user != nil {
			user.GoogleID = gUser.ID
			user.Picture = gUser.Picture
			if err := s.userRepo.Update(ctx, user); err != nil {
				return nil, err
			}
		}
	}

	if user == nil {
		user = &entity.User{
			Name:     gUser.Name,
			Email:    gUser.Email,
			GoogleID: gUser.ID,
			Picture:  gUser.Picture,
			Role:     "cashier",
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
	}

	return s.issueTokens(user)
}

func (s *AuthService) issueTokens(user *entity.User) (*LoginOutput, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, user.Name, user.Role)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
