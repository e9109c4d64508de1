package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"learntrack/internal/auth"
	"learntrack/internal/model"
	"learntrack/internal/repository"
)

const bcryptCost = 10

var (
	// ErrInvalidCredentials is returned for both unknown user and wrong
	// password, so responses cannot reveal whether an account exists.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUserAlreadyExists is returned when username or email is taken,
	// without naming which field collided.
	ErrUserAlreadyExists = errors.New("user with this username or email already exists")
	// ErrUserNotFound is returned when a valid token's user no longer exists.
	ErrUserNotFound = errors.New("user not found")
)

// AuthService handles registration, login and token-holder lookup.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*model.User, string, error)
	Login(ctx context.Context, login, password string) (*model.User, string, error)
	VerifyUser(ctx context.Context, userID uint) (*model.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a user with a hashed password and a zeroed stats row,
// then issues a session token.
func (s *authService) Register(ctx context.Context, username, email, password string) (*model.User, string, error) {
	existing, err := s.userRepo.FindByUsernameOrEmail(ctx, username, email)
	if err == nil && existing != nil {
		return nil, "", ErrUserAlreadyExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := s.userRepo.CreateWithStats(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwtService.Issue(user.ID, user.Username)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}

// Login authenticates against username or email, records the login time
// and issues a fresh session token.
func (s *authService) Login(ctx context.Context, login, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		return nil, "", fmt.Errorf("update last login: %w", err)
	}

	token, err := s.jwtService.Issue(user.ID, user.Username)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}

// VerifyUser re-resolves a token holder's identity. A valid, unexpired
// token can outlive its user, so absence is a distinct outcome.
func (s *authService) VerifyUser(ctx context.Context, userID uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
