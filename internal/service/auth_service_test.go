package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"learntrack/internal/auth"
	"learntrack/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateWithStats(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*model.User, error) {
	args := m.Called(ctx, username, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByLogin(ctx context.Context, login string) (*model.User, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful registration",
			username: "alice",
			email:    "a@x.com",
			password: "pw123456",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsernameOrEmail", mock.Anything, "alice", "a@x.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("CreateWithStats", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "username taken",
			username: "alice",
			email:    "other@x.com",
			password: "pw123456",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsernameOrEmail", mock.Anything, "alice", "other@x.com").
					Return(&model.User{Username: "alice"}, nil)
			},
			expectedError: ErrUserAlreadyExists,
		},
		{
			name:     "email taken",
			username: "bob",
			email:    "a@x.com",
			password: "pw123456",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsernameOrEmail", mock.Anything, "bob", "a@x.com").
					Return(&model.User{Email: "a@x.com"}, nil)
			},
			expectedError: ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret")
			svc := NewAuthService(mockRepo, jwtService)

			user, token, err := svc.Register(context.Background(), tt.username, tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.username, user.Username)
				assert.Equal(t, tt.email, user.Email)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, tt.password, user.PasswordHash)

				// Issued token must verify through the same token service.
				claims, err := jwtService.Verify(token)
				assert.NoError(t, err)
				assert.Equal(t, tt.username, claims.Username)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("pw123456"), bcryptCost)

	tests := []struct {
		name          string
		login         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login by username",
			login:    "alice",
			password: "pw123456",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByLogin", mock.Anything, "alice").Return(&model.User{
					ID:           1,
					Username:     "alice",
					Email:        "a@x.com",
					PasswordHash: string(hashed),
				}, nil)
				m.On("UpdateLastLogin", mock.Anything, uint(1)).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "successful login by email",
			login:    "a@x.com",
			password: "pw123456",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByLogin", mock.Anything, "a@x.com").Return(&model.User{
					ID:           1,
					Username:     "alice",
					Email:        "a@x.com",
					PasswordHash: string(hashed),
				}, nil)
				m.On("UpdateLastLogin", mock.Anything, uint(1)).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown user",
			login:    "nobody",
			password: "pw123456",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByLogin", mock.Anything, "nobody").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			login:    "alice",
			password: "wrong-password",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByLogin", mock.Anything, "alice").Return(&model.User{
					ID:           1,
					Username:     "alice",
					PasswordHash: string(hashed),
				}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret")
			svc := NewAuthService(mockRepo, jwtService)

			user, token, err := svc.Login(context.Background(), tt.login, tt.password)

			if tt.expectedError != nil {
				// Unknown user and wrong password are indistinguishable.
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, "alice", user.Username)

				claims, err := jwtService.Verify(token)
				assert.NoError(t, err)
				assert.Equal(t, uint(1), claims.UserID)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_VerifyUser(t *testing.T) {
	t.Run("user exists", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, Username: "alice"}, nil)

		svc := NewAuthService(mockRepo, auth.NewJWTService("test-secret"))
		user, err := svc.VerifyUser(context.Background(), 1)

		assert.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		mockRepo.AssertExpectations(t)
	})

	t.Run("user deleted after token issuance", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewAuthService(mockRepo, auth.NewJWTService("test-secret"))
		user, err := svc.VerifyUser(context.Background(), 9)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrUserNotFound)
		mockRepo.AssertExpectations(t)
	})
}
