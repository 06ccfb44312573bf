package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hostel-be-svc/internal/apperrors"
	"hostel-be-svc/internal/config"
	"hostel-be-svc/internal/models"
	"hostel-be-svc/internal/repository"
	"hostel-be-svc/pkg/logger"
)

// ErrInvalidCredentials is returned by Login when the username or password
// does not match
var ErrInvalidCredentials = errors.New("invalid username or password")

// Claims is the JWT payload issued at login and verified on every request
type Claims struct {
	UserID   uint   `json:"user_id"`
	TenantID uint   `json:"tenant_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// RegisterInput carries the tenant self-registration fields
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Address   string
}

// LoginResult carries the issued token and the authenticated identity
type LoginResult struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *models.User `json:"user"`
	TenantID  uint         `json:"tenant_id,omitempty"`
}

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(input RegisterInput) (*models.Tenant, error)
	Login(username, password string) (*LoginResult, error)
}

// authService implements AuthService
type authService struct {
	userRepo   repository.UserRepository
	tenantRepo repository.TenantRepository
	db         *gorm.DB
	jwtConfig  config.JWTConfig
	logger     *logger.Logger
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(userRepo repository.UserRepository, tenantRepo repository.TenantRepository, db *gorm.DB, jwtConfig config.JWTConfig, logger *logger.Logger) AuthService {
	return &authService{
		userRepo:   userRepo,
		tenantRepo: tenantRepo,
		db:         db,
		jwtConfig:  jwtConfig,
		logger:     logger,
	}
}

// Register creates a user account and its tenant profile in one
// transaction. Registration always produces a tenant; administrators are
// provisioned through the createadmin command.
func (s *authService) Register(input RegisterInput) (*models.Tenant, error) {
	if input.Username == "" {
		return nil, &apperrors.ValidationError{Field: "username", Message: "must not be empty"}
	}
	if len(input.Password) < 8 {
		return nil, &apperrors.ValidationError{Field: "password", Message: "must be at least 8 characters"}
	}

	exists, err := s.userRepo.UsernameExists(input.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return nil, &apperrors.ConflictError{Message: fmt.Sprintf("username %s is already taken", input.Username)}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	tenant := &models.Tenant{
		User: models.User{
			Username:  input.Username,
			Email:     input.Email,
			Password:  string(hash),
			FirstName: input.FirstName,
			LastName:  input.LastName,
		},
		JoinDate: time.Now(),
		Phone:    input.Phone,
		Address:  input.Address,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&tenant.User).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		tenant.UserID = tenant.User.ID
		if err := tx.Omit("User").Create(tenant).Error; err != nil {
			return fmt.Errorf("failed to create tenant: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id":   tenant.UserID,
		"tenant_id": tenant.ID,
		"username":  input.Username,
	}).Info("Tenant registered")

	return tenant, nil
}

// Login verifies the credentials and issues a signed JWT carrying the
// user's identity, role flag and tenant profile ID
func (s *authService) Login(username, password string) (*LoginResult, error) {
	user, err := s.userRepo.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	var tenantID uint
	tenant, err := s.tenantRepo.GetTenantByUserID(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tenant profile: %w", err)
	}
	if tenant != nil {
		tenantID = tenant.ID
	}

	expiresAt := time.Now().Add(time.Duration(s.jwtConfig.ExpiryHours) * time.Hour)
	claims := &Claims{
		UserID:   user.ID,
		TenantID: tenantID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtConfig.Secret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id":  user.ID,
		"username": user.Username,
		"is_admin": user.IsAdmin,
	}).Info("User logged in")

	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
		TenantID:  tenantID,
	}, nil
}
