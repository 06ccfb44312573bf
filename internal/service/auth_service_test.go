package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hostel-be-svc/internal/apperrors"
	"hostel-be-svc/internal/config"
	"hostel-be-svc/internal/models"
	"hostel-be-svc/internal/repository"
)

func newAuthService(t *testing.T) (AuthService, *gorm.DB) {
	db := setupTestDB(t)
	jwtConfig := config.JWTConfig{Secret: "test-secret", ExpiryHours: 1}
	return NewAuthService(repository.NewUserRepository(db), repository.NewTenantRepository(db), db, jwtConfig, testLogger()), db
}

func TestRegister(t *testing.T) {
	svc, db := newAuthService(t)

	tenant, err := svc.Register(RegisterInput{
		Username:  "alice",
		Email:     "alice@example.com",
		Password:  "supersecret",
		FirstName: "Alice",
		LastName:  "Smith",
		Phone:     "555-0101",
	})

	require.NoError(t, err)
	assert.NotZero(t, tenant.ID)
	assert.Nil(t, tenant.RoomID)
	assert.False(t, tenant.JoinDate.IsZero())

	var user models.User
	require.NoError(t, db.Where("username = ?", "alice").First(&user).Error)
	assert.False(t, user.IsAdmin)
	// the password must be stored hashed
	assert.NotEqual(t, "supersecret", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("supersecret")))
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc, _ := newAuthService(t)
	_, err := svc.Register(RegisterInput{Username: "alice", Password: "supersecret"})
	require.NoError(t, err)

	_, err = svc.Register(RegisterInput{Username: "alice", Password: "supersecret"})

	assert.True(t, apperrors.IsConflict(err))
}

func TestRegister_ShortPassword(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register(RegisterInput{Username: "alice", Password: "short"})

	assert.True(t, apperrors.IsValidation(err))
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthService(t)
	tenant, err := svc.Register(RegisterInput{Username: "alice", Password: "supersecret"})
	require.NoError(t, err)

	result, err := svc.Login("alice", "supersecret")

	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, tenant.ID, result.TenantID)
	assert.Equal(t, "alice", result.User.Username)

	// the token must round-trip with the signing secret and carry the identity
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(result.Token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, tenant.UserID, claims.UserID)
	assert.Equal(t, tenant.ID, claims.TenantID)
	assert.False(t, claims.IsAdmin)
	assert.NotEmpty(t, claims.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newAuthService(t)
	_, err := svc.Register(RegisterInput{Username: "alice", Password: "supersecret"})
	require.NoError(t, err)

	_, err = svc.Login("alice", "wrong-password")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Login("nobody", "supersecret")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_AdminWithoutTenantProfile(t *testing.T) {
	svc, db := newAuthService(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{Username: "root", Password: string(hash), IsAdmin: true}).Error)

	result, err := svc.Login("root", "supersecret")

	require.NoError(t, err)
	assert.Zero(t, result.TenantID)
	assert.True(t, result.User.IsAdmin)
}
