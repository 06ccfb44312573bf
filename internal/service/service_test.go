package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hostel-be-svc/internal/models"
	"hostel-be-svc/internal/policy"
	applogger "hostel-be-svc/pkg/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.Tenant{},
		&models.Bill{},
		&models.Complaint{},
	)
	require.NoError(t, err)

	return db
}

func testLogger() *applogger.Logger {
	return applogger.NewLogger("error", "text")
}

func adminActor() policy.Actor {
	return policy.Actor{UserID: 1, Role: policy.RoleAdmin}
}

func actorFor(tenant *models.Tenant) policy.Actor {
	return policy.Actor{UserID: tenant.UserID, TenantID: tenant.ID, Role: policy.RoleTenant}
}

func createTestRoom(t *testing.T, db *gorm.DB, number string, capacity int, rent float64) *models.Room {
	room := &models.Room{RoomNumber: number, Capacity: capacity, Rent: rent}
	require.NoError(t, db.Create(room).Error)
	return room
}

func createTestTenant(t *testing.T, db *gorm.DB, username string, roomID *uint) *models.Tenant {
	user := &models.User{
		Username:  username,
		Email:     fmt.Sprintf("%s@example.com", username),
		Password:  "not-a-real-hash",
		FirstName: username,
	}
	require.NoError(t, db.Create(user).Error)

	tenant := &models.Tenant{
		UserID:   user.ID,
		RoomID:   roomID,
		JoinDate: time.Now(),
	}
	require.NoError(t, db.Omit("User").Create(tenant).Error)
	tenant.User = *user

	return tenant
}
