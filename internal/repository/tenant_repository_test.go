package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"hostel-be-svc/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
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

func seedTenant(t *testing.T, db *gorm.DB, username, firstName, lastName string, roomID *uint) *models.Tenant {
	user := &models.User{
		Username:  username,
		Email:     username + "@example.com",
		Password:  "x",
		FirstName: firstName,
		LastName:  lastName,
	}
	require.NoError(t, db.Create(user).Error)

	tenant := &models.Tenant{
		UserID:   user.ID,
		RoomID:   roomID,
		JoinDate: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		Phone:    "555-0101",
	}
	require.NoError(t, db.Omit("User").Create(tenant).Error)

	return tenant
}

func TestListTenants(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTenantRepository(db)

	room := &models.Room{RoomNumber: "101", Capacity: 2, Rent: 1500}
	require.NoError(t, db.Create(room).Error)

	seedTenant(t, db, "alice", "Alice", "Smith", &room.ID)
	seedTenant(t, db, "bob", "Bob", "", nil)

	tenants, err := repo.ListTenants()

	require.NoError(t, err)
	require.Len(t, tenants, 2)

	assert.Equal(t, "Alice Smith", tenants[0].Name)
	assert.Equal(t, "alice", tenants[0].Username)
	assert.Equal(t, "101", tenants[0].RoomNumber)
	require.NotNil(t, tenants[0].RoomID)
	assert.Equal(t, "2026-01-15", tenants[0].JoinDate)

	// trailing space from the empty last name must be trimmed
	assert.Equal(t, "Bob", tenants[1].Name)
	assert.Empty(t, tenants[1].RoomNumber)
	assert.Nil(t, tenants[1].RoomID)
}

func TestGetTenantByUserID_NilWhenMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTenantRepository(db)

	tenant, err := repo.GetTenantByUserID(999)

	assert.NoError(t, err)
	assert.Nil(t, tenant)
}

func TestCountTenants_ExcludesRequestingTenant(t *testing.T) {
	db := setupTestDB(t)
	roomRepo := NewRoomRepository(db)

	room := &models.Room{RoomNumber: "101", Capacity: 2, Rent: 1500}
	require.NoError(t, db.Create(room).Error)
	alice := seedTenant(t, db, "alice", "Alice", "Smith", &room.ID)
	seedTenant(t, db, "bob", "Bob", "Jones", &room.ID)

	count, err := roomRepo.CountTenants(room.ID, alice.ID)

	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
