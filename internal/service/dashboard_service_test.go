package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hostel-be-svc/internal/apperrors"
	"hostel-be-svc/internal/models"
	"hostel-be-svc/internal/repository"
)

func newDashboardService(t *testing.T) (DashboardService, *gorm.DB) {
	db := setupTestDB(t)
	svc := NewDashboardService(
		repository.NewDashboardRepository(db),
		repository.NewTenantRepository(db),
		repository.NewBillRepository(db),
		testLogger(),
	)
	return svc, db
}

func TestGetAdminDashboard(t *testing.T) {
	svc, db := newDashboardService(t)
	room := createTestRoom(t, db, "101", 2, 1500)
	createTestRoom(t, db, "102", 4, 1800)
	alice := createTestTenant(t, db, "alice", &room.ID)
	bob := createTestTenant(t, db, "bob", nil)
	require.NoError(t, db.Create(&models.Bill{TenantID: alice.ID, Month: "2026-08", Amount: 1500, Status: models.BillStatusUnpaid}).Error)
	require.NoError(t, db.Create(&models.Bill{TenantID: bob.ID, Month: "2026-08", Amount: 1200, Status: models.BillStatusPaid}).Error)
	require.NoError(t, db.Create(&models.Complaint{TenantID: alice.ID, Subject: "Noise", Message: "Too loud", Status: models.ComplaintStatusPending}).Error)

	stats, err := svc.GetAdminDashboard(adminActor())

	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalTenants)
	assert.Equal(t, int64(2), stats.TotalRooms)
	assert.Equal(t, int64(1), stats.UnpaidBills)
	assert.Equal(t, int64(1), stats.PendingComplaints)

	require.Len(t, stats.Rooms, 2)
	assert.Equal(t, "101", stats.Rooms[0].RoomNumber)
	assert.Equal(t, int64(1), stats.Rooms[0].TenantCount)
	assert.Equal(t, int64(0), stats.Rooms[1].TenantCount)
}

func TestGetAdminDashboard_RequiresAdmin(t *testing.T) {
	svc, db := newDashboardService(t)
	tenant := createTestTenant(t, db, "alice", nil)

	_, err := svc.GetAdminDashboard(actorFor(tenant))

	assert.True(t, apperrors.IsPermission(err))
}

func TestGetTenantDashboard(t *testing.T) {
	svc, db := newDashboardService(t)
	room := createTestRoom(t, db, "101", 2, 1500)
	tenant := createTestTenant(t, db, "alice", &room.ID)
	require.NoError(t, db.Create(&models.Bill{TenantID: tenant.ID, Month: "2026-07", Amount: 1500, Status: models.BillStatusPaid}).Error)
	require.NoError(t, db.Create(&models.Bill{TenantID: tenant.ID, Month: "2026-08", Amount: 1500, Status: models.BillStatusUnpaid}).Error)
	require.NoError(t, db.Create(&models.Bill{TenantID: tenant.ID, Month: "2026-09", Amount: 1600, Status: models.BillStatusUnpaid}).Error)

	dashboard, err := svc.GetTenantDashboard(actorFor(tenant))

	require.NoError(t, err)
	assert.Equal(t, tenant.ID, dashboard.TenantID)
	assert.Equal(t, "101", dashboard.RoomNumber)
	assert.Equal(t, 1500.0, dashboard.Rent)
	assert.Equal(t, 1500.0, dashboard.TotalPaid)
	assert.Equal(t, 3100.0, dashboard.TotalUnpaid)
	assert.Equal(t, int64(2), dashboard.UnpaidBills)
}

func TestGetTenantDashboard_WithoutRoom(t *testing.T) {
	svc, db := newDashboardService(t)
	tenant := createTestTenant(t, db, "alice", nil)

	dashboard, err := svc.GetTenantDashboard(actorFor(tenant))

	require.NoError(t, err)
	assert.Empty(t, dashboard.RoomNumber)
	assert.Zero(t, dashboard.Rent)
	assert.Zero(t, dashboard.TotalPaid)
	assert.Zero(t, dashboard.TotalUnpaid)
}

func TestGetTenantDashboard_RequiresTenant(t *testing.T) {
	svc, _ := newDashboardService(t)

	_, err := svc.GetTenantDashboard(adminActor())

	assert.True(t, apperrors.IsPermission(err))
}
