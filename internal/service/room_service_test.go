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

func newRoomService(t *testing.T) (RoomService, *gorm.DB) {
	db := setupTestDB(t)
	return NewRoomService(repository.NewRoomRepository(db), testLogger()), db
}

func TestCreateRoom(t *testing.T) {
	svc, _ := newRoomService(t)

	room, err := svc.CreateRoom(adminActor(), RoomInput{RoomNumber: "101", Capacity: 2, Rent: 1500})

	require.NoError(t, err)
	assert.Equal(t, "101", room.RoomNumber)
	assert.Equal(t, 2, room.Capacity)
	assert.Equal(t, 1500.0, room.Rent)
}

func TestCreateRoom_DuplicateNumber(t *testing.T) {
	svc, _ := newRoomService(t)
	_, err := svc.CreateRoom(adminActor(), RoomInput{RoomNumber: "101", Capacity: 2, Rent: 1500})
	require.NoError(t, err)

	_, err = svc.CreateRoom(adminActor(), RoomInput{RoomNumber: "101", Capacity: 4, Rent: 1800})

	assert.True(t, apperrors.IsConflict(err))
}

func TestCreateRoom_Validation(t *testing.T) {
	svc, _ := newRoomService(t)

	_, err := svc.CreateRoom(adminActor(), RoomInput{Capacity: 2, Rent: 1500})
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.CreateRoom(adminActor(), RoomInput{RoomNumber: "101", Capacity: 0, Rent: 1500})
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.CreateRoom(adminActor(), RoomInput{RoomNumber: "101", Capacity: 2, Rent: -1})
	assert.True(t, apperrors.IsValidation(err))
}

func TestCreateRoom_RequiresAdmin(t *testing.T) {
	svc, db := newRoomService(t)
	tenant := createTestTenant(t, db, "alice", nil)

	_, err := svc.CreateRoom(actorFor(tenant), RoomInput{RoomNumber: "101", Capacity: 2, Rent: 1500})

	assert.True(t, apperrors.IsPermission(err))
}

func TestUpdateRoom_CapacityReductionBelowOccupancy(t *testing.T) {
	svc, db := newRoomService(t)
	room := createTestRoom(t, db, "101", 3, 1500)
	createTestTenant(t, db, "alice", &room.ID)
	createTestTenant(t, db, "bob", &room.ID)

	// two occupants, capacity drops to one; the update still succeeds
	updated, err := svc.UpdateRoom(adminActor(), room.ID, RoomInput{RoomNumber: "101", Capacity: 1, Rent: 1500})

	require.NoError(t, err)
	assert.Equal(t, 1, updated.Capacity)

	var occupants int64
	require.NoError(t, db.Model(&models.Tenant{}).Where("room_id = ?", room.ID).Count(&occupants).Error)
	assert.Equal(t, int64(2), occupants)
}

func TestUpdateRoom_NumberConflict(t *testing.T) {
	svc, db := newRoomService(t)
	createTestRoom(t, db, "101", 2, 1500)
	room := createTestRoom(t, db, "102", 2, 1500)

	_, err := svc.UpdateRoom(adminActor(), room.ID, RoomInput{RoomNumber: "101", Capacity: 2, Rent: 1500})

	assert.True(t, apperrors.IsConflict(err))
}

func TestDeleteRoom_LeavesTenantsUnassigned(t *testing.T) {
	svc, db := newRoomService(t)
	room := createTestRoom(t, db, "101", 2, 1500)
	tenant := createTestTenant(t, db, "alice", &room.ID)

	require.NoError(t, svc.DeleteRoom(adminActor(), room.ID))

	var reloaded models.Tenant
	require.NoError(t, db.First(&reloaded, tenant.ID).Error)
	assert.Nil(t, reloaded.RoomID)

	var rooms int64
	db.Model(&models.Room{}).Count(&rooms)
	assert.Zero(t, rooms)
}

func TestDeleteRoom_NotFound(t *testing.T) {
	svc, _ := newRoomService(t)

	err := svc.DeleteRoom(adminActor(), 999)

	assert.True(t, apperrors.IsNotFound(err))
}

func TestListRooms_DerivedOccupancy(t *testing.T) {
	svc, db := newRoomService(t)
	small := createTestRoom(t, db, "101", 2, 1500)
	createTestRoom(t, db, "102", 4, 1800)
	createTestTenant(t, db, "alice", &small.ID)
	createTestTenant(t, db, "bob", &small.ID)

	rooms, err := svc.ListRooms(adminActor())

	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "101", rooms[0].RoomNumber)
	assert.Equal(t, int64(2), rooms[0].TenantCount)
	assert.Equal(t, "102", rooms[1].RoomNumber)
	assert.Equal(t, int64(0), rooms[1].TenantCount)
}
