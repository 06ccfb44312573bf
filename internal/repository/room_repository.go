package repository

import (
	"errors"

	"gorm.io/gorm"

	"hostel-be-svc/internal/models"
	"hostel-be-svc/internal/models/response"
)

// RoomRepository defines the interface for room data operations
type RoomRepository interface {
	CreateRoom(room *models.Room) error
	GetRoomByID(id uint) (*models.Room, error)
	GetRoomByNumber(roomNumber string) (*models.Room, error)
	UpdateRoom(room *models.Room) error
	DeleteRoom(id uint) error
	ListRoomsWithOccupancy() ([]*response.RoomOccupancy, error)
	CountTenants(roomID uint, excludeTenantID uint) (int64, error)
}

// roomRepository implements RoomRepository
type roomRepository struct {
	db *gorm.DB
}

// NewRoomRepository creates a new instance of RoomRepository
func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{
		db: db,
	}
}

// CreateRoom inserts a new room record
func (r *roomRepository) CreateRoom(room *models.Room) error {
	return r.db.Create(room).Error
}

// GetRoomByID retrieves a room by ID
func (r *roomRepository) GetRoomByID(id uint) (*models.Room, error) {
	var room models.Room

	err := r.db.Where("id = ?", id).First(&room).Error
	if err != nil {
		return nil, err
	}

	return &room, nil
}

// GetRoomByNumber retrieves a room by its unique room number, returning
// nil without error when no such room exists
func (r *roomRepository) GetRoomByNumber(roomNumber string) (*models.Room, error) {
	var room models.Room

	err := r.db.Where("room_number = ?", roomNumber).First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &room, nil
}

// UpdateRoom saves changes to an existing room record
func (r *roomRepository) UpdateRoom(room *models.Room) error {
	return r.db.Save(room).Error
}

// DeleteRoom deletes a room and nulls the room reference of any tenant
// assigned to it, in a single transaction
func (r *roomRepository) DeleteRoom(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Tenant{}).Where("room_id = ?", id).Update("room_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Room{}, id).Error
	})
}

// ListRoomsWithOccupancy retrieves all rooms with their derived tenant counts
func (r *roomRepository) ListRoomsWithOccupancy() ([]*response.RoomOccupancy, error) {
	var rooms []*response.RoomOccupancy

	query := `
		SELECT r.id, r.room_number, r.capacity, r.rent,
			   COUNT(t.id) AS tenant_count
		FROM rooms r
		LEFT JOIN tenants t ON t.room_id = r.id
		GROUP BY r.id, r.room_number, r.capacity, r.rent
		ORDER BY r.room_number
	`

	err := r.db.Raw(query).Scan(&rooms).Error
	if err != nil {
		return nil, err
	}

	return rooms, nil
}

// CountTenants counts tenants currently referencing the room, optionally
// excluding one tenant (the one being reassigned)
func (r *roomRepository) CountTenants(roomID uint, excludeTenantID uint) (int64, error) {
	var count int64

	query := r.db.Model(&models.Tenant{}).Where("room_id = ?", roomID)
	if excludeTenantID != 0 {
		query = query.Where("id <> ?", excludeTenantID)
	}

	err := query.Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
