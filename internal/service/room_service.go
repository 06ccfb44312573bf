package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hostel-be-svc/internal/apperrors"
	"hostel-be-svc/internal/models"
	"hostel-be-svc/internal/models/response"
	"hostel-be-svc/internal/policy"
	"hostel-be-svc/internal/repository"
	"hostel-be-svc/pkg/logger"
)

// RoomInput carries the admin-submitted room fields
type RoomInput struct {
	RoomNumber string
	Capacity   int
	Rent       float64
}

// RoomService defines the interface for room business operations
type RoomService interface {
	CreateRoom(actor policy.Actor, input RoomInput) (*models.Room, error)
	GetRoom(actor policy.Actor, id uint) (*models.Room, error)
	ListRooms(actor policy.Actor) ([]*response.RoomOccupancy, error)
	UpdateRoom(actor policy.Actor, id uint, input RoomInput) (*models.Room, error)
	DeleteRoom(actor policy.Actor, id uint) error
}

// roomService implements RoomService
type roomService struct {
	roomRepo repository.RoomRepository
	logger   *logger.Logger
}

// NewRoomService creates a new instance of RoomService
func NewRoomService(roomRepo repository.RoomRepository, logger *logger.Logger) RoomService {
	return &roomService{
		roomRepo: roomRepo,
		logger:   logger,
	}
}

func validateRoomInput(input RoomInput) error {
	if input.RoomNumber == "" {
		return &apperrors.ValidationError{Field: "room_number", Message: "must not be empty"}
	}
	if input.Capacity < 1 {
		return &apperrors.ValidationError{Field: "capacity", Message: "must be at least 1"}
	}
	if input.Rent < 0 {
		return &apperrors.ValidationError{Field: "rent", Message: "must not be negative"}
	}
	return nil
}

// CreateRoom creates a new room (admin only)
func (s *roomService) CreateRoom(actor policy.Actor, input RoomInput) (*models.Room, error) {
	if err := policy.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validateRoomInput(input); err != nil {
		return nil, err
	}

	existing, err := s.roomRepo.GetRoomByNumber(input.RoomNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to check room number: %w", err)
	}
	if existing != nil {
		return nil, &apperrors.ConflictError{Message: fmt.Sprintf("room number %s already exists", input.RoomNumber)}
	}

	room := &models.Room{
		RoomNumber: input.RoomNumber,
		Capacity:   input.Capacity,
		Rent:       input.Rent,
	}

	if err := s.roomRepo.CreateRoom(room); err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"room_id":     room.ID,
		"room_number": room.RoomNumber,
		"capacity":    room.Capacity,
	}).Info("Room created")

	return room, nil
}

// GetRoom retrieves a single room (admin only)
func (s *roomService) GetRoom(actor policy.Actor, id uint) (*models.Room, error) {
	if err := policy.RequireAdmin(actor); err != nil {
		return nil, err
	}

	room, err := s.roomRepo.GetRoomByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Resource: "room"}
		}
		return nil, err
	}

	return room, nil
}

// ListRooms retrieves all rooms with derived occupant counts (admin only)
func (s *roomService) ListRooms(actor policy.Actor) ([]*response.RoomOccupancy, error) {
	if err := policy.RequireAdmin(actor); err != nil {
		return nil, err
	}
	return s.roomRepo.ListRoomsWithOccupancy()
}

// UpdateRoom updates an existing room (admin only). Reducing the capacity
// below the current occupant count is permitted: existing tenants are
// grandfathered and only new assignments are checked against capacity.
func (s *roomService) UpdateRoom(actor policy.Actor, id uint, input RoomInput) (*models.Room, error) {
	if err := policy.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validateRoomInput(input); err != nil {
		return nil, err
	}

	room, err := s.roomRepo.GetRoomByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Resource: "room"}
		}
		return nil, err
	}

	if input.RoomNumber != room.RoomNumber {
		existing, err := s.roomRepo.GetRoomByNumber(input.RoomNumber)
		if err != nil {
			return nil, fmt.Errorf("failed to check room number: %w", err)
		}
		if existing != nil {
			return nil, &apperrors.ConflictError{Message: fmt.Sprintf("room number %s already exists", input.RoomNumber)}
		}
	}

	room.RoomNumber = input.RoomNumber
	room.Capacity = input.Capacity
	room.Rent = input.Rent

	if err := s.roomRepo.UpdateRoom(room); err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}

	s.logger.WithField("room_id", room.ID).Info("Room updated")

	return room, nil
}

// DeleteRoom deletes a room (admin only). Tenants assigned to the room are
// left unassigned, not deleted.
func (s *roomService) DeleteRoom(actor policy.Actor, id uint) error {
	if err := policy.RequireAdmin(actor); err != nil {
		return err
	}

	if _, err := s.roomRepo.GetRoomByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &apperrors.NotFoundError{Resource: "room"}
		}
		return err
	}

	if err := s.roomRepo.DeleteRoom(id); err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}

	s.logger.WithField("room_id", id).Info("Room deleted")

	return nil
}
