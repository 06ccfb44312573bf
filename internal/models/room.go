package models

import (
	"time"
)

// Room represents the rooms table. Occupancy is never stored: it is
// derived by counting tenants referencing the room, so the count cannot
// drift from the live assignments.
type Room struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	RoomNumber string    `json:"room_number" gorm:"column:room_number;uniqueIndex;not null"`
	Capacity   int       `json:"capacity" gorm:"column:capacity;not null"`
	Rent       float64   `json:"rent" gorm:"column:rent;type:decimal(10,2);not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName sets the insert table name for Room
func (Room) TableName() string {
	return "rooms"
}
