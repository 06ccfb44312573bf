package models

import (
	"time"
)

// Tenant represents the tenants table. A tenant links 1:1 to a user
// account and optionally references the room it occupies. JoinDate is set
// once at registration and never updated.
type Tenant struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"column:user_id;uniqueIndex;not null"`
	User      User      `json:"user" gorm:"foreignKey:UserID"`
	RoomID    *uint     `json:"room_id" gorm:"column:room_id"`
	Room      *Room     `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	JoinDate  time.Time `json:"join_date" gorm:"column:join_date;<-:create"`
	Phone     string    `json:"phone" gorm:"column:phone"`
	Address   string    `json:"address" gorm:"column:address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the insert table name for Tenant
func (Tenant) TableName() string {
	return "tenants"
}
