package models

import (
	"time"
)

// ComplaintStatus is the handling state of a complaint
type ComplaintStatus string

const (
	ComplaintStatusPending  ComplaintStatus = "Pending"
	ComplaintStatusResolved ComplaintStatus = "Resolved"
)

// IsValid reports whether the status is one of the known complaint states
func (s ComplaintStatus) IsValid() bool {
	return s == ComplaintStatusPending || s == ComplaintStatusResolved
}

// Complaint represents the complaints table. ResolvedAt is non-nil exactly
// while the complaint is in the Resolved state.
type Complaint struct {
	ID         uint            `json:"id" gorm:"primarykey"`
	TenantID   uint            `json:"tenant_id" gorm:"column:tenant_id;not null"`
	Tenant     *Tenant         `json:"tenant,omitempty" gorm:"foreignKey:TenantID"`
	Subject    string          `json:"subject" gorm:"column:subject;not null"`
	Message    string          `json:"message" gorm:"column:message;not null"`
	Status     ComplaintStatus `json:"status" gorm:"column:status;default:Pending"`
	CreatedAt  time.Time       `json:"created_at" gorm:"<-:create"`
	UpdatedAt  time.Time       `json:"updated_at"`
	ResolvedAt *time.Time      `json:"resolved_at" gorm:"column:resolved_at"`
}

// TableName sets the insert table name for Complaint
func (Complaint) TableName() string {
	return "complaints"
}
