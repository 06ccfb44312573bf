package models

import (
	"time"
)

// BillStatus is the payment state of a bill
type BillStatus string

const (
	BillStatusUnpaid BillStatus = "Unpaid"
	BillStatusPaid   BillStatus = "Paid"
)

// IsValid reports whether the status is one of the known bill states
func (s BillStatus) IsValid() bool {
	return s == BillStatusUnpaid || s == BillStatusPaid
}

// Bill represents the bills table. At most one bill exists per tenant and
// month label, enforced by the composite unique index.
type Bill struct {
	ID        uint       `json:"id" gorm:"primarykey"`
	TenantID  uint       `json:"tenant_id" gorm:"column:tenant_id;not null;uniqueIndex:idx_bills_tenant_month"`
	Tenant    *Tenant    `json:"tenant,omitempty" gorm:"foreignKey:TenantID"`
	Month     string     `json:"month" gorm:"column:month;not null;uniqueIndex:idx_bills_tenant_month"`
	Amount    float64    `json:"amount" gorm:"column:amount;type:decimal(10,2);not null"`
	Status    BillStatus `json:"status" gorm:"column:status;default:Unpaid"`
	CreatedAt time.Time  `json:"created_at" gorm:"<-:create"`
	PaidAt    *time.Time `json:"paid_at" gorm:"column:paid_at"`
}

// TableName sets the insert table name for Bill
func (Bill) TableName() string {
	return "bills"
}
