package repository

import (
	"errors"

	"gorm.io/gorm"

	"hostel-be-svc/internal/models"
)

// BillRepository defines the interface for bill data operations
type BillRepository interface {
	CreateBill(bill *models.Bill) error
	GetBillByID(id uint) (*models.Bill, error)
	GetBillByTenantAndMonth(tenantID uint, month string) (*models.Bill, error)
	UpdateBill(bill *models.Bill) error
	DeleteBill(id uint) error
	ListBills(status *models.BillStatus) ([]*models.Bill, error)
	ListBillsByTenant(tenantID uint, status *models.BillStatus) ([]*models.Bill, error)
	SumAmountByTenantAndStatus(tenantID uint, status models.BillStatus) (float64, error)
	CountByStatus(status models.BillStatus) (int64, error)
}

// billRepository implements BillRepository
type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new instance of BillRepository
func NewBillRepository(db *gorm.DB) BillRepository {
	return &billRepository{
		db: db,
	}
}

// CreateBill inserts a new bill record
func (r *billRepository) CreateBill(bill *models.Bill) error {
	return r.db.Create(bill).Error
}

// GetBillByID retrieves a bill by ID with its tenant preloaded
func (r *billRepository) GetBillByID(id uint) (*models.Bill, error) {
	var bill models.Bill

	err := r.db.Preload("Tenant").Preload("Tenant.User").Where("id = ?", id).First(&bill).Error
	if err != nil {
		return nil, err
	}

	return &bill, nil
}

// GetBillByTenantAndMonth retrieves the bill for a tenant and month label,
// returning nil without error when none exists
func (r *billRepository) GetBillByTenantAndMonth(tenantID uint, month string) (*models.Bill, error) {
	var bill models.Bill

	err := r.db.Where("tenant_id = ? AND month = ?", tenantID, month).First(&bill).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &bill, nil
}

// UpdateBill saves changes to an existing bill record
func (r *billRepository) UpdateBill(bill *models.Bill) error {
	return r.db.Save(bill).Error
}

// DeleteBill deletes a bill by ID
func (r *billRepository) DeleteBill(id uint) error {
	return r.db.Delete(&models.Bill{}, id).Error
}

// ListBills retrieves all bills, optionally filtered by status, newest first
func (r *billRepository) ListBills(status *models.BillStatus) ([]*models.Bill, error) {
	var bills []*models.Bill

	query := r.db.Preload("Tenant").Preload("Tenant.User").Order("created_at DESC")
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	err := query.Find(&bills).Error
	if err != nil {
		return nil, err
	}

	return bills, nil
}

// ListBillsByTenant retrieves a tenant's bills, optionally filtered by status
func (r *billRepository) ListBillsByTenant(tenantID uint, status *models.BillStatus) ([]*models.Bill, error) {
	var bills []*models.Bill

	query := r.db.Where("tenant_id = ?", tenantID).Order("month DESC, created_at DESC")
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	err := query.Find(&bills).Error
	if err != nil {
		return nil, err
	}

	return bills, nil
}

// SumAmountByTenantAndStatus returns the total bill amount for a tenant in
// the given status
func (r *billRepository) SumAmountByTenantAndStatus(tenantID uint, status models.BillStatus) (float64, error) {
	var total float64

	err := r.db.Model(&models.Bill{}).
		Where("tenant_id = ? AND status = ?", tenantID, status).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}

	return total, nil
}

// CountByStatus counts bills in the given status
func (r *billRepository) CountByStatus(status models.BillStatus) (int64, error) {
	var count int64

	err := r.db.Model(&models.Bill{}).Where("status = ?", status).Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
