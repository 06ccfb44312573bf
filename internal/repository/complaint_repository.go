package repository

import (
	"gorm.io/gorm"

	"hostel-be-svc/internal/models"
)

// ComplaintRepository defines the interface for complaint data operations
type ComplaintRepository interface {
	CreateComplaint(complaint *models.Complaint) error
	GetComplaintByID(id uint) (*models.Complaint, error)
	UpdateComplaint(complaint *models.Complaint) error
	ListComplaints(status *models.ComplaintStatus) ([]*models.Complaint, error)
	ListComplaintsByTenant(tenantID uint) ([]*models.Complaint, error)
	CountByStatus(status models.ComplaintStatus) (int64, error)
}

// complaintRepository implements ComplaintRepository
type complaintRepository struct {
	db *gorm.DB
}

// NewComplaintRepository creates a new instance of ComplaintRepository
func NewComplaintRepository(db *gorm.DB) ComplaintRepository {
	return &complaintRepository{
		db: db,
	}
}

// CreateComplaint inserts a new complaint record
func (r *complaintRepository) CreateComplaint(complaint *models.Complaint) error {
	return r.db.Create(complaint).Error
}

// GetComplaintByID retrieves a complaint by ID with its tenant preloaded
func (r *complaintRepository) GetComplaintByID(id uint) (*models.Complaint, error) {
	var complaint models.Complaint

	err := r.db.Preload("Tenant").Preload("Tenant.User").Where("id = ?", id).First(&complaint).Error
	if err != nil {
		return nil, err
	}

	return &complaint, nil
}

// UpdateComplaint saves changes to an existing complaint record
func (r *complaintRepository) UpdateComplaint(complaint *models.Complaint) error {
	return r.db.Save(complaint).Error
}

// ListComplaints retrieves all complaints, optionally filtered by status,
// newest first
func (r *complaintRepository) ListComplaints(status *models.ComplaintStatus) ([]*models.Complaint, error) {
	var complaints []*models.Complaint

	query := r.db.Preload("Tenant").Preload("Tenant.User").Order("created_at DESC")
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	err := query.Find(&complaints).Error
	if err != nil {
		return nil, err
	}

	return complaints, nil
}

// ListComplaintsByTenant retrieves a tenant's complaints, newest first
func (r *complaintRepository) ListComplaintsByTenant(tenantID uint) ([]*models.Complaint, error) {
	var complaints []*models.Complaint

	err := r.db.Where("tenant_id = ?", tenantID).Order("created_at DESC").Find(&complaints).Error
	if err != nil {
		return nil, err
	}

	return complaints, nil
}

// CountByStatus counts complaints in the given status
func (r *complaintRepository) CountByStatus(status models.ComplaintStatus) (int64, error) {
	var count int64

	err := r.db.Model(&models.Complaint{}).Where("status = ?", status).Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
