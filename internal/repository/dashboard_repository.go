package repository

import (
	"gorm.io/gorm"

	"hostel-be-svc/internal/models"
	"hostel-be-svc/internal/models/response"
)

// DashboardRepository defines the interface for dashboard data operations
type DashboardRepository interface {
	GetAdminStatistics() (*response.AdminDashboardResponse, error)
}

// dashboardRepository implements DashboardRepository
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new instance of DashboardRepository
func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{
		db: db,
	}
}

// GetAdminStatistics retrieves the admin overview: entity totals, open
// items and the per-room derived occupancy list
func (r *dashboardRepository) GetAdminStatistics() (*response.AdminDashboardResponse, error) {
	var stats response.AdminDashboardResponse

	if err := r.db.Model(&models.Tenant{}).Count(&stats.TotalTenants).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Room{}).Count(&stats.TotalRooms).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Bill{}).Where("status = ?", models.BillStatusUnpaid).Count(&stats.UnpaidBills).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Complaint{}).Where("status = ?", models.ComplaintStatusPending).Count(&stats.PendingComplaints).Error; err != nil {
		return nil, err
	}

	query := `
		SELECT r.id, r.room_number, r.capacity, r.rent,
			   COUNT(t.id) AS tenant_count
		FROM rooms r
		LEFT JOIN tenants t ON t.room_id = r.id
		GROUP BY r.id, r.room_number, r.capacity, r.rent
		ORDER BY r.room_number
	`

	if err := r.db.Raw(query).Scan(&stats.Rooms).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
