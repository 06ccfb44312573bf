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

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	GetAdminDashboard(actor policy.Actor) (*response.AdminDashboardResponse, error)
	GetTenantDashboard(actor policy.Actor) (*response.TenantDashboardResponse, error)
}

// dashboardService implements DashboardService
type dashboardService struct {
	dashboardRepo repository.DashboardRepository
	tenantRepo    repository.TenantRepository
	billRepo      repository.BillRepository
	logger        *logger.Logger
}

// NewDashboardService creates a new instance of DashboardService
func NewDashboardService(dashboardRepo repository.DashboardRepository, tenantRepo repository.TenantRepository, billRepo repository.BillRepository, logger *logger.Logger) DashboardService {
	return &dashboardService{
		dashboardRepo: dashboardRepo,
		tenantRepo:    tenantRepo,
		billRepo:      billRepo,
		logger:        logger,
	}
}

// GetAdminDashboard retrieves the admin overview statistics (admin only)
func (s *dashboardService) GetAdminDashboard(actor policy.Actor) (*response.AdminDashboardResponse, error) {
	if err := policy.RequireAdmin(actor); err != nil {
		return nil, err
	}
	return s.dashboardRepo.GetAdminStatistics()
}

// GetTenantDashboard retrieves the calling tenant's personal dashboard:
// room, paid/unpaid totals and open bill count, all derived from live rows
func (s *dashboardService) GetTenantDashboard(actor policy.Actor) (*response.TenantDashboardResponse, error) {
	if err := policy.RequireTenant(actor); err != nil {
		return nil, err
	}

	tenant, err := s.tenantRepo.GetTenantByID(actor.TenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Resource: "tenant"}
		}
		return nil, err
	}

	totalPaid, err := s.billRepo.SumAmountByTenantAndStatus(tenant.ID, models.BillStatusPaid)
	if err != nil {
		return nil, fmt.Errorf("failed to sum paid bills: %w", err)
	}
	totalUnpaid, err := s.billRepo.SumAmountByTenantAndStatus(tenant.ID, models.BillStatusUnpaid)
	if err != nil {
		return nil, fmt.Errorf("failed to sum unpaid bills: %w", err)
	}

	unpaidStatus := models.BillStatusUnpaid
	unpaidBills, err := s.billRepo.ListBillsByTenant(tenant.ID, &unpaidStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to list unpaid bills: %w", err)
	}

	dashboard := &response.TenantDashboardResponse{
		TenantID:    tenant.ID,
		Name:        tenant.User.FullName(),
		JoinDate:    tenant.JoinDate.Format("2006-01-02"),
		TotalPaid:   totalPaid,
		TotalUnpaid: totalUnpaid,
		UnpaidBills: int64(len(unpaidBills)),
	}

	if tenant.Room != nil {
		dashboard.RoomNumber = tenant.Room.RoomNumber
		dashboard.Rent = tenant.Room.Rent
	}

	return dashboard, nil
}
