package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"hostel-be-svc/internal/apperrors"
	"hostel-be-svc/internal/models"
	"hostel-be-svc/internal/policy"
	"hostel-be-svc/internal/repository"
	"hostel-be-svc/pkg/logger"
)

// BillInput carries the admin-submitted fields for creating a bill
type BillInput struct {
	TenantID uint
	Month    string
	Amount   float64
}

// BillUpdateInput carries the admin-submitted fields for editing a bill.
// The submitted status is authoritative: updating never auto-sets the paid
// timestamp, the administrator sets or clears it explicitly.
type BillUpdateInput struct {
	Month  string
	Amount float64
	Status models.BillStatus
	PaidAt *time.Time
}

// MonthlyBillingSummary reports the outcome of a bulk monthly generation run
type MonthlyBillingSummary struct {
	Month        string `json:"month"`
	TotalTenants int    `json:"total_tenants"`
	Created      int    `json:"created"`
	Skipped      int    `json:"skipped"`
}

// BillService defines the interface for billing business operations
type BillService interface {
	CreateBill(actor policy.Actor, input BillInput) (*models.Bill, error)
	UpdateBill(actor policy.Actor, id uint, input BillUpdateInput) (*models.Bill, error)
	DeleteBill(actor policy.Actor, id uint) error
	ListBills(actor policy.Actor, status *models.BillStatus) ([]*models.Bill, error)
	ListOwnBills(actor policy.Actor, status *models.BillStatus) ([]*models.Bill, error)
	Pay(actor policy.Actor, billID uint) (*models.Bill, error)
	GenerateMonthly(actor policy.Actor, month string) (*MonthlyBillingSummary, error)
}

// billService implements BillService
type billService struct {
	billRepo   repository.BillRepository
	tenantRepo repository.TenantRepository
	db         *gorm.DB
	logger     *logger.Logger
}

// NewBillService creates a new instance of BillService
func NewBillService(billRepo repository.BillRepository, tenantRepo repository.TenantRepository, db *gorm.DB, logger *logger.Logger) BillService {
	return &billService{
		billRepo:   billRepo,
		tenantRepo: tenantRepo,
		db:         db,
		logger:     logger,
	}
}

func validateBillFields(month string, amount float64) error {
	if month == "" {
		return &apperrors.ValidationError{Field: "month", Message: "must not be empty"}
	}
	if amount < 0 {
		return &apperrors.ValidationError{Field: "amount", Message: "must not be negative"}
	}
	return nil
}

// CreateBill creates a bill for a tenant in the Unpaid state (admin only)
func (s *billService) CreateBill(actor policy.Actor, input BillInput) (*models.Bill, error) {
	if err := policy.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validateBillFields(input.Month, input.Amount); err != nil {
		return nil, err
	}

	if _, err := s.tenantRepo.GetTenantByID(input.TenantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Resource: "tenant"}
		}
		return nil, err
	}

	existing, err := s.billRepo.GetBillByTenantAndMonth(input.TenantID, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing bill: %w", err)
	}
	if existing != nil {
		return nil, &apperrors.ConflictError{Message: fmt.Sprintf("a bill for %s already exists for this tenant", input.Month)}
	}

	bill := &models.Bill{
		TenantID: input.TenantID,
		Month:    input.Month,
		Amount:   input.Amount,
		Status:   models.BillStatusUnpaid,
	}

	if err := s.billRepo.CreateBill(bill); err != nil {
		return nil, fmt.Errorf("failed to create bill: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"bill_id":   bill.ID,
		"tenant_id": bill.TenantID,
		"month":     bill.Month,
		"amount":    bill.Amount,
	}).Info("Bill created")

	return bill, nil
}

// UpdateBill edits a bill (admin only), bypassing the tenant-only pay
// restriction. The submitted status and paid timestamp are written as
// given.
func (s *billService) UpdateBill(actor policy.Actor, id uint, input BillUpdateInput) (*models.Bill, error) {
	if err := policy.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validateBillFields(input.Month, input.Amount); err != nil {
		return nil, err
	}
	if !input.Status.IsValid() {
		return nil, &apperrors.ValidationError{Field: "status", Message: fmt.Sprintf("unknown bill status %q", input.Status)}
	}

	bill, err := s.billRepo.GetBillByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Resource: "bill"}
		}
		return nil, err
	}

	if input.Month != bill.Month {
		existing, err := s.billRepo.GetBillByTenantAndMonth(bill.TenantID, input.Month)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing bill: %w", err)
		}
		if existing != nil && existing.ID != bill.ID {
			return nil, &apperrors.ConflictError{Message: fmt.Sprintf("a bill for %s already exists for this tenant", input.Month)}
		}
	}

	bill.Month = input.Month
	bill.Amount = input.Amount
	bill.Status = input.Status
	bill.PaidAt = input.PaidAt

	if err := s.billRepo.UpdateBill(bill); err != nil {
		return nil, fmt.Errorf("failed to update bill: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"bill_id": bill.ID,
		"status":  bill.Status,
	}).Info("Bill updated")

	return bill, nil
}

// DeleteBill deletes a bill (admin only)
func (s *billService) DeleteBill(actor policy.Actor, id uint) error {
	if err := policy.RequireAdmin(actor); err != nil {
		return err
	}

	if _, err := s.billRepo.GetBillByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &apperrors.NotFoundError{Resource: "bill"}
		}
		return err
	}

	if err := s.billRepo.DeleteBill(id); err != nil {
		return fmt.Errorf("failed to delete bill: %w", err)
	}

	s.logger.WithField("bill_id", id).Info("Bill deleted")

	return nil
}

// ListBills retrieves all bills, optionally filtered by status (admin only)
func (s *billService) ListBills(actor policy.Actor, status *models.BillStatus) ([]*models.Bill, error) {
	if err := policy.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if status != nil && !status.IsValid() {
		return nil, &apperrors.ValidationError{Field: "status", Message: fmt.Sprintf("unknown bill status %q", *status)}
	}
	return s.billRepo.ListBills(status)
}

// ListOwnBills retrieves the calling tenant's bills
func (s *billService) ListOwnBills(actor policy.Actor, status *models.BillStatus) ([]*models.Bill, error) {
	if err := policy.RequireTenant(actor); err != nil {
		return nil, err
	}
	if status != nil && !status.IsValid() {
		return nil, &apperrors.ValidationError{Field: "status", Message: fmt.Sprintf("unknown bill status %q", *status)}
	}
	return s.billRepo.ListBillsByTenant(actor.TenantID, status)
}

// Pay marks a bill as paid. Only the owning tenant may pay; paying an
// already-paid bill is a benign no-op that mutates nothing and returns
// NoOpSignal.
func (s *billService) Pay(actor policy.Actor, billID uint) (*models.Bill, error) {
	bill, err := s.billRepo.GetBillByID(billID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Resource: "bill"}
		}
		return nil, err
	}

	if err := policy.RequireOwner(actor, bill.TenantID); err != nil {
		return nil, err
	}

	if bill.Status == models.BillStatusPaid {
		return bill, &apperrors.NoOpSignal{Message: fmt.Sprintf("bill for %s has already been paid", bill.Month)}
	}

	now := time.Now()
	bill.Status = models.BillStatusPaid
	bill.PaidAt = &now

	if err := s.billRepo.UpdateBill(bill); err != nil {
		return nil, fmt.Errorf("failed to update bill: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"bill_id":   bill.ID,
		"tenant_id": bill.TenantID,
		"month":     bill.Month,
	}).Info("Bill paid")

	return bill, nil
}

// GenerateMonthly creates one rent-amount bill per room-assigned tenant
// for the given month label (admin only). Tenants that already have a bill
// for that month are skipped, so reruns are safe. All inserts happen in a
// single transaction.
func (s *billService) GenerateMonthly(actor policy.Actor, month string) (*MonthlyBillingSummary, error) {
	if err := policy.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if month == "" {
		return nil, &apperrors.ValidationError{Field: "month", Message: "must not be empty"}
	}

	tenants, err := s.tenantRepo.ListTenantsWithRoom()
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}

	summary := &MonthlyBillingSummary{
		Month:        month,
		TotalTenants: len(tenants),
	}

	var bills []*models.Bill
	for _, tenant := range tenants {
		existing, err := s.billRepo.GetBillByTenantAndMonth(tenant.ID, month)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing bill: %w", err)
		}
		if existing != nil {
			summary.Skipped++
			continue
		}

		bills = append(bills, &models.Bill{
			TenantID: tenant.ID,
			Month:    month,
			Amount:   tenant.Room.Rent,
			Status:   models.BillStatusUnpaid,
		})
	}

	if len(bills) > 0 {
		err = s.db.Transaction(func(tx *gorm.DB) error {
			return tx.CreateInBatches(bills, 100).Error
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create bills: %w", err)
		}
	}

	summary.Created = len(bills)

	s.logger.WithFields(map[string]interface{}{
		"month":   month,
		"created": summary.Created,
		"skipped": summary.Skipped,
	}).Info("Monthly bills generated")

	return summary, nil
}
