package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hostel-be-svc/internal/apperrors"
	"hostel-be-svc/internal/models"
	"hostel-be-svc/internal/models/response"
	"hostel-be-svc/internal/policy"
	"hostel-be-svc/internal/repository"
	"hostel-be-svc/pkg/logger"
)

// TenantService defines the interface for tenant business operations
type TenantService interface {
	ListTenants(actor policy.Actor) ([]*response.TenantListItem, error)
	GetTenant(actor policy.Actor, id uint) (*models.Tenant, error)
	GetOwnProfile(actor policy.Actor) (*models.Tenant, error)
	AssignRoom(actor policy.Actor, tenantID uint, roomID *uint) (*models.Tenant, error)
	DeleteTenant(actor policy.Actor, id uint) error
}

// tenantService implements TenantService
type tenantService struct {
	tenantRepo repository.TenantRepository
	db         *gorm.DB
	logger     *logger.Logger
}

// NewTenantService creates a new instance of TenantService
func NewTenantService(tenantRepo repository.TenantRepository, db *gorm.DB, logger *logger.Logger) TenantService {
	return &tenantService{
		tenantRepo: tenantRepo,
		db:         db,
		logger:     logger,
	}
}

// ListTenants retrieves all tenants with user and room details (admin only)
func (s *tenantService) ListTenants(actor policy.Actor) ([]*response.TenantListItem, error) {
	if err := policy.RequireAdmin(actor); err != nil {
		return nil, err
	}
	return s.tenantRepo.ListTenants()
}

// GetTenant retrieves a single tenant (admin only)
func (s *tenantService) GetTenant(actor policy.Actor, id uint) (*models.Tenant, error) {
	if err := policy.RequireAdmin(actor); err != nil {
		return nil, err
	}

	tenant, err := s.tenantRepo.GetTenantByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Resource: "tenant"}
		}
		return nil, err
	}

	return tenant, nil
}

// GetOwnProfile retrieves the calling tenant's own profile
func (s *tenantService) GetOwnProfile(actor policy.Actor) (*models.Tenant, error) {
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

	return tenant, nil
}

// AssignRoom assigns a tenant to a room, or unassigns when roomID is nil
// (admin only). The occupancy read, the capacity decision and the write of
// the tenant's room reference run inside one transaction with the target
// room row locked, so two concurrent assignments cannot both take the last
// open slot.
func (s *tenantService) AssignRoom(actor policy.Actor, tenantID uint, roomID *uint) (*models.Tenant, error) {
	if err := policy.RequireAdmin(actor); err != nil {
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var tenant models.Tenant
		if err := tx.Where("id = ?", tenantID).First(&tenant).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &apperrors.NotFoundError{Resource: "tenant"}
			}
			return err
		}

		if roomID != nil {
			roomQuery := tx
			if tx.Dialector.Name() == "postgres" {
				// SELECT ... FOR UPDATE serializes concurrent assignments
				// to the same room; sqlite has a single writer and needs
				// no row lock
				roomQuery = tx.Clauses(clause.Locking{Strength: "UPDATE"})
			}

			var room models.Room
			if err := roomQuery.Where("id = ?", *roomID).First(&room).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &apperrors.NotFoundError{Resource: "room"}
				}
				return err
			}

			var occupants int64
			if err := tx.Model(&models.Tenant{}).
				Where("room_id = ? AND id <> ?", room.ID, tenant.ID).
				Count(&occupants).Error; err != nil {
				return err
			}

			decision := policy.CanAssign(&tenant, &room, occupants)
			if !decision.Allowed {
				return &apperrors.CapacityError{RoomNumber: decision.RoomNumber, Capacity: decision.Capacity}
			}
		}

		return tx.Model(&models.Tenant{}).Where("id = ?", tenantID).Update("room_id", roomID).Error
	})
	if err != nil {
		return nil, err
	}

	tenant, err := s.tenantRepo.GetTenantByID(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload tenant: %w", err)
	}

	entry := s.logger.WithField("tenant_id", tenantID)
	if roomID != nil {
		entry = entry.WithField("room_id", *roomID)
	}
	entry.Info("Tenant room assignment updated")

	return tenant, nil
}

// DeleteTenant deletes a tenant together with its bills, complaints and
// user account (admin only)
func (s *tenantService) DeleteTenant(actor policy.Actor, id uint) error {
	if err := policy.RequireAdmin(actor); err != nil {
		return err
	}

	if err := s.tenantRepo.DeleteTenant(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &apperrors.NotFoundError{Resource: "tenant"}
		}
		return fmt.Errorf("failed to delete tenant: %w", err)
	}

	s.logger.WithField("tenant_id", id).Info("Tenant deleted")

	return nil
}
