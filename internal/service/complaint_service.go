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

// ComplaintInput carries the tenant-submitted complaint fields
type ComplaintInput struct {
	Subject string
	Message string
}

// ComplaintService defines the interface for complaint business operations
type ComplaintService interface {
	CreateComplaint(actor policy.Actor, input ComplaintInput) (*models.Complaint, error)
	ListComplaints(actor policy.Actor, status *models.ComplaintStatus) ([]*models.Complaint, error)
	ListOwnComplaints(actor policy.Actor) ([]*models.Complaint, error)
	SetStatus(actor policy.Actor, id uint, newStatus models.ComplaintStatus) (*models.Complaint, error)
}

// complaintService implements ComplaintService
type complaintService struct {
	complaintRepo repository.ComplaintRepository
	logger        *logger.Logger
}

// NewComplaintService creates a new instance of ComplaintService
func NewComplaintService(complaintRepo repository.ComplaintRepository, logger *logger.Logger) ComplaintService {
	return &complaintService{
		complaintRepo: complaintRepo,
		logger:        logger,
	}
}

// CreateComplaint files a new complaint for the calling tenant. Complaints
// always enter the Pending state.
func (s *complaintService) CreateComplaint(actor policy.Actor, input ComplaintInput) (*models.Complaint, error) {
	if err := policy.RequireTenant(actor); err != nil {
		return nil, err
	}
	if input.Subject == "" {
		return nil, &apperrors.ValidationError{Field: "subject", Message: "must not be empty"}
	}
	if input.Message == "" {
		return nil, &apperrors.ValidationError{Field: "message", Message: "must not be empty"}
	}

	complaint := &models.Complaint{
		TenantID: actor.TenantID,
		Subject:  input.Subject,
		Message:  input.Message,
		Status:   models.ComplaintStatusPending,
	}

	if err := s.complaintRepo.CreateComplaint(complaint); err != nil {
		return nil, fmt.Errorf("failed to create complaint: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"complaint_id": complaint.ID,
		"tenant_id":    complaint.TenantID,
		"subject":      complaint.Subject,
	}).Info("Complaint filed")

	return complaint, nil
}

// ListComplaints retrieves all complaints, optionally filtered by status
// (admin only)
func (s *complaintService) ListComplaints(actor policy.Actor, status *models.ComplaintStatus) ([]*models.Complaint, error) {
	if err := policy.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if status != nil && !status.IsValid() {
		return nil, &apperrors.ValidationError{Field: "status", Message: fmt.Sprintf("unknown complaint status %q", *status)}
	}
	return s.complaintRepo.ListComplaints(status)
}

// ListOwnComplaints retrieves the calling tenant's complaints
func (s *complaintService) ListOwnComplaints(actor policy.Actor) ([]*models.Complaint, error) {
	if err := policy.RequireTenant(actor); err != nil {
		return nil, err
	}
	return s.complaintRepo.ListComplaintsByTenant(actor.TenantID)
}

// SetStatus moves a complaint between Pending and Resolved (admin only).
// Entering Resolved stamps the resolved timestamp; returning to Pending
// clears it. Same-state transitions are permitted no-ops that still
// refresh the update timestamp.
func (s *complaintService) SetStatus(actor policy.Actor, id uint, newStatus models.ComplaintStatus) (*models.Complaint, error) {
	if err := policy.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if !newStatus.IsValid() {
		return nil, &apperrors.ValidationError{Field: "status", Message: fmt.Sprintf("unknown complaint status %q", newStatus)}
	}

	complaint, err := s.complaintRepo.GetComplaintByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Resource: "complaint"}
		}
		return nil, err
	}

	complaint.Status = newStatus
	if newStatus == models.ComplaintStatusResolved {
		now := time.Now()
		complaint.ResolvedAt = &now
	} else {
		complaint.ResolvedAt = nil
	}

	if err := s.complaintRepo.UpdateComplaint(complaint); err != nil {
		return nil, fmt.Errorf("failed to update complaint: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"complaint_id": complaint.ID,
		"status":       complaint.Status,
	}).Info("Complaint status updated")

	return complaint, nil
}
