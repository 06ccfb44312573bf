package repository

import (
	"errors"

	"gorm.io/gorm"

	"hostel-be-svc/internal/models"
	"hostel-be-svc/internal/models/response"
)

// TenantRepository defines the interface for tenant data operations
type TenantRepository interface {
	CreateTenant(tenant *models.Tenant) error
	GetTenantByID(id uint) (*models.Tenant, error)
	GetTenantByUserID(userID uint) (*models.Tenant, error)
	ListTenants() ([]*response.TenantListItem, error)
	ListTenantsWithRoom() ([]*models.Tenant, error)
	DeleteTenant(id uint) error
}

// tenantRepository implements TenantRepository
type tenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository creates a new instance of TenantRepository
func NewTenantRepository(db *gorm.DB) TenantRepository {
	return &tenantRepository{
		db: db,
	}
}

// CreateTenant inserts a new tenant record
func (r *tenantRepository) CreateTenant(tenant *models.Tenant) error {
	return r.db.Create(tenant).Error
}

// GetTenantByID retrieves a tenant by ID with its user and room preloaded
func (r *tenantRepository) GetTenantByID(id uint) (*models.Tenant, error) {
	var tenant models.Tenant

	err := r.db.Preload("User").Preload("Room").Where("id = ?", id).First(&tenant).Error
	if err != nil {
		return nil, err
	}

	return &tenant, nil
}

// GetTenantByUserID retrieves the tenant profile linked to a user account,
// returning nil without error when the user has no tenant profile
func (r *tenantRepository) GetTenantByUserID(userID uint) (*models.Tenant, error) {
	var tenant models.Tenant

	err := r.db.Preload("User").Preload("Room").Where("user_id = ?", userID).First(&tenant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &tenant, nil
}

// ListTenants retrieves all tenants joined with their user account and room
func (r *tenantRepository) ListTenants() ([]*response.TenantListItem, error) {
	var tenants []*response.TenantListItem

	query := `
		SELECT t.id, t.user_id, u.username,
			   TRIM(u.first_name || ' ' || u.last_name) AS name,
			   u.email, t.phone, t.room_id,
			   COALESCE(r.room_number, '') AS room_number,
			   t.join_date
		FROM tenants t
		INNER JOIN users u ON u.id = t.user_id
		LEFT JOIN rooms r ON r.id = t.room_id
		ORDER BY u.first_name, u.last_name
	`

	rows, err := r.db.Raw(query).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item response.TenantListItem
		var joinDate string

		err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.Username,
			&item.Name,
			&item.Email,
			&item.Phone,
			&item.RoomID,
			&item.RoomNumber,
			&joinDate,
		)
		if err != nil {
			return nil, err
		}

		if len(joinDate) >= 10 {
			item.JoinDate = joinDate[:10]
		} else {
			item.JoinDate = joinDate
		}

		tenants = append(tenants, &item)
	}

	return tenants, nil
}

// ListTenantsWithRoom retrieves all tenants currently assigned to a room
func (r *tenantRepository) ListTenantsWithRoom() ([]*models.Tenant, error) {
	var tenants []*models.Tenant

	err := r.db.Preload("Room").Where("room_id IS NOT NULL").Find(&tenants).Error
	if err != nil {
		return nil, err
	}

	return tenants, nil
}

// DeleteTenant deletes a tenant together with its bills, complaints and
// user account, in a single transaction
func (r *tenantRepository) DeleteTenant(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var tenant models.Tenant
		if err := tx.Where("id = ?", id).First(&tenant).Error; err != nil {
			return err
		}

		if err := tx.Where("tenant_id = ?", id).Delete(&models.Bill{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tenant_id = ?", id).Delete(&models.Complaint{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Tenant{}, id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, tenant.UserID).Error
	})
}
