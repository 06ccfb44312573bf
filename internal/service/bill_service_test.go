package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hostel-be-svc/internal/apperrors"
	"hostel-be-svc/internal/models"
	"hostel-be-svc/internal/repository"
)

func newBillService(t *testing.T) (BillService, *gorm.DB) {
	db := setupTestDB(t)
	return NewBillService(repository.NewBillRepository(db), repository.NewTenantRepository(db), db, testLogger()), db
}

func TestCreateBill(t *testing.T) {
	svc, db := newBillService(t)
	tenant := createTestTenant(t, db, "alice", nil)

	bill, err := svc.CreateBill(adminActor(), BillInput{TenantID: tenant.ID, Month: "2026-08", Amount: 1500})

	require.NoError(t, err)
	assert.Equal(t, models.BillStatusUnpaid, bill.Status)
	assert.Nil(t, bill.PaidAt)
	assert.Equal(t, 1500.0, bill.Amount)
}

func TestCreateBill_DuplicateMonth(t *testing.T) {
	svc, db := newBillService(t)
	tenant := createTestTenant(t, db, "alice", nil)

	_, err := svc.CreateBill(adminActor(), BillInput{TenantID: tenant.ID, Month: "2026-08", Amount: 1500})
	require.NoError(t, err)

	_, err = svc.CreateBill(adminActor(), BillInput{TenantID: tenant.ID, Month: "2026-08", Amount: 1500})
	assert.True(t, apperrors.IsConflict(err))

	// a different month for the same tenant is fine
	_, err = svc.CreateBill(adminActor(), BillInput{TenantID: tenant.ID, Month: "2026-09", Amount: 1500})
	assert.NoError(t, err)
}

func TestCreateBill_RequiresAdmin(t *testing.T) {
	svc, db := newBillService(t)
	tenant := createTestTenant(t, db, "alice", nil)

	_, err := svc.CreateBill(actorFor(tenant), BillInput{TenantID: tenant.ID, Month: "2026-08", Amount: 1500})

	assert.True(t, apperrors.IsPermission(err))
}

func TestCreateBill_TenantNotFound(t *testing.T) {
	svc, _ := newBillService(t)

	_, err := svc.CreateBill(adminActor(), BillInput{TenantID: 999, Month: "2026-08", Amount: 1500})

	assert.True(t, apperrors.IsNotFound(err))
}

func TestPayBill(t *testing.T) {
	svc, db := newBillService(t)
	tenant := createTestTenant(t, db, "alice", nil)
	bill, err := svc.CreateBill(adminActor(), BillInput{TenantID: tenant.ID, Month: "2026-08", Amount: 1500})
	require.NoError(t, err)

	paid, err := svc.Pay(actorFor(tenant), bill.ID)

	require.NoError(t, err)
	assert.Equal(t, models.BillStatusPaid, paid.Status)
	require.NotNil(t, paid.PaidAt)
	assert.WithinDuration(t, time.Now(), *paid.PaidAt, 5*time.Second)
}

func TestPayBill_NotOwner(t *testing.T) {
	svc, db := newBillService(t)
	alice := createTestTenant(t, db, "alice", nil)
	bob := createTestTenant(t, db, "bob", nil)
	bill, err := svc.CreateBill(adminActor(), BillInput{TenantID: alice.ID, Month: "2026-08", Amount: 1500})
	require.NoError(t, err)

	_, err = svc.Pay(actorFor(bob), bill.ID)

	assert.True(t, apperrors.IsPermission(err))

	// the bill must still be unpaid
	reloaded, loadErr := repository.NewBillRepository(db).GetBillByID(bill.ID)
	require.NoError(t, loadErr)
	assert.Equal(t, models.BillStatusUnpaid, reloaded.Status)
}

func TestPayBill_AdminCannotPayOnBehalf(t *testing.T) {
	svc, db := newBillService(t)
	tenant := createTestTenant(t, db, "alice", nil)
	bill, err := svc.CreateBill(adminActor(), BillInput{TenantID: tenant.ID, Month: "2026-08", Amount: 1500})
	require.NoError(t, err)

	// admins correct payment state through UpdateBill, not Pay
	_, err = svc.Pay(adminActor(), bill.ID)

	assert.True(t, apperrors.IsPermission(err))
}

func TestPayBill_AlreadyPaidIsNoOp(t *testing.T) {
	svc, db := newBillService(t)
	tenant := createTestTenant(t, db, "alice", nil)
	bill, err := svc.CreateBill(adminActor(), BillInput{TenantID: tenant.ID, Month: "2026-08", Amount: 1500})
	require.NoError(t, err)

	first, err := svc.Pay(actorFor(tenant), bill.ID)
	require.NoError(t, err)
	require.NotNil(t, first.PaidAt)
	firstPaidAt := *first.PaidAt

	time.Sleep(10 * time.Millisecond)

	_, err = svc.Pay(actorFor(tenant), bill.ID)
	assert.True(t, apperrors.IsNoOp(err))

	// the repeat attempt must not have touched the original payment time
	reloaded, loadErr := repository.NewBillRepository(db).GetBillByID(bill.ID)
	require.NoError(t, loadErr)
	assert.Equal(t, models.BillStatusPaid, reloaded.Status)
	require.NotNil(t, reloaded.PaidAt)
	assert.WithinDuration(t, firstPaidAt, *reloaded.PaidAt, 5*time.Millisecond)
}

func TestUpdateBill_StatusIsAuthoritative(t *testing.T) {
	svc, db := newBillService(t)
	tenant := createTestTenant(t, db, "alice", nil)
	bill, err := svc.CreateBill(adminActor(), BillInput{TenantID: tenant.ID, Month: "2026-08", Amount: 1500})
	require.NoError(t, err)

	// marking Paid without a timestamp leaves PaidAt empty: the submitted
	// values are written as given, nothing is auto-set
	updated, err := svc.UpdateBill(adminActor(), bill.ID, BillUpdateInput{
		Month:  "2026-08",
		Amount: 1500,
		Status: models.BillStatusPaid,
	})

	require.NoError(t, err)
	assert.Equal(t, models.BillStatusPaid, updated.Status)
	assert.Nil(t, updated.PaidAt)
}

func TestUpdateBill_RevertToUnpaidClearsPaidAt(t *testing.T) {
	svc, db := newBillService(t)
	tenant := createTestTenant(t, db, "alice", nil)
	bill, err := svc.CreateBill(adminActor(), BillInput{TenantID: tenant.ID, Month: "2026-08", Amount: 1500})
	require.NoError(t, err)
	_, err = svc.Pay(actorFor(tenant), bill.ID)
	require.NoError(t, err)

	updated, err := svc.UpdateBill(adminActor(), bill.ID, BillUpdateInput{
		Month:  "2026-08",
		Amount: 1500,
		Status: models.BillStatusUnpaid,
	})

	require.NoError(t, err)
	assert.Equal(t, models.BillStatusUnpaid, updated.Status)
	assert.Nil(t, updated.PaidAt)
}

func TestUpdateBill_MonthConflict(t *testing.T) {
	svc, db := newBillService(t)
	tenant := createTestTenant(t, db, "alice", nil)
	_, err := svc.CreateBill(adminActor(), BillInput{TenantID: tenant.ID, Month: "2026-08", Amount: 1500})
	require.NoError(t, err)
	september, err := svc.CreateBill(adminActor(), BillInput{TenantID: tenant.ID, Month: "2026-09", Amount: 1500})
	require.NoError(t, err)

	_, err = svc.UpdateBill(adminActor(), september.ID, BillUpdateInput{
		Month:  "2026-08",
		Amount: 1500,
		Status: models.BillStatusUnpaid,
	})

	assert.True(t, apperrors.IsConflict(err))
}

func TestUpdateBill_UnknownStatus(t *testing.T) {
	svc, db := newBillService(t)
	tenant := createTestTenant(t, db, "alice", nil)
	bill, err := svc.CreateBill(adminActor(), BillInput{TenantID: tenant.ID, Month: "2026-08", Amount: 1500})
	require.NoError(t, err)

	_, err = svc.UpdateBill(adminActor(), bill.ID, BillUpdateInput{
		Month:  "2026-08",
		Amount: 1500,
		Status: models.BillStatus("Overdue"),
	})

	assert.True(t, apperrors.IsValidation(err))
}

func TestListOwnBills(t *testing.T) {
	svc, db := newBillService(t)
	alice := createTestTenant(t, db, "alice", nil)
	bob := createTestTenant(t, db, "bob", nil)
	_, err := svc.CreateBill(adminActor(), BillInput{TenantID: alice.ID, Month: "2026-08", Amount: 1500})
	require.NoError(t, err)
	septBill, err := svc.CreateBill(adminActor(), BillInput{TenantID: alice.ID, Month: "2026-09", Amount: 1500})
	require.NoError(t, err)
	_, err = svc.CreateBill(adminActor(), BillInput{TenantID: bob.ID, Month: "2026-08", Amount: 1200})
	require.NoError(t, err)

	_, err = svc.Pay(actorFor(alice), septBill.ID)
	require.NoError(t, err)

	all, err := svc.ListOwnBills(actorFor(alice), nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	unpaid := models.BillStatusUnpaid
	open, err := svc.ListOwnBills(actorFor(alice), &unpaid)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "2026-08", open[0].Month)
}

func TestListBills_UnknownStatusFilter(t *testing.T) {
	svc, _ := newBillService(t)

	bad := models.BillStatus("Overdue")
	_, err := svc.ListBills(adminActor(), &bad)

	assert.True(t, apperrors.IsValidation(err))
}

func TestGenerateMonthly(t *testing.T) {
	svc, db := newBillService(t)
	small := createTestRoom(t, db, "101", 2, 1200)
	large := createTestRoom(t, db, "201", 4, 1800)
	createTestTenant(t, db, "alice", &small.ID)
	createTestTenant(t, db, "bob", &large.ID)
	createTestTenant(t, db, "carol", nil) // no room, no bill

	summary, err := svc.GenerateMonthly(adminActor(), "2026-09")

	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalTenants)
	assert.Equal(t, 2, summary.Created)
	assert.Equal(t, 0, summary.Skipped)

	bills, err := svc.ListBills(adminActor(), nil)
	require.NoError(t, err)
	require.Len(t, bills, 2)
	amounts := map[float64]bool{}
	for _, bill := range bills {
		assert.Equal(t, "2026-09", bill.Month)
		assert.Equal(t, models.BillStatusUnpaid, bill.Status)
		amounts[bill.Amount] = true
	}
	assert.True(t, amounts[1200])
	assert.True(t, amounts[1800])
}

func TestGenerateMonthly_RerunSkipsExisting(t *testing.T) {
	svc, db := newBillService(t)
	room := createTestRoom(t, db, "101", 2, 1200)
	createTestTenant(t, db, "alice", &room.ID)
	createTestTenant(t, db, "bob", &room.ID)

	first, err := svc.GenerateMonthly(adminActor(), "2026-09")
	require.NoError(t, err)
	assert.Equal(t, 2, first.Created)

	second, err := svc.GenerateMonthly(adminActor(), "2026-09")
	require.NoError(t, err)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 2, second.Skipped)

	bills, err := svc.ListBills(adminActor(), nil)
	require.NoError(t, err)
	assert.Len(t, bills, 2)
}

func TestGenerateMonthly_RequiresAdmin(t *testing.T) {
	svc, db := newBillService(t)
	tenant := createTestTenant(t, db, "alice", nil)

	_, err := svc.GenerateMonthly(actorFor(tenant), "2026-09")

	assert.True(t, apperrors.IsPermission(err))
}
