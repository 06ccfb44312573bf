package response

// RoomOccupancy represents a room together with its derived occupant count
type RoomOccupancy struct {
	ID          uint    `json:"id" example:"1"`
	RoomNumber  string  `json:"room_number" example:"101"`
	Capacity    int     `json:"capacity" example:"4"`
	Rent        float64 `json:"rent" example:"5000"`
	TenantCount int64   `json:"tenant_count" example:"2"`
}

// AdminDashboardResponse represents the admin dashboard overview
type AdminDashboardResponse struct {
	TotalTenants      int64            `json:"total_tenants" example:"25"`
	TotalRooms        int64            `json:"total_rooms" example:"10"`
	UnpaidBills       int64            `json:"unpaid_bills" example:"7"`
	PendingComplaints int64            `json:"pending_complaints" example:"3"`
	Rooms             []*RoomOccupancy `json:"rooms"`
}

// TenantDashboardResponse represents a tenant's personal dashboard
type TenantDashboardResponse struct {
	TenantID    uint    `json:"tenant_id" example:"4"`
	Name        string  `json:"name" example:"John Doe"`
	RoomNumber  string  `json:"room_number,omitempty" example:"101"`
	Rent        float64 `json:"rent,omitempty" example:"5000"`
	JoinDate    string  `json:"join_date" example:"2024-01-15"`
	TotalPaid   float64 `json:"total_paid" example:"15000"`
	TotalUnpaid float64 `json:"total_unpaid" example:"5000"`
	UnpaidBills int64   `json:"unpaid_bill_count" example:"1"`
}
