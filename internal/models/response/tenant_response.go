package response

// TenantListItem represents a tenant row in the admin tenant listing
type TenantListItem struct {
	ID         uint   `json:"id" example:"4"`
	UserID     uint   `json:"user_id" example:"12"`
	Username   string `json:"username" example:"john_doe"`
	Name       string `json:"name" example:"John Doe"`
	Email      string `json:"email" example:"john.doe@example.com"`
	Phone      string `json:"phone" example:"+911234567890"`
	RoomID     *uint  `json:"room_id,omitempty" example:"2"`
	RoomNumber string `json:"room_number,omitempty" example:"101"`
	JoinDate   string `json:"join_date" example:"2024-01-15"`
}
