package schema

// RentalRequestsTable represents the 'rental_requests' table
type RentalRequestsTable struct {
	Table          string
	ID             string
	FullName       string
	Email          string
	Phone          string
	StartDate      string
	EndDate        string
	EquipmentItems string
	Message        string
	TotalAmount    string
	Status         string
	CreatedAt      string
}

// RentalRequests is the schema definition for rental_requests
var RentalRequests = RentalRequestsTable{
	Table:          "rental_requests",
	ID:             "id",
	FullName:       "full_name",
	Email:          "email",
	Phone:          "phone",
	StartDate:      "start_date",
	EndDate:        "end_date",
	EquipmentItems: "equipment_items",
	Message:        "message",
	TotalAmount:    "total_amount",
	Status:         "status",
	CreatedAt:      "created_at",
}

func (t RentalRequestsTable) Columns() []string {
	return []string{
		t.ID, t.FullName, t.Email, t.Phone, t.StartDate, t.EndDate,
		t.EquipmentItems, t.Message, t.TotalAmount, t.Status, t.CreatedAt,
	}
}
