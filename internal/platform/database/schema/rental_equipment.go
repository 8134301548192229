package schema

// RentalEquipmentTable represents the 'rental_equipment' table
type RentalEquipmentTable struct {
	Table       string
	ID          string
	Name        string
	Slug        string
	Category    string
	Description string
	DailyRate   string
	ImageURL    string
	IsAvailable string
}

// RentalEquipment is the schema definition for rental_equipment
var RentalEquipment = RentalEquipmentTable{
	Table:       "rental_equipment",
	ID:          "id",
	Name:        "name",
	Slug:        "slug",
	Category:    "category",
	Description: "description",
	DailyRate:   "daily_rate",
	ImageURL:    "image_url",
	IsAvailable: "is_available",
}

func (t RentalEquipmentTable) Columns() []string {
	return []string{t.ID, t.Name, t.Slug, t.Category, t.Description, t.DailyRate, t.ImageURL, t.IsAvailable}
}
