package schema

// ContactSubmissionsTable represents the 'contact_submissions' table
type ContactSubmissionsTable struct {
	Table     string
	ID        string
	FullName  string
	Email     string
	Phone     string
	Subject   string
	Message   string
	Status    string
	CreatedAt string
}

// ContactSubmissions is the schema definition for contact_submissions
var ContactSubmissions = ContactSubmissionsTable{
	Table:     "contact_submissions",
	ID:        "id",
	FullName:  "full_name",
	Email:     "email",
	Phone:     "phone",
	Subject:   "subject",
	Message:   "message",
	Status:    "status",
	CreatedAt: "created_at",
}

func (t ContactSubmissionsTable) Columns() []string {
	return []string{t.ID, t.FullName, t.Email, t.Phone, t.Subject, t.Message, t.Status, t.CreatedAt}
}
