package models

import "fmt"

// Domain models matching the database schema in db/migrations.

// Technician is a stored profile with contact info and two binary
// attachments. TechID is the public `TECH-NNN` identifier shown to users;
// it never changes once assigned. ID is the internal row id.
type Technician struct {
	ID          int64  `json:"id" db:"id"`
	TechID      string `json:"tech_id" db:"tech_id"`
	Name        string `json:"name" db:"name" validate:"required"`
	Phone       string `json:"phone" db:"phone" validate:"required"`
	Address     string `json:"address" db:"address" validate:"required"`
	Photo       []byte `json:"-" db:"photo"`
	Certificate []byte `json:"-" db:"certificate"`
	UploadedAt  string `json:"uploaded_at" db:"uploaded_at"`
}

type Account struct {
	ID           int64  `json:"id" db:"id"`
	Username     string `json:"username" db:"username" validate:"required"`
	PasswordHash string `json:"-" db:"password_hash"`
	Email        string `json:"email,omitempty" db:"email"`
	CreatedAt    string `json:"created_at" db:"created_at"`
}

// ServiceFeedback is an append-only post-visit report. TechID is a free-text
// reference, not a foreign key: deleting a technician leaves its feedback
// rows untouched.
type ServiceFeedback struct {
	ID            int64   `json:"id" db:"id"`
	TechID        string  `json:"tech_id" db:"tech_id"`
	CustomerEmail string  `json:"customer_email" db:"customer_email"`
	BookingNumber string  `json:"booking_number,omitempty" db:"booking_number"`
	ServiceCount  int     `json:"service_count" db:"service_count"`
	ProblemStatus string  `json:"problem_status" db:"problem_status"`
	TimeHours     int     `json:"time_hours" db:"time_hours"`
	ProblemArea   string  `json:"problem_area" db:"problem_area"`
	UserFeedback  string  `json:"user_feedback" db:"user_feedback"`
	SpareDetails  string  `json:"spare_details" db:"spare_details"`
	FeesPaid      string  `json:"fees_paid" db:"fees_paid"`
	AmountPaid    float64 `json:"amount_paid" db:"amount_paid"`
	SubmittedAt   string  `json:"submitted_at" db:"submitted_at"`
}

// Session is the per-request authentication state decoded from the bearer
// token. It is built by the API middleware and carried in the request
// context; nothing is persisted.
type Session struct {
	Username string
	SignedUp bool
	LoggedIn bool
}

// FormatTechID renders the public identifier for the nth allocated
// technician, e.g. FormatTechID(1) == "TECH-001".
func FormatTechID(n int64) string {
	return fmt.Sprintf("TECH-%03d", n)
}
