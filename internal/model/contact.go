package model

import "time"

// ContactMessage represents a message submitted via the contact form.
// Rows are insert-only.
type ContactMessage struct {
	ID        int64     `db:"id" json:"id"`
	FirstName string    `db:"first_name" json:"firstName"`
	LastName  string    `db:"last_name" json:"lastName"`
	Gender    string    `db:"gender" json:"gender"`
	Mobile    string    `db:"mobile" json:"mobile"`
	DOB       string    `db:"dob" json:"dob"` // YYYY-MM-DD
	Email     string    `db:"email" json:"email"`
	Language  string    `db:"language" json:"language"`
	Message   string    `db:"message" json:"message"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
