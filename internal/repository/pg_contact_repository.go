package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/ideahub/backend/internal/model"
	"github.com/jmoiron/sqlx"
)

// ContactRepository defines the persistence interface for contact messages.
// It is defined here (in repository) to avoid an import cycle with service.
type ContactRepository interface {
	Save(ctx context.Context, msg *model.ContactMessage) error
}

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	db *sqlx.DB
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(db *sqlx.DB) *PgContactRepository {
	return &PgContactRepository{db: db}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

// Save inserts a new contact_messages row and populates msg.ID and
// msg.CreatedAt from the RETURNING clause.
func (r *PgContactRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	dob, err := time.Parse("2006-01-02", msg.DOB)
	if err != nil {
		return fmt.Errorf("contact dob: %w", err)
	}
	err = r.db.QueryRowxContext(ctx,
		`INSERT INTO contact_messages (first_name, last_name, gender, mobile, dob, email, language, message)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`,
		msg.FirstName, msg.LastName, msg.Gender, msg.Mobile, dob, msg.Email, msg.Language, msg.Message,
	).Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}
