package repos

import (
	"misfitpups/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ApplicationRepo struct{ db *sqlx.DB }

func NewApplicationRepo(db *sqlx.DB) *ApplicationRepo { return &ApplicationRepo{db: db} }

// All returns the review queue in submission order.
func (r *ApplicationRepo) All() ([]domain.Application, error) {
	var out []domain.Application
	err := r.db.Select(&out, `
		SELECT id, business_name, contact_name, email, region_code, status, submitted_at
		FROM applications
		ORDER BY sort_order, submitted_at, id
	`)
	return out, err
}

// StatusCount is one row of the per-status tally shown above the queue.
type StatusCount struct {
	Status domain.ReviewStatus `db:"status"`
	N      int                 `db:"n"`
}

func (r *ApplicationRepo) CountByStatus() ([]StatusCount, error) {
	var rows []StatusCount
	err := r.db.Select(&rows, `
		SELECT status, COUNT(*) AS n
		FROM applications
		GROUP BY status
	`)
	return rows, err
}
