package repos

import (
	"misfitpups/internal/domain"

	"github.com/jmoiron/sqlx"
)

type BreederRepo struct{ db *sqlx.DB }

func NewBreederRepo(db *sqlx.DB) *BreederRepo { return &BreederRepo{db: db} }

// BreederRow is a breeder with its listing counts, used by the breeder cards.
type BreederRow struct {
	domain.Breeder
	Listed    int `db:"listed"`
	Available int `db:"available"`
}

func (r *BreederRepo) List() ([]BreederRow, error) {
	var out []BreederRow
	err := r.db.Select(&out, `
  SELECT
    b.slug, b.name, b.tagline, b.region, b.verified,
    COUNT(p.id) AS listed,
    COALESCE(SUM(CASE WHEN p.status = 'Available' THEN 1 ELSE 0 END), 0) AS available
  FROM breeders b
  LEFT JOIN puppies p ON p.breeder_slug = b.slug
  GROUP BY b.slug
  ORDER BY b.verified DESC, b.name
`)
	return out, err
}

func (r *BreederRepo) Get(slug string) (domain.Breeder, error) {
	var b domain.Breeder
	err := r.db.Get(&b, `
  SELECT slug, name, tagline, region, verified
  FROM breeders
  WHERE slug = ?
`, slug)
	return b, err
}
