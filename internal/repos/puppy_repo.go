package repos

import (
	"misfitpups/internal/domain"

	"github.com/jmoiron/sqlx"
)

type PuppyRepo struct{ db *sqlx.DB }

func NewPuppyRepo(db *sqlx.DB) *PuppyRepo { return &PuppyRepo{db: db} }

const puppyColumns = `
    p.id, p.name, p.breed, p.color, p.sex, p.price, p.status,
    p.breeder_slug, b.name AS breeder_name
  FROM puppies p
  JOIN breeders b ON b.slug = p.breeder_slug`

// All returns every listing in fixture order.
func (r *PuppyRepo) All() ([]domain.Puppy, error) {
	var out []domain.Puppy
	err := r.db.Select(&out, `SELECT`+puppyColumns+`
  ORDER BY p.sort_order, p.id`)
	return out, err
}

func (r *PuppyRepo) Get(id string) (domain.Puppy, error) {
	var p domain.Puppy
	err := r.db.Get(&p, `SELECT`+puppyColumns+`
  WHERE p.id = ?`, id)
	return p, err
}

func (r *PuppyRepo) ListByBreeder(slug string) ([]domain.Puppy, error) {
	var out []domain.Puppy
	err := r.db.Select(&out, `SELECT`+puppyColumns+`
  WHERE p.breeder_slug = ?
  ORDER BY p.sort_order, p.id`, slug)
	return out, err
}
