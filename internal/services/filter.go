package services

import (
	"strings"

	"golang.org/x/text/cases"

	"misfitpups/internal/domain"
)

// PuppyFilter narrows the listing grid. Zero-valued fields do not constrain.
type PuppyFilter struct {
	Query  string // name, breed, color or breeder name
	Breed  string
	Color  string
	Status domain.PuppyStatus
}

func (f PuppyFilter) Match(p domain.Puppy) bool {
	if q := strings.TrimSpace(f.Query); q != "" {
		if !containsFold(p.Name, q) && !containsFold(p.Breed, q) &&
			!containsFold(p.Color, q) && !containsFold(p.BreederName, q) {
			return false
		}
	}
	if b := strings.TrimSpace(f.Breed); b != "" && !containsFold(p.Breed, b) {
		return false
	}
	if c := strings.TrimSpace(f.Color); c != "" && !containsFold(p.Color, c) {
		return false
	}
	return f.Status == "" || p.Status == f.Status
}

// Active reports whether any field constrains the result.
func (f PuppyFilter) Active() bool {
	return strings.TrimSpace(f.Query) != "" || strings.TrimSpace(f.Breed) != "" ||
		strings.TrimSpace(f.Color) != "" || f.Status != ""
}

// FilterPuppies returns the matching records in input order. The input is
// not modified and the result is never nil.
func FilterPuppies(all []domain.Puppy, f PuppyFilter) []domain.Puppy {
	out := make([]domain.Puppy, 0, len(all))
	for _, p := range all {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// ApplicationFilter narrows the review queue.
type ApplicationFilter struct {
	Query  string // business, contact, email or region
	Status domain.ReviewStatus
}

func (f ApplicationFilter) Match(a domain.Application) bool {
	if q := strings.TrimSpace(f.Query); q != "" {
		if !containsFold(a.BusinessName, q) && !containsFold(a.ContactName, q) &&
			!containsFold(a.Email, q) && !containsFold(a.Region, q) {
			return false
		}
	}
	return f.Status == "" || a.Status == f.Status
}

func FilterApplications(all []domain.Application, f ApplicationFilter) []domain.Application {
	out := make([]domain.Application, 0, len(all))
	for _, a := range all {
		if f.Match(a) {
			out = append(out, a)
		}
	}
	return out
}

// containsFold reports whether sub occurs in s under Unicode case folding.
// A Caser is stateful, so one is built per call.
func containsFold(s, sub string) bool {
	fold := cases.Fold()
	return strings.Contains(fold.String(s), fold.String(sub))
}
