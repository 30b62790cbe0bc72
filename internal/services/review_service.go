package services

import (
	"misfitpups/internal/domain"
	"misfitpups/internal/repos"
)

// ReviewService exposes the breeder application queue for display only.
type ReviewService struct {
	Apps *repos.ApplicationRepo
}

func NewReviewService(apps *repos.ApplicationRepo) *ReviewService {
	return &ReviewService{Apps: apps}
}

func (s *ReviewService) Search(f ApplicationFilter) ([]domain.Application, error) {
	all, err := s.Apps.All()
	if err != nil {
		return nil, err
	}
	return FilterApplications(all, f), nil
}

type StatusTally struct {
	Status domain.ReviewStatus
	Count  int
}

// Summary counts applications per review status, in display order and
// including zero counts.
func (s *ReviewService) Summary() ([]StatusTally, error) {
	rows, err := s.Apps.CountByStatus()
	if err != nil {
		return nil, err
	}
	n := make(map[domain.ReviewStatus]int, len(rows))
	for _, r := range rows {
		n[r.Status] = r.N
	}
	out := make([]StatusTally, 0, len(domain.ReviewStatuses))
	for _, st := range domain.ReviewStatuses {
		out = append(out, StatusTally{Status: st, Count: n[st]})
	}
	return out, nil
}
