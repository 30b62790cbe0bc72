package services

import (
	"misfitpups/internal/domain"
	"misfitpups/internal/repos"
)

type CatalogService struct {
	Breeders *repos.BreederRepo
	Puppies  *repos.PuppyRepo
}

func NewCatalogService(breeders *repos.BreederRepo, puppies *repos.PuppyRepo) *CatalogService {
	return &CatalogService{Breeders: breeders, Puppies: puppies}
}

// SearchPuppies loads the listing fixtures and applies f in memory.
func (s *CatalogService) SearchPuppies(f PuppyFilter) ([]domain.Puppy, error) {
	all, err := s.Puppies.All()
	if err != nil {
		return nil, err
	}
	return FilterPuppies(all, f), nil
}

func (s *CatalogService) GetPuppy(id string) (domain.Puppy, error) {
	return s.Puppies.Get(id)
}

func (s *CatalogService) ListBreeders() ([]repos.BreederRow, error) {
	return s.Breeders.List()
}

type BreederProfile struct {
	Breeder domain.Breeder
	Puppies []domain.Puppy
}

func (s *CatalogService) GetBreeder(slug string) (BreederProfile, error) {
	b, err := s.Breeders.Get(slug)
	if err != nil {
		return BreederProfile{}, err
	}
	pups, err := s.Puppies.ListByBreeder(slug)
	if err != nil {
		return BreederProfile{}, err
	}
	return BreederProfile{Breeder: b, Puppies: pups}, nil
}
