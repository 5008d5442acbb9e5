package food

import (
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func (s *Service) List() []Food {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Food, error) {
	return s.repo.GetByID(id)
}

// Create stores a new dish. The uuid is issued here; any value in the payload
// is replaced.
func (s *Service) Create(food Food) (Food, error) {
	food.UUID = uuid.NewString()
	food.CreatedAt = now()
	food.UpdatedAt = ""
	return s.repo.Create(food)
}

func (s *Service) Update(id int, update Update) (Food, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return Food{}, err
	}

	if update.Title != nil {
		existing.Title = *update.Title
	}
	if update.Description != nil {
		existing.Description = *update.Description
	}
	if update.Price != nil {
		existing.Price = *update.Price
	}
	if update.CategoryID != nil {
		existing.CategoryID = update.CategoryID
	}
	existing.UpdatedAt = now()

	return s.repo.Update(id, existing)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}
