package category

import "time"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func (s *Service) List() []Category {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Category, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(category Category) (Category, error) {
	category.CreatedAt = now()
	category.UpdatedAt = ""
	return s.repo.Create(category)
}

func (s *Service) Update(id int, update Update) (Category, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return Category{}, err
	}

	if update.Title != nil {
		existing.Title = *update.Title
	}
	if update.Description != nil {
		existing.Description = *update.Description
	}
	existing.UpdatedAt = now()

	return s.repo.Update(id, existing)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}
