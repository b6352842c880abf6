package cats

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("cat not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name   string
	Breed  string
	Age    int
	Gender string
	// Image es el nombre de archivo ya almacenado (vacío = sin foto).
	Image string
}

func validGender(g string) bool {
	return g == string(GenderMale) || g == string(GenderFemale)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Cat, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Cat{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Breed) == "" {
		return Cat{}, ErrInvalidInput
	}
	if in.Age < 0 {
		return Cat{}, ErrInvalidInput
	}
	if !validGender(in.Gender) {
		return Cat{}, ErrInvalidInput
	}

	now := s.now()
	c := Cat{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Breed:     strings.TrimSpace(in.Breed),
		Age:       in.Age,
		Gender:    Gender(in.Gender),
		Image:     in.Image,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return Cat{}, err
	}
	return c, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Cat, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Cat, error) {
	return s.repo.List(ctx)
}

type UpdateInput struct {
	Name   string
	Breed  string
	Age    int
	Gender string
	// Image reemplaza SIEMPRE al valor anterior: si el request no trae
	// archivo nuevo, llega vacío y la referencia previa se pierde
	// (semántica de reemplazo completo, no de merge parcial).
	Image string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Cat, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Breed) == "" {
		return Cat{}, ErrInvalidInput
	}
	if in.Age < 0 || !validGender(in.Gender) {
		return Cat{}, ErrInvalidInput
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Cat{}, err
	}

	current.Name = strings.TrimSpace(in.Name)
	current.Breed = strings.TrimSpace(in.Breed)
	current.Age = in.Age
	current.Gender = Gender(in.Gender)
	current.Image = in.Image
	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		return Cat{}, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, id string) (Cat, error) {
	return s.repo.Delete(ctx, id)
}
