package pets

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("pet not found")
	ErrAlreadyExists = errors.New("pet already exists")
)

// Service es el lado servidor del Directory Service: guarda y sirve registros.
type Service struct {
	repo  Repository
	newID func() string
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		newID: uuid.NewString,
	}
}

// Save valida y crea el registro. Si no trae ID, se asigna uno.
func (s *Service) Save(ctx context.Context, p Pet) (Pet, error) {
	if errs := Validate(p); !errs.Empty() {
		return Pet{}, errs
	}

	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		p.ID = s.newID()
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetAll(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

// Update reemplaza el registro completo; el ID de la ruta manda sobre el del body.
func (s *Service) Update(ctx context.Context, id string, p Pet) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrInvalidInput
	}
	if errs := Validate(p); !errs.Empty() {
		return Pet{}, errs
	}

	p.ID = id
	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

// CalculateCosts devuelve el registro con los costos recalculados; no persiste nada.
func (s *Service) CalculateCosts(p Pet, discountPercent float64) Pet {
	p.ApplyPricing(discountPercent)
	return p
}
