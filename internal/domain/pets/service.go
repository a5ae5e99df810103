package pets

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
)

type Service struct {
	store Store
	newID func() string
}

func NewService(store Store) *Service {
	return &Service{
		store: store,
		newID: uuid.NewString,
	}
}

// List devuelve las mascotas filtradas: type se compara sin distinguir
// mayúsculas, adoptedBy por igualdad exacta. Filtros vacíos no filtran.
func (s *Service) List(ctx context.Context, typeFilter, adoptedBy string) ([]Pet, error) {
	ps, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Pet, 0, len(ps))
	for _, p := range ps {
		if typeFilter != "" && !strings.EqualFold(p.Type, typeFilter) {
			continue
		}
		if adoptedBy != "" && (p.AdoptedBy == nil || *p.AdoptedBy != adoptedBy) {
			continue
		}
		out = append(out, p)
	}

	return out, nil
}

type CreateInput struct {
	Name        string
	Type        string
	Breed       string
	Age         *float64 // puntero para distinguir "ausente" de 0
	Description string
}

// Create ingresa una mascota nueva: id generado, hambre y felicidad
// iniciales, sin adoptar.
func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	if in.Name == "" || in.Type == "" || in.Breed == "" || in.Age == nil {
		return Pet{}, ErrInvalidInput
	}

	p := Pet{
		ID:          s.newID(),
		Name:        in.Name,
		Type:        in.Type,
		Breed:       in.Breed,
		Age:         *in.Age,
		Description: in.Description,
		Hunger:      DefaultHunger,
		Happiness:   DefaultHappiness,
		AdoptedBy:   nil,
	}

	ps, err := s.store.LoadAll(ctx)
	if err != nil {
		return Pet{}, err
	}
	ps = append(ps, p)

	if err := s.store.ReplaceAll(ctx, ps); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// Delete elimina por id. Si el id no existe la colección queda intacta
// y se devuelve ErrNotFound.
func (s *Service) Delete(ctx context.Context, petID string) error {
	ps, err := s.store.LoadAll(ctx)
	if err != nil {
		return err
	}

	kept := make([]Pet, 0, len(ps))
	for _, p := range ps {
		if p.ID != petID {
			kept = append(kept, p)
		}
	}

	if len(kept) == len(ps) {
		return ErrNotFound
	}

	return s.store.ReplaceAll(ctx, kept)
}
