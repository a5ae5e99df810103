package users

import (
	"context"
	"errors"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailTaken         = errors.New("email taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Register crea un usuario nuevo con todos los defaults ya poblados
// (budget inicial, inventario en cero, sin admin). El duplicado se
// detecta por igualdad de email.
func (s *Service) Register(ctx context.Context, name, email, password string) error {
	if name == "" || email == "" || password == "" {
		return ErrInvalidInput
	}

	us, err := s.store.LoadAll(ctx)
	if err != nil {
		return err
	}

	for _, u := range us {
		if u.Email == email {
			return ErrEmailTaken
		}
	}

	us = append(us, User{
		Name:     name,
		Email:    email,
		Password: password,
		IsAdmin:  false,
		Budget:   DefaultBudget,
	})

	return s.store.ReplaceAll(ctx, us)
}

// Login compara credenciales por igualdad exacta (email, password).
// Los registros heredados salen de LoadAll ya normalizados con defaults;
// se persiste la colección para que queden completos en disco.
func (s *Service) Login(ctx context.Context, email, password string) (SafeUser, error) {
	if email == "" || password == "" {
		return SafeUser{}, ErrInvalidInput
	}

	us, err := s.store.LoadAll(ctx)
	if err != nil {
		return SafeUser{}, err
	}

	idx := -1
	for i, u := range us {
		if u.Email == email && u.Password == password {
			idx = i
			break
		}
	}
	if idx == -1 {
		return SafeUser{}, ErrInvalidCredentials
	}

	if err := s.store.ReplaceAll(ctx, us); err != nil {
		return SafeUser{}, err
	}

	return us[idx].Safe(), nil
}
