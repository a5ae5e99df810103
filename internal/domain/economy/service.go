package economy

import (
	"context"
	"fmt"

	"pet-adoption-api/internal/domain/audit"
	"pet-adoption-api/internal/domain/pets"
	"pet-adoption-api/internal/domain/users"
)

// Action es un tipo de transacción del juego.
type Action string

const (
	ActionBuy    Action = "buy"
	ActionFeed   Action = "feed"
	ActionToy    Action = "toy"
	ActionTreat  Action = "treat"
	ActionAdopt  Action = "adopt"
	ActionReturn Action = "return"
)

// Service aplica las reglas del juego sobre usuarios y mascotas.
// Durante una transacción es dueño exclusivo de las copias en memoria;
// el Store es dueño de la copia durable. No hay exclusión mutua entre
// requests: dos transacciones concurrentes sobre la misma colección
// compiten y gana el último escritor (ver DESIGN.md).
type Service struct {
	users users.Store
	pets  pets.Store

	// dos logs independientes: el de acciones (log.json, texto libre)
	// y el de adopciones (logs.json, entradas estructuradas).
	actionLog   *audit.Log
	adoptionLog *audit.Log
}

func NewService(us users.Store, ps pets.Store, actionLog, adoptionLog *audit.Log) *Service {
	return &Service{
		users:       us,
		pets:        ps,
		actionLog:   actionLog,
		adoptionLog: adoptionLog,
	}
}

type ApplyInput struct {
	UserName string
	Action   Action
	Item     Item
	PetID    string
}

// Result describe el estado del usuario después de una transacción.
type Result struct {
	Message   string          `json:"message"`
	NewBudget int             `json:"newBudget"`
	Inventory users.Inventory `json:"inventory"`
}

// ApplyAction ejecuta exactamente una transacción del endpoint combinado.
// Orden de validación por rama: existencia → recursos → regla de dominio.
// Persiste usuarios, luego mascotas, y por último agrega al log de
// acciones solo si la acción produjo línea de log; la rama adopt de este
// endpoint NO registra nada (asimetría heredada, ver AdoptPet).
func (s *Service) ApplyAction(ctx context.Context, in ApplyInput) (Result, error) {
	if in.UserName == "" || in.Action == "" {
		return Result{}, ErrInvalidInput
	}

	us, err := s.users.LoadAll(ctx)
	if err != nil {
		return Result{}, err
	}
	user := findUser(us, in.UserName)
	if user == nil {
		return Result{}, ErrUserNotFound
	}

	ps, err := s.pets.LoadAll(ctx)
	if err != nil {
		return Result{}, err
	}
	var pet *pets.Pet
	if in.PetID != "" {
		pet = findPet(ps, in.PetID)
	}

	var message, logLine string

	if in.Action == ActionBuy {
		cost, err := PriceOf(in.Item)
		if err != nil {
			return Result{}, ErrUnknownItem
		}
		if user.Budget < cost {
			return Result{}, ErrInsufficientFunds
		}
		user.Budget -= cost
		addItem(&user.Inventory, in.Item)
		message = fmt.Sprintf("You bought 1 %s.", in.Item)
		logLine = fmt.Sprintf("%s bought 1 %s (−$%d)", user.Name, in.Item, cost)
	} else {
		// toda acción que no sea buy necesita una mascota existente
		if pet == nil {
			return Result{}, ErrPetNotFound
		}

		switch in.Action {
		case ActionFeed:
			if user.Inventory.Food <= 0 {
				return Result{}, ErrOutOfStock
			}
			user.Inventory.Food--
			pet.Hunger = max(0, pet.Hunger-3)
			pet.Happiness++
			message = fmt.Sprintf("%s has been fed.", pet.Name)
			logLine = fmt.Sprintf("%s fed %s", user.Name, pet.Name)

		case ActionToy:
			if user.Inventory.Toy <= 0 {
				return Result{}, ErrOutOfStock
			}
			user.Inventory.Toy--
			pet.Happiness += 2
			message = fmt.Sprintf("%s played happily.", pet.Name)
			logLine = fmt.Sprintf("%s played with %s", user.Name, pet.Name)

		case ActionTreat:
			if user.Inventory.Treat <= 0 {
				return Result{}, ErrOutOfStock
			}
			user.Inventory.Treat--
			pet.Hunger = max(0, pet.Hunger-1)
			pet.Happiness += 3
			message = fmt.Sprintf("%s was treated with love.", pet.Name)
			logLine = fmt.Sprintf("%s gave %s a treat", user.Name, pet.Name)

		case ActionReturn:
			if pet.AdoptedBy == nil || *pet.AdoptedBy != user.Name {
				return Result{}, ErrNotOwner
			}
			if user.Budget < ReturnFee {
				return Result{}, ErrInsufficientFunds
			}
			user.Budget -= ReturnFee
			pet.AdoptedBy = nil
			message = fmt.Sprintf("%s was returned.", pet.Name)
			logLine = fmt.Sprintf("%s returned %s (−$%d)", user.Name, pet.Name, ReturnFee)

		case ActionAdopt:
			// adoptar de nuevo la propia mascota es idempotente
			if pet.AdoptedBy != nil && *pet.AdoptedBy != user.Name {
				return Result{}, ErrAlreadyAdopted
			}
			name := user.Name
			pet.AdoptedBy = &name
			message = fmt.Sprintf("%s has been adopted!", pet.Name)
			// sin logLine: esta variante no registra adopciones

		default:
			return Result{}, ErrUnknownAction
		}
	}

	// persistencia: usuarios, mascotas y recién entonces el log; si algo
	// falla no se reporta éxito
	if err := s.users.ReplaceAll(ctx, us); err != nil {
		return Result{}, err
	}
	if err := s.pets.ReplaceAll(ctx, ps); err != nil {
		return Result{}, err
	}
	if logLine != "" {
		if err := s.actionLog.Append(ctx, audit.Entry{Message: logLine}); err != nil {
			return Result{}, err
		}
	}

	return Result{Message: message, NewBudget: user.Budget, Inventory: user.Inventory}, nil
}

// Buy es el camino del endpoint /shop: misma regla de compra pero solo
// persiste la colección de usuarios. Comportamiento heredado: /shop nunca
// tocó mascotas ni log; la línea de compra solo existe vía /actions.
func (s *Service) Buy(ctx context.Context, userName string, item Item) (Result, error) {
	if userName == "" || item == "" {
		return Result{}, ErrInvalidInput
	}

	// orden heredado: el ítem se valida antes de buscar al usuario
	cost, err := PriceOf(item)
	if err != nil {
		return Result{}, ErrUnknownItem
	}

	us, err := s.users.LoadAll(ctx)
	if err != nil {
		return Result{}, err
	}
	user := findUser(us, userName)
	if user == nil {
		return Result{}, ErrUserNotFound
	}

	if user.Budget < cost {
		return Result{}, ErrInsufficientFunds
	}
	user.Budget -= cost
	addItem(&user.Inventory, item)

	if err := s.users.ReplaceAll(ctx, us); err != nil {
		return Result{}, err
	}

	return Result{
		Message:   fmt.Sprintf("You bought 1 %s.", item),
		NewBudget: user.Budget,
		Inventory: user.Inventory,
	}, nil
}

// AdoptPet es el endpoint dedicado de adopción. A diferencia de la rama
// adopt de ApplyAction, este SÍ registra: agrega una entrada estructurada
// {userName, action, petId} al log de adopciones.
func (s *Service) AdoptPet(ctx context.Context, userName, petID string) (Result, error) {
	if userName == "" || petID == "" {
		return Result{}, ErrInvalidInput
	}

	us, err := s.users.LoadAll(ctx)
	if err != nil {
		return Result{}, err
	}
	user := findUser(us, userName)
	if user == nil {
		return Result{}, ErrUserNotFound
	}

	ps, err := s.pets.LoadAll(ctx)
	if err != nil {
		return Result{}, err
	}
	pet := findPet(ps, petID)
	if pet == nil {
		return Result{}, ErrPetNotFound
	}

	if pet.AdoptedBy != nil && *pet.AdoptedBy != userName {
		return Result{}, ErrAlreadyAdopted
	}
	name := user.Name
	pet.AdoptedBy = &name

	if err := s.users.ReplaceAll(ctx, us); err != nil {
		return Result{}, err
	}
	if err := s.pets.ReplaceAll(ctx, ps); err != nil {
		return Result{}, err
	}
	if err := s.adoptionLog.Append(ctx, audit.Entry{
		UserName: userName,
		Action:   string(ActionAdopt),
		PetID:    petID,
	}); err != nil {
		return Result{}, err
	}

	return Result{
		Message:   fmt.Sprintf("%s has been adopted!", pet.Name),
		NewBudget: user.Budget,
		Inventory: user.Inventory,
	}, nil
}

// findUser y findPet devuelven punteros a los elementos del slice para
// que la mutación quede reflejada en la colección que se persiste.
func findUser(us []users.User, name string) *users.User {
	for i := range us {
		if us[i].Name == name {
			return &us[i]
		}
	}
	return nil
}

func findPet(ps []pets.Pet, id string) *pets.Pet {
	for i := range ps {
		if ps[i].ID == id {
			return &ps[i]
		}
	}
	return nil
}

func addItem(inv *users.Inventory, item Item) {
	switch item {
	case ItemFood:
		inv.Food++
	case ItemToy:
		inv.Toy++
	case ItemTreat:
		inv.Treat++
	}
}
