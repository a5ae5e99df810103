package economy

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/actions", actionsHandler(svc))
	r.Post("/shop", shopHandler(svc))
	r.Post("/adopt", adoptHandler(svc))
}

type actionRequest struct {
	UserName string `json:"userName"`
	PetID    string `json:"petId"`
	Action   string `json:"action"`
	Item     string `json:"item"`
}

type shopRequest struct {
	UserName string `json:"userName"`
	Item     string `json:"item"`
}

type adoptRequest struct {
	UserName string `json:"userName"`
	PetID    string `json:"petId"`
}

// actionsHandler es el endpoint combinado: buy, feed, toy, treat,
// adopt (sin log) y return sobre un usuario y, salvo buy, una mascota.
//
//	@Summary  Ejecutar acción de juego
//	@Accept   json
//	@Produce  json
//	@Success  200 {object} economy.Result
//	@Failure  400 {object} map[string]string
//	@Failure  403 {object} map[string]string
//	@Failure  404 {object} map[string]string
//	@Router   /actions [post]
func actionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req actionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, "Missing fields.", http.StatusBadRequest)
			return
		}

		res, err := svc.ApplyAction(r.Context(), ApplyInput{
			UserName: req.UserName,
			Action:   Action(req.Action),
			Item:     Item(req.Item),
			PetID:    req.PetID,
		})
		if err != nil {
			status, msg := actionError(Action(req.Action), err)
			jsonError(w, msg, status)
			return
		}

		writeJSON(w, http.StatusOK, res)
	}
}

// actionError traduce el error tipado del engine al status y mensaje
// exacto heredado (el texto de "sin stock" depende de la acción que
// lo provocó).
func actionError(action Action, err error) (int, string) {
	switch err {
	case ErrInvalidInput:
		return http.StatusBadRequest, "Missing fields."
	case ErrUserNotFound:
		return http.StatusNotFound, "User not found."
	case ErrPetNotFound:
		return http.StatusNotFound, "Pet not found."
	case ErrUnknownItem:
		return http.StatusBadRequest, "Invalid item."
	case ErrUnknownAction:
		return http.StatusBadRequest, "Unknown action."
	case ErrAlreadyAdopted:
		return http.StatusForbidden, "Already adopted."
	case ErrNotOwner:
		return http.StatusForbidden, "You didn't adopt this pet."
	case ErrInsufficientFunds:
		if action == ActionReturn {
			return http.StatusForbidden, "Not enough money to return."
		}
		return http.StatusForbidden, "Insufficient budget."
	case ErrOutOfStock:
		switch action {
		case ActionFeed:
			return http.StatusForbidden, "No food."
		case ActionToy:
			return http.StatusForbidden, "No toys."
		default:
			return http.StatusForbidden, "No treats."
		}
	default:
		return http.StatusInternalServerError, "Internal server error."
	}
}

// shopHandler compra un consumible. Conserva la mezcla heredada de
// errores en texto plano salvo el 403 de presupuesto, que va en JSON.
//
//	@Summary  Comprar ítem
//	@Accept   json
//	@Produce  json
//	@Success  200 {object} economy.Result
//	@Failure  400 {string} string
//	@Failure  403 {object} map[string]string
//	@Failure  404 {string} string
//	@Router   /shop [post]
func shopHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req shopRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Missing userName or item.", http.StatusBadRequest)
			return
		}

		res, err := svc.Buy(r.Context(), req.UserName, Item(req.Item))
		switch err {
		case nil:
			writeJSON(w, http.StatusOK, res)
		case ErrInvalidInput:
			http.Error(w, "Missing userName or item.", http.StatusBadRequest)
		case ErrUnknownItem:
			http.Error(w, "Invalid item type.", http.StatusBadRequest)
		case ErrUserNotFound:
			http.Error(w, "User not found.", http.StatusNotFound)
		case ErrInsufficientFunds:
			jsonError(w, "Insufficient budget", http.StatusForbidden)
		default:
			http.Error(w, "Server error.", http.StatusInternalServerError)
		}
	}
}

// adoptHandler es el endpoint dedicado de adopción (la variante que
// registra en el log de adopciones).
//
//	@Summary  Adoptar mascota
//	@Accept   json
//	@Produce  json
//	@Success  200 {object} economy.Result
//	@Failure  400 {object} map[string]string
//	@Failure  403 {object} map[string]string
//	@Failure  404 {object} map[string]string
//	@Router   /adopt [post]
func adoptHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req adoptRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, "Missing userName or petId.", http.StatusBadRequest)
			return
		}

		res, err := svc.AdoptPet(r.Context(), req.UserName, req.PetID)
		switch err {
		case nil:
			writeJSON(w, http.StatusOK, res)
		case ErrInvalidInput:
			jsonError(w, "Missing userName or petId.", http.StatusBadRequest)
		case ErrUserNotFound:
			jsonError(w, "User not found.", http.StatusNotFound)
		case ErrPetNotFound:
			jsonError(w, "Pet not found.", http.StatusNotFound)
		case ErrAlreadyAdopted:
			jsonError(w, "Pet already adopted.", http.StatusForbidden)
		default:
			jsonError(w, "Internal server error.", http.StatusInternalServerError)
		}
	}
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeJSON duplicado a propósito por módulo (misma nota que en users).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
