package pets

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc))
		pr.Post("/", createPetHandler(svc))
		// contrato heredado: el id llega en el body, no en la URL
		pr.Delete("/", deletePetHandler(svc))
	})
}

type createPetRequest struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Breed       string   `json:"breed"`
	Age         *float64 `json:"age"`
	Description string   `json:"description"`
}

type deletePetRequest struct {
	PetID string `json:"petId"`
}

// listPetsHandler lista mascotas, con filtros opcionales por query.
//
//	@Summary  Listar mascotas
//	@Param    type      query string false "filtro por tipo (case-insensitive)"
//	@Param    adoptedBy query string false "filtro por adoptante (exacto)"
//	@Produce  json
//	@Success  200 {array} pets.Pet
//	@Router   /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		ps, err := svc.List(r.Context(), q.Get("type"), q.Get("adoptedBy"))
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error."})
			return
		}

		writeJSON(w, http.StatusOK, ps)
	}
}

// createPetHandler ingresa una mascota nueva.
//
//	@Summary  Ingresar mascota
//	@Accept   json
//	@Produce  json
//	@Success  201 {object} pets.Pet
//	@Failure  400 {object} map[string]string
//	@Router   /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing or invalid fields."})
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Name:        req.Name,
			Type:        req.Type,
			Breed:       req.Breed,
			Age:         req.Age,
			Description: req.Description,
		})
		switch err {
		case nil:
			writeJSON(w, http.StatusCreated, p)
		case ErrInvalidInput:
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing or invalid fields."})
		default:
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error."})
		}
	}
}

// deletePetHandler elimina por id (en el body).
//
//	@Summary  Eliminar mascota
//	@Accept   json
//	@Success  204
//	@Failure  400 {object} map[string]string
//	@Failure  404 {object} map[string]string
//	@Router   /pets [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req deletePetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PetID == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "petId is required."})
			return
		}

		switch err := svc.Delete(r.Context(), req.PetID); err {
		case nil:
			w.WriteHeader(http.StatusNoContent)
		case ErrNotFound:
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Pet not found."})
		default:
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error."})
		}
	}
}

// writeJSON duplicado a propósito por módulo (misma nota que en users).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
