package users

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/auth", func(ar chi.Router) {
		ar.Post("/register", registerHandler(svc))
		ar.Post("/login", loginHandler(svc))
	})
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// registerHandler crea la cuenta.
//
//	@Summary  Registrar usuario
//	@Accept   json
//	@Produce  json
//	@Success  201 {object} map[string]string
//	@Failure  400 {object} map[string]string
//	@Failure  409 {object} map[string]string
//	@Router   /auth/register [post]
func registerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON."})
			return
		}

		err := svc.Register(r.Context(), req.Name, req.Email, req.Password)
		switch err {
		case nil:
			writeJSON(w, http.StatusCreated, map[string]string{"message": "Registration successful!"})
		case ErrInvalidInput:
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Name, email & password are required."})
		case ErrEmailTaken:
			writeJSON(w, http.StatusConflict, map[string]string{"error": "That email is already taken."})
		default:
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error."})
		}
	}
}

// loginHandler responde en texto plano en los caminos de error
// (comportamiento heredado del endpoint original).
//
//	@Summary  Login
//	@Accept   json
//	@Produce  json
//	@Success  200 {object} users.SafeUser
//	@Failure  400 {string} string
//	@Failure  401 {string} string
//	@Router   /auth/login [post]
func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Missing fields.", http.StatusBadRequest)
			return
		}

		su, err := svc.Login(r.Context(), req.Email, req.Password)
		switch err {
		case nil:
			writeJSON(w, http.StatusOK, su)
		case ErrInvalidInput:
			http.Error(w, "Missing fields.", http.StatusBadRequest)
		case ErrInvalidCredentials:
			http.Error(w, "Invalid email or password.", http.StatusUnauthorized)
		default:
			http.Error(w, "Internal server error.", http.StatusInternalServerError)
		}
	}
}

// writeJSON está duplicado a propósito en los handlers de cada módulo;
// todavía no amerita un helper compartido.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
