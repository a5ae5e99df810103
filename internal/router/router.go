package router

import (
	"context"
	"database/sql"
	"net/http"
	"path/filepath"

	"pet-adoption-api/internal/adapters/storage/jsonfile"
	"pet-adoption-api/internal/adapters/storage/postgres"
	"pet-adoption-api/internal/domain/audit"
	"pet-adoption-api/internal/domain/economy"
	"pet-adoption-api/internal/domain/pets"
	"pet-adoption-api/internal/domain/users"
	"pet-adoption-api/internal/middleware"
	"pet-adoption-api/internal/platform/logger"

	_ "pet-adoption-api/docs" // registro del spec swagger

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// DataDir es el directorio de los archivos JSON (backend por defecto).
	DataDir string

	// Si DSN viene seteado se intenta Postgres; si la conexión falla se
	// sigue con archivos. DB permite inyectar una conexión ya abierta
	// (tests).
	DSN string
	DB  *sql.DB

	Logger logger.Logger
}

func New(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	if opts.Logger != nil {
		r.Use(middleware.RequestLogger(opts.Logger))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	var (
		userStore        users.Store
		petStore         pets.Store
		actionLogStore   audit.Store
		adoptionLogStore audit.Store
	)

	db := opts.DB
	if db == nil && opts.DSN != "" {
		opened, err := postgres.Open(opts.DSN)
		if err == nil {
			db = opened
		} else if opts.Logger != nil {
			opts.Logger.Warn("postgres unavailable, falling back to json files", map[string]any{"error": err.Error()})
		}
	}

	if db != nil {
		if err := postgres.EnsureSchema(context.Background(), db,
			"collection_users", "collection_pets", "collection_action_log", "collection_adoption_log",
		); err != nil && opts.Logger != nil {
			opts.Logger.Error("ensure schema", map[string]any{"error": err.Error()})
		}
		userStore = postgres.NewCollection[users.User](db, "collection_users")
		petStore = postgres.NewCollection[pets.Pet](db, "collection_pets")
		actionLogStore = postgres.NewCollection[audit.Entry](db, "collection_action_log")
		adoptionLogStore = postgres.NewCollection[audit.Entry](db, "collection_adoption_log")
	} else {
		dataDir := opts.DataDir
		if dataDir == "" {
			dataDir = "data"
		}
		userStore = jsonfile.NewCollection[users.User](filepath.Join(dataDir, "users.json"))
		petStore = jsonfile.NewCollection[pets.Pet](filepath.Join(dataDir, "pets.json"))
		// dos logs independientes, herencia de los dos archivos originales
		actionLogStore = jsonfile.NewCollection[audit.Entry](filepath.Join(dataDir, "log.json"))
		adoptionLogStore = jsonfile.NewCollection[audit.Entry](filepath.Join(dataDir, "logs.json"))
	}

	usersSvc := users.NewService(userStore)
	petsSvc := pets.NewService(petStore)
	economySvc := economy.NewService(
		userStore,
		petStore,
		audit.NewLog(actionLogStore),
		audit.NewLog(adoptionLogStore),
	)

	users.RegisterRoutes(r, usersSvc)
	pets.RegisterRoutes(r, petsSvc)
	economy.RegisterRoutes(r, economySvc)

	return r
}
