package router

import (
	"net/http"

	"vitamin-tracker/internal/adapters/storage"
	mem "vitamin-tracker/internal/adapters/storage/memory"
	"vitamin-tracker/internal/domain/intake"
	"vitamin-tracker/internal/domain/vitamins"
	"vitamin-tracker/internal/middleware"
	"vitamin-tracker/internal/platform/logger"
	"vitamin-tracker/internal/ports/auth"

	_ "vitamin-tracker/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil: solo X-User-ID

	// Opcional: si no viene, in-memory.
	Storage storage.Storage

	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestIDHeader)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(middleware.Recover)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	store := opts.Storage
	if store == nil {
		store = mem.New()
	}

	// Services por módulo
	vitaminsSvc := vitamins.NewService(store)
	intakeSvc := intake.NewService(store, vitaminsSvc)

	// Rutas por módulo; todo /api exige identidad antes de tocar el storage.
	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.RequireUser)

		vitamins.RegisterRoutes(api, vitaminsSvc)
		intake.RegisterRoutes(api, intakeSvc)
	})

	return r
}
