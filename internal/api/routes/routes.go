package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	_ "github.com/hsm-gustavo/smart-pantry/docs"
	"github.com/hsm-gustavo/smart-pantry/internal/api/auth"
	"github.com/hsm-gustavo/smart-pantry/internal/api/health"
	"github.com/hsm-gustavo/smart-pantry/internal/api/inventory"
	"github.com/hsm-gustavo/smart-pantry/internal/api/recipes"
	"github.com/hsm-gustavo/smart-pantry/internal/api/user"
	"github.com/hsm-gustavo/smart-pantry/internal/config"
	"github.com/hsm-gustavo/smart-pantry/internal/db"
	"github.com/hsm-gustavo/smart-pantry/internal/logging"
	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRoutes wires services over store and returns the API router.
// archiver may be nil when object storage is not configured.
func SetupRoutes(cfg *config.Config, store *db.MemoryStore, archiver inventory.Archiver, logger logging.Logger) http.Handler {
	r := chi.NewRouter()

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300, // max time in seconds for OPTIONS preflight response cache
	})

	r.Use(corsMiddleware.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	r.Use(middleware.Timeout(2 * time.Minute))

	// init services & handlers
	userService := user.NewUserService(store)
	hasher := auth.NewHasher(cfg.Auth.HashIterations, cfg.Auth.HashMemoryKB, cfg.Auth.HashThreads)
	tokens := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authHandler := auth.NewAuthHandler(auth.NewAuthService(userService, hasher, tokens, logger))

	inventoryHandler := inventory.NewInventoryHandler(
		inventory.NewInventoryService(store, cfg.Inventory.ExpirySoonDays, archiver, logger),
	)

	var finder recipes.Finder
	if cfg.Recipes.SpoonacularAPIKey != "" {
		finder = recipes.NewSpoonacularClient(cfg.Recipes.SpoonacularAPIKey, logger)
	}
	recipeHandler := recipes.NewRecipeHandler(recipes.NewRecipeService(finder, logger))

	r.Get("/health", health.HealthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", health.PingHandler(cfg.Server.PingMessage))

		// public auth routes
		r.Post("/auth/signup", authHandler.Signup)
		r.Post("/auth/login", authHandler.Login)

		r.Get("/recipes/suggest", recipeHandler.Suggest)

		// protected routes
		r.Group(func(r chi.Router) {
			r.Use(authHandler.AuthMiddleware)
			r.Get("/auth/me", authHandler.Me)

			r.Route("/inventory", func(r chi.Router) {
				r.Get("/", inventoryHandler.List)
				r.Post("/", inventoryHandler.Create)
				r.Get("/stats", inventoryHandler.Stats)
				r.Get("/export", inventoryHandler.Export)
				r.Post("/export/archive", inventoryHandler.Archive)
				r.Put("/{id}", inventoryHandler.Update)
				r.Delete("/{id}", inventoryHandler.Delete)
			})
		})
	})

	// init swagger
	r.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/docs/index.html", http.StatusMovedPermanently)
	})
	r.Get("/docs/*", httpSwagger.WrapHandler)

	return r
}
