package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"talento/internal/domain/employee"
	"talento/internal/domain/identity"
	"talento/internal/domain/params"
	"talento/internal/domain/profile"
	"talento/internal/domain/reports"
	"talento/internal/platform/config"
	"talento/internal/platform/db"
	"talento/internal/platform/db/seed"
	"talento/internal/platform/metrics"
	authhandler "talento/internal/transport/http/handlers/auth"
	employeehandler "talento/internal/transport/http/handlers/employees"
	paramshandler "talento/internal/transport/http/handlers/params"
	profilehandler "talento/internal/transport/http/handlers/profile"
	"talento/internal/transport/http/middleware"
)

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}
	if cfg.RunSeed {
		if err := seed.Run(ctx, pool, cfg); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	identityService := identity.NewService(
		identity.NewStore(pool),
		identity.NewChallengeStore(cfg.ChallengeTTL),
		cfg.PasswordSalt,
		cfg.JWTSecret,
		cfg.SessionTTL,
		cfg.EmailDomain,
	)
	employeeService := employee.NewService(employee.NewStore(pool), identityService)
	profileService := profile.NewService(profile.NewStore(pool))
	reportService := reports.NewService(employeeService, profileService)
	paramStore := params.NewStore(pool)

	collector := metrics.New()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(middleware.Recoverer)
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		authHandler := authhandler.NewHandler(identityService)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(20, time.Minute))
			r.Post("/auth/challenge", authHandler.HandleNewChallenge)
			r.Post("/auth/login", authHandler.HandleLogin)
		})
		r.Post("/auth/logout", authHandler.HandleLogout)

		paramHandler := paramshandler.NewHandler(paramStore)
		r.Get("/params/{kind}", paramHandler.HandleList)

		// staff-side record management
		employeeHandler := employeehandler.NewHandler(employeeService, reportService)
		profileHandler := profilehandler.NewHandler(profileService, employeeService)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(identity.RoleAdmin, identity.RoleSupervisor))
			r.Get("/employees", employeeHandler.HandleList)
			r.Get("/employees/counts", employeeHandler.HandleCounts)
			r.Get("/employees/{nationalID}", employeeHandler.HandleGet)
			r.Get("/employees/{nationalID}/profile", profileHandler.HandleReviewOverview)
			r.Get("/employees/{nationalID}/completion", profileHandler.HandleReviewCompletion)
			r.Get("/employees/{nationalID}/form", employeeHandler.HandleForm)
		})
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(identity.RoleAdmin))
			r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(collector.Snapshot())
			})
			r.Post("/employees", employeeHandler.HandleRegister)
			r.Patch("/employees/{nationalID}", employeeHandler.HandleUpdate)
			r.Post("/employees/{nationalID}/discharge", employeeHandler.HandleDischarge)
			r.Post("/employees/{nationalID}/reactivate", employeeHandler.HandleReactivate)
		})

		// self-service profile completion
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuthenticated)
			r.Get("/profile", profileHandler.HandleOverview)
			r.Get("/profile/completion", profileHandler.HandleCompletion)
			r.Put("/profile/sections/{kind}", profileHandler.HandleSaveSection)
			r.Delete("/profile/sections/{kind}/{rowID}", profileHandler.HandleDeleteRow)
		})
	})

	log.Printf("talento server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
