// main is the entry point of the School API application.
//
// STARTUP SEQUENCE:
//  1. Load configuration from a YAML file
//  2. Initialise the logger
//  3. Build the in-memory school
//  4. Register all HTTP routes
//  5. Start the HTTP server in a separate goroutine
//  6. Block the main goroutine until an OS signal (Ctrl+C / kill) arrives
//  7. Gracefully shut down: finish in-flight requests, then exit
//
// RUNNING THE SERVER:
//
//	go run ./cmd/school-api --config=config/local.yaml
//
// or (with the environment variable):
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/school-api
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aanand-mishra/school-api/internal/config"
	"github.com/aanand-mishra/school-api/internal/http/handlers/classroom"
	"github.com/aanand-mishra/school-api/internal/http/handlers/report"
	"github.com/aanand-mishra/school-api/internal/http/handlers/student"
	"github.com/aanand-mishra/school-api/internal/storage"
	"github.com/aanand-mishra/school-api/internal/storage/memory"
)

func main() {
	// ── 1. Load Config ────────────────────────────────────────────────────
	cfg := config.MustLoad()

	// ── 2. Initialise Logger ──────────────────────────────────────────────
	// Handlers log through the slog package-level functions, so the
	// configured logger becomes the default.
	log := setupLogger(cfg.Env)
	slog.SetDefault(log)

	log.Info("starting school-api",
		slog.String("env", cfg.Env),
		slog.String("version", "1.0.0"),
	)

	// ── 3. Initialise Storage ─────────────────────────────────────────────
	// One school per process, built here and handed to every handler.
	store, err := memory.New(cfg)
	if err != nil {
		log.Error("failed to initialise storage",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("storage initialised",
		slog.Int("school_id", cfg.School.ID),
		slog.String("school_name", cfg.School.Name),
		slog.String("id_strategy", cfg.IDStrategy))

	// ── 4. Register HTTP Routes ───────────────────────────────────────────
	server := &http.Server{
		Addr:    cfg.HTTPServer.Addr,
		Handler: newRouter(store),

		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ── 5. Start Server in a Goroutine ────────────────────────────────────
	go func() {
		log.Info("server started", slog.String("address", cfg.HTTPServer.Addr))

		if err := server.ListenAndServe(); err != nil &&
			!errors.Is(err, http.ErrServerClosed) {
			log.Error("server encountered an error",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// ── 6. Wait for Shutdown Signal ───────────────────────────────────────
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	log.Info("shutdown signal received, stopping server...")

	// ── 7. Graceful Shutdown ──────────────────────────────────────────────
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server gracefully",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

// newRouter maps every route onto its handler.
//
// Route table:
//
//	POST   /api/students                                   → create a student
//	GET    /api/students                                   → list students
//	GET    /api/students/name/{name}                       → find a student by name
//	GET    /api/students/class/{className}                 → list a class
//	PUT    /api/students/{id}                              → rename / move a student
//	DELETE /api/students/{id}                              → delete a student
//	POST   /api/students/import                            → import an .xlsx roster
//	GET    /api/students/export                            → export an .xlsx roster
//	POST   /api/classrooms                                 → create a classroom
//	GET    /api/classrooms                                 → list classrooms
//	GET    /api/classrooms/{roomName}                      → find a classroom by name
//	PUT    /api/classrooms/{id}                            → update a classroom
//	DELETE /api/classrooms/{id}                            → delete a classroom
//	GET    /api/classroom/fit                              → can a class fit a room
//	GET    /api/school/report                              → school-wide figures
//	GET    /api/school/classes/{className}/female-percentage
func newRouter(store storage.Storage) *http.ServeMux {
	router := http.NewServeMux()

	router.HandleFunc("POST /api/students", student.New(store))
	router.HandleFunc("GET /api/students", student.GetList(store))
	router.HandleFunc("GET /api/students/name/{name}", student.GetByName(store))
	router.HandleFunc("GET /api/students/class/{className}", student.GetByClass(store))
	router.HandleFunc("PUT /api/students/{id}", student.Update(store))
	router.HandleFunc("DELETE /api/students/{id}", student.Delete(store))
	router.HandleFunc("POST /api/students/import", student.Import(store))
	router.HandleFunc("GET /api/students/export", student.Export(store))

	router.HandleFunc("POST /api/classrooms", classroom.New(store))
	router.HandleFunc("GET /api/classrooms", classroom.GetList(store))
	router.HandleFunc("GET /api/classrooms/{roomName}", classroom.GetByName(store))
	router.HandleFunc("PUT /api/classrooms/{id}", classroom.Update(store))
	router.HandleFunc("DELETE /api/classrooms/{id}", classroom.Delete(store))
	router.HandleFunc("GET /api/classroom/fit", classroom.Fit(store))

	router.HandleFunc("GET /api/school/report", report.Get(store))
	router.HandleFunc("GET /api/school/classes/{className}/female-percentage", report.FemalePercentage(store))

	return router
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
// Development (dev): human-readable text output at DEBUG level.
// Production (prod): machine-readable JSON output at INFO level.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	}
}
