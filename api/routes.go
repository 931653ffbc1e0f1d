package api

import (
	"github.com/gorilla/mux"

	"github.com/jrocha/techbook/internal/auth"
	"github.com/jrocha/techbook/internal/config"
	"github.com/jrocha/techbook/internal/db"
	"github.com/jrocha/techbook/internal/repository/sqlite"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, db *db.DB) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// Repository
	repo := sqlite.New(db, logger)

	// Create handlers
	systemHandler := &SystemHandler{}
	authHandler := NewAuthHandler(repo, auth.NewBcryptHasher(), cfg.JWTSecret, cfg.TokenDuration)
	techniciansHandler := NewTechniciansHandler(repo, auth.NewStaticAdminGate(cfg.AdminPassword))
	feedbackHandler := NewFeedbackHandler(repo)

	// Open endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")
	r.HandleFunc("/v1/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/v1/auth/signin", authHandler.Signin).Methods("POST")

	// API v1 Protected routes: every technician and feedback operation
	// sits behind the login gate.
	apiV1 := r.PathPrefix("/v1").Subrouter()
	apiV1.Use(SessionMiddlewareWithSecret(cfg.JWTSecret))

	// Auth endpoints
	authV1 := apiV1.PathPrefix("/auth").Subrouter()
	authV1.HandleFunc("/signout", authHandler.Signout).Methods("POST")

	// Technician endpoints
	apiV1.HandleFunc("/technicians", techniciansHandler.CreateTechnician).Methods("POST")
	apiV1.HandleFunc("/technicians", techniciansHandler.ListTechnicians).Methods("GET")
	apiV1.HandleFunc("/technicians/{techID}", techniciansHandler.GetTechnician).Methods("GET")
	apiV1.HandleFunc("/technicians/{techID}/photo", techniciansHandler.GetPhoto).Methods("GET")
	apiV1.HandleFunc("/technicians/{techID}/certificate", techniciansHandler.GetCertificate).Methods("GET")
	apiV1.HandleFunc("/technicians/{techID}", techniciansHandler.UpdateTechnician).Methods("PUT")
	apiV1.HandleFunc("/technicians/{id:[0-9]+}", techniciansHandler.DeleteTechnician).Methods("DELETE")

	// Feedback endpoints
	apiV1.HandleFunc("/feedback", feedbackHandler.SubmitFeedback).Methods("POST")

	return r
}
