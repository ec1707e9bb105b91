package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"scopeforge/internal/service"
	"scopeforge/internal/transport/rest/handler"
	"scopeforge/internal/transport/rest/middleware"
	"scopeforge/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService    *service.AuthService
	SchemaService  *service.SchemaService
	SessionService *service.SessionService
	WSHub          *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	schemaHandler := handler.NewSchemaHandler(c.SchemaService)
	sessionHandler := handler.NewSessionHandler(c.SessionService, c.AuthService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions", sessionHandler.Start).Methods("POST", "OPTIONS")

	// WebSocket routes (public with token in query param)
	v1.HandleFunc("/ws/sessions/{id}/watch", wsHandler.WatchWS).Methods("GET")
	v1.HandleFunc("/ws/sessions/{id}", wsHandler.SessionWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Host routes (require host auth)
	hostRoutes := v1.NewRoute().Subrouter()
	hostRoutes.Use(authMW.RequireHost)

	hostRoutes.HandleFunc("/schemas", schemaHandler.Create).Methods("POST", "OPTIONS")
	hostRoutes.HandleFunc("/schemas", schemaHandler.List).Methods("GET", "OPTIONS")
	hostRoutes.HandleFunc("/schemas/{schemaId}", schemaHandler.Get).Methods("GET", "OPTIONS")
	hostRoutes.HandleFunc("/schemas/{schemaId}", schemaHandler.Update).Methods("PUT", "OPTIONS")
	hostRoutes.HandleFunc("/schemas/{schemaId}", schemaHandler.Delete).Methods("DELETE", "OPTIONS")

	// Participant routes (require session-scoped auth)
	sessionRoutes := v1.NewRoute().Subrouter()
	sessionRoutes.Use(authMW.RequireParticipant)

	sessionRoutes.HandleFunc("/sessions/{id}", sessionHandler.Get).Methods("GET", "OPTIONS")
	sessionRoutes.HandleFunc("/sessions/{id}/answers/{questionId}", sessionHandler.SaveAnswer).Methods("PUT", "OPTIONS")
	sessionRoutes.HandleFunc("/sessions/{id}/next", sessionHandler.Next).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/sessions/{id}/back", sessionHandler.Back).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/sessions/{id}/goto", sessionHandler.GoTo).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/sessions/{id}/reset", sessionHandler.Reset).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/sessions/{id}/export", sessionHandler.Export).Methods("GET", "OPTIONS")
	sessionRoutes.HandleFunc("/sessions/{id}/export/markdown", sessionHandler.ExportMarkdown).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
