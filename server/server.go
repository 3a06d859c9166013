// Package server wires the HTTP surface: routes, auth middleware and CORS.
package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/hudsonrene96-debug/todo-list-backend/auth"
	"github.com/hudsonrene96-debug/todo-list-backend/confs"
	"github.com/hudsonrene96-debug/todo-list-backend/handlers"
	"github.com/hudsonrene96-debug/todo-list-backend/storage"
)

type Server struct {
	cfg     confs.Config
	handler http.Handler
}

func New(cfg confs.Config, users storage.UserRepository, tasks storage.TaskRepository, tokens *auth.TokenManager) *Server {
	authHandler := handlers.NewAuthHandler(users, tokens)
	taskHandler := handlers.NewTaskHandler(tasks)

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK"}`))
	}).Methods("GET")

	// public auth endpoints
	api.HandleFunc("/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/login", authHandler.Login).Methods("POST")

	// protected routes
	private := api.NewRoute().Subrouter()
	private.Use(handlers.RequireAuth(tokens))
	private.HandleFunc("/tasks", taskHandler.List).Methods("GET")
	private.HandleFunc("/tasks", taskHandler.Create).Methods("POST")
	private.HandleFunc("/tasks/{id}", taskHandler.Update).Methods("PUT", "PATCH")
	private.HandleFunc("/tasks/{id}", taskHandler.Delete).Methods("DELETE")

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	return &Server{cfg: cfg, handler: c.Handler(r)}
}

// Handler exposes the wired routes; tests drive requests through it.
func (s *Server) Handler() http.Handler { return s.handler }

func (s *Server) Start() error {
	return http.ListenAndServe(":"+s.cfg.Port, s.handler)
}
