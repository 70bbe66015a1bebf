package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/ristorante-africa/ristorante/handlers"
	"github.com/ristorante-africa/ristorante/middlewares"
)

type Server struct {
	Router *mux.Router
	server *http.Server
}

const (
	readTimeout       = 5 * time.Minute
	readHeaderTimeout = 30 * time.Second
	writeTimeout      = 5 * time.Minute
)

func SetupRoutes() *Server {
	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, `{"alive": true}`)
	}).Methods("GET")

	// public surface: menu display, availability and the reservation form
	router.HandleFunc("/api/menu", handlers.ListMenu).Methods("GET")
	router.HandleFunc("/api/availability", handlers.GetAvailability).Methods("GET")
	router.HandleFunc("/api/reservations", handlers.CreateReservation).Methods("POST")
	router.HandleFunc("/api/admin/auth", handlers.AdminLogin).Methods("POST")

	// cron-invoked housekeeping, kept unauthenticated like the health check
	router.HandleFunc("/api/reservations/cleanup", handlers.CleanupReservations).Methods("GET")

	// admin only
	admin := router.PathPrefix("/api").Subrouter()
	admin.Use(middlewares.AdminMiddleware)

	admin.HandleFunc("/admin/auth", handlers.VerifyAdmin).Methods("GET")
	admin.HandleFunc("/reservations", handlers.ListReservations).Methods("GET")
	admin.HandleFunc("/reservations", handlers.UpdateReservation).Methods("PATCH")
	admin.HandleFunc("/menu", handlers.CreateMenuItem).Methods("POST")
	admin.HandleFunc("/menu/sync", handlers.SyncMenu).Methods("POST")
	admin.HandleFunc("/menu/clear", handlers.ClearMenu).Methods("POST")
	admin.HandleFunc("/menu/{id}", handlers.UpdateMenuItem).Methods("PATCH")
	admin.HandleFunc("/menu/{id}", handlers.DeleteMenuItem).Methods("DELETE")

	return &Server{
		Router: router,
	}
}

func (svr *Server) Run(port string) error {
	svr.server = &http.Server{
		Addr:              port,
		Handler:           svr.Router,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}
	return svr.server.ListenAndServe()
}

func (svr *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return svr.server.Shutdown(ctx)
}
