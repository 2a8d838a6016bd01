package handler

import (
	"net/http"

	"github.com/Dan9191/thingful-users/internal/middleware"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// NewRouter mounts the users API
func NewRouter(h *Handler, logger *logrus.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Recoverer(logger))

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/users", h.Register).Methods(http.MethodPost)
	api.HandleFunc("/users/{id:[0-9]+}", h.GetUser).Methods(http.MethodGet)

	return r
}
