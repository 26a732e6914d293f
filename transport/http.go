package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	directoryapp "github.com/muhammadheryan/fashion-directory/application/directory"
	sessionapp "github.com/muhammadheryan/fashion-directory/application/session"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	SessionApp   sessionapp.SessionApp
	DirectoryApp directoryapp.DirectoryApp
}

func NewTransport(sessionApp sessionapp.SessionApp, directoryApp directoryapp.DirectoryApp, internalAPIKey string) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		SessionApp:   sessionApp,
		DirectoryApp: directoryApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// session
	mux.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)
	mux.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost)
	mux.HandleFunc("/session", rh.GetSession).Methods(http.MethodGet)
	mux.HandleFunc("/session/error", rh.ClearSessionError).Methods(http.MethodDelete)
	mux.HandleFunc("/forgot-password", rh.ForgotPassword).Methods(http.MethodPost)
	mux.HandleFunc("/reset-password", rh.ResetPassword).Methods(http.MethodPost)

	// directory
	mux.HandleFunc("/specialties", rh.ListSpecialties).Methods(http.MethodGet)
	mux.HandleFunc("/designers", rh.ListDesigners).Methods(http.MethodGet)
	mux.HandleFunc("/designers", rh.CreateDesigner).Methods(http.MethodPost)
	mux.HandleFunc("/designers/filters", rh.GetSearchFilters).Methods(http.MethodGet)
	mux.HandleFunc("/designers/filters", rh.SetSearchFilters).Methods(http.MethodPut)
	mux.HandleFunc("/designers/{id:[0-9]+}", rh.GetDesigner).Methods(http.MethodGet)
	mux.HandleFunc("/designers/{id:[0-9]+}", rh.UpdateDesigner).Methods(http.MethodPut)
	mux.HandleFunc("/designers/{id:[0-9]+}", rh.DeleteDesigner).Methods(http.MethodDelete)

	// internal routes, called by the workers
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.HandleFunc("/password-reset/{id}/expire", rh.ExpireResetToken).Methods(http.MethodPost)
	internal.Use(InternalMiddleware(internalAPIKey))

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(sessionApp))

	return mux
}
