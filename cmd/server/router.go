package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/yasirshahid/contactManager-server/internal/api"
	apiMiddleware "github.com/yasirshahid/contactManager-server/internal/api/middleware"
	"github.com/yasirshahid/contactManager-server/internal/platform/logger"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(app.withBaseLogger)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(middleware.Recoverer)

	authHandler := api.NewAuthHandler(app.userService, app.jwtService, app.logger)
	contactHandler := api.NewContactHandler(app.contactService, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		r.Post("/users", authHandler.Register)
		r.Post("/auth", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/auth", authHandler.Me)

			r.Get("/contacts", contactHandler.ListContacts)
			r.Post("/contacts", contactHandler.CreateContact)
			r.Put("/contacts/{id}", contactHandler.UpdateContact)
			r.Delete("/contacts/{id}", contactHandler.DeleteContact)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", slog.String("error", err.Error()))
		}
	})

	return r
}

// withBaseLogger seeds the request context with the application logger,
// tagged with chi's request ID.
func (app *application) withBaseLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l := app.logger.With(slog.String("request_id", middleware.GetReqID(r.Context())))
		next.ServeHTTP(w, r.WithContext(logger.WithLogger(r.Context(), l)))
	})
}
