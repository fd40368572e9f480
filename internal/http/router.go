package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	accountingHandler "github.com/fieldwise/agribooks/internal/http/accounting"
	"github.com/fieldwise/agribooks/internal/http/auth"
	exportHandler "github.com/fieldwise/agribooks/internal/http/export"
)

func New(jwtSecret string, accountingV1 *accountingHandler.Handler, exportV1 *exportHandler.Handler) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type", auth.OrganizationHeader},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/accounting", func(r chi.Router) {
			r.Use(auth.Middleware(jwtSecret))
			r.Use(auth.RequireOrganization)
			r.Use(middleware.AllowContentType("application/json"))
			accountingV1.Routes(r)
			r.Route("/export", exportV1.Routes)
		})
	})

	return router
}
