package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/nmaclean/liftbase/internal/http/importnames"
	"github.com/nmaclean/liftbase/internal/http/match"
)

func New(
	matchV1 *match.Handler,
	importV1 *importnames.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/match", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			matchV1.Routes(r)
		})

		r.Route("/import", importV1.Routes)
	})

	return router
}
