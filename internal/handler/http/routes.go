package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const greeting = `Computer says, "Hello."`

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(middleware.Compress(5, "application/json"))

	router.Get("/", hello)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/weather/auth", h.login)
		r.Get("/weather/public/{kind}", h.byKind(readingEndpoints.listPublic))
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/weather/protected/me", h.me)
		r.Post("/weather/protected/accounts/password", h.rotatePassword)

		r.Get("/weather/protected/{kind}", h.byKind(readingEndpoints.listProtected))
		r.With(withGZipBody).Post("/weather/protected/{kind}", h.byKind(readingEndpoints.ingest))
		r.Get("/weather/protected/{kind}/{id}", h.byKind(readingEndpoints.get))
		r.Delete("/weather/protected/{kind}/{id}", h.byKind(readingEndpoints.remove))
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func hello(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(greeting))
}
