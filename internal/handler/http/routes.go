package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Post("/api/qr", h.renderQR)
		r.Post("/api/rooms", h.registerRoom)
	})

	// room routes, authorized with a token signed by the room key
	router.Route("/api/rooms/{roomID}/collections/{collection}", func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/", h.pull)
		r.With(h.pushHashing).Post("/", h.push)
		r.Get("/export", h.export)
		r.Post("/import", h.importPart)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
