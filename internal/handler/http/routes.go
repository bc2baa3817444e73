package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init assembles the router. legacyProducts, when non-nil, is mounted on the
// envelope endpoint inside the authenticated group so both protocols sit
// behind the same gate.
func (h *Handler) Init(legacyProducts http.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/health", h.health)
	})

	// every business route sits behind the auth gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/products", func(r chi.Router) {
			r.Get("/", h.getAllProducts)
			r.Post("/", h.addProduct)
			r.Get("/{id}", h.getProduct)
			r.Put("/{id}", h.updateProduct)
			r.Delete("/{id}", h.deleteProduct)
		})

		r.Route("/api/orders", func(r chi.Router) {
			r.Get("/", h.getAllOrders)
			r.Post("/", h.addOrder)
			r.Get("/{id}", h.getOrder)
			r.Put("/{id}", h.updateOrder)
			r.Delete("/{id}", h.deleteOrder)
		})

		r.Route("/api/users", func(r chi.Router) {
			r.Get("/", h.getAllUsers)
			r.Post("/", h.addUser)
			r.Get("/{id}", h.getUser)
			r.Put("/{id}", h.updateUser)
			r.Delete("/{id}", h.deleteUser)
		})

		if legacyProducts != nil {
			r.Method(http.MethodPost, "/ProductService.asmx", legacyProducts)
		}
	})

	return router
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
