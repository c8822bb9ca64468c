package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/clientes/docs"
	customerhandlers "github.com/GlebRadaev/clientes/internal/handlers/customers"
	"github.com/GlebRadaev/clientes/internal/service"
	"github.com/GlebRadaev/clientes/pkg/auth"
	"github.com/GlebRadaev/clientes/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type CustomerHandler interface {
	CreateCustomer(w http.ResponseWriter, r *http.Request)
	GetCustomer(w http.ResponseWriter, r *http.Request)
	GetCustomersBySales(w http.ResponseWriter, r *http.Request)
	GetStatistics(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	CustomerHandler CustomerHandler
	Validator       auth.Validator
}

func New(s *service.Services, validator auth.Validator) *Handlers {
	return &Handlers{
		CustomerHandler: customerhandlers.New(s.CustomerService),
		Validator:       validator,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		logger.RequestLogger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/clientes", func(r chi.Router) {
		r.Use(auth.TokenMiddleware(h.Validator))
		r.Post("/", h.CustomerHandler.CreateCustomer)
		r.Get("/ventas", h.CustomerHandler.GetCustomersBySales)
		r.Get("/estadisticas", h.CustomerHandler.GetStatistics)
		r.Get("/{id}", h.CustomerHandler.GetCustomer)
	})

	return r
}
