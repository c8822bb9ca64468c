package customers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/clientes/internal/domain"
	"github.com/GlebRadaev/clientes/internal/dto"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	customerservice "github.com/GlebRadaev/clientes/internal/service/customerservice"
	"github.com/GlebRadaev/clientes/pkg/utils"
)

type Service interface {
	CreateCustomer(ctx context.Context, name, status string, total decimal.Decimal) (*domain.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*domain.Customer, error)
	GetCustomersBySales(ctx context.Context, threshold decimal.Decimal) ([]domain.Customer, error)
	GetStatistics(ctx context.Context) (*domain.Statistics, error)
}

type CustomerHandler struct {
	customerService Service
}

func New(customerService Service) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

// CreateCustomer godoc
//
//	@Summary		Create a customer
//	@Description	Store a new customer. Any id in the body is ignored, the store assigns one.
//	@Tags			Customers
//	@Accept			json
//	@Produce		json
//	@Param			token	query		string							true	"Access token"
//	@Param			request	body		dto.CreateCustomerRequestDTO	true	"Customer"
//	@Success		201		{object}	dto.CustomerResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/clientes/ [post]
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCustomerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	customer, err := h.customerService.CreateCustomer(r.Context(), req.Nombre, req.Estado, req.Total)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toResponse(customer))
}

// GetCustomer godoc
//
//	@Summary		Get a customer
//	@Description	Return every field of the customer with the given id
//	@Tags			Customers
//	@Produce		json
//	@Param			id		path		int		true	"Customer id"
//	@Param			token	query		string	true	"Access token"
//	@Success		200		{object}	dto.CustomerResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid customer id"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		404		{object}	utils.Response	"Customer not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/clientes/{id} [get]
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid customer id")
		return
	}

	customer, err := h.customerService.GetCustomer(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, customerservice.ErrCustomerNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Customer not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(customer))
}

// GetCustomersBySales godoc
//
//	@Summary		List customers by sales
//	@Description	Return the customers whose total is strictly greater than the given amount. Order is unspecified.
//	@Tags			Customers
//	@Produce		json
//	@Param			ventas	query		number	true	"Sales threshold"
//	@Param			token	query		string	true	"Access token"
//	@Success		200		{array}		dto.CustomerResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid sales threshold"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/clientes/ventas [get]
func (h *CustomerHandler) GetCustomersBySales(w http.ResponseWriter, r *http.Request) {
	threshold, err := decimal.NewFromString(r.URL.Query().Get("ventas"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid sales threshold")
		return
	}

	customers, err := h.customerService.GetCustomersBySales(r.Context(), threshold)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.CustomerResponseDTO, 0, len(customers))
	for i := range customers {
		response = append(response, toResponse(&customers[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetStatistics godoc
//
//	@Summary		Sales statistics
//	@Description	Total sales, average sales of active customers and number of inactive customers with sales
//	@Tags			Customers
//	@Produce		json
//	@Param			token	query		string	true	"Access token"
//	@Success		200		{object}	dto.StatisticsResponseDTO
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		422		{object}	utils.Response	"No active customers to average"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/clientes/estadisticas [get]
func (h *CustomerHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.customerService.GetStatistics(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, customerservice.ErrNoActiveCustomers):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.StatisticsResponseDTO{
		TotalVentas:           stats.TotalSales,
		PromedioVentasActivos: stats.AverageActiveSales,
		CantidadInactivos:     stats.InactivePositiveCount,
	})
}

func toResponse(c *domain.Customer) dto.CustomerResponseDTO {
	return dto.CustomerResponseDTO{
		ID:     c.ID,
		Nombre: c.Name,
		Estado: c.Status,
		Total:  c.Total,
	}
}
