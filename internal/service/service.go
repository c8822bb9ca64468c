package service

import (
	"github.com/GlebRadaev/clientes/internal/handlers/customers"
	"github.com/GlebRadaev/clientes/internal/repo"
	customerservice "github.com/GlebRadaev/clientes/internal/service/customerservice"
)

type Services struct {
	CustomerService customers.Service
}

func New(repo *repo.Repositories) *Services {
	return &Services{
		CustomerService: customerservice.New(repo.CustomerRepo),
	}
}
