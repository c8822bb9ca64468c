package repo

import (
	"github.com/GlebRadaev/clientes/internal/pg"
	customerrepo "github.com/GlebRadaev/clientes/internal/repo/customer-repo"
	"github.com/GlebRadaev/clientes/internal/service/customerservice"
)

type Repositories struct {
	CustomerRepo customerservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		CustomerRepo: customerrepo.New(conn, txManager),
	}
}
