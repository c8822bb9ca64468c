package customerrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/clientes/internal/domain"
	"github.com/GlebRadaev/clientes/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// Save inserts the customer and writes the generated id and the stored
// total back into it. Any id already set on the customer is ignored.
func (r *Repository) Save(ctx context.Context, customer *domain.Customer) error {
	query := `
        INSERT INTO cliente (nombre, estado, total)
        VALUES ($1, $2, $3)
        RETURNING id, total
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		var (
			id    int64
			total decimal.Decimal
		)
		err := r.db.QueryRow(ctx, query, customer.Name, customer.Status, customer.Total).Scan(&id, &total)
		if err != nil {
			zap.L().Error("can't save customer", zap.Error(err))
			return err
		}
		customer.ID = id
		customer.Total = total
		return nil
	})
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	query := `
        SELECT id, nombre, estado, total
        FROM cliente
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var customer domain.Customer
	err := row.Scan(&customer.ID, &customer.Name, &customer.Status, &customer.Total)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find customer", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return &customer, nil
}

// FindAll returns every customer. Row order is whatever the database yields.
func (r *Repository) FindAll(ctx context.Context) ([]domain.Customer, error) {
	query := `
        SELECT id, nombre, estado, total
        FROM cliente
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get customers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var customer domain.Customer
		err := rows.Scan(&customer.ID, &customer.Name, &customer.Status, &customer.Total)
		if err != nil {
			zap.L().Error("can't scan customer row", zap.Error(err))
			return nil, err
		}
		customers = append(customers, customer)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate customer rows", zap.Error(err))
		return nil, err
	}
	return customers, nil
}
