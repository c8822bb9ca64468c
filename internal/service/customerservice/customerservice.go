package customerservice

import (
	"context"
	"errors"

	"github.com/GlebRadaev/clientes/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repo interface {
	Save(ctx context.Context, customer *domain.Customer) error
	FindByID(ctx context.Context, id int64) (*domain.Customer, error)
	FindAll(ctx context.Context) ([]domain.Customer, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var ErrCustomerNotFound = errors.New("customer not found")

func (s *Service) CreateCustomer(ctx context.Context, name, status string, total decimal.Decimal) (*domain.Customer, error) {
	customer := &domain.Customer{
		Name:   name,
		Status: status,
		Total:  total,
	}

	err := s.repo.Save(ctx, customer)
	if err != nil {
		zap.L().Error("can't save customer: ", zap.Error(err))
		return nil, err
	}

	return customer, nil
}

func (s *Service) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get customer", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	if customer == nil {
		zap.L().Info("customer not found", zap.Int64("id", id))
		return nil, ErrCustomerNotFound
	}

	return customer, nil
}

// GetCustomersBySales returns the customers whose total is strictly greater
// than threshold, in the order the store returned them.
func (s *Service) GetCustomersBySales(ctx context.Context, threshold decimal.Decimal) ([]domain.Customer, error) {
	customers, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to get customers", zap.Error(err))
		return nil, err
	}

	filtered := make([]domain.Customer, 0, len(customers))
	for _, customer := range customers {
		if customer.Total.GreaterThan(threshold) {
			filtered = append(filtered, customer)
		}
	}

	return filtered, nil
}

func (s *Service) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	customers, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to get customers", zap.Error(err))
		return nil, err
	}

	stats, err := ComputeStatistics(customers)
	if err != nil {
		zap.L().Info("can't compute statistics", zap.Int("customers", len(customers)), zap.Error(err))
		return nil, err
	}

	return stats, nil
}
