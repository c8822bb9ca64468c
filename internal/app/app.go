package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/clientes/internal/config"
	"github.com/GlebRadaev/clientes/internal/handlers"
	"github.com/GlebRadaev/clientes/internal/pg"
	"github.com/GlebRadaev/clientes/internal/repo"
	"github.com/GlebRadaev/clientes/internal/service"
	"github.com/GlebRadaev/clientes/pkg/auth"
	"github.com/GlebRadaev/clientes/pkg/clients"
	"github.com/GlebRadaev/clientes/pkg/logger"
)

var ErrNoTokenValidator = errors.New("no token validator configured: set TOKEN_SECRET, TOKEN_HASHES or TOKEN_VALIDATOR_ADDRESS")

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories

	errCh chan error
	wg    sync.WaitGroup
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("can't load config: %w", err)
	}

	err = logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	validator, err := buildValidator(cfg)
	if err != nil {
		return err
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	a.cfg = cfg
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo)
	a.api = handlers.New(a.srv, validator)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	zap.L().Info("all systems started successfully")
	return nil
}

func buildValidator(cfg *config.Config) (auth.Validator, error) {
	var validators auth.AnyOf

	if cfg.TokenSecret != "" {
		validators = append(validators, auth.NewJWTService(cfg.TokenSecret, cfg.TokenIssuer))
	}

	hashes := make([]string, 0, len(cfg.TokenHashes))
	for _, h := range cfg.TokenHashes {
		if h != "" {
			hashes = append(hashes, h)
		}
	}
	if len(hashes) > 0 {
		validators = append(validators, auth.NewKeyService(hashes))
	}

	if cfg.TokenValidatorAddress != "" {
		client := clients.NewHTTPClientWithTimeout(cfg.TokenValidatorTimeout)
		validators = append(validators, auth.NewRemoteService(cfg.TokenValidatorAddress, client))
	}

	if len(validators) == 0 {
		return nil, ErrNoTokenValidator
	}
	zap.L().Info("token validators configured", zap.Int("count", len(validators)))
	return validators, nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	// NUMERIC columns scan into decimal.Decimal.
	cfgpool.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
