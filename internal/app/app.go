// internal/app/app.go
package app

import (
	"context"
	"fmt"

	"lazzat-client/internal/api"
	"lazzat-client/internal/cart"
	"lazzat-client/internal/checkout"
	"lazzat-client/internal/config"
	"lazzat-client/internal/pkg/token"
	"lazzat-client/internal/session"
	"lazzat-client/internal/storage"

	"go.uber.org/zap"
)

// App wires the storefront engine together: one durable store, one session
// manager, one cart manager and the REST services they consume. Consumers
// receive the managers from here; nothing is reachable as a global.
type App struct {
	Cfg    config.AppConfig
	Logger *zap.Logger

	Store    storage.Store
	Session  *session.Manager
	Cart     *cart.Manager
	Auth     *api.AuthService
	Foods    *api.FoodsService
	Orders   *api.OrdersService
	Checkout *checkout.Service
}

func New(ctx context.Context) (*App, error) {
	cfg := config.Load()

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	store, err := newStore(cfg, logger)
	if err != nil {
		return nil, err
	}

	client, err := api.New(cfg.APIBaseURL, api.Options{Logger: logger})
	if err != nil {
		return nil, fmt.Errorf("failed to build api client: %w", err)
	}

	auth := api.NewAuthService(client)
	sess := session.NewManager(auth, token.NewReader(), store, logger)
	client.SetTokenSource(sess.Token)
	client.SetUnauthorizedHook(sess.Invalidate)

	cartMgr := cart.NewManager(store, logger)
	orders := api.NewOrdersService(client)

	app := &App{
		Cfg:      cfg,
		Logger:   logger,
		Store:    store,
		Session:  sess,
		Cart:     cartMgr,
		Auth:     auth,
		Foods:    api.NewFoodsService(client),
		Orders:   orders,
		Checkout: checkout.NewService(cartMgr, orders, logger),
	}

	// Startup restoration: the session comes back before any user action
	// runs. The cart restored itself from the store at construction.
	app.Session.Restore(ctx)

	return app, nil
}

func (a *App) Close() {
	_ = a.Logger.Sync()
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newStore(cfg config.AppConfig, logger *zap.Logger) (storage.Store, error) {
	switch cfg.StateBackend {
	case "redis":
		client, err := storage.NewRedisClient(storage.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, err
		}
		return storage.NewRedisStore(client, cfg.RedisPrefix, logger), nil
	case "file", "":
		return storage.NewFileStore(cfg.StatePath, logger)
	default:
		return nil, fmt.Errorf("unknown state backend %q", cfg.StateBackend)
	}
}
