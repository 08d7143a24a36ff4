package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/todokit/handler"
	"github.com/dmitrymomot/todokit/modules/account"
	"github.com/dmitrymomot/todokit/modules/api"
	"github.com/dmitrymomot/todokit/modules/todos"
	"github.com/dmitrymomot/todokit/pkg/auth"
	"github.com/dmitrymomot/todokit/pkg/config"
	"github.com/dmitrymomot/todokit/pkg/cookie"
	"github.com/dmitrymomot/todokit/pkg/httpserver"
	"github.com/dmitrymomot/todokit/pkg/logger"
	"github.com/dmitrymomot/todokit/pkg/mongo"
	"github.com/dmitrymomot/todokit/pkg/redis"
	"github.com/dmitrymomot/todokit/pkg/requestid"
	"github.com/dmitrymomot/todokit/pkg/session"
	"github.com/dmitrymomot/todokit/svc/todo"
)

type appConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	Service  string `env:"APP_NAME" envDefault:"todokit"`
	LogLevel string `env:"LOG_LEVEL"`
	// SessionStore selects where sessions live: "mongo" or "redis".
	SessionStore string `env:"SESSION_STORE" envDefault:"mongo"`
}

// configs is parsed in one pass; nested structs carry their own env tags.
type configs struct {
	App     appConfig
	HTTP    httpserver.Config
	Mongo   mongo.Config
	Redis   redis.Config
	Cookie  cookie.Config
	Session session.Config
	Auth    auth.Config
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var cfg configs
	if err := config.Load(&cfg); err != nil {
		return err
	}

	logOpts := []logger.Option{
		logger.WithEnvironment(cfg.App.Env, cfg.App.Service),
		logger.WithContextExtractors(requestid.LoggerExtractor(), session.LoggerExtractor()),
	}
	if cfg.App.LogLevel != "" {
		logOpts = append(logOpts, logger.WithLevelName(cfg.App.LogLevel))
	}
	log := logger.New(logOpts...)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := mongo.NewWithDatabase(ctx, cfg.Mongo)
	if err != nil {
		return err
	}
	defer func() { _ = db.Client().Disconnect(context.Background()) }()

	checks := []httpserver.Check{{Name: "mongo", Check: mongo.Healthcheck(db.Client())}}

	userStorage := auth.NewMongoStorage(db)
	todoStorage := todo.NewMongoStorage(db)
	if err := userStorage.EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := todoStorage.EnsureIndexes(ctx); err != nil {
		return err
	}

	var sessionStore session.Store
	switch cfg.App.SessionStore {
	case "redis":
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer client.Close()
		sessionStore = session.NewRedisStore(client, "")
		checks = append(checks, httpserver.Check{Name: "redis", Check: redis.Healthcheck(client)})
	case "mongo":
		store := session.NewMongoStore(db)
		if err := store.EnsureIndexes(ctx); err != nil {
			return err
		}
		sessionStore = store
	default:
		return fmt.Errorf("unknown SESSION_STORE %q", cfg.App.SessionStore)
	}

	cookieMgr, err := cookie.NewFromConfig(cfg.Cookie)
	if err != nil {
		return err
	}

	sessions := session.NewFromConfig(cfg.Session,
		session.WithStore(sessionStore),
		session.WithCookieManager(cookieMgr),
		session.WithLogger(log),
		session.WithUnauthorizedHandler(api.UnauthorizedHandler(log)),
	)
	sessions.StartCleanup(ctx)

	errorHandler := handler.NewErrorHandler(log)

	router := api.Router(api.RouterOptions{
		Logger:   log,
		AuthGate: sessions.RequireAuth,
		Account: account.NewService(
			auth.NewFromConfig(cfg.Auth, userStorage, auth.WithLogger(log)),
			sessions,
			account.WithErrorHandler(errorHandler),
			account.WithLogger(log),
		),
		Todos: todos.NewService(
			todo.NewService(todoStorage, todo.WithLogger(log)),
			todos.WithErrorHandler(errorHandler),
			todos.WithLogger(log),
		),
		ReadinessChecks: checks,
	})

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, router)
}
