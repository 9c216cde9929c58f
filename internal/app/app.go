package app

import (
	"context"
	"net/http"

	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/clock"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/config"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/goroutine"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/hash"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/idempotency"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/instrument"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/mail"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/router"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/secret"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/uid"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/validator"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	sha256    hash.Hash
	uid       uid.NumberID
	uuid      uid.StringID
	keyGen    secret.Generator
	otpGen    secret.Generator

	// resources
	dbConn    *pgxpool.Pool
	cacheConn *redis.Client
	idemp     idempotency.Idempotency
	mail      mail.Mail

	// server
	router     *router.Router
	httpServer *http.Server

	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initDatabase()
	app.initCache()
	app.initMail()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
