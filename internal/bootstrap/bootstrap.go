package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/gradmap/internal/app/controllers"
	appMigrations "github.com/yigit/gradmap/internal/app/migrations"
	appRepos "github.com/yigit/gradmap/internal/app/repositories"
	appRoutes "github.com/yigit/gradmap/internal/app/routes"
	appServices "github.com/yigit/gradmap/internal/app/services"
	"github.com/yigit/gradmap/internal/config"
	"github.com/yigit/gradmap/internal/db"
	appMiddleware "github.com/yigit/gradmap/internal/middleware"
	pkgAuth "github.com/yigit/gradmap/internal/pkg/auth"
	"github.com/yigit/gradmap/internal/pkg/logger"
	"github.com/yigit/gradmap/internal/pkg/validation"
	"github.com/yigit/gradmap/internal/seed"
	"github.com/yigit/gradmap/web"
)

// Options carries command line overrides applied on top of the config file.
type Options struct {
	ConfigPath string
	Debug      bool
	Host       string
	Port       string
}

// Dependencies holds all the application dependencies
type Dependencies struct {
	Connector      db.Connector
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	Sessions       *pkgAuth.SessionTokens
	AuthMiddleware *appMiddleware.AuthMiddleware
	Controllers    appRoutes.Controllers
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(opts Options) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(opts.ConfigPath)
	if err != nil {
		logger.Error().Err(err).Str("path", opts.ConfigPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	if opts.Debug {
		cfg.Server.Mode = "debug"
	}
	if opts.Host != "" {
		cfg.Server.Host = opts.Host
	}
	if opts.Port != "" {
		cfg.Server.Port = opts.Port
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	if cfg.IsDebug() && logLevel == logger.InfoLevel {
		logLevel = logger.DebugLevel
	}
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase builds the connector and prepares the schema on one startup
// connection. An unreachable database is logged and tolerated; requests
// then answer 503 until it comes back.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (db.Connector, error) {
	connector, err := db.NewConnector(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to configure database connector")
		return nil, err
	}

	policy := retryPolicy(cfg)
	conn, err := db.AcquireWithRetry(ctx, connector, policy, lgr)
	if err != nil {
		if errors.Is(err, db.ErrUnavailable) {
			lgr.Warn().Err(err).Msg("Database unreachable at startup, skipping migrations and seed")
			return connector, nil
		}
		connector.Close()
		return nil, err
	}
	defer func() {
		if err := conn.Close(context.WithoutCancel(ctx)); err != nil {
			lgr.Debug().Err(err).Msg("Ignoring startup connection close error")
		}
	}()

	lgr.Info().Str("schema", cfg.Database.Schema).Msg("Running database migrations...")
	sets := []string{appMigrations.SetCore}
	if cfg.Database.ApplyDomainSchema {
		sets = append(sets, appMigrations.SetDomain)
	}
	if err := appMigrations.NewMigrator(conn, cfg.Database.Schema, lgr).Apply(ctx, sets...); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		connector.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Strs("sets", sets).Msg("Database migrations successfully applied.")

	if cfg.Seed.Enabled {
		if err := seed.CreateDefaultData(ctx, conn, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return connector, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, connector db.Connector, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Connector: connector, Logger: lgr}

	deps.Repos = appRepos.NewRepositories()
	deps.Services = appServices.NewServices(deps.Repos, pkgAuth.NewPasswordHasher(cfg.Auth.BcryptCost), logger.Component("auth"))

	deps.Sessions = pkgAuth.NewSessionTokens(pkgAuth.SessionConfig{
		SecretKey: cfg.Session.Secret,
		Lifetime:  config.Duration(cfg.Session.Lifetime, 24*time.Hour),
		Issuer:    cfg.Session.Issuer,
	})
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.Sessions, cfg.Session.CookieName, cfg.Session.Secure)

	deps.Controllers = appRoutes.Controllers{
		Auth: appControllers.NewAuthController(
			deps.Services.Auth,
			deps.AuthMiddleware,
			connector,
			retryPolicy(cfg),
			logger.Component("auth"),
		),
		Graduates: appControllers.NewGraduateController(deps.Services.Graduates, deps.Services.Clubs),
		Students:  appControllers.NewStudentController(deps.Services.Students, deps.Services.Lookups, logger.Component("students")),
		Clubs:     appControllers.NewClubController(deps.Services.Clubs, logger.Component("clubs")),
		API:       appControllers.NewAPIController(deps.Services),
	}

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if cfg.IsDebug() {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	} else {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	}
	validation.RegisterGinRules()

	router := gin.New()
	// Recovery wraps the connection scope so the scope's deferred release
	// runs before the panic is turned into a response.
	router.Use(
		appMiddleware.Recovery(lgr),
		appMiddleware.Trace(),
		appMiddleware.RequestLogger(logger.Component("http")),
		appMiddleware.APICORS(corsConfig(cfg)),
		appMiddleware.ConnectionScope(deps.Connector, appMiddleware.DefaultScopeSkipper, logger.Component("db")),
		deps.AuthMiddleware.LoadSession(),
	)

	tmpl, err := web.LoadTemplates()
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(tmpl)
	router.StaticFS("/static", http.FS(web.Static()))

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	return router, nil
}

func retryPolicy(cfg *config.Config) db.RetryPolicy {
	return db.RetryPolicy{
		Attempts: cfg.Auth.ConnectAttempts,
		Backoff:  config.Duration(cfg.Auth.ConnectBackoff, time.Second),
	}
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowOrigins = cfg.AllowedOrigins()
	if len(c.AllowOrigins) == 0 {
		c.AllowOrigins = []string{"http://localhost:" + cfg.Server.Port}
	}
	c.AllowCredentials = true
	c.AllowHeaders = append(c.AllowHeaders, "X-Trace-Id")
	c.ExposeHeaders = []string{"X-Trace-Id"}
	return c
}
