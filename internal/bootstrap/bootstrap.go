package bootstrap

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/kaanyilmaz/placehub/internal/app/controllers"
	appRepos "github.com/kaanyilmaz/placehub/internal/app/repositories"
	appRoutes "github.com/kaanyilmaz/placehub/internal/app/routes"
	appServices "github.com/kaanyilmaz/placehub/internal/app/services"
	"github.com/kaanyilmaz/placehub/internal/config"
	appMiddleware "github.com/kaanyilmaz/placehub/internal/middleware"
	pkgAuth "github.com/kaanyilmaz/placehub/internal/pkg/auth"
	"github.com/kaanyilmaz/placehub/internal/pkg/helpers"
	"github.com/kaanyilmaz/placehub/internal/pkg/logger"
	"github.com/kaanyilmaz/placehub/internal/seed"
	"github.com/kaanyilmaz/placehub/internal/store"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService            *appServices.AuthService
	CompanyService         *appServices.CompanyService
	StudentService         *appServices.StudentService
	RoundService           *appServices.RoundService
	RoundEditorService     *appServices.RoundEditorService
	RegistrationService    *appServices.RegistrationService
	StatsService           *appServices.StatsService
	ExportService          *appServices.ExportService
	AuthController         *appControllers.AuthController
	CompanyController      *appControllers.CompanyController
	StudentController      *appControllers.StudentController
	RoundController        *appControllers.RoundController
	RegistrationController *appControllers.RegistrationController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	Repos                  *appRepos.Repositories
	JWTService             *pkgAuth.JWTService
	Logger                 zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore opens the key-value store and seeds demo data when enabled.
func SetupStore(cfg *config.Config, lgr zerolog.Logger) (store.Store, error) {
	lgr.Info().Str("path", cfg.Store.Path).Msg("Opening key-value store...")
	st, err := store.OpenSQLite(cfg.Store.Path)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to open key-value store")
		return nil, err
	}

	if cfg.Seed.Demo {
		if err := seed.CreateDemoData(context.Background(), st); err != nil {
			// Seeding is a convenience; a failure should not stop the server
			lgr.Error().Err(err).Msg("Failed to seed demo data, proceeding anyway...")
		}
	}

	return st, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, st store.Store, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(st)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService)
	deps.CompanyService = appServices.NewCompanyService(deps.Repos.CompanyRepository, deps.Repos.RoundRepository)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)
	deps.RoundService = appServices.NewRoundService(deps.Repos.RoundRepository)
	deps.RoundEditorService = appServices.NewRoundEditorService(deps.Repos.CompanyRepository, deps.Repos.RoundRepository)
	deps.RegistrationService = appServices.NewRegistrationService(
		deps.Repos.RegistrationRepository,
		deps.Repos.CompanyRepository,
		deps.Repos.UserRepository,
	)
	deps.StatsService = appServices.NewStatsService(
		deps.Repos.CompanyRepository,
		deps.Repos.StudentRepository,
		deps.Repos.RoundRepository,
		deps.Repos.RegistrationRepository,
	)
	deps.ExportService = appServices.NewExportService(deps.Repos.RegistrationRepository, deps.Repos.StudentRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.CompanyController = appControllers.NewCompanyController(deps.CompanyService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService, deps.ExportService)
	deps.RoundController = appControllers.NewRoundController(deps.RoundService, deps.RoundEditorService)
	deps.RegistrationController = appControllers.NewRegistrationController(
		deps.RegistrationService,
		deps.ExportService,
		deps.StatsService,
	)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(), gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.CompanyController,
		deps.StudentController,
		deps.RoundController,
		deps.RegistrationController,
		deps.AuthMiddleware,
	)

	return router
}
