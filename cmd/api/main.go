package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/jhoicas/Comedor-api/docs"
	"github.com/jhoicas/Comedor-api/internal/application/auth"
	"github.com/jhoicas/Comedor-api/internal/application/pricing"
	appsurvey "github.com/jhoicas/Comedor-api/internal/application/survey"
	"github.com/jhoicas/Comedor-api/internal/application/usecase"
	domsurvey "github.com/jhoicas/Comedor-api/internal/domain/survey"
	"github.com/jhoicas/Comedor-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Comedor-api/internal/interfaces/http"
	"github.com/jhoicas/Comedor-api/pkg/config"
	"github.com/jhoicas/Comedor-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	optionRepo := postgres.NewOptionRepository(pool)
	scheduleRepo := postgres.NewScheduleRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	menuRepo := postgres.NewMenuRepository(pool)
	dayRepo := postgres.NewMenuDayRepository(pool)
	selRepo := postgres.NewSelectionRepository(pool)
	addlRepo := postgres.NewMenuAdditionalRepository(pool)
	cfgRepo := postgres.NewMenuConfigRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	clock := domsurvey.SystemClock{}

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	branchUC := usecase.NewBranchUseCase(branchRepo, companyRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, branchRepo)
	optionUC := usecase.NewOptionUseCase(optionRepo)
	scheduleUC := usecase.NewScheduleUseCase(scheduleRepo)
	locationUC := usecase.NewLocationUseCase(locationRepo)
	menuConfigUC := usecase.NewMenuConfigUseCase(cfgRepo)

	weeklyMenuUC := appsurvey.NewWeeklyMenuUseCase(
		txRunner, menuRepo, dayRepo, selRepo, addlRepo,
		scheduleRepo, optionRepo, cfgRepo, clock,
	)
	registerUC := appsurvey.NewRegisterSelectionUseCase(
		txRunner, dayRepo, employeeRepo, locationRepo, addlRepo,
	)
	propagateUC := appsurvey.NewPropagateMenuUseCase(txRunner, scheduleRepo, clock)

	pricingUC := pricing.NewUseCase(
		txRunner, menuRepo, dayRepo, selRepo,
		companyRepo, branchRepo, employeeRepo, optionRepo, clock,
	)

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, employeeRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Comedor API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:    companyUC,
		BranchUC:     branchUC,
		EmployeeUC:   employeeUC,
		OptionUC:     optionUC,
		ScheduleUC:   scheduleUC,
		LocationUC:   locationUC,
		MenuConfigUC: menuConfigUC,
		WeeklyMenuUC: weeklyMenuUC,
		RegisterUC:   registerUC,
		PropagateUC:  propagateUC,
		PricingUC:    pricingUC,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
