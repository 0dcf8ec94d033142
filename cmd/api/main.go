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

	"github.com/jhoicas/netbill-api/internal/application/activity"
	appanalytics "github.com/jhoicas/netbill-api/internal/application/analytics"
	"github.com/jhoicas/netbill-api/internal/application/auth"
	"github.com/jhoicas/netbill-api/internal/application/billing"
	"github.com/jhoicas/netbill-api/internal/application/bulk"
	"github.com/jhoicas/netbill-api/internal/application/prospect"
	"github.com/jhoicas/netbill-api/internal/application/user"
	"github.com/jhoicas/netbill-api/internal/domain/entity"
	"github.com/jhoicas/netbill-api/internal/domain/repository"
	infrapdf "github.com/jhoicas/netbill-api/internal/infrastructure/pdf"
	"github.com/jhoicas/netbill-api/internal/infrastructure/postgres"
	"github.com/jhoicas/netbill-api/internal/infrastructure/xmlexport"
	httpRouter "github.com/jhoicas/netbill-api/internal/interfaces/http"
	"github.com/jhoicas/netbill-api/pkg/config"
	"github.com/jhoicas/netbill-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
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

	userRepo := postgres.NewUserRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	billRepo := postgres.NewBillRepository(pool)
	prospectRepo := postgres.NewProspectRepository(pool)
	activityRepo := postgres.NewActivityLogRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	recorder := activity.NewRecorder(activityRepo, log)

	ensureDefaultRoles(ctx, roleRepo, log)

	authUC := auth.NewAuthUseCase(userRepo, recorder, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	customerUC := billing.NewCustomerUseCase(customerRepo, recorder)
	billUC := billing.NewBillUseCase(txRunner, billRepo, customerRepo)
	calculationUC := billing.NewCalculationUseCase(billRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)
	prospectUC := prospect.NewUseCase(prospectRepo, recorder)
	activityUC := activity.NewUseCase(activityRepo)
	userUC := user.NewUseCase(userRepo, recorder)

	xmlBuilder := xmlexport.NewEtreeBillsBuilder()
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	exportUC := bulk.NewExportUseCase(billRepo, customerRepo, xmlBuilder, pdfGenerator)
	importUC := bulk.NewImportUseCase(billRepo, customerRepo, recorder)

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
		Title:    "NetBill API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CustomerUC:    customerUC,
		BillUC:        billUC,
		CalculationUC: calculationUC,
		DashboardUC:   dashboardUC,
		ProspectUC:    prospectUC,
		ActivityUC:    activityUC,
		UserUC:        userUC,
		ExportUC:      exportUC,
		ImportUC:      importUC,
		RoleRepo:      roleRepo,
		JWTSecret:     cfg.JWT.Secret,
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

// ensureDefaultRoles siembra los tres roles del sistema si aún no existen.
// No pisa permisos ya editados en la DB.
func ensureDefaultRoles(ctx context.Context, roles repository.RoleRepository, log *logger.Logger) {
	defaults := []entity.Role{
		{Name: entity.RoleSuperAdmin, Permissions: []string{entity.PermissionAll}},
		{Name: entity.RoleAdmin, Permissions: []string{
			entity.PermissionCustomersWrite,
			entity.PermissionBillsWrite,
		}},
		{Name: entity.RoleUser, Permissions: []string{
			entity.PermissionBillsWrite,
		}},
	}
	for _, role := range defaults {
		existing, err := roles.GetByName(ctx, role.Name)
		if err != nil {
			log.Warn().Err(err).Str("role", role.Name).Msg("consulta de rol por defecto")
			continue
		}
		if existing != nil {
			continue
		}
		if err := roles.Save(ctx, &role); err != nil {
			log.Warn().Err(err).Str("role", role.Name).Msg("siembra de rol por defecto")
		}
	}
}
