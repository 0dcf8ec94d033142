package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/netbill-api/internal/application/activity"
	"github.com/jhoicas/netbill-api/internal/application/analytics"
	"github.com/jhoicas/netbill-api/internal/application/auth"
	"github.com/jhoicas/netbill-api/internal/application/billing"
	"github.com/jhoicas/netbill-api/internal/application/bulk"
	"github.com/jhoicas/netbill-api/internal/application/prospect"
	"github.com/jhoicas/netbill-api/internal/application/user"
	corebilling "github.com/jhoicas/netbill-api/internal/domain/billing"
	"github.com/jhoicas/netbill-api/internal/domain/entity"
	"github.com/jhoicas/netbill-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	CustomerUC    *billing.CustomerUseCase
	BillUC        *billing.BillUseCase
	CalculationUC *billing.CalculationUseCase
	DashboardUC   *analytics.DashboardUseCase
	ProspectUC    *prospect.UseCase
	ActivityUC    *activity.UseCase
	UserUC        *user.UseCase
	ExportUC      *bulk.ExportUseCase
	ImportUC      *bulk.ImportUseCase
	RoleRepo      repository.RoleRepository
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Las escrituras pasan además por el permiso del rol (tabla roles).
	canWriteCustomers := RequirePermission(deps.RoleRepo, entity.PermissionCustomersWrite)
	canWriteBills := RequirePermission(deps.RoleRepo, entity.PermissionBillsWrite)

	// Customers
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", canWriteCustomers, customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", canWriteCustomers, customerHandler.Update)
	customers.Delete("/:id", canWriteCustomers, customerHandler.Delete)

	// Bills (export/import antes de :id para que Fiber no capture "export")
	bills := protected.Group("/bills")
	billHandler := NewBillHandler(deps.BillUC)
	exportHandler := NewExportHandler(deps.ExportUC, deps.ImportUC)
	bills.Get("/export/csv", exportHandler.ExportCSV)
	bills.Get("/export/xml", exportHandler.ExportXML)
	bills.Post("/import/csv", canWriteBills, exportHandler.ImportCSV)
	bills.Post("/", canWriteBills, billHandler.Create)
	bills.Get("/", billHandler.List)
	bills.Get("/:id/statement.pdf", exportHandler.StatementPDF)
	bills.Get("/:id", billHandler.GetByID)
	bills.Put("/:id", canWriteBills, billHandler.Update)
	bills.Delete("/:id", canWriteBills, billHandler.Delete)

	// Calculations
	calculations := protected.Group("/calculations")
	calculationHandler := NewCalculationHandler(deps.CalculationUC)
	calculations.Get("/verify/:billId", calculationHandler.VerifyBill)
	calculations.Get("/verify", calculationHandler.VerifyAll)
	calculations.Get("/monthly", calculationHandler.Revenue(corebilling.GroupByMonth))
	calculations.Get("/weekly", calculationHandler.Revenue(corebilling.GroupByWeek))
	calculations.Get("/yearly", calculationHandler.Revenue(corebilling.GroupByYear))
	calculations.Get("/by-customer", calculationHandler.Revenue(corebilling.GroupByCustomer))

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.Summary)

	// Prospects (la propiedad por creador se resuelve en el caso de uso)
	prospects := protected.Group("/prospects")
	prospectHandler := NewProspectHandler(deps.ProspectUC)
	prospects.Post("/", prospectHandler.Create)
	prospects.Get("/", prospectHandler.List)
	prospects.Get("/:id", prospectHandler.GetByID)
	prospects.Put("/:id", prospectHandler.Update)
	prospects.Delete("/:id", prospectHandler.Delete)

	// Activity logs (listado para todos; purga solo super_admin)
	activities := protected.Group("/activities")
	activityHandler := NewActivityHandler(deps.ActivityUC)
	activities.Get("/", activityHandler.List)
	activities.Delete("/", RequireRole(entity.RoleSuperAdmin), activityHandler.Purge)

	// Users (admin+)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Put("/:id/role", userHandler.UpdateRole)
	users.Delete("/:id", userHandler.Delete)
}
