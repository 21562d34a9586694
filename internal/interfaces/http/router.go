package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Comedor-api/internal/application/auth"
	"github.com/jhoicas/Comedor-api/internal/application/pricing"
	appsurvey "github.com/jhoicas/Comedor-api/internal/application/survey"
	"github.com/jhoicas/Comedor-api/internal/application/usecase"
	"github.com/jhoicas/Comedor-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC    *usecase.CompanyUseCase
	BranchUC     *usecase.BranchUseCase
	EmployeeUC   *usecase.EmployeeUseCase
	OptionUC     *usecase.OptionUseCase
	ScheduleUC   *usecase.ScheduleUseCase
	LocationUC   *usecase.LocationUseCase
	MenuConfigUC *usecase.MenuConfigUseCase
	WeeklyMenuUC *appsurvey.WeeklyMenuUseCase
	RegisterUC   *appsurvey.RegisterSelectionUseCase
	PropagateUC  *appsurvey.PropagateMenuUseCase
	PricingUC    *pricing.UseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
}

// Router registra las rutas de la API. Las rutas de consulta quedan abiertas a
// cualquier usuario autenticado; las de administración exigen rol admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies (alta pública para el bootstrap inicial)
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.Create)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	branchHandler := NewBranchHandler(deps.BranchUC)
	protected.Get("/branches", branchHandler.List)
	protected.Get("/branches/:id", branchHandler.GetByID)

	locationHandler := NewLocationHandler(deps.LocationUC)
	protected.Get("/locations", locationHandler.List)

	scheduleHandler := NewScheduleHandler(deps.ScheduleUC)
	protected.Get("/schedules", scheduleHandler.List)

	optionHandler := NewOptionHandler(deps.OptionUC)
	protected.Get("/options", optionHandler.List)
	protected.Get("/options/:id", optionHandler.GetByID)

	// Menú semanal y autoservicio (cualquier usuario autenticado)
	menuHandler := NewMenuHandler(deps.WeeklyMenuUC, deps.PropagateUC)
	protected.Get("/menus/weekly", menuHandler.GetWeekly)

	selectionHandler := NewSelectionHandler(deps.RegisterUC, deps.WeeklyMenuUC, deps.AuthUC)
	protected.Post("/selections", selectionHandler.Register)

	// Administración (rol admin)
	admin := protected.Group("/", RequireRole(entity.RoleAdmin))

	admin.Get("/companies", companyHandler.List)
	admin.Get("/companies/:id", companyHandler.GetByID)
	admin.Put("/companies/:id", companyHandler.Update)
	admin.Delete("/companies/:id", companyHandler.Delete)

	admin.Post("/branches", branchHandler.Create)
	admin.Put("/branches/:id", branchHandler.Update)
	admin.Delete("/branches/:id", branchHandler.Delete)

	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	admin.Post("/employees", employeeHandler.Create)
	admin.Get("/employees", employeeHandler.List)
	admin.Get("/employees/:id", employeeHandler.GetByID)
	admin.Put("/employees/:id", employeeHandler.Update)
	admin.Delete("/employees/:id", employeeHandler.Delete)

	admin.Post("/options", optionHandler.Create)
	admin.Put("/options/:id", optionHandler.Update)
	admin.Delete("/options/:id", optionHandler.Delete)

	admin.Post("/schedules", scheduleHandler.Create)
	admin.Put("/schedules/:id", scheduleHandler.Update)
	admin.Delete("/schedules/:id", scheduleHandler.Delete)

	admin.Post("/locations", locationHandler.Create)
	admin.Put("/locations/:id", locationHandler.Update)
	admin.Delete("/locations/:id", locationHandler.Delete)

	configHandler := NewMenuConfigHandler(deps.MenuConfigUC)
	admin.Get("/config/menu", configHandler.Get)
	admin.Put("/config/menu", configHandler.Update)

	admin.Put("/menus/days/:id", menuHandler.UpdateDay)
	admin.Post("/menus/clone", menuHandler.Clone)
	admin.Post("/menus/:id/close", menuHandler.Close)
	admin.Post("/menus/:id/reopen", menuHandler.Reopen)
	admin.Put("/menus/:id/additionals", menuHandler.SetAdditionals)
	admin.Delete("/menus/:id", menuHandler.Delete)

	pricingHandler := NewPricingHandler(deps.PricingUC)
	admin.Get("/menus/:id/billing", pricingHandler.WeeklyBilling)
	admin.Post("/menus/:id/close-payroll", pricingHandler.ClosePayroll)
}
