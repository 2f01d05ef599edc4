package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-manager/internal/audit"
	"github.com/BruksfildServices01/barber-manager/internal/auth"
	"github.com/BruksfildServices01/barber-manager/internal/config"
	"github.com/BruksfildServices01/barber-manager/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-manager/internal/infra/repository"
	"github.com/BruksfildServices01/barber-manager/internal/middleware"
	"github.com/BruksfildServices01/barber-manager/internal/ratelimit"
	"github.com/BruksfildServices01/barber-manager/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/barber-manager/internal/usecase/appointment"
	ucCashbox "github.com/BruksfildServices01/barber-manager/internal/usecase/cashbox"
	ucIdentity "github.com/BruksfildServices01/barber-manager/internal/usecase/identity"
	ucReport "github.com/BruksfildServices01/barber-manager/internal/usecase/report"
	"github.com/BruksfildServices01/barber-manager/internal/validators"
)

// Deps are the process-wide collaborators built in main.
type Deps struct {
	Logger  *zap.Logger
	Tokens  *auth.TokenService
	Limiter ratelimit.LoginLimiter

	// Now overrides the report clock. Nil means time.Now.
	Now func() time.Time
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, deps Deps) {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(log),
		middleware.CORSMiddleware(cfg.CORSOrigins),
		middleware.ErrorHandler(log),
	)

	// ======================================================
	// INFRA
	// ======================================================
	loc := timezone.Location(cfg.ReportTimezone)

	identityRepo := infraRepo.NewIdentityGormRepository(db)
	reportRepo := infraRepo.NewReportGormRepository(db)
	cashboxRepo := infraRepo.NewCashboxGormRepository(db)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db, log)

	// ======================================================
	// USE CASES
	// ======================================================
	loginUC := ucIdentity.NewLogin(identityRepo, deps.Tokens, deps.Limiter, log)
	changePasswordUC := ucIdentity.NewChangePassword(identityRepo, auditLogger, cfg.BcryptCost)

	reports := ucReport.NewReports(reportRepo, loc)
	if deps.Now != nil {
		reports = reports.WithClock(deps.Now)
	}

	createEntryUC := ucCashbox.NewCreateEntry(cashboxRepo, auditLogger)
	updateEntryUC := ucCashbox.NewUpdateEntry(cashboxRepo, auditLogger)
	deleteEntryUC := ucCashbox.NewDeleteEntry(cashboxRepo, auditLogger)

	createAppointmentUC := ucAppointment.NewCreateAppointment(appointmentRepo, auditLogger)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(appointmentRepo, auditLogger)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(appointmentRepo, auditLogger)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo, loc)

	// ======================================================
	// HANDLERS
	// ======================================================
	emailPolicy := validators.EmailPolicy{CheckDomain: cfg.ValidateEmailDomain}

	authHandler := handlers.NewAuthHandler(loginUC, changePasswordUC)
	barbershopHandler := handlers.NewBarbershopHandler(db, cfg.BcryptCost)
	barberHandler := handlers.NewBarberHandler(db, reports, emailPolicy, cfg.BcryptCost)
	clientHandler := handlers.NewClientHandler(db, reports, emailPolicy)
	productHandler := handlers.NewProductHandler(db)
	cashboxHandler := handlers.NewCashboxHandler(
		cashboxRepo,
		createEntryUC,
		updateEntryUC,
		deleteEntryUC,
		reports,
	)
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		deleteAppointmentUC,
		listAppointmentsUC,
		loc,
	)
	reportHandler := handlers.NewReportHandler(reports)
	auditLogsHandler := handlers.NewAuditLogsHandler(db, loc)

	// ======================================================
	// PUBLIC
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/auth", authHandler.LoginBarbershop)
	r.POST("/auth-barber", authHandler.LoginBarber)
	r.POST("/create-barbershop", barbershopHandler.Create)
	r.PUT("/alter-password", authHandler.AlterPassword)

	// ======================================================
	// BARBERSHOP TOKEN
	// ======================================================
	shop := r.Group("/")
	shop.Use(middleware.RequireToken(deps.Tokens, auth.PrincipalBarbershop))
	{
		shop.POST("/tokenVerify", authHandler.TokenVerify)

		// ------------------------------
		// BARBERSHOP
		// ------------------------------
		shop.GET("/find-barbershops", barbershopHandler.Find)
		shop.DELETE("/delete-barbershop", barbershopHandler.Delete)

		// ------------------------------
		// BARBERS
		// ------------------------------
		shop.POST("/create-barber", barberHandler.Create)
		shop.GET("/find-barber", barberHandler.List)
		shop.GET("/find-barbers-barbershop", barberHandler.List)
		shop.PUT("/alter-barber", barberHandler.Update)
		shop.DELETE("/delete-barber", barberHandler.Delete)

		// ------------------------------
		// CLIENTS
		// ------------------------------
		shop.POST("/create-client", clientHandler.Create)
		shop.PUT("/update-client", clientHandler.Update)
		shop.DELETE("/delete-client", clientHandler.Delete)
		shop.GET("/find-client", clientHandler.List)
		shop.GET("/find-clients-barbershop", clientHandler.List)
		shop.GET("/list-clients/:barbershopId", clientHandler.List)
		shop.POST("/get-clients-registered-period", clientHandler.RegisteredInPeriod)
		shop.POST("/get-cliente-registered-period/", clientHandler.RegisteredInPeriod)
		shop.POST("/birthdates-clients-for-month", clientHandler.BirthdatesForMonth)

		// ------------------------------
		// PRODUCTS
		// ------------------------------
		shop.POST("/create-product", productHandler.Create)
		shop.GET("/find-product", productHandler.List)
		shop.GET("/find-products-barbershop", productHandler.List)
		shop.PUT("/alter-product", productHandler.Update)
		shop.DELETE("/delete-product", productHandler.Delete)

		// ------------------------------
		// CASHBOX
		// ------------------------------
		shop.POST("/create-cashbox", cashboxHandler.Create)
		shop.PUT("/update-cashbox", cashboxHandler.Update)
		shop.DELETE("/delete-cashbox", cashboxHandler.Delete)
		shop.GET("/find-cashbox/:barbershopId", cashboxHandler.List)
		shop.GET("/total-cashbox-today", cashboxHandler.TotalToday)

		// ------------------------------
		// SCHEDULER
		// ------------------------------
		shop.POST("/create-scheduler", appointmentHandler.Create)
		shop.PUT("/update-scheduler", appointmentHandler.Update)
		shop.GET("/find-schedules-barbershop", appointmentHandler.List)
		shop.DELETE("/delete-scheduler", appointmentHandler.Delete)

		// ------------------------------
		// REPORTS
		// ------------------------------
		shop.GET("/find-top-barber/:barbershopId", reportHandler.TopBarber)
		shop.GET("/clients-per-barber/:barbershopId", clientHandler.PerBarber)
		shop.GET("/get-middle-ticket/:barbershopId", cashboxHandler.MiddleTicket)
		shop.GET("/sales-per-day/:barbershopId", cashboxHandler.SalesPerDay)
		shop.GET("/get-birthday-person-of-the-day/:barbershopId", clientHandler.BirthdayToday)

		shop.POST("/get-cashbox-period", cashboxHandler.Period)
		shop.POST("/get-cashbox-barber-period", cashboxHandler.BarberPeriod)
		shop.POST("/get-middle-ticket-period", cashboxHandler.MiddleTicketPeriod)
		shop.POST("/get-amount-period", cashboxHandler.AmountPeriod)

		shop.GET("/audit-logs", auditLogsHandler.List)
	}

	// ======================================================
	// BARBER TOKEN
	// ======================================================
	barber := r.Group("/")
	barber.Use(middleware.RequireToken(deps.Tokens, auth.PrincipalBarber))
	{
		barber.POST("/tokenVerifyBarber", authHandler.TokenVerify)
		barber.GET("/barber/me", barberHandler.Me)
		barber.PUT("/barber/me", barberHandler.UpdateMe)
		barber.POST("/barber/cashbox-period", barberHandler.MyCashboxPeriod)
	}
}
