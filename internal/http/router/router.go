package router

import (
	"encoding/json"
	"net/http"

	"github.com/fabrimet/salesops-api/internal/config"
	"github.com/fabrimet/salesops-api/internal/database"
	"github.com/fabrimet/salesops-api/internal/http/handler"
	"github.com/fabrimet/salesops-api/internal/http/middleware"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Router struct {
	cfg                  *config.Config
	logger               *zap.Logger
	db                   *gorm.DB
	rateLimiter          *middleware.RateLimiter
	companyHandler       *handler.CompanyHandler
	enquiryHandler       *handler.EnquiryHandler
	quotationHandler     *handler.QuotationHandler
	communicationHandler *handler.CommunicationHandler
	employeeHandler      *handler.EmployeeHandler
	documentHandler      *handler.DocumentHandler
	dashboardHandler     *handler.DashboardHandler
	adminHandler         *handler.AdminHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	rateLimiter *middleware.RateLimiter,
	companyHandler *handler.CompanyHandler,
	enquiryHandler *handler.EnquiryHandler,
	quotationHandler *handler.QuotationHandler,
	communicationHandler *handler.CommunicationHandler,
	employeeHandler *handler.EmployeeHandler,
	documentHandler *handler.DocumentHandler,
	dashboardHandler *handler.DashboardHandler,
	adminHandler *handler.AdminHandler,
) *Router {
	return &Router{
		cfg:                  cfg,
		logger:               logger,
		db:                   db,
		rateLimiter:          rateLimiter,
		companyHandler:       companyHandler,
		enquiryHandler:       enquiryHandler,
		quotationHandler:     quotationHandler,
		communicationHandler: communicationHandler,
		employeeHandler:      employeeHandler,
		documentHandler:      documentHandler,
		dashboardHandler:     dashboardHandler,
		adminHandler:         adminHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.LimitByIP)

	// Health check (basic liveness probe)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Database readiness probe
	r.Get("/health/db", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := database.HealthCheck(rt.db); err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status":  "unhealthy",
				"error":   err.Error(),
				"service": "database",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "healthy",
			"service": "database",
		})
	})

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Companies
		r.Route("/companies", func(r chi.Router) {
			r.Get("/", rt.companyHandler.List)
			r.Post("/", rt.companyHandler.Create)
			r.Get("/{id}", rt.companyHandler.GetByID)
			r.Put("/{id}", rt.companyHandler.Update)
			r.Delete("/{id}", rt.companyHandler.Delete)
			r.Post("/{id}/offices", rt.companyHandler.AddOffice)
			r.Post("/{id}/plants", rt.companyHandler.AddPlant)
			r.Post("/{id}/contact-persons", rt.companyHandler.AddContactPerson)
		})

		// Enquiries
		r.Route("/enquiries", func(r chi.Router) {
			r.Get("/", rt.enquiryHandler.List)
			r.Post("/", rt.enquiryHandler.Create)
			r.Get("/{id}", rt.enquiryHandler.GetByID)
			r.Put("/{id}", rt.enquiryHandler.Update)
			r.Delete("/{id}", rt.enquiryHandler.Delete)
			r.Get("/{id}/quotations", rt.enquiryHandler.ListQuotations)
			r.Get("/{id}/documents", rt.documentHandler.ListByEnquiry)
		})

		// Quotations
		r.Route("/quotations", func(r chi.Router) {
			r.Post("/", rt.quotationHandler.Create)
			r.Get("/{id}", rt.quotationHandler.GetByID)
			r.Delete("/{id}", rt.quotationHandler.Delete)
			r.Post("/{id}/items", rt.quotationHandler.AddItem)
			r.Put("/{id}/status", rt.quotationHandler.UpdateStatus)
			r.Get("/{id}/documents", rt.documentHandler.ListByQuotation)
		})

		// Communications
		r.Route("/communications", func(r chi.Router) {
			r.Get("/", rt.communicationHandler.List)
			r.Post("/", rt.communicationHandler.Create)
			r.Get("/{id}", rt.communicationHandler.GetByID)
			r.Delete("/{id}", rt.communicationHandler.Delete)
		})

		// Employees (read-only directory)
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", rt.employeeHandler.List)
			r.Get("/{id}", rt.employeeHandler.GetByID)
		})

		// Dashboard
		r.Get("/dashboard/metrics", rt.dashboardHandler.GetMetrics)

		// Admin
		r.Post("/admin/backup", rt.adminHandler.TriggerBackup)
	})

	return r
}
