// internal/app/router.go
package app

import (
	authHandler "fieldserve/internal/handlers/auth"
	customerHandler "fieldserve/internal/handlers/customer"
	dashboardHandler "fieldserve/internal/handlers/dashboard"
	equipmentHandler "fieldserve/internal/handlers/equipment"
	inventoryHandler "fieldserve/internal/handlers/inventory"
	invoiceHandler "fieldserve/internal/handlers/invoice"
	jobHandler "fieldserve/internal/handlers/job"
	pricebookHandler "fieldserve/internal/handlers/pricebook"
	technicianHandler "fieldserve/internal/handlers/technician"
	wsHandler "fieldserve/internal/handlers/ws"
	"fieldserve/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	AuthHandler       *authHandler.AuthHandler
	CustomerHandler   *customerHandler.CustomerHandler
	TechnicianHandler *technicianHandler.TechnicianHandler
	JobHandler        *jobHandler.JobHandler
	InvoiceHandler    *invoiceHandler.InvoiceHandler
	InventoryHandler  *inventoryHandler.InventoryHandler
	EquipmentHandler  *equipmentHandler.EquipmentHandler
	PricebookHandler  *pricebookHandler.PricebookHandler
	DashboardHandler  *dashboardHandler.DashboardHandler
	WSHandler         *wsHandler.WSHandler
	AuthMiddleware    *middleware.AuthMiddleware
	TenantMiddleware  *middleware.TenantMiddleware
}

func SetupRouter(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/v1")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// ==================== WebSocket ====================
	r.GET("/ws", h.AuthMiddleware.Auth(), h.AuthMiddleware.RequireTenant(), h.WSHandler.Serve)

	// ==================== Auth ====================
	auth := api.Group("/auth")
	{
		auth.POST("/login", h.AuthHandler.Login)
	}
	authProtected := api.Group("/auth")
	authProtected.Use(h.AuthMiddleware.Auth())
	{
		authProtected.GET("/me", h.AuthHandler.GetMe)
		authProtected.POST("/logout", h.AuthHandler.Logout)
	}

	// ==================== Tenant-scoped resources ====================
	// The session's company scopes every route in this group.
	scoped := api.Group("")
	scoped.Use(h.AuthMiddleware.Auth(), h.AuthMiddleware.RequireTenant())
	{
		customers := scoped.Group("/customers")
		{
			customers.GET("", h.CustomerHandler.ListCustomers)
			customers.POST("", h.CustomerHandler.CreateCustomer)
			customers.GET("/:id", h.CustomerHandler.GetCustomer)
			customers.PUT("/:id", h.CustomerHandler.UpdateCustomer)
			customers.DELETE("/:id", h.CustomerHandler.DeleteCustomer)
		}

		technicians := scoped.Group("/technicians")
		{
			technicians.GET("", h.TechnicianHandler.ListTechnicians)
			technicians.POST("", h.TechnicianHandler.CreateTechnician)
			technicians.GET("/:id", h.TechnicianHandler.GetTechnician)
			technicians.PUT("/:id", h.TechnicianHandler.UpdateTechnician)
			technicians.DELETE("/:id", h.TechnicianHandler.DeleteTechnician)
		}

		jobs := scoped.Group("/jobs")
		{
			jobs.GET("", h.JobHandler.ListJobs)
			jobs.POST("", h.JobHandler.CreateJob)
			jobs.GET("/today", h.JobHandler.ListJobsToday)
			jobs.GET("/customer/:customerId", h.JobHandler.ListJobsByCustomer)
			jobs.GET("/:id", h.JobHandler.GetJob)
			jobs.PUT("/:id", h.JobHandler.UpdateJob)
			jobs.DELETE("/:id", h.JobHandler.DeleteJob)
		}

		invoices := scoped.Group("/invoices")
		{
			invoices.GET("", h.InvoiceHandler.ListInvoices)
			invoices.POST("", h.InvoiceHandler.CreateInvoice)
			invoices.GET("/customer/:customerId", h.InvoiceHandler.ListInvoicesByCustomer)
			invoices.GET("/:id", h.InvoiceHandler.GetInvoice)
			invoices.PUT("/:id", h.InvoiceHandler.UpdateInvoice)
			invoices.DELETE("/:id", h.InvoiceHandler.DeleteInvoice)
		}

		equipment := scoped.Group("/equipment")
		{
			equipment.GET("", h.EquipmentHandler.ListEquipment)
			equipment.POST("", h.EquipmentHandler.CreateEquipment)
			equipment.GET("/customer/:customerId", h.EquipmentHandler.ListEquipmentByCustomer)
			equipment.GET("/:id", h.EquipmentHandler.GetEquipment)
			equipment.PUT("/:id", h.EquipmentHandler.UpdateEquipment)
			equipment.DELETE("/:id", h.EquipmentHandler.DeleteEquipment)
		}

		pricebook := scoped.Group("/pricebook")
		{
			pricebook.GET("/global", h.PricebookHandler.ListGlobal)
			pricebook.GET("/company", h.PricebookHandler.ListForCompany)
		}

		dashboard := scoped.Group("/dashboard")
		{
			dashboard.GET("/stats", h.DashboardHandler.GetStats)
		}
	}

	// ==================== Inventory (global, auth only) ====================
	inventory := api.Group("/inventory")
	inventory.Use(h.AuthMiddleware.Auth())
	{
		inventory.GET("", h.InventoryHandler.ListItems)
		inventory.POST("", h.InventoryHandler.CreateItem)
		inventory.GET("/low-stock", h.InventoryHandler.ListLowStock)
		inventory.GET("/:id", h.InventoryHandler.GetItem)
		inventory.PUT("/:id", h.InventoryHandler.UpdateItem)
		inventory.DELETE("/:id", h.InventoryHandler.DeleteItem)
	}

	// ==================== Slug-addressed reads ====================
	// Same resources addressed by company slug; the slug must match the
	// session's company, so these are read mirrors, not an escape hatch.
	slug := r.Group("/api/t/:slug")
	slug.Use(h.AuthMiddleware.Auth(), h.TenantMiddleware.ResolveSlug())
	{
		slug.GET("/customers", h.CustomerHandler.ListCustomers)
		slug.GET("/customers/:id", h.CustomerHandler.GetCustomer)
		slug.GET("/technicians", h.TechnicianHandler.ListTechnicians)
		slug.GET("/technicians/:id", h.TechnicianHandler.GetTechnician)
		slug.GET("/jobs", h.JobHandler.ListJobs)
		slug.GET("/jobs/today", h.JobHandler.ListJobsToday)
		slug.GET("/jobs/customer/:customerId", h.JobHandler.ListJobsByCustomer)
		slug.GET("/jobs/:id", h.JobHandler.GetJob)
		slug.GET("/invoices", h.InvoiceHandler.ListInvoices)
		slug.GET("/invoices/customer/:customerId", h.InvoiceHandler.ListInvoicesByCustomer)
		slug.GET("/invoices/:id", h.InvoiceHandler.GetInvoice)
		slug.GET("/equipment", h.EquipmentHandler.ListEquipment)
		slug.GET("/equipment/customer/:customerId", h.EquipmentHandler.ListEquipmentByCustomer)
		slug.GET("/equipment/:id", h.EquipmentHandler.GetEquipment)
		slug.GET("/pricebook", h.PricebookHandler.ListForCompany)
		slug.GET("/dashboard/stats", h.DashboardHandler.GetStats)
	}
}
