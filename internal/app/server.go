// internal/app/server.go
package app

import (
	"context"
	"fmt"
	"log"

	"fieldserve/internal/config"
	"fieldserve/internal/db"
	"fieldserve/internal/geo"
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
	"fieldserve/internal/pkg/session"
	"fieldserve/internal/repository/postgres"
	authUsecase "fieldserve/internal/service/auth"
	customersvc "fieldserve/internal/service/customer"
	dashboardUsecase "fieldserve/internal/service/dashboard"
	equipmentUsecase "fieldserve/internal/service/equipment"
	inventoryUsecase "fieldserve/internal/service/inventory"
	invoiceUsecase "fieldserve/internal/service/invoice"
	jobUsecase "fieldserve/internal/service/job"
	pricebookUsecase "fieldserve/internal/service/pricebook"
	technicianUsecase "fieldserve/internal/service/technician"
	"fieldserve/internal/service/tenant"
	"fieldserve/internal/websocket"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	ctx := context.Background()

	// ----- PostgreSQL -----
	pool, err := db.ConnectDB(ctx, s.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	// ----- Redis -----
	redisClient, err := db.NewRedisClient(db.RedisConfig{
		Addr:     s.cfg.RedisAddr,
		Password: s.cfg.RedisPass,
		DB:       0,
		PoolSize: 10,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Println("[REDIS] connected")

	// ----- Logger -----
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	s.logger = logger

	// ----- Session Manager -----
	sessionManager := session.NewManager(redisClient, s.cfg.SessionTTL)

	// ----- Geocoder (optional) -----
	var geocoder geo.Geocoder
	if s.cfg.GeocoderBaseURL != "" {
		geocoder = geo.NewClient(s.cfg.GeocoderBaseURL)
	}

	// ----- Repositories -----
	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	technicianRepo := postgres.NewTechnicianRepository(pool)
	jobRepo := postgres.NewJobRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	equipmentRepo := postgres.NewEquipmentRepository(pool)
	pricebookRepo := postgres.NewPricebookRepository(pool)

	// ----- Tenant Resolver -----
	resolver := tenant.NewResolver(userRepo, companyRepo, customerRepo, logger)

	// ----- WebSocket Hub -----
	hub := websocket.NewHub(logger)
	go hub.Run(ctx)

	// ----- Services -----
	authService := authUsecase.NewAuthService(userRepo, resolver, sessionManager, logger)
	customerService := customersvc.NewCustomerService(customerRepo, geocoder, logger)
	technicianService := technicianUsecase.NewTechnicianService(technicianRepo, logger)
	jobService := jobUsecase.NewJobService(jobRepo, resolver, hub, logger)
	invoiceService := invoiceUsecase.NewInvoiceService(invoiceRepo, resolver, hub, logger)
	inventoryService := inventoryUsecase.NewInventoryService(inventoryRepo, logger)
	equipmentService := equipmentUsecase.NewEquipmentService(equipmentRepo, resolver, logger)
	pricebookService := pricebookUsecase.NewPricebookService(pricebookRepo, logger)
	dashboardService := dashboardUsecase.NewDashboardService(jobRepo, invoiceRepo, technicianRepo, logger)

	// ----- Demo seed (development only) -----
	if s.cfg.SeedDemo {
		if err := authService.EnsureDemoAccount(ctx, companyRepo); err != nil {
			logger.Error("failed to seed demo account", zap.Error(err))
		}
	}

	// ----- Handlers -----
	cookieMaxAge := int(s.cfg.SessionTTL.Seconds())
	authHandlerInst := authHandler.NewAuthHandler(authService, s.cfg.SessionCookie, cookieMaxAge, logger)
	customerHandlerInst := customerHandler.NewCustomerHandler(customerService)
	technicianHandlerInst := technicianHandler.NewTechnicianHandler(technicianService)
	jobHandlerInst := jobHandler.NewJobHandler(jobService)
	invoiceHandlerInst := invoiceHandler.NewInvoiceHandler(invoiceService)
	inventoryHandlerInst := inventoryHandler.NewInventoryHandler(inventoryService)
	equipmentHandlerInst := equipmentHandler.NewEquipmentHandler(equipmentService)
	pricebookHandlerInst := pricebookHandler.NewPricebookHandler(pricebookService)
	dashboardHandlerInst := dashboardHandler.NewDashboardHandler(dashboardService)
	wsHandlerInst := wsHandler.NewWSHandler(hub, logger)

	// ----- Middlewares -----
	authMiddleware := middleware.NewAuthMiddleware(sessionManager, s.cfg.SessionCookie)
	tenantMiddleware := middleware.NewTenantMiddleware(resolver)

	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(),
	)

	// ----- Router -----
	handlers := &Handlers{
		AuthHandler:       authHandlerInst,
		CustomerHandler:   customerHandlerInst,
		TechnicianHandler: technicianHandlerInst,
		JobHandler:        jobHandlerInst,
		InvoiceHandler:    invoiceHandlerInst,
		InventoryHandler:  inventoryHandlerInst,
		EquipmentHandler:  equipmentHandlerInst,
		PricebookHandler:  pricebookHandlerInst,
		DashboardHandler:  dashboardHandlerInst,
		WSHandler:         wsHandlerInst,
		AuthMiddleware:    authMiddleware,
		TenantMiddleware:  tenantMiddleware,
	}
	SetupRouter(s.engine, handlers)

	// ----- Start HTTP -----
	log.Printf("server running on %s", s.cfg.HTTPAddr)
	return s.engine.Run(s.cfg.HTTPAddr)
}
