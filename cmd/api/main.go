package main

import (
	"context"
	"time"

	_ "carf-backend/api/swagger" // swagger docs

	"carf-backend/internal/config"
	"carf-backend/internal/database"
	"carf-backend/internal/drive"
	"carf-backend/internal/handler"
	"carf-backend/internal/middleware"
	"carf-backend/internal/repository"
	"carf-backend/internal/service"
	"carf-backend/internal/sheets"
	"carf-backend/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title           CARF Workflow API
// @version         1.0
// @description     Customer Activation Request Form backend: sheet-backed form rows, Drive attachments, four-level approval workflow, realtime notifications and group authorizations.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	logger, err := newLogger()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := database.NewConnection(cfg.DSN(), logger)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	logger.Info("connected to postgres")

	ctx := context.Background()
	sheetClient, err := sheets.NewGoogleClient(ctx, cfg.SpreadsheetID, []byte(cfg.GoogleCredentials))
	if err != nil {
		logger.Fatal("sheets client init failed", zap.Error(err))
	}
	driveClient, err := drive.NewGoogleClient(ctx, []byte(cfg.GoogleCredentials))
	if err != nil {
		logger.Fatal("drive client init failed", zap.Error(err))
	}

	formStore := sheets.NewFormStore(sheetClient, logger, cfg.CustomerSheet, cfg.EmailSheet)
	docStore := drive.NewDocumentStore(driveClient, logger, cfg.DriveRootFolderID)

	// Set up WebSocket Hub
	wsHub := websocket.NewHub(logger)
	go wsHub.Run()

	// Set up dependencies (Repository -> Service -> Handler)
	txManager := repository.NewTransactionManager(db)
	userRepo := repository.NewUserRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	outboxRepo := repository.NewOutboxRepository(db)
	authorizationRepo := repository.NewAuthorizationRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	referenceRepo := repository.NewReferenceRepository(db)

	userService := service.NewUserService(userRepo, middleware.GetJWTSecret())
	notificationService := service.NewNotificationService(notificationRepo)
	dispatcher := service.NewOutboxDispatcher(outboxRepo, notificationRepo, wsHub, logger)
	authorizationService := service.NewAuthorizationService(authorizationRepo, auditRepo, userRepo, txManager, logger)
	workflowService := service.NewWorkflowService(formStore, referenceRepo, outboxRepo, auditRepo, userRepo, txManager, logger)
	formService := service.NewFormService(formStore, referenceRepo, auditRepo, userRepo, logger)
	documentService := service.NewDocumentService(docStore, auditRepo, userRepo, logger)
	referenceService := service.NewReferenceService(referenceRepo)
	auditService := service.NewAuditService(auditRepo)

	// Initialize Handlers
	userHandler := handler.NewUserHandler(userService, authorizationService)
	formHandler := handler.NewFormHandler(formService)
	documentHandler := handler.NewDocumentHandler(documentService, logger)
	workflowHandler := handler.NewWorkflowHandler(workflowService, dispatcher, authorizationService, logger)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	authorizationHandler := handler.NewAuthorizationHandler(authorizationService)
	referenceHandler := handler.NewReferenceHandler(referenceService)
	auditHandler := handler.NewAuditHandler(auditService, authorizationService)

	// Set up Gin Router
	router := gin.Default()
	router.HandleMethodNotAllowed = true

	// The form frontend is served from changing origins; the API is open.
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowHeaders:    []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"},
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
	}))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, middleware.GetJWTSecret())
	})

	// Legacy sheet/drive endpoints at the root
	formHandler.RegisterLegacyRoutes(router)
	documentHandler.RegisterLegacyRoutes(router)

	// API Routing
	api := router.Group("/api")
	userHandler.RegisterRoutes(api)
	formHandler.RegisterRoutes(api)
	workflowHandler.RegisterRoutes(api)
	notificationHandler.RegisterRoutes(api)
	authorizationHandler.RegisterRoutes(api)
	referenceHandler.RegisterRoutes(api)
	auditHandler.RegisterRoutes(api)

	// Failed outbox entries retry on a slow sweep in the background.
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			if retried, err := dispatcher.RetryFailed(context.Background()); err != nil {
				logger.Warn("outbox retry sweep failed", zap.Error(err))
			} else if retried > 0 {
				logger.Info("outbox entries retried", zap.Int("count", retried))
			}
		}
	}()

	logger.Info("server listening", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

func newLogger() (*zap.Logger, error) {
	if gin.Mode() == gin.ReleaseMode {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
