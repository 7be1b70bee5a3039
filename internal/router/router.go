// Package router wires services, handlers and middleware into the HTTP API.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"rentfolio/internal/config"
	_ "rentfolio/internal/docs" // swagger docs
	apperrors "rentfolio/internal/errors"
	"rentfolio/internal/handlers"
	"rentfolio/internal/metrics"
	"rentfolio/internal/middleware"
	"rentfolio/internal/services"
)

// Services bundles the services behind the API.
type Services struct {
	Users        services.UserServicer
	Activities   services.ActivityServicer
	Properties   services.PropertyServicer
	Tenants      services.TenantServicer
	Transactions services.TransactionServicer
	Dashboard    services.DashboardServicer
	Snapshots    services.SnapshotServicer
}

// NewServices builds every service against db.
func NewServices(db *gorm.DB, cfg *config.Config) *Services {
	activities := services.NewActivityService(db)
	properties := services.NewPropertyService(db, activities)
	tenants := services.NewTenantService(db, properties, activities)
	transactions := services.NewTransactionService(db, properties, tenants, activities)
	dashboard := services.NewDashboardService(properties, tenants, transactions, activities, services.DashboardOptions{
		IncomeMonths: cfg.IncomeSeriesMonths,
		RecentLimit:  cfg.RecentActivityLimit,
	})

	return &Services{
		Users:        services.NewUserService(db),
		Activities:   activities,
		Properties:   properties,
		Tenants:      tenants,
		Transactions: transactions,
		Dashboard:    dashboard,
		Snapshots:    services.NewSnapshotService(db, dashboard),
	}
}

// New returns the Gin engine serving the API.
func New(cfg *config.Config, svc *Services, m *metrics.Metrics) *gin.Engine {
	authHandler := handlers.NewAuthHandler(svc.Users, cfg)
	propertyHandler := handlers.NewPropertyHandler(svc.Properties)
	tenantHandler := handlers.NewTenantHandler(svc.Tenants)
	transactionHandler := handlers.NewTransactionHandler(svc.Transactions)
	dashboardHandler := handlers.NewDashboardHandler(svc.Dashboard, svc.Snapshots, cfg.IncomeSeriesMonths)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.Metrics(m))
	router.Use(middleware.ErrorHandler())
	router.Use(cors())

	router.NoRoute(func(c *gin.Context) {
		middleware.RespondWithError(c, apperrors.ErrNotFound)
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(m.Handler()))
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	limiter := middleware.NewIPRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst)
	auth.POST("/register", middleware.RateLimit(limiter, m), authHandler.Register)
	auth.POST("/login", middleware.RateLimit(limiter, m), authHandler.Login)
	auth.GET("/me", middleware.AuthMiddleware(cfg), authHandler.Me)

	properties := v1.Group("/properties")
	properties.GET("", propertyHandler.GetProperties)
	properties.POST("", propertyHandler.CreateProperty)
	properties.GET("/types", propertyHandler.GetPropertyTypes)
	properties.GET("/:id", propertyHandler.GetPropertyByID)
	properties.PUT("/:id", propertyHandler.UpdateProperty)
	properties.DELETE("/:id", propertyHandler.DeleteProperty)

	tenants := v1.Group("/tenants")
	tenants.GET("", tenantHandler.GetTenants)
	tenants.POST("", tenantHandler.CreateTenant)
	tenants.GET("/:id", tenantHandler.GetTenantByID)
	tenants.PUT("/:id", tenantHandler.UpdateTenant)
	tenants.DELETE("/:id", tenantHandler.DeleteTenant)

	transactions := v1.Group("/transactions")
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("/categories", transactionHandler.GetCategories)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	dashboard := v1.Group("/dashboard")
	dashboard.GET("", dashboardHandler.GetOverview)
	dashboard.GET("/summary", dashboardHandler.GetSummary)
	dashboard.GET("/trends", dashboardHandler.GetTrends)
	dashboard.GET("/distributions/:partition", dashboardHandler.GetDistribution)
	dashboard.GET("/income", dashboardHandler.GetIncome)
	dashboard.GET("/activities", dashboardHandler.GetActivities)
	dashboard.GET("/properties", dashboardHandler.GetPropertyPerformance)
	dashboard.GET("/snapshots", dashboardHandler.GetSnapshots)
	dashboard.POST("/snapshots", middleware.PipelineAuthMiddleware(cfg.PipelineAPIKey), dashboardHandler.RecordSnapshot)

	return router
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
