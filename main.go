package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jeevanM12/Embiodary/internal/config"
	"github.com/jeevanM12/Embiodary/internal/gemini"
	"github.com/jeevanM12/Embiodary/internal/handlers"
	"github.com/jeevanM12/Embiodary/internal/middleware"
	"github.com/jeevanM12/Embiodary/internal/models"
	"github.com/jeevanM12/Embiodary/internal/store"
)

func main() {
	config.Load()

	logger := zap.Must(zap.NewProduction())
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	st := store.New(logger)
	st.Seed()

	ai := gemini.NewClient(config.AppEnv.GeminiAPIKey, logger)

	secret := config.AppEnv.JWTSecret
	ttl := config.AppEnv.AccessTokenTTL
	uploadDir := config.AppEnv.UploadDir

	r := gin.New()
	r.Use(middleware.RequestLogger(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  config.AppEnv.AllowedOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Disposition"},
	}))

	r.Static("/uploads", uploadDir)

	// storefront
	r.GET("/designs", handlers.GetDesigns(st))
	r.GET("/designs/:id", handlers.GetDesign(st))
	r.GET("/portfolio", handlers.GetPortfolio(st))
	r.GET("/offers", handlers.GetOffers(st))
	r.GET("/notifications", handlers.GetNotifications(st))
	r.DELETE("/notifications/:id", handlers.DismissNotification(st))

	// session
	r.POST("/auth/login", handlers.Login(st, secret, ttl))
	r.POST("/auth/logout", handlers.Logout(st))

	// orders: placement is open to guests, reads are scoped to the
	// session identity inside the handlers
	r.POST("/orders", handlers.CreateOrder(st))
	r.GET("/orders", handlers.GetOrders(st))
	r.GET("/orders/:id", handlers.GetOrder(st))
	r.POST("/orders/:id/messages", handlers.SendMessage(st))
	r.POST("/orders/:id/payment-proof", handlers.UploadPaymentProof(st, uploadDir))

	// AI design preview for the custom order wizard
	r.POST("/designs/generate", handlers.GenerateDesign(ai))

	staff := r.Group("/staff/api")
	staff.Use(middleware.RoleGuard(secret, models.RoleAdmin, models.RoleEmployee))
	{
		staff.PUT("/orders/:id/status", handlers.UpdateOrderStatus(st))
		staff.PUT("/orders/:id/payment", handlers.VerifyPayment(st))
		staff.POST("/orders/:id/qr", handlers.UploadQR(st, uploadDir))
	}

	admin := r.Group("/admin/api")
	admin.Use(middleware.RoleGuard(secret, models.RoleAdmin))
	{
		admin.GET("/me", func(c *gin.Context) {
			c.JSON(200, gin.H{"ok": true})
		})

		admin.POST("/designs", handlers.CreateDesign(st, uploadDir))
		admin.DELETE("/designs/:id", handlers.DeleteDesign(st))

		admin.GET("/employees", handlers.GetEmployees(st))
		admin.POST("/employees", handlers.CreateEmployee(st))
		admin.DELETE("/employees/:id", handlers.DeleteEmployee(st))

		admin.PUT("/orders/:id/assign", handlers.AssignEmployee(st))

		admin.POST("/offers", handlers.CreateOffer(st))
		admin.DELETE("/offers/:id", handlers.DeleteOffer(st))

		admin.GET("/logs", handlers.GetActionLogs(st))
		admin.GET("/analytics", handlers.GetAnalytics(st))
		admin.GET("/analytics/export", handlers.ExportRevenueCSV(st))
		admin.POST("/advisor", handlers.Advise(ai))
	}

	addr := ":" + config.AppEnv.Port
	logger.Info("server starting", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
