package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"creator-kita.backend/internal/domain/entities"
	"creator-kita.backend/internal/interfaces/http/handlers"
	"creator-kita.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler    *handlers.AuthHandler
	creatorHandler *handlers.CreatorHandler
	brandHandler   *handlers.BrandHandler
	roleHandler    *handlers.RoleHandler
	kycHandler     *handlers.KYCHandler
	adminHandler   *handlers.AdminHandler
	authMiddleware gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID, Idempotency-Key")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "creator-kita-backend",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.RefreshToken)
			auth.POST("/logout", d.authHandler.Logout)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
			auth.POST("/change-password", d.authMiddleware, d.authHandler.ChangePassword)
		}

		// Public signups
		v1.POST("/creators/signup", d.creatorHandler.Signup)
		v1.POST("/brands/signup", d.brandHandler.Signup)

		// Creator routes (protected)
		creators := v1.Group("/creators")
		creators.Use(d.authMiddleware)
		{
			creators.GET("", middleware.RequirePermission("Creator Management", entities.PermissionActionView), d.creatorHandler.List)
			creators.GET("/:id", d.creatorHandler.Get)
			creators.PUT("/:id", d.creatorHandler.Update)
			creators.POST("/:id/approve", middleware.RequirePermission("Creator Management", entities.PermissionActionEdit), d.creatorHandler.Approve)
			creators.POST("/:id/reject", middleware.RequirePermission("Creator Management", entities.PermissionActionEdit), d.creatorHandler.Reject)
			creators.POST("/:id/deactivate", middleware.RequirePermission("Creator Management", entities.PermissionActionEdit), d.creatorHandler.Deactivate)
			creators.DELETE("/:id", middleware.RequirePermission("Creator Management", entities.PermissionActionDelete), d.creatorHandler.Delete)
		}

		// Brand routes (protected)
		brands := v1.Group("/brands")
		brands.Use(d.authMiddleware)
		{
			brands.GET("", middleware.RequirePermission("Brand Management", entities.PermissionActionView), d.brandHandler.List)
			brands.GET("/:id", d.brandHandler.Get)
			brands.PUT("/:id", d.brandHandler.Update)
			brands.POST("/:id/approve", middleware.RequirePermission("Brand Management", entities.PermissionActionEdit), d.brandHandler.Approve)
			brands.POST("/:id/reject", middleware.RequirePermission("Brand Management", entities.PermissionActionEdit), d.brandHandler.Reject)
			brands.POST("/:id/deactivate", middleware.RequirePermission("Brand Management", entities.PermissionActionEdit), d.brandHandler.Deactivate)
			brands.DELETE("/:id", middleware.RequirePermission("Brand Management", entities.PermissionActionDelete), d.brandHandler.Delete)
		}

		// KYC routes (protected). Owner-scoped operations authorize in
		// the usecase; reviewer operations are permission-gated here.
		kyc := v1.Group("/kyc")
		kyc.Use(d.authMiddleware)
		{
			kyc.POST("/documents", middleware.IdempotencyMiddleware(), d.kycHandler.Upload)
			kyc.GET("/documents", d.kycHandler.ListMine)
			kyc.PUT("/documents/:id", d.kycHandler.Update)
			kyc.DELETE("/documents/:id", d.kycHandler.Delete)
			kyc.GET("/documents/:id/download", d.kycHandler.Download)
			kyc.GET("/documents/:id/number", d.kycHandler.RevealNumber)
			kyc.GET("/profile", d.kycHandler.Profile)

			kyc.POST("/documents/:id/verify", middleware.RequirePermission("Creator Management", entities.PermissionActionEdit), d.kycHandler.Verify)
			kyc.POST("/documents/:id/reviews", middleware.RequirePermission("Creator Management", entities.PermissionActionView), d.kycHandler.AddReview)
			kyc.GET("/documents/:id/reviews", middleware.RequirePermission("Creator Management", entities.PermissionActionView), d.kycHandler.ListReviews)
			kyc.GET("/queue", middleware.RequirePermission("Creator Management", entities.PermissionActionView), d.kycHandler.Queue)
			kyc.GET("/users/:id/profile", middleware.RequirePermission("Creator Management", entities.PermissionActionView), d.kycHandler.UserProfile)
		}

		// Role routes (admin only)
		roles := v1.Group("/roles")
		roles.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			roles.POST("", d.roleHandler.Create)
			roles.GET("", d.roleHandler.List)
			roles.GET("/permissions", d.roleHandler.PermissionOptions)
			roles.GET("/user-types", d.adminHandler.ListUserTypes)
			roles.GET("/:id", d.roleHandler.Get)
			roles.PUT("/:id", d.roleHandler.Update)
			roles.DELETE("/:id", d.roleHandler.Delete)
		}

		// Admin routes (protected)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.GET("/stats", d.adminHandler.Stats)
			admin.GET("/users", d.adminHandler.ListUsers)
			admin.GET("/users/:id", d.adminHandler.GetUser)
			admin.POST("/users/:id/activate", d.adminHandler.ActivateUser)
			admin.POST("/users/:id/deactivate", d.adminHandler.DeactivateUser)
			admin.DELETE("/users/:id", d.adminHandler.DeleteUser)
			admin.GET("/user-types", d.adminHandler.ListUserTypes)
		}
	}
}
