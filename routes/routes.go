package routes

import (
	"github.com/gin-gonic/gin"

	"hostel-management-api/controllers"
	"hostel-management-api/middleware"
	"hostel-management-api/models"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			public.POST("/users/students/login", controllers.StudentLogin)
			public.POST("/users/admins/login", controllers.AdminLogin)

			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Hostel Management API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// User profile
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/change-password", controllers.ChangePassword)

			// Complaints
			complaints := protected.Group("/complaints")
			{
				complaints.POST("", controllers.CreateComplaint)
				complaints.GET("", controllers.GetComplaints)
				complaints.GET("/matric/:matricNo", controllers.GetComplaintsByMatricNo)
				complaints.GET("/:id", controllers.GetComplaintByID)

				// Only admin can change status/comment
				complaints.PUT("/:id", middleware.RequireRole(models.RoleAdmin), controllers.UpdateComplaint)
			}

			// Feedback
			feedbacks := protected.Group("/feedbacks")
			{
				feedbacks.POST("", controllers.CreateFeedback)
				feedbacks.GET("", controllers.GetFeedbacks)
				feedbacks.GET("/:id", controllers.GetFeedbackByID)

				feedbacks.POST("/reply", middleware.RequireRole(models.RoleAdmin), controllers.ReplyFeedback)
			}

			// Notifications
			notifications := protected.Group("/notifications")
			{
				notifications.GET("/:userId", controllers.GetNotifications)
				notifications.GET("/:userId/unread-count", controllers.GetNotificationCounter)
				notifications.PUT("/:id/read", controllers.MarkNotificationRead)
				notifications.PUT("/user/:userId/read-all", controllers.MarkAllNotificationsRead)
				notifications.DELETE("/:id", controllers.DeleteNotification)
				notifications.DELETE("/user/:userId", controllers.DeleteAllNotifications)
			}

			// Contact card
			contacts := protected.Group("/contacts")
			{
				contacts.GET("", controllers.GetContact)
				contacts.PUT("", middleware.RequireRole(models.RoleAdmin), controllers.UpdateContact)
			}

			// FAQs
			faqs := protected.Group("/faqs")
			{
				faqs.GET("", controllers.GetFaqs)
				faqs.POST("", middleware.RequireRole(models.RoleAdmin), controllers.CreateFaq)
				faqs.PUT("/:id", middleware.RequireRole(models.RoleAdmin), controllers.UpdateFaq)
				faqs.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), controllers.DeleteFaq)
			}
		}
	}
}
