package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gramseva/gramseva-backend/constants"
	"github.com/gramseva/gramseva-backend/handlers"
	"github.com/gramseva/gramseva-backend/middleware"
)

func SetupRoutes(h *handlers.HandlerManager, db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API is running...")
	})

	api := r.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("/register", h.AuthenticationHandler.Register)
			users.POST("/login", h.AuthenticationHandler.Login)

			profile := users.Group("/profile")
			profile.Use(middleware.AuthMiddleware(db))
			{
				profile.GET("", h.UserHandler.GetProfile)
				profile.PUT("", h.UserHandler.UpdateProfile)
			}

			admin := users.Group("/admin")
			admin.Use(middleware.AuthMiddleware(db), middleware.RoleAuthorization(constants.RoleAdmin))
			{
				admin.GET("/residents", h.UserHandler.GetResidents)
				admin.GET("/residents/:id", h.UserHandler.GetResidentByID)
				admin.PUT("/residents/:id", h.UserHandler.UpdateResident)
				admin.DELETE("/residents/:id", h.UserHandler.DeleteResident)
			}
		}

		organizations := api.Group("/organizations")
		{
			organizations.POST("/register", h.OrganizationHandler.RegisterOrganization)
			organizations.GET("", h.OrganizationHandler.ListOrganizations)
		}

		complaints := api.Group("/complaints")
		complaints.Use(middleware.AuthMiddleware(db))
		{
			complaints.POST("", h.ComplaintHandler.CreateComplaint)
			complaints.GET("/mycomplaints", h.ComplaintHandler.GetMyComplaints)
			complaints.GET("/mystats", h.ComplaintHandler.GetMyStats)
			complaints.GET("/community", h.ComplaintHandler.GetCommunityComplaints)

			admin := complaints.Group("/admin")
			admin.Use(middleware.RoleAuthorization(constants.RoleAdmin))
			{
				admin.GET("", h.ComplaintHandler.GetComplaintsForAdmin)
				admin.GET("/stats", h.ComplaintHandler.GetAdminStats)
				admin.PUT("/:id/status", h.ComplaintHandler.UpdateStatus)
			}

			complaints.PUT("/:id/vote", h.ComplaintHandler.CastVote)
			complaints.GET("/:id", h.ComplaintHandler.GetComplaintByID)
			complaints.PUT("/:id", h.ComplaintHandler.UpdateComplaint)
			complaints.DELETE("/:id", h.ComplaintHandler.DeleteComplaint)
		}

		announcements := api.Group("/announcements")
		announcements.Use(middleware.AuthMiddleware(db))
		{
			announcements.GET("", h.AnnouncementHandler.GetAnnouncements)

			admin := announcements.Group("")
			admin.Use(middleware.RoleAuthorization(constants.RoleAdmin))
			{
				admin.POST("", h.AnnouncementHandler.CreateAnnouncement)
				admin.GET("/admin", h.AnnouncementHandler.GetAnnouncements)
				admin.DELETE("/:id", h.AnnouncementHandler.DeleteAnnouncement)
			}
		}

		upload := api.Group("/upload")
		upload.Use(middleware.AuthMiddleware(db))
		{
			upload.POST("", h.UploadHandler.UploadImage)
		}
	}

	return r
}
