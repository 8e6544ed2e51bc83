package handlers

import (
	"net/http"
	"time"

	"github.com/abtaheetaseen/Life-Drop-Server/middleware"
	"github.com/abtaheetaseen/Life-Drop-Server/models"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Routes builds the full router: CORS, the health probe, and every entity
// route behind its token/role guards.
func (h *Handler) Routes(allowedOrigins []string) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           5 * time.Minute,
	}))

	token := middleware.RequireToken(h.jwtSecret)
	admin := middleware.RequireRole(h.stores.Users, models.RoleAdmin)
	volunteer := middleware.RequireRole(h.stores.Users, models.RoleVolunteer)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "LIFE-DROP Server")
	})

	router.POST("/jwt", h.IssueToken)

	// users
	router.POST("/users", h.Register)
	router.GET("/allDonors", h.GetAllDonors)
	router.GET("/user", token, admin, h.GetUsers)
	router.GET("/user/admin/:email", token, admin, h.CheckAdmin)
	router.GET("/user/volunteer/:email", token, volunteer, h.CheckVolunteer)
	router.PATCH("/user/admin/make-volunteer/:id", token, admin, h.MakeVolunteer)
	router.PATCH("/user/admin/make-admin/:id", token, admin, h.MakeAdmin)
	router.PATCH("/user/admin/block-user/:id", token, admin, h.BlockUser)
	router.PATCH("/user/admin/unblock-user/:id", token, admin, h.UnblockUser)
	router.GET("/users", token, h.GetUserByEmail)
	router.PUT("/users/:id", token, h.UpdateUser)

	// donation requests
	router.POST("/donationRequest", h.CreateDonationRequest)
	router.GET("/donationRequest", h.GetDonationRequests)
	router.GET("/allDonationRequestForVolunteer", token, volunteer, h.GetDonationRequestsForVolunteer)
	router.GET("/donationRequests", token, admin, h.GetAllDonationRequests)
	router.PUT("/donationRequest/:id", token, h.ReplaceDonationRequest)
	router.PATCH("/donationRequest/:id", token, h.AssignDonor)
	router.PATCH("/donationRequest/doneStatus/:id", token, h.MarkDonationDone)
	router.PATCH("/donationRequest/canceledStatus/:id", token, h.MarkDonationCanceled)
	router.DELETE("/donationRequest/:id", token, h.DeleteDonationRequest)

	// reference tables
	router.GET("/divisions", h.GetDivisions)
	router.GET("/districts", h.GetDistricts)
	router.GET("/upazilas", h.GetUpazilas)

	// blogs
	router.POST("/blogs", token, admin, h.CreateBlog)
	router.GET("/blogs", token, admin, h.GetBlogs)
	router.DELETE("/blogs/:id", token, admin, h.DeleteBlog)
	router.PATCH("/blogs/publish/:id", token, admin, h.PublishBlog)
	router.PATCH("/blogs/draft/:id", token, admin, h.DraftBlog)
	router.POST("/blog", token, volunteer, h.CreateBlog)
	router.GET("/blog", token, volunteer, h.GetBlogs)
	router.GET("/publishedBlogs", h.GetPublishedBlogs)
	router.GET("/publishedBlogs/:id", h.GetPublishedBlogByID)

	// payments and stats
	router.POST("/payment", h.CreatePayment)
	router.GET("/payment", h.GetPayments)
	router.POST("/create-payment-intent", h.CreatePaymentIntent)
	router.GET("/totalUsersCount", token, admin, h.TotalUsersCount)
	router.GET("/totalPaymentCountForPagination", h.TotalPaymentCount)
	router.GET("/totalDonationRequestCount", token, h.TotalDonationRequestCount)
	router.GET("/totalDonationRequestCountUser", h.TotalDonationRequestCountForUser)
	router.GET("/admin-stats", token, admin, h.AdminStats)
	router.GET("/volunteer-stats", token, volunteer, h.VolunteerStats)

	return router
}
