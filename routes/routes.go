package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"hostel-backend/controllers"
	"hostel-backend/middleware"
	"hostel-backend/models"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// registerValidators adds the bookdate format check (YYYY-MM-DD) used by
// booking payloads.
func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("bookdate", func(fl validator.FieldLevel) bool {
			_, err := time.Parse("2006-01-02", fl.Field().String())
			return err == nil
		})
	}
}

// SetupRouter wires controller instances onto the route tree.
func SetupRouter(
	bc *controllers.BookingController,
	mc *controllers.MembershipController,
	pc *controllers.PaymentController,
	cc *controllers.ChatController,
) *gin.Engine {
	registerValidators()

	r := gin.Default()

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		user := api.Group("/user")
		{
			user.POST("/register", controllers.RegisterUser)
			user.POST("/login", controllers.LoginUser)
		}

		owner := api.Group("/owner")
		{
			owner.POST("/register", controllers.RegisterOwner)
			owner.POST("/login", controllers.LoginOwner)

			// public hostel discovery
			owner.GET("/nearby", controllers.NearbyHostels)
			owner.GET("/:id", controllers.GetHostel)
			owner.GET("/:id/packages", controllers.GetHostelPackages)
		}

		booking := api.Group("/booking", middleware.Auth())
		{
			booking.POST("/addBooking", bc.AddBooking)
			booking.GET("/userBookings", bc.UserBookings)

			// accept/reject/list are hostel-side operations
			booking.GET("/getBookings", middleware.RequireRole(models.RoleAdmin, models.RoleOwner), bc.GetBookings)
			booking.POST("/acceptBooking", middleware.RequireRole(models.RoleAdmin, models.RoleOwner), bc.AcceptBooking)
			booking.POST("/rejectBooking", middleware.RequireRole(models.RoleAdmin, models.RoleOwner), bc.RejectBooking)
		}

		membership := api.Group("/membership", middleware.Auth())
		{
			membership.GET("/getMembership", mc.GetMembership)
			membership.POST("/extendMembership", mc.ExtendMembership)
		}

		payment := api.Group("/payment", middleware.Auth())
		{
			payment.POST("/record", pc.RecordPayment)
			payment.GET("/userPayments", pc.UserPayments)
		}

		chatGroup := api.Group("/chat", middleware.Auth())
		{
			chatGroup.GET("/ws", cc.Connect)
			chatGroup.GET("/history/:userID", cc.History)
			chatGroup.GET("/online/:userID", cc.Online)
		}

		ownerOnly := middleware.RequireRole(models.RoleOwner, models.RoleAdmin)

		rooms := api.Group("/room", middleware.Auth(), ownerOnly)
		{
			rooms.GET("", controllers.GetRooms)
			rooms.POST("", controllers.CreateRoom)
			rooms.PATCH("/:id", controllers.UpdateRoom)
			rooms.PUT("/:id", controllers.UpdateRoom)
			rooms.DELETE("/:id", controllers.DeleteRoom)
		}

		packages := api.Group("/package", middleware.Auth(), ownerOnly)
		{
			packages.GET("", controllers.GetPackages)
			packages.POST("", controllers.CreatePackage)
			packages.DELETE("/:id", controllers.DeletePackage)
		}

		deals := api.Group("/deal")
		{
			deals.GET("", controllers.GetDeals)
			deals.POST("", middleware.Auth(), ownerOnly, controllers.CreateDeal)
			deals.PATCH("/:id", middleware.Auth(), ownerOnly, controllers.UpdateDeal)
			deals.DELETE("/:id", middleware.Auth(), ownerOnly, controllers.DeleteDeal)
		}

		facilities := api.Group("/facility", middleware.Auth(), ownerOnly)
		{
			facilities.GET("", controllers.GetFacilities)
			facilities.POST("", controllers.CreateFacility)
			facilities.DELETE("/:id", controllers.DeleteFacility)
		}

		meals := api.Group("/meal", middleware.Auth(), ownerOnly)
		{
			meals.GET("", controllers.GetMeals)
			meals.POST("", controllers.CreateMeal)
			meals.DELETE("/:id", controllers.DeleteMeal)
		}

		gallery := api.Group("/gallery")
		{
			gallery.GET("", controllers.GetGallery)
			gallery.POST("", middleware.Auth(), ownerOnly, controllers.AddGalleryImage)
			gallery.DELETE("/:id", middleware.Auth(), ownerOnly, controllers.DeleteGalleryImage)
		}
	}

	return r
}
