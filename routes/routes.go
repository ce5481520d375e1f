package routes

import (
	"net/http"
	"time"

	"bookbarn/handlers"
	"bookbarn/middleware"
	"bookbarn/models"
	"bookbarn/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers category, product and review endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/categories", hb.GetCategories)
	r.GET("/categories/:id", hb.GetCategory)
	r.GET("/categories/:id/products", hb.GetCategoryProducts)

	// Static segment registered before the parameterised one; gin resolves
	// /products/advertised to the shelf, everything else to a title filter.
	r.GET("/products/advertised", hb.GetAdvertised)
	r.GET("/products/:titleName", hb.GetProductsByTitle)

	seller := r.Group("")
	seller.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole(hb.UserRepo, models.RoleSeller))
	seller.POST("/products", hb.CreateProduct)
	seller.PUT("/products/advertised/:id", hb.AdvertiseProduct)
	seller.DELETE("/products/:id", hb.DeleteProduct)

	guarded := r.Group("")
	guarded.Use(middleware.JWTAuthMiddleware())
	guarded.GET("/myProducts", hb.MyProducts)
	guarded.POST("/reviews", hb.CreateReview)

	r.GET("/reviews", hb.GetReviews)
}

// RegisterBookingRoutes registers booking lifecycle and report endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/bookings", hb.CreateBooking)
	r.GET("/bookings/reported", hb.GetReported)
	r.GET("/bookings/:id", hb.GetBookingByID)
	r.PUT("/bookings/reported/:id", hb.ReportBooking)

	guarded := r.Group("")
	guarded.Use(middleware.JWTAuthMiddleware())
	guarded.GET("/bookings", hb.GetBookings)

	admin := r.Group("")
	admin.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole(hb.UserRepo, models.RoleAdmin))
	admin.DELETE("/bookings/reported/:id", hb.DeleteBooking)
}

// RegisterUserRoutes registers account, role-probe and token endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/jwt", hb.JWTHandler)
	r.POST("/users", hb.CreateUserHandler)

	me := r.Group("")
	me.Use(middleware.JWTAuthMiddleware())
	me.GET("/me", hb.Me)

	r.GET("/users/admin/:email", hb.IsAdminHandler)
	r.GET("/users/seller/:email", hb.IsSellerHandler)
	r.GET("/users/verify/:email", hb.IsVerifiedHandler)

	admin := r.Group("")
	admin.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole(hb.UserRepo, models.RoleAdmin))
	admin.GET("/users", hb.GetAllUsers)
	admin.PUT("/users/verified/:id", hb.VerifyUserHandler)
	admin.PUT("/users/sellers/verified/:id", hb.VerifyUserHandler)
	admin.DELETE("/users/:id", hb.DeleteUserHandler)
	admin.DELETE("/users/sellers/:id", hb.DeleteUserHandler)
	admin.DELETE("/users/buyers/:id", hb.DeleteUserHandler)
}

// RegisterPaymentRoutes registers the payment endpoints behind the guard.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	guarded := r.Group("")
	guarded.Use(middleware.JWTAuthMiddleware())
	guarded.POST("/create-payment-intent", hb.CreatePaymentIntent)
	guarded.POST("/payments", hb.RecordPayment)
}

// RegisterHealthRoute registers a health-check endpoint and the banner.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Books server is running..")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes wires CORS and all route groups onto the engine.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.NoRoute(func(c *gin.Context) {
		utils.JSONError(c, http.StatusNotFound, "Not Found", c.Request.URL.Path)
	})

	RegisterHealthRoute(r)
	RegisterUserRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
}
