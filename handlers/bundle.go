package handlers

import (
	userRepo "bookbarn/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates everything the route registrar needs: the handler
// functions plus the user repository the role gates close over.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	// Auth / users.
	JWTHandler        gin.HandlerFunc
	CreateUserHandler gin.HandlerFunc
	Me                gin.HandlerFunc
	GetAllUsers       gin.HandlerFunc
	IsAdminHandler    gin.HandlerFunc
	IsSellerHandler   gin.HandlerFunc
	IsVerifiedHandler gin.HandlerFunc
	VerifyUserHandler gin.HandlerFunc
	DeleteUserHandler gin.HandlerFunc

	// Catalog.
	GetCategories       gin.HandlerFunc
	GetCategory         gin.HandlerFunc
	CreateProduct       gin.HandlerFunc
	GetProductsByTitle  gin.HandlerFunc
	GetCategoryProducts gin.HandlerFunc
	MyProducts          gin.HandlerFunc
	GetAdvertised       gin.HandlerFunc
	AdvertiseProduct    gin.HandlerFunc
	DeleteProduct       gin.HandlerFunc
	CreateReview        gin.HandlerFunc
	GetReviews          gin.HandlerFunc

	// Bookings.
	CreateBooking  gin.HandlerFunc
	GetBookings    gin.HandlerFunc
	GetBookingByID gin.HandlerFunc
	ReportBooking  gin.HandlerFunc
	GetReported    gin.HandlerFunc
	DeleteBooking  gin.HandlerFunc

	// Payments.
	CreatePaymentIntent gin.HandlerFunc
	RecordPayment       gin.HandlerFunc
}
