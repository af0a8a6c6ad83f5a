// Package routes wires controllers to URL paths.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hostelops/washline/internal/app/controllers"
	"github.com/hostelops/washline/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	laundryController *controllers.LaundryController,
	itemController *controllers.ItemController,
	messageController *controllers.MessageController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}
	v1.GET("/hostels", studentController.ListHostels)

	// Authenticated routes
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	// Student-only routes
	studentOnly := authenticated.Group("")
	studentOnly.Use(authMiddleware.StudentRequired())
	{
		studentOnly.GET("/students/me", studentController.GetProfile)
		studentOnly.POST("/laundry", laundryController.Submit)
		studentOnly.GET("/laundry/history", laundryController.GetHistory)
		studentOnly.GET("/messages", messageController.ListMessages)
		studentOnly.POST("/complaints", messageController.FileComplaint)
		studentOnly.POST("/items", itemController.Post)
	}

	// Reading the lost-and-found board is open to any authenticated account
	authenticated.GET("/items/:tag", itemController.List)

	// Staff-only routes
	staffOnly := authenticated.Group("")
	staffOnly.Use(authMiddleware.StaffRequired())
	{
		staffOnly.GET("/students", studentController.GetStudentByEmail)
		staffOnly.GET("/laundry", laundryController.GetAll)
		staffOnly.PUT("/laundry/:id/status", laundryController.UpdateStatus)
		staffOnly.GET("/laundry/students/:rollNo", laundryController.GetStudentHistory)
		staffOnly.POST("/messages", messageController.Broadcast)
		staffOnly.GET("/messages/hostels/:hostelId", messageController.ListHostelMessages)
		staffOnly.GET("/complaints", messageController.ListComplaints)
	}
}
