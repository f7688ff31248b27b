package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/controllers"
	"github.com/yigit/coursehub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public course routes ---
	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.GET("/search/:query", courseController.SearchCourses)
		courses.GET("/instructor/:instructorId", courseController.GetCoursesByInstructor)
	}

	// --- Authenticated course routes ---
	coursesProtected := v1.Group("/courses")
	coursesProtected.Use(authMiddleware.JWTAuth())
	{
		coursesProtected.POST("", courseController.CreateCourse)
		coursesProtected.PUT("/:id", courseController.UpdateCourse)
		coursesProtected.DELETE("/:id", courseController.DeleteCourse)
	}
}
