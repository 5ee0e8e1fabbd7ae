package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/gradmap/internal/app/controllers"
	"github.com/yigit/gradmap/internal/middleware"
)

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Auth      *controllers.AuthController
	Graduates *controllers.GraduateController
	Students  *controllers.StudentController
	Clubs     *controllers.ClubController
	API       *controllers.APIController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctrl Controllers, authMiddleware *middleware.AuthMiddleware) {
	// --- Public routes ---
	router.GET("/login", ctrl.Auth.LoginPage)
	router.POST("/login", ctrl.Auth.Login)
	router.GET("/logout", ctrl.Auth.Logout)
	router.GET("/health", ctrl.API.Health)

	// --- HTML pages, session required ---
	pages := router.Group("")
	pages.Use(authMiddleware.RequireSession())
	{
		pages.GET("/", ctrl.Graduates.Index)

		pages.GET("/add_student", ctrl.Students.AddForm)
		pages.POST("/add_student", ctrl.Students.Add)
		pages.GET("/manage_students", ctrl.Students.Manage)
		pages.POST("/delete_student/:id", ctrl.Students.Delete)
		pages.GET("/alumni/:id", ctrl.Students.Profile)

		pages.GET("/add_club", ctrl.Clubs.AddForm)
		pages.POST("/add_club", ctrl.Clubs.Add)
		pages.GET("/search_clubs", ctrl.Clubs.Search)
		pages.POST("/delete_club/:id", ctrl.Clubs.Delete)
	}

	// --- JSON API, session required ---
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAPISession())
	{
		v1.GET("/clubs", ctrl.API.GetClubs)
		v1.POST("/clubs", ctrl.API.CreateClub)
		v1.GET("/years", ctrl.API.GetYears)
		v1.GET("/locations", ctrl.API.GetLocations)
		v1.POST("/locations", ctrl.API.CreateLocation)
		v1.GET("/industries", ctrl.API.GetIndustries)
		v1.POST("/industries", ctrl.API.CreateIndustry)
		v1.GET("/graduates", ctrl.API.GetGraduates)
		v1.GET("/statistics", ctrl.API.GetStatistics)
		v1.GET("/students", ctrl.API.GetStudents)
		v1.POST("/students", ctrl.API.CreateStudent)
	}
}
