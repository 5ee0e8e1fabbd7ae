package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/gradmap/internal/app/models"
	"github.com/yigit/gradmap/internal/app/models/dto"
	"github.com/yigit/gradmap/internal/app/services"
	"github.com/yigit/gradmap/internal/middleware"
)

// APIController serves the JSON API under /api/v1
type APIController struct {
	services *services.Services
}

// NewAPIController creates a new APIController
func NewAPIController(svc *services.Services) *APIController {
	return &APIController{services: svc}
}

// Health reports that the process is up. It does not touch the database.
func (c *APIController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// GetClubs lists every club by name
// @Summary List clubs
// @Tags clubs
// @Produce json
// @Security CookieAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Club} "Clubs retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Not signed in"
// @Failure 503 {object} dto.ErrorResponse "Database unavailable"
// @Router /clubs [get]
func (c *APIController) GetClubs(ctx *gin.Context) {
	conn, err := middleware.RequireConn(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	clubs, err := c.services.Clubs.GetAllClubs(ctx.Request.Context(), conn)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(clubs, "Clubs retrieved successfully"))
}

// CreateClub adds a club
// @Summary Create a club
// @Description Category defaults to Other when empty
// @Tags clubs
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param request body dto.CreateClubRequest true "Club information"
// @Success 201 {object} dto.APIResponse{data=models.Club} "Club created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Not signed in"
// @Failure 409 {object} dto.ErrorResponse "Club name already exists"
// @Router /clubs [post]
func (c *APIController) CreateClub(ctx *gin.Context) {
	var req dto.CreateClubRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondValidationError(ctx, err)
		return
	}
	conn, err := middleware.RequireConn(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	club, err := c.services.Clubs.CreateClub(ctx.Request.Context(), conn, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(club, "Club created successfully"))
}

// GetYears lists the distinct graduation years, newest first
// @Summary List graduation years
// @Tags graduates
// @Produce json
// @Security CookieAuth
// @Success 200 {object} dto.APIResponse{data=[]int} "Years retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Not signed in"
// @Router /years [get]
func (c *APIController) GetYears(ctx *gin.Context) {
	conn, err := middleware.RequireConn(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	years, err := c.services.Graduates.GetYears(ctx.Request.Context(), conn)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(years, "Years retrieved successfully"))
}

// GetLocations lists every location
// @Summary List locations
// @Tags lookups
// @Produce json
// @Security CookieAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Location} "Locations retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Not signed in"
// @Router /locations [get]
func (c *APIController) GetLocations(ctx *gin.Context) {
	conn, err := middleware.RequireConn(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	locations, err := c.services.Lookups.GetLocations(ctx.Request.Context(), conn)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(locations, "Locations retrieved successfully"))
}

// CreateLocation adds a location
// @Summary Create a location
// @Description Country defaults to USA when empty
// @Tags lookups
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param request body dto.CreateLocationRequest true "Location information"
// @Success 201 {object} dto.APIResponse{data=models.Location} "Location created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Not signed in"
// @Router /locations [post]
func (c *APIController) CreateLocation(ctx *gin.Context) {
	var req dto.CreateLocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondValidationError(ctx, err)
		return
	}
	conn, err := middleware.RequireConn(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	location, err := c.services.Lookups.CreateLocation(ctx.Request.Context(), conn, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(location, "Location created successfully"))
}

// GetIndustries lists every industry
// @Summary List industries
// @Tags lookups
// @Produce json
// @Security CookieAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Industry} "Industries retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Not signed in"
// @Router /industries [get]
func (c *APIController) GetIndustries(ctx *gin.Context) {
	conn, err := middleware.RequireConn(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	industries, err := c.services.Lookups.GetIndustries(ctx.Request.Context(), conn)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(industries, "Industries retrieved successfully"))
}

// CreateIndustry adds an industry
// @Summary Create an industry
// @Tags lookups
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param request body dto.CreateIndustryRequest true "Industry information"
// @Success 201 {object} dto.APIResponse{data=models.Industry} "Industry created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Not signed in"
// @Failure 409 {object} dto.ErrorResponse "Industry already exists"
// @Router /industries [post]
func (c *APIController) CreateIndustry(ctx *gin.Context) {
	var req dto.CreateIndustryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondValidationError(ctx, err)
		return
	}
	conn, err := middleware.RequireConn(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	industry, err := c.services.Lookups.CreateIndustry(ctx.Request.Context(), conn, &models.Industry{Name: req.Name})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(industry, "Industry created successfully"))
}

// GetGraduates lists graduates with a current residence
// @Summary List graduates
// @Tags graduates
// @Produce json
// @Security CookieAuth
// @Param club_id query int false "Filter by club ID"
// @Param year query int false "Filter by graduation year"
// @Success 200 {object} dto.APIResponse{data=[]models.Graduate} "Graduates retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Failure 401 {object} dto.ErrorResponse "Not signed in"
// @Router /graduates [get]
func (c *APIController) GetGraduates(ctx *gin.Context) {
	filter, ok := c.bindFilter(ctx)
	if !ok {
		return
	}
	conn, err := middleware.RequireConn(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	graduates, err := c.services.Graduates.GetGraduates(ctx.Request.Context(), conn, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(graduates, "Graduates retrieved successfully"))
}

// GetStatistics returns the location and industry distributions
// @Summary Graduate statistics
// @Tags graduates
// @Produce json
// @Security CookieAuth
// @Param club_id query int false "Filter by active club membership"
// @Param year query int false "Filter by graduation year"
// @Success 200 {object} dto.APIResponse{data=models.Statistics} "Statistics retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Failure 401 {object} dto.ErrorResponse "Not signed in"
// @Router /statistics [get]
func (c *APIController) GetStatistics(ctx *gin.Context) {
	filter, ok := c.bindFilter(ctx)
	if !ok {
		return
	}
	conn, err := middleware.RequireConn(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	stats, err := c.services.Graduates.GetStatistics(ctx.Request.Context(), conn, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats, "Statistics retrieved successfully"))
}

// GetStudents lists every student by last and first name
// @Summary List students
// @Tags students
// @Produce json
// @Security CookieAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Students retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Not signed in"
// @Router /students [get]
func (c *APIController) GetStudents(ctx *gin.Context) {
	conn, err := middleware.RequireConn(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	students, err := c.services.Students.GetAllStudents(ctx.Request.Context(), conn)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(students, "Students retrieved successfully"))
}

// CreateStudent adds a student with residence and optional links
// @Summary Create a student
// @Description Inserts the student, the current residence and the optional employment, membership and graduation rows in one transaction
// @Tags students
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=map[string]int64} "Student created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Not signed in"
// @Failure 409 {object} dto.ErrorResponse "Student email already exists"
// @Router /students [post]
func (c *APIController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondValidationError(ctx, err)
		return
	}
	conn, err := middleware.RequireConn(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	id, err := c.services.Students.AddStudent(ctx.Request.Context(), conn, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(gin.H{"id": id}, "Student created successfully"))
}

func (c *APIController) bindFilter(ctx *gin.Context) (models.GraduateFilter, bool) {
	var query dto.GraduateFilterQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		middleware.RespondValidationError(ctx, err)
		return models.GraduateFilter{}, false
	}
	filter, err := query.ToModel()
	if err != nil {
		middleware.HandleAPIError(ctx, formError(err))
		return models.GraduateFilter{}, false
	}
	return filter, true
}
