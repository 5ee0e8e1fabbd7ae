package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/gradmap/internal/app/models/dto"
	"github.com/yigit/gradmap/internal/app/services"
	"github.com/yigit/gradmap/internal/middleware"
	"github.com/yigit/gradmap/internal/pkg/apperrors"
)

// StudentController handles the add, manage, delete and profile pages
type StudentController struct {
	studentService services.StudentService
	lookupService  services.LookupService
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService, lookupService services.LookupService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentService: studentService,
		lookupService:  lookupService,
		logger:         logger,
	}
}

// AddForm renders GET /add_student
func (c *StudentController) AddForm(ctx *gin.Context) {
	c.renderForm(ctx, http.StatusOK, "")
}

// Add handles POST /add_student
func (c *StudentController) Add(ctx *gin.Context) {
	var form dto.CreateStudentForm
	if err := ctx.ShouldBind(&form); err != nil {
		c.renderForm(ctx, http.StatusBadRequest, dto.HandleValidationError(err).Message)
		return
	}
	student, err := form.ToModel()
	if err != nil {
		c.renderForm(ctx, http.StatusBadRequest, "Invalid selection: "+err.Error())
		return
	}

	conn, err := middleware.RequireConn(ctx)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}

	id, err := c.studentService.AddStudent(ctx.Request.Context(), conn, student)
	if err != nil {
		resolved := middleware.ResolveError(err)
		if resolved.Status < http.StatusInternalServerError {
			c.renderForm(ctx, resolved.Status, resolved.Message)
			return
		}
		middleware.HandlePageError(ctx, err)
		return
	}

	c.logger.Info().Int64("studentId", id).Str("username", middleware.CurrentUsername(ctx)).Msg("Student added")
	ctx.Redirect(http.StatusSeeOther, "/")
}

// Manage renders GET /manage_students
func (c *StudentController) Manage(ctx *gin.Context) {
	conn, err := middleware.RequireConn(ctx)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	students, err := c.studentService.GetAllStudents(ctx.Request.Context(), conn)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	ctx.HTML(http.StatusOK, "manage_students.html", dto.StudentListPage{
		Username: middleware.CurrentUsername(ctx),
		Students: students,
	})
}

// Delete handles POST /delete_student/:id
func (c *StudentController) Delete(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	conn, err := middleware.RequireConn(ctx)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	if err := c.studentService.DeleteStudent(ctx.Request.Context(), conn, id); err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}

	c.logger.Info().Int64("studentId", id).Str("username", middleware.CurrentUsername(ctx)).Msg("Student deleted")
	ctx.Redirect(http.StatusSeeOther, "/manage_students")
}

// Profile renders GET /alumni/:id
func (c *StudentController) Profile(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandlePageError(ctx, apperrors.ErrStudentNotFound)
		return
	}
	conn, err := middleware.RequireConn(ctx)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	profile, err := c.studentService.GetProfile(ctx.Request.Context(), conn, id)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	ctx.HTML(http.StatusOK, "alumni.html", dto.ProfilePage{
		Username: middleware.CurrentUsername(ctx),
		Profile:  profile,
	})
}

// renderForm loads the dropdowns and renders add_student.html with an
// optional error message.
func (c *StudentController) renderForm(ctx *gin.Context, status int, message string) {
	conn, err := middleware.RequireConn(ctx)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	options, err := c.lookupService.GetFormOptions(ctx.Request.Context(), conn)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	ctx.HTML(status, "add_student.html", dto.StudentFormPage{
		Username:   middleware.CurrentUsername(ctx),
		Clubs:      options.Clubs,
		Locations:  options.Locations,
		Industries: options.Industries,
		Error:      message,
	})
}
