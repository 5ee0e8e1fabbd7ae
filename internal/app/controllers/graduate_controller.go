package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/gradmap/internal/app/models/dto"
	"github.com/yigit/gradmap/internal/app/services"
	"github.com/yigit/gradmap/internal/middleware"
)

// GraduateController renders the home page listing
type GraduateController struct {
	graduateService services.GraduateService
	clubService     services.ClubService
}

// NewGraduateController creates a new GraduateController
func NewGraduateController(graduateService services.GraduateService, clubService services.ClubService) *GraduateController {
	return &GraduateController{graduateService: graduateService, clubService: clubService}
}

// Index renders GET / with the optional club_id and year filters
func (c *GraduateController) Index(ctx *gin.Context) {
	var query dto.GraduateFilterQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		middleware.HandlePageError(ctx, formError(err))
		return
	}
	filter, err := query.ToModel()
	if err != nil {
		middleware.HandlePageError(ctx, formError(err))
		return
	}

	conn, err := middleware.RequireConn(ctx)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}

	reqCtx := ctx.Request.Context()
	clubs, err := c.clubService.GetAllClubs(reqCtx, conn)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	years, err := c.graduateService.GetYears(reqCtx, conn)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	graduates, err := c.graduateService.GetGraduates(reqCtx, conn, filter)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}

	ctx.HTML(http.StatusOK, "index.html", dto.IndexPage{
		Username:   middleware.CurrentUsername(ctx),
		Clubs:      clubs,
		Years:      years,
		Graduates:  graduates,
		ClubFilter: filter.ClubID,
		YearFilter: filter.Year,
	})
}
