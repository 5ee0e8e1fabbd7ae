package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/gradmap/internal/app/models/dto"
	"github.com/yigit/gradmap/internal/app/services"
	"github.com/yigit/gradmap/internal/middleware"
)

// ClubController handles the add, search and delete club pages
type ClubController struct {
	clubService services.ClubService
	logger      zerolog.Logger
}

// NewClubController creates a new ClubController
func NewClubController(clubService services.ClubService, logger zerolog.Logger) *ClubController {
	return &ClubController{clubService: clubService, logger: logger}
}

// AddForm renders GET /add_club
func (c *ClubController) AddForm(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "add_club.html", dto.ClubFormPage{Username: middleware.CurrentUsername(ctx)})
}

// Add handles POST /add_club
func (c *ClubController) Add(ctx *gin.Context) {
	var req dto.CreateClubRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.renderForm(ctx, http.StatusBadRequest, dto.HandleValidationError(err).Message)
		return
	}

	conn, err := middleware.RequireConn(ctx)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}

	club, err := c.clubService.CreateClub(ctx.Request.Context(), conn, req.ToModel())
	if err != nil {
		resolved := middleware.ResolveError(err)
		if resolved.Status < http.StatusInternalServerError {
			c.renderForm(ctx, resolved.Status, resolved.Message)
			return
		}
		middleware.HandlePageError(ctx, err)
		return
	}

	c.logger.Info().Int64("clubId", club.ID).Str("name", club.Name).Msg("Club added")
	ctx.Redirect(http.StatusSeeOther, "/")
}

// Search renders GET /search_clubs, ranking by description match when q is
// set
func (c *ClubController) Search(ctx *gin.Context) {
	var query dto.ClubSearchQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		middleware.HandlePageError(ctx, formError(err))
		return
	}

	conn, err := middleware.RequireConn(ctx)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	clubs, err := c.clubService.SearchClubs(ctx.Request.Context(), conn, query.Q)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	ctx.HTML(http.StatusOK, "search_clubs.html", dto.ClubSearchPage{
		Username: middleware.CurrentUsername(ctx),
		Query:    query.Q,
		Clubs:    clubs,
	})
}

// Delete handles POST /delete_club/:id. A club with active members is
// refused with 400 and left untouched.
func (c *ClubController) Delete(ctx *gin.Context) {
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
	if err := c.clubService.DeleteClub(ctx.Request.Context(), conn, id); err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}

	c.logger.Info().Int64("clubId", id).Str("username", middleware.CurrentUsername(ctx)).Msg("Club deleted")
	ctx.Redirect(http.StatusSeeOther, "/search_clubs")
}

func (c *ClubController) renderForm(ctx *gin.Context, status int, message string) {
	ctx.HTML(status, "add_club.html", dto.ClubFormPage{
		Username: middleware.CurrentUsername(ctx),
		Error:    message,
	})
}
