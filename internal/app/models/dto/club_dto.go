package dto

import (
	"strings"

	"github.com/yigit/gradmap/internal/app/models"
)

// CreateClubRequest is the add-club form (and JSON API body)
type CreateClubRequest struct {
	Name        string `form:"name" json:"name" binding:"required,notblank,max=100" example:"Robotics"`
	Category    string `form:"category" json:"category" binding:"omitempty,max=50" example:"Engineering"`
	Description string `form:"description" json:"description" example:"Builds robots for regional competitions"`
}

// ToModel converts the request into a club, defaulting category to Other.
func (r *CreateClubRequest) ToModel() *models.Club {
	category := strings.TrimSpace(r.Category)
	if category == "" {
		category = models.DefaultClubCategory
	}
	return &models.Club{
		Name:        strings.TrimSpace(r.Name),
		Category:    &category,
		Description: optionalString(r.Description),
	}
}

// ClubSearchQuery binds GET /search_clubs
type ClubSearchQuery struct {
	Q string `form:"q" binding:"max=200"`
}
