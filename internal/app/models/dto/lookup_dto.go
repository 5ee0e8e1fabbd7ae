package dto

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yigit/gradmap/internal/app/models"
)

// CreateLocationRequest represents a new location
type CreateLocationRequest struct {
	City    string `json:"city" binding:"required,notblank,max=100" example:"Chicago"`
	State   string `json:"state" binding:"omitempty,max=50" example:"IL"`
	Country string `json:"country" binding:"omitempty,max=50" example:"USA"`
}

// ToModel converts the request, defaulting country to USA.
func (r *CreateLocationRequest) ToModel() *models.Location {
	country := strings.TrimSpace(r.Country)
	if country == "" {
		country = models.DefaultCountry
	}
	return &models.Location{
		City:    strings.TrimSpace(r.City),
		State:   optionalString(r.State),
		Country: &country,
	}
}

// CreateIndustryRequest represents a new industry
type CreateIndustryRequest struct {
	Name string `json:"name" binding:"required,notblank,max=100" example:"Finance"`
}

// GraduateFilterQuery binds the club_id and year filters. An empty value
// means no filter.
type GraduateFilterQuery struct {
	ClubID string `form:"club_id" binding:"omitempty,number"`
	Year   string `form:"year" binding:"omitempty,number"`
}

// ToModel converts the query into a repository filter.
func (q *GraduateFilterQuery) ToModel() (models.GraduateFilter, error) {
	var filter models.GraduateFilter
	clubID, err := optionalID(q.ClubID)
	if err != nil {
		return filter, fmt.Errorf("club_id: %w", err)
	}
	filter.ClubID = clubID
	if s := strings.TrimSpace(q.Year); s != "" {
		year, err := strconv.Atoi(s)
		if err != nil {
			return filter, fmt.Errorf("year: %w", err)
		}
		filter.Year = &year
	}
	return filter, nil
}

// IndexPage is the data rendered into index.html
type IndexPage struct {
	Username   string
	Clubs      []*models.Club
	Years      []int
	Graduates  []*models.Graduate
	ClubFilter *int64
	YearFilter *int
}
