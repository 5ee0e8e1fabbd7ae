package dto

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yigit/gradmap/internal/app/models"
)

// CreateStudentForm is the add-student HTML form. Optional selects post an
// empty string for "none", so they are bound as strings and parsed in
// ToModel.
type CreateStudentForm struct {
	FirstName      string `form:"first_name" binding:"required,notblank,max=50"`
	LastName       string `form:"last_name" binding:"required,notblank,max=50"`
	Email          string `form:"email" binding:"omitempty,email,max=100"`
	LocationID     int64  `form:"location_id" binding:"required,gt=0"`
	ClubID         string `form:"club_id" binding:"omitempty,number"`
	IndustryID     string `form:"industry_id" binding:"omitempty,number"`
	GraduationYear string `form:"graduation_year" binding:"omitempty,number,len=4"`
	Degree         string `form:"degree" binding:"omitempty,max=20"`
	Company        string `form:"company" binding:"omitempty,max=100"`
	IndustryTags   string `form:"industry_tags"`
}

// ToModel converts the form into a models.NewStudent with defaults applied.
func (f *CreateStudentForm) ToModel() (*models.NewStudent, error) {
	clubID, err := optionalID(f.ClubID)
	if err != nil {
		return nil, fmt.Errorf("club_id: %w", err)
	}
	industryID, err := optionalID(f.IndustryID)
	if err != nil {
		return nil, fmt.Errorf("industry_id: %w", err)
	}
	var year *int
	if s := strings.TrimSpace(f.GraduationYear); s != "" {
		y, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("graduation_year: %w", err)
		}
		year = &y
	}
	return newStudent(f.FirstName, f.LastName, f.Email, f.LocationID, clubID, industryID,
		year, f.Degree, f.Company, ParseTagList(f.IndustryTags)), nil
}

// CreateStudentRequest is the JSON API body for POST /api/v1/students
type CreateStudentRequest struct {
	FirstName      string   `json:"firstName" binding:"required,notblank,max=50" example:"Ada"`
	LastName       string   `json:"lastName" binding:"required,notblank,max=50" example:"Lovelace"`
	Email          string   `json:"email" binding:"omitempty,email,max=100" example:"ada@example.com"`
	LocationID     int64    `json:"locationId" binding:"required,gt=0" example:"1"`
	ClubID         *int64   `json:"clubId,omitempty" binding:"omitempty,gt=0" example:"2"`
	IndustryID     *int64   `json:"industryId,omitempty" binding:"omitempty,gt=0" example:"3"`
	GraduationYear *int     `json:"graduationYear,omitempty" binding:"omitempty,min=1900,max=2100" example:"2020"`
	Degree         string   `json:"degree" binding:"omitempty,max=20" example:"BS"`
	Company        string   `json:"company" binding:"omitempty,max=100" example:"Initech"`
	IndustryTags   []string `json:"industryTags"`
}

// ToModel converts the request into a models.NewStudent with defaults applied.
func (r *CreateStudentRequest) ToModel() *models.NewStudent {
	return newStudent(r.FirstName, r.LastName, r.Email, r.LocationID, r.ClubID, r.IndustryID,
		r.GraduationYear, r.Degree, r.Company, ParseTagList(strings.Join(r.IndustryTags, ",")))
}

func newStudent(first, last, email string, locationID int64, clubID, industryID *int64,
	year *int, degree, company string, tags []string) *models.NewStudent {
	degree = strings.TrimSpace(degree)
	if degree == "" {
		degree = models.DefaultDegree
	}
	return &models.NewStudent{
		FirstName:      strings.TrimSpace(first),
		LastName:       strings.TrimSpace(last),
		Email:          optionalString(email),
		LocationID:     locationID,
		ClubID:         clubID,
		IndustryID:     industryID,
		Company:        optionalString(company),
		GraduationYear: year,
		Degree:         degree,
		IndustryTags:   tags,
	}
}

// ParseTagList splits a comma-separated tag field, dropping blanks and
// duplicates while keeping first-seen order.
func ParseTagList(raw string) []string {
	tags := []string{}
	seen := map[string]bool{}
	for _, part := range strings.Split(raw, ",") {
		tag := strings.TrimSpace(part)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func optionalID(s string) (*int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, fmt.Errorf("must be positive")
	}
	return &id, nil
}

// StudentFormPage is the data rendered into add_student.html
type StudentFormPage struct {
	Username   string
	Clubs      []*models.Club
	Locations  []*models.Location
	Industries []*models.Industry
	Error      string
}
