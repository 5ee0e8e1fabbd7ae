package dto

import "github.com/yigit/gradmap/internal/app/models"

// ClubFormPage is the data rendered into add_club.html
type ClubFormPage struct {
	Username string
	Error    string
}

// ClubSearchPage is the data rendered into search_clubs.html
type ClubSearchPage struct {
	Username string
	Query    string
	Clubs    []*models.Club
}

// StudentListPage is the data rendered into manage_students.html
type StudentListPage struct {
	Username string
	Students []*models.Student
}

// ProfilePage is the data rendered into alumni.html
type ProfilePage struct {
	Username string
	Profile  *models.AlumniProfile
}
