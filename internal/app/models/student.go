package models

// Student defines the student model based on the 'student' table
type Student struct {
	ID           int64    `json:"id" db:"student_id" example:"1"`
	FirstName    string   `json:"firstName" db:"first_name" example:"Ada"`
	LastName     string   `json:"lastName" db:"last_name" example:"Lovelace"`
	Email        *string  `json:"email,omitempty" db:"email" example:"ada@example.com"`
	IndustryTags []string `json:"industryTags" db:"industry_tags"`
	HomeAddress  *Address `json:"homeAddress,omitempty" db:"home_address"`
}

// FullName returns "First Last".
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// Address mirrors the 'address' composite type stored in student.home_address.
type Address struct {
	Street  *string `json:"street,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
	Country *string `json:"country,omitempty"`
}

// NewStudent carries the add-student form after validation.
type NewStudent struct {
	FirstName      string
	LastName       string
	Email          *string
	LocationID     int64
	ClubID         *int64
	IndustryID     *int64
	Company        *string
	GraduationYear *int
	Degree         string
	IndustryTags   []string
}
