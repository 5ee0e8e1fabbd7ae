package models

import "time"

// Membership is a member_of row joined with its club.
type Membership struct {
	ClubID    int64      `json:"clubId"`
	ClubName  string     `json:"clubName"`
	Category  *string    `json:"category,omitempty"`
	JoinDate  *time.Time `json:"joinDate,omitempty"`
	LeaveDate *time.Time `json:"leaveDate,omitempty"`
}

// Active reports whether the membership has no leave date.
func (m *Membership) Active() bool {
	return m.LeaveDate == nil
}

// Residence is the current lives_in row joined with its location.
type Residence struct {
	Location  Location   `json:"location"`
	SinceDate *time.Time `json:"sinceDate,omitempty"`
}

// Employment is the current works_in row joined with its industry.
type Employment struct {
	Industry  Industry `json:"industry"`
	Company   *string  `json:"company,omitempty"`
	StartYear *int     `json:"startYear,omitempty"`
}

// Graduation is the graduated_in row.
type Graduation struct {
	Year   int     `json:"year"`
	Degree string  `json:"degree"`
	Honors *string `json:"honors,omitempty"`
}

// AlumniProfile is the composite view behind /alumni/:id.
type AlumniProfile struct {
	Student     Student       `json:"student"`
	Residence   *Residence    `json:"residence,omitempty"`
	Employment  *Employment   `json:"employment,omitempty"`
	Graduation  *Graduation   `json:"graduation,omitempty"`
	Memberships []*Membership `json:"memberships"`
}
