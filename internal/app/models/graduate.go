package models

// GraduateFilter holds the optional equality filters of the home listing.
type GraduateFilter struct {
	ClubID *int64
	Year   *int
}

// Graduate is one row of the home listing: a student joined with their
// current residence, employment, membership and graduation record.
type Graduate struct {
	StudentID      int64   `json:"studentId"`
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Email          *string `json:"email,omitempty"`
	City           *string `json:"city,omitempty"`
	State          *string `json:"state,omitempty"`
	GraduationYear *int    `json:"graduationYear,omitempty"`
	Degree         *string `json:"degree,omitempty"`
	Honors         *string `json:"honors,omitempty"`
	Industry       *string `json:"industry,omitempty"`
	ClubID         *int64  `json:"clubId,omitempty"`
	Club           *string `json:"club,omitempty"`
	ClubCategory   *string `json:"clubCategory,omitempty"`
}

// LocationCount is one bucket of the location distribution.
type LocationCount struct {
	City         string  `json:"city"`
	State        *string `json:"state,omitempty"`
	StudentCount int64   `json:"studentCount"`
}

// IndustryCount is one bucket of the industry distribution.
type IndustryCount struct {
	Industry     string `json:"industry"`
	StudentCount int64  `json:"studentCount"`
}

// Statistics groups the distributions shown next to the graduate map.
type Statistics struct {
	Locations  []*LocationCount `json:"locations"`
	Industries []*IndustryCount `json:"industries"`
}
