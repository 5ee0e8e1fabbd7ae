package models

// Location defines the 'location' table
type Location struct {
	ID      int64   `json:"id" db:"loc_id" example:"7"`
	City    string  `json:"city" db:"city" example:"Chicago"`
	State   *string `json:"state,omitempty" db:"state" example:"IL"`
	Country *string `json:"country,omitempty" db:"country" example:"USA"`
}

// Label renders "City, State" for dropdowns.
func (l *Location) Label() string {
	if l.State == nil || *l.State == "" {
		return l.City
	}
	return l.City + ", " + *l.State
}

// Industry defines the 'industry' table
type Industry struct {
	ID   int64  `json:"id" db:"industry_id" example:"2"`
	Name string `json:"name" db:"name" example:"Finance"`
}
