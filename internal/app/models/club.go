package models

// DefaultClubCategory is used when the add-club form leaves category empty.
const DefaultClubCategory = "Other"

// Club defines the club model based on the 'club' table
type Club struct {
	ID          int64   `json:"id" db:"club_id" example:"3"`
	Name        string  `json:"name" db:"name" example:"Robotics"`
	Category    *string `json:"category,omitempty" db:"category" example:"Engineering"`
	Description *string `json:"description,omitempty" db:"description"`
	// Rank is only set by full-text search.
	Rank *float32 `json:"rank,omitempty" db:"rank"`
}
