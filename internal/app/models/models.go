package models

// Relationship rows are "current" while their end marker is NULL:
// member_of.leave_date, lives_in.until_date and works_in.end_year.

// DefaultDegree is recorded when a graduation year is given without a degree.
const DefaultDegree = "BS"

// DefaultCountry is used for new locations created without a country.
const DefaultCountry = "USA"
