package models

import "time"

// Settings is the singleton record backing the checkout dropdowns.
type Settings struct {
	ID        int       `json:"id"`
	Classes   []string  `json:"classes"`
	Divisions []string  `json:"divisions"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultClasses and DefaultDivisions seed the settings row on first read.
var (
	DefaultClasses = []string{
		"Nursery", "LKG", "UKG",
		"1st", "2nd", "3rd", "4th", "5th",
		"6th", "7th", "8th", "9th", "10th",
	}
	DefaultDivisions = []string{"A", "B", "C", "D"}
)
