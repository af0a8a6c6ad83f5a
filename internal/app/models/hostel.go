package models

// Hostel defines a housing unit, the addressing unit for broadcasts and bag
// assignment
type Hostel struct {
	ID   int64  `json:"id" db:"id" example:"1"`
	Name string `json:"name" db:"name" example:"Hostel 2B"`
}
