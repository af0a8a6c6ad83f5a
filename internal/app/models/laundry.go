package models

import "time"

// LaundryStatus is the lifecycle state of a bag instance
type LaundryStatus string

const (
	StatusReceived       LaundryStatus = "Received"
	StatusWashing        LaundryStatus = "Washing"
	StatusDrying         LaundryStatus = "Drying"
	StatusReadyToCollect LaundryStatus = "Ready to Collect"
)

// statusRank orders the lifecycle; transitions may only move to an equal or
// later rank (skips allowed, backward moves rejected).
var statusRank = map[LaundryStatus]int{
	StatusReceived:       0,
	StatusWashing:        1,
	StatusDrying:         2,
	StatusReadyToCollect: 3,
}

// Valid reports whether s is a known lifecycle status
func (s LaundryStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next respects the
// forward-only policy
func (s LaundryStatus) CanTransitionTo(next LaundryStatus) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	return to > from
}

// Terminal reports whether s is the end of the lifecycle
func (s LaundryStatus) Terminal() bool {
	return s == StatusReadyToCollect
}

// LaundryBag is one laundry drop-off's tracked record, from submission to
// collection. Rows are never deleted; they are the student's history.
type LaundryBag struct {
	ID              int64         `json:"id" db:"id"`
	BagAssignmentID int64         `json:"bagAssignmentId" db:"bag_assignment_id"`
	ClothesCount    int           `json:"clothesCount" db:"clothes_count" example:"12"`
	ReceivedDate    time.Time     `json:"receivedDate" db:"received_date"`
	HostelID        int64         `json:"hostelId" db:"hostel_id"`
	Status          LaundryStatus `json:"status" db:"status" example:"Received"`
	Note            string        `json:"note,omitempty" db:"note"`
	ReturnDate      *time.Time    `json:"returnDate,omitempty" db:"return_date"` // Set only on Ready to Collect
}

// LaundryBagDetail joins a bag with its owner and hostel for display
type LaundryBagDetail struct {
	LaundryBag
	RollNo       string `json:"rollNo"`
	StudentName  string `json:"studentName"`
	StudentEmail string `json:"studentEmail"`
	RoomNo       string `json:"roomNo"`
	PhoneNo      string `json:"phoneNo"`
	HostelName   string `json:"hostelName"`
	BagCode      string `json:"bagCode"`
}
