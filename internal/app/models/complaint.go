package models

import "time"

// Complaint is a student-to-staff message, append-only
type Complaint struct {
	ID      int64     `json:"id" db:"id"`
	RollNo  string    `json:"rollNo" db:"roll_no"`
	Body    string    `json:"body" db:"body"`
	FiledAt time.Time `json:"filedAt" db:"filed_at"`
}
