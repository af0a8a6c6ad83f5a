package models

import "time"

// HostelMessage is a staff-to-hostel announcement, append-only
type HostelMessage struct {
	ID          int64     `json:"id" db:"id"`
	HostelID    int64     `json:"hostelId" db:"hostel_id"`
	Body        string    `json:"body" db:"body"`
	SenderEmail string    `json:"senderEmail" db:"sender_email"`
	SentAt      time.Time `json:"sentAt" db:"sent_at"`
}
