package dto

import "time"

// BroadcastRequest carries a staff announcement to one hostel
type BroadcastRequest struct {
	HostelID int64  `json:"hostelId" binding:"required" example:"1"`
	Body     string `json:"body" binding:"required" example:"Machines offline on Sunday morning"`
}

// MessageResponse is one announcement as seen by students
type MessageResponse struct {
	ID          int64     `json:"id"`
	HostelID    int64     `json:"hostelId"`
	Body        string    `json:"body"`
	SenderEmail string    `json:"senderEmail"`
	SentAt      time.Time `json:"sentAt"`
}

// FileComplaintRequest carries a student complaint
type FileComplaintRequest struct {
	Body string `json:"body" binding:"required" example:"Clothes returned damp last week"`
}

// ComplaintResponse is one complaint as seen by staff
type ComplaintResponse struct {
	ID      int64     `json:"id"`
	RollNo  string    `json:"rollNo"`
	Body    string    `json:"body"`
	FiledAt time.Time `json:"filedAt"`
}
