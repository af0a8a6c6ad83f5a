package dto

import "time"

// SubmitLaundryRequest carries a laundry drop-off
type SubmitLaundryRequest struct {
	ClothesCount int    `json:"clothesCount" binding:"required" example:"12"`
	Note         string `json:"note" example:"wash the woollens separately"`
}

// UpdateLaundryStatusRequest carries a staff status edit
type UpdateLaundryStatusRequest struct {
	Status string `json:"status" binding:"required" example:"Washing"`
}

// LaundryBagResponse is one history/overview row
type LaundryBagResponse struct {
	ID           int64      `json:"id"`
	BagCode      string     `json:"bagCode"`
	ClothesCount int        `json:"clothesCount"`
	ReceivedDate time.Time  `json:"receivedDate"`
	Status       string     `json:"status"`
	Note         string     `json:"note,omitempty"`
	ReturnDate   *time.Time `json:"returnDate,omitempty"`
	HostelName   string     `json:"hostelName"`
	StudentEmail string     `json:"studentEmail"`
	RollNo       string     `json:"rollNo"`
	StudentName  string     `json:"studentName,omitempty"`
	RoomNo       string     `json:"roomNo,omitempty"`
	PhoneNo      string     `json:"phoneNo,omitempty"`
}
