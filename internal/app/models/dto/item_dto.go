package dto

import "time"

// PostItemRequest is bound from the multipart form; the image arrives as the
// "image" file field alongside it
type PostItemRequest struct {
	Tag         string `form:"tag" binding:"required,oneof=lost found" example:"lost"`
	Description string `form:"description" binding:"required" example:"blue backpack"`
}

// ItemResponse is one board entry
type ItemResponse struct {
	ID          int64     `json:"id"`
	Tag         string    `json:"tag"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	RollNo      string    `json:"rollNo"`
	HostelID    int64     `json:"hostelId"`
	RoomNo      string    `json:"roomNo"`
	PhoneNo     string    `json:"phoneNo"`
	CreatedAt   time.Time `json:"createdAt"`
}
