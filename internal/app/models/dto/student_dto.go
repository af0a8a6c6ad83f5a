package dto

// StudentProfileResponse drives the student portal and pre-fills item posts
type StudentProfileResponse struct {
	ID                 int64  `json:"id"`
	Email              string `json:"email"`
	Name               string `json:"name"`
	RollNo             string `json:"rollNo"`
	HostelID           int64  `json:"hostelId"`
	HostelName         string `json:"hostelName"`
	RoomNo             string `json:"roomNo"`
	PhoneNo            string `json:"phoneNo"`
	LaundryOutstanding bool   `json:"laundryOutstanding"`
}

// HostelResponse is one hostel option
type HostelResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
