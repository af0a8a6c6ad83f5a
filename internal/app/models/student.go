package models

// Student defines the student profile based on the 'students' table.
// LaundryOutstanding mirrors whether the student currently has a bag that has
// not yet reached "Ready to Collect"; it is flipped only by laundry
// submission and by the ready transition.
type Student struct {
	ID                 int64  `json:"id" db:"id"`
	UserID             int64  `json:"userId" db:"user_id"`
	RollNo             string `json:"rollNo" db:"roll_no" example:"ab123"`
	HostelID           int64  `json:"hostelId" db:"hostel_id"`
	RoomNo             string `json:"roomNo" db:"room_no" example:"502"`
	PhoneNo            string `json:"phoneNo" db:"phone_no" example:"9876543210"`
	LaundryOutstanding bool   `json:"laundryOutstanding" db:"laundry_outstanding"`

	// Relations (populated when needed)
	User   *User   `json:"user,omitempty"`
	Hostel *Hostel `json:"hostel,omitempty"`
}

// BagAssignment is the durable binding between a student and a physical bag,
// created once at registration and used only for lookup.
type BagAssignment struct {
	ID        int64  `json:"id" db:"id"`
	BagCode   string `json:"bagCode" db:"bag_code" example:"BAG-0042"`
	StudentID int64  `json:"studentId" db:"student_id"`
}
