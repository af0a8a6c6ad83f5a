package models

import "time"

// ItemTag partitions the lost-and-found board
type ItemTag string

const (
	TagLost  ItemTag = "lost"
	TagFound ItemTag = "found"
)

// Valid reports whether t is a known tag
func (t ItemTag) Valid() bool {
	return t == TagLost || t == TagFound
}

// Item is one lost-or-found listing with an attached image. Immutable after
// creation.
type Item struct {
	ID          int64     `json:"id" db:"id"`
	Tag         ItemTag   `json:"tag" db:"tag" example:"lost"`
	Description string    `json:"description" db:"description" example:"blue backpack"`
	ImageURL    string    `json:"imageUrl" db:"image_url"`
	RollNo      string    `json:"rollNo" db:"roll_no"`
	HostelID    int64     `json:"hostelId" db:"hostel_id"`
	RoomNo      string    `json:"roomNo" db:"room_no"`
	PhoneNo     string    `json:"phoneNo" db:"phone_no"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
