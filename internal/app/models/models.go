// Package models defines the database entities of the laundry service.
package models

// RoleType separates the two account kinds
type RoleType string

const (
	RoleStudent RoleType = "STUDENT"
	RoleStaff   RoleType = "STAFF"
)
