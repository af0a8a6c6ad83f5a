package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLaundryStatusValid(t *testing.T) {
	tests := []struct {
		status LaundryStatus
		want   bool
	}{
		{StatusReceived, true},
		{StatusWashing, true},
		{StatusDrying, true},
		{StatusReadyToCollect, true},
		{LaundryStatus("Ironing"), false},
		{LaundryStatus(""), false},
		{LaundryStatus("received"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.Valid())
		})
	}
}

func TestLaundryStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from LaundryStatus
		to   LaundryStatus
		want bool
	}{
		{"forward one step", StatusReceived, StatusWashing, true},
		{"skip a step", StatusReceived, StatusDrying, true},
		{"straight to terminal", StatusReceived, StatusReadyToCollect, true},
		{"same status", StatusWashing, StatusWashing, false},
		{"backward", StatusDrying, StatusWashing, false},
		{"backward from terminal", StatusReadyToCollect, StatusReceived, false},
		{"unknown target", StatusReceived, LaundryStatus("Folded"), false},
		{"unknown source", LaundryStatus("Folded"), StatusWashing, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestLaundryStatusTerminal(t *testing.T) {
	assert.True(t, StatusReadyToCollect.Terminal())
	assert.False(t, StatusReceived.Terminal())
	assert.False(t, StatusWashing.Terminal())
	assert.False(t, StatusDrying.Terminal())
}
