package dto

import "github.com/urbanhive/urbanhive-client/internal/app/models"

// CreateEventRequest represents a new community event
type CreateEventRequest struct {
	Initiator     string          `json:"initiator" binding:"required"`
	CommunityName string          `json:"community_name" binding:"required"`
	Location      models.Location `json:"location"`
	EventName     string          `json:"event_name" binding:"required" validate:"required"`
	EventType     string          `json:"event_type" binding:"required" validate:"required"`
	StartTime     string          `json:"start_time" binding:"required"`
	EndTime       string          `json:"end_time" binding:"required"`
	GuestList     []string        `json:"guest_list"`
}

// EventCreatedResponse is returned when an event is added
type EventCreatedResponse struct {
	Message string `json:"message"`
	EventID string `json:"event_id"`
}

// JoinEventRequest records the user as attending
type JoinEventRequest struct {
	UserID        string `json:"user_id" binding:"required"`
	CommunityName string `json:"community_name"`
	EventID       string `json:"event_id" binding:"required"`
}

// DeleteEventRequest identifies the event to delete
type DeleteEventRequest struct {
	EventID string `json:"event_id" binding:"required"`
}
