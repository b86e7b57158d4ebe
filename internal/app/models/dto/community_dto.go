package dto

import "github.com/urbanhive/urbanhive-client/internal/app/models"

// CreateCommunityRequest represents community creation data
type CreateCommunityRequest struct {
	ManagerID string          `json:"manager_id" binding:"required" validate:"required"`
	Area      string          `json:"area" binding:"required" validate:"required"`
	Location  models.Location `json:"location"`
}

// CommunityCreatedResponse is returned when a community is added
type CommunityCreatedResponse struct {
	Message     string `json:"message"`
	CommunityID string `json:"community_id"`
}

// RadiusSearchRequest looks up communities around a point
type RadiusSearchRequest struct {
	Radius   float64         `json:"radius" validate:"gt=0"`
	Location models.Location `json:"location"`
}

// RadiusSearchResponse lists communities within the radius
type RadiusSearchResponse struct {
	LocalCommunities []models.Community `json:"local_communities"`
}

// JoinCommunityRequest represents the request to join a community
type JoinCommunityRequest struct {
	Area       string `json:"area" binding:"required"`
	SenderID   string `json:"sender_id" binding:"required"`
	SenderName string `json:"sender_name"`
}

// RespondJoinRequest lets a manager accept or decline a join request
type RespondJoinRequest struct {
	RequestID string `json:"request_id" binding:"required"`
	Response  bool   `json:"response"`
}
