package dto

import "github.com/urbanhive/urbanhive-client/internal/app/models"

// NightWatchesByCommunityRequest selects the watches of one community
type NightWatchesByCommunityRequest struct {
	CommunityName string `json:"community_name" binding:"required"`
}

// NightWatchListResponse is either a list or an explanatory message when empty
type NightWatchListResponse struct {
	Message      string              `json:"message,omitempty"`
	NightWatches []models.NightWatch `json:"night_watches,omitempty"`
}

// CreateNightWatchRequest schedules a new night watch
type CreateNightWatchRequest struct {
	InitiatorID     string  `json:"initiator_id" binding:"required"`
	CommunityArea   string  `json:"community_area" binding:"required"`
	WatchDate       string  `json:"watch_date" binding:"required" validate:"datetime=2006-01-02"`
	WatchRadius     float64 `json:"watch_radius" binding:"required" validate:"gt=0"`
	PositionsAmount int     `json:"positions_amount" binding:"required" validate:"gt=0"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
}

// JoinWatchRequest registers a candidate to a night watch
type JoinWatchRequest struct {
	CandidateID  string `json:"candidate_id" binding:"required"`
	NightWatchID string `json:"night_watch_id" binding:"required"`
}

// CloseWatchRequest closes a night watch
type CloseWatchRequest struct {
	WatchID string `json:"watch_id" binding:"required"`
}

// Empty reports whether the community has no upcoming night watches
func (r *NightWatchListResponse) Empty() bool {
	return len(r.NightWatches) == 0
}
