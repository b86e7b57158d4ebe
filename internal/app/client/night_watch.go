package client

import (
	"context"
	"net/http"

	"github.com/urbanhive/urbanhive-client/internal/app/models/dto"
)

const (
	OpFetchNightWatches = "fetchNightWatchesByCommunity"
	OpCreateNightWatch  = "createNewNightWatch"
	OpJoinNightWatch    = "joinNightWatch"
	OpCloseNightWatch   = "closeNightWatch"
)

var (
	nightWatchesFallbacks = fallbacks{
		http.StatusBadRequest: "Missing 'community_name' in request. Please provide a community name.",
		http.StatusNotFound:   "Community not found. Please check the community name and try again.",
		0:                     "An error occurred. Please try again later.",
	}
	createNightWatchFallbacks = fallbacks{
		http.StatusBadRequest:          "Missing required fields.",
		http.StatusNotFound:            "Initiator not found.",
		http.StatusConflict:            "A night watch is already scheduled for this community on that date.",
		http.StatusInternalServerError: "Database error.",
		0:                              "An unexpected error occurred.",
	}
	joinNightWatchFallbacks = fallbacks{
		0: "Failed to join the night watch.",
	}
	closeNightWatchFallbacks = fallbacks{
		http.StatusBadRequest: "Missing watch_id field.",
		http.StatusNotFound:   "Night watch not found.",
		0:                     "Failed to close night watch due to an unexpected error.",
	}
)

// FetchNightWatchesByCommunity lists the upcoming night watches of a community.
// A 200 with only a message (no upcoming watches) is a success, not an error.
func (c *Client) FetchNightWatchesByCommunity(ctx context.Context, communityName string) (*dto.NightWatchListResponse, error) {
	var resp dto.NightWatchListResponse
	if _, err := c.do(ctx, call{
		op:        OpFetchNightWatches,
		method:    http.MethodPost,
		path:      "/night_watch/by_community",
		body:      &dto.NightWatchesByCommunityRequest{CommunityName: communityName},
		fallbacks: nightWatchesFallbacks,
	}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateNightWatch schedules a night watch
func (c *Client) CreateNightWatch(ctx context.Context, req *dto.CreateNightWatchRequest) (*dto.MessageResponse, error) {
	if err := c.validate(OpCreateNightWatch, req); err != nil {
		return nil, err
	}

	var resp dto.MessageResponse
	if _, err := c.do(ctx, call{
		op:        OpCreateNightWatch,
		method:    http.MethodPost,
		path:      "/night_watch/add_night_watch",
		body:      req,
		fallbacks: createNightWatchFallbacks,
	}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// JoinNightWatch registers candidateID to the watch. A full watch is
// reported as a rejection like any other failure.
func (c *Client) JoinNightWatch(ctx context.Context, candidateID, nightWatchID string) (*dto.MessageResponse, error) {
	var resp dto.MessageResponse
	if _, err := c.do(ctx, call{
		op:        OpJoinNightWatch,
		method:    http.MethodPost,
		path:      "/night_watch/join_watch",
		body:      &dto.JoinWatchRequest{CandidateID: candidateID, NightWatchID: nightWatchID},
		fallbacks: joinNightWatchFallbacks,
	}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CloseNightWatch closes watchID for registration
func (c *Client) CloseNightWatch(ctx context.Context, watchID string) (*dto.MessageResponse, error) {
	var resp dto.MessageResponse
	if _, err := c.do(ctx, call{
		op:        OpCloseNightWatch,
		method:    http.MethodPost,
		path:      "/night_watch/close_night_watch",
		body:      &dto.CloseWatchRequest{WatchID: watchID},
		fallbacks: closeNightWatchFallbacks,
	}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
