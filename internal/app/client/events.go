package client

import (
	"context"
	"net/http"
	"strings"

	"github.com/urbanhive/urbanhive-client/internal/app/models"
	"github.com/urbanhive/urbanhive-client/internal/app/models/dto"
)

const (
	OpFetchAllEvents = "fetchAllEvents"
	OpCreateEvent    = "createEvent"
	OpJoinEvent      = "joinEvent"
	OpDeleteEvent    = "deleteEvent"
)

var (
	allEventsFallbacks = fallbacks{
		0: "Failed to fetch events",
	}
	createEventFallbacks = fallbacks{
		http.StatusBadRequest: "There was a problem with the event creation request. Please check the details and try again.",
		0:                     "Failed to create event due to an unexpected error.",
	}
	joinEventFallbacks = fallbacks{
		http.StatusNotFound: "User or event not found.",
		0:                   "An unexpected error occurred while attempting to join the event.",
	}
	deleteEventFallbacks = fallbacks{
		http.StatusNotFound: "Event not found.",
		0:                   "Failed to delete event",
	}
)

// FetchAllEvents lists every event
func (c *Client) FetchAllEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if _, err := c.do(ctx, call{
		op:        OpFetchAllEvents,
		method:    http.MethodGet,
		path:      "/events/get_all_events",
		fallbacks: allEventsFallbacks,
	}, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// CreateEvent schedules an event; the backend dispatches the invitations.
// Blank guest ids are dropped before sending.
func (c *Client) CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventCreatedResponse, error) {
	if err := c.validate(OpCreateEvent, req); err != nil {
		return nil, err
	}

	payload := *req
	payload.GuestList = make([]string, 0, len(req.GuestList))
	for _, guest := range req.GuestList {
		if guest = strings.TrimSpace(guest); guest != "" {
			payload.GuestList = append(payload.GuestList, guest)
		}
	}

	var resp dto.EventCreatedResponse
	if _, err := c.do(ctx, call{
		op:        OpCreateEvent,
		method:    http.MethodPost,
		path:      "/events/add_event",
		body:      &payload,
		fallbacks: createEventFallbacks,
	}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// JoinEvent records userID as attending eventID
func (c *Client) JoinEvent(ctx context.Context, userID, communityName, eventID string) (*dto.MessageResponse, error) {
	var resp dto.MessageResponse
	if _, err := c.do(ctx, call{
		op:     OpJoinEvent,
		method: http.MethodPost,
		path:   "/events/request_to_join_events",
		body: &dto.JoinEventRequest{
			UserID:        userID,
			CommunityName: communityName,
			EventID:       eventID,
		},
		fallbacks: joinEventFallbacks,
	}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteEvent removes eventID
func (c *Client) DeleteEvent(ctx context.Context, eventID string) (*dto.MessageResponse, error) {
	var resp dto.MessageResponse
	if _, err := c.do(ctx, call{
		op:        OpDeleteEvent,
		method:    http.MethodPost,
		path:      "/events/delete_event",
		body:      &dto.DeleteEventRequest{EventID: eventID},
		fallbacks: deleteEventFallbacks,
	}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
