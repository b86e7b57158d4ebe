package devserver

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urbanhive/urbanhive-client/internal/app/models"
	"github.com/urbanhive/urbanhive-client/internal/app/models/dto"
	"github.com/urbanhive/urbanhive-client/internal/middleware"
)

// GetAllEvents handles GET /events/get_all_events
func (b *Backend) GetAllEvents(c *gin.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()

	events := make([]models.Event, 0, len(b.events))
	for _, e := range b.events {
		events = append(events, *e)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].StartTime < events[j].StartTime })
	c.JSON(http.StatusOK, events)
}

// AddEvent handles POST /events/add_event
func (b *Backend) AddEvent(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, badRequest("Missing required event fields"))
		return
	}
	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		middleware.HandleAPIError(c, badRequest("start_time must be an ISO-8601 timestamp"))
		return
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil || end.Before(start) {
		middleware.HandleAPIError(c, badRequest("end_time must be an ISO-8601 timestamp after start_time"))
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.users[req.Initiator]; !ok {
		middleware.HandleAPIError(c, badRequest("Initiator does not exist"))
		return
	}
	if _, ok := b.communities[req.CommunityName]; !ok {
		middleware.HandleAPIError(c, badRequest("Community does not exist"))
		return
	}

	guests := make([]string, 0, len(req.GuestList))
	for _, id := range req.GuestList {
		if _, ok := b.users[id]; ok && !contains(guests, id) {
			guests = append(guests, id)
		}
	}

	event := &models.Event{
		EventID:       b.newID(),
		Initiator:     req.Initiator,
		CommunityName: req.CommunityName,
		Location:      req.Location,
		EventName:     req.EventName,
		EventType:     req.EventType,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		GuestList:     guests,
		Attending:     []string{req.Initiator},
	}
	b.events[event.EventID] = event

	b.logger.Info().Str("event_id", event.EventID).Int("invited", len(guests)).Msg("Event created")
	c.JSON(http.StatusOK, dto.EventCreatedResponse{Message: "Event created successfully", EventID: event.EventID})
}

// JoinEvent handles POST /events/request_to_join_events. Joining twice is harmless.
func (b *Backend) JoinEvent(c *gin.Context) {
	var req dto.JoinEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, badRequest("user_id and event_id are required"))
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.users[req.UserID]; !ok {
		middleware.HandleAPIError(c, notFound("User not found"))
		return
	}
	event, ok := b.events[req.EventID]
	if !ok {
		middleware.HandleAPIError(c, notFound("Event request not found"))
		return
	}

	if !event.IsAttending(req.UserID) {
		event.Attending = append(event.Attending, req.UserID)
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Joined event successfully"})
}

// DeleteEvent handles POST /events/delete_event
func (b *Backend) DeleteEvent(c *gin.Context) {
	var req dto.DeleteEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, badRequest("event_id is required"))
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.events[req.EventID]; !ok {
		middleware.HandleAPIError(c, notFound("Event not found"))
		return
	}
	delete(b.events, req.EventID)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Event deleted successfully"})
}
