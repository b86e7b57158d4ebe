package devserver

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/urbanhive/urbanhive-client/internal/app/models"
	"github.com/urbanhive/urbanhive-client/internal/app/models/dto"
	"github.com/urbanhive/urbanhive-client/internal/middleware"
	"github.com/urbanhive/urbanhive-client/internal/pkg/helpers"
)

// MsgNoFutureWatches is the success message of an empty listing
const MsgNoFutureWatches = "No future night watches found for this community"

// NightWatchesByCommunity handles POST /night_watch/by_community. Only watches
// dated today or later are listed.
func (b *Backend) NightWatchesByCommunity(c *gin.Context) {
	var req dto.NightWatchesByCommunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, badRequest("Missing 'community_name' in request"))
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.communities[req.CommunityName]; !ok {
		middleware.HandleAPIError(c, notFound("Community not found"))
		return
	}

	today := helpers.FormatDate(b.now())
	watches := make([]models.NightWatch, 0)
	for _, w := range b.watches {
		if w.CommunityArea == req.CommunityName && w.WatchDate >= today {
			cp := *w
			cp.Members = append([]models.WatchMember{}, w.Members...)
			watches = append(watches, cp)
		}
	}
	if len(watches) == 0 {
		c.JSON(http.StatusOK, dto.NightWatchListResponse{Message: MsgNoFutureWatches})
		return
	}

	sort.Slice(watches, func(i, j int) bool { return watches[i].WatchDate < watches[j].WatchDate })
	c.JSON(http.StatusOK, dto.NightWatchListResponse{NightWatches: watches})
}

// AddNightWatch handles POST /night_watch/add_night_watch. A community has at
// most one watch per date.
func (b *Backend) AddNightWatch(c *gin.Context) {
	var req dto.CreateNightWatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, badRequest("Missing required fields"))
		return
	}
	if _, err := helpers.ParseDate(req.WatchDate); err != nil || req.WatchRadius <= 0 || req.PositionsAmount <= 0 {
		middleware.HandleAPIError(c, badRequest("Invalid watch_date, watch_radius or positions_amount"))
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	initiator, ok := b.users[req.InitiatorID]
	if !ok {
		middleware.HandleAPIError(c, notFound("Initiator not found"))
		return
	}
	community, ok := b.communities[req.CommunityArea]
	if !ok {
		middleware.HandleAPIError(c, notFound("Community not found"))
		return
	}
	if !contains(community.Members, initiator.ID) {
		middleware.HandleAPIError(c, notFound("Initiator not found or not a member of the community"))
		return
	}
	for _, w := range b.watches {
		if w.CommunityArea == req.CommunityArea && w.WatchDate == req.WatchDate {
			middleware.HandleAPIError(c, conflict("A night watch is already scheduled for this community on that date"))
			return
		}
	}

	watch := &models.NightWatch{
		WatchID:         b.newID(),
		InitiatorID:     initiator.ID,
		InitiatorName:   initiator.Name,
		CommunityArea:   req.CommunityArea,
		WatchDate:       req.WatchDate,
		WatchRadius:     req.WatchRadius,
		PositionsAmount: req.PositionsAmount,
		Location:        models.Location{Latitude: req.Latitude, Longitude: req.Longitude},
		Members:         []models.WatchMember{},
	}
	b.watches[watch.WatchID] = watch

	b.logger.Info().Str("watch_id", watch.WatchID).Str("area", watch.CommunityArea).Msg("Night watch created")
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Night watch created successfully"})
}

// JoinWatch handles POST /night_watch/join_watch. Registration never exceeds
// positions_amount.
func (b *Backend) JoinWatch(c *gin.Context) {
	var req dto.JoinWatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, badRequest("candidate_id and night_watch_id are required"))
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	candidate, ok := b.users[req.CandidateID]
	if !ok {
		middleware.HandleAPIError(c, notFound("Candidate not found"))
		return
	}
	watch, ok := b.watches[req.NightWatchID]
	if !ok {
		middleware.HandleAPIError(c, notFound("Night watch not found"))
		return
	}

	switch {
	case watch.Closed:
		middleware.HandleAPIError(c, badRequest("Night watch is closed"))
		return
	case watch.HasMember(candidate.ID):
		middleware.HandleAPIError(c, conflict("Already registered to this night watch"))
		return
	case watch.Full():
		middleware.HandleAPIError(c, conflict("Night watch is full"))
		return
	}

	watch.Members = append(watch.Members, models.WatchMember{ID: candidate.ID, Name: candidate.Name})
	candidate.NightWatches = append(candidate.NightWatches, models.NightWatchEntry{WatchID: watch.WatchID})
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Joined night watch successfully"})
}

// CloseWatch handles POST /night_watch/close_night_watch
func (b *Backend) CloseWatch(c *gin.Context) {
	var req dto.CloseWatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, badRequest("Missing watch_id field"))
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	watch, ok := b.watches[req.WatchID]
	if !ok {
		middleware.HandleAPIError(c, notFound("Night watch not found"))
		return
	}
	watch.Closed = true
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Night watch closed successfully"})
}
