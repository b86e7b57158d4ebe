package devserver

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/urbanhive/urbanhive-client/internal/app/models"
	"github.com/urbanhive/urbanhive-client/internal/app/models/dto"
	"github.com/urbanhive/urbanhive-client/internal/middleware"
	"github.com/urbanhive/urbanhive-client/internal/pkg/helpers"
)

// publicView returns the listing form of c with its oldest pending request
func (c *community) publicView() models.Community {
	view := c.Community
	view.Managers = append([]string{}, c.Managers...)
	view.Members = append([]string{}, c.Members...)
	view.JoinRequest = nil
	if len(c.requests) > 0 {
		r := c.requests[0]
		view.JoinRequest = &r
	}
	return view
}

// sortedCommunities lists communities by area
func (b *Backend) sortedCommunities() []models.Community {
	list := make([]models.Community, 0, len(b.communities))
	for _, c := range b.communities {
		list = append(list, c.publicView())
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Area < list[j].Area })
	return list
}

// GetAllCommunities handles GET /communities/get_all
func (b *Backend) GetAllCommunities(c *gin.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()

	c.JSON(http.StatusOK, b.sortedCommunities())
}

// AddCommunity handles POST /communities/add_community. The manager becomes
// the first member.
func (b *Backend) AddCommunity(c *gin.Context) {
	var req dto.CreateCommunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, badRequest("manager_id and area are required"))
		return
	}
	area := strings.TrimSpace(req.Area)

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.communities[area]; exists {
		middleware.HandleAPIError(c, badRequest("Community already exists"))
		return
	}
	manager, ok := b.users[req.ManagerID]
	if !ok {
		middleware.HandleAPIError(c, notFound("Manager not found"))
		return
	}

	id := b.newID()
	b.communities[area] = &community{
		Community: models.Community{
			ID:       id,
			Area:     area,
			Managers: []string{manager.ID},
			Members:  []string{manager.ID},
			Location: req.Location,
		},
	}
	manager.Communities = append(manager.Communities, models.UserCommunity{Area: area, Location: req.Location})

	b.logger.Info().Str("area", area).Str("manager_id", manager.ID).Msg("Community created")
	c.JSON(http.StatusCreated, dto.CommunityCreatedResponse{Message: "Community added successfully", CommunityID: id})
}

// CommunitiesByRadius handles POST /communities/get_communities_by_radius_and_location
func (b *Backend) CommunitiesByRadius(c *gin.Context) {
	var req dto.RadiusSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Radius <= 0 {
		middleware.HandleAPIError(c, badRequest("A positive radius and a location are required"))
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	local := make([]models.Community, 0)
	for _, community := range b.sortedCommunities() {
		d := helpers.DistanceKm(req.Location.Latitude, req.Location.Longitude,
			community.Location.Latitude, community.Location.Longitude)
		if d <= req.Radius {
			local = append(local, community)
		}
	}
	c.JSON(http.StatusOK, dto.RadiusSearchResponse{LocalCommunities: local})
}

// DetailsByArea handles POST /communities/details_by_area?area=
func (b *Backend) DetailsByArea(c *gin.Context) {
	area := strings.TrimSpace(c.Query("area"))
	if area == "" {
		middleware.HandleAPIError(c, badRequest("Area name is required"))
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	community, ok := b.communities[area]
	if !ok {
		middleware.HandleAPIError(c, notFound("Community not found"))
		return
	}

	view := community.publicView()
	details := models.CommunityDetails{
		Area:        view.Area,
		Location:    view.Location,
		Managers:    b.members(view.Managers),
		Members:     b.members(view.Members),
		JoinRequest: view.JoinRequest,
		Posts:       b.postsOf(area),
	}
	c.JSON(http.StatusOK, details)
}

func (b *Backend) members(ids []string) []models.Member {
	out := make([]models.Member, 0, len(ids))
	for _, id := range ids {
		m := models.Member{ID: id}
		if acc, ok := b.users[id]; ok {
			m.Name = acc.Name
			m.PhoneNumber = acc.PhoneNumber
		}
		out = append(out, m)
	}
	return out
}

// RequestToJoin handles POST /communities/request_to_join. At most one request
// per (sender, community) is pending.
func (b *Backend) RequestToJoin(c *gin.Context) {
	var req dto.JoinCommunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, badRequest("area and sender_id are required"))
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	sender, ok := b.users[req.SenderID]
	if !ok {
		middleware.HandleAPIError(c, notFound("Sender not found"))
		return
	}
	community, ok := b.communities[req.Area]
	if !ok {
		middleware.HandleAPIError(c, notFound("Community not found"))
		return
	}
	if contains(community.Members, sender.ID) {
		middleware.HandleAPIError(c, conflict("User is already a member of this community"))
		return
	}
	for _, r := range community.requests {
		if r.SenderID == sender.ID {
			middleware.HandleAPIError(c, conflict("Join request already pending"))
			return
		}
	}

	name := req.SenderName
	if name == "" {
		name = sender.Name
	}
	community.requests = append(community.requests, models.JoinRequest{
		RequestID:  b.newID(),
		SenderID:   sender.ID,
		SenderName: name,
	})
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Join request sent successfully"})
}

// RespondToJoinRequest handles POST /communities/respond_to_join_request.
// The request is consumed exactly once; acceptance updates both sides of the membership.
func (b *Backend) RespondToJoinRequest(c *gin.Context) {
	var req dto.RespondJoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, badRequest("request_id is required"))
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, community := range b.communities {
		for i, r := range community.requests {
			if r.RequestID != req.RequestID {
				continue
			}
			community.requests = append(community.requests[:i], community.requests[i+1:]...)

			if !req.Response {
				c.JSON(http.StatusOK, dto.MessageResponse{Message: "Join request declined"})
				return
			}
			sender, ok := b.users[r.SenderID]
			if !ok {
				middleware.HandleAPIError(c, notFound("Sender user not found"))
				return
			}
			community.Members = append(community.Members, sender.ID)
			sender.Communities = append(sender.Communities, models.UserCommunity{
				Area:     community.Area,
				Location: community.Location,
			})
			c.JSON(http.StatusOK, dto.MessageResponse{Message: "Join request accepted"})
			return
		}
	}

	middleware.HandleAPIError(c, notFound("Invalid request ID"))
}
