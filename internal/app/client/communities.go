package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/urbanhive/urbanhive-client/internal/app/models"
	"github.com/urbanhive/urbanhive-client/internal/app/models/dto"
	"github.com/urbanhive/urbanhive-client/internal/pkg/apperrors"
)

const (
	OpFetchAllCommunities       = "fetchAllCommunities"
	OpSearchCommunitiesByName   = "searchCommunitiesByName"
	OpCreateCommunity           = "createCommunity"
	OpFindCommunitiesByRadius   = "findCommunitiesByRadiusAndLocation"
	OpFetchCommunityDetails     = "fetchCommunityDetails"
	OpFetchCommunityMembers     = "fetchCommunityMembers"
	OpRequestToJoinCommunity    = "requestToJoinCommunity"
	OpRespondToJoinCommunityReq = "respondToJoinCommunityRequest"
)

const (
	detailsByAreaPath      = "/communities/details_by_area"
	msgSearchQueryRequired = "Please enter a community name to search."
)

var (
	allCommunitiesFallbacks = fallbacks{
		0: "Failed to fetch communities. Please try again later.",
	}
	createCommunityFallbacks = fallbacks{
		http.StatusBadRequest:          "Invalid request or community already exists.",
		http.StatusNotFound:            "Manager not found.",
		http.StatusInternalServerError: "Server error, please try again later.",
		0:                              "Failed to create community",
	}
	radiusFallbacks = fallbacks{
		http.StatusInternalServerError: "A database error occurred, please try again later.",
		0:                              "Failed to find communities",
	}
	detailsFallbacks = fallbacks{
		http.StatusBadRequest: "Area name is required.",
		http.StatusNotFound:   "Community not found.",
		0:                     "Failed to fetch community details",
	}
	membersFallbacks = fallbacks{
		http.StatusBadRequest: "Area name is required.",
		http.StatusNotFound:   "Community not found.",
		0:                     "An unexpected error occurred.",
	}
	joinCommunityFallbacks = fallbacks{
		http.StatusNotFound: "Invalid sender ID or community does not exist.",
		0:                   "Failed to send join request",
	}
	respondJoinFallbacks = fallbacks{
		http.StatusNotFound: "Invalid request ID or sender user not found.",
		0:                   "Failed to respond to join request",
	}
)

// FetchAllCommunities lists every community
func (c *Client) FetchAllCommunities(ctx context.Context) ([]models.Community, error) {
	return c.fetchAllCommunities(ctx, OpFetchAllCommunities)
}

func (c *Client) fetchAllCommunities(ctx context.Context, op string) ([]models.Community, error) {
	var communities []models.Community
	if _, err := c.do(ctx, call{
		op:        op,
		method:    http.MethodGet,
		path:      "/communities/get_all",
		fallbacks: allCommunitiesFallbacks,
	}, &communities); err != nil {
		return nil, err
	}
	return communities, nil
}

// SearchCommunitiesByName filters all communities whose area contains query, ignoring case
func (c *Client) SearchCommunitiesByName(ctx context.Context, query string) ([]models.Community, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.NewValidationError(OpSearchCommunitiesByName, msgSearchQueryRequired)
	}

	communities, err := c.fetchAllCommunities(ctx, OpSearchCommunitiesByName)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	matches := make([]models.Community, 0, len(communities))
	for _, community := range communities {
		if strings.Contains(strings.ToLower(community.Area), needle) {
			matches = append(matches, community)
		}
	}
	return matches, nil
}

// CreateCommunity creates a community managed by managerID
func (c *Client) CreateCommunity(ctx context.Context, managerID, area string, location models.Location) (*dto.CommunityCreatedResponse, error) {
	req := &dto.CreateCommunityRequest{ManagerID: managerID, Area: area, Location: location}
	if err := c.validate(OpCreateCommunity, req); err != nil {
		return nil, err
	}

	var resp dto.CommunityCreatedResponse
	if _, err := c.do(ctx, call{
		op:        OpCreateCommunity,
		method:    http.MethodPost,
		path:      "/communities/add_community",
		body:      req,
		fallbacks: createCommunityFallbacks,
	}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// FindCommunitiesByRadiusAndLocation lists communities within radius km of location
func (c *Client) FindCommunitiesByRadiusAndLocation(ctx context.Context, radius float64, location models.Location) ([]models.Community, error) {
	req := &dto.RadiusSearchRequest{Radius: radius, Location: location}
	if err := c.validate(OpFindCommunitiesByRadius, req); err != nil {
		return nil, err
	}

	var resp dto.RadiusSearchResponse
	if _, err := c.do(ctx, call{
		op:        OpFindCommunitiesByRadius,
		method:    http.MethodPost,
		path:      "/communities/get_communities_by_radius_and_location",
		body:      req,
		fallbacks: radiusFallbacks,
	}, &resp); err != nil {
		return nil, err
	}
	return resp.LocalCommunities, nil
}

// FetchCommunityDetails returns members, managers, the pending join request and posts of area
func (c *Client) FetchCommunityDetails(ctx context.Context, area string) (*models.CommunityDetails, error) {
	return c.communityDetails(ctx, OpFetchCommunityDetails, area, detailsFallbacks)
}

// FetchCommunityMembers returns only the members of area
func (c *Client) FetchCommunityMembers(ctx context.Context, area string) ([]models.Member, error) {
	details, err := c.communityDetails(ctx, OpFetchCommunityMembers, area, membersFallbacks)
	if err != nil {
		return nil, err
	}
	return details.Members, nil
}

func (c *Client) communityDetails(ctx context.Context, op, area string, fb fallbacks) (*models.CommunityDetails, error) {
	var details models.CommunityDetails
	if _, err := c.do(ctx, call{
		op:        op,
		method:    http.MethodPost,
		path:      detailsByAreaPath,
		query:     url.Values{"area": []string{area}},
		fallbacks: fb,
	}, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// RequestToJoinCommunity files a join request of senderID for area
func (c *Client) RequestToJoinCommunity(ctx context.Context, area, senderID, senderName string) (*dto.MessageResponse, error) {
	var resp dto.MessageResponse
	if _, err := c.do(ctx, call{
		op:     OpRequestToJoinCommunity,
		method: http.MethodPost,
		path:   "/communities/request_to_join",
		body: &dto.JoinCommunityRequest{
			Area:       area,
			SenderID:   senderID,
			SenderName: senderName,
		},
		fallbacks: joinCommunityFallbacks,
	}, &resp); err != nil {
		return nil, err
	}
	if resp.Message == "" {
		resp.Message = "Join request sent successfully!"
	}
	return &resp, nil
}

// RespondToJoinCommunityRequest lets a manager accept or decline a join request
func (c *Client) RespondToJoinCommunityRequest(ctx context.Context, requestID string, accept bool) (*dto.MessageResponse, error) {
	var resp dto.MessageResponse
	if _, err := c.do(ctx, call{
		op:        OpRespondToJoinCommunityReq,
		method:    http.MethodPost,
		path:      "/communities/respond_to_join_request",
		body:      &dto.RespondJoinRequest{RequestID: requestID, Response: accept},
		fallbacks: respondJoinFallbacks,
	}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
