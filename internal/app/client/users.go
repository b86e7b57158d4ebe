package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/urbanhive/urbanhive-client/internal/app/models"
	"github.com/urbanhive/urbanhive-client/internal/app/models/dto"
)

// Operation names as reported in APIError.Op
const (
	OpLogin                  = "login"
	OpCreateAccount          = "createAccount"
	OpFetchUserDetails       = "fetchUserDetails"
	OpAddFriend              = "addFriend"
	OpRespondToFriendRequest = "respondToFriendRequest"
)

var (
	loginFallbacks = fallbacks{
		http.StatusBadRequest:   "ID and password are required.",
		http.StatusUnauthorized: "Incorrect password.",
		http.StatusNotFound:     "User not found.",
		0:                       "An unexpected error occurred.",
	}
	createAccountFallbacks = fallbacks{
		http.StatusBadRequest: "There was a problem with the information provided.",
		http.StatusConflict:   "An account with the provided ID or email already exists.",
		0:                     "Failed to create account.",
	}
	userDetailsFallbacks = fallbacks{
		http.StatusNotFound: "User not found.",
		0:                   "Failed to fetch user details",
	}
	addFriendFallbacks = fallbacks{
		http.StatusNotFound: "Invalid sender or receiver.",
		0:                   "Failed to add friend",
	}
	friendResponseFallbacks = fallbacks{
		http.StatusNotFound: "Invalid sender or receiver.",
		0:                   "Failed to send response",
	}
)

// Login authenticates id/password and resolves with the user snapshot
func (c *Client) Login(ctx context.Context, id, password string) (*dto.LoginResult, error) {
	req := &dto.LoginRequest{ID: id, Password: password}
	if err := c.validate(OpLogin, req); err != nil {
		return nil, err
	}

	var user models.User
	if _, err := c.do(ctx, call{
		op:        OpLogin,
		method:    http.MethodPost,
		path:      "/users/password",
		body:      req,
		fallbacks: loginFallbacks,
	}, &user); err != nil {
		return nil, err
	}

	return &dto.LoginResult{Status: dto.StatusSuccess, Data: &user}, nil
}

// CreateAccount registers a new user. Local rules are checked first and a
// failing request never reaches the network.
func (c *Client) CreateAccount(ctx context.Context, req *dto.CreateAccountRequest) (*dto.AccountCreatedResponse, error) {
	if err := c.validate(OpCreateAccount, req); err != nil {
		return nil, err
	}

	var resp dto.AccountCreatedResponse
	if _, err := c.do(ctx, call{
		op:        OpCreateAccount,
		method:    http.MethodPost,
		path:      "/user/",
		body:      req,
		fallbacks: createAccountFallbacks,
	}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// FetchUserDetails returns the current snapshot of a user
func (c *Client) FetchUserDetails(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	if _, err := c.do(ctx, call{
		op:        OpFetchUserDetails,
		method:    http.MethodGet,
		path:      "/user/" + url.PathEscape(userID),
		fallbacks: userDetailsFallbacks,
	}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// AddFriend sends a friend request from senderID to receiverID
func (c *Client) AddFriend(ctx context.Context, senderID, receiverID string) (*dto.MessageResponse, error) {
	var resp dto.MessageResponse
	if _, err := c.do(ctx, call{
		op:        OpAddFriend,
		method:    http.MethodPost,
		path:      "/user/add-friend",
		body:      &dto.AddFriendRequest{SenderID: senderID, ReceiverID: receiverID},
		fallbacks: addFriendFallbacks,
	}, &resp); err != nil {
		return nil, err
	}
	if resp.Message == "" {
		resp.Message = "Friend added successfully"
	}
	return &resp, nil
}

// RespondToFriendRequest accepts or declines the pending request of senderID
func (c *Client) RespondToFriendRequest(ctx context.Context, receiverID, senderID string, response models.FriendResponse) (*dto.MessageResponse, error) {
	var resp dto.MessageResponse
	if _, err := c.do(ctx, call{
		op:     OpRespondToFriendRequest,
		method: http.MethodPost,
		path:   "/user/respond-to-request",
		body: &dto.FriendResponseRequest{
			ReceiverID: receiverID,
			SenderID:   senderID,
			Response:   response,
		},
		fallbacks: friendResponseFallbacks,
	}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
