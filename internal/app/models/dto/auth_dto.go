package dto

import "github.com/urbanhive/urbanhive-client/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	ID       string `json:"id" binding:"required" validate:"required"`
	Password string `json:"password" binding:"required" validate:"required"`
}

// LoginResult is what a successful login resolves with
type LoginResult struct {
	Status string       `json:"status"`
	Data   *models.User `json:"data"`
}

// StatusSuccess is the status of a successful LoginResult
const StatusSuccess = "success"

// CreateAccountRequest represents a new account with the device location attached
type CreateAccountRequest struct {
	ID          string          `json:"id" binding:"required" validate:"urbanid"`
	Name        string          `json:"name" binding:"required" validate:"min=3"`
	Email       string          `json:"email" binding:"required" validate:"contains=@"`
	Password    string          `json:"password" binding:"required" validate:"min=6"`
	PhoneNumber string          `json:"phone_number,omitempty"`
	Location    models.Location `json:"location"`
}

// AccountCreatedResponse is the 201 body of account creation
type AccountCreatedResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// AddFriendRequest asks the backend to connect two users
type AddFriendRequest struct {
	SenderID   string `json:"sender_id" binding:"required"`
	ReceiverID string `json:"receiver_id" binding:"required"`
}

// FriendResponseRequest answers a pending friend request
type FriendResponseRequest struct {
	ReceiverID string                `json:"receiver_id" binding:"required"`
	SenderID   string                `json:"sender_id" binding:"required"`
	Response   models.FriendResponse `json:"response"`
}
