package devserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/urbanhive/urbanhive-client/internal/app/models"
	"github.com/urbanhive/urbanhive-client/internal/app/models/dto"
	"github.com/urbanhive/urbanhive-client/internal/middleware"
	"github.com/urbanhive/urbanhive-client/internal/pkg/auth"
	"github.com/urbanhive/urbanhive-client/internal/pkg/validation"
)

// Login handles POST /users/password
func (b *Backend) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, badRequest("ID and password are required"))
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	acc, ok := b.users[req.ID]
	if !ok {
		middleware.HandleAPIError(c, notFound("User not found"))
		return
	}
	if !auth.CheckPassword(acc.passwordHash, req.Password) {
		middleware.HandleAPIError(c, reject(http.StatusUnauthorized, "Incorrect password"))
		return
	}

	b.logger.Info().Str("user_id", req.ID).Msg("User logged in")
	c.JSON(http.StatusOK, acc.snapshot())
}

// CreateAccount handles POST /user/
func (b *Backend) CreateAccount(c *gin.Context) {
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, badRequest("Missing required fields"))
		return
	}
	if !validation.IsIdentifier(req.ID) || !strings.Contains(req.Email, "@") {
		middleware.HandleAPIError(c, badRequest("Invalid ID or email"))
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.users[req.ID]; exists {
		middleware.HandleAPIError(c, conflict("User with this ID already exists"))
		return
	}
	for _, acc := range b.users {
		if strings.EqualFold(acc.Email, req.Email) {
			middleware.HandleAPIError(c, conflict("User with this email already exists"))
			return
		}
	}

	b.users[req.ID] = &account{
		User: models.User{
			ID:          req.ID,
			Name:        req.Name,
			Email:       req.Email,
			PhoneNumber: req.PhoneNumber,
			Location:    req.Location,
			Communities: []models.UserCommunity{},
			Friends:     []models.Friend{},
			Requests:    []models.FriendRequest{},
		},
		passwordHash: hash,
	}

	b.logger.Info().Str("user_id", req.ID).Msg("Account created")
	c.JSON(http.StatusCreated, dto.AccountCreatedResponse{Message: "User created successfully", UserID: req.ID})
}

// GetUser handles GET /user/:id
func (b *Backend) GetUser(c *gin.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()

	acc, ok := b.users[c.Param("id")]
	if !ok {
		middleware.HandleAPIError(c, notFound("User not found"))
		return
	}
	c.JSON(http.StatusOK, acc.snapshot())
}

// AddFriend handles POST /user/add-friend. It files a request on the receiver.
func (b *Backend) AddFriend(c *gin.Context) {
	var req dto.AddFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, badRequest("sender_id and receiver_id are required"))
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	sender, ok := b.users[req.SenderID]
	if !ok {
		middleware.HandleAPIError(c, notFound("Sender not found"))
		return
	}
	receiver, ok := b.users[req.ReceiverID]
	if !ok {
		middleware.HandleAPIError(c, notFound("Receiver not found"))
		return
	}
	if sender.ID == receiver.ID {
		middleware.HandleAPIError(c, badRequest("Cannot add yourself as a friend"))
		return
	}
	for _, f := range receiver.Friends {
		if f.ID == sender.ID {
			middleware.HandleAPIError(c, conflict("Users are already friends"))
			return
		}
	}
	for _, r := range receiver.Requests {
		if r.SenderID == sender.ID {
			middleware.HandleAPIError(c, conflict("Friend request already pending"))
			return
		}
	}

	receiver.Requests = append(receiver.Requests, models.FriendRequest{
		SenderID:   sender.ID,
		SenderName: sender.Name,
	})
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Friend request sent"})
}

// RespondToFriendRequest handles POST /user/respond-to-request. The pending
// request is consumed exactly once.
func (b *Backend) RespondToFriendRequest(c *gin.Context) {
	var req dto.FriendResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, badRequest("receiver_id and sender_id are required"))
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	receiver, ok := b.users[req.ReceiverID]
	if !ok {
		middleware.HandleAPIError(c, notFound("Receiver not found"))
		return
	}
	sender, ok := b.users[req.SenderID]
	if !ok {
		middleware.HandleAPIError(c, notFound("Sender not found"))
		return
	}

	index := -1
	for i, r := range receiver.Requests {
		if r.SenderID == sender.ID {
			index = i
			break
		}
	}
	if index < 0 {
		middleware.HandleAPIError(c, notFound("Friend request not found"))
		return
	}
	receiver.Requests = append(receiver.Requests[:index], receiver.Requests[index+1:]...)

	if req.Response != models.FriendAccept {
		c.JSON(http.StatusOK, dto.MessageResponse{Message: "Friend request declined"})
		return
	}

	receiver.Friends = append(receiver.Friends, models.Friend{ID: sender.ID, Name: sender.Name, Location: sender.Location})
	sender.Friends = append(sender.Friends, models.Friend{ID: receiver.ID, Name: receiver.Name, Location: receiver.Location})
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Friend request accepted"})
}
