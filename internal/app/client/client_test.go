package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/urbanhive/urbanhive-client/internal/app/models"
	"github.com/urbanhive/urbanhive-client/internal/app/models/dto"
	"github.com/urbanhive/urbanhive-client/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// captured records what the stub backend received
type captured struct {
	calls   int
	body    map[string]interface{}
	query   string
	headers http.Header
}

// stub serves a single route answering with status and body. A string body is sent raw.
func stub(t *testing.T, method, path string, status int, body interface{}) (*Client, *captured) {
	t.Helper()

	got := &captured{}
	router := gin.New()
	router.Handle(method, path, func(c *gin.Context) {
		got.calls++
		got.query = c.Request.URL.RawQuery
		got.headers = c.Request.Header.Clone()
		if raw, _ := io.ReadAll(c.Request.Body); len(raw) > 0 {
			_ = json.Unmarshal(raw, &got.body)
		}

		switch b := body.(type) {
		case string:
			c.Data(status, "application/json", []byte(b))
		case nil:
			c.Status(status)
		default:
			c.JSON(status, b)
		}
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return New(StaticAddress(server.URL), Options{Timeout: 5 * time.Second}, zerolog.Nop()), got
}

func expectAPIError(t *testing.T, err error, kind apperrors.Kind, message string) *apperrors.APIError {
	t.Helper()

	var apiErr *apperrors.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected *APIError, got %T (%v)", err, err)
	}
	if apiErr.Kind != kind {
		t.Errorf("Kind = %s, expected %s", apiErr.Kind, kind)
	}
	if apiErr.Message != message {
		t.Errorf("Message = %q, expected %q", apiErr.Message, message)
	}
	return apiErr
}

func TestLogin_Success(t *testing.T) {
	c, got := stub(t, http.MethodPost, "/users/password", http.StatusOK,
		gin.H{"id": "123456789", "name": "Ava"})

	result, err := c.Login(context.Background(), "123456789", "secret1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.Status != dto.StatusSuccess {
		t.Errorf("Status = %s, expected %s", result.Status, dto.StatusSuccess)
	}
	if result.Data.ID != "123456789" || result.Data.Name != "Ava" {
		t.Errorf("Data = %+v, expected id 123456789 and name Ava", result.Data)
	}
	if got.body["id"] != "123456789" || got.body["password"] != "secret1" {
		t.Errorf("Request body = %v, expected id and password", got.body)
	}
}

func TestLogin_ServerMessage(t *testing.T) {
	c, _ := stub(t, http.MethodPost, "/users/password", http.StatusNotFound,
		gin.H{"message": "no such id"})

	result, err := c.Login(context.Background(), "123456789", "secret1")
	if result != nil {
		t.Errorf("Expected no result, got %+v", result)
	}
	apiErr := expectAPIError(t, err, apperrors.KindRejected, "no such id")
	if !errors.Is(apiErr, apperrors.ErrNotFound) {
		t.Error("Expected error to wrap ErrNotFound")
	}
}

func TestLogin_RequiresCredentials(t *testing.T) {
	c, got := stub(t, http.MethodPost, "/users/password", http.StatusOK, gin.H{})

	_, err := c.Login(context.Background(), "", "secret1")
	expectAPIError(t, err, apperrors.KindValidation, "ID and password are required.")
	if got.calls != 0 {
		t.Errorf("Backend calls = %d, expected 0", got.calls)
	}
}

func TestCreateAccount_Validation(t *testing.T) {
	valid := dto.CreateAccountRequest{
		ID:       "123456789",
		Name:     "Ava",
		Email:    "ava@example.com",
		Password: "secret1",
	}

	tests := []struct {
		name    string
		mutate  func(r *dto.CreateAccountRequest)
		message string
	}{
		{"short id", func(r *dto.CreateAccountRequest) { r.ID = "12345" }, "ID must be exactly 9 digits long"},
		{"non-digit id", func(r *dto.CreateAccountRequest) { r.ID = "12345678a" }, "ID must be exactly 9 digits long"},
		{"short name", func(r *dto.CreateAccountRequest) { r.Name = "Al" }, "Name must be at least 3 characters long"},
		{"bad email", func(r *dto.CreateAccountRequest) { r.Email = "ava.example.com" }, "Please enter a valid email address"},
		{"short password", func(r *dto.CreateAccountRequest) { r.Password = "12345" }, "Password must be at least 6 characters long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, got := stub(t, http.MethodPost, "/user/", http.StatusCreated, gin.H{"user_id": "123456789"})

			req := valid
			tt.mutate(&req)
			_, err := c.CreateAccount(context.Background(), &req)
			expectAPIError(t, err, apperrors.KindValidation, tt.message)
			if got.calls != 0 {
				t.Errorf("Backend calls = %d, expected 0", got.calls)
			}
		})
	}
}

func TestCreateAccount_Success(t *testing.T) {
	c, got := stub(t, http.MethodPost, "/user/", http.StatusCreated,
		gin.H{"message": "User created", "user_id": "123456789"})

	resp, err := c.CreateAccount(context.Background(), &dto.CreateAccountRequest{
		ID:       "123456789",
		Name:     "Ava",
		Email:    "ava@example.com",
		Password: "secret1",
		Location: models.Location{Latitude: 32.1, Longitude: 34.8, Address: "Herzl 1"},
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.UserID != "123456789" {
		t.Errorf("UserID = %s, expected 123456789", resp.UserID)
	}
	location, ok := got.body["location"].(map[string]interface{})
	if !ok || location["address"] != "Herzl 1" {
		t.Errorf("Request location = %v, expected embedded address", got.body["location"])
	}
}

func TestCreateCommunity_AlreadyExists(t *testing.T) {
	c, got := stub(t, http.MethodPost, "/communities/add_community", http.StatusBadRequest,
		gin.H{"error": "already exists"})

	_, err := c.CreateCommunity(context.Background(), "mgr1", "Downtown", models.Location{Latitude: 1, Longitude: 2})
	expectAPIError(t, err, apperrors.KindRejected, "already exists")

	if got.body["manager_id"] != "mgr1" || got.body["area"] != "Downtown" {
		t.Errorf("Request body = %v, expected manager_id and area", got.body)
	}
}

func TestFetchNightWatchesByCommunity_EmptyIsSuccess(t *testing.T) {
	const msg = "No future night watches found for this community"
	c, _ := stub(t, http.MethodPost, "/night_watch/by_community", http.StatusOK, gin.H{"message": msg})

	resp, err := c.FetchNightWatchesByCommunity(context.Background(), "Downtown")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.Message != msg {
		t.Errorf("Message = %q, expected %q", resp.Message, msg)
	}
	if !resp.Empty() {
		t.Error("Expected an empty listing")
	}
}

func TestEndpointStatusMapping(t *testing.T) {
	ctx := context.Background()
	loc := models.Location{Latitude: 1, Longitude: 2}

	tests := []struct {
		name    string
		method  string
		path    string
		status  int
		body    interface{}
		invoke  func(c *Client) error
		kind    apperrors.Kind
		message string
	}{
		// login
		{"login 400", http.MethodPost, "/users/password", 400, gin.H{},
			func(c *Client) error { _, err := c.Login(ctx, "1", "p"); return err },
			apperrors.KindRejected, "ID and password are required."},
		{"login 401", http.MethodPost, "/users/password", 401, gin.H{},
			func(c *Client) error { _, err := c.Login(ctx, "1", "p"); return err },
			apperrors.KindRejected, "Incorrect password."},
		{"login 404", http.MethodPost, "/users/password", 404, gin.H{},
			func(c *Client) error { _, err := c.Login(ctx, "1", "p"); return err },
			apperrors.KindRejected, "User not found."},
		{"login 500", http.MethodPost, "/users/password", 500, gin.H{},
			func(c *Client) error { _, err := c.Login(ctx, "1", "p"); return err },
			apperrors.KindServer, apperrors.MsgServerFault},
		{"login 418", http.MethodPost, "/users/password", 418, gin.H{},
			func(c *Client) error { _, err := c.Login(ctx, "1", "p"); return err },
			apperrors.KindRejected, "An unexpected error occurred."},

		// users
		{"createAccount 400", http.MethodPost, "/user/", 400, gin.H{},
			func(c *Client) error {
				_, err := c.CreateAccount(ctx, &dto.CreateAccountRequest{ID: "123456789", Name: "Ava", Email: "a@b", Password: "secret1"})
				return err
			},
			apperrors.KindRejected, "There was a problem with the information provided."},
		{"createAccount 409", http.MethodPost, "/user/", 409, gin.H{"message": "User already exists"},
			func(c *Client) error {
				_, err := c.CreateAccount(ctx, &dto.CreateAccountRequest{ID: "123456789", Name: "Ava", Email: "a@b", Password: "secret1"})
				return err
			},
			apperrors.KindRejected, "User already exists"},
		{"fetchUserDetails 404", http.MethodGet, "/user/:id", 404, gin.H{},
			func(c *Client) error { _, err := c.FetchUserDetails(ctx, "123456789"); return err },
			apperrors.KindRejected, "User not found."},
		{"addFriend 404", http.MethodPost, "/user/add-friend", 404, gin.H{"error": "Receiver not found"},
			func(c *Client) error { _, err := c.AddFriend(ctx, "1", "2"); return err },
			apperrors.KindRejected, "Receiver not found"},
		{"respondToFriendRequest 404", http.MethodPost, "/user/respond-to-request", 404, gin.H{},
			func(c *Client) error { _, err := c.RespondToFriendRequest(ctx, "1", "2", models.FriendAccept); return err },
			apperrors.KindRejected, "Invalid sender or receiver."},

		// communities
		{"fetchAllCommunities 500", http.MethodGet, "/communities/get_all", 500, nil,
			func(c *Client) error { _, err := c.FetchAllCommunities(ctx); return err },
			apperrors.KindServer, apperrors.MsgServerFault},
		{"createCommunity 400", http.MethodPost, "/communities/add_community", 400, gin.H{},
			func(c *Client) error { _, err := c.CreateCommunity(ctx, "mgr1", "Downtown", loc); return err },
			apperrors.KindRejected, "Invalid request or community already exists."},
		{"createCommunity 404", http.MethodPost, "/communities/add_community", 404, gin.H{},
			func(c *Client) error { _, err := c.CreateCommunity(ctx, "mgr1", "Downtown", loc); return err },
			apperrors.KindRejected, "Manager not found."},
		{"createCommunity 500", http.MethodPost, "/communities/add_community", 500, gin.H{},
			func(c *Client) error { _, err := c.CreateCommunity(ctx, "mgr1", "Downtown", loc); return err },
			apperrors.KindServer, "Server error, please try again later."},
		{"findCommunitiesByRadius 500", http.MethodPost, "/communities/get_communities_by_radius_and_location", 500, gin.H{},
			func(c *Client) error { _, err := c.FindCommunitiesByRadiusAndLocation(ctx, 5, loc); return err },
			apperrors.KindServer, "A database error occurred, please try again later."},
		{"fetchCommunityDetails 400", http.MethodPost, "/communities/details_by_area", 400, gin.H{},
			func(c *Client) error { _, err := c.FetchCommunityDetails(ctx, ""); return err },
			apperrors.KindRejected, "Area name is required."},
		{"fetchCommunityDetails 404", http.MethodPost, "/communities/details_by_area", 404, gin.H{},
			func(c *Client) error { _, err := c.FetchCommunityDetails(ctx, "Nowhere"); return err },
			apperrors.KindRejected, "Community not found."},
		{"fetchCommunityMembers 404", http.MethodPost, "/communities/details_by_area", 404, gin.H{"error": "Community not found"},
			func(c *Client) error { _, err := c.FetchCommunityMembers(ctx, "Nowhere"); return err },
			apperrors.KindRejected, "Community not found"},
		{"requestToJoinCommunity 404", http.MethodPost, "/communities/request_to_join", 404, gin.H{},
			func(c *Client) error { _, err := c.RequestToJoinCommunity(ctx, "Downtown", "1", "Ava"); return err },
			apperrors.KindRejected, "Invalid sender ID or community does not exist."},
		{"respondToJoinCommunityRequest 404", http.MethodPost, "/communities/respond_to_join_request", 404, gin.H{},
			func(c *Client) error { _, err := c.RespondToJoinCommunityRequest(ctx, "r1", true); return err },
			apperrors.KindRejected, "Invalid request ID or sender user not found."},

		// events
		{"fetchAllEvents 503", http.MethodGet, "/events/get_all_events", 503, gin.H{},
			func(c *Client) error { _, err := c.FetchAllEvents(ctx); return err },
			apperrors.KindServer, apperrors.MsgServerFault},
		{"createEvent 400", http.MethodPost, "/events/add_event", 400, gin.H{},
			func(c *Client) error {
				_, err := c.CreateEvent(ctx, &dto.CreateEventRequest{EventName: "Picnic", EventType: "social"})
				return err
			},
			apperrors.KindRejected, "There was a problem with the event creation request. Please check the details and try again."},
		{"joinEvent 404", http.MethodPost, "/events/request_to_join_events", 404, gin.H{"error": "Event request not found"},
			func(c *Client) error { _, err := c.JoinEvent(ctx, "1", "Downtown", "e1"); return err },
			apperrors.KindRejected, "Event request not found"},
		{"deleteEvent 404", http.MethodPost, "/events/delete_event", 404, gin.H{},
			func(c *Client) error { _, err := c.DeleteEvent(ctx, "e1"); return err },
			apperrors.KindRejected, "Event not found."},

		// posts
		{"publishPost 400", http.MethodPost, "/posting/add_post", 400, gin.H{},
			func(c *Client) error { _, err := c.PublishPost(ctx, "1", "Downtown", models.PostContent{}); return err },
			apperrors.KindRejected, "Missing required fields."},
		{"publishPost 404", http.MethodPost, "/posting/add_post", 404, gin.H{},
			func(c *Client) error { _, err := c.PublishPost(ctx, "1", "Downtown", models.PostContent{}); return err },
			apperrors.KindRejected, "User is not a member of the community or user not found."},
		{"publishPost 409", http.MethodPost, "/posting/add_post", 409, gin.H{},
			func(c *Client) error { _, err := c.PublishPost(ctx, "1", "Downtown", models.PostContent{}); return err },
			apperrors.KindRejected, "A post with similar data already exists."},
		{"postComment 400", http.MethodPost, "/posting/add_comment_to_post", 400, gin.H{},
			func(c *Client) error {
				_, err := c.PostComment(ctx, &dto.CommentRequest{PostID: "p1", CommentText: "hi", UserID: "1"})
				return err
			},
			apperrors.KindRejected, "Missing required fields."},
		{"postComment 404", http.MethodPost, "/posting/add_comment_to_post", 404, gin.H{},
			func(c *Client) error {
				_, err := c.PostComment(ctx, &dto.CommentRequest{PostID: "p1", CommentText: "hi", UserID: "1"})
				return err
			},
			apperrors.KindRejected, "Post not found in postings."},
		{"deletePost 400", http.MethodDelete, "/posting/delete_post", 400, gin.H{},
			func(c *Client) error { _, err := c.DeletePost(ctx, ""); return err },
			apperrors.KindRejected, "Missing required field: post_id."},
		{"deletePost 404", http.MethodDelete, "/posting/delete_post", 404, gin.H{},
			func(c *Client) error { _, err := c.DeletePost(ctx, "p1"); return err },
			apperrors.KindRejected, "Post not found or already deleted."},
		{"deleteComment 400", http.MethodDelete, "/posting/delete_comment_from_post", 400, gin.H{},
			func(c *Client) error { _, err := c.DeleteComment(ctx, "p1", ""); return err },
			apperrors.KindRejected, "Missing post_id or comment_id."},
		{"deleteComment 404", http.MethodDelete, "/posting/delete_comment_from_post", 404, gin.H{},
			func(c *Client) error { _, err := c.DeleteComment(ctx, "p1", "c1"); return err },
			apperrors.KindRejected, "Post or comment not found or already deleted."},

		// night watches
		{"fetchNightWatches 400", http.MethodPost, "/night_watch/by_community", 400, gin.H{},
			func(c *Client) error { _, err := c.FetchNightWatchesByCommunity(ctx, ""); return err },
			apperrors.KindRejected, "Missing 'community_name' in request. Please provide a community name."},
		{"fetchNightWatches 404", http.MethodPost, "/night_watch/by_community", 404, gin.H{},
			func(c *Client) error { _, err := c.FetchNightWatchesByCommunity(ctx, "Nowhere"); return err },
			apperrors.KindRejected, "Community not found. Please check the community name and try again."},
		{"createNightWatch 400", http.MethodPost, "/night_watch/add_night_watch", 400, gin.H{},
			func(c *Client) error { _, err := c.CreateNightWatch(ctx, validWatchRequest()); return err },
			apperrors.KindRejected, "Missing required fields."},
		{"createNightWatch 404", http.MethodPost, "/night_watch/add_night_watch", 404, gin.H{"error": "Initiator not found"},
			func(c *Client) error { _, err := c.CreateNightWatch(ctx, validWatchRequest()); return err },
			apperrors.KindRejected, "Initiator not found"},
		{"createNightWatch 409", http.MethodPost, "/night_watch/add_night_watch", 409, gin.H{},
			func(c *Client) error { _, err := c.CreateNightWatch(ctx, validWatchRequest()); return err },
			apperrors.KindRejected, "A night watch is already scheduled for this community on that date."},
		{"createNightWatch 500", http.MethodPost, "/night_watch/add_night_watch", 500, gin.H{},
			func(c *Client) error { _, err := c.CreateNightWatch(ctx, validWatchRequest()); return err },
			apperrors.KindServer, "Database error."},
		{"joinNightWatch full", http.MethodPost, "/night_watch/join_watch", 400, gin.H{"error": "Night watch is full"},
			func(c *Client) error { _, err := c.JoinNightWatch(ctx, "1", "w1"); return err },
			apperrors.KindRejected, "Night watch is full"},
		{"joinNightWatch 404", http.MethodPost, "/night_watch/join_watch", 404, gin.H{"error": "Night watch not found"},
			func(c *Client) error { _, err := c.JoinNightWatch(ctx, "1", "w1"); return err },
			apperrors.KindRejected, "Night watch not found"},
		{"joinNightWatch 409", http.MethodPost, "/night_watch/join_watch", 409, gin.H{"error": "Night watch is full"},
			func(c *Client) error { _, err := c.JoinNightWatch(ctx, "1", "w1"); return err },
			apperrors.KindRejected, "Night watch is full"},
		{"joinNightWatch 409 no body", http.MethodPost, "/night_watch/join_watch", 409, gin.H{},
			func(c *Client) error { _, err := c.JoinNightWatch(ctx, "1", "w1"); return err },
			apperrors.KindRejected, "Failed to join the night watch."},
		{"joinNightWatch 500", http.MethodPost, "/night_watch/join_watch", 500, gin.H{},
			func(c *Client) error { _, err := c.JoinNightWatch(ctx, "1", "w1"); return err },
			apperrors.KindServer, apperrors.MsgServerFault},
		{"closeNightWatch 400", http.MethodPost, "/night_watch/close_night_watch", 400, gin.H{},
			func(c *Client) error { _, err := c.CloseNightWatch(ctx, ""); return err },
			apperrors.KindRejected, "Missing watch_id field."},
		{"closeNightWatch 404", http.MethodPost, "/night_watch/close_night_watch", 404, gin.H{},
			func(c *Client) error { _, err := c.CloseNightWatch(ctx, "w1"); return err },
			apperrors.KindRejected, "Night watch not found."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, got := stub(t, tt.method, tt.path, tt.status, tt.body)

			apiErr := expectAPIError(t, tt.invoke(c), tt.kind, tt.message)
			if apiErr.Status != tt.status {
				t.Errorf("Status = %d, expected %d", apiErr.Status, tt.status)
			}
			if got.calls != 1 {
				t.Errorf("Backend calls = %d, expected 1", got.calls)
			}
		})
	}
}

func validWatchRequest() *dto.CreateNightWatchRequest {
	return &dto.CreateNightWatchRequest{
		InitiatorID:     "123456789",
		CommunityArea:   "Downtown",
		WatchDate:       "2026-11-01",
		WatchRadius:     2.5,
		PositionsAmount: 3,
		Latitude:        1,
		Longitude:       2,
	}
}

func TestCreateNightWatch_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *dto.CreateNightWatchRequest)
		message string
	}{
		{"bad date", func(r *dto.CreateNightWatchRequest) { r.WatchDate = "01/11/2026" }, "Watch date must be in YYYY-MM-DD format."},
		{"zero radius", func(r *dto.CreateNightWatchRequest) { r.WatchRadius = 0 }, "Watch radius must be a positive number."},
		{"no positions", func(r *dto.CreateNightWatchRequest) { r.PositionsAmount = 0 }, "Positions amount must be at least 1."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, got := stub(t, http.MethodPost, "/night_watch/add_night_watch", http.StatusOK, gin.H{})

			req := validWatchRequest()
			tt.mutate(req)
			_, err := c.CreateNightWatch(context.Background(), req)
			expectAPIError(t, err, apperrors.KindValidation, tt.message)
			if got.calls != 0 {
				t.Errorf("Backend calls = %d, expected 0", got.calls)
			}
		})
	}
}

func TestJoinNightWatch_Success(t *testing.T) {
	c, got := stub(t, http.MethodPost, "/night_watch/join_watch", http.StatusOK, gin.H{"message": "Joined"})

	resp, err := c.JoinNightWatch(context.Background(), "123456789", "w1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.Message != "Joined" {
		t.Errorf("Message = %q, expected Joined", resp.Message)
	}
	if got.body["candidate_id"] != "123456789" || got.body["night_watch_id"] != "w1" {
		t.Errorf("Request body = %v, expected candidate_id and night_watch_id", got.body)
	}
}

func TestPostComment_WarningIsSuccess(t *testing.T) {
	c, _ := stub(t, http.MethodPost, "/posting/add_comment_to_post", http.StatusOK,
		gin.H{"warning": "Comment added, but the post was not found in any community.", "comment_id": "c1"})

	resp, err := c.PostComment(context.Background(), &dto.CommentRequest{PostID: "p1", CommentText: "hi", UserID: "1", UserName: "Ava"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.Warning == "" || resp.CommentID != "c1" {
		t.Errorf("Response = %+v, expected warning and comment id", resp)
	}
}

func TestPublishPost_StampsDate(t *testing.T) {
	c, got := stub(t, http.MethodPost, "/posting/add_post", http.StatusCreated, gin.H{"post_id": "p1"})
	c.now = func() time.Time { return time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC) }

	resp, err := c.PublishPost(context.Background(), "123456789", "Downtown", models.PostContent{Header: "Hi", Body: "There"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.PostID != "p1" {
		t.Errorf("PostID = %s, expected p1", resp.PostID)
	}
	if got.body["post_date"] != "2026-10-19T08:30:00.000Z" {
		t.Errorf("post_date = %v, expected 2026-10-19T08:30:00.000Z", got.body["post_date"])
	}
	content, _ := got.body["post_content"].(map[string]interface{})
	if content["header"] != "Hi" || content["body"] != "There" {
		t.Errorf("post_content = %v, expected header and body", content)
	}
}

func TestCreateEvent_DropsBlankGuests(t *testing.T) {
	c, got := stub(t, http.MethodPost, "/events/add_event", http.StatusOK, gin.H{"event_id": "e1"})

	req := &dto.CreateEventRequest{
		Initiator:     "123456789",
		CommunityName: "Downtown",
		EventName:     "Picnic",
		EventType:     "social",
		StartTime:     "2026-11-01T10:00:00.000Z",
		EndTime:       "2026-11-01T12:00:00.000Z",
		GuestList:     []string{"111111111", " ", "", "222222222"},
	}
	if _, err := c.CreateEvent(context.Background(), req); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	guests, _ := got.body["guest_list"].([]interface{})
	if len(guests) != 2 {
		t.Errorf("guest_list = %v, expected 2 entries", guests)
	}
	if len(req.GuestList) != 4 {
		t.Error("Caller's guest list should not be modified")
	}
}

func TestSearchCommunitiesByName(t *testing.T) {
	c, _ := stub(t, http.MethodGet, "/communities/get_all", http.StatusOK, []models.Community{
		{Area: "Downtown"},
		{Area: "Old Town"},
		{Area: "Harbor"},
	})

	matches, err := c.SearchCommunitiesByName(context.Background(), "  TOWN ")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("len(matches) = %d, expected 2", len(matches))
	}

	_, err = c.SearchCommunitiesByName(context.Background(), " ")
	expectAPIError(t, err, apperrors.KindValidation, msgSearchQueryRequired)
}

func TestFetchCommunityDetails_AreaInQuery(t *testing.T) {
	c, got := stub(t, http.MethodPost, "/communities/details_by_area", http.StatusOK, gin.H{
		"area":              "Old Town",
		"communityMembers":  []gin.H{{"id": "1", "name": "Ava", "phoneNumber": "050"}},
		"communityManagers": []gin.H{{"id": "1", "name": "Ava"}},
		"join_request":      gin.H{"request_id": "r1", "sender_id": "2", "sender_name": "Ben"},
	})

	details, err := c.FetchCommunityDetails(context.Background(), "Old Town")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got.query != "area=Old+Town" {
		t.Errorf("query = %s, expected area=Old+Town", got.query)
	}
	if len(details.Members) != 1 || details.Members[0].PhoneNumber != "050" {
		t.Errorf("Members = %+v, expected one member with phone", details.Members)
	}
	if details.JoinRequest == nil || details.JoinRequest.RequestID != "r1" {
		t.Errorf("JoinRequest = %+v, expected r1", details.JoinRequest)
	}
	if !details.IsManager("1") {
		t.Error("Expected user 1 to be a manager")
	}
}

func TestTransport_Headers(t *testing.T) {
	c, got := stub(t, http.MethodGet, "/events/get_all_events", http.StatusOK, []gin.H{})
	c.userAgent = "urbanhive-test"

	if _, err := c.FetchAllEvents(context.Background()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if ct := got.headers.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %s, expected application/json", ct)
	}
	if got.headers.Get(RequestIDHeader) == "" {
		t.Error("Expected a request id header")
	}
	if ua := got.headers.Get("User-Agent"); ua != "urbanhive-test" {
		t.Errorf("User-Agent = %s, expected urbanhive-test", ua)
	}
}

func TestTransport_MalformedJSON(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusBadRequest} {
		c, _ := stub(t, http.MethodGet, "/communities/get_all", status, "<html>oops</html>")

		_, err := c.FetchAllCommunities(context.Background())
		apiErr := expectAPIError(t, err, apperrors.KindTransport, apperrors.MsgTransport)
		if !errors.Is(apiErr, apperrors.ErrTransport) {
			t.Errorf("Status %d: expected error to wrap ErrTransport", status)
		}
	}
}

func TestTransport_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	base := server.URL
	server.Close()

	c := New(StaticAddress(base), Options{Timeout: time.Second}, zerolog.Nop())
	_, err := c.FetchAllEvents(context.Background())
	expectAPIError(t, err, apperrors.KindTransport, apperrors.MsgTransport)
}

func TestTransport_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	c := New(StaticAddress(server.URL), Options{Timeout: 50 * time.Millisecond}, zerolog.Nop())
	_, err := c.FetchAllEvents(context.Background())
	expectAPIError(t, err, apperrors.KindTransport, apperrors.MsgTransport)
}

func TestTransport_UnresolvedAddress(t *testing.T) {
	c := New(StaticAddress(""), Options{}, zerolog.Nop())

	_, err := c.FetchAllCommunities(context.Background())
	apiErr := expectAPIError(t, err, apperrors.KindState, apperrors.MsgNotResolved)
	if !errors.Is(apiErr, apperrors.ErrAddressUnresolved) {
		t.Error("Expected error to wrap ErrAddressUnresolved")
	}
}

func TestOutcomeOf(t *testing.T) {
	ok := OutcomeOf(nil, "Joined")
	if !ok.Success || ok.Message != "Joined" {
		t.Errorf("OutcomeOf(nil) = %+v, expected success", ok)
	}

	failed := OutcomeOf(apperrors.NewStatusError(OpJoinNightWatch, 400, "Night watch is full"), "Joined")
	if failed.Success || failed.Kind != apperrors.KindRejected || failed.Message != "Night watch is full" {
		t.Errorf("OutcomeOf(rejected) = %+v, expected rejected failure", failed)
	}

	other := OutcomeOf(errors.New("boom"), "")
	if other.Success || !strings.Contains(other.Message, "unexpected") {
		t.Errorf("OutcomeOf(plain) = %+v, expected generic failure", other)
	}
}
