package dto

import "github.com/urbanhive/urbanhive-client/internal/app/models"

// PublishPostRequest represents a new post in a community
type PublishPostRequest struct {
	UserID        string             `json:"user_id" binding:"required"`
	CommunityArea string             `json:"community_area" binding:"required"`
	PostContent   models.PostContent `json:"post_content"`
	PostDate      string             `json:"post_date" binding:"required"`
}

// PostCreatedResponse is returned when a post is added
type PostCreatedResponse struct {
	Message string `json:"message"`
	PostID  string `json:"post_id"`
}

// CommentRequest adds a comment to a post
type CommentRequest struct {
	PostID      string `json:"post_id" binding:"required"`
	CommentText string `json:"comment_text" binding:"required" validate:"required"`
	UserID      string `json:"user_id" binding:"required"`
	UserName    string `json:"user_name"`
}

// CommentAddedResponse may carry a warning when the post isn't indexed in any community
type CommentAddedResponse struct {
	Message   string `json:"message,omitempty"`
	Warning   string `json:"warning,omitempty"`
	CommentID string `json:"comment_id"`
}

// DeletePostRequest identifies the post to delete
type DeletePostRequest struct {
	PostID string `json:"post_id" binding:"required"`
}

// DeleteCommentRequest identifies the comment to delete
type DeleteCommentRequest struct {
	PostID    string `json:"post_id" binding:"required"`
	CommentID string `json:"comment_id" binding:"required"`
}
