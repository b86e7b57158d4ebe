package client

import (
	"context"
	"net/http"

	"github.com/urbanhive/urbanhive-client/internal/app/models"
	"github.com/urbanhive/urbanhive-client/internal/app/models/dto"
	"github.com/urbanhive/urbanhive-client/internal/pkg/apperrors"
	"github.com/urbanhive/urbanhive-client/internal/pkg/helpers"
)

const (
	OpPublishPost   = "publishPost"
	OpPostComment   = "postComment"
	OpDeletePost    = "deletePost"
	OpDeleteComment = "deleteComment"
)

var (
	publishPostFallbacks = fallbacks{
		http.StatusBadRequest:          "Missing required fields.",
		http.StatusNotFound:            "User is not a member of the community or user not found.",
		http.StatusConflict:            "A post with similar data already exists.",
		http.StatusInternalServerError: apperrors.MsgServerFault,
		0:                              "Server responded with an error!",
	}
	postCommentFallbacks = fallbacks{
		http.StatusBadRequest: "Missing required fields.",
		http.StatusNotFound:   "Post not found in postings.",
		0:                     "An unexpected error occurred.",
	}
	deletePostFallbacks = fallbacks{
		http.StatusBadRequest: "Missing required field: post_id.",
		http.StatusNotFound:   "Post not found or already deleted.",
		0:                     "Failed to delete post",
	}
	deleteCommentFallbacks = fallbacks{
		http.StatusBadRequest: "Missing post_id or comment_id.",
		http.StatusNotFound:   "Post or comment not found or already deleted.",
		0:                     "Failed to delete comment",
	}
)

// PublishPost adds a post to the community area, stamped with the current time
func (c *Client) PublishPost(ctx context.Context, userID, communityArea string, content models.PostContent) (*dto.PostCreatedResponse, error) {
	var resp dto.PostCreatedResponse
	if _, err := c.do(ctx, call{
		op:     OpPublishPost,
		method: http.MethodPost,
		path:   "/posting/add_post",
		body: &dto.PublishPostRequest{
			UserID:        userID,
			CommunityArea: communityArea,
			PostContent:   content,
			PostDate:      helpers.FormatTimestamp(c.now()),
		},
		fallbacks: publishPostFallbacks,
	}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PostComment adds a comment to a post. A success may carry a warning when the
// post is not indexed by any community.
func (c *Client) PostComment(ctx context.Context, req *dto.CommentRequest) (*dto.CommentAddedResponse, error) {
	if err := c.validate(OpPostComment, req); err != nil {
		return nil, err
	}

	var resp dto.CommentAddedResponse
	if _, err := c.do(ctx, call{
		op:        OpPostComment,
		method:    http.MethodPost,
		path:      "/posting/add_comment_to_post",
		body:      req,
		fallbacks: postCommentFallbacks,
	}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeletePost removes postID
func (c *Client) DeletePost(ctx context.Context, postID string) (*dto.MessageResponse, error) {
	var resp dto.MessageResponse
	if _, err := c.do(ctx, call{
		op:        OpDeletePost,
		method:    http.MethodDelete,
		path:      "/posting/delete_post",
		body:      &dto.DeletePostRequest{PostID: postID},
		fallbacks: deletePostFallbacks,
	}, &resp); err != nil {
		return nil, err
	}
	if resp.Message == "" {
		resp.Message = "Post deleted successfully."
	}
	return &resp, nil
}

// DeleteComment removes commentID from postID. The confirmation is either a
// message or a warning.
func (c *Client) DeleteComment(ctx context.Context, postID, commentID string) (*dto.MessageResponse, error) {
	var resp dto.MessageResponse
	if _, err := c.do(ctx, call{
		op:        OpDeleteComment,
		method:    http.MethodDelete,
		path:      "/posting/delete_comment_from_post",
		body:      &dto.DeleteCommentRequest{PostID: postID, CommentID: commentID},
		fallbacks: deleteCommentFallbacks,
	}, &resp); err != nil {
		return nil, err
	}
	if resp.Message == "" && resp.Warning == "" {
		resp.Message = "Comment deleted successfully"
	}
	return &resp, nil
}
