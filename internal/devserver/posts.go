package devserver

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/urbanhive/urbanhive-client/internal/app/models"
	"github.com/urbanhive/urbanhive-client/internal/app/models/dto"
	"github.com/urbanhive/urbanhive-client/internal/middleware"
)

// postsOf lists the posts of area, oldest first
func (b *Backend) postsOf(area string) []models.Post {
	posts := make([]models.Post, 0)
	for _, p := range b.posts {
		if p.CommunityArea == area {
			cp := *p
			cp.Comments = append([]models.Comment{}, p.Comments...)
			posts = append(posts, cp)
		}
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].PostDate < posts[j].PostDate })
	return posts
}

// AddPost handles POST /posting/add_post. Only members may post and an
// identical post by the same author is a conflict.
func (b *Backend) AddPost(c *gin.Context) {
	var req dto.PublishPostRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		strings.TrimSpace(req.PostContent.Header) == "" || strings.TrimSpace(req.PostContent.Body) == "" {
		middleware.HandleAPIError(c, badRequest("Missing required fields"))
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	community, ok := b.communities[req.CommunityArea]
	if _, known := b.users[req.UserID]; !known || !ok || !contains(community.Members, req.UserID) {
		middleware.HandleAPIError(c, notFound("User is not a member of the community or user not found"))
		return
	}
	for _, p := range b.posts {
		if p.UserID == req.UserID && p.CommunityArea == req.CommunityArea && p.Content == req.PostContent {
			middleware.HandleAPIError(c, conflict("A post with similar data already exists"))
			return
		}
	}

	post := &models.Post{
		PostID:        b.newID(),
		UserID:        req.UserID,
		CommunityArea: req.CommunityArea,
		Content:       req.PostContent,
		PostDate:      req.PostDate,
		Comments:      []models.Comment{},
	}
	b.posts[post.PostID] = post
	c.JSON(http.StatusCreated, dto.PostCreatedResponse{Message: "Post added successfully", PostID: post.PostID})
}

// AddComment handles POST /posting/add_comment_to_post. A post whose
// community no longer exists still takes the comment, with a warning.
func (b *Backend) AddComment(c *gin.Context) {
	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, badRequest("Missing required fields"))
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	post, ok := b.posts[req.PostID]
	if !ok {
		middleware.HandleAPIError(c, notFound("Post not found in postings"))
		return
	}

	comment := models.Comment{
		CommentID: b.newID(),
		PostID:    post.PostID,
		UserID:    req.UserID,
		UserName:  req.UserName,
		Text:      req.CommentText,
	}
	post.Comments = append(post.Comments, comment)

	resp := dto.CommentAddedResponse{CommentID: comment.CommentID}
	if _, indexed := b.communities[post.CommunityArea]; indexed {
		resp.Message = "Comment added successfully"
	} else {
		resp.Warning = "Comment added, but the post was not found in any community"
	}
	c.JSON(http.StatusOK, resp)
}

// DeletePost handles DELETE /posting/delete_post
func (b *Backend) DeletePost(c *gin.Context) {
	var req dto.DeletePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, badRequest("Missing required field: post_id"))
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.posts[req.PostID]; !ok {
		middleware.HandleAPIError(c, notFound("Post not found or already deleted"))
		return
	}
	delete(b.posts, req.PostID)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Post deleted successfully"})
}

// DeleteComment handles DELETE /posting/delete_comment_from_post
func (b *Backend) DeleteComment(c *gin.Context) {
	var req dto.DeleteCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, badRequest("Missing post_id or comment_id"))
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	post, ok := b.posts[req.PostID]
	if !ok {
		middleware.HandleAPIError(c, notFound("Post or comment not found or already deleted"))
		return
	}
	for i, cm := range post.Comments {
		if cm.CommentID == req.CommentID {
			post.Comments = append(post.Comments[:i], post.Comments[i+1:]...)
			c.JSON(http.StatusOK, dto.MessageResponse{Message: "Comment deleted successfully"})
			return
		}
	}
	middleware.HandleAPIError(c, notFound("Post or comment not found or already deleted"))
}
