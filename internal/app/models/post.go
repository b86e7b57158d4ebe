package models

// PostContent is the header/body pair of a post
type PostContent struct {
	Header string `json:"header"`
	Body   string `json:"body"`
}

// Post published to a community
type Post struct {
	PostID        string      `json:"post_id"`
	UserID        string      `json:"user_id"`
	CommunityArea string      `json:"community_area"`
	Content       PostContent `json:"post_content"`
	PostDate      string      `json:"post_date"`
	Comments      []Comment   `json:"comments"`
}

// Comment on a post
type Comment struct {
	CommentID string `json:"comment_id"`
	PostID    string `json:"post_id"`
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	Text      string `json:"text"`
}
