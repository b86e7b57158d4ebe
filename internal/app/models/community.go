package models

// Community as listed by the backend. Area is the unique human readable key.
type Community struct {
	ID          string       `json:"_id,omitempty"`
	Area        string       `json:"area"`
	Managers    []string     `json:"managers"`
	Members     []string     `json:"members"`
	Location    Location     `json:"location"`
	JoinRequest *JoinRequest `json:"join_request,omitempty"`
}

// JoinRequest is a pending request of one user to join a community
type JoinRequest struct {
	RequestID  string `json:"request_id"`
	SenderID   string `json:"sender_id"`
	SenderName string `json:"sender_name"`
}

// Member is a community member or manager as embedded in community details
type Member struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// CommunityDetails is the expanded view of a single community
type CommunityDetails struct {
	Area        string       `json:"area"`
	Location    Location     `json:"location"`
	Managers    []Member     `json:"communityManagers"`
	Members     []Member     `json:"communityMembers"`
	JoinRequest *JoinRequest `json:"join_request,omitempty"`
	Posts       []Post       `json:"posts"`
}

// IsManager reports whether userID manages the community
func (d *CommunityDetails) IsManager(userID string) bool {
	for _, m := range d.Managers {
		if m.ID == userID {
			return true
		}
	}
	return false
}
