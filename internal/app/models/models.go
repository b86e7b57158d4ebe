package models

// Location is a geographic point with an optional human readable address
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

// IsZero reports whether no coordinates were set
func (l Location) IsZero() bool {
	return l.Latitude == 0 && l.Longitude == 0 && l.Address == ""
}

// Reply to a pending friend request
type FriendResponse int

const (
	FriendDecline FriendResponse = 0
	FriendAccept  FriendResponse = 1
)
