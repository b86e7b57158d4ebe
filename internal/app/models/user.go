package models

// User is the authenticated user snapshot as returned by the backend.
// Password is only ever sent, never received.
type User struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Email        string            `json:"email,omitempty"`
	Password     string            `json:"password,omitempty"`
	PhoneNumber  string            `json:"phone_number,omitempty"`
	Location     Location          `json:"location"`
	Communities  []UserCommunity   `json:"communities"`
	Friends      []Friend          `json:"friends"`
	Requests     []FriendRequest   `json:"requests"`
	NightWatches []NightWatchEntry `json:"night_watches,omitempty"`
}

// UserCommunity is one membership entry in the user's community list
type UserCommunity struct {
	Area     string   `json:"area"`
	Location Location `json:"location"`
}

// Friend is one entry of the user's friend list. The backend uses
// space-separated keys for these fields.
type Friend struct {
	ID       string   `json:"friend id"`
	Name     string   `json:"friend name"`
	Location Location `json:"friend location"`
}

// FriendRequest is an incoming friend request
type FriendRequest struct {
	SenderID   string `json:"sender_id"`
	SenderName string `json:"sender_name"`
}

// NightWatchEntry records a night watch the user has joined
type NightWatchEntry struct {
	WatchID string `json:"watch_id"`
}

// Clone returns a deep copy so callers can't mutate shared snapshots
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.Communities = append([]UserCommunity(nil), u.Communities...)
	c.Friends = append([]Friend(nil), u.Friends...)
	c.Requests = append([]FriendRequest(nil), u.Requests...)
	c.NightWatches = append([]NightWatchEntry(nil), u.NightWatches...)
	return &c
}

// HasJoinedWatch reports whether the user is registered to the given night watch
func (u *User) HasJoinedWatch(watchID string) bool {
	for _, w := range u.NightWatches {
		if w.WatchID == watchID {
			return true
		}
	}
	return false
}
