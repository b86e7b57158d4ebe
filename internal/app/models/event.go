package models

// Event organised inside a community. Times are ISO-8601 strings.
type Event struct {
	EventID       string   `json:"event_id"`
	Initiator     string   `json:"initiator"`
	CommunityName string   `json:"community_name"`
	Location      Location `json:"location"`
	EventName     string   `json:"event_name"`
	EventType     string   `json:"event_type"`
	StartTime     string   `json:"start_time"`
	EndTime       string   `json:"end_time"`
	GuestList     []string `json:"guest_list"`
	Attending     []string `json:"attending"`
}

// IsAttending reports whether userID already joined the event
func (e *Event) IsAttending(userID string) bool {
	for _, id := range e.Attending {
		if id == userID {
			return true
		}
	}
	return false
}
