package models

import "fmt"

// NightWatch is a scheduled, capacity-bounded community patrol
type NightWatch struct {
	WatchID         string        `json:"watch_id"`
	InitiatorID     string        `json:"initiator_id"`
	InitiatorName   string        `json:"initiator_name"`
	CommunityArea   string        `json:"community_area"`
	WatchDate       string        `json:"watch_date"`
	WatchRadius     float64       `json:"watch_radius"`
	PositionsAmount int           `json:"positions_amount"`
	Location        Location      `json:"location"`
	Members         []WatchMember `json:"watch_members"`
	Closed          bool          `json:"closed,omitempty"`
}

// WatchMember is a user registered to a night watch
type WatchMember struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// HasMember reports whether userID is registered
func (w *NightWatch) HasMember(userID string) bool {
	for _, m := range w.Members {
		if m.ID == userID {
			return true
		}
	}
	return false
}

// Full reports whether all positions are taken
func (w *NightWatch) Full() bool {
	return len(w.Members) >= w.PositionsAmount
}

// Seats renders the occupancy as "registered / capacity"
func (w *NightWatch) Seats() string {
	return fmt.Sprintf("%d / %d", len(w.Members), w.PositionsAmount)
}
