package models

import "time"

// UserFavorites is the per-user set of favorite channel ids.
// There is at most one record per user_id; channel ids are opaque strings
// and are not checked against the channels table (a favorite may outlive
// its channel).
type UserFavorites struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	ChannelIDs []string  `json:"channel_ids"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Toggle actions reported by ToggleFavorite.
const (
	ToggleAdded   = "added"
	ToggleRemoved = "removed"
)

// ToggleResult reports the membership state of a channel after a toggle.
type ToggleResult struct {
	ChannelID string `json:"channel_id"`
	Action    string `json:"action"` // ToggleAdded or ToggleRemoved
}
