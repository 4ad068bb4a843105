package models

import "time"

// Channel is one entry in the live-TV directory.
type Channel struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Logo        string    `json:"logo"`
	Stream      string    `json:"stream"`
	Category    string    `json:"category"`
	Description *string   `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// DefaultCategory is applied when a channel is created without one.
const DefaultCategory = "General"

// ChannelInput holds the fields a caller supplies when creating a channel.
type ChannelInput struct {
	Name        string  `json:"name"`
	Logo        string  `json:"logo"`
	Stream      string  `json:"stream"`
	Category    string  `json:"category"`
	Description *string `json:"description,omitempty"`
}

// ChannelUpdate is a partial update.
// Pointer fields: nil = don't change, non-nil = set.
type ChannelUpdate struct {
	Name        *string `json:"name"`
	Logo        *string `json:"logo"`
	Stream      *string `json:"stream"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// Empty reports whether the update carries no fields at all.
func (u ChannelUpdate) Empty() bool {
	return u.Name == nil && u.Logo == nil && u.Stream == nil &&
		u.Category == nil && u.Description == nil && u.IsActive == nil
}

// CategoryCount is one row of the category aggregation.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
