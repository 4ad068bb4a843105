package store

import (
	"context"
	"errors"

	"github.com/lakaytv/lakaytv/internal/models"
)

// ErrNotFound is returned when a lookup by id matches nothing.
var ErrNotFound = errors.New("not found")

// ErrUnavailable wraps any storage failure that is not a simple miss:
// connection errors, timeouts, malformed rows. Callers distinguish it from
// ErrNotFound with errors.Is.
var ErrUnavailable = errors.New("storage unavailable")

// maxListResults caps ListChannels result sets. The API exposes no paging
// beyond this fixed cap.
const maxListResults = 1000

// Store defines persistence for channels and per-user favorites.
type Store interface {
	// ListChannels returns channels matching the filter, capped at 1000,
	// in an order that is stable for a given store state.
	ListChannels(ctx context.Context, filter ChannelFilter) ([]models.Channel, error)
	// CreateChannel inserts a new channel, generating its id and created_at.
	CreateChannel(ctx context.Context, in models.ChannelInput) (*models.Channel, error)
	// GetChannelByID returns a single channel by id.
	GetChannelByID(ctx context.Context, channelID string) (*models.Channel, error)
	// UpdateChannel applies the non-nil fields of upd and returns the full
	// record after the update. id and created_at are immutable.
	UpdateChannel(ctx context.Context, channelID string, upd models.ChannelUpdate) (*models.Channel, error)
	// DeleteChannel hard-removes a channel.
	DeleteChannel(ctx context.Context, channelID string) error
	// CategoryCounts groups all channels (active or not) by category,
	// ascending by category name.
	CategoryCounts(ctx context.Context) ([]models.CategoryCount, error)
	// CountChannels returns the total number of channel records.
	CountChannels(ctx context.Context) (int, error)
	// SeedChannels inserts the given channels in bulk, assigning each its
	// own id and created_at, and returns the number inserted. The caller
	// is responsible for the only-if-empty guard.
	SeedChannels(ctx context.Context, in []models.ChannelInput) (int, error)

	// GetOrCreateFavorites returns the favorites record for userID,
	// materializing an empty one first if none exists. The read has a
	// write side effect so later toggles have a row to update.
	GetOrCreateFavorites(ctx context.Context, userID string) (*models.UserFavorites, error)
	// ReplaceFavorites overwrites the full channel id list for userID,
	// creating the record if absent. The list is stored as given; it is
	// not deduplicated.
	ReplaceFavorites(ctx context.Context, userID string, channelIDs []string) (*models.UserFavorites, error)
	// ToggleFavorite flips membership of channelID in the user's set as a
	// single atomic operation: concurrent toggles on the same user must
	// not lose updates.
	ToggleFavorite(ctx context.Context, userID, channelID string) (*models.ToggleResult, error)
}

// ChannelFilter holds optional filters for listing channels.
type ChannelFilter struct {
	Category   string // case-insensitive substring match on category
	Search     string // case-insensitive substring match on name
	ActiveOnly bool   // when true, only is_active channels are returned
}
