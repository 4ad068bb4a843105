// Package service is the catalog orchestration layer: it validates caller
// input and maps each API operation 1:1 onto the store, keeping the HTTP
// layer free of business rules.
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/lakaytv/lakaytv/internal/cache"
	"github.com/lakaytv/lakaytv/internal/models"
	"github.com/lakaytv/lakaytv/internal/store"
)

// ErrInvalidInput marks a caller-supplied payload that fails a precondition.
// It is distinct from store.ErrNotFound and store.ErrUnavailable so the
// transport layer can map each to its own status code.
var ErrInvalidInput = errors.New("invalid input")

// ListChannels returns channels matching the filter. No match is an empty
// list, not an error.
func ListChannels(ctx context.Context, s store.Store, filter store.ChannelFilter) ([]models.Channel, error) {
	channels, err := s.ListChannels(ctx, filter)
	if err != nil {
		return nil, err
	}
	if channels == nil {
		channels = []models.Channel{}
	}
	return channels, nil
}

// CreateChannel validates the input and inserts a new channel.
// Category defaults to "General" when not supplied.
func CreateChannel(ctx context.Context, s store.Store, in models.ChannelInput) (*models.Channel, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if in.Logo == "" {
		return nil, fmt.Errorf("%w: logo is required", ErrInvalidInput)
	}
	if in.Stream == "" {
		return nil, fmt.Errorf("%w: stream is required", ErrInvalidInput)
	}
	return s.CreateChannel(ctx, in)
}

// GetChannel returns a single channel by id.
func GetChannel(ctx context.Context, s store.Store, channelID string) (*models.Channel, error) {
	return s.GetChannelByID(ctx, channelID)
}

// UpdateChannel applies a partial update. An update with zero fields is
// rejected; a supplied name must remain non-empty.
func UpdateChannel(ctx context.Context, s store.Store, channelID string, upd models.ChannelUpdate) (*models.Channel, error) {
	if upd.Empty() {
		return nil, fmt.Errorf("%w: no valid fields to update", ErrInvalidInput)
	}
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}
	return s.UpdateChannel(ctx, channelID, upd)
}

// DeleteChannel hard-removes a channel.
func DeleteChannel(ctx context.Context, s store.Store, channelID string) error {
	return s.DeleteChannel(ctx, channelID)
}

// Categories aggregates channel counts per category, ascending by name.
func Categories(ctx context.Context, s store.Store) ([]models.CategoryCount, error) {
	counts, err := s.CategoryCounts(ctx)
	if err != nil {
		return nil, err
	}
	if counts == nil {
		counts = []models.CategoryCount{}
	}
	return counts, nil
}

// Favorites returns the user's favorites, creating an empty record on first
// read so later toggles have a row to update.
func Favorites(ctx context.Context, s store.Store, userID string) (*models.UserFavorites, error) {
	return s.GetOrCreateFavorites(ctx, userID)
}

// ReplaceFavorites overwrites the user's full channel id list as given.
// Callers wanting a deduplicated set must dedupe before calling; only
// ToggleFavorite enforces set semantics.
func ReplaceFavorites(ctx context.Context, s store.Store, userID string, channelIDs []string) (*models.UserFavorites, error) {
	return s.ReplaceFavorites(ctx, userID, channelIDs)
}

// ToggleFavorite flips membership of channelID in the user's set.
func ToggleFavorite(ctx context.Context, s store.Store, userID, channelID string) (*models.ToggleResult, error) {
	return s.ToggleFavorite(ctx, userID, channelID)
}

// seedLockTTL bounds how long a crashed seeder can hold the seed lock.
const seedLockTTL = 30 * time.Second

// SeedSampleData populates an empty store with the bundled sample channels.
// If the store already holds channels it is a no-op reporting the existing
// count (seeded=false). When locker is non-nil a Redis lock serializes
// concurrent seed calls; without it two racing calls may, in the worst case,
// both observe an empty store and both insert. That race is accepted.
func SeedSampleData(ctx context.Context, s store.Store, locker *cache.Redis) (count int, seeded bool, err error) {
	if locker != nil {
		unlock, lockErr := cache.TryLock(ctx, locker, cache.SeedLockKey, seedLockTTL)
		switch {
		case lockErr == nil:
			defer unlock()
		case errors.Is(lockErr, cache.ErrLocked):
			// Another seed is in flight; report the current count.
			n, err := s.CountChannels(ctx)
			return n, false, err
		default:
			// Lock is an optimization, not a requirement.
			log.Printf("seed: lock unavailable, proceeding: %v", lockErr)
		}
	}

	n, err := s.CountChannels(ctx)
	if err != nil {
		return 0, false, err
	}
	if n > 0 {
		return n, false, nil
	}

	inserted, err := s.SeedChannels(ctx, sampleChannels)
	if err != nil {
		return 0, false, err
	}
	return inserted, true, nil
}
