package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lakaytv/lakaytv/internal/models"
)

// Memory is an in-process Store, used in tests and when no DATABASE_URL is
// configured. A single mutex stands in for the per-row atomicity the
// Postgres store gets from single-statement upserts.
type Memory struct {
	mu        sync.Mutex
	channels  []models.Channel // insertion order, mirroring ORDER BY created_at, id
	favorites map[string]*models.UserFavorites
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{favorites: make(map[string]*models.UserFavorites)}
}

func matchLower(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func (m *Memory) ListChannels(_ context.Context, filter ChannelFilter) ([]models.Channel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Channel
	for _, ch := range m.channels {
		if filter.ActiveOnly && !ch.IsActive {
			continue
		}
		if filter.Category != "" && !matchLower(ch.Category, filter.Category) {
			continue
		}
		if filter.Search != "" && !matchLower(ch.Name, filter.Search) {
			continue
		}
		out = append(out, ch)
		if len(out) == maxListResults {
			break
		}
	}
	return out, nil
}

func newChannel(in models.ChannelInput, now time.Time) models.Channel {
	ch := models.Channel{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Logo:        in.Logo,
		Stream:      in.Stream,
		Category:    in.Category,
		Description: in.Description,
		IsActive:    true,
		CreatedAt:   now,
	}
	if ch.Category == "" {
		ch.Category = models.DefaultCategory
	}
	return ch
}

func (m *Memory) CreateChannel(_ context.Context, in models.ChannelInput) (*models.Channel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch := newChannel(in, time.Now().UTC())
	m.channels = append(m.channels, ch)
	return &ch, nil
}

func (m *Memory) GetChannelByID(_ context.Context, channelID string) (*models.Channel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, ch := range m.channels {
		if ch.ID == channelID {
			c := ch
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) UpdateChannel(_ context.Context, channelID string, upd models.ChannelUpdate) (*models.Channel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.channels {
		if m.channels[i].ID != channelID {
			continue
		}
		ch := &m.channels[i]
		if upd.Name != nil {
			ch.Name = *upd.Name
		}
		if upd.Logo != nil {
			ch.Logo = *upd.Logo
		}
		if upd.Stream != nil {
			ch.Stream = *upd.Stream
		}
		if upd.Category != nil {
			ch.Category = *upd.Category
		}
		if upd.Description != nil {
			ch.Description = upd.Description
		}
		if upd.IsActive != nil {
			ch.IsActive = *upd.IsActive
		}
		c := *ch
		return &c, nil
	}
	return nil, ErrNotFound
}

func (m *Memory) DeleteChannel(_ context.Context, channelID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.channels {
		if m.channels[i].ID == channelID {
			m.channels = append(m.channels[:i], m.channels[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) CategoryCounts(_ context.Context) ([]models.CategoryCount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	byName := make(map[string]int)
	for _, ch := range m.channels {
		byName[ch.Category]++
	}
	counts := make([]models.CategoryCount, 0, len(byName))
	for name, n := range byName {
		counts = append(counts, models.CategoryCount{Name: name, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Name < counts[j].Name })
	return counts, nil
}

func (m *Memory) CountChannels(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.channels), nil
}

func (m *Memory) SeedChannels(_ context.Context, in []models.ChannelInput) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	for _, c := range in {
		m.channels = append(m.channels, newChannel(c, now))
	}
	return len(in), nil
}

func (m *Memory) GetOrCreateFavorites(_ context.Context, userID string) (*models.UserFavorites, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.favoritesLocked(userID), nil
}

// favoritesLocked returns a copy of the user's record, materializing an
// empty one if absent. Caller holds mu.
func (m *Memory) favoritesLocked(userID string) *models.UserFavorites {
	f, ok := m.favorites[userID]
	if !ok {
		f = &models.UserFavorites{
			ID:         uuid.NewString(),
			UserID:     userID,
			ChannelIDs: []string{},
			UpdatedAt:  time.Now().UTC(),
		}
		m.favorites[userID] = f
	}
	c := *f
	c.ChannelIDs = append([]string(nil), f.ChannelIDs...)
	if c.ChannelIDs == nil {
		c.ChannelIDs = []string{}
	}
	return &c
}

func (m *Memory) ReplaceFavorites(_ context.Context, userID string, channelIDs []string) (*models.UserFavorites, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.favoritesLocked(userID) // materialize if absent
	f := m.favorites[userID]
	f.ChannelIDs = append([]string{}, channelIDs...)
	f.UpdatedAt = time.Now().UTC()
	c := *f
	c.ChannelIDs = append([]string(nil), f.ChannelIDs...)
	if c.ChannelIDs == nil {
		c.ChannelIDs = []string{}
	}
	return &c, nil
}

func (m *Memory) ToggleFavorite(_ context.Context, userID, channelID string) (*models.ToggleResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.favoritesLocked(userID)
	f := m.favorites[userID]

	kept := f.ChannelIDs[:0:0]
	removed := false
	for _, id := range f.ChannelIDs {
		if id == channelID {
			removed = true
			continue
		}
		kept = append(kept, id)
	}
	res := &models.ToggleResult{ChannelID: channelID, Action: models.ToggleRemoved}
	if !removed {
		kept = append(kept, channelID)
		res.Action = models.ToggleAdded
	}
	f.ChannelIDs = kept
	f.UpdatedAt = time.Now().UTC()
	return res, nil
}
