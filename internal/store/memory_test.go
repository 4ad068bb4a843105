package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakaytv/lakaytv/internal/models"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func seedChannel(t *testing.T, m *Memory, name, category string) *models.Channel {
	t.Helper()
	ch, err := m.CreateChannel(context.Background(), models.ChannelInput{
		Name:     name,
		Logo:     "https://example.com/" + name + ".png",
		Stream:   "https://example.com/" + name + ".m3u8",
		Category: category,
	})
	require.NoError(t, err)
	return ch
}

func TestCreateChannelDefaults(t *testing.T) {
	m := NewMemory()
	ch, err := m.CreateChannel(context.Background(), models.ChannelInput{
		Name: "Tele Test", Logo: "l", Stream: "s",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, ch.ID)
	assert.Equal(t, "General", ch.Category)
	assert.True(t, ch.IsActive)
	assert.False(t, ch.CreatedAt.IsZero())
}

func TestGetAfterDeleteIsNotFound(t *testing.T) {
	m := NewMemory()
	ch := seedChannel(t, m, "Tele Pacific", "News")

	require.NoError(t, m.DeleteChannel(context.Background(), ch.ID))

	_, err := m.GetChannelByID(context.Background(), ch.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = m.DeleteChannel(context.Background(), ch.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListChannelsActiveOnly(t *testing.T) {
	m := NewMemory()
	active := seedChannel(t, m, "Active One", "News")
	inactive := seedChannel(t, m, "Dormant", "News")
	_, err := m.UpdateChannel(context.Background(), inactive.ID, models.ChannelUpdate{IsActive: boolPtr(false)})
	require.NoError(t, err)

	out, err := m.ListChannels(context.Background(), ChannelFilter{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, active.ID, out[0].ID)

	// active_only=false returns both.
	out, err = m.ListChannels(context.Background(), ChannelFilter{ActiveOnly: false})
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestListChannelsCategorySubstringCaseInsensitive(t *testing.T) {
	m := NewMemory()
	news := seedChannel(t, m, "Haiti News", "News")
	seedChannel(t, m, "Sport Plus", "Sports")

	out, err := m.ListChannels(context.Background(), ChannelFilter{Category: "news", ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, news.ID, out[0].ID)
}

func TestListChannelsSearchByName(t *testing.T) {
	m := NewMemory()
	seedChannel(t, m, "Tele Ginen", "General")
	seedChannel(t, m, "Trace Urban", "Music")

	out, err := m.ListChannels(context.Background(), ChannelFilter{Search: "trace", ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Trace Urban", out[0].Name)

	out, err = m.ListChannels(context.Background(), ChannelFilter{Search: "no such channel", ActiveOnly: true})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestListChannelsCap(t *testing.T) {
	m := NewMemory()
	for i := 0; i < maxListResults+5; i++ {
		seedChannel(t, m, fmt.Sprintf("ch-%04d", i), "General")
	}
	out, err := m.ListChannels(context.Background(), ChannelFilter{ActiveOnly: true})
	require.NoError(t, err)
	assert.Len(t, out, maxListResults)
}

func TestUpdateChannelPartial(t *testing.T) {
	m := NewMemory()
	ch := seedChannel(t, m, "Original", "News")

	got, err := m.UpdateChannel(context.Background(), ch.ID, models.ChannelUpdate{Name: strPtr("Renamed")})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, ch.Logo, got.Logo)
	assert.Equal(t, ch.Stream, got.Stream)
	assert.Equal(t, ch.Category, got.Category)
	assert.Equal(t, ch.CreatedAt, got.CreatedAt)
	assert.Equal(t, ch.ID, got.ID)

	_, err = m.UpdateChannel(context.Background(), "missing", models.ChannelUpdate{Name: strPtr("X")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryCountsSortedAndIncludesInactive(t *testing.T) {
	m := NewMemory()
	for i := 0; i < 3; i++ {
		seedChannel(t, m, fmt.Sprintf("news-%d", i), "News")
	}
	for i := 0; i < 2; i++ {
		seedChannel(t, m, fmt.Sprintf("music-%d", i), "Music")
	}
	// Deactivating a channel must not remove it from the aggregation.
	out, err := m.ListChannels(context.Background(), ChannelFilter{Category: "News"})
	require.NoError(t, err)
	_, err = m.UpdateChannel(context.Background(), out[0].ID, models.ChannelUpdate{IsActive: boolPtr(false)})
	require.NoError(t, err)

	counts, err := m.CategoryCounts(context.Background())
	require.NoError(t, err)
	require.Equal(t, []models.CategoryCount{
		{Name: "Music", Count: 2},
		{Name: "News", Count: 3},
	}, counts)
}

func TestCategoryCountsDropEmptiedCategory(t *testing.T) {
	m := NewMemory()
	ch := seedChannel(t, m, "Lonely", "Religious")
	seedChannel(t, m, "Other", "News")

	require.NoError(t, m.DeleteChannel(context.Background(), ch.ID))

	counts, err := m.CategoryCounts(context.Background())
	require.NoError(t, err)
	require.Equal(t, []models.CategoryCount{{Name: "News", Count: 1}}, counts)
}

func TestGetOrCreateFavoritesMaterializes(t *testing.T) {
	m := NewMemory()

	first, err := m.GetOrCreateFavorites(context.Background(), "new_user")
	require.NoError(t, err)
	assert.Equal(t, "new_user", first.UserID)
	assert.Equal(t, []string{}, first.ChannelIDs)
	assert.NotEmpty(t, first.ID)

	second, err := m.GetOrCreateFavorites(context.Background(), "new_user")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestReplaceFavoritesStoresAsGiven(t *testing.T) {
	m := NewMemory()

	// Upsert: no prior record needed.
	fav, err := m.ReplaceFavorites(context.Background(), "u1", []string{"c1", "c2", "c2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "c2", "c2"}, fav.ChannelIDs)

	fav, err = m.ReplaceFavorites(context.Background(), "u1", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{}, fav.ChannelIDs)
}

func TestToggleFavoriteFlipsMembership(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	res, err := m.ToggleFavorite(ctx, "u1", "c1")
	require.NoError(t, err)
	assert.Equal(t, models.ToggleAdded, res.Action)
	assert.Equal(t, "c1", res.ChannelID)

	fav, err := m.GetOrCreateFavorites(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"c1"}, fav.ChannelIDs)

	res, err = m.ToggleFavorite(ctx, "u1", "c1")
	require.NoError(t, err)
	assert.Equal(t, models.ToggleRemoved, res.Action)

	fav, err = m.GetOrCreateFavorites(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{}, fav.ChannelIDs)
}

func TestToggleFavoriteParityOverSequence(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	for i := 1; i <= 7; i++ {
		res, err := m.ToggleFavorite(ctx, "u1", "c1")
		require.NoError(t, err)
		if i%2 == 1 {
			assert.Equal(t, models.ToggleAdded, res.Action, "toggle %d", i)
		} else {
			assert.Equal(t, models.ToggleRemoved, res.Action, "toggle %d", i)
		}
	}

	fav, err := m.GetOrCreateFavorites(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"c1"}, fav.ChannelIDs)
}

func TestToggleRemovesDuplicatesLeftByReplace(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	_, err := m.ReplaceFavorites(ctx, "u1", []string{"c1", "c1", "c2"})
	require.NoError(t, err)

	// Removing flips membership entirely, even when replace stored dups.
	res, err := m.ToggleFavorite(ctx, "u1", "c1")
	require.NoError(t, err)
	assert.Equal(t, models.ToggleRemoved, res.Action)

	fav, err := m.GetOrCreateFavorites(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"c2"}, fav.ChannelIDs)
}

func TestSeedChannels(t *testing.T) {
	m := NewMemory()
	n, err := m.SeedChannels(context.Background(), []models.ChannelInput{
		{Name: "A", Logo: "l", Stream: "s", Category: "News"},
		{Name: "B", Logo: "l", Stream: "s"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	count, err := m.CountChannels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	out, err := m.ListChannels(context.Background(), ChannelFilter{Search: "B", ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "General", out[0].Category)
	assert.NotEmpty(t, out[0].ID)
}
