package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakaytv/lakaytv/internal/models"
	"github.com/lakaytv/lakaytv/internal/store"
)

func strPtr(s string) *string { return &s }

func TestCreateChannelValidation(t *testing.T) {
	s := store.NewMemory()
	ctx := context.Background()

	cases := []struct {
		name string
		in   models.ChannelInput
	}{
		{"missing name", models.ChannelInput{Logo: "l", Stream: "s"}},
		{"blank name", models.ChannelInput{Name: "   ", Logo: "l", Stream: "s"}},
		{"missing logo", models.ChannelInput{Name: "n", Stream: "s"}},
		{"missing stream", models.ChannelInput{Name: "n", Logo: "l"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CreateChannel(ctx, s, tc.in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	ch, err := CreateChannel(ctx, s, models.ChannelInput{Name: "Tele Ginen", Logo: "l", Stream: "s"})
	require.NoError(t, err)
	assert.Equal(t, "General", ch.Category)
}

func TestUpdateChannelRejectsEmptyPartial(t *testing.T) {
	s := store.NewMemory()
	ctx := context.Background()

	ch, err := CreateChannel(ctx, s, models.ChannelInput{Name: "n", Logo: "l", Stream: "s"})
	require.NoError(t, err)

	_, err = UpdateChannel(ctx, s, ch.ID, models.ChannelUpdate{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = UpdateChannel(ctx, s, ch.ID, models.ChannelUpdate{Name: strPtr("  ")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	got, err := UpdateChannel(ctx, s, ch.ID, models.ChannelUpdate{Name: strPtr("Renamed")})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, ch.Logo, got.Logo)
}

func TestUpdateChannelNotFound(t *testing.T) {
	s := store.NewMemory()
	_, err := UpdateChannel(context.Background(), s, "missing", models.ChannelUpdate{Name: strPtr("X")})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListChannelsEmptyIsNotError(t *testing.T) {
	s := store.NewMemory()
	out, err := ListChannels(context.Background(), s, store.ChannelFilter{ActiveOnly: true})
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestCategoriesEmptyIsNotError(t *testing.T) {
	s := store.NewMemory()
	out, err := Categories(context.Background(), s)
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestSeedSampleDataIdempotent(t *testing.T) {
	s := store.NewMemory()
	ctx := context.Background()

	count, seeded, err := SeedSampleData(ctx, s, nil)
	require.NoError(t, err)
	assert.True(t, seeded)
	assert.Equal(t, len(sampleChannels), count)

	// Second call is a no-op reporting the existing count.
	count2, seeded2, err := SeedSampleData(ctx, s, nil)
	require.NoError(t, err)
	assert.False(t, seeded2)
	assert.Equal(t, count, count2)

	total, err := s.CountChannels(ctx)
	require.NoError(t, err)
	assert.Equal(t, count, total)
}

func TestSeedSampleDataSkipsNonEmptyStore(t *testing.T) {
	s := store.NewMemory()
	ctx := context.Background()

	_, err := CreateChannel(ctx, s, models.ChannelInput{Name: "existing", Logo: "l", Stream: "s"})
	require.NoError(t, err)

	count, seeded, err := SeedSampleData(ctx, s, nil)
	require.NoError(t, err)
	assert.False(t, seeded)
	assert.Equal(t, 1, count)
}

func TestToggleFavoriteSequence(t *testing.T) {
	s := store.NewMemory()
	ctx := context.Background()

	res, err := ToggleFavorite(ctx, s, "u1", "c1")
	require.NoError(t, err)
	assert.Equal(t, models.ToggleAdded, res.Action)

	fav, err := Favorites(ctx, s, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"c1"}, fav.ChannelIDs)

	res, err = ToggleFavorite(ctx, s, "u1", "c1")
	require.NoError(t, err)
	assert.Equal(t, models.ToggleRemoved, res.Action)

	fav, err = Favorites(ctx, s, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{}, fav.ChannelIDs)
}

func TestFavoritesDoesNotValidateChannelIDs(t *testing.T) {
	s := store.NewMemory()
	ctx := context.Background()

	// Favorites may reference channels that never existed or were deleted.
	fav, err := ReplaceFavorites(ctx, s, "u1", []string{"ghost-channel"})
	require.NoError(t, err)
	assert.Equal(t, []string{"ghost-channel"}, fav.ChannelIDs)
}
