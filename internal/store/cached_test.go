package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterHashDeterministic(t *testing.T) {
	a := ChannelFilter{Category: "News", Search: "tele", ActiveOnly: true}
	b := ChannelFilter{Category: "News", Search: "tele", ActiveOnly: true}
	assert.Equal(t, filterHash(a), filterHash(b))
}

func TestFilterHashDistinguishesFilters(t *testing.T) {
	base := ChannelFilter{Category: "News", Search: "tele", ActiveOnly: true}
	variants := []ChannelFilter{
		{Category: "Music", Search: "tele", ActiveOnly: true},
		{Category: "News", Search: "radio", ActiveOnly: true},
		{Category: "News", Search: "tele", ActiveOnly: false},
	}
	for _, v := range variants {
		assert.NotEqual(t, filterHash(base), filterHash(v), "%+v", v)
	}
}
