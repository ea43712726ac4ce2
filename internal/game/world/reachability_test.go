package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestReachable(t *testing.T) {
	g := testGraph(t)

	r := g.Reachable("hall")
	assert.Equal(t, 3, r.Size())
	assert.True(t, r.Has("vault"), "locked exits still count")
	assert.True(t, g.ExitReachable())
	assert.Empty(t, g.Unreachable())

	assert.Equal(t, 0, g.Reachable("nowhere").Size())
}

func TestUnreachable(t *testing.T) {
	g, err := NewGraph([]RoomDef{
		{ID: "cell", Exits: []Exit{{Direction: North, Target: "yard"}}},
		{ID: "yard"},
		{ID: "tower", Exits: []Exit{{Direction: Down, Target: "yard"}}},
		{ID: "roof"},
	}, "cell", "roof")
	require.NoError(t, err)

	assert.Equal(t, []string{"tower", "roof"}, g.Unreachable())
	assert.False(t, g.ExitReachable())
}

func TestReachable_ConnectedGraphProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		g := genConnectedGraph(rt)
		assert.Empty(rt, g.Unreachable())
		assert.Equal(rt, g.RoomCount(), g.Reachable(g.StartRoom().ID).Size())
	})
}
