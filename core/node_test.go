package core_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/digraph/core"
)

// fan builds a graph with hub → s1, s2, s3 at weights 1, 2, 3.
func fan(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.Set("hub", "center"))
	for i, name := range []string{"s1", "s2", "s3"} {
		require.NoError(t, g.Set(name, nil))
		require.NoError(t, g.Connect("hub", name, float64(i+1)))
	}

	return g
}

func TestNode_AllEdges(t *testing.T) {
	g := fan(t)
	hub, err := g.Get("hub")
	require.NoError(t, err)

	got := make(map[string]float64)
	for dest, w := range hub.AllEdges() {
		got[dest.Name()] = w
	}
	want := map[string]float64{"s1": 1, "s2": 2, "s3": 3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AllEdges mismatch (-want +got):\n%s", diff)
	}
}

func TestNode_AllEdges_FreshPerCall(t *testing.T) {
	g := fan(t)
	hub, err := g.Get("hub")
	require.NoError(t, err)

	// Early break must leave later calls unaffected.
	for range hub.AllEdges() {
		break
	}
	count := 0
	for range hub.AllEdges() {
		count++
	}
	assert.Equal(t, 3, count)
}

func TestNode_InEdges(t *testing.T) {
	g := fan(t)
	require.NoError(t, g.Connect("s1", "s2", 9))
	s2, err := g.Get("s2")
	require.NoError(t, err)

	got := make(map[string]float64)
	for src, w := range s2.InEdges() {
		got[src.Name()] = w
	}
	want := map[string]float64{"hub": 2, "s1": 9}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("InEdges mismatch (-want +got):\n%s", diff)
	}
}

func TestNode_Degrees(t *testing.T) {
	g := fan(t)
	hub, _ := g.Get("hub")
	s1, _ := g.Get("s1")

	assert.Equal(t, 3, hub.OutDegree())
	assert.Zero(t, hub.InDegree())
	assert.Zero(t, s1.OutDegree())
	assert.Equal(t, 1, s1.InDegree())
}

func TestNode_Weight(t *testing.T) {
	g := fan(t)
	hub, _ := g.Get("hub")
	s2, _ := g.Get("s2")

	w, ok := hub.Weight(s2)
	assert.True(t, ok)
	assert.Equal(t, 2.0, w)
	_, ok = s2.Weight(hub)
	assert.False(t, ok)
}

func TestNode_ConnectForeignGraph(t *testing.T) {
	g1 := core.NewGraph()
	g2 := core.NewGraph()
	require.NoError(t, g1.Set("a", nil))
	require.NoError(t, g2.Set("b", nil))
	a, _ := g1.Get("a")
	b, _ := g2.Get("b")

	assert.ErrorIs(t, a.Connect(b, 1), core.ErrNodeNotFound)
	assert.ErrorIs(t, a.Connect(nil, 1), core.ErrNodeNotFound)
}

func TestNode_String(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.Set("x", 42))
	require.NoError(t, g.Set("y", nil))
	require.NoError(t, g.Set("z", nil))
	require.NoError(t, g.Connect("x", "z", 2.5))
	require.NoError(t, g.Connect("x", "y", 1))
	x, _ := g.Get("x")

	assert.Equal(t, "(x/42 [1→y, 2.5→z])", x.String())
}
