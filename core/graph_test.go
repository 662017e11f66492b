package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/digraph/core"
)

func TestSet_CreateAndUpdateInPlace(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.Set("a", "first"))
	require.NoError(t, g.Set("b", "second"))
	require.NoError(t, g.Connect("a", "b", 2))

	// Reassigning an existing name updates the payload without
	// disturbing edges.
	require.NoError(t, g.Set("a", "updated"))
	n, err := g.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "updated", n.Value())
	ok, err := g.Connected("a", "b")
	require.NoError(t, err)
	assert.True(t, ok, "Set must not disturb existing edges")
	assert.Equal(t, 2, g.Len())
}

func TestSet_EmptyName(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.Set("", nil), core.ErrEmptyNodeName)
}

func TestGet_Missing(t *testing.T) {
	g := core.NewGraph()
	_, err := g.Get("ghost")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = g.Get("")
	assert.ErrorIs(t, err, core.ErrEmptyNodeName)
}

func TestConnectDisconnect_RestoresPriorState(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.Set("a", nil))
	require.NoError(t, g.Set("b", nil))

	require.NoError(t, g.Connect("a", "b", 1))
	ok, err := g.Connected("a", "b")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, g.Disconnect("a", "b"))
	ok, err = g.Connected("a", "b")
	require.NoError(t, err)
	assert.False(t, ok, "disconnect must restore the pre-connect state")
	assert.Zero(t, g.EdgeCount())
	require.NoError(t, g.CheckStructure())

	// No residue: the same pair can be connected again.
	require.NoError(t, g.Connect("a", "b", 1))
	require.NoError(t, g.CheckStructure())
}

func TestConnect_DuplicatePair(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.Set("a", nil))
	require.NoError(t, g.Set("b", nil))
	require.NoError(t, g.Connect("a", "b", 1))

	assert.ErrorIs(t, g.Connect("a", "b", 7), core.ErrEdgeExists)
	// The reverse direction is a distinct ordered pair.
	assert.NoError(t, g.Connect("b", "a", 1))
}

func TestConnect_MissingEndpoint(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.Set("a", nil))

	assert.ErrorIs(t, g.Connect("a", "ghost", 1), core.ErrNodeNotFound)
	assert.ErrorIs(t, g.Connect("ghost", "a", 1), core.ErrNodeNotFound)
}

func TestDisconnect_NoEdge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.Set("a", nil))
	require.NoError(t, g.Set("b", nil))

	assert.ErrorIs(t, g.Disconnect("a", "b"), core.ErrEdgeNotFound)
}

func TestDelete_CascadesBothDirections(t *testing.T) {
	g := core.NewGraph()
	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, g.Set(name, nil))
	}
	require.NoError(t, g.Connect("a", "b", 1)) // incoming to b
	require.NoError(t, g.Connect("b", "c", 1)) // outgoing from b
	require.NoError(t, g.Connect("c", "a", 1)) // untouched

	require.NoError(t, g.Delete("b"))

	assert.False(t, g.Has("b"))
	// b is no longer indexable from either side.
	_, err := g.Connected("a", "b")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = g.Connected("b", "c")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	// Only the untouched edge remains and the structure is consistent.
	assert.Equal(t, 1, g.EdgeCount())
	require.NoError(t, g.CheckStructure())
}

func TestDelete_Missing(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.Delete("ghost"), core.ErrNodeNotFound)
}

func TestNamesAndLen(t *testing.T) {
	g := core.NewGraph()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, g.Set(name, nil))
	}
	assert.Equal(t, 3, g.Len())
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, g.Names())
}

// TestCheckStructure_AfterMutationSequence exercises a finite sequence of
// connect/disconnect/delete operations, asserting the structural invariant
// after every step.
func TestCheckStructure_AfterMutationSequence(t *testing.T) {
	g := core.NewGraph()
	for _, name := range []string{"n0", "n1", "n2", "n3", "n4"} {
		require.NoError(t, g.Set(name, nil))
	}

	steps := []func() error{
		func() error { return g.Connect("n0", "n1", 1) },
		func() error { return g.Connect("n1", "n2", 2) },
		func() error { return g.Connect("n2", "n0", 3) }, // cycle is fine
		func() error { return g.Connect("n3", "n1", 4) },
		func() error { return g.Disconnect("n1", "n2") },
		func() error { return g.Connect("n1", "n2", 5) },
		func() error { return g.Delete("n1") },
		func() error { return g.Connect("n2", "n3", 6) },
		func() error { return g.Delete("n0") },
	}
	for i, step := range steps {
		require.NoError(t, step(), "step %d", i)
		require.NoError(t, g.CheckStructure(), "invariant broken after step %d", i)
	}
}

func TestGraph_String(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.Set("a", 1))
	require.NoError(t, g.Set("b", 2))
	require.NoError(t, g.Connect("a", "b", 3))

	assert.Equal(t, "{ (a/1 [3→b]), (b/2 []) }", g.String())
}
