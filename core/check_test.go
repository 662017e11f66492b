package core

// White-box tests: CheckStructure can only be proven to fire by corrupting
// the internal mirror directly, which no public operation permits.

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pair(t *testing.T) *Graph {
	t.Helper()
	g := NewGraph()
	require.NoError(t, g.Set("a", nil))
	require.NoError(t, g.Set("b", nil))
	require.NoError(t, g.Connect("a", "b", 1))

	return g
}

func TestCheckStructure_Clean(t *testing.T) {
	assert.NoError(t, pair(t).CheckStructure())
	assert.NoError(t, NewGraph().CheckStructure())
}

func TestCheckStructure_MissingMirror(t *testing.T) {
	g := pair(t)
	// Drop the incoming back-reference while the owning side survives.
	delete(g.nodes["b"].in, "a")

	assert.ErrorIs(t, g.CheckStructure(), ErrStructure)
}

func TestCheckStructure_MissingOwner(t *testing.T) {
	g := pair(t)
	// Drop the owning side while the back-reference survives.
	delete(g.nodes["a"].out, "b")

	assert.ErrorIs(t, g.CheckStructure(), ErrStructure)
}

func TestCheckStructure_ForeignKey(t *testing.T) {
	g := pair(t)
	require.NoError(t, g.Set("c", nil))
	// File the a→b edge under the wrong destination key.
	e := g.nodes["a"].out["b"]
	delete(g.nodes["a"].out, "b")
	g.nodes["a"].out["c"] = e

	assert.ErrorIs(t, g.CheckStructure(), ErrStructure)
}

func TestCheckStructure_MismatchedEdgeValue(t *testing.T) {
	g := pair(t)
	// Replace the mirror with a distinct Edge value: same endpoints, but
	// no longer the same edge.
	g.nodes["b"].in["a"] = &Edge{From: "a", To: "b", Weight: 1}

	assert.ErrorIs(t, g.CheckStructure(), ErrStructure)
}
