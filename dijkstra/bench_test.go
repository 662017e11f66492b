// Package dijkstra_test provides benchmarks for shortest-path drains.
package dijkstra_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/digraph/core"
	"github.com/katalvlaran/digraph/dijkstra"
)

// benchGraph builds a k-node ring with forward skip edges, weight i%7+1.
func benchGraph(b *testing.B, k int) *core.Graph {
	b.Helper()
	g := core.NewGraph()
	for i := 0; i < k; i++ {
		if err := g.Set(strconv.Itoa(i), nil); err != nil {
			b.Fatal(err)
		}
	}
	for i := 0; i < k; i++ {
		_ = g.Connect(strconv.Itoa(i), strconv.Itoa((i+1)%k), float64(i%7+1))
		_ = g.Connect(strconv.Itoa(i), strconv.Itoa((i+7)%k), float64(i%5+2))
	}

	return g
}

func BenchmarkDrain1k(b *testing.B) {
	g := benchGraph(b, 1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr, err := dijkstra.New(g, "0")
		if err != nil {
			b.Fatal(err)
		}
		tr.Rest()
	}
}

func BenchmarkSingleStep(b *testing.B) {
	g := benchGraph(b, 1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr, err := dijkstra.New(g, "0")
		if err != nil {
			b.Fatal(err)
		}
		tr.Next()
	}
}
