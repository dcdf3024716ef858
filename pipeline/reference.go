package pipeline

import (
	"sort"

	"github.com/katalvlaran/boruvka/bgraph"
	"github.com/katalvlaran/boruvka/dsu"
)

// SequentialKruskal computes a minimum spanning forest the classic
// serial way: sort every undirected edge by ascending weight, then
// greedily union endpoints that are not yet in the same component. It
// exists purely as a reference oracle for tests — Run must always
// produce the same total weight, never a better or worse one.
//
// Adapted from lvlath/prim_kruskal.Kruskal, retargeted from core.Graph's
// string-keyed adjacency onto bgraph's dense uint32 ids and dsu.
// Unlike Kruskal, this never errors on a disconnected graph: it returns
// the forest it found, the same convention Run uses for its own output.
func SequentialKruskal(g *bgraph.Graph) ([]bgraph.Edge, float64, error) {
	if g.OriginalVertexCount == 0 {
		return nil, 0, ErrEmptyGraph
	}
	if len(g.Vertices) <= 1 {
		return nil, 0, nil
	}

	undirected := make([]bgraph.Edge, 0, len(g.Edges)/2)
	for _, e := range g.Edges {
		if e.From < e.To {
			undirected = append(undirected, e)
		}
	}
	sort.SliceStable(undirected, func(i, j int) bool {
		return undirected[i].Weight < undirected[j].Weight
	})

	sets := dsu.New(int(g.OriginalVertexCount))

	var (
		forest      []bgraph.Edge
		totalWeight float64
	)
	for _, e := range undirected {
		ru, rv := sets.Find(e.From), sets.Find(e.To)
		if ru == rv {
			continue
		}
		sets.Unite(e.From, e.To)
		forest = append(forest, e)
		totalWeight += float64(e.Weight)
	}

	return forest, totalWeight, nil
}
