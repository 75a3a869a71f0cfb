package metrics

import (
	"math"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/boustro/bcd"
	"github.com/katalvlaran/boustro/reeb"
)

// Evaluate computes the aggregate quality report of a decomposition and
// its Reeb graph.
// Complexity: O(C³) dominated by the eigendecomposition and all-pairs
// shortest paths over C cells.
func Evaluate(dec *bcd.Decomposition, rg *reeb.Graph) (Qualities, error) {
	// 1. Validate input
	if dec == nil {
		return Qualities{}, ErrNilDecomposition
	}
	if rg == nil {
		return Qualities{}, ErrNilGraph
	}
	if len(dec.Cells) == 0 {
		return Qualities{}, ErrNoCells
	}

	// 2. Per-cell extents in the sweep frame
	boxes, err := BBoxes(dec)
	if err != nil {
		return Qualities{}, err
	}
	q := Qualities{
		NumCells:      len(dec.Cells),
		MinCellWidth:  math.Inf(1),
		MinCellAspect: math.Inf(1),
	}
	for _, b := range boxes {
		w, h := b.X.Length(), b.Y.Length()
		aspect := w / h
		q.AvgCellWidth += w
		q.AvgCellAspect += aspect
		q.MinCellWidth = math.Min(q.MinCellWidth, w)
		q.MinCellAspect = math.Min(q.MinCellAspect, aspect)
	}
	q.AvgCellWidth /= float64(q.NumCells)
	q.AvgCellAspect /= float64(q.NumCells)

	// 3. Area spread
	areas, err := Areas(dec)
	if err != nil {
		return Qualities{}, err
	}
	q.AreaVariance = stat.PopVariance(areas, nil)

	// 4. Reeb-graph indices
	q.Estrada, err = estrada(rg)
	if err != nil {
		return Qualities{}, err
	}
	q.Wiener = wiener(rg)
	q.Assortativity = assortativity(rg)
	q.DegreeSum = 2 * rg.Edges().Len()

	return q, nil
}

// estrada returns Σ exp(λ) over the eigenvalues of the Reeb adjacency
// matrix.
func estrada(rg *reeb.Graph) (float64, error) {
	n := rg.Len()
	adj := mat.NewSymDense(n, nil)
	it := rg.Edges()
	for it.Next() {
		e := it.Edge()
		adj.SetSym(int(e.From().ID()), int(e.To().ID()), 1)
	}

	var eig mat.EigenSym
	if !eig.Factorize(adj, false) {
		return 0, ErrEigenFailed
	}
	var sum float64
	for _, v := range eig.Values(nil) {
		sum += math.Exp(v)
	}

	return sum, nil
}

// wiener returns the sum of shortest-path lengths over unordered node
// pairs, +Inf when the graph is disconnected.
func wiener(rg *reeb.Graph) float64 {
	n := rg.Len()
	if n < 2 {
		return 0
	}
	all := path.DijkstraAllPaths(rg)
	var sum float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sum += all.Weight(int64(i), int64(j))
		}
	}

	return sum
}

// assortativity returns the Pearson correlation of endpoint degrees
// over all edges, counting both orientations. NaN when the graph has no
// edges or all degrees coincide.
func assortativity(rg *reeb.Graph) float64 {
	var xs, ys []float64
	it := rg.Edges()
	for it.Next() {
		e := it.Edge()
		du := float64(rg.From(e.From().ID()).Len())
		dv := float64(rg.From(e.To().ID()).Len())
		xs = append(xs, du, dv)
		ys = append(ys, dv, du)
	}
	if len(xs) == 0 {
		return math.NaN()
	}

	return stat.Correlation(xs, ys, nil)
}
