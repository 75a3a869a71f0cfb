// Package metrics defines the quality report type and sentinel errors.
package metrics

import "errors"

// Sentinel errors for metric evaluation.
var (
	// ErrNilDecomposition is returned when a nil decomposition is passed.
	ErrNilDecomposition = errors.New("metrics: decomposition is nil")

	// ErrNilGraph is returned when a nil Reeb graph is passed.
	ErrNilGraph = errors.New("metrics: reeb graph is nil")

	// ErrNoCells is returned when the decomposition holds no cells.
	ErrNoCells = errors.New("metrics: decomposition has no cells")

	// ErrEigenFailed is returned when the adjacency eigendecomposition
	// does not converge.
	ErrEigenFailed = errors.New("metrics: eigendecomposition failed")
)

// Qualities aggregates the scalar measures used to rank decompositions
// across candidate sweep angles.
type Qualities struct {
	// NumCells is the cell count.
	NumCells int

	// AvgCellWidth and MinCellWidth summarize cell extents along the
	// sweep direction (rotated-frame bounding-box widths).
	AvgCellWidth float64
	MinCellWidth float64

	// AvgCellAspect and MinCellAspect are width/height ratios of the
	// rotated-frame bounding boxes.
	AvgCellAspect float64
	MinCellAspect float64

	// AreaVariance is the population variance of the cell areas.
	AreaVariance float64

	// Estrada is the Estrada index of the Reeb graph: Σᵢ exp(λᵢ) over
	// the adjacency spectrum.
	Estrada float64

	// Wiener is the Wiener index: the sum of shortest-path lengths over
	// unordered node pairs (+Inf when disconnected).
	Wiener float64

	// Assortativity is the degree Pearson correlation over edges (NaN
	// when undefined).
	Assortativity float64

	// DegreeSum is the total degree of the Reeb graph (twice the edge
	// count).
	DegreeSum int
}
