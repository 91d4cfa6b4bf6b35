package ddplot

// Depth computes the statistical depth of functional samples with
// respect to a reference distribution. Higher usually means more
// central.
//
// The contract is two-phase: Fit establishes reference state from the
// dataset once, Evaluate is pure thereafter. Whether Fit may be called
// again is the implementation's contract; this package fits exactly
// once per DDPlot.
type Depth interface {
	// Fit establishes the method's reference state from fd.
	Fit(fd *FData) error

	// Evaluate returns one depth value per sample of fd, measured
	// against the distribution dist. The result has length
	// fd.NSamples() and every value lies within Bounds.
	Evaluate(fd, dist *FData) ([]float64, error)

	// Bounds reports the theoretical range of the depth values.
	Bounds() (min, max float64)
}
