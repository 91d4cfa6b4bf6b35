package ddplot

import (
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// rangeMargin widens the axis range beyond the theoretical depth
// bounds so extreme points do not sit on the frame.
const rangeMargin = 0.025

// pickRadius is the hit radius recorded on every point artist for
// pick/selection collaborators.
const pickRadius = vg.Length(2)

// DDPlot positions every sample of FData by its depth with respect to
// Dist1 (x) and Dist2 (y). The depth vectors are computed once during
// construction and are immutable afterwards.
type DDPlot struct {
	FData        *FData
	Dist1, Dist2 *FData

	// DepthDist1 and DepthDist2 hold one depth per sample of FData,
	// measured against Dist1 and Dist2 respectively.
	DepthDist1 []float64
	DepthDist2 []float64

	// Theme controls point and guide-line aesthetics. It defaults to
	// DefaultTheme; change it before calling Plot.
	Theme Theme

	method  Depth
	figure  *Figure
	guide   *plotter.Line
	artists []Artist
}

// Artist is the handle of one rendered point, index-aligned with the
// dataset samples so an interactivity layer can map a picked point
// back to the originating sample. The handle is opaque: no event
// handling lives here.
type Artist struct {
	Sample     int
	X, Y       float64
	PickRadius vg.Length

	marker *plotter.Scatter
}

// NewDDPlot fits method to fd, computes the depth of every sample of
// fd against dist1 and dist2, and resolves the drawing surface from
// target. Failures of the depth capability or of axes construction
// propagate unmodified.
func NewDDPlot(fd, dist1, dist2 *FData, method Depth, target Target) (*DDPlot, error) {
	if err := method.Fit(fd); err != nil {
		return nil, err
	}
	d1, err := method.Evaluate(fd, dist1)
	if err != nil {
		return nil, err
	}
	d2, err := method.Evaluate(fd, dist2)
	if err != nil {
		return nil, err
	}
	fig, err := resolveFigureAxes(target, fd)
	if err != nil {
		return nil, err
	}
	return &DDPlot{
		FData:      fd,
		Dist1:      dist1,
		Dist2:      dist2,
		DepthDist1: d1,
		DepthDist2: d2,
		Theme:      DefaultTheme,
		method:     method,
		figure:     fig,
	}, nil
}

// Plot renders the DD-plot onto the resolved axes and returns the
// figure: one scatter artist per sample, the axis range fixed to the
// depth bounds plus a small margin, and the diagonal guide from (0,0)
// to (1,1).
//
// Each call re-renders from the cached depth vectors. The tracked
// artist slice is replaced; plotters added to the axes by earlier
// calls accumulate there, which is the caller's to manage.
func (dd *DDPlot) Plot() (*Figure, error) {
	ax := dd.figure.Axes[0]
	style := glyphStyle(MergeStyles(dd.Theme.PointStyle, DefaultTheme.PointStyle))

	dd.artists = make([]Artist, dd.NSamples())
	for i := range dd.artists {
		x, y := dd.DepthDist1[i], dd.DepthDist2[i]
		marker, err := plotter.NewScatter(plotter.XYs{{X: x, Y: y}})
		if err != nil {
			return nil, err
		}
		marker.GlyphStyle = style
		ax.Add(marker)
		dd.artists[i] = Artist{
			Sample:     i,
			X:          x,
			Y:          y,
			PickRadius: pickRadius,
			marker:     marker,
		}
	}

	if dd.FData.Name != "" {
		ax.Title.Text = dd.FData.Name
	}
	ax.X.Label.Text = "X depth"
	ax.Y.Label.Text = "Y depth"

	// The frame is fixed by the theoretical depth range, never by
	// the observed values.
	min, max := dd.method.Bounds()
	ax.X.Min, ax.X.Max = min-rangeMargin, max+rangeMargin
	ax.Y.Min, ax.Y.Max = min-rangeMargin, max+rangeMargin

	guide, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}})
	if err != nil {
		return nil, err
	}
	guide.LineStyle = lineStyle(MergeStyles(dd.Theme.GuideStyle, DefaultTheme.GuideStyle))
	ax.Add(guide)
	dd.guide = guide

	return dd.figure, nil
}

// NSamples returns the number of dataset samples. Interactivity
// collaborators use it to size auxiliary structures.
func (dd *DDPlot) NSamples() int { return dd.FData.NSamples() }

// Artists returns the point handles of the last Plot call, one per
// sample, in sample order. It is nil before the first call.
func (dd *DDPlot) Artists() []Artist { return dd.artists }

// Figure returns the resolved drawing surface.
func (dd *DDPlot) Figure() *Figure { return dd.figure }
