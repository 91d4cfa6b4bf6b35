package ddplot

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Default page area per axes.
const (
	axesWidth  = 4 * vg.Inch
	axesHeight = 3 * vg.Inch
)

// A Figure is one drawable page holding a grid of axes. gonum/plot has
// no separate figure object, so an axes is a *plot.Plot and the Figure
// contributes page size and layout. Axes is row-major; trailing grid
// cells may be empty.
type Figure struct {
	Width, Height vg.Length
	Axes          []*plot.Plot
	Rows, Cols    int

	// borrowed marks a figure wrapping caller-supplied axes. It has
	// no page of its own and cannot be saved here.
	borrowed bool
}

// Target selects the drawing surface for a new plot.
//
// The zero value requests a fresh figure. A non-nil Axes is borrowed
// as-is and wins over a non-nil Figure; a non-nil Figure is reused,
// growing axes if it has none yet.
type Target struct {
	Figure *Figure
	Axes   *plot.Plot
}

// resolveFigureAxes turns a Target into one concrete figure with at
// least one axes, creating what was not supplied. A fresh figure is
// laid out for fd: one axes per codomain component, arranged in a
// near-square grid.
func resolveFigureAxes(t Target, fd *FData) (*Figure, error) {
	switch {
	case t.Axes != nil:
		return &Figure{
			Axes:     []*plot.Plot{t.Axes},
			Rows:     1,
			Cols:     1,
			borrowed: true,
		}, nil
	case t.Figure != nil:
		if len(t.Figure.Axes) == 0 {
			if err := t.Figure.addAxes(fd.Codomain()); err != nil {
				return nil, err
			}
		}
		return t.Figure, nil
	}

	fig := &Figure{}
	if err := fig.addAxes(fd.Codomain()); err != nil {
		return nil, err
	}
	return fig, nil
}

// addAxes appends n fresh axes and fixes the grid shape. Page size is
// derived from the grid unless already set.
func (fig *Figure) addAxes(n int) error {
	for i := 0; i < n; i++ {
		ax, err := plot.New()
		if err != nil {
			return err
		}
		fig.Axes = append(fig.Axes, ax)
	}
	fig.Cols = int(math.Ceil(math.Sqrt(float64(len(fig.Axes)))))
	fig.Rows = (len(fig.Axes) + fig.Cols - 1) / fig.Cols
	if fig.Width == 0 {
		fig.Width = vg.Length(fig.Cols) * axesWidth
	}
	if fig.Height == 0 {
		fig.Height = vg.Length(fig.Rows) * axesHeight
	}
	return nil
}

// Save renders the figure to path. A single axes is written through
// its own Save (format chosen by extension); a grid is aligned with
// draw.Tiles and written as PNG.
func (fig *Figure) Save(path string) error {
	if fig.borrowed {
		return errors.New("ddplot: cannot save a figure around borrowed axes")
	}
	if len(fig.Axes) == 0 {
		return errors.New("ddplot: figure has no axes")
	}
	if len(fig.Axes) == 1 {
		return fig.Axes[0].Save(fig.Width, fig.Height, path)
	}

	img := vgimg.New(fig.Width, fig.Height)
	tiles := draw.Tiles{
		Rows: fig.Rows,
		Cols: fig.Cols,
		PadX: vg.Millimeter,
		PadY: vg.Millimeter,
	}
	plots := make([][]*plot.Plot, fig.Rows)
	k := 0
	for r := range plots {
		plots[r] = make([]*plot.Plot, fig.Cols)
		for c := range plots[r] {
			if k < len(fig.Axes) {
				plots[r][c] = fig.Axes[k]
				k++
			}
		}
	}
	canvases := plot.Align(plots, tiles, draw.New(img))
	for r := range plots {
		for c := range plots[r] {
			if plots[r][c] != nil {
				plots[r][c].Draw(canvases[r][c])
			}
		}
	}

	w, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ddplot: %v", err)
	}
	defer w.Close()
	png := vgimg.PngCanvas{Canvas: img}
	_, err = png.WriteTo(w)
	return err
}
