package ddplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

func TestResolveNothing(t *testing.T) {
	fd := growthData(t, "")

	fig, err := resolveFigureAxes(Target{}, fd)
	require.NoError(t, err)
	require.Len(t, fig.Axes, 1)
	assert.Equal(t, 1, fig.Rows)
	assert.Equal(t, 1, fig.Cols)
	assert.Equal(t, 4*vg.Inch, fig.Width)
	assert.Equal(t, 3*vg.Inch, fig.Height)
}

func TestResolveExistingFigure(t *testing.T) {
	fd := growthData(t, "")
	supplied := &Figure{Width: 6 * vg.Inch, Height: 6 * vg.Inch}

	fig, err := resolveFigureAxes(Target{Figure: supplied}, fd)
	require.NoError(t, err)
	assert.Same(t, supplied, fig)
	require.Len(t, fig.Axes, 1)

	// A figure that already has axes is reused untouched.
	again, err := resolveFigureAxes(Target{Figure: supplied}, fd)
	require.NoError(t, err)
	assert.Same(t, supplied, again)
	assert.Len(t, again.Axes, 1)
	assert.Equal(t, 6*vg.Inch, again.Width)
}

func TestResolveExistingAxes(t *testing.T) {
	fd := growthData(t, "")
	ax, err := plot.New()
	require.NoError(t, err)

	fig, err := resolveFigureAxes(Target{Axes: ax}, fd)
	require.NoError(t, err)
	require.Len(t, fig.Axes, 1)
	assert.Same(t, ax, fig.Axes[0])

	// Borrowed axes belong to a surface this package never saw.
	err = fig.Save(filepath.Join(t.TempDir(), "out.png"))
	assert.Error(t, err)
}

func TestFigureSave(t *testing.T) {
	fd := growthData(t, "Sample Growth Curves")
	dd, err := NewDDPlot(fd, fd, fd, &meanDistDepth{}, Target{})
	require.NoError(t, err)
	fig, err := dd.Plot()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "ddplot.png")
	require.NoError(t, fig.Save(path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestFigureSaveGrid(t *testing.T) {
	fig := &Figure{}
	require.NoError(t, fig.addAxes(3))
	require.Len(t, fig.Axes, 3)
	assert.Equal(t, 2, fig.Rows)
	assert.Equal(t, 2, fig.Cols)

	path := filepath.Join(t.TempDir(), "grid.png")
	require.NoError(t, fig.Save(path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestFigureSaveEmpty(t *testing.T) {
	fig := &Figure{}
	assert.Error(t, fig.Save(filepath.Join(t.TempDir(), "empty.png")))
}
