// Command ddplot renders a DD-plot of synthetic growth curves.
//
// Two groups of saturating growth curves are generated; the dataset is
// drawn from the first group and compared against both, so points
// above the diagonal are more typical under the second group.
package main

import (
	"flag"
	"log"

	"github.com/montanaflynn/stats"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/vdobler/ddplot"
)

var (
	output  = flag.String("o", "ddplot.png", "output file")
	samples = flag.Int("n", 30, "samples per group")
	seed    = flag.Uint64("seed", 1, "random seed")
)

func main() {
	flag.Parse()

	grid := make([]float64, 24)
	for j := range grid {
		grid[j] = float64(j) * 0.5
	}
	src := rand.NewSource(*seed)

	fd, err := ddplot.NewFData(grid, growthCurves(*samples, grid, 1.0, 0.15, src))
	if err != nil {
		log.Fatal(err)
	}
	fd.Name = "Synthetic growth curves"
	dist1, err := ddplot.NewFData(grid, growthCurves(*samples, grid, 1.0, 0.15, src))
	if err != nil {
		log.Fatal(err)
	}
	dist2, err := ddplot.NewFData(grid, growthCurves(*samples, grid, 1.4, 0.15, src))
	if err != nil {
		log.Fatal(err)
	}

	dd, err := ddplot.NewDDPlot(fd, dist1, dist2, &modalDepth{}, ddplot.Target{})
	if err != nil {
		log.Fatal(err)
	}
	fig, err := dd.Plot()
	if err != nil {
		log.Fatal(err)
	}
	if err := fig.Save(*output); err != nil {
		log.Fatal(err)
	}

	summarize("depth vs dist1", dd.DepthDist1)
	summarize("depth vs dist2", dd.DepthDist2)
	log.Printf("wrote %s (%d samples)", *output, dd.NSamples())
}

// growthCurves samples n saturating growth curves r*t/(1+t) with a
// normally distributed rate r and pointwise observation noise.
func growthCurves(n int, grid []float64, mu, sigma float64, src rand.Source) [][]float64 {
	rate := distuv.Normal{Mu: mu, Sigma: sigma, Src: src}
	noise := distuv.Normal{Mu: 0, Sigma: 0.02, Src: src}
	values := make([][]float64, n)
	for i := range values {
		r := rate.Rand()
		row := make([]float64, len(grid))
		for j, t := range grid {
			row[j] = r*t/(1+t) + noise.Rand()
		}
		values[i] = row
	}
	return values
}

func summarize(name string, depths []float64) {
	mean, _ := stats.Mean(depths)
	median, _ := stats.Median(depths)
	min, _ := stats.Min(depths)
	max, _ := stats.Max(depths)
	log.Printf("%s: n=%d mean=%.3f median=%.3f range=[%.3f, %.3f]",
		name, len(depths), mean, median, min, max)
}

// modalDepth is a caller-side depth for the demo: the depth of a
// sample is 1/(1+d/s) where d is its L2 distance to the pointwise
// mean of the distribution and s is the dataset's own spread,
// established by Fit. Range (0, 1].
type modalDepth struct {
	scale float64
}

func (m *modalDepth) Fit(fd *ddplot.FData) error {
	mean := pointwiseMean(fd)
	var d float64
	for i := 0; i < fd.NSamples(); i++ {
		d += floats.Distance(fd.Sample(i), mean, 2)
	}
	m.scale = d / float64(fd.NSamples())
	if m.scale == 0 {
		m.scale = 1
	}
	return nil
}

func (m *modalDepth) Evaluate(fd, dist *ddplot.FData) ([]float64, error) {
	mean := pointwiseMean(dist)
	depths := make([]float64, fd.NSamples())
	for i := range depths {
		depths[i] = 1 / (1 + floats.Distance(fd.Sample(i), mean, 2)/m.scale)
	}
	return depths, nil
}

func (m *modalDepth) Bounds() (min, max float64) { return 0, 1 }

func pointwiseMean(fd *ddplot.FData) []float64 {
	mean := make([]float64, fd.NPoints())
	col := make([]float64, fd.NSamples())
	for j := range mean {
		for i := range col {
			col[i] = fd.Values[i][j]
		}
		mean[j] = stat.Mean(col, nil)
	}
	return mean
}
