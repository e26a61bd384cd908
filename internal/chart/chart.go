// Package chart computes axis scaling and drawable geometry for bar, line
// and pie charts over small labeled datasets. It performs no drawing: the
// presentation layer turns the returned layouts into output.
package chart

import (
	"errors"
	"math"
)

// ErrNoData signals an empty or all-zero dataset. Callers render a
// "no data" placeholder instead of degenerate geometry.
var ErrNoData = errors.New("chart: no data")

// Datum is one labeled value of a dataset.
type Datum struct {
	Label string
	Value float64
	Color string
}

// Grid holds the "nice" y-axis parameters for a dataset.
type Grid struct {
	// Max is the rounded-up axis maximum; always > 0.
	Max float64
	// Ticks are evenly spaced axis values from 0 to Max, always >= 2 entries.
	Ticks []float64
}

// NiceGrid computes readable axis parameters for the given raw maximum.
//
// A non-positive maximum is treated as 5. Small integer maxima (1..5) get
// unit ticks from 0 to max so low counts still show a dense grid. Otherwise
// the tick step is derived from the order of magnitude of max/(ticks-1),
// snapped to 1, 2, 5 or 10 times that magnitude, and the axis max is the
// smallest multiple of the step at or above the raw max.
func NiceGrid(maxValue float64) Grid {
	if maxValue <= 0 {
		maxValue = 5
	}

	if maxValue <= 5 && maxValue == math.Trunc(maxValue) {
		n := int(maxValue)
		ticks := make([]float64, n+1)
		for i := range ticks {
			ticks[i] = float64(i)
		}
		return Grid{Max: maxValue, Ticks: ticks}
	}

	const numTicks = 5
	spacing := maxValue / (numTicks - 1)
	magnitude := math.Pow(10, math.Floor(math.Log10(spacing)))
	residual := spacing / magnitude

	var step float64
	switch {
	case residual > 5:
		step = 10 * magnitude
	case residual > 2:
		step = 5 * magnitude
	case residual > 1:
		step = 2 * magnitude
	default:
		step = magnitude
	}
	step = math.Max(1, math.Round(step))

	niceMax := math.Ceil(maxValue/step) * step

	var ticks []float64
	for v := 0.0; v <= niceMax; v += step {
		ticks = append(ticks, v)
	}
	if len(ticks) < 2 {
		return Grid{Max: 1, Ticks: []float64{0, 1}}
	}
	return Grid{Max: niceMax, Ticks: ticks}
}

func maxValue(data []Datum) float64 {
	max := 0.0
	for _, d := range data {
		if d.Value > max {
			max = d.Value
		}
	}
	return max
}

func allZero(data []Datum) bool {
	for _, d := range data {
		if d.Value != 0 {
			return false
		}
	}
	return true
}

// Fixed bar geometry, matching the rendered chart proportions.
const (
	BarWidth  = 32.0
	BarMargin = 16.0
)

// Bar is one positioned bar. X is the left edge within the drawable area;
// Height is in the same units as the drawable height passed to BarLayout.
type Bar struct {
	Datum
	X      float64
	Height float64
}

// BarLayout positions one bar per datum against a nice grid. Heights are
// proportional to value/Grid.Max inside drawableHeight; zero values get
// zero height. Returns ErrNoData for empty or all-zero datasets.
func BarLayout(data []Datum, drawableHeight float64) ([]Bar, Grid, error) {
	if len(data) == 0 || allZero(data) {
		return nil, Grid{}, ErrNoData
	}
	grid := NiceGrid(maxValue(data))

	bars := make([]Bar, len(data))
	for i, d := range data {
		height := 0.0
		if d.Value != 0 {
			height = d.Value / grid.Max * drawableHeight
		}
		bars[i] = Bar{
			Datum:  d,
			X:      float64(i) * (BarWidth + BarMargin),
			Height: height,
		}
	}
	return bars, grid, nil
}

// Point is one positioned line-chart point. Y is measured upward from the
// baseline, in the same units as the drawable height.
type Point struct {
	Datum
	X float64
	Y float64
}

// LineLayout positions one point per datum, x evenly spaced across
// drawableWidth and y proportional to value against the nice grid. A
// single-point dataset places its point at x=0 rather than dividing by
// zero. Returns ErrNoData for empty or all-zero datasets.
func LineLayout(data []Datum, drawableWidth, drawableHeight float64) ([]Point, Grid, error) {
	if len(data) == 0 || allZero(data) {
		return nil, Grid{}, ErrNoData
	}
	grid := NiceGrid(maxValue(data))

	segments := float64(len(data) - 1)
	if segments < 1 {
		segments = 1
	}
	spacing := drawableWidth / segments

	points := make([]Point, len(data))
	for i, d := range data {
		y := 0.0
		if d.Value != 0 {
			y = d.Value / grid.Max * drawableHeight
		}
		points[i] = Point{Datum: d, X: float64(i) * spacing, Y: y}
	}
	return points, grid, nil
}

// Slice is one pie slice. Angles are degrees; slices are consecutive
// starting at 0. LargeArc mirrors the SVG arc flag: set when the sweep
// exceeds 180 degrees.
type Slice struct {
	Datum
	Start    float64
	Sweep    float64
	Fraction float64
	LargeArc bool
}

// PieLayout assigns each datum a sweep of 360*value/total degrees. A zero
// total would produce NaN angles, so empty and all-zero datasets return
// ErrNoData instead.
func PieLayout(data []Datum) ([]Slice, error) {
	total := 0.0
	for _, d := range data {
		total += d.Value
	}
	if len(data) == 0 || total == 0 {
		return nil, ErrNoData
	}

	slices := make([]Slice, len(data))
	start := 0.0
	for i, d := range data {
		sweep := d.Value / total * 360
		slices[i] = Slice{
			Datum:    d,
			Start:    start,
			Sweep:    sweep,
			Fraction: d.Value / total,
			LargeArc: sweep > 180,
		}
		start += sweep
	}
	return slices, nil
}
