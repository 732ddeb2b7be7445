// Package dataset holds the year/value series that enrollchart plots.
package dataset

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmpty is returned when a series has no points.
	ErrEmpty = errors.New("series has no data points")
	// ErrUnordered is returned when years are not strictly increasing.
	ErrUnordered = errors.New("years must be strictly increasing")
	// ErrBadValue is returned when a value is NaN or infinite.
	ErrBadValue = errors.New("value must be a finite number")
)

// Point is a single (year, value) pair.
type Point struct {
	Year  int
	Value float64
}

// Series is an ordered set of points plus the labels used to chart them.
type Series struct {
	Name   string // legend label
	Title  string
	XLabel string
	YLabel string
	Points []Point
}

// Years returns the x values in order.
func (s *Series) Years() []int {
	years := make([]int, len(s.Points))
	for i, p := range s.Points {
		years[i] = p.Year
	}
	return years
}

// Values returns the y values in order. It always has the same length as Years.
func (s *Series) Values() []float64 {
	values := make([]float64, len(s.Points))
	for i, p := range s.Points {
		values[i] = p.Value
	}
	return values
}

// Len returns the number of points.
func (s *Series) Len() int {
	return len(s.Points)
}

// Validate checks that the series can be plotted.
func (s *Series) Validate() error {
	if len(s.Points) == 0 {
		return ErrEmpty
	}
	for i, p := range s.Points {
		if math.IsNaN(p.Value) || math.IsInf(p.Value, 0) {
			return fmt.Errorf("point %d (year %d): %w", i, p.Year, ErrBadValue)
		}
		if i > 0 && p.Year <= s.Points[i-1].Year {
			return fmt.Errorf("year %d follows %d: %w", p.Year, s.Points[i-1].Year, ErrUnordered)
		}
	}
	return nil
}
