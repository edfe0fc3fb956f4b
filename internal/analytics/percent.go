package analytics

import (
	"math"
	"strconv"
)

// NoData is shown in place of a percentage that has nothing to average.
const NoData = "No data"

// Percent is an average in [0,100]. Valid is false when there was nothing
// to average, which is distinct from a legitimate 0%.
type Percent struct {
	Value float64
	Valid bool
}

func percentOf(sum float64, n int) Percent {
	if n == 0 {
		return Percent{}
	}
	return Percent{Value: clamp(sum/float64(n), 0, 100), Valid: true}
}

// Rounded returns the value rounded to one decimal place.
func (p Percent) Rounded() float64 {
	return math.Round(p.Value*10) / 10
}

func (p Percent) String() string {
	if !p.Valid {
		return NoData
	}
	return strconv.FormatFloat(p.Rounded(), 'f', -1, 64) + "%"
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampProgress(p int) float64 {
	return clamp(float64(p), 0, 100)
}
