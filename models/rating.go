package models

import (
	"fmt"
	"math"
)

// RatingScale is the fixed-point denominator for stored ratings.
const RatingScale = 10

// Rating is a 0.0-5.0 star rating stored at x10 resolution, so 47 means 4.7.
// It marshals as the raw integer to keep the wire format stable; callers that
// need the decimal value go through Float64 or String instead of dividing
// ad hoc.
type Rating int

// RatingFromFloat converts a decimal rating into its fixed-point form,
// rounding half away from zero.
func RatingFromFloat(v float64) Rating {
	return Rating(math.Round(v * RatingScale))
}

// Float64 returns the decimal value of the rating.
func (r Rating) Float64() float64 {
	return float64(r) / RatingScale
}

// String renders the rating with one decimal place, e.g. "4.7".
func (r Rating) String() string {
	return fmt.Sprintf("%d.%d", int(r)/RatingScale, int(r)%RatingScale)
}
