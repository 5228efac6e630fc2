package layout

import "math"

// This file holds the numeric helpers shared by geometry and text layout.

// Conversion constants between pt and mm. The canvas backend uses one millimetre
// per pixel, so a pixel font size converts to points with MmToPt.
const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm
)

// Round rounds half up, matching the rounding the template constants were tuned with
// (Go's math.Round rounds half away from zero, which differs for negative halves).
func Round(x float64) float64 {
	return math.Floor(x + 0.5)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// PxToPt converts a pixel font size to points for the canvas backend.
func PxToPt(px float64) float64 { return px * MmToPt }
