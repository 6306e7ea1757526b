package geometry

import (
	"math"

	"github.com/cvasseur/astrowheel/internal/chart"
)

// Point is a 2D screen coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// MapToAngle converts an ecliptic longitude into a drawing angle
// relative to the chart's Ascendant. The frame is rotated so the
// Ascendant always lands at the 9-o'clock position (angle 0), and the
// sign is flipped because astrological longitude increases
// counter-clockwise while the canvas angle increases clockwise.
// Formula: angle = -(longitude - ascendant), wrapped, in radians.
func MapToAngle(longitude, ascendant float64) float64 {
	adjusted := chart.NormalizeLongitude(longitude - ascendant)
	return -DegToRad(adjusted)
}

// PolarToXY projects an angle and radius onto screen coordinates
// around the given center. Angle 0 points left (the Ascendant anchor),
// and Y is inverted because screen coordinates grow downward while the
// angle convention grows upward.
func PolarToXY(angle, radius float64, center Point) Point {
	return Point{
		X: center.X - radius*math.Cos(angle),
		Y: center.Y - radius*math.Sin(angle),
	}
}

// ShortestAngle reduces an angular difference in radians to the
// shortest signed arc, wrapped into (-pi, pi].
func ShortestAngle(diff float64) float64 {
	wrapped := math.Mod(diff, 2*math.Pi)
	if wrapped > math.Pi {
		wrapped -= 2 * math.Pi
	} else if wrapped <= -math.Pi {
		wrapped += 2 * math.Pi
	}
	return wrapped
}
