package common

// Logical screen size of the handheld target. The window is scaled up from this.
const (
	BaseWidth  = 240
	BaseHeight = 320
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
